package export

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const paletteSize = 64

// GIF collects raster frames into a looping animation. Frames are mapped
// onto a palette that ramps from the background to the ink.
type GIF struct {
	palette color.Palette
	delay   int
	anim    gif.GIF
}

// NewGIF prepares an animation played back at fps frames per second.
func NewGIF(background, ink color.RGBA, fps int) *GIF {
	if fps <= 0 {
		fps = 30
	}
	return &GIF{
		palette: inkPalette(background, ink, paletteSize),
		delay:   max(100/fps, 1),
	}
}

func inkPalette(background, ink color.RGBA, n int) color.Palette {
	bg, _ := colorful.MakeColor(background)
	fg, _ := colorful.MakeColor(ink)
	p := make(color.Palette, n)
	for i := range p {
		c := bg.BlendLab(fg, float64(i)/float64(n-1)).Clamped()
		r, g, b := c.RGB255()
		p[i] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	return p
}

// Capture appends img as the next frame.
func (g *GIF) Capture(img image.Image) {
	b := img.Bounds()
	frame := image.NewPaletted(b, g.palette)
	draw.Draw(frame, b, img, b.Min, draw.Src)
	g.anim.Image = append(g.anim.Image, frame)
	g.anim.Delay = append(g.anim.Delay, g.delay)
}

func (g *GIF) Frames() int { return len(g.anim.Image) }

// Encode writes the animation, looping forever.
func (g *GIF) Encode(w io.Writer) error {
	if len(g.anim.Image) == 0 {
		return ErrNoFrames
	}
	g.anim.LoopCount = 0
	return gif.EncodeAll(w, &g.anim)
}
