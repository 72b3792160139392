package export

import (
	"bytes"
	"image/color"
	"image/gif"
	"image/png"
	"strings"
	"testing"

	"github.com/san-kum/folio/internal/field"
	. "github.com/onsi/gomega"
)

var background = color.RGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xff}

func testOptions(f Format) Options {
	p := field.DefaultParams()
	p.Seed = 42
	return Options{
		Format:     f,
		Params:     p,
		Viewport:   field.Viewport{Width: 300, Height: 300},
		Background: background,
		Ticks:      5,
		FPS:        20,
		Sweep:      true,
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		err  bool
	}{
		{"svg", FormatSVG, false},
		{"PNG", FormatPNG, false},
		{"out/field.gif", FormatGIF, false},
		{"field.jpeg", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			g := NewWithT(t)
			got, err := ParseFormat(tt.in)
			if tt.err {
				g.Expect(err).To(MatchError(ErrUnknownFormat))
				return
			}
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(got).To(Equal(tt.want))
		})
	}
}

func TestSweepPosition(t *testing.T) {
	g := NewWithT(t)
	vp := field.Viewport{Width: 400, Height: 200}

	first := SweepPosition(vp, 0, 11)
	g.Expect(first.X).To(BeNumerically("~", 0, 1e-9))
	g.Expect(first.Y).To(BeNumerically("~", 100, 1e-9))

	last := SweepPosition(vp, 10, 11)
	g.Expect(last.X).To(BeNumerically("~", 400, 1e-9))
	g.Expect(last.Y).To(BeNumerically("~", 100, 1e-9))
}

func TestSVG_ClipsAndCounts(t *testing.T) {
	g := NewWithT(t)
	s := NewSVG(field.Viewport{Width: 100, Height: 100}, background)

	s.Dot(field.Vec2{X: 50, Y: 50}, 1.5, field.DefaultInk, 0.5)
	s.Dot(field.Vec2{X: 5000, Y: 50}, 1.5, field.DefaultInk, 0.5)
	s.Line(field.Vec2{X: 10, Y: 10}, field.Vec2{X: 1e9, Y: 10}, field.DefaultInk, 0.3)
	s.Line(field.Vec2{X: -10, Y: -10}, field.Vec2{X: -1, Y: -5}, field.DefaultInk, 0.3)
	s.Polyline([]field.Vec2{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 1}}, field.DefaultInk, 0.2)

	g.Expect(s.Elements()).To(Equal(3))
	out := s.String()
	g.Expect(out).To(ContainSubstring(`fill="#c084fc"`))
	g.Expect(out).To(ContainSubstring(`x2="100.0"`))
	g.Expect(out).To(ContainSubstring(`d="M1.0,1.0 L2.0,2.0 L3.0,1.0"`))
	g.Expect(out).To(HavePrefix("<?xml"))

	s.Clear()
	g.Expect(s.Elements()).To(BeZero())
}

func TestRaster_DrawsInk(t *testing.T) {
	g := NewWithT(t)
	r := NewRaster(field.Viewport{Width: 40, Height: 40}, background)

	g.Expect(r.Image().RGBAAt(20, 20)).To(Equal(background))
	r.Dot(field.Vec2{X: 20, Y: 20}, 3, field.DefaultInk, 1)
	ink := r.Image().RGBAAt(20, 20)
	g.Expect(ink.R).To(BeNumerically("~", field.DefaultInk.R, 2))
	g.Expect(ink.B).To(BeNumerically("~", field.DefaultInk.B, 2))

	// far endpoints are clipped, the visible part still lands
	r.Line(field.Vec2{X: 0, Y: 30.5}, field.Vec2{X: 1e9, Y: 30.5}, field.DefaultInk, 1)
	g.Expect(r.Image().RGBAAt(35, 30)).NotTo(Equal(background))

	r.Clear()
	g.Expect(r.Image().RGBAAt(20, 20)).To(Equal(background))
}

func TestRun_SVG(t *testing.T) {
	g := NewWithT(t)
	var buf bytes.Buffer

	g.Expect(Run(&buf, testOptions(FormatSVG))).To(Succeed())
	out := buf.String()
	// 300x300 at one particle per 9000 px
	g.Expect(strings.Count(out, "<circle")).To(BeNumerically("<=", 10))
	g.Expect(strings.Count(out, "<circle")).To(BeNumerically(">", 0))
	g.Expect(out).To(HaveSuffix("</svg>\n"))
}

func TestRun_PNG(t *testing.T) {
	g := NewWithT(t)
	var buf bytes.Buffer

	g.Expect(Run(&buf, testOptions(FormatPNG))).To(Succeed())
	img, err := png.Decode(&buf)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(img.Bounds().Dx()).To(Equal(300))
	g.Expect(img.Bounds().Dy()).To(Equal(300))
}

func TestRun_GIF(t *testing.T) {
	g := NewWithT(t)
	var buf bytes.Buffer

	g.Expect(Run(&buf, testOptions(FormatGIF))).To(Succeed())
	anim, err := gif.DecodeAll(&buf)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(anim.Image).To(HaveLen(5))
	g.Expect(anim.Delay[0]).To(Equal(5))
}

func TestRun_Errors(t *testing.T) {
	g := NewWithT(t)

	opts := testOptions(FormatSVG)
	opts.Viewport = field.Viewport{}
	g.Expect(Run(&bytes.Buffer{}, opts)).To(MatchError(field.ErrSurfaceUnavailable))

	opts = testOptions("bmp")
	g.Expect(Run(&bytes.Buffer{}, opts)).To(MatchError(ErrUnknownFormat))

	opts = testOptions(FormatPNG)
	opts.Params.TrailLength = 0
	g.Expect(Run(&bytes.Buffer{}, opts)).To(MatchError(field.ErrInvalidParams))
}

func TestGIF_EmptyEncode(t *testing.T) {
	g := NewWithT(t)
	anim := NewGIF(background, field.DefaultInk, 30)
	g.Expect(anim.Encode(&bytes.Buffer{})).To(MatchError(ErrNoFrames))
}
