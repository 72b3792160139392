package export

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/san-kum/folio/internal/field"
	"golang.org/x/image/vector"
)

const circleSegments = 16

// Raster is an anti-aliased field.Surface over an RGBA image. Every shape
// is rasterised as a filled polygon within its own bounding box.
type Raster struct {
	img        *image.RGBA
	background color.RGBA
	z          *vector.Rasterizer
	poly       []field.Vec2
}

func NewRaster(vp field.Viewport, background color.RGBA) *Raster {
	w, h := int(math.Ceil(vp.Width)), int(math.Ceil(vp.Height))
	r := &Raster{
		img:        image.NewRGBA(image.Rect(0, 0, w, h)),
		background: background,
		z:          vector.NewRasterizer(0, 0),
	}
	r.Clear()
	return r
}

func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)
}

func (r *Raster) Dot(at field.Vec2, radius float64, ink color.RGBA, opacity float64) {
	radius = math.Max(radius, 0.5)
	r.poly = r.poly[:0]
	for i := 0; i < circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		r.poly = append(r.poly, field.Vec2{X: at.X + radius*math.Cos(a), Y: at.Y + radius*math.Sin(a)})
	}
	r.fill(ink, opacity)
}

// Line is drawn one pixel wide.
func (r *Raster) Line(a, b field.Vec2, ink color.RGBA, opacity float64) {
	b0 := r.img.Bounds()
	a, b, ok := field.ClipSegment(a, b, float64(b0.Dx()), float64(b0.Dy()))
	if !ok {
		return
	}
	d := b.Sub(a)
	l := d.Len()
	if l == 0 {
		return
	}
	n := field.Vec2{X: -d.Y / l * 0.5, Y: d.X / l * 0.5}
	r.poly = append(r.poly[:0], a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
	r.fill(ink, opacity)
}

func (r *Raster) Polyline(pts []field.Vec2, ink color.RGBA, opacity float64) {
	for i := 1; i < len(pts); i++ {
		r.Line(pts[i-1], pts[i], ink, opacity)
	}
}

func (r *Raster) fill(ink color.RGBA, opacity float64) {
	if len(r.poly) < 3 {
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range r.poly {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	box := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY))).
		Intersect(r.img.Bounds())
	if box.Empty() {
		return
	}

	r.z.Reset(box.Dx(), box.Dy())
	r.z.DrawOp = draw.Over
	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	r.z.MoveTo(float32(r.poly[0].X-ox), float32(r.poly[0].Y-oy))
	for _, p := range r.poly[1:] {
		r.z.LineTo(float32(p.X-ox), float32(p.Y-oy))
	}
	r.z.ClosePath()

	src := image.NewUniform(color.NRGBA{R: ink.R, G: ink.G, B: ink.B, A: uint8(math.Round(clamp01(opacity) * 255))})
	r.z.Draw(r.img, box, src, image.Point{})
}

// WritePNG encodes the current frame.
func (r *Raster) WritePNG(w io.Writer) error {
	return png.Encode(w, r.img)
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}
