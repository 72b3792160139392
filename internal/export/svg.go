package export

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/san-kum/folio/internal/field"
)

// SVG is a field.Surface that keeps the last rendered frame as an SVG
// document. Geometry outside the viewport is clipped away.
type SVG struct {
	vp         field.Viewport
	background color.RGBA
	body       strings.Builder
	elements   int
}

func NewSVG(vp field.Viewport, background color.RGBA) *SVG {
	return &SVG{vp: vp, background: background}
}

func (s *SVG) Clear() {
	s.body.Reset()
	s.elements = 0
}

// Elements is the number of shapes in the current frame.
func (s *SVG) Elements() int { return s.elements }

func (s *SVG) Dot(at field.Vec2, radius float64, ink color.RGBA, opacity float64) {
	if at.X < -radius || at.Y < -radius || at.X > s.vp.Width+radius || at.Y > s.vp.Height+radius {
		return
	}
	fmt.Fprintf(&s.body, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" fill-opacity="%.3f"/>`+"\n",
		at.X, at.Y, radius, hex(ink), opacity)
	s.elements++
}

func (s *SVG) Line(a, b field.Vec2, ink color.RGBA, opacity float64) {
	a, b, ok := field.ClipSegment(a, b, s.vp.Width, s.vp.Height)
	if !ok {
		return
	}
	fmt.Fprintf(&s.body, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-opacity="%.3f"/>`+"\n",
		a.X, a.Y, b.X, b.Y, hex(ink), opacity)
	s.elements++
}

// Polyline is written as one path; a segment that leaves the viewport
// starts a new subpath where it comes back.
func (s *SVG) Polyline(pts []field.Vec2, ink color.RGBA, opacity float64) {
	var d strings.Builder
	var last field.Vec2
	open := false
	for i := 1; i < len(pts); i++ {
		a, b, ok := field.ClipSegment(pts[i-1], pts[i], s.vp.Width, s.vp.Height)
		if !ok {
			open = false
			continue
		}
		if !open || a != last {
			fmt.Fprintf(&d, "M%.1f,%.1f", a.X, a.Y)
		}
		fmt.Fprintf(&d, " L%.1f,%.1f", b.X, b.Y)
		last, open = b, true
	}
	if d.Len() == 0 {
		return
	}
	fmt.Fprintf(&s.body, `<path fill="none" stroke="%s" stroke-opacity="%.3f" d="%s"/>`+"\n",
		hex(ink), opacity, d.String())
	s.elements++
}

// WriteTo writes the complete document for the current frame.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g stroke-width="1">
`, s.vp.Width, s.vp.Height, s.vp.Width, s.vp.Height, hex(s.background))
	sb.WriteString(s.body.String())
	sb.WriteString("</g>\n</svg>\n")

	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

func (s *SVG) String() string {
	var sb strings.Builder
	s.WriteTo(&sb)
	return sb.String()
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
