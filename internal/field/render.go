package field

import "image/color"

// Surface is anything a field can be drawn on: a terminal canvas, a
// raylib window, an SVG document or an in-memory image. Slices passed to
// Polyline are reused by the caller and must not be retained.
type Surface interface {
	Clear()
	Dot(at Vec2, radius float64, ink color.RGBA, opacity float64)
	Polyline(pts []Vec2, ink color.RGBA, opacity float64)
	Line(a, b Vec2, ink color.RGBA, opacity float64)
}

// Render clears s and draws every particle, its trail and the proximity
// edges between particles.
func Render(s Surface, f *Field) {
	s.Clear()
	p := f.params
	var pts []Vec2
	for i := range f.particles {
		pt := &f.particles[i]
		s.Dot(pt.Pos, p.DotRadius, p.Ink, p.DotOpacity)
		pts = pt.Trail.Points(pts[:0])
		if len(pts) > 1 {
			s.Polyline(pts, p.Ink, p.TrailOpacity)
		}
	}
	f.Edges(func(i, j int, opacity float64) {
		s.Line(f.particles[i].Pos, f.particles[j].Pos, p.Ink, opacity)
	})
}
