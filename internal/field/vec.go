package field

import "math"

// Vec2 is a point or displacement in surface pixels.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }
func (v Vec2) Len() float64         { return math.Hypot(v.X, v.Y) }
func (v Vec2) Dist(o Vec2) float64  { return v.Sub(o).Len() }

// IsFinite reports whether neither component is NaN or Inf.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// ClipSegment trims a-b to the box [0,maxX]x[0,maxY] (Liang-Barsky) and
// reports whether any of it is left. Pushed particles can sit millions of
// pixels away; surfaces clip before walking or emitting a segment.
func ClipSegment(a, b Vec2, maxX, maxY float64) (Vec2, Vec2, bool) {
	if maxX < 0 || maxY < 0 || !a.IsFinite() || !b.IsFinite() {
		return Vec2{}, Vec2{}, false
	}
	t0, t1 := 0.0, 1.0
	d := b.Sub(a)
	edges := [4][2]float64{{-d.X, a.X}, {d.X, maxX - a.X}, {-d.Y, a.Y}, {d.Y, maxY - a.Y}}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return Vec2{}, Vec2{}, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return Vec2{}, Vec2{}, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return Vec2{}, Vec2{}, false
			}
			t1 = math.Min(t1, r)
		}
	}
	return a.Add(d.Scale(t0)), a.Add(d.Scale(t1)), true
}
