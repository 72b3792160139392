package field

// Pointer is the latest known cursor position and its influence radius.
//
// A Pointer has a single writer (the pointer-move handler) and a single
// reader (the field update), both on the UI goroutine.
type Pointer struct {
	Pos    Vec2
	Radius float64
}

func NewPointer(radius float64) *Pointer {
	return &Pointer{Radius: radius}
}

func (p *Pointer) Move(x, y float64) { p.Pos = Vec2{x, y} }

// Particle is one point of the field. Rest never changes after creation.
type Particle struct {
	Pos            Vec2
	Rest           Vec2
	Responsiveness float64
	Trail          Trail
}

func NewParticle(rest Vec2, responsiveness float64, trailLength int) Particle {
	p := Particle{
		Pos:            rest,
		Rest:           rest,
		Responsiveness: responsiveness,
		Trail:          NewTrail(trailLength),
	}
	p.Trail.Push(rest)
	return p
}

// Step advances the particle by one tick: pushed away from the pointer
// while inside its radius, otherwise eased back toward Rest.
func (p *Particle) Step(ptr Pointer, damping, relax float64) {
	toPointer := ptr.Pos.Sub(p.Pos)
	d := toPointer.Len()

	switch {
	case d < ptr.Radius && d > 0:
		dir := toPointer.Scale(1 / d)
		push := (ptr.Radius / d) * p.Responsiveness * damping
		// a pointer a hair away overflows the push; treat it like d == 0
		if next := p.Pos.Sub(dir.Scale(push)); next.IsFinite() {
			p.Pos = next
		}
	case d < ptr.Radius:
		// pointer sits exactly on the particle, direction undefined
	default:
		if p.Pos.X != p.Rest.X {
			p.Pos.X -= (p.Pos.X - p.Rest.X) * relax
		}
		if p.Pos.Y != p.Rest.Y {
			p.Pos.Y -= (p.Pos.Y - p.Rest.Y) * relax
		}
	}

	p.Trail.Push(p.Pos)
}
