package field

import (
	"math"
	"math/rand"
)

// Viewport is the size of the drawing surface in pixels.
type Viewport struct {
	Width, Height float64
}

func (v Viewport) Area() float64 { return v.Width * v.Height }
func (v Viewport) Empty() bool   { return v.Width <= 0 || v.Height <= 0 }

// ParticleCount is the number of particles a viewport holds at the given
// density, rounded to the nearest integer.
func ParticleCount(vp Viewport, densityArea float64) int {
	if vp.Empty() || densityArea <= 0 {
		return 0
	}
	return int(math.Round(vp.Area() / densityArea))
}

// Field is the particle set for one running session.
type Field struct {
	params    Params
	viewport  Viewport
	particles []Particle
}

// New scatters ParticleCount particles uniformly over vp, each with a
// responsiveness drawn from [ResponsivenessMin, ResponsivenessMax).
func New(p Params, vp Viewport, rng *rand.Rand) *Field {
	n := ParticleCount(vp, p.DensityArea)
	f := &Field{
		params:    p,
		viewport:  vp,
		particles: make([]Particle, 0, n),
	}
	span := p.ResponsivenessMax - p.ResponsivenessMin
	for i := 0; i < n; i++ {
		rest := Vec2{rng.Float64() * vp.Width, rng.Float64() * vp.Height}
		resp := p.ResponsivenessMin + rng.Float64()*span
		f.particles = append(f.particles, NewParticle(rest, resp, p.TrailLength))
	}
	return f
}

// FromParticles builds a field around an existing particle set.
func FromParticles(p Params, vp Viewport, particles []Particle) *Field {
	return &Field{params: p, viewport: vp, particles: particles}
}

func (f *Field) Len() int           { return len(f.particles) }
func (f *Field) Viewport() Viewport { return f.viewport }
func (f *Field) Params() Params     { return f.params }

// Particle returns a pointer into the field's storage; it must not be
// retained past the next Update.
func (f *Field) Particle(i int) *Particle { return &f.particles[i] }

// Update advances every particle by one tick against ptr.
func (f *Field) Update(ptr Pointer) {
	for i := range f.particles {
		f.particles[i].Step(ptr, f.params.Damping, f.params.RelaxRate)
	}
}

// EdgeOpacity fades linearly from maxOpacity at distance 0 to 0 at threshold.
func EdgeOpacity(d, threshold, maxOpacity float64) float64 {
	if threshold <= 0 || d >= threshold {
		return 0
	}
	if d <= 0 {
		return maxOpacity
	}
	return maxOpacity * (1 - d/threshold)
}

// Edges calls fn for every unordered pair closer than EdgeThreshold.
func (f *Field) Edges(fn func(i, j int, opacity float64)) {
	th := f.params.EdgeThreshold
	for i := 0; i < len(f.particles); i++ {
		a := f.particles[i].Pos
		for j := i + 1; j < len(f.particles); j++ {
			d := a.Dist(f.particles[j].Pos)
			if d < th {
				fn(i, j, EdgeOpacity(d, th, f.params.EdgeMaxOpacity))
			}
		}
	}
}
