package field

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type tickCounter struct{ ticks []uint64 }

func (c *tickCounter) OnTick(f *Field, tick uint64) { c.ticks = append(c.ticks, tick) }

func positions(f *Field) []Vec2 {
	out := make([]Vec2, f.Len())
	for i := range out {
		out[i] = f.Particle(i).Pos
	}
	return out
}

var _ = Describe("Simulator", func() {
	var (
		params  Params
		surface *recordingSurface
		sched   *ManualScheduler
		sim     *Simulator
		vp      Viewport
	)

	BeforeEach(func() {
		params = DefaultParams()
		params.Seed = 42
		surface = &recordingSurface{}
		sched = NewManualScheduler()
		sim = NewSimulator(params, nil, surface, sched)
		vp = Viewport{Width: 900, Height: 500}
	})

	It("starts stopped with no field", func() {
		Expect(sim.State()).To(Equal(Stopped))
		Expect(sim.Field()).To(BeNil())
		Expect(sched.Pending()).To(BeFalse())
	})

	Describe("Start", func() {
		It("builds a field sized to the viewport and requests a frame", func() {
			Expect(sim.Start(vp)).To(Succeed())
			Expect(sim.State()).To(Equal(Running))
			Expect(sim.Field().Len()).To(Equal(50))
			Expect(sched.Pending()).To(BeTrue())
		})

		It("does not start without a surface", func() {
			sim = NewSimulator(params, nil, nil, sched)
			Expect(sim.Start(vp)).To(MatchError(ErrSurfaceUnavailable))
			Expect(sim.State()).To(Equal(Stopped))
			Expect(sched.Pending()).To(BeFalse())
		})

		It("does not start on an empty viewport", func() {
			Expect(sim.Start(Viewport{})).To(MatchError(ErrSurfaceUnavailable))
			Expect(sim.State()).To(Equal(Stopped))
		})

		It("rejects invalid parameters", func() {
			params.TrailLength = 0
			sim = NewSimulator(params, nil, surface, sched)
			Expect(sim.Start(vp)).To(MatchError(ErrInvalidParams))
			Expect(sim.State()).To(Equal(Stopped))
		})

		It("is a no-op while running", func() {
			Expect(sim.Start(vp)).To(Succeed())
			f := sim.Field()
			Expect(sim.Start(vp)).To(Succeed())
			Expect(sim.Field()).To(BeIdenticalTo(f))
		})
	})

	Describe("ticking", func() {
		BeforeEach(func() {
			Expect(sim.Start(vp)).To(Succeed())
		})

		It("updates, renders and re-arms once per frame", func() {
			Expect(sched.StepN(5)).To(Equal(5))
			Expect(sim.Ticks()).To(BeEquivalentTo(5))
			Expect(surface.clears).To(Equal(5))
			Expect(surface.dots).To(HaveLen(sim.Field().Len()))
			Expect(sched.Pending()).To(BeTrue())
		})

		It("notifies observers before rendering", func() {
			c := &tickCounter{}
			sim.AddObserver(c)
			sched.StepN(3)
			Expect(c.ticks).To(Equal([]uint64{1, 2, 3}))
		})

		It("pushes particles away from the pointer", func() {
			p := sim.Field().Particle(0)
			sim.MovePointer(p.Pos.X+5, p.Pos.Y)
			before := p.Pos
			sched.Step()
			Expect(sim.Field().Particle(0).Pos.X).To(BeNumerically("<", before.X))
		})

		It("keeps every trail within its capacity", func() {
			sched.StepN(40)
			f := sim.Field()
			for i := 0; i < f.Len(); i++ {
				Expect(f.Particle(i).Trail.Len()).To(BeNumerically("<=", params.TrailLength))
			}
		})
	})

	Describe("Stop", func() {
		It("cancels the pending frame and discards the field", func() {
			Expect(sim.Start(vp)).To(Succeed())
			sched.StepN(2)
			sim.Stop()
			Expect(sim.State()).To(Equal(Stopped))
			Expect(sim.Field()).To(BeNil())
			Expect(sched.Pending()).To(BeFalse())
			Expect(sched.Step()).To(BeFalse())
			Expect(sim.Ticks()).To(BeEquivalentTo(2))
		})

		It("is idempotent and freezes particle state", func() {
			Expect(sim.Start(vp)).To(Succeed())
			sched.StepN(3)
			f := sim.Field()
			frozen := positions(f)

			sim.Stop()
			sim.Stop()
			sim.Tick()
			sched.StepN(10)

			Expect(positions(f)).To(Equal(frozen))
			Expect(sim.State()).To(Equal(Stopped))
		})

		It("ignores a stale frame captured before the stop", func() {
			var stale func()
			sim = NewSimulator(params, nil, surface, schedulerFunc(func(fn func()) func() {
				stale = fn
				return func() {}
			}))
			Expect(sim.Start(vp)).To(Succeed())
			sim.Stop()
			stale()
			Expect(sim.Ticks()).To(BeZero())
		})
	})

	Describe("Resize", func() {
		It("re-creates the field at constant density while running", func() {
			Expect(sim.Start(vp)).To(Succeed())
			sched.StepN(2)
			old := sim.Field()

			Expect(sim.Resize(Viewport{Width: 1800, Height: 1000})).To(Succeed())

			Expect(sim.State()).To(Equal(Running))
			Expect(sim.Field()).NotTo(BeIdenticalTo(old))
			Expect(sim.Field().Len()).To(Equal(200))
			Expect(sched.StepN(1)).To(Equal(1))
		})

		It("only records the viewport while stopped", func() {
			Expect(sim.Resize(Viewport{Width: 300, Height: 300})).To(Succeed())
			Expect(sim.State()).To(Equal(Stopped))
			Expect(sim.Viewport()).To(Equal(Viewport{Width: 300, Height: 300}))
		})
	})

	It("tracks the pointer in any state", func() {
		sim.MovePointer(12, 34)
		Expect(sim.Pointer().Pos).To(Equal(Vec2{12, 34}))
		Expect(sim.Pointer().Radius).To(Equal(params.PointerRadius))
	})
})

type schedulerFunc func(func()) func()

func (f schedulerFunc) Request(fn func()) func() { return f(fn) }
