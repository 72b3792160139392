package field

import (
	"io"
	"log/slog"
	"math/rand"
	"time"
)

type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Observer sees the field after every tick's update, before it is drawn.
type Observer interface {
	OnTick(f *Field, tick uint64)
}

// Simulator owns the Stopped/Running lifecycle of a field. While running
// it requests one frame at a time from its Scheduler; each frame updates
// the field against the shared Pointer and renders it to the Surface.
type Simulator struct {
	params    Params
	pointer   *Pointer
	surface   Surface
	sched     Scheduler
	log       *slog.Logger
	rng       *rand.Rand
	observers []Observer

	state    State
	viewport Viewport
	field    *Field
	cancel   func()
	session  uint64
	ticks    uint64
}

// NewSimulator wires a simulator to its collaborators. A nil pointer is
// replaced by a fresh one using p.PointerRadius.
func NewSimulator(p Params, ptr *Pointer, surface Surface, sched Scheduler) *Simulator {
	if ptr == nil {
		ptr = NewPointer(p.PointerRadius)
	}
	seed := p.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Simulator{
		params:  p,
		pointer: ptr,
		surface: surface,
		sched:   sched,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		rng:     rand.New(rand.NewSource(seed)),
	}
}

func (s *Simulator) SetLogger(l *slog.Logger) {
	if l != nil {
		s.log = l
	}
}

func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) State() State         { return s.state }
func (s *Simulator) Viewport() Viewport   { return s.viewport }
func (s *Simulator) Pointer() *Pointer    { return s.pointer }
func (s *Simulator) Ticks() uint64        { return s.ticks }
func (s *Simulator) Params() Params       { return s.params }
func (s *Simulator) SetSurface(x Surface) { s.surface = x }

// Field returns the live field, or nil while stopped.
func (s *Simulator) Field() *Field { return s.field }

// MovePointer records the latest cursor position. It is valid in any state.
func (s *Simulator) MovePointer(x, y float64) { s.pointer.Move(x, y) }

// Start builds a fresh field for vp and schedules the first frame. When
// there is no surface or vp is empty the simulator stays stopped and
// returns ErrSurfaceUnavailable. Starting a running simulator is a no-op.
func (s *Simulator) Start(vp Viewport) error {
	s.viewport = vp
	if s.state == Running {
		return nil
	}
	if s.surface == nil || s.sched == nil || vp.Empty() {
		return ErrSurfaceUnavailable
	}
	if err := s.params.Validate(); err != nil {
		return err
	}

	s.field = New(s.params, vp, s.rng)
	s.state = Running
	s.session++
	s.log.Debug("field started",
		"width", vp.Width, "height", vp.Height, "particles", s.field.Len())
	s.request()
	return nil
}

// Stop cancels the pending frame and discards the field. Calling Stop on
// a stopped simulator does nothing.
func (s *Simulator) Stop() {
	if s.state == Stopped {
		return
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.state = Stopped
	s.field = nil
	s.log.Debug("field stopped", "ticks", s.ticks)
}

// Resize rebuilds the field for the new viewport when running, keeping the
// particle density constant. When stopped it only remembers vp.
func (s *Simulator) Resize(vp Viewport) error {
	if s.state == Stopped {
		s.viewport = vp
		return nil
	}
	s.log.Debug("field resized", "width", vp.Width, "height", vp.Height)
	s.Stop()
	return s.Start(vp)
}

// Tick runs one update and render. It does nothing while stopped.
func (s *Simulator) Tick() {
	if s.state != Running {
		return
	}
	s.field.Update(*s.pointer)
	s.ticks++
	for _, o := range s.observers {
		o.OnTick(s.field, s.ticks)
	}
	Render(s.surface, s.field)
}

func (s *Simulator) request() {
	session := s.session
	s.cancel = s.sched.Request(func() {
		if s.state != Running || s.session != session {
			return
		}
		s.Tick()
		if s.state == Running && s.session == session {
			s.request()
		}
	})
}
