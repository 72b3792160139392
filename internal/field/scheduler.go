package field

// Scheduler arranges for frame to run once, before the next frame is
// presented. The returned cancel func withdraws the request if it has
// not fired yet; calling it after the frame ran is harmless.
type Scheduler interface {
	Request(frame func()) (cancel func())
}

// ManualScheduler holds at most one pending frame and runs it when Step is
// called. It drives the raylib loop and tests.
type ManualScheduler struct {
	pending func()
	gen     uint64
}

func NewManualScheduler() *ManualScheduler { return &ManualScheduler{} }

func (m *ManualScheduler) Request(frame func()) func() {
	m.gen++
	gen := m.gen
	m.pending = frame
	return func() {
		if m.gen == gen {
			m.pending = nil
		}
	}
}

// Pending reports whether a frame is waiting.
func (m *ManualScheduler) Pending() bool { return m.pending != nil }

// Step runs the pending frame, if any, and reports whether one ran.
func (m *ManualScheduler) Step() bool {
	fn := m.pending
	if fn == nil {
		return false
	}
	m.pending = nil
	fn()
	return true
}

// StepN runs up to n frames and returns how many ran.
func (m *ManualScheduler) StepN(n int) int {
	ran := 0
	for ran < n && m.Step() {
		ran++
	}
	return ran
}
