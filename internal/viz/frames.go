package viz

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg fires a scheduled field frame.
type FrameMsg struct {
	gen uint64
}

// frameScheduler adapts field.Scheduler to Bubble Tea: a request becomes
// a tea.Tick command, and the resulting FrameMsg runs the frame. A message
// from a request that was cancelled or superseded is dropped.
type frameScheduler struct {
	interval time.Duration
	pending  func()
	gen      uint64
	issued   bool
}

func newFrameScheduler(fps int) *frameScheduler {
	if fps <= 0 {
		fps = 60
	}
	return &frameScheduler{interval: time.Second / time.Duration(fps)}
}

func (s *frameScheduler) Request(frame func()) func() {
	s.gen++
	gen := s.gen
	s.pending = frame
	s.issued = false
	return func() {
		if s.gen == gen {
			s.pending = nil
		}
	}
}

// Cmd returns the tick command for a pending request that has not been
// handed to Bubble Tea yet, or nil.
func (s *frameScheduler) Cmd() tea.Cmd {
	if s.pending == nil || s.issued {
		return nil
	}
	s.issued = true
	gen := s.gen
	return tea.Tick(s.interval, func(time.Time) tea.Msg { return FrameMsg{gen: gen} })
}

// Fire runs the pending frame if msg belongs to it.
func (s *frameScheduler) Fire(msg FrameMsg) {
	if msg.gen != s.gen || s.pending == nil {
		return
	}
	fn := s.pending
	s.pending = nil
	s.issued = false
	fn()
}
