package viz

import "testing"

func TestFrameScheduler_FiresOnce(t *testing.T) {
	s := newFrameScheduler(60)
	runs := 0
	s.Request(func() { runs++ })

	if s.Cmd() == nil {
		t.Fatal("expected a tick command for the pending frame")
	}
	if s.Cmd() != nil {
		t.Error("a pending frame should be handed out only once")
	}

	msg := FrameMsg{gen: s.gen}
	s.Fire(msg)
	s.Fire(msg)
	if runs != 1 {
		t.Errorf("expected 1 run, got %d", runs)
	}
}

func TestFrameScheduler_DropsStale(t *testing.T) {
	s := newFrameScheduler(30)
	var got []string
	s.Request(func() { got = append(got, "first") })
	stale := FrameMsg{gen: s.gen}
	s.Request(func() { got = append(got, "second") })

	s.Fire(stale)
	if len(got) != 0 {
		t.Fatalf("stale frame ran: %v", got)
	}
	s.Fire(FrameMsg{gen: s.gen})
	if len(got) != 1 || got[0] != "second" {
		t.Errorf("expected [second], got %v", got)
	}
}

func TestFrameScheduler_Cancel(t *testing.T) {
	s := newFrameScheduler(0)
	ran := false
	cancel := s.Request(func() { ran = true })
	cancel()

	if s.Cmd() != nil {
		t.Error("cancelled frame should not produce a command")
	}
	s.Fire(FrameMsg{gen: s.gen})
	if ran {
		t.Error("cancelled frame ran")
	}
}
