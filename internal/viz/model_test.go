package viz

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/field"
	"github.com/san-kum/folio/internal/storage"
)

func newTestModel(t *testing.T) (Model, *storage.Store) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Display.Theme = "dark"
	cfg.Seed = 7
	st := storage.New(t.TempDir())
	return NewModel(Options{Config: cfg, Store: st}), st
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return nm, cmd
}

func press(t *testing.T, m Model, key string) Model {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	m, _ = update(t, m, msg)
	return m
}

func TestModel_WaitsForSize(t *testing.T) {
	m, _ := newTestModel(t)
	if m.Init() != nil {
		t.Error("Init should not schedule anything before the first size")
	}
	if m.sim.State() != field.Stopped {
		t.Error("field should not run before the canvas has a size")
	}
	if m.View() != "loading..." {
		t.Errorf("unexpected view %q", m.View())
	}
}

func TestModel_StartsOnResize(t *testing.T) {
	m, _ := newTestModel(t)
	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.sim.State() != field.Running {
		t.Fatal("expected field to run on home after resize")
	}
	if cmd == nil {
		t.Error("expected a frame command")
	}
	// 100x28 cells of 8x16 px
	if want := field.ParticleCount(field.Viewport{Width: 800, Height: 448}, 9000); m.sim.Field().Len() != want {
		t.Errorf("expected %d particles, got %d", want, m.sim.Field().Len())
	}
	if !strings.Contains(m.View(), m.content.Profile.Name) {
		t.Error("hero name missing from home view")
	}
}

func TestModel_ZeroSizeStaysStopped(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 0, Height: 0})
	if m.sim.State() != field.Stopped {
		t.Error("field should stay stopped without a surface")
	}
	if m.status != "" {
		t.Errorf("unavailable surface should not set a status, got %q", m.status)
	}
}

func TestModel_FrameTicks(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	for i := 0; i < 3; i++ {
		m, _ = update(t, m, FrameMsg{gen: m.frames.gen})
	}
	if m.sim.Ticks() != 3 {
		t.Errorf("expected 3 ticks, got %d", m.sim.Ticks())
	}
	if len(m.recorder.Series("rest_offset")) != 3 {
		t.Errorf("expected 3 samples, got %d", len(m.recorder.Series("rest_offset")))
	}
}

func TestModel_SectionLifecycle(t *testing.T) {
	m, st := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	gen := m.frames.gen

	m = press(t, m, "2")
	if m.section != sectionAbout {
		t.Fatalf("expected about, got %v", m.section)
	}
	if m.sim.State() != field.Stopped || m.sim.Field() != nil {
		t.Error("leaving home should stop and discard the field")
	}

	// a frame scheduled before the stop must not tick
	m, _ = update(t, m, FrameMsg{gen: gen})
	if m.sim.Ticks() != 0 {
		t.Errorf("stale frame ticked the field")
	}

	m = press(t, m, "1")
	if m.sim.State() != field.Running {
		t.Error("returning home should restart the field")
	}

	p, err := st.Load()
	if err != nil {
		t.Fatalf("load prefs: %v", err)
	}
	if p.Section != "home" {
		t.Errorf("expected stored section home, got %q", p.Section)
	}
}

func TestModel_TabCycles(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	for i := 0; i < int(sectionCount); i++ {
		m = press(t, m, "tab")
	}
	if m.section != sectionHome {
		t.Errorf("expected to wrap to home, got %v", m.section)
	}
}

func TestModel_ToggleDarkPersists(t *testing.T) {
	m, st := newTestModel(t)
	if !m.dark {
		t.Fatal("expected dark theme from config")
	}
	m = press(t, m, "d")
	if m.dark || m.theme.Name != "light" {
		t.Error("expected light theme after toggle")
	}

	p, err := st.Load()
	if err != nil {
		t.Fatalf("load prefs: %v", err)
	}
	if p.DarkMode == nil || *p.DarkMode {
		t.Errorf("expected stored dark mode false, got %v", p.DarkMode)
	}

	// stored prefs win over the configured theme
	again := NewModel(Options{Config: m.cfg, Store: st})
	if again.dark {
		t.Error("stored preference not applied")
	}
}

func TestModel_ExplicitThemeBeatsStoredPref(t *testing.T) {
	_, st := newTestModel(t)
	if err := st.SetDarkMode(false); err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultConfig()
	cfg.Display.Theme = "dark"

	if m := NewModel(Options{Config: cfg, Store: st}); m.dark {
		t.Error("stored light preference should apply when the theme was not set")
	}
	if m := NewModel(Options{Config: cfg, Store: st, ThemeSet: true}); !m.dark {
		t.Error("explicit dark theme should win over the stored preference")
	}
}

func TestModel_FilterCycles(t *testing.T) {
	m, st := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m = press(t, m, "3")
	m = press(t, m, "f")

	if m.filter != 1 {
		t.Fatalf("expected filter 1, got %d", m.filter)
	}
	id := m.content.Categories[1].ID
	p, _ := st.Load()
	if p.Filter != id {
		t.Errorf("expected stored filter %q, got %q", id, p.Filter)
	}

	for range m.content.Categories[1:] {
		m = press(t, m, "f")
	}
	if m.filter != 0 {
		t.Errorf("expected filter to wrap to all, got %d", m.filter)
	}
}

func TestModel_MouseMovesPointer(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionMotion})

	pos := m.sim.Pointer().Pos
	// cell centre, body starts below the nav row
	if pos.X != 84 || pos.Y != 72 {
		t.Errorf("expected pointer (84, 72), got (%v, %v)", pos.X, pos.Y)
	}

	// still tracked while the field is stopped
	m = press(t, m, "4")
	m, _ = update(t, m, tea.MouseMsg{X: 0, Y: 1, Action: tea.MouseActionMotion})
	if pos := m.sim.Pointer().Pos; pos.X != 4 || pos.Y != 8 {
		t.Errorf("expected pointer (4, 8), got (%v, %v)", pos.X, pos.Y)
	}
}

func TestModel_NavClick(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 24})

	x := lipgloss.Width(m.st.navItem.Render(sectionLabels[0]))
	m, _ = update(t, m, tea.MouseMsg{X: x, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if m.section != sectionAbout {
		t.Errorf("expected about after click, got %v", m.section)
	}
	if m.sim.State() != field.Stopped {
		t.Error("field should stop when the click leaves home")
	}
}

func TestModel_ScrollHint(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 12})
	m = press(t, m, "3")
	for i := 0; i < 5; i++ {
		m = press(t, m, "j")
	}
	if !strings.Contains(m.footerView(), "top") {
		t.Error("expected back-to-top hint after scrolling")
	}
	m = press(t, m, "g")
	if m.scroll != 0 {
		t.Errorf("expected scroll reset, got %d", m.scroll)
	}
}

func TestModel_FieldOnlyIgnoresNav(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Display.Theme = "dark"
	m := NewModel(Options{Config: cfg, FieldOnly: true, Section: "skills"})
	if m.section != sectionHome {
		t.Fatal("field-only mode should force home")
	}
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	m = press(t, m, "2")
	if m.section != sectionHome || m.sim.State() != field.Running {
		t.Error("field-only mode should ignore section keys")
	}
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.sim.State() != field.Stopped {
		t.Error("quit should stop the field")
	}
}
