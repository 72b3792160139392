package viz

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/content"
	"github.com/san-kum/folio/internal/field"
	"github.com/san-kum/folio/internal/metrics"
	"github.com/san-kum/folio/internal/storage"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	sparkSamples  = 120
)

// Options configures a Model. Only Config is required.
type Options struct {
	Config    *config.Config
	Content   *content.Content
	Store     *storage.Store
	Logger    *slog.Logger
	Section   string
	FieldOnly bool // show the field alone, without nav or sections
	// ThemeSet means Config.Display.Theme was chosen explicitly and wins
	// over a stored dark-mode preference.
	ThemeSet bool
}

// Model is the Bubble Tea model of the portfolio.
type Model struct {
	cfg     *config.Config
	content *content.Content
	store   *storage.Store
	log     *slog.Logger

	sim      *field.Simulator
	pointer  *field.Pointer
	canvas   *Canvas
	frames   *frameScheduler
	recorder *metrics.Recorder

	theme     Theme
	st        styles
	dark      bool
	fieldOnly bool

	section       section
	filter        int
	scroll        int
	hover         int
	width, height int
	showHelp      bool
	status        string
}

// NewModel builds the model. Stored prefs take precedence over the
// configured theme, and the configured theme over the terminal background.
func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	c := opts.Content
	if c == nil {
		c = content.Default()
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var prefs storage.Prefs
	if opts.Store != nil {
		p, err := opts.Store.Load()
		if err != nil {
			log.Warn("ignoring stored preferences", "err", err)
		} else {
			prefs = p
		}
	}

	th := GetTheme(cfg.Display.Theme)
	if prefs.DarkMode != nil && !opts.ThemeSet {
		th = ThemeFor(*prefs.DarkMode)
	}

	params := cfg.FieldParams()
	m := Model{
		cfg:       cfg,
		content:   c,
		store:     opts.Store,
		log:       log,
		pointer:   field.NewPointer(params.PointerRadius),
		canvas:    NewCanvas(0, 0, cfg.Display.CellWidth, cfg.Display.CellHeight),
		frames:    newFrameScheduler(cfg.Display.FPS),
		recorder:  metrics.NewRecorder(sparkSamples, metrics.RestOffset{}),
		theme:     th,
		st:        newStyles(th),
		dark:      th.Dark,
		fieldOnly: opts.FieldOnly,
		section:   parseSection(opts.Section),
		filter:    c.CategoryIndex(prefs.Filter),
		hover:     -1,
	}
	if opts.Section == "" && prefs.Section != "" {
		m.section = parseSection(prefs.Section)
	}
	if m.fieldOnly {
		m.section = sectionHome
	}
	m.sim = field.NewSimulator(params, m.pointer, m.canvas, m.frames)
	m.sim.SetLogger(log)
	m.sim.AddObserver(m.recorder)
	return m
}

// Init waits for the first WindowSizeMsg; the field cannot start before
// the canvas has a size.
func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.MouseMsg:
		m.mouse(msg)
	case tea.KeyMsg:
		if cmd := m.key(msg); cmd != nil {
			return m, cmd
		}
	case FrameMsg:
		m.frames.Fire(msg)
	}
	return m, m.frames.Cmd()
}

func (m *Model) bodyTop() int {
	if m.fieldOnly {
		return 0
	}
	return 1
}

func (m *Model) bodyHeight() int {
	return max(m.height-m.bodyTop()-1, 0)
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.canvas.Resize(w, m.bodyHeight())
	vp := m.canvas.Viewport()
	if m.sim.State() == field.Running {
		if err := m.sim.Resize(vp); err != nil {
			m.fieldError(err)
		}
		return
	}
	if m.section == sectionHome {
		m.startField()
	}
}

func (m *Model) startField() {
	if err := m.sim.Start(m.canvas.Viewport()); err != nil {
		m.fieldError(err)
	}
}

func (m *Model) fieldError(err error) {
	// a surface that is not ready yet just means no field
	if errors.Is(err, field.ErrSurfaceUnavailable) {
		m.log.Debug("field not started", "err", err)
		return
	}
	m.log.Error("field", "err", err)
	m.status = err.Error()
}

// mouse moves the shared pointer in every section, so the field picks up
// the latest position as soon as home is shown again.
func (m *Model) mouse(msg tea.MouseMsg) {
	x := (float64(msg.X) + 0.5) * m.canvas.CellW
	y := (float64(msg.Y-m.bodyTop()) + 0.5) * m.canvas.CellH
	m.sim.MovePointer(x, y)

	m.hover = -1
	if !m.fieldOnly && msg.Y == 0 {
		m.hover = m.navItemAt(msg.X)
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollBy(-3)
	case tea.MouseButtonWheelDown:
		m.scrollBy(3)
	case tea.MouseButtonLeft:
		if msg.Action == tea.MouseActionPress && m.hover >= 0 {
			m.setSection(section(m.hover))
		}
	}
}

func (m *Model) key(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c":
		m.sim.Stop()
		return tea.Quit
	case "?":
		m.showHelp = !m.showHelp
	case "d":
		m.toggleDark()
	}
	if m.fieldOnly {
		return nil
	}

	switch s := msg.String(); s {
	case "tab", "right", "l":
		m.setSection((m.section + 1) % sectionCount)
	case "shift+tab", "left", "h":
		m.setSection((m.section + sectionCount - 1) % sectionCount)
	case "1", "2", "3", "4", "5":
		m.setSection(section(s[0] - '1'))
	case "f":
		m.cycleFilter()
	case "down", "j":
		m.scrollBy(1)
	case "up", "k":
		m.scrollBy(-1)
	case "g", "home":
		m.scroll = 0
	}
	return nil
}

// setSection starts the field when home is entered and stops it when home
// is left.
func (m *Model) setSection(s section) {
	if s == m.section {
		return
	}
	prev := m.section
	m.section, m.scroll = s, 0
	switch {
	case prev == sectionHome:
		m.sim.Stop()
		m.recorder.Reset()
	case s == sectionHome:
		m.startField()
	}
	m.log.Debug("section", "from", prev, "to", s)
	if m.store != nil && !m.fieldOnly {
		if err := m.store.SetSection(s.String()); err != nil {
			m.log.Warn("saving section", "err", err)
		}
	}
}

func (m *Model) scrollBy(n int) {
	if m.section == sectionHome {
		return
	}
	m.scroll = max(m.scroll+n, 0)
}

func (m *Model) toggleDark() {
	m.dark = !m.dark
	m.theme = ThemeFor(m.dark)
	m.st = newStyles(m.theme)
	if m.store != nil {
		if err := m.store.SetDarkMode(m.dark); err != nil {
			m.log.Warn("saving dark mode", "err", err)
			m.status = "could not save preference"
		}
	}
}

func (m *Model) cycleFilter() {
	if len(m.content.Categories) == 0 {
		return
	}
	m.filter = (m.filter + 1) % len(m.content.Categories)
	m.scroll = 0
	if m.store != nil {
		if err := m.store.SetFilter(m.content.Categories[m.filter].ID); err != nil {
			m.log.Warn("saving filter", "err", err)
		}
	}
}

func (m *Model) navItemAt(x int) int {
	pos := 0
	for i, label := range sectionLabels {
		w := lipgloss.Width(m.st.navItem.Render(label))
		if x >= pos && x < pos+w {
			return i
		}
		pos += w
	}
	return -1
}

func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}
	if m.showHelp {
		return m.helpView()
	}

	var b strings.Builder
	if !m.fieldOnly {
		b.WriteString(m.navView() + "\n")
	}
	b.WriteString(m.bodyView() + "\n")
	b.WriteString(m.footerView())
	return b.String()
}

func (m Model) navView() string {
	items := make([]string, len(sectionLabels))
	for i, label := range sectionLabels {
		switch {
		case section(i) == m.section:
			items[i] = m.st.navOn.Render(label)
		case i == m.hover:
			items[i] = m.st.navHover.Render(label)
		default:
			items[i] = m.st.navItem.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}

func (m Model) bodyView() string {
	h := m.bodyHeight()
	if m.section == sectionHome {
		return m.canvas.Render(m.theme, m.heroOverlays()...)
	}

	width := max(m.width-4, 20)
	var body string
	switch m.section {
	case sectionAbout:
		body = renderAbout(m.st, m.content, width)
	case sectionProjects:
		body = renderProjects(m.st, m.content, m.filter, width)
	case sectionSkills:
		body = renderSkills(m.st, m.content, width)
	case sectionContact:
		body = renderContact(m.st, m.content, width)
	}

	lines := strings.Split(lipgloss.NewStyle().PaddingLeft(2).Render(body), "\n")
	start := min(m.scroll, max(len(lines)-1, 0))
	lines = lines[start:]
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m Model) heroOverlays() []Overlay {
	if m.fieldOnly || m.canvas.Height < 3 {
		return nil
	}
	mid := m.canvas.Height / 2
	name := truncate(m.content.Profile.Name, m.canvas.Width)
	title := truncate(m.content.Profile.Title, m.canvas.Width)
	return []Overlay{
		{Row: mid - 1, Col: center(name, m.canvas.Width), Text: GradientText(name, m.theme.Primary, m.theme.Accent)},
		{Row: mid, Col: center(title, m.canvas.Width), Text: title, Style: m.st.text},
	}
}

func (m Model) footerView() string {
	var hints string
	switch {
	case m.fieldOnly:
		hints = "d theme · q quit"
	case m.section == sectionProjects:
		hints = "←/→ section · f filter · j/k scroll · d theme · ? help · q quit"
	default:
		hints = "←/→ section · j/k scroll · d theme · ? help · q quit"
	}
	parts := []string{m.st.help.Render(hints)}
	if m.section == sectionHome && m.sim.State() == field.Running {
		ptr := m.sim.Pointer()
		parts = append(parts, m.st.muted.Render(fmt.Sprintf("%d particles", m.sim.Field().Len())),
			SparklineChart(m.recorder.Series("rest_offset"), 20, m.st.tag),
			m.st.muted.Render(fmt.Sprintf("(%.0f, %.0f)", ptr.Pos.X, ptr.Pos.Y)))
	}
	if m.scroll > 3 {
		parts = append(parts, m.st.status.Render("↑ top (g)"))
	}
	if m.status != "" {
		parts = append(parts, m.st.status.Render(m.status))
	}
	return truncate(strings.Join(parts, "  "), m.width)
}

func (m Model) helpView() string {
	rows := [][2]string{
		{"1-5 / Tab", "switch section"},
		{"←/→ h/l", "previous / next section"},
		{"j/k, wheel", "scroll"},
		{"g", "back to top"},
		{"f", "cycle project filter"},
		{"d", "toggle dark mode"},
		{"?", "toggle this help"},
		{"q", "quit"},
	}
	var b strings.Builder
	b.WriteString(m.st.title.Render("Keyboard shortcuts") + "\n")
	for _, r := range rows {
		b.WriteString(m.st.subtitle.Width(12).Render(r[0]) + m.st.text.Render(r[1]) + "\n")
	}
	return m.st.card.Render(strings.TrimRight(b.String(), "\n"))
}

func center(s string, width int) int {
	return max((width-lipgloss.Width(s))/2, 0)
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}

// Run starts the TUI on the alternate screen with mouse motion reporting.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
