package gui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/field"
	"github.com/san-kum/folio/internal/metrics"
	"github.com/san-kum/folio/internal/storage"
)

const fontPath = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"

type palette struct {
	bg, text, dim rl.Color
}

var (
	darkPalette  = palette{bg: rl.NewColor(17, 24, 39, 255), text: rl.NewColor(243, 244, 246, 255), dim: rl.NewColor(107, 114, 128, 255)}
	lightPalette = palette{bg: rl.NewColor(249, 250, 251, 255), text: rl.NewColor(17, 24, 39, 255), dim: rl.NewColor(156, 163, 175, 255)}
)

type Options struct {
	Config *config.Config
	Store  *storage.Store
	Logger *slog.Logger
	Dark   bool
}

// App runs the field in a resizable raylib window. The mouse drives the
// pointer and every window frame steps the simulator once.
type App struct {
	cfg   *config.Config
	store *storage.Store
	log   *slog.Logger

	sim      *field.Simulator
	sched    *field.ManualScheduler
	surface  *Window
	recorder *metrics.Recorder

	colors  palette
	dark    bool
	paused  bool
	showHUD bool
	font    rl.Font
}

func NewApp(opts Options) *App {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	a := &App{
		cfg:      cfg,
		store:    opts.Store,
		log:      log,
		sched:    field.NewManualScheduler(),
		surface:  &Window{},
		recorder: metrics.NewRecorder(200, metrics.Defaults()...),
		showHUD:  true,
	}
	a.setDark(opts.Dark)
	a.sim = field.NewSimulator(cfg.FieldParams(), nil, a.surface, a.sched)
	a.sim.SetLogger(log)
	a.sim.AddObserver(a.recorder)
	return a
}

func (a *App) setDark(dark bool) {
	a.dark = dark
	a.colors = lightPalette
	if dark {
		a.colors = darkPalette
	}
	a.surface.Background = a.colors.bg
}

func initWindow(w, h, fps int) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(w), int32(h), "folio")
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)
}

// loadFont falls back to raylib's built-in font when Liberation Mono is
// not installed.
func loadFont() rl.Font {
	if _, err := os.Stat(fontPath); err != nil {
		return rl.GetFontDefault()
	}
	font := rl.LoadFontEx(fontPath, 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func windowViewport() field.Viewport {
	return field.Viewport{Width: float64(rl.GetScreenWidth()), Height: float64(rl.GetScreenHeight())}
}

// Run opens the window and blocks until it is closed.
func (a *App) Run() error {
	d := a.cfg.Display
	initWindow(d.Width, d.Height, d.FPS)
	defer rl.CloseWindow()
	a.font = loadFont()

	if err := a.sim.Start(windowViewport()); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	defer a.sim.Stop()

	for !rl.WindowShouldClose() {
		if a.update() {
			break
		}
		a.draw()
	}
	return nil
}

// update handles input and reports whether the app should quit.
func (a *App) update() bool {
	pos := rl.GetMousePosition()
	a.sim.MovePointer(float64(pos.X), float64(pos.Y))

	if rl.IsWindowResized() {
		a.resize(windowViewport())
	}

	switch {
	case rl.IsKeyPressed(rl.KeyQ):
		return true
	case rl.IsKeyPressed(rl.KeySpace):
		a.paused = !a.paused
	case rl.IsKeyPressed(rl.KeyH):
		a.showHUD = !a.showHUD
	case rl.IsKeyPressed(rl.KeyD):
		a.setDark(!a.dark)
		if a.store != nil {
			if err := a.store.SetDarkMode(a.dark); err != nil {
				a.log.Warn("saving dark mode", "err", err)
			}
		}
	}
	return false
}

// resize rebuilds a running field for vp. A field lost to an empty window,
// such as a minimised one, starts again once the window has a size.
func (a *App) resize(vp field.Viewport) {
	a.recorder.Reset()
	var err error
	if a.sim.State() == field.Running {
		err = a.sim.Resize(vp)
	} else {
		err = a.sim.Start(vp)
	}
	switch {
	case errors.Is(err, field.ErrSurfaceUnavailable):
		a.log.Debug("field paused for empty window", "width", vp.Width, "height", vp.Height)
	case err != nil:
		a.log.Warn("resize", "err", err)
	}
}

func (a *App) draw() {
	rl.BeginDrawing()
	// a frame ticks and renders the field; paused frames redraw it as is
	if a.paused || !a.sched.Step() {
		if f := a.sim.Field(); f != nil {
			field.Render(a.surface, f)
		} else {
			a.surface.Clear()
		}
	}
	if a.showHUD {
		a.drawHUD()
	}
	rl.EndDrawing()
}

func (a *App) drawHUD() {
	h := rl.GetScreenHeight()
	w := rl.GetScreenWidth()
	a.drawText("folio", 30, 30, 24, a.colors.text)

	if f := a.sim.Field(); f != nil {
		a.drawText(fmt.Sprintf("%d particles  %d edges", f.Len(), int(a.recorder.Last("edges"))), 30, 60, 14, a.colors.dim)
	}
	status := "RUNNING"
	if a.paused {
		status = "PAUSED"
	}
	a.drawText(status, w-120, 30, 16, a.colors.dim)

	a.drawTelemetry(30, h-100, 400, 50)
	a.drawText("[SPACE] PAUSE  [D] THEME  [H] HUD  [Q] QUIT", w-460, h-40, 14, a.colors.dim)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), 30, h-40, 14, a.colors.dim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

func (a *App) drawTelemetry(x, y, width, height int) {
	series := a.recorder.Series("rest_offset")
	pts := telemetryPoints(series, rl.NewRectangle(float32(x), float32(y), float32(width), float32(height)))
	if len(pts) < 2 {
		return
	}
	rl.DrawLineStrip(pts, fade(a.cfg.FieldParams().Ink, 0.8))
	a.drawText(fmt.Sprintf("offset %.1f px", series[len(series)-1]), x+width+10, y+height-10, 14, a.colors.dim)
}

// telemetryPoints scales series into r, oldest sample on the left and the
// series range mapped onto the full height.
func telemetryPoints(series []float64, r rl.Rectangle) []rl.Vector2 {
	if len(series) < 2 {
		return nil
	}
	lo, hi := series[0], series[0]
	for _, v := range series {
		lo, hi = min(lo, v), max(hi, v)
	}
	if hi == lo {
		hi = lo + 1
	}
	pts := make([]rl.Vector2, len(series))
	for i, v := range series {
		px := r.X + float32(i)/float32(len(series)-1)*r.Width
		py := r.Y + r.Height - float32((v-lo)/(hi-lo))*r.Height
		pts[i] = rl.NewVector2(px, py)
	}
	return pts
}
