package export

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"math"
	"path/filepath"
	"strings"

	"github.com/san-kum/folio/internal/field"
)

var (
	ErrNoFrames      = errors.New("export: no frames captured")
	ErrUnknownFormat = errors.New("export: unknown format")
)

type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
	FormatGIF Format = "gif"
)

// ParseFormat accepts a format name or a file name whose extension names
// the format.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimPrefix(filepath.Ext(s), "."))
	if name == "" {
		name = strings.ToLower(s)
	}
	switch f := Format(name); f {
	case FormatSVG, FormatPNG, FormatGIF:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Options describes a headless run of the field.
type Options struct {
	Format     Format
	Params     field.Params
	Viewport   field.Viewport
	Background color.RGBA
	Ticks      int  // frames to simulate, at least one
	FPS        int  // GIF playback rate
	Sweep      bool // move the pointer across the field while simulating
	Logger     *slog.Logger
}

// SweepPosition is the pointer position at tick i of n when sweeping: one
// pass left to right along a sine wave through the middle of vp.
func SweepPosition(vp field.Viewport, i, n int) field.Vec2 {
	t := 0.0
	if n > 1 {
		t = float64(i) / float64(n-1)
	}
	return field.Vec2{
		X: vp.Width * t,
		Y: vp.Height/2 + vp.Height/4*math.Sin(2*math.Pi*t),
	}
}

// Run simulates opts.Ticks frames and writes the result to w: the last
// frame for SVG and PNG, every frame for GIF.
func Run(w io.Writer, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	ticks := max(opts.Ticks, 1)

	var (
		surface field.Surface
		svg     *SVG
		raster  *Raster
		anim    *GIF
	)
	switch opts.Format {
	case FormatSVG:
		svg = NewSVG(opts.Viewport, opts.Background)
		surface = svg
	case FormatPNG, FormatGIF:
		raster = NewRaster(opts.Viewport, opts.Background)
		surface = raster
		if opts.Format == FormatGIF {
			anim = NewGIF(opts.Background, opts.Params.Ink, opts.FPS)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}

	sched := field.NewManualScheduler()
	sim := field.NewSimulator(opts.Params, nil, surface, sched)
	sim.SetLogger(log)
	if err := sim.Start(opts.Viewport); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer sim.Stop()

	for i := 0; i < ticks; i++ {
		if opts.Sweep {
			p := SweepPosition(opts.Viewport, i, ticks)
			sim.MovePointer(p.X, p.Y)
		}
		if !sched.Step() {
			return fmt.Errorf("export: field stopped after %d ticks", i)
		}
		if anim != nil {
			anim.Capture(raster.Image())
		}
	}
	log.Debug("export simulated", "format", opts.Format, "ticks", ticks, "particles", sim.Field().Len())

	switch opts.Format {
	case FormatSVG:
		_, err := svg.WriteTo(w)
		return err
	case FormatPNG:
		return raster.WritePNG(w)
	default:
		return anim.Encode(w)
	}
}
