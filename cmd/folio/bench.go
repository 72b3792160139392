package main

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/export"
	"github.com/san-kum/folio/internal/field"
	"github.com/san-kum/folio/internal/metrics"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type benchResult struct {
	name      string
	particles int
	ticks     int
	elapsed   time.Duration
	recorder  *metrics.Recorder
}

// nullSurface discards drawing so bench times the simulation alone.
type nullSurface struct{}

func (nullSurface) Clear()                                           {}
func (nullSurface) Dot(field.Vec2, float64, color.RGBA, float64)     {}
func (nullSurface) Polyline([]field.Vec2, color.RGBA, float64)       {}
func (nullSurface) Line(field.Vec2, field.Vec2, color.RGBA, float64) {}

func runBench(cmd *cobra.Command, args []string) error {
	base, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	names := args
	if len(names) == 0 {
		names = config.ListPresets()
		sort.Strings(names)
	}
	vp := field.Viewport{Width: float64(base.Display.Width), Height: float64(base.Display.Height)}

	results := make([]benchResult, len(names))
	g, ctx := errgroup.WithContext(cmd.Context())
	for i, name := range names {
		cfg := config.GetPreset(name)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s", name)
		}
		params := cfg.FieldParams()
		params.Seed = 42
		if base.Seed != 0 {
			params.Seed = base.Seed
		}
		g.Go(func() error {
			r, err := benchPreset(ctx, name, params, vp, benchTicks)
			results[i] = r
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("benchmarking %d presets at %.0fx%.0f, %d ticks\n\n", len(names), vp.Width, vp.Height, benchTicks)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tPARTICLES\tTICKS\tTIME\tTICKS/SEC\tMAX OFFSET\tEDGES")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%d\t%v\t%.0f\t%.1f\t%.0f\n",
			r.name, r.particles, r.ticks, r.elapsed.Round(time.Microsecond),
			float64(r.ticks)/r.elapsed.Seconds(), peak(r.recorder.Series("max_offset")), r.recorder.Last("edges"))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Println()

	for _, r := range results {
		data := r.recorder.Series("rest_offset")
		if len(data) < 2 {
			continue
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s: mean rest offset (px) per tick", r.name)),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

// benchPreset runs one field headless with the pointer sweeping across it.
func benchPreset(ctx context.Context, name string, params field.Params, vp field.Viewport, n int) (benchResult, error) {
	rec := metrics.NewRecorder(n, metrics.Defaults()...)
	sched := field.NewManualScheduler()
	sim := field.NewSimulator(params, nil, nullSurface{}, sched)
	sim.AddObserver(rec)
	if err := sim.Start(vp); err != nil {
		return benchResult{}, fmt.Errorf("%s: %w", name, err)
	}
	defer sim.Stop()

	res := benchResult{name: name, particles: sim.Field().Len(), recorder: rec}
	start := time.Now()
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		p := export.SweepPosition(vp, i, n)
		sim.MovePointer(p.X, p.Y)
		sched.Step()
	}
	res.ticks = int(sim.Ticks())
	res.elapsed = time.Since(start)
	return res, nil
}

func peak(xs []float64) float64 {
	m := 0.0
	for _, x := range xs {
		m = max(m, x)
	}
	return m
}
