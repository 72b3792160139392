package main

import (
	"context"
	"testing"

	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/field"
)

func TestBenchPreset(t *testing.T) {
	params := config.GetPreset("dense").FieldParams()
	params.Seed = 1
	vp := field.Viewport{Width: 450, Height: 300}

	r, err := benchPreset(context.Background(), "dense", params, vp, 50)
	if err != nil {
		t.Fatalf("bench failed: %v", err)
	}
	if r.ticks != 50 {
		t.Errorf("expected 50 ticks, got %d", r.ticks)
	}
	if r.particles != field.ParticleCount(vp, params.DensityArea) {
		t.Errorf("unexpected particle count %d", r.particles)
	}
	if len(r.recorder.Series("rest_offset")) != 50 {
		t.Errorf("expected 50 samples, got %d", len(r.recorder.Series("rest_offset")))
	}
}

func TestBenchPreset_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := benchPreset(ctx, "calm", config.GetPreset("calm").FieldParams(), field.Viewport{Width: 300, Height: 300}, 10)
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestPeak(t *testing.T) {
	if got := peak([]float64{1, 7, 3}); got != 7 {
		t.Errorf("expected 7, got %v", got)
	}
	if got := peak(nil); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}
