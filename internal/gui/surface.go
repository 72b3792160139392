package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/folio/internal/field"
)

// Window is a field.Surface that draws straight into the raylib frame.
// It must only be used between rl.BeginDrawing and rl.EndDrawing.
type Window struct {
	Background rl.Color
	strip      []rl.Vector2
}

func (w *Window) Clear() { rl.ClearBackground(w.Background) }

func (w *Window) Dot(at field.Vec2, radius float64, ink color.RGBA, opacity float64) {
	rl.DrawCircleV(vec(at), float32(radius), fade(ink, opacity))
}

func (w *Window) Line(a, b field.Vec2, ink color.RGBA, opacity float64) {
	rl.DrawLineV(vec(a), vec(b), fade(ink, opacity))
}

func (w *Window) Polyline(pts []field.Vec2, ink color.RGBA, opacity float64) {
	w.strip = w.strip[:0]
	for _, p := range pts {
		w.strip = append(w.strip, vec(p))
	}
	rl.DrawLineStrip(w.strip, fade(ink, opacity))
}

func vec(p field.Vec2) rl.Vector2 { return rl.NewVector2(float32(p.X), float32(p.Y)) }

// fade returns ink with its alpha scaled by opacity.
func fade(ink color.RGBA, opacity float64) rl.Color {
	switch {
	case opacity < 0:
		opacity = 0
	case opacity > 1:
		opacity = 1
	}
	return rl.NewColor(ink.R, ink.G, ink.B, uint8(float64(ink.A)*opacity+0.5))
}
