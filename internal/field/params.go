package field

import (
	"fmt"
	"image/color"
)

// Params holds the fixed constants of a particle field.
type Params struct {
	DensityArea       float64 // px² per particle
	EdgeThreshold     float64
	EdgeMaxOpacity    float64
	TrailLength       int
	RelaxRate         float64 // fraction of the rest offset removed per tick
	Damping           float64
	ResponsivenessMin float64
	ResponsivenessMax float64
	PointerRadius     float64
	DotRadius         float64
	DotOpacity        float64
	TrailOpacity      float64
	Ink               color.RGBA
	Seed              int64
}

// DefaultInk is the violet used for dots, trails and edges.
var DefaultInk = color.RGBA{R: 192, G: 132, B: 252, A: 255}

func DefaultParams() Params {
	return Params{
		DensityArea:       9000,
		EdgeThreshold:     100,
		EdgeMaxOpacity:    0.5,
		TrailLength:       10,
		RelaxRate:         0.1,
		Damping:           0.8,
		ResponsivenessMin: 1,
		ResponsivenessMax: 31,
		PointerRadius:     200,
		DotRadius:         1.5,
		DotOpacity:        0.5,
		TrailOpacity:      0.2,
		Ink:               DefaultInk,
	}
}

func (p Params) Validate() error {
	switch {
	case p.DensityArea <= 0:
		return fmt.Errorf("%w: density area must be positive, got %f", ErrInvalidParams, p.DensityArea)
	case p.EdgeThreshold <= 0:
		return fmt.Errorf("%w: edge threshold must be positive, got %f", ErrInvalidParams, p.EdgeThreshold)
	case p.TrailLength < 1:
		return fmt.Errorf("%w: trail length must be at least 1, got %d", ErrInvalidParams, p.TrailLength)
	case p.RelaxRate <= 0 || p.RelaxRate > 1:
		return fmt.Errorf("%w: relax rate must be in (0, 1], got %f", ErrInvalidParams, p.RelaxRate)
	case p.PointerRadius < 0:
		return fmt.Errorf("%w: pointer radius must not be negative, got %f", ErrInvalidParams, p.PointerRadius)
	case p.ResponsivenessMin > p.ResponsivenessMax:
		return fmt.Errorf("%w: responsiveness min %f exceeds max %f", ErrInvalidParams, p.ResponsivenessMin, p.ResponsivenessMax)
	}
	return nil
}
