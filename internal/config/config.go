package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/folio/internal/field"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDensityArea    = 9000.0
	DefaultEdgeThreshold  = 100.0
	DefaultEdgeMaxOpacity = 0.5
	DefaultTrailLength    = 10
	DefaultRelaxRate      = 0.1
	DefaultDamping        = 0.8
	DefaultPointerRadius  = 200.0
	DefaultFPS            = 60
	DefaultCellWidth      = 8.0
	DefaultCellHeight     = 16.0
)

type Config struct {
	Field   FieldConfig   `yaml:"field"`
	Display DisplayConfig `yaml:"display"`
	Seed    int64         `yaml:"seed"`
}

type FieldConfig struct {
	DensityArea       float64 `yaml:"density_area"`
	EdgeThreshold     float64 `yaml:"edge_threshold"`
	EdgeMaxOpacity    float64 `yaml:"edge_max_opacity"`
	TrailLength       int     `yaml:"trail_length"`
	RelaxRate         float64 `yaml:"relax_rate"`
	Damping           float64 `yaml:"damping"`
	ResponsivenessMin float64 `yaml:"responsiveness_min"`
	ResponsivenessMax float64 `yaml:"responsiveness_max"`
	PointerRadius     float64 `yaml:"pointer_radius"`
	DotRadius         float64 `yaml:"dot_radius"`
	DotOpacity        float64 `yaml:"dot_opacity"`
	TrailOpacity      float64 `yaml:"trail_opacity"`
	Ink               string  `yaml:"ink"`
}

// DisplayConfig controls the front ends. CellWidth and CellHeight map a
// terminal cell onto the pixel space the field is simulated in.
type DisplayConfig struct {
	FPS        int     `yaml:"fps"`
	Theme      string  `yaml:"theme"`
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Field: FieldConfig{
			DensityArea:       DefaultDensityArea,
			EdgeThreshold:     DefaultEdgeThreshold,
			EdgeMaxOpacity:    DefaultEdgeMaxOpacity,
			TrailLength:       DefaultTrailLength,
			RelaxRate:         DefaultRelaxRate,
			Damping:           DefaultDamping,
			ResponsivenessMin: 1,
			ResponsivenessMax: 31,
			PointerRadius:     DefaultPointerRadius,
			DotRadius:         1.5,
			DotOpacity:        0.5,
			TrailOpacity:      0.2,
			Ink:               "#c084fc",
		},
		Display: DisplayConfig{
			FPS:        DefaultFPS,
			Theme:      "auto",
			CellWidth:  DefaultCellWidth,
			CellHeight: DefaultCellHeight,
			Width:      1280,
			Height:     720,
		},
	}
}

// Load reads a YAML file over the defaults, so a partial file only
// overrides what it names.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a YAML file over base, typically a preset. base is
// modified and returned.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if _, err := ParseHex(c.Field.Ink); err != nil {
		return err
	}
	if c.Display.FPS <= 0 {
		return fmt.Errorf("config: fps must be positive, got %d", c.Display.FPS)
	}
	if c.Display.CellWidth <= 0 || c.Display.CellHeight <= 0 {
		return fmt.Errorf("config: cell size must be positive, got %gx%g", c.Display.CellWidth, c.Display.CellHeight)
	}
	switch c.Display.Theme {
	case "auto", "dark", "light":
	default:
		return fmt.Errorf("config: unknown theme %q (want auto, dark or light)", c.Display.Theme)
	}
	return c.FieldParams().Validate()
}

// FieldParams converts the YAML view into simulator parameters. An
// unparsable ink falls back to the default violet.
func (c *Config) FieldParams() field.Params {
	ink, err := ParseHex(c.Field.Ink)
	if err != nil {
		ink = field.DefaultInk
	}
	return field.Params{
		DensityArea:       c.Field.DensityArea,
		EdgeThreshold:     c.Field.EdgeThreshold,
		EdgeMaxOpacity:    c.Field.EdgeMaxOpacity,
		TrailLength:       c.Field.TrailLength,
		RelaxRate:         c.Field.RelaxRate,
		Damping:           c.Field.Damping,
		ResponsivenessMin: c.Field.ResponsivenessMin,
		ResponsivenessMax: c.Field.ResponsivenessMax,
		PointerRadius:     c.Field.PointerRadius,
		DotRadius:         c.Field.DotRadius,
		DotOpacity:        c.Field.DotOpacity,
		TrailOpacity:      c.Field.TrailOpacity,
		Ink:               ink,
		Seed:              c.Seed,
	}
}

// ParseHex parses "#rrggbb" (the leading # is optional).
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("config: invalid colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("config: invalid colour %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
