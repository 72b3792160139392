package config

var Presets = map[string]*Config{
	"calm": {
		Field: FieldConfig{
			DensityArea: 12000, EdgeThreshold: 90, EdgeMaxOpacity: 0.35, TrailLength: 6,
			RelaxRate: 0.05, Damping: 0.4, ResponsivenessMin: 1, ResponsivenessMax: 12,
			PointerRadius: 150, DotRadius: 1.5, DotOpacity: 0.4, TrailOpacity: 0.15, Ink: "#93c5fd",
		},
	},
	"dense": {
		Field: FieldConfig{
			DensityArea: 4500, EdgeThreshold: 80, EdgeMaxOpacity: 0.4, TrailLength: 10,
			RelaxRate: 0.1, Damping: 0.8, ResponsivenessMin: 1, ResponsivenessMax: 31,
			PointerRadius: 200, DotRadius: 1.2, DotOpacity: 0.5, TrailOpacity: 0.2, Ink: "#c084fc",
		},
	},
	"sparse": {
		Field: FieldConfig{
			DensityArea: 20000, EdgeThreshold: 160, EdgeMaxOpacity: 0.5, TrailLength: 10,
			RelaxRate: 0.1, Damping: 0.8, ResponsivenessMin: 1, ResponsivenessMax: 31,
			PointerRadius: 220, DotRadius: 2, DotOpacity: 0.6, TrailOpacity: 0.2, Ink: "#c084fc",
		},
	},
	"storm": {
		Field: FieldConfig{
			DensityArea: 7000, EdgeThreshold: 110, EdgeMaxOpacity: 0.6, TrailLength: 20,
			RelaxRate: 0.03, Damping: 1.6, ResponsivenessMin: 10, ResponsivenessMax: 40,
			PointerRadius: 260, DotRadius: 1.5, DotOpacity: 0.7, TrailOpacity: 0.3, Ink: "#f472b6",
		},
	},
}

// GetPreset returns a full config with the named preset's field section
// over the defaults, or nil if there is no such preset.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Field = p.Field
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
