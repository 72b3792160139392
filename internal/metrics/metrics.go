package metrics

import (
	"github.com/san-kum/folio/internal/field"
)

// Metric samples a scalar from the field once per tick.
type Metric interface {
	Name() string
	Sample(f *field.Field) float64
}

// Recorder is a field.Observer that keeps one series per metric.
type Recorder struct {
	metrics []Metric
	series  map[string][]float64
	limit   int
}

// NewRecorder keeps at most limit samples per metric; limit <= 0 keeps all.
func NewRecorder(limit int, ms ...Metric) *Recorder {
	r := &Recorder{
		metrics: ms,
		series:  make(map[string][]float64, len(ms)),
		limit:   limit,
	}
	for _, m := range ms {
		r.series[m.Name()] = nil
	}
	return r
}

func (r *Recorder) OnTick(f *field.Field, tick uint64) {
	for _, m := range r.metrics {
		s := append(r.series[m.Name()], m.Sample(f))
		if r.limit > 0 && len(s) > r.limit {
			s = s[1:]
		}
		r.series[m.Name()] = s
	}
}

func (r *Recorder) Names() []string {
	names := make([]string, len(r.metrics))
	for i, m := range r.metrics {
		names[i] = m.Name()
	}
	return names
}

func (r *Recorder) Series(name string) []float64 { return r.series[name] }

// Last returns the most recent sample of name, or 0.
func (r *Recorder) Last(name string) float64 {
	s := r.series[name]
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}

func (r *Recorder) Reset() {
	for k := range r.series {
		r.series[k] = nil
	}
}

// RestOffset is the mean distance of particles from their rest positions.
type RestOffset struct{}

func (RestOffset) Name() string { return "rest_offset" }

func (RestOffset) Sample(f *field.Field) float64 {
	if f.Len() == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < f.Len(); i++ {
		p := f.Particle(i)
		sum += p.Pos.Dist(p.Rest)
	}
	return sum / float64(f.Len())
}

// MaxOffset is the largest distance any particle sits from rest.
type MaxOffset struct{}

func (MaxOffset) Name() string { return "max_offset" }

func (MaxOffset) Sample(f *field.Field) float64 {
	m := 0.0
	for i := 0; i < f.Len(); i++ {
		p := f.Particle(i)
		if d := p.Pos.Dist(p.Rest); d > m {
			m = d
		}
	}
	return m
}

// Edges counts the proximity edges that will be drawn this tick.
type Edges struct{}

func (Edges) Name() string { return "edges" }

func (Edges) Sample(f *field.Field) float64 {
	n := 0
	f.Edges(func(i, j int, opacity float64) { n++ })
	return float64(n)
}

// Defaults returns the metrics reported by bench.
func Defaults() []Metric {
	return []Metric{RestOffset{}, MaxOffset{}, Edges{}}
}
