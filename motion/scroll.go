package motion

import (
	"math"
	"sync"
)

// Mapping binds a named visual parameter to a scroll domain. Offsets in
// Domain are mapped linearly onto Range; offsets outside it are clamped
// to the nearest end of Range.
type Mapping struct {
	Name   string
	Domain [2]float64
	Range  [2]float64
}

// Interpolate maps offset from domain onto rng. It never divides by
// zero: with domain[0] == domain[1] the result is rng[0] below the
// bound and rng[1] at or above it. NaN is treated as below the domain.
func Interpolate(offset float64, domain, rng [2]float64) float64 {
	d0, d1 := domain[0], domain[1]
	switch {
	case math.IsNaN(offset), offset < d0:
		return rng[0]
	case offset >= d1:
		return rng[1]
	}
	t := (offset - d0) / (d1 - d0)
	return rng[0] + (rng[1]-rng[0])*t
}

// Progress reports how far through the scrollable height offset is, in
// [0, 1]. A page with nothing to scroll is always at 0.
func Progress(offset, scrollable float64) float64 {
	if scrollable <= 0 || math.IsNaN(offset) {
		return 0
	}
	return Interpolate(offset, [2]float64{0, scrollable}, [2]float64{0, 1})
}

// ScrollMapper evaluates a set of mappings against a scroll offset.
type ScrollMapper struct {
	mu       sync.Mutex
	mappings []Mapping
	last     float64
	stopped  bool
}

// NewScrollMapper returns a mapper configured with mappings.
func NewScrollMapper(mappings ...Mapping) *ScrollMapper {
	m := &ScrollMapper{}
	m.Configure(mappings)
	return m
}

// Configure replaces the mapper's mappings. A later mapping with the same
// name as an earlier one wins in Evaluate.
func (m *ScrollMapper) Configure(mappings []Mapping) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mappings = append([]Mapping(nil), mappings...)
}

// Mappings returns a copy of the configured mappings.
func (m *ScrollMapper) Mappings() []Mapping {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Mapping(nil), m.mappings...)
}

// Evaluate returns every configured parameter at offset.
func (m *ScrollMapper) Evaluate(offset float64) map[string]float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.stopped {
		m.last = offset
	}
	out := make(map[string]float64, len(m.mappings))
	for _, mp := range m.mappings {
		out[mp.Name] = Interpolate(offset, mp.Domain, mp.Range)
	}
	return out
}

// Value evaluates a single named parameter. ok is false if no mapping has
// that name.
func (m *ScrollMapper) Value(name string, offset float64) (v float64, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.mappings) - 1; i >= 0; i-- {
		if m.mappings[i].Name == name {
			return Interpolate(offset, m.mappings[i].Domain, m.mappings[i].Range), true
		}
	}
	return 0, false
}

// LastOffset returns the most recent offset passed to Evaluate before
// Stop.
func (m *ScrollMapper) LastOffset() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

// Stop freezes the mapper's recorded state. Evaluate keeps answering,
// since it is a pure function of its input, but LastOffset no longer
// moves.
func (m *ScrollMapper) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = true
}
