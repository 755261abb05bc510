package motion

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned for a ramp stop that is not a hex colour.
var ErrInvalidColor = errors.New("motion: invalid colour")

// ColorRamp blends evenly spaced colour stops by progress.
type ColorRamp struct {
	stops []colorful.Color
}

// NewColorRamp parses hex stops such as "#1a0033". At least one stop is
// required.
func NewColorRamp(hexStops ...string) (*ColorRamp, error) {
	if len(hexStops) == 0 {
		return nil, fmt.Errorf("%w: no stops", ErrInvalidColor)
	}
	r := &ColorRamp{stops: make([]colorful.Color, 0, len(hexStops))}
	for _, h := range hexStops {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrInvalidColor, h, err)
		}
		r.stops = append(r.stops, c)
	}
	return r, nil
}

// At returns the blended colour at progress p, clamped to [0, 1], as a
// lowercase hex string.
func (r *ColorRamp) At(p float64) string {
	if len(r.stops) == 1 {
		return r.stops[0].Hex()
	}
	if math.IsNaN(p) {
		p = 0
	}
	pos := math.Min(math.Max(p, 0), 1) * float64(len(r.stops)-1)
	i := int(pos)
	if i >= len(r.stops)-1 {
		return r.stops[len(r.stops)-1].Hex()
	}
	frac := pos - float64(i)
	if frac == 0 {
		return r.stops[i].Hex()
	}
	return r.stops[i].BlendLab(r.stops[i+1], frac).Clamped().Hex()
}
