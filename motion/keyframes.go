package motion

import (
	"math"
	"time"
)

// Easing reshapes linear progress t in [0, 1].
type Easing func(t float64) float64

// Linear leaves progress unchanged.
func Linear(t float64) float64 { return t }

// EaseInOut starts and ends slowly.
func EaseInOut(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// RepeatMode decides what a track does after one pass.
type RepeatMode int

const (
	// RepeatLoop jumps back to the first value.
	RepeatLoop RepeatMode = iota
	// RepeatReverse plays the values backwards, then forwards again.
	RepeatReverse
)

// Track is a looping keyframe animation over evenly spaced values. It
// drives the floating icons and shapes behind the page.
type Track struct {
	Values   []float64
	Duration time.Duration
	Delay    time.Duration
	Ease     Easing
	Repeat   RepeatMode
}

// Sample returns the track's value elapsed time after the animation
// was mounted. The first value is held during Delay.
func (tr Track) Sample(elapsed time.Duration) float64 {
	switch len(tr.Values) {
	case 0:
		return 0
	case 1:
		return tr.Values[0]
	}
	if elapsed <= tr.Delay {
		return tr.Values[0]
	}
	if tr.Duration <= 0 {
		return tr.Values[len(tr.Values)-1]
	}

	run := elapsed - tr.Delay
	pass := int64(run / tr.Duration)
	t := float64(run%tr.Duration) / float64(tr.Duration)
	if tr.Repeat == RepeatReverse && pass%2 == 1 {
		t = 1 - t
	}
	ease := tr.Ease
	if ease == nil {
		ease = Linear
	}
	return tr.at(ease(t))
}

// at interpolates between keyframes at progress t.
func (tr Track) at(t float64) float64 {
	segments := float64(len(tr.Values) - 1)
	pos := math.Min(math.Max(t, 0), 1) * segments
	i := int(pos)
	if i >= len(tr.Values)-1 {
		return tr.Values[len(tr.Values)-1]
	}
	return tr.Values[i] + (tr.Values[i+1]-tr.Values[i])*(pos-float64(i))
}
