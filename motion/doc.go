// Package motion holds the animation state behind the portfolio page:
// scroll-linked section values, the hero typewriter, the custom cursor
// trail, and the looping keyframe tracks of the floating decorations.
//
// Nothing here renders. Each unit consumes an input stream supplied by a
// host (scroll offsets, timer ticks, pointer events) and exposes the
// derived values for the host to draw. Every unit has a Stop method that
// is safe to call more than once.
package motion
