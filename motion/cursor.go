package motion

import (
	"fmt"
	"math"
	"strings"
	"sync"
)

const (
	// DefaultTrailLength is the number of trail samples kept.
	DefaultTrailLength = 5
	// TrailOpacity is the opacity a fresh trail sample starts with.
	TrailOpacity = 0.8
	// TrailDecay is the opacity and scale lost per trail index.
	TrailDecay = 0.15
)

// EventKind identifies a pointer or viewport event.
type EventKind int

const (
	EventEnter EventKind = iota + 1
	EventLeave
	EventMove
	EventPress
	EventRelease
	EventHover
)

var eventNames = map[EventKind]string{
	EventEnter:   "enter",
	EventLeave:   "leave",
	EventMove:    "move",
	EventPress:   "press",
	EventRelease: "release",
	EventHover:   "hover",
}

func (k EventKind) String() string {
	if s, ok := eventNames[k]; ok {
		return s
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// MarshalText encodes the kind by name.
func (k EventKind) MarshalText() ([]byte, error) {
	s, ok := eventNames[k]
	if !ok {
		return nil, fmt.Errorf("motion: unknown event kind %d", int(k))
	}
	return []byte(s), nil
}

// UnmarshalText decodes a kind name such as "move".
func (k *EventKind) UnmarshalText(b []byte) error {
	name := strings.ToLower(string(b))
	for kind, s := range eventNames {
		if s == name {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("motion: unknown event kind %q", string(b))
}

// PointerEvent is one input to a Cursor. X and Y are read for EventMove,
// Interactive for EventHover. Whether a hovered target counts as
// interactive is the host's call.
type PointerEvent struct {
	Kind        EventKind `json:"kind"`
	X           float64   `json:"x,omitempty"`
	Y           float64   `json:"y,omitempty"`
	Interactive bool      `json:"interactive,omitempty"`
}

// Point is a viewport position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TrailPoint is a rendered trail sample.
type TrailPoint struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Opacity float64 `json:"opacity"`
	Scale   float64 `json:"scale"`
}

// CursorSnapshot is a copy of a cursor's state, ready to render. Trail[0]
// is the newest sample.
type CursorSnapshot struct {
	Position            Point        `json:"position"`
	Visible             bool         `json:"visible"`
	Pressed             bool         `json:"pressed"`
	HoveringInteractive bool         `json:"hovering_interactive"`
	Trail               []TrailPoint `json:"trail"`
}

// Opacity of the ring and dot.
func (s CursorSnapshot) Opacity() float64 {
	if s.Visible {
		return 1
	}
	return 0
}

// CursorScale is the ring's scale: shrunk while pressed, grown over
// interactive targets.
func (s CursorSnapshot) CursorScale() float64 {
	switch {
	case s.Pressed:
		return 0.8
	case s.HoveringInteractive:
		return 1.5
	}
	return 1
}

// DotScale is the centre dot's scale.
func (s CursorSnapshot) DotScale() float64 {
	if s.Pressed {
		return 0.5
	}
	return 1
}

type sample struct {
	x, y, opacity float64
}

// CursorOption configures a Cursor.
type CursorOption func(*Cursor)

// WithTrailLength sets the trail capacity. Values below 1 are ignored.
func WithTrailLength(n int) CursorOption {
	return func(c *Cursor) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// Cursor tracks the pointer for a custom cursor: its position, a few
// flags, and a fixed-size trail of recent positions. The zero value is
// not usable; call NewCursor.
type Cursor struct {
	mu       sync.Mutex
	capacity int
	pos      Point
	visible  bool
	pressed  bool
	hovering bool
	trail    []sample // ring buffer, head is the newest sample
	head     int
	stopped  bool

	quit chan struct{}
	done chan struct{}
	once sync.Once
}

// NewCursor returns a hidden cursor whose trail holds capacity
// transparent samples at the origin.
func NewCursor(opts ...CursorOption) *Cursor {
	c := &Cursor{capacity: DefaultTrailLength}
	for _, opt := range opts {
		opt(c)
	}
	c.trail = make([]sample, c.capacity)
	return c
}

// StartCursor returns a cursor already listening to events.
func StartCursor(events <-chan PointerEvent, opts ...CursorOption) *Cursor {
	c := NewCursor(opts...)
	c.Start(events)
	return c
}

// Start applies events from the channel until it is closed or Stop is
// called. Only the first call has an effect.
func (c *Cursor) Start(events <-chan PointerEvent) {
	c.mu.Lock()
	if c.stopped || c.quit != nil {
		c.mu.Unlock()
		return
	}
	c.quit = make(chan struct{})
	c.done = make(chan struct{})
	quit, done := c.quit, c.done
	c.mu.Unlock()

	go func() {
		defer close(done)
		for {
			select {
			case <-quit:
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				c.Handle(ev)
			}
		}
	}()
}

// Handle applies a single event. Events after Stop are ignored.
func (c *Cursor) Handle(ev PointerEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return
	}
	switch ev.Kind {
	case EventEnter:
		c.visible = true
	case EventLeave:
		c.visible = false
	case EventMove:
		c.pos = Point{X: ev.X, Y: ev.Y}
		c.push(sample{x: ev.X, y: ev.Y, opacity: TrailOpacity})
	case EventPress:
		c.pressed = true
	case EventRelease:
		c.pressed = false
	case EventHover:
		c.hovering = ev.Interactive
	default:
		Logger().Debug("cursor ignored event", "kind", ev.Kind)
	}
}

// push puts s at the head, overwriting the oldest sample.
func (c *Cursor) push(s sample) {
	c.head = (c.head - 1 + len(c.trail)) % len(c.trail)
	c.trail[c.head] = s
}

// Snapshot copies the current state. Trail opacity and scale fall off by
// TrailDecay per index; trail opacity is zero while the cursor is hidden.
func (c *Cursor) Snapshot() CursorSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap := CursorSnapshot{
		Position:            c.pos,
		Visible:             c.visible,
		Pressed:             c.pressed,
		HoveringInteractive: c.hovering,
		Trail:               make([]TrailPoint, len(c.trail)),
	}
	for i := range c.trail {
		s := c.trail[(c.head+i)%len(c.trail)]
		falloff := math.Max(0, 1-float64(i)*TrailDecay)
		tp := TrailPoint{X: s.x, Y: s.y, Scale: falloff}
		if c.visible {
			tp.Opacity = s.opacity * falloff
		}
		snap.Trail[i] = tp
	}
	return snap
}

// Stop detaches the cursor from its event source and freezes its state.
// It is safe to call before Start and more than once.
func (c *Cursor) Stop() {
	c.mu.Lock()
	c.stopped = true
	quit, done := c.quit, c.done
	c.mu.Unlock()

	if quit == nil {
		return
	}
	c.once.Do(func() { close(quit) })
	<-done
}
