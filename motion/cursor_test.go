package motion

import (
	"encoding/json"
	"math"
	"testing"
	"time"
)

func TestCursorTrailBounded(t *testing.T) {
	c := NewCursor()
	if got := len(c.Snapshot().Trail); got != DefaultTrailLength {
		t.Fatalf("initial trail length = %d, want %d", got, DefaultTrailLength)
	}
	for i := 1; i <= 12; i++ {
		x, y := float64(i*10), float64(i*5)
		c.Handle(PointerEvent{Kind: EventMove, X: x, Y: y})
		snap := c.Snapshot()
		if len(snap.Trail) != DefaultTrailLength {
			t.Fatalf("after %d moves trail length = %d, want %d", i, len(snap.Trail), DefaultTrailLength)
		}
		if snap.Trail[0].X != x || snap.Trail[0].Y != y {
			t.Errorf("head = (%v, %v), want (%v, %v)", snap.Trail[0].X, snap.Trail[0].Y, x, y)
		}
		if snap.Position != (Point{X: x, Y: y}) {
			t.Errorf("position = %+v, want (%v, %v)", snap.Position, x, y)
		}
	}
	// Oldest kept sample is move 8.
	if got := c.Snapshot().Trail[DefaultTrailLength-1].X; got != 80 {
		t.Errorf("tail x = %v, want 80", got)
	}
}

func TestCursorTrailLengthOption(t *testing.T) {
	c := NewCursor(WithTrailLength(3), WithTrailLength(0))
	for i := 0; i < 10; i++ {
		c.Handle(PointerEvent{Kind: EventMove, X: float64(i)})
	}
	if got := len(c.Snapshot().Trail); got != 3 {
		t.Errorf("trail length = %d, want 3", got)
	}
}

func TestCursorVisibility(t *testing.T) {
	c := NewCursor()
	c.Handle(PointerEvent{Kind: EventMove, X: 1, Y: 1})
	if c.Snapshot().Visible {
		t.Fatal("cursor visible before entering the viewport")
	}
	c.Handle(PointerEvent{Kind: EventEnter})
	for i := 0; i < 3; i++ {
		c.Handle(PointerEvent{Kind: EventMove, X: float64(i), Y: 2})
		if !c.Snapshot().Visible {
			t.Fatal("cursor hidden while inside the viewport")
		}
	}
	c.Handle(PointerEvent{Kind: EventLeave})
	if c.Snapshot().Visible {
		t.Fatal("cursor visible after leaving the viewport")
	}
}

func TestCursorTrailDecay(t *testing.T) {
	c := NewCursor()
	for i := 0; i < DefaultTrailLength; i++ {
		c.Handle(PointerEvent{Kind: EventMove, X: float64(i), Y: float64(i)})
	}
	for _, tp := range c.Snapshot().Trail {
		if tp.Opacity != 0 {
			t.Fatalf("hidden cursor trail opacity = %v, want 0", tp.Opacity)
		}
	}

	c.Handle(PointerEvent{Kind: EventEnter})
	snap := c.Snapshot()
	for i, tp := range snap.Trail {
		falloff := 1 - float64(i)*TrailDecay
		if math.Abs(tp.Opacity-TrailOpacity*falloff) > 1e-9 {
			t.Errorf("trail[%d] opacity = %v, want %v", i, tp.Opacity, TrailOpacity*falloff)
		}
		if math.Abs(tp.Scale-falloff) > 1e-9 {
			t.Errorf("trail[%d] scale = %v, want %v", i, tp.Scale, falloff)
		}
	}
}

func TestCursorPressAndHover(t *testing.T) {
	c := NewCursor()
	c.Handle(PointerEvent{Kind: EventEnter})

	c.Handle(PointerEvent{Kind: EventHover, Interactive: true})
	snap := c.Snapshot()
	if !snap.HoveringInteractive || snap.CursorScale() != 1.5 {
		t.Errorf("hovering = %v scale = %v, want true 1.5", snap.HoveringInteractive, snap.CursorScale())
	}

	c.Handle(PointerEvent{Kind: EventPress})
	snap = c.Snapshot()
	if !snap.Pressed || snap.CursorScale() != 0.8 || snap.DotScale() != 0.5 {
		t.Errorf("pressed = %v scale = %v dot = %v", snap.Pressed, snap.CursorScale(), snap.DotScale())
	}

	c.Handle(PointerEvent{Kind: EventRelease})
	c.Handle(PointerEvent{Kind: EventHover, Interactive: false})
	snap = c.Snapshot()
	if snap.Pressed || snap.HoveringInteractive || snap.CursorScale() != 1 || snap.DotScale() != 1 {
		t.Errorf("after release and unhover: %+v", snap)
	}
	if snap.Opacity() != 1 {
		t.Errorf("opacity = %v, want 1", snap.Opacity())
	}
}

func TestCursorStartStop(t *testing.T) {
	events := make(chan PointerEvent)
	c := StartCursor(events)

	events <- PointerEvent{Kind: EventEnter}
	events <- PointerEvent{Kind: EventMove, X: 7, Y: 9}

	deadline := time.Now().Add(2 * time.Second)
	for c.Snapshot().Position != (Point{X: 7, Y: 9}) {
		if time.Now().After(deadline) {
			t.Fatal("move event not applied")
		}
		time.Sleep(time.Millisecond)
	}

	c.Stop()
	before := c.Snapshot()
	c.Stop()
	c.Handle(PointerEvent{Kind: EventMove, X: 100, Y: 100})
	c.Handle(PointerEvent{Kind: EventLeave})

	after := c.Snapshot()
	if after.Position != before.Position || after.Visible != before.Visible || after.Trail[0] != before.Trail[0] {
		t.Errorf("state changed after Stop: %+v -> %+v", before, after)
	}
}

func TestCursorStopBeforeStart(t *testing.T) {
	c := NewCursor()
	c.Stop()
	c.Stop()

	events := make(chan PointerEvent, 1)
	c.Start(events)
	events <- PointerEvent{Kind: EventEnter}
	c.Handle(PointerEvent{Kind: EventEnter})
	if c.Snapshot().Visible {
		t.Error("stopped cursor reacted to events")
	}
}

func TestCursorClosedSource(t *testing.T) {
	events := make(chan PointerEvent)
	c := StartCursor(events)
	close(events)
	c.Stop()
}

func TestPointerEventJSON(t *testing.T) {
	var ev PointerEvent
	if err := json.Unmarshal([]byte(`{"kind":"Move","x":3,"y":4}`), &ev); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if ev.Kind != EventMove || ev.X != 3 || ev.Y != 4 {
		t.Errorf("decoded %+v", ev)
	}
	b, err := json.Marshal(PointerEvent{Kind: EventHover, Interactive: true})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `{"kind":"hover","interactive":true}` {
		t.Errorf("encoded %s", b)
	}
	if err := json.Unmarshal([]byte(`{"kind":"wiggle"}`), &ev); err == nil {
		t.Error("unknown kind decoded without error")
	}
}
