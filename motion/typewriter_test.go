package motion

import (
	"errors"
	"testing"
	"time"
)

type fakeTimer struct {
	f       func()
	d       time.Duration
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	live := !t.stopped && !t.fired
	t.stopped = true
	return live
}

// fakeScheduler records every AfterFunc call and fires them on demand.
type fakeScheduler struct {
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	t := &fakeTimer{f: f, d: d}
	s.timers = append(s.timers, t)
	return t
}

func (s *fakeScheduler) live() []*fakeTimer {
	var out []*fakeTimer
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			out = append(out, t)
		}
	}
	return out
}

// fire runs the one pending timer, failing if there is not exactly one.
func (s *fakeScheduler) fire(t *testing.T) {
	t.Helper()
	live := s.live()
	if len(live) != 1 {
		t.Fatalf("pending timers = %d, want 1", len(live))
	}
	live[0].fired = true
	live[0].f()
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func TestTypewriterFullCycle(t *testing.T) {
	sched := &fakeScheduler{}
	var texts []string
	tw, err := StartTypewriter([]string{"Hi", "Yo"}, Timing{Typing: ms(10), Deleting: ms(5), Pause: ms(20)},
		WithScheduler(sched),
		WithOnText(func(s string) { texts = append(texts, s) }),
	)
	if err != nil {
		t.Fatalf("StartTypewriter: %v", err)
	}
	defer tw.Stop()

	wantTexts := []string{
		"H", "Hi", "Hi", "Hi", "H", "", "",
		"Y", "Yo", "Yo", "Yo", "Y", "", "",
	}
	wantDelays := []time.Duration{
		ms(10), // first tick
		ms(10), ms(10), ms(20), ms(5), ms(5), ms(5), ms(10),
		ms(10), ms(10), ms(20), ms(5), ms(5), ms(5), ms(10),
	}

	for i := range wantTexts {
		sched.fire(t)
		if i == 6 {
			if got := tw.State(); got.Index != 1 || got.Phase != PhaseTyping {
				t.Fatalf("after first cycle state = %+v, want index 1 typing", got)
			}
		}
	}

	if len(texts) != len(wantTexts) {
		t.Fatalf("got %d texts %q, want %d", len(texts), texts, len(wantTexts))
	}
	for i := range wantTexts {
		if texts[i] != wantTexts[i] {
			t.Errorf("tick %d text = %q, want %q", i+1, texts[i], wantTexts[i])
		}
	}
	for i, want := range wantDelays {
		if got := sched.timers[i].d; got != want {
			t.Errorf("timer %d delay = %v, want %v", i, got, want)
		}
	}
	if got := tw.State(); got != (TypewriterState{Index: 0, Visible: 0, Phase: PhaseTyping}) {
		t.Errorf("after two cycles state = %+v, want back at index 0", got)
	}
}

func TestTypewriterSingleText(t *testing.T) {
	tw, err := NewTypewriter([]string{"X"}, Timing{Typing: ms(1), Deleting: ms(1), Pause: ms(1)})
	if err != nil {
		t.Fatalf("NewTypewriter: %v", err)
	}
	want := []string{"X", "X", "X", "", ""}
	for round := 0; round < 20; round++ {
		for i, w := range want {
			got, _ := tw.Step()
			if got != w {
				t.Fatalf("round %d step %d = %q, want %q", round, i, got, w)
			}
			if idx := tw.State().Index; idx != 0 {
				t.Fatalf("index = %d, want 0", idx)
			}
		}
	}
}

func TestTypewriterRunes(t *testing.T) {
	tw, err := NewTypewriter([]string{"héllo"}, DefaultTiming())
	if err != nil {
		t.Fatalf("NewTypewriter: %v", err)
	}
	tw.Step()
	got, _ := tw.Step()
	if got != "hé" {
		t.Errorf("after two steps text = %q, want %q", got, "hé")
	}
}

func TestTypewriterConfigErrors(t *testing.T) {
	if _, err := NewTypewriter(nil, DefaultTiming()); !errors.Is(err, ErrEmptySequence) {
		t.Errorf("empty texts error = %v, want ErrEmptySequence", err)
	}
	if _, err := StartTypewriter([]string{}, DefaultTiming()); !errors.Is(err, ErrEmptySequence) {
		t.Errorf("StartTypewriter empty texts error = %v, want ErrEmptySequence", err)
	}
	bad := Timing{Typing: ms(10), Deleting: -1, Pause: ms(10)}
	if _, err := NewTypewriter([]string{"a"}, bad); !errors.Is(err, ErrInvalidTiming) {
		t.Errorf("negative timing error = %v, want ErrInvalidTiming", err)
	}
}

func TestTypewriterStop(t *testing.T) {
	sched := &fakeScheduler{}
	calls := 0
	tw, err := StartTypewriter([]string{"abc"}, DefaultTiming(),
		WithScheduler(sched),
		WithOnText(func(string) { calls++ }),
	)
	if err != nil {
		t.Fatalf("StartTypewriter: %v", err)
	}
	sched.fire(t)
	sched.fire(t)

	tw.Stop()
	tw.Stop()

	if n := len(sched.live()); n != 0 {
		t.Fatalf("pending timers after Stop = %d, want 0", n)
	}
	before := tw.State()
	if text, _ := tw.Step(); text != "ab" {
		t.Errorf("Step after Stop = %q, want frozen %q", text, "ab")
	}
	tw.Start()
	if got := tw.State(); got != before {
		t.Errorf("state changed after Stop: %+v -> %+v", before, got)
	}
	if n := len(sched.live()); n != 0 {
		t.Errorf("Start after Stop scheduled %d timers", n)
	}
	if calls != 2 {
		t.Errorf("text callbacks = %d, want 2", calls)
	}
}

func TestTypewriterStartTwice(t *testing.T) {
	sched := &fakeScheduler{}
	tw, err := NewTypewriter([]string{"a"}, DefaultTiming(), WithScheduler(sched))
	if err != nil {
		t.Fatalf("NewTypewriter: %v", err)
	}
	tw.Start()
	tw.Start()
	if n := len(sched.live()); n != 1 {
		t.Errorf("pending timers = %d, want 1", n)
	}
	tw.Stop()
}

func TestTypewriterRealTimer(t *testing.T) {
	got := make(chan string, 16)
	tw, err := StartTypewriter([]string{"go"}, Timing{Typing: ms(1), Deleting: ms(1), Pause: ms(1)},
		WithOnText(func(s string) {
			select {
			case got <- s:
			default:
			}
		}),
	)
	if err != nil {
		t.Fatalf("StartTypewriter: %v", err)
	}
	defer tw.Stop()

	select {
	case s := <-got:
		if s != "g" {
			t.Errorf("first text = %q, want %q", s, "g")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no tick within 2s")
	}
}

func TestPhaseString(t *testing.T) {
	if PhasePausing.String() != "pausing" {
		t.Errorf("PhasePausing.String() = %q", PhasePausing.String())
	}
	if Phase(9).String() != "Phase(9)" {
		t.Errorf("Phase(9).String() = %q", Phase(9).String())
	}
}
