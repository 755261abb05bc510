package motion

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	// ErrEmptySequence is returned when a typewriter is given no texts.
	ErrEmptySequence = errors.New("motion: typewriter needs at least one text")
	// ErrInvalidTiming is returned for negative typewriter durations.
	ErrInvalidTiming = errors.New("motion: typewriter timing must not be negative")
)

// Phase is the typewriter's current activity.
type Phase int

const (
	PhaseTyping Phase = iota
	PhasePausing
	PhaseDeleting
)

func (p Phase) String() string {
	switch p {
	case PhaseTyping:
		return "typing"
	case PhasePausing:
		return "pausing"
	case PhaseDeleting:
		return "deleting"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Timing holds the tick interval for each phase.
type Timing struct {
	Typing   time.Duration
	Deleting time.Duration
	Pause    time.Duration
}

// DefaultTiming matches the hero banner: 100ms per typed character, 50ms
// per deleted one and a two second pause on the full text.
func DefaultTiming() Timing {
	return Timing{
		Typing:   100 * time.Millisecond,
		Deleting: 50 * time.Millisecond,
		Pause:    2 * time.Second,
	}
}

func (t Timing) validate() error {
	if t.Typing < 0 || t.Deleting < 0 || t.Pause < 0 {
		return fmt.Errorf("%w: %+v", ErrInvalidTiming, t)
	}
	return nil
}

// interval returns how long to wait before the tick that follows entering p.
func (t Timing) interval(p Phase) time.Duration {
	switch p {
	case PhasePausing:
		return t.Pause
	case PhaseDeleting:
		return t.Deleting
	}
	return t.Typing
}

// TypewriterState is a point in the type/pause/delete cycle.
// Visible counts runes of Texts[Index] currently shown.
type TypewriterState struct {
	Index   int
	Visible int
	Phase   Phase
}

// Timer is a pending scheduled call. *time.Timer satisfies it.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d. It is the typewriter's timer source.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// TypewriterOption configures a Typewriter.
type TypewriterOption func(*typewriterOptions)

type typewriterOptions struct {
	scheduler Scheduler
	onText    func(string)
}

// WithScheduler replaces the default time.AfterFunc timer source.
func WithScheduler(s Scheduler) TypewriterOption {
	return func(o *typewriterOptions) {
		o.scheduler = s
	}
}

// WithOnText registers f to receive the visible text after every tick.
// f is called without the typewriter's lock held, one tick at a time.
func WithOnText(f func(string)) TypewriterOption {
	return func(o *typewriterOptions) {
		o.onText = f
	}
}

// Typewriter cycles through a list of texts, typing each one out,
// pausing, deleting it and moving on to the next.
type Typewriter struct {
	mu      sync.Mutex
	texts   [][]rune
	timing  Timing
	state   TypewriterState
	sched   Scheduler
	onText  func(string)
	pending Timer
	started bool
	stopped bool
}

// NewTypewriter returns a typewriter at the start of texts[0]. It does not
// tick until Start is called or the host calls Step.
func NewTypewriter(texts []string, timing Timing, opts ...TypewriterOption) (*Typewriter, error) {
	if len(texts) == 0 {
		return nil, ErrEmptySequence
	}
	if err := timing.validate(); err != nil {
		return nil, err
	}
	o := typewriterOptions{scheduler: realScheduler{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.scheduler == nil {
		o.scheduler = realScheduler{}
	}

	tw := &Typewriter{
		timing: timing,
		sched:  o.scheduler,
		onText: o.onText,
		state:  TypewriterState{Phase: PhaseTyping},
	}
	for _, s := range texts {
		tw.texts = append(tw.texts, []rune(s))
	}
	return tw, nil
}

// StartTypewriter creates a typewriter and starts it.
func StartTypewriter(texts []string, timing Timing, opts ...TypewriterOption) (*Typewriter, error) {
	tw, err := NewTypewriter(texts, timing, opts...)
	if err != nil {
		return nil, err
	}
	tw.Start()
	return tw, nil
}

// Start schedules the first tick. Calling Start again, or after Stop,
// does nothing.
func (tw *Typewriter) Start() {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.started || tw.stopped {
		return
	}
	tw.started = true
	tw.pending = tw.sched.AfterFunc(tw.timing.interval(tw.state.Phase), tw.tick)
	Logger().Debug("typewriter started", "texts", len(tw.texts))
}

func (tw *Typewriter) tick() {
	tw.mu.Lock()
	if tw.stopped {
		tw.mu.Unlock()
		return
	}
	tw.pending = nil
	text, next := tw.stepLocked()
	onText := tw.onText
	tw.mu.Unlock()

	if onText != nil {
		onText(text)
	}

	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.stopped {
		return
	}
	tw.pending = tw.sched.AfterFunc(next, tw.tick)
}

// Step advances the machine by one tick and returns the visible text and
// the delay before the next tick. Hosts with their own timer source can
// drive the typewriter with Step instead of Start. Step after Stop
// returns the frozen text without advancing.
func (tw *Typewriter) Step() (text string, next time.Duration) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.stopped {
		return tw.textLocked(), 0
	}
	return tw.stepLocked()
}

func (tw *Typewriter) stepLocked() (string, time.Duration) {
	s := &tw.state
	current := tw.texts[s.Index]
	switch s.Phase {
	case PhaseTyping:
		if s.Visible < len(current) {
			s.Visible++
		} else {
			s.Phase = PhasePausing
		}
	case PhasePausing:
		s.Phase = PhaseDeleting
	case PhaseDeleting:
		if s.Visible > 0 {
			s.Visible--
		} else {
			s.Index = (s.Index + 1) % len(tw.texts)
			s.Phase = PhaseTyping
		}
	}
	return tw.textLocked(), tw.timing.interval(s.Phase)
}

func (tw *Typewriter) textLocked() string {
	return string(tw.texts[tw.state.Index][:tw.state.Visible])
}

// Text returns the currently visible prefix.
func (tw *Typewriter) Text() string {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	return tw.textLocked()
}

// State returns the current machine state.
func (tw *Typewriter) State() TypewriterState {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	return tw.state
}

// Stop cancels the pending tick and freezes the state. A tick already
// running may still deliver its text, but nothing is rescheduled. Stop is
// idempotent.
func (tw *Typewriter) Stop() {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.stopped {
		return
	}
	tw.stopped = true
	if tw.pending != nil {
		tw.pending.Stop()
		tw.pending = nil
	}
	Logger().Debug("typewriter stopped", "index", tw.state.Index)
}
