// Package domain contains the pomodoro timer state machine.
package domain

import "time"

// Phase identifies the interval type currently being timed.
type Phase string

const (
	PhaseWork       Phase = "work"
	PhaseShortBreak Phase = "short_break"
	PhaseLongBreak  Phase = "long_break"
)

// Config holds the fixed interval lengths for a timer.
// All durations must be positive and CyclesBeforeLong must be at least 1;
// the CLI layer validates this before a Timer is constructed.
type Config struct {
	WorkDuration       time.Duration
	ShortBreakDuration time.Duration
	LongBreakDuration  time.Duration
	CyclesBeforeLong   int
}

// DefaultConfig returns the classic pomodoro intervals.
func DefaultConfig() Config {
	return Config{
		WorkDuration:       25 * time.Minute,
		ShortBreakDuration: 5 * time.Minute,
		LongBreakDuration:  20 * time.Minute,
		CyclesBeforeLong:   4,
	}
}

// PhaseDuration returns the configured length of the given phase.
func (c Config) PhaseDuration(p Phase) time.Duration {
	switch p {
	case PhaseShortBreak:
		return c.ShortBreakDuration
	case PhaseLongBreak:
		return c.LongBreakDuration
	default:
		return c.WorkDuration
	}
}

// Transition records a phase change produced by Advance.
type Transition struct {
	From Phase
	To   Phase
}

// Timer is the pomodoro state machine. It owns the current phase, the time
// left in it, the pause flag and the work-cycle counter. All methods are
// total functions; the Timer performs no I/O and holds no external
// resources.
type Timer struct {
	cfg             Config
	phase           Phase
	remaining       time.Duration
	running         bool
	completedCycles int // work phases finished since the last long break
}

// New creates a timer in the Work phase with the full work duration
// remaining. The timer starts paused; Start begins the countdown.
func New(cfg Config) *Timer {
	return &Timer{
		cfg:       cfg,
		phase:     PhaseWork,
		remaining: cfg.WorkDuration,
	}
}

// Config returns the interval configuration the timer was built with.
func (t *Timer) Config() Config { return t.cfg }

// Phase returns the interval type currently being timed.
func (t *Timer) Phase() Phase { return t.phase }

// Remaining returns the time left in the current phase. It is never
// negative and never exceeds the configured duration of the phase.
func (t *Timer) Remaining() time.Duration { return t.remaining }

// Running reports whether ticks currently advance the countdown.
func (t *Timer) Running() bool { return t.running }

// CompletedCycles returns the number of work phases finished since the
// last long break, always in [0, CyclesBeforeLong).
func (t *Timer) CompletedCycles() int { return t.completedCycles }

// CycleNumber returns the 1-based cycle the timer is in, for display.
// During a short break it names the cycle just finished; a long break
// always belongs to the final cycle.
func (t *Timer) CycleNumber() int {
	switch t.phase {
	case PhaseShortBreak:
		return t.completedCycles
	case PhaseLongBreak:
		return t.cfg.CyclesBeforeLong
	default:
		return t.completedCycles + 1
	}
}

// Duration returns the configured length of the current phase.
func (t *Timer) Duration() time.Duration {
	return t.cfg.PhaseDuration(t.phase)
}

// Ratio returns remaining/duration for the current phase, in [0, 1].
func (t *Timer) Ratio() float64 {
	d := t.Duration()
	if d <= 0 {
		return 0
	}
	return float64(t.remaining) / float64(d)
}

// Progress returns the elapsed share of the current phase (0.0 to 1.0).
func (t *Timer) Progress() float64 {
	return 1 - t.Ratio()
}

// Start begins or resumes the countdown. It never resets remaining time:
// pausing and starting again picks up where the countdown left off.
func (t *Timer) Start() { t.running = true }

// TogglePause flips the running flag. Remaining time is preserved.
func (t *Timer) TogglePause() { t.running = !t.running }

// Advance moves the countdown forward by elapsed wall-clock time. It is a
// no-op while paused and for non-positive elapsed values. When the current
// phase runs out, Advance performs exactly one transition and the next
// phase begins at its full duration; elapsed time beyond the phase
// boundary is discarded. The returned Transition is meaningful only when
// ok is true.
func (t *Timer) Advance(elapsed time.Duration) (tr Transition, ok bool) {
	if !t.running || elapsed <= 0 {
		return Transition{}, false
	}
	if elapsed < t.remaining {
		t.remaining -= elapsed
		return Transition{}, false
	}

	tr.From = t.phase
	switch t.phase {
	case PhaseWork:
		t.completedCycles++
		if t.completedCycles >= t.cfg.CyclesBeforeLong {
			t.completedCycles = 0
			t.phase = PhaseLongBreak
		} else {
			t.phase = PhaseShortBreak
		}
	case PhaseShortBreak, PhaseLongBreak:
		t.phase = PhaseWork
	}
	t.remaining = t.cfg.PhaseDuration(t.phase)
	tr.To = t.phase
	return tr, true
}

// PhaseLabel returns a human-readable name for a phase.
func PhaseLabel(p Phase) string {
	switch p {
	case PhaseWork:
		return "Work"
	case PhaseShortBreak:
		return "Short Break"
	case PhaseLongBreak:
		return "Long Break"
	default:
		return "Unknown"
	}
}
