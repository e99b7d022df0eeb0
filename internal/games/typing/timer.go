package typing

import "time"

// TimerState is the lifecycle state of a ChallengeTimer.
type TimerState int

const (
	TimerIdle TimerState = iota
	TimerRunning
	TimerExpired
	TimerCancelled
)

// String returns a human-readable name for the state.
func (s TimerState) String() string {
	switch s {
	case TimerIdle:
		return "Idle"
	case TimerRunning:
		return "Running"
	case TimerExpired:
		return "Expired"
	case TimerCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// ChallengeTimer is a single-shot countdown bound to one expiry callback.
//
// The timer has no goroutine of its own: time only moves when Advance is
// called, so expiry is delivered on the caller's goroutine and a Cancel that
// happens before Advance crosses the deadline always suppresses the callback.
type ChallengeTimer struct {
	state     TimerState
	duration  time.Duration
	elapsed   time.Duration
	onExpired func()
	runs      uint64
}

// NewChallengeTimer creates an idle timer that calls onExpired on expiry.
func NewChallengeTimer(onExpired func()) *ChallengeTimer {
	return &ChallengeTimer{onExpired: onExpired}
}

// Start begins a new countdown. A running countdown is cancelled first, so
// there is never more than one pending deadline.
func (t *ChallengeTimer) Start(d time.Duration) {
	if t.state == TimerRunning {
		t.Cancel()
	}
	if d < 0 {
		d = 0
	}
	t.duration = d
	t.elapsed = 0
	t.state = TimerRunning
	t.runs++
}

// Cancel stops a running countdown. Cancelling an idle, expired, or already
// cancelled timer is a no-op.
func (t *ChallengeTimer) Cancel() {
	if t.state != TimerRunning {
		return
	}
	t.state = TimerCancelled
}

// Advance moves the countdown forward by dt. When the deadline is reached the
// timer transitions to Expired and fires the callback exactly once.
// It reports whether the timer expired during this call.
func (t *ChallengeTimer) Advance(dt time.Duration) bool {
	if t.state != TimerRunning || dt < 0 {
		return false
	}
	t.elapsed += dt
	if t.elapsed < t.duration {
		return false
	}
	t.elapsed = t.duration
	t.state = TimerExpired
	if t.onExpired != nil {
		t.onExpired()
	}
	return true
}

// State returns the current lifecycle state.
func (t *ChallengeTimer) State() TimerState {
	return t.state
}

// Running reports whether a countdown is pending.
func (t *ChallengeTimer) Running() bool {
	return t.state == TimerRunning
}

// Duration returns the length of the current (or last) countdown.
func (t *ChallengeTimer) Duration() time.Duration {
	return t.duration
}

// Remaining returns time left on a running countdown, zero otherwise.
func (t *ChallengeTimer) Remaining() time.Duration {
	if t.state != TimerRunning {
		return 0
	}
	return t.duration - t.elapsed
}

// Progress returns elapsed/duration in [0, 1] for progress indicators.
func (t *ChallengeTimer) Progress() float64 {
	if t.duration <= 0 {
		if t.state == TimerExpired {
			return 1
		}
		return 0
	}
	p := float64(t.elapsed) / float64(t.duration)
	if p > 1 {
		p = 1
	}
	return p
}

// Runs returns how many times Start has been called.
func (t *ChallengeTimer) Runs() uint64 {
	return t.runs
}

// DeadlinePolicy derives a challenge duration from word length and level.
type DeadlinePolicy struct {
	BaseTimePerLetter time.Duration
	MinTimePerLetter  time.Duration
	ScalingFactor     time.Duration // subtracted from BaseTimePerLetter per level
	Floor             time.Duration
}

// DefaultDeadlinePolicy returns 1.2s per letter, shrinking by 0.1s per level
// down to 0.3s per letter.
func DefaultDeadlinePolicy() DeadlinePolicy {
	return DeadlinePolicy{
		BaseTimePerLetter: 1200 * time.Millisecond,
		MinTimePerLetter:  300 * time.Millisecond,
		ScalingFactor:     100 * time.Millisecond,
		Floor:             time.Second,
	}
}

// For returns wordLen * max(Min, Base - Scaling*level), never below Floor
// and never zero.
func (p DeadlinePolicy) For(wordLen, level int) time.Duration {
	if wordLen < 1 {
		wordLen = 1
	}
	perLetter := p.BaseTimePerLetter - p.ScalingFactor*time.Duration(level)
	if perLetter < p.MinTimePerLetter {
		perLetter = p.MinTimePerLetter
	}
	d := perLetter * time.Duration(wordLen)
	if d < p.Floor {
		d = p.Floor
	}
	if d <= 0 {
		d = time.Millisecond
	}
	return d
}
