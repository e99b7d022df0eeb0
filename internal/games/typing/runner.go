package typing

import (
	"context"
	"sync"
	"time"
)

// DefaultTickRate is how many times per second a Runner advances time.
const DefaultTickRate = 30

// Runner drives a Session in real time. One goroutine owns the session:
// keystrokes arrive over a buffered channel and wall-clock time is fed in on
// a ticker, so timer expiry and input are never processed concurrently.
type Runner struct {
	session  *Session
	tickRate int

	mu       sync.Mutex
	snapshot Snapshot
	tick     uint64

	input    chan rune
	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewRunner wraps an idle session. A non-positive tickRate uses
// DefaultTickRate.
func NewRunner(s *Session, tickRate int) *Runner {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return &Runner{
		session:  s,
		tickRate: tickRate,
		snapshot: s.Snapshot(),
		input:    make(chan rune, 64),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Type queues a keystroke. Non-blocking; input is dropped when the queue is
// full or the runner has stopped.
func (r *Runner) Type(ch rune) {
	select {
	case <-r.stop:
		return
	default:
	}
	select {
	case r.input <- ch:
	default:
	}
}

// Run starts the session and blocks until the session ends, ctx is
// cancelled, or Stop is called. onOver is called with the outcome if the
// game was won or lost. Run must be called at most once.
func (r *Runner) Run(ctx context.Context, onOver func(Outcome)) {
	defer close(r.done)
	defer r.update(r.session.Close)

	r.update(func() { r.session.Start() })

	tickDuration := time.Second / time.Duration(r.tickRate)
	ticker := time.NewTicker(tickDuration)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ch := <-r.input:
			r.update(func() { r.session.TypeRune(ch) })

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			r.update(func() {
				r.session.Tick(dt)
				r.tick++
			})

		case <-ctx.Done():
			return

		case <-r.stop:
			return
		}

		if o, ok := r.session.Outcome(); ok {
			if onOver != nil {
				onOver(o)
			}
			return
		}
	}
}

func (r *Runner) update(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn()
	r.snapshot = r.session.Snapshot()
	r.snapshot.Tick = r.tick
}

// Snapshot returns the state after the last processed event.
func (r *Runner) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot
}

// Done is closed when Run returns, after the session has been closed.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}

// Stop asks Run to return. Safe to call more than once.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() {
		close(r.stop)
	})
}
