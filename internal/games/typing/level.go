package typing

import (
	"reflect"
	"slices"
)

// LevelObserver is notified every time the level advances.
type LevelObserver interface {
	OnLevelChanged(level int)
}

// LevelObserverFunc adapts a plain function to LevelObserver.
type LevelObserverFunc func(level int)

// OnLevelChanged calls f(level).
func (f LevelObserverFunc) OnLevelChanged(level int) {
	f(level)
}

// LevelTracker holds the current level and fans out changes to subscribers.
// Subscribers are notified in registration order; registering the same
// observer twice notifies it twice. The tracker never owns its subscribers.
type LevelTracker struct {
	level     int
	observers []LevelObserver
}

// NewLevelTracker creates a tracker at the given starting level (minimum 1).
func NewLevelTracker(start int) *LevelTracker {
	if start < 1 {
		start = 1
	}
	return &LevelTracker{level: start}
}

// Subscribe appends an observer to the registry.
func (t *LevelTracker) Subscribe(o LevelObserver) {
	if o == nil {
		return
	}
	t.observers = append(t.observers, o)
}

// Unsubscribe removes the first registration of o, if any. Observers whose
// dynamic type is not comparable (such as LevelObserverFunc) cannot be
// removed.
func (t *LevelTracker) Unsubscribe(o LevelObserver) {
	if o == nil || !reflect.TypeOf(o).Comparable() {
		return
	}
	for i, existing := range t.observers {
		if !reflect.TypeOf(existing).Comparable() {
			continue
		}
		if existing == o {
			// A fresh slice keeps an in-progress Advance iterating the old one.
			t.observers = slices.Delete(slices.Clone(t.observers), i, i+1)
			return
		}
	}
}

// Advance increments the level by one and synchronously notifies every
// subscriber before returning the new level.
func (t *LevelTracker) Advance() int {
	t.level++
	for _, o := range t.observers {
		o.OnLevelChanged(t.level)
	}
	return t.level
}

// Level returns the current level.
func (t *LevelTracker) Level() int {
	return t.level
}

// Subscribers returns the number of registrations.
func (t *LevelTracker) Subscribers() int {
	return len(t.observers)
}
