package typing

import "testing"

type recordingObserver struct {
	name  string
	calls *[]string
	seen  []int
}

func (r *recordingObserver) OnLevelChanged(level int) {
	r.seen = append(r.seen, level)
	*r.calls = append(*r.calls, r.name)
}

func TestLevelTrackerNotifiesInOrder(t *testing.T) {
	var calls []string
	a := &recordingObserver{name: "a", calls: &calls}
	b := &recordingObserver{name: "b", calls: &calls}

	tr := NewLevelTracker(1)
	tr.Subscribe(a)
	tr.Subscribe(b)
	tr.Subscribe(a)

	if got := tr.Advance(); got != 2 {
		t.Fatalf("Expected level 2, got %d", got)
	}

	want := []string{"a", "b", "a"}
	if len(calls) != len(want) {
		t.Fatalf("Expected %d notifications, got %d", len(want), len(calls))
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("Notification %d: expected %q, got %q", i, want[i], calls[i])
		}
	}
	if len(a.seen) != 2 || a.seen[0] != 2 {
		t.Errorf("Duplicate subscriber should see level 2 twice, got %v", a.seen)
	}
}

func TestLevelTrackerUnsubscribe(t *testing.T) {
	var calls []string
	a := &recordingObserver{name: "a", calls: &calls}
	b := &recordingObserver{name: "b", calls: &calls}

	tr := NewLevelTracker(1)
	tr.Subscribe(a)
	tr.Subscribe(b)
	tr.Unsubscribe(a)

	if tr.Subscribers() != 1 {
		t.Fatalf("Expected 1 subscriber, got %d", tr.Subscribers())
	}
	tr.Advance()
	if len(a.seen) != 0 {
		t.Errorf("Removed observer should not be notified, got %v", a.seen)
	}
	if len(b.seen) != 1 {
		t.Errorf("Remaining observer should be notified once, got %v", b.seen)
	}
}

// leavingObserver unsubscribes itself on its first notification.
type leavingObserver struct {
	tracker *LevelTracker
	seen    int
}

func (l *leavingObserver) OnLevelChanged(int) {
	l.seen++
	l.tracker.Unsubscribe(l)
}

func TestLevelTrackerUnsubscribeDuringAdvance(t *testing.T) {
	var calls []string
	tr := NewLevelTracker(1)
	leaver := &leavingObserver{tracker: tr}
	b := &recordingObserver{name: "b", calls: &calls}
	c := &recordingObserver{name: "c", calls: &calls}
	tr.Subscribe(leaver)
	tr.Subscribe(b)
	tr.Subscribe(c)

	tr.Advance()
	if leaver.seen != 1 {
		t.Errorf("Expected leaver notified once, got %d", leaver.seen)
	}
	if len(b.seen) != 1 || len(c.seen) != 1 {
		t.Errorf("Remaining observers must all be notified, got b=%v c=%v", b.seen, c.seen)
	}

	tr.Advance()
	if leaver.seen != 1 {
		t.Errorf("Unsubscribed observer notified again, got %d", leaver.seen)
	}
	if tr.Subscribers() != 2 || len(b.seen) != 2 || len(c.seen) != 2 {
		t.Errorf("Expected 2 subscribers notified twice, got %d subscribers, b=%v c=%v", tr.Subscribers(), b.seen, c.seen)
	}
}

func TestLevelTrackerFuncObserver(t *testing.T) {
	var got int
	f := LevelObserverFunc(func(level int) { got = level })

	tr := NewLevelTracker(0)
	if tr.Level() != 1 {
		t.Errorf("Start level should clamp to 1, got %d", tr.Level())
	}
	tr.Subscribe(f)
	tr.Subscribe(nil)
	tr.Unsubscribe(f) // not comparable, must not panic
	tr.Advance()

	if got != 2 {
		t.Errorf("Expected func observer to see 2, got %d", got)
	}
	if tr.Subscribers() != 1 {
		t.Errorf("Expected 1 subscriber, got %d", tr.Subscribers())
	}
}

func TestScalingRescale(t *testing.T) {
	tests := []struct {
		name    string
		policy  ScalingPolicy
		current int
		level   int
		want    int
	}{
		{"level two", DefaultScaling(), 100, 2, 120},
		{"level three", DefaultScaling(), 120, 3, 156},
		{"truncates", DefaultScaling(), 1000, 2, 1200},
		{"zero modifier", ScalingPolicy{}, 80, 9, 80},
		{"never below one", ScalingPolicy{Modifier: -1}, 10, 5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.policy.Rescale(tt.current, tt.level); got != tt.want {
				t.Errorf("Rescale(%d, %d) = %d, expected %d", tt.current, tt.level, got, tt.want)
			}
		})
	}
}

func TestBackdropFollowsLevel(t *testing.T) {
	themes := []Theme{{Name: "one"}, {Name: "two"}}
	b := NewBackdrop(themes)

	if b.Current().Name != "one" {
		t.Errorf("Expected level 1 theme, got %q", b.Current().Name)
	}

	tr := NewLevelTracker(1)
	tr.Subscribe(b)
	tr.Advance()
	if b.Current().Name != "two" {
		t.Errorf("Expected level 2 theme, got %q", b.Current().Name)
	}

	tr.Advance()
	if b.Current().Name != "one" {
		t.Errorf("Missing theme should fall back to level 1, got %q", b.Current().Name)
	}
}
