package typing

import (
	"context"
	"testing"
	"time"
)

func waitDone(t *testing.T, r *Runner) {
	t.Helper()
	select {
	case <-r.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("Runner did not stop in time")
	}
}

func TestRunnerReportsDefeat(t *testing.T) {
	settings := DefaultSettings()
	settings.PlayerHealth = 10
	s, err := NewSession(settings, []*Enemy{NewEnemy("Bug", 50, "")}, []string{"loop"})
	if err != nil {
		t.Fatal(err)
	}

	r := NewRunner(s, 100)
	outcomes := make(chan Outcome, 1)
	r.Type('x')
	go r.Run(context.Background(), func(o Outcome) { outcomes <- o })

	select {
	case o := <-outcomes:
		if o.Result != ResultDefeat {
			t.Errorf("Expected defeat, got %s", o.Result)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Expected an outcome")
	}
	waitDone(t, r)

	snap := r.Snapshot()
	if !snap.Over || snap.PlayerHealth != 0 {
		t.Errorf("Expected final snapshot to show defeat, got over=%v health=%d", snap.Over, snap.PlayerHealth)
	}
}

func TestRunnerTypesWord(t *testing.T) {
	s, err := NewSession(DefaultSettings(), []*Enemy{NewEnemy("Bug", 5000, "")}, []string{"loop"})
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(s, 100)
	for _, ch := range "loop" {
		r.Type(ch)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go r.Run(ctx, nil)

	deadline := time.After(2 * time.Second)
	for {
		if r.Snapshot().Stats.Words == 1 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("Expected the queued word to be completed")
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()
	waitDone(t, r)

	if snap := r.Snapshot(); snap.EnemyHealth != 4500 {
		t.Errorf("Expected enemy health 4500, got %d", snap.EnemyHealth)
	}
}

func TestRunnerStopCancelsTimers(t *testing.T) {
	s, err := NewSession(DefaultSettings(), []*Enemy{NewEnemy("Bug", 50, "")}, []string{"loop"})
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(s, 0)
	go r.Run(context.Background(), nil)

	r.Stop()
	waitDone(t, r)
	r.Stop()
	r.Type('l') // dropped, must not block

	if s.timer.Running() {
		t.Error("Challenge timer should be cancelled after Stop")
	}
	if s.Phase() != PhaseOver {
		t.Errorf("Expected over phase, got %s", s.Phase())
	}
}
