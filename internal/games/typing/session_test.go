package typing

import (
	"errors"
	"math/rand"
	"testing"
	"time"
)

func newTestSession(t *testing.T, settings Settings, enemies []*Enemy, words ...string) *Session {
	t.Helper()
	s, err := NewSession(settings, enemies, words, WithRand(rand.New(rand.NewSource(1))))
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	s.Start()
	return s
}

func typeWord(s *Session, word string) Verdict {
	var v Verdict
	for _, r := range word {
		v = s.TypeRune(r)
	}
	return v
}

func TestSessionCompletedWordDefeatsEnemy(t *testing.T) {
	bug := NewEnemy("Bug", 50, "")
	crash := NewEnemy("Crash", 100, "")
	s := newTestSession(t, DefaultSettings(), []*Enemy{bug, crash}, "loop")

	v := typeWord(s, "loop")
	if v.Kind != VerdictWordComplete {
		t.Fatalf("Expected word complete, got %s", v.Kind)
	}
	if v.Transition != TransitionEnemyDefeated {
		t.Fatalf("Expected enemy defeated, got %s", v.Transition)
	}

	if s.Level() != 2 {
		t.Errorf("Expected level 2, got %d", s.Level())
	}
	if s.CurrentEnemy() != crash {
		t.Errorf("Expected Crash, got %s", s.CurrentEnemy().Name())
	}
	if crash.MaxHealth() != 120 || crash.Health() != 120 {
		t.Errorf("Expected Crash rescaled to 120/120, got %d/%d", crash.Health(), crash.MaxHealth())
	}
	if bug.MaxHealth() != 60 || bug.Health() != 60 {
		t.Errorf("Expected Bug rescaled to 60/60, got %d/%d", bug.Health(), bug.MaxHealth())
	}

	stats := s.Stats()
	if stats.Words != 1 || stats.Defeated != 1 || stats.Score != 110 {
		t.Errorf("Unexpected stats %+v", stats)
	}

	if s.Phase() != PhaseGrace {
		t.Fatalf("Expected grace phase, got %s", s.Phase())
	}
	s.Tick(time.Second)
	if s.Phase() != PhaseAwaitingInput {
		t.Errorf("Expected a new word after the grace delay, got %s", s.Phase())
	}
	if s.Cursor() != 0 {
		t.Errorf("Expected cursor reset, got %d", s.Cursor())
	}
}

func TestSessionCaseInsensitive(t *testing.T) {
	s := newTestSession(t, DefaultSettings(), []*Enemy{NewEnemy("Bug", 5000, "")}, "loop")

	v := typeWord(s, "LoOp")
	if v.Kind != VerdictWordComplete || v.Transition != TransitionHit {
		t.Errorf("Expected completed hit, got %s/%s", v.Kind, v.Transition)
	}
	if s.CurrentEnemy().Health() != 4500 {
		t.Errorf("Expected enemy health 4500, got %d", s.CurrentEnemy().Health())
	}
}

func TestSessionMismatchPenalizesAndResets(t *testing.T) {
	s := newTestSession(t, DefaultSettings(), []*Enemy{NewEnemy("Bug", 5000, "")}, "loop", "java")
	first := s.CurrentWord()

	wrong := 'x'
	v := s.TypeRune(wrong)
	if v.Kind != VerdictMismatch || v.Transition != TransitionPenalty {
		t.Fatalf("Expected penalty mismatch, got %s/%s", v.Kind, v.Transition)
	}
	if s.Player().Health() != 90 {
		t.Errorf("Expected player health 90, got %d", s.Player().Health())
	}
	if s.MismatchSlot() != 0 {
		t.Errorf("Expected mismatch in slot 0, got %d", s.MismatchSlot())
	}

	// Input is frozen during the grace delay.
	if v := s.TypeRune(rune(first[0])); v.Kind != VerdictIgnored {
		t.Errorf("Expected input to be ignored during grace, got %s", v.Kind)
	}

	s.Tick(500 * time.Millisecond)
	if s.Phase() != PhaseGrace {
		t.Errorf("Expected still in grace, got %s", s.Phase())
	}
	s.Tick(500 * time.Millisecond)
	if s.Phase() != PhaseAwaitingInput {
		t.Fatalf("Expected new word, got %s", s.Phase())
	}
	for i, r := range s.Entered() {
		if r != 0 {
			t.Errorf("Slot %d should be cleared, got %q", i, r)
		}
	}
	if s.MismatchSlot() != -1 {
		t.Errorf("Expected mismatch cleared, got %d", s.MismatchSlot())
	}
	if w := s.CurrentWord(); w != "loop" && w != "java" {
		t.Errorf("Unexpected word %q", w)
	}
	if s.Stats().Mistakes != 1 {
		t.Errorf("Expected 1 mistake, got %d", s.Stats().Mistakes)
	}
}

func TestSessionTimeoutIssuesNewWord(t *testing.T) {
	settings := DefaultSettings()
	settings.Deadline = DeadlinePolicy{
		BaseTimePerLetter: 500 * time.Millisecond,
		MinTimePerLetter:  500 * time.Millisecond,
	}
	s := newTestSession(t, settings, []*Enemy{NewEnemy("Bug", 5000, "")}, "loop")

	if s.TimeRemaining() != 2*time.Second {
		t.Fatalf("Expected 2s deadline, got %s", s.TimeRemaining())
	}

	s.Tick(1999 * time.Millisecond)
	if s.Player().Health() != 100 {
		t.Fatalf("No penalty expected before the deadline, got %d", s.Player().Health())
	}

	s.Tick(time.Millisecond)
	if s.Player().Health() != 90 {
		t.Errorf("Expected timeout penalty to 90, got %d", s.Player().Health())
	}
	if s.Phase() != PhaseAwaitingInput {
		t.Errorf("Timeout should issue a new word without grace, got %s", s.Phase())
	}
	if s.TimeRemaining() != 2*time.Second {
		t.Errorf("Expected a fresh 2s deadline, got %s", s.TimeRemaining())
	}
	if s.Stats().Timeouts != 1 {
		t.Errorf("Expected 1 timeout, got %d", s.Stats().Timeouts)
	}
	if s.IsOver() {
		t.Error("Session should continue after a survivable timeout")
	}
}

func TestSessionCompletionCancelsTimer(t *testing.T) {
	settings := DefaultSettings()
	s := newTestSession(t, settings, []*Enemy{NewEnemy("Bug", 5000, "")}, "loop")

	s.Tick(4 * time.Second)
	typeWord(s, "loop")
	s.Tick(time.Hour)

	if s.Player().Health() != 100 {
		t.Errorf("A completed word must not also time out, got health %d", s.Player().Health())
	}
}

func TestSessionSingleEnemyWraps(t *testing.T) {
	bug := NewEnemy("Bug", 50, "")
	s := newTestSession(t, DefaultSettings(), []*Enemy{bug}, "loop")

	typeWord(s, "loop")

	if s.resolver.Roster().Index() != 0 {
		t.Errorf("Expected index to wrap to 0, got %d", s.resolver.Roster().Index())
	}
	if s.CurrentEnemy() != bug {
		t.Error("Expected the same enemy to reappear")
	}
	if bug.Health() != 60 || bug.MaxHealth() != 60 {
		t.Errorf("Expected Bug rescaled to 60/60, got %d/%d", bug.Health(), bug.MaxHealth())
	}
	if s.BossMode() {
		t.Error("Boss mode should not start at level 2")
	}
}

func TestSessionBossInjectionAndVictory(t *testing.T) {
	settings := DefaultSettings()
	settings.Boss = BossConfig{Level: 3, Name: "Big", ImageRef: "big.png", HPScale: 2, Damage: 10}
	bug := NewEnemy("Bug", 50, "")
	s := newTestSession(t, settings, []*Enemy{bug}, "loop")

	typeWord(s, "loop") // level 2
	s.Tick(time.Second)
	v := typeWord(s, "loop") // level 3, boss arrives
	if v.Transition != TransitionEnemyDefeated {
		t.Fatalf("Expected enemy defeated, got %s", v.Transition)
	}

	roster := s.resolver.Roster()
	if !roster.BossMode() {
		t.Fatal("Expected boss mode at level 3")
	}
	if roster.Len() != 2 {
		t.Fatalf("Expected exactly one boss appended, got %d enemies", roster.Len())
	}
	boss := s.CurrentEnemy()
	if !boss.IsBoss() || boss.Name() != "Big" {
		t.Fatalf("Expected boss to be current, got %s", boss.Name())
	}
	if boss.MaxHealth() != 1000 {
		t.Errorf("Expected boss health 1000, got %d", boss.MaxHealth())
	}
	if s.resolver.Levels().Subscribers() != 2 {
		t.Errorf("Boss must not subscribe to level changes, got %d subscribers", s.resolver.Levels().Subscribers())
	}

	bossEvents := 0
	for _, e := range s.DrainEvents() {
		if _, ok := e.(BossAppearedEvent); ok {
			bossEvents++
		}
	}
	if bossEvents != 1 {
		t.Errorf("Expected one BossAppearedEvent, got %d", bossEvents)
	}

	s.Tick(time.Second)
	typeWord(s, "loop")
	s.Tick(time.Second)
	v = typeWord(s, "loop")
	if v.Transition != TransitionVictory {
		t.Fatalf("Expected victory, got %s", v.Transition)
	}

	o, ok := s.Outcome()
	if !ok || o.Result != ResultVictory {
		t.Fatalf("Expected victory outcome, got %+v", o)
	}
	if o.Level != 3 {
		t.Errorf("Expected victory on level 3, got %d", o.Level)
	}
	if o.Message() != "Congratulations! You defeated the Boss and won the game!" {
		t.Errorf("Unexpected message %q", o.Message())
	}
	if roster.Len() != 2 || roster.Index() != 1 {
		t.Errorf("Roster must not change after victory, got len %d index %d", roster.Len(), roster.Index())
	}
	if s.Phase() != PhaseOver {
		t.Errorf("Expected over, got %s", s.Phase())
	}
	if v := s.TypeRune('l'); v.Kind != VerdictIgnored {
		t.Errorf("Expected input ignored after victory, got %s", v.Kind)
	}
}

func TestSessionBossDisabled(t *testing.T) {
	settings := DefaultSettings()
	settings.Boss.Level = 0
	settings.StartLevel = 20
	s := newTestSession(t, settings, []*Enemy{NewEnemy("Bug", 50, "")}, "loop")

	typeWord(s, "loop")
	if s.BossMode() {
		t.Error("Boss must never appear when disabled")
	}
}

func TestSessionDefeatStopsWords(t *testing.T) {
	settings := DefaultSettings()
	settings.PlayerHealth = 10
	s := newTestSession(t, settings, []*Enemy{NewEnemy("Bug", 50, "")}, "loop")
	s.DrainEvents()

	v := s.TypeRune('x')
	if v.Kind != VerdictMismatch || v.Transition != TransitionDefeat {
		t.Fatalf("Expected defeat, got %s/%s", v.Kind, v.Transition)
	}
	if !s.IsOver() || s.Phase() != PhaseOver {
		t.Fatalf("Expected session over, phase %s", s.Phase())
	}

	o, _ := s.Outcome()
	if o.Result != ResultDefeat {
		t.Errorf("Expected defeat, got %s", o.Result)
	}
	if o.Message() != "You were slain on level 1 by Bug." {
		t.Errorf("Unexpected message %q", o.Message())
	}

	s.Tick(time.Minute)
	for _, e := range s.DrainEvents() {
		if _, ok := e.(WordIssuedEvent); ok {
			t.Error("No word may be issued after defeat")
		}
	}
	if s.Player().Health() != 0 {
		t.Errorf("Expected 0 health, got %d", s.Player().Health())
	}
}

func TestSessionTimeoutDefeat(t *testing.T) {
	settings := DefaultSettings()
	settings.PlayerHealth = 10
	s := newTestSession(t, settings, []*Enemy{NewEnemy("Bug", 50, "")}, "loop")

	s.Tick(time.Minute)
	o, ok := s.Outcome()
	if !ok || o.Result != ResultDefeat {
		t.Fatalf("Expected defeat by timeout, got %+v", o)
	}
	if o.Stats.Timeouts != 1 {
		t.Errorf("Expected 1 timeout, got %d", o.Stats.Timeouts)
	}
}

func TestSessionIgnoresUnfocusedSlot(t *testing.T) {
	s := newTestSession(t, DefaultSettings(), []*Enemy{NewEnemy("Bug", 50, "")}, "loop")

	if v := s.Type(2, 'o'); v.Kind != VerdictIgnored {
		t.Errorf("Expected unfocused slot to be ignored, got %s", v.Kind)
	}
	if v := s.Type(0, 'l'); v.Kind != VerdictCorrect {
		t.Errorf("Expected correct, got %s", v.Kind)
	}
	if s.Cursor() != 1 {
		t.Errorf("Expected cursor 1, got %d", s.Cursor())
	}
}

func TestSessionIgnoresInputBeforeStart(t *testing.T) {
	s, err := NewSession(DefaultSettings(), []*Enemy{NewEnemy("Bug", 50, "")}, []string{"loop"})
	if err != nil {
		t.Fatal(err)
	}
	if v := s.TypeRune('l'); v.Kind != VerdictIgnored {
		t.Errorf("Expected ignored before Start, got %s", v.Kind)
	}
	if s.Phase() != PhaseIdle {
		t.Errorf("Expected idle, got %s", s.Phase())
	}
}

func TestSessionClose(t *testing.T) {
	s := newTestSession(t, DefaultSettings(), []*Enemy{NewEnemy("Bug", 50, "")}, "loop")

	s.Close()
	s.Tick(time.Hour)
	s.Close()

	if s.Player().Health() != 100 {
		t.Errorf("Closed session must not penalize, got %d", s.Player().Health())
	}
	if s.IsOver() {
		t.Error("Closing is not a game outcome")
	}
	if s.Phase() != PhaseOver {
		t.Errorf("Expected over phase, got %s", s.Phase())
	}
	if n := s.resolver.Levels().Subscribers(); n != 0 {
		t.Errorf("Expected observers detached, got %d", n)
	}
}

func TestNewSessionRejectsEmptyData(t *testing.T) {
	_, err := NewSession(DefaultSettings(), nil, []string{"loop"})
	if !errors.Is(err, ErrEmptyRoster) {
		t.Errorf("Expected ErrEmptyRoster, got %v", err)
	}

	_, err = NewSession(DefaultSettings(), []*Enemy{NewEnemy("Bug", 50, "")}, nil)
	if !errors.Is(err, ErrEmptyWordList) {
		t.Errorf("Expected ErrEmptyWordList, got %v", err)
	}
	if !IsDataError(err) {
		t.Errorf("Expected *DataError, got %T", err)
	}
}

func TestSessionThemeFollowsLevel(t *testing.T) {
	s := newTestSession(t, DefaultSettings(), []*Enemy{NewEnemy("Bug", 50, "")}, "loop")
	if s.Theme().Name != DefaultThemes[0].Name {
		t.Errorf("Expected %q, got %q", DefaultThemes[0].Name, s.Theme().Name)
	}
	typeWord(s, "loop")
	if s.Theme().Name != DefaultThemes[1].Name {
		t.Errorf("Expected %q, got %q", DefaultThemes[1].Name, s.Theme().Name)
	}
}
