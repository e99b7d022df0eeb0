package typing

import "time"

// Snapshot is a read-only copy of everything a view needs to draw a session.
type Snapshot struct {
	Tick uint64

	Phase    Phase
	Level    int
	Theme    Theme
	BossMode bool

	Word     string
	Entered  []rune
	Cursor   int
	Mismatch int

	EnemyName      string
	EnemyImage     string
	EnemyHealth    int
	EnemyMaxHealth int
	EnemyIsBoss    bool

	PlayerHealth    int
	PlayerMaxHealth int

	Remaining     time.Duration
	TimerProgress float64

	Stats   Stats
	Over    bool
	Outcome Outcome
}

// Snapshot captures the session state.
func (s *Session) Snapshot() Snapshot {
	enemy := s.CurrentEnemy()
	player := s.Player()
	snap := Snapshot{
		Phase:           s.phase,
		Level:           s.Level(),
		Theme:           s.Theme(),
		BossMode:        s.BossMode(),
		Word:            s.word,
		Entered:         s.Entered(),
		Cursor:          s.cursor,
		Mismatch:        s.lastBad,
		EnemyName:       enemy.Name(),
		EnemyImage:      enemy.ImageRef(),
		EnemyHealth:     enemy.Health(),
		EnemyMaxHealth:  enemy.MaxHealth(),
		EnemyIsBoss:     enemy.IsBoss(),
		PlayerHealth:    player.Health(),
		PlayerMaxHealth: player.MaxHealth(),
		Remaining:       s.TimeRemaining(),
		TimerProgress:   s.TimerProgress(),
		Stats:           s.Stats(),
	}
	if o, ok := s.Outcome(); ok {
		snap.Over = true
		snap.Outcome = o
	}
	return snap
}
