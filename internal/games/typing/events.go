package typing

import "time"

// Event is something that happened during a session. The platform drains
// events each frame to flash messages and log progress.
type Event interface {
	typingEvent()
}

// WordIssuedEvent is emitted when a new challenge word starts.
type WordIssuedEvent struct {
	Word     string
	Deadline time.Duration
}

func (WordIssuedEvent) typingEvent() {}

// PenaltyEvent is emitted when the player takes damage.
type PenaltyEvent struct {
	Cause  PenaltyCause
	Damage int
	Health int
}

func (PenaltyEvent) typingEvent() {}

// PenaltyCause tells why the player was hurt.
type PenaltyCause int

const (
	CauseMismatch PenaltyCause = iota
	CauseTimeout
)

func (c PenaltyCause) String() string {
	switch c {
	case CauseMismatch:
		return "mismatch"
	case CauseTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// HitEvent is emitted when a completed word damages the enemy.
type HitEvent struct {
	Enemy  string
	Damage int
	Health int
}

func (HitEvent) typingEvent() {}

// EnemyDefeatedEvent is emitted when a non-final enemy falls and the roster
// moves on.
type EnemyDefeatedEvent struct {
	Enemy string
	Next  string
}

func (EnemyDefeatedEvent) typingEvent() {}

// LevelUpEvent is emitted after the level advances.
type LevelUpEvent struct {
	Level int
}

func (LevelUpEvent) typingEvent() {}

// BossAppearedEvent is emitted once, when the boss joins the roster.
type BossAppearedEvent struct {
	Name   string
	Health int
}

func (BossAppearedEvent) typingEvent() {}

// SessionOverEvent is emitted when the session reaches a terminal state.
type SessionOverEvent struct {
	Outcome Outcome
}

func (SessionOverEvent) typingEvent() {}
