package typing

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Result is the terminal result of a session.
type Result int

const (
	ResultVictory Result = iota + 1
	ResultDefeat
)

func (r Result) String() string {
	switch r {
	case ResultVictory:
		return "victory"
	case ResultDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Stats counts what happened during a session.
type Stats struct {
	Words    int
	Mistakes int
	Timeouts int
	Defeated int
	Score    int
	Elapsed  time.Duration
}

// Outcome is the final record of a finished session.
type Outcome struct {
	Result Result
	Level  int
	Enemy  string // enemy that won or the boss that fell
	Stats  Stats
}

// Message returns the end-of-game text shown to the player.
func (o Outcome) Message() string {
	if o.Result == ResultVictory {
		return "Congratulations! You defeated the Boss and won the game!"
	}
	return fmt.Sprintf("You were slain on level %d by %s.", o.Level, o.Enemy)
}

// Transition is what the resolver did in response to one event.
type Transition int

const (
	TransitionNone          Transition = iota
	TransitionPenalty                  // player hurt and still alive
	TransitionHit                      // enemy hurt and still alive
	TransitionEnemyDefeated            // roster moved to the next enemy
	TransitionDefeat                   // player fell, session over
	TransitionVictory                  // boss fell, session over
)

func (t Transition) String() string {
	switch t {
	case TransitionNone:
		return "none"
	case TransitionPenalty:
		return "penalty"
	case TransitionHit:
		return "hit"
	case TransitionEnemyDefeated:
		return "enemy-defeated"
	case TransitionDefeat:
		return "defeat"
	case TransitionVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Terminal reports whether the transition ends the session.
func (t Transition) Terminal() bool {
	return t == TransitionDefeat || t == TransitionVictory
}

// Resolver owns the player, the roster, and the level, and turns penalties
// and strikes into health changes and roster progression. Once it reaches a
// terminal outcome it ignores every further event.
type Resolver struct {
	player   *Player
	roster   *Roster
	levels   *LevelTracker
	boss     BossConfig
	settings Settings
	stats    Stats
	outcome  *Outcome
	events   []Event
	log      *log.Logger
}

// NewResolver wires the level tracker to every regular enemy and to the
// optional extra observers.
func NewResolver(settings Settings, enemies []*Enemy, logger *log.Logger, observers ...LevelObserver) (*Resolver, error) {
	settings = settings.normalize()
	roster, err := NewRoster(enemies)
	if err != nil {
		return nil, err
	}

	r := &Resolver{
		player:   NewPlayer(settings.PlayerHealth, settings.PlayerDamage),
		roster:   roster,
		levels:   NewLevelTracker(settings.StartLevel),
		boss:     settings.Boss,
		settings: settings,
		log:      orDiscard(logger),
	}
	for i := 0; i < roster.Len(); i++ {
		r.levels.Subscribe(roster.At(i))
	}
	for _, o := range observers {
		r.levels.Subscribe(o)
	}
	return r, nil
}

// Penalize applies the current enemy's damage to the player.
func (r *Resolver) Penalize(cause PenaltyCause) Transition {
	if r.outcome != nil {
		return TransitionNone
	}

	enemy := r.roster.Current()
	r.player.TakeDamage(enemy.Damage())
	switch cause {
	case CauseTimeout:
		r.stats.Timeouts++
	default:
		r.stats.Mistakes++
	}
	r.emit(PenaltyEvent{Cause: cause, Damage: enemy.Damage(), Health: r.player.Health()})
	r.log.Debug("player penalized", "cause", cause, "damage", enemy.Damage(), "health", r.player.Health())

	if r.player.Defeated() {
		r.finish(ResultDefeat, enemy)
		return TransitionDefeat
	}
	return TransitionPenalty
}

// Strike applies the player's damage to the current enemy after a completed
// word.
func (r *Resolver) Strike() Transition {
	if r.outcome != nil {
		return TransitionNone
	}

	enemy := r.roster.Current()
	enemy.TakeDamage(r.player.DamageAmount())
	r.stats.Words++
	r.stats.Score += r.settings.WordPoints
	r.emit(HitEvent{Enemy: enemy.Name(), Damage: r.player.DamageAmount(), Health: enemy.Health()})

	if !enemy.Defeated() {
		return TransitionHit
	}

	r.stats.Defeated++
	r.stats.Score += r.settings.EnemyPoints
	if enemy.IsBoss() {
		r.stats.Score += r.settings.VictoryPoints
		r.finish(ResultVictory, enemy)
		return TransitionVictory
	}

	r.advance()
	r.emit(EnemyDefeatedEvent{Enemy: enemy.Name(), Next: r.roster.Current().Name()})
	r.log.Info("enemy defeated", "enemy", enemy.Name(), "next", r.roster.Current().Name(), "level", r.levels.Level())
	return TransitionEnemyDefeated
}

// advance moves past a defeated enemy: step the index, level up, inject the
// boss when the threshold is first reached, then wrap.
func (r *Resolver) advance() {
	r.roster.step()
	level := r.levels.Advance()
	r.emit(LevelUpEvent{Level: level})

	if r.boss.Enabled() && !r.roster.BossMode() && level >= r.boss.Level {
		boss := newBoss(r.boss, r.player.DamageAmount())
		if r.roster.injectBoss(boss) {
			r.emit(BossAppearedEvent{Name: boss.Name(), Health: boss.Health()})
			r.log.Info("boss appeared", "boss", boss.Name(), "health", boss.Health(), "level", level)
		}
	}
	r.roster.settle()
}

// detach unsubscribes the roster and the given observers from the level
// tracker.
func (r *Resolver) detach(observers ...LevelObserver) {
	for i := 0; i < r.roster.Len(); i++ {
		r.levels.Unsubscribe(r.roster.At(i))
	}
	for _, o := range observers {
		r.levels.Unsubscribe(o)
	}
}

func (r *Resolver) finish(result Result, enemy *Enemy) {
	r.outcome = &Outcome{
		Result: result,
		Level:  r.levels.Level(),
		Enemy:  enemy.Name(),
		Stats:  r.stats,
	}
	r.emit(SessionOverEvent{Outcome: *r.outcome})
	r.log.Info("session over", "result", result, "level", r.outcome.Level, "enemy", enemy.Name(), "score", r.stats.Score)
}

func (r *Resolver) emit(e Event) {
	r.events = append(r.events, e)
}

// drainEvents returns and clears buffered events.
func (r *Resolver) drainEvents() []Event {
	if len(r.events) == 0 {
		return nil
	}
	out := r.events
	r.events = nil
	return out
}

// Player returns the player.
func (r *Resolver) Player() *Player {
	return r.player
}

// Roster returns the roster.
func (r *Resolver) Roster() *Roster {
	return r.roster
}

// Levels returns the level tracker.
func (r *Resolver) Levels() *LevelTracker {
	return r.levels
}

// CurrentEnemy returns the enemy being fought.
func (r *Resolver) CurrentEnemy() *Enemy {
	return r.roster.Current()
}

// Stats returns the running counters.
func (r *Resolver) Stats() Stats {
	return r.stats
}

// Outcome returns the terminal outcome, if any.
func (r *Resolver) Outcome() (Outcome, bool) {
	if r.outcome == nil {
		return Outcome{}, false
	}
	return *r.outcome, true
}

// Over reports whether a terminal outcome was reached.
func (r *Resolver) Over() bool {
	return r.outcome != nil
}
