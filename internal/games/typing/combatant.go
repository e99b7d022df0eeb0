package typing

// Default entity parameters.
const (
	DefaultPlayerHealth = 100
	DefaultPlayerDamage = 500
	DefaultEnemyDamage  = 10
)

// Combatant is anything with health that can take damage and be defeated.
type Combatant interface {
	Health() int
	MaxHealth() int
	TakeDamage(amount int)
	ResetHealth()
	Defeated() bool
	HealthFraction() float64
}

// Vitals holds the health pair shared by players and enemies.
// Health always stays within [0, MaxHealth].
type Vitals struct {
	maxHealth int
	health    int
}

// NewVitals creates vitals at full health. A non-positive max becomes 1.
func NewVitals(maxHealth int) Vitals {
	if maxHealth < 1 {
		maxHealth = 1
	}
	return Vitals{maxHealth: maxHealth, health: maxHealth}
}

// Health returns current health.
func (v *Vitals) Health() int {
	return v.health
}

// MaxHealth returns maximum health.
func (v *Vitals) MaxHealth() int {
	return v.maxHealth
}

// TakeDamage reduces health by amount, clamped at zero.
// Negative amounts are ignored.
func (v *Vitals) TakeDamage(amount int) {
	if amount <= 0 {
		return
	}
	v.health -= amount
	if v.health < 0 {
		v.health = 0
	}
}

// ResetHealth restores health to the maximum.
func (v *Vitals) ResetHealth() {
	v.health = v.maxHealth
}

// Defeated reports whether health has reached zero.
func (v *Vitals) Defeated() bool {
	return v.health <= 0
}

// HealthFraction returns health / max in [0, 1].
func (v *Vitals) HealthFraction() float64 {
	if v.maxHealth <= 0 {
		return 0
	}
	return float64(v.health) / float64(v.maxHealth)
}

// setMaxHealth replaces the maximum and fully heals.
func (v *Vitals) setMaxHealth(maxHealth int) {
	if maxHealth < 1 {
		maxHealth = 1
	}
	v.maxHealth = maxHealth
	v.health = maxHealth
}

// Player is the human side of the fight.
type Player struct {
	Vitals
	damageAmount int
}

// NewPlayer creates a player at full health.
func NewPlayer(maxHealth, damageAmount int) *Player {
	if damageAmount < 0 {
		damageAmount = 0
	}
	return &Player{
		Vitals:       NewVitals(maxHealth),
		damageAmount: damageAmount,
	}
}

// DamageAmount is the damage dealt per completed word.
func (p *Player) DamageAmount() int {
	return p.damageAmount
}

// Enemy is a roster entry. Regular enemies subscribe to level changes and
// grow on every level-up; the boss keeps fixed health.
type Enemy struct {
	Vitals
	name     string
	imageRef string
	damage   int
	boss     bool
	scaling  ScalingPolicy
}

// NewEnemy creates an enemy with the default damage and scaling policy.
func NewEnemy(name string, maxHealth int, imageRef string) *Enemy {
	return &Enemy{
		Vitals:   NewVitals(maxHealth),
		name:     name,
		imageRef: imageRef,
		damage:   DefaultEnemyDamage,
		scaling:  DefaultScaling(),
	}
}

// WithDamage overrides the per-hit damage. Non-positive values are ignored.
func (e *Enemy) WithDamage(damage int) *Enemy {
	if damage > 0 {
		e.damage = damage
	}
	return e
}

// WithScaling overrides the scaling policy.
func (e *Enemy) WithScaling(p ScalingPolicy) *Enemy {
	e.scaling = p
	return e
}

// Name returns the display name.
func (e *Enemy) Name() string {
	return e.name
}

// ImageRef returns the opaque asset handle for the renderer.
func (e *Enemy) ImageRef() string {
	return e.imageRef
}

// Damage returns the damage dealt to the player per penalty.
func (e *Enemy) Damage() int {
	return e.damage
}

// IsBoss reports whether this enemy is the injected boss.
func (e *Enemy) IsBoss() bool {
	return e.boss
}

// OnLevelChanged rescales max health for the new level and fully heals.
func (e *Enemy) OnLevelChanged(level int) {
	e.setMaxHealth(e.scaling.Rescale(e.maxHealth, level))
}

// newBoss creates the boss enemy. Its health is a multiple of the player's
// per-word damage.
func newBoss(cfg BossConfig, playerDamage int) *Enemy {
	hp := playerDamage * cfg.HPScale
	if hp < 1 {
		hp = 1
	}
	e := NewEnemy(cfg.Name, hp, cfg.ImageRef)
	e.boss = true
	if cfg.Damage > 0 {
		e.damage = cfg.Damage
	}
	return e
}

var (
	_ Combatant     = (*Player)(nil)
	_ Combatant     = (*Enemy)(nil)
	_ LevelObserver = (*Enemy)(nil)
)
