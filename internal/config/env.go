package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every typing override variable.
const EnvPrefix = "ARCADE_TYPING_"

// typingEnv lists the settings that can be overridden from the environment.
// Unset variables leave the pointer nil.
type typingEnv struct {
	PlayerHealth    *int           `env:"PLAYER_HEALTH"`
	PlayerDamage    *int           `env:"PLAYER_DAMAGE"`
	EnemyDamage     *int           `env:"ENEMY_DAMAGE"`
	HealthModifier  *float64       `env:"HEALTH_MODIFIER"`
	BasePerLetter   *time.Duration `env:"BASE_PER_LETTER"`
	MinPerLetter    *time.Duration `env:"MIN_PER_LETTER"`
	ScalingPerLevel *time.Duration `env:"SCALING_PER_LEVEL"`
	BossLevel       *int           `env:"BOSS_LEVEL"`
	BossHPScale     *int           `env:"BOSS_HP_SCALE"`
	StartLevel      *int           `env:"START_LEVEL"`
	GraceDelay      *time.Duration `env:"GRACE_DELAY"`
	Roster          *string        `env:"ROSTER"`
	Words           *string        `env:"WORDS"`
}

// ApplyTypingEnv overrides cfg with any ARCADE_TYPING_* variables that are set.
func ApplyTypingEnv(cfg *TypingConfig) error {
	var e typingEnv
	if err := env.ParseWithOptions(&e, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	setInt(&cfg.Player.Health, e.PlayerHealth)
	setInt(&cfg.Player.Damage, e.PlayerDamage)
	setInt(&cfg.Enemies.Damage, e.EnemyDamage)
	if e.HealthModifier != nil {
		cfg.Enemies.HealthModifier = *e.HealthModifier
	}
	setDuration(&cfg.Deadline.BasePerLetter, e.BasePerLetter)
	setDuration(&cfg.Deadline.MinPerLetter, e.MinPerLetter)
	setDuration(&cfg.Deadline.ScalingPerLevel, e.ScalingPerLevel)
	setInt(&cfg.Boss.Level, e.BossLevel)
	setInt(&cfg.Boss.HPScale, e.BossHPScale)
	setInt(&cfg.StartLevel, e.StartLevel)
	setDuration(&cfg.GraceDelay, e.GraceDelay)
	if e.Roster != nil {
		cfg.Data.Roster = *e.Roster
	}
	if e.Words != nil {
		cfg.Data.Words = *e.Words
	}
	return nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *time.Duration) {
	if v != nil {
		*dst = *v
	}
}
