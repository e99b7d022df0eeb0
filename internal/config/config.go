// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import "time"

// TypingConfig contains all configuration for the typing game.
type TypingConfig struct {
	Player     TypingPlayer   `yaml:"player"`
	Enemies    TypingEnemies  `yaml:"enemies"`
	Deadline   TypingDeadline `yaml:"deadline"`
	Boss       TypingBoss     `yaml:"boss"`
	Scoring    TypingScoring  `yaml:"scoring"`
	Data       TypingData     `yaml:"data"`
	StartLevel int            `yaml:"start_level"`
	GraceDelay time.Duration  `yaml:"grace_delay"`
}

// TypingPlayer defines player parameters.
type TypingPlayer struct {
	Health int `yaml:"health"`
	Damage int `yaml:"damage"` // damage per completed word
}

// TypingEnemies defines defaults shared by roster enemies.
type TypingEnemies struct {
	Damage         int     `yaml:"damage"`          // damage per penalty unless the roster overrides it
	HealthModifier float64 `yaml:"health_modifier"` // per-level max health growth
}

// TypingDeadline defines how long the player has to type a word.
type TypingDeadline struct {
	BasePerLetter   time.Duration `yaml:"base_per_letter"`
	MinPerLetter    time.Duration `yaml:"min_per_letter"`
	ScalingPerLevel time.Duration `yaml:"scaling_per_level"`
	Floor           time.Duration `yaml:"floor"`
}

// TypingBoss defines the final enemy. Level 0 disables the boss.
type TypingBoss struct {
	Level   int    `yaml:"level"`
	Name    string `yaml:"name"`
	Image   string `yaml:"image"`
	HPScale int    `yaml:"hp_scale"` // boss health = player damage * hp_scale
	Damage  int    `yaml:"damage"`
}

// TypingScoring defines points awarded during a run.
type TypingScoring struct {
	Word    int `yaml:"word"`
	Enemy   int `yaml:"enemy"`
	Victory int `yaml:"victory"`
}

// TypingData points at the roster and word list files. Empty paths use the
// embedded defaults.
type TypingData struct {
	Roster string `yaml:"roster"`
	Words  string `yaml:"words"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
