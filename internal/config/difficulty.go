package config

import (
	"fmt"
	"strings"
	"time"
)

// ParseDifficultyPreset maps a CLI value to a preset. The empty string means
// "use the config as loaded".
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyTypingPreset modifies the config based on a difficulty preset.
func ApplyTypingPreset(cfg *TypingConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Health = 150
		cfg.Deadline.BasePerLetter = 1500 * time.Millisecond
		cfg.Deadline.MinPerLetter = 400 * time.Millisecond
	case DifficultyHard:
		cfg.Player.Health = 70
		cfg.Deadline.BasePerLetter = 1000 * time.Millisecond
		cfg.Deadline.MinPerLetter = 250 * time.Millisecond
		cfg.Enemies.HealthModifier = 0.15
		cfg.Enemies.Damage = 15
	case DifficultyFixed:
		// No progression: deadlines and enemy health stay put.
		cfg.Deadline.ScalingPerLevel = 0
		cfg.Enemies.HealthModifier = 0
	}
}
