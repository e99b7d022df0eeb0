package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/typing.yaml
var defaultTypingYAML []byte

// DefaultTypingConfig returns the default typing game configuration.
func DefaultTypingConfig() TypingConfig {
	return TypingConfig{
		Player: TypingPlayer{
			Health: 100,
			Damage: 500,
		},
		Enemies: TypingEnemies{
			Damage:         10,
			HealthModifier: 0.1,
		},
		Deadline: TypingDeadline{
			BasePerLetter:   1200 * time.Millisecond,
			MinPerLetter:    300 * time.Millisecond,
			ScalingPerLevel: 100 * time.Millisecond,
			Floor:           time.Second,
		},
		Boss: TypingBoss{
			Level:   10,
			Name:    "Dog.reverse()",
			Image:   "images/dog.reverse().png",
			HPScale: 20,
			Damage:  10,
		},
		Scoring: TypingScoring{
			Word:    10,
			Enemy:   100,
			Victory: 1000,
		},
		StartLevel: 1,
		GraceDelay: time.Second,
	}
}
