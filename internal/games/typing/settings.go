package typing

import "time"

// Boss defaults.
const (
	DefaultBossLevel   = 10
	DefaultBossName    = "Dog.reverse()"
	DefaultBossImage   = "images/dog.reverse().png"
	DefaultBossHPScale = 20
)

// DefaultGraceDelay is the pause between a finished word and the next one.
const DefaultGraceDelay = time.Second

// BossConfig describes the final enemy. A non-positive Level disables the
// boss and the session runs until the player is defeated.
type BossConfig struct {
	Level    int
	Name     string
	ImageRef string
	HPScale  int // boss health = player damage * HPScale
	Damage   int
}

// Enabled reports whether a boss will ever be injected.
func (b BossConfig) Enabled() bool {
	return b.Level > 0
}

// DefaultBossConfig returns the standard boss at level 10.
func DefaultBossConfig() BossConfig {
	return BossConfig{
		Level:    DefaultBossLevel,
		Name:     DefaultBossName,
		ImageRef: DefaultBossImage,
		HPScale:  DefaultBossHPScale,
		Damage:   DefaultEnemyDamage,
	}
}

// Settings holds every tunable of a session.
type Settings struct {
	PlayerHealth int
	PlayerDamage int
	StartLevel   int
	GraceDelay   time.Duration
	Deadline     DeadlinePolicy
	Scaling      ScalingPolicy
	Boss         BossConfig
	Themes       []Theme

	// Points awarded on top of the outcome.
	WordPoints    int
	EnemyPoints   int
	VictoryPoints int
}

// DefaultSettings returns the standard single-player campaign.
func DefaultSettings() Settings {
	return Settings{
		PlayerHealth:  DefaultPlayerHealth,
		PlayerDamage:  DefaultPlayerDamage,
		StartLevel:    1,
		GraceDelay:    DefaultGraceDelay,
		Deadline:      DefaultDeadlinePolicy(),
		Scaling:       DefaultScaling(),
		Boss:          DefaultBossConfig(),
		Themes:        DefaultThemes,
		WordPoints:    10,
		EnemyPoints:   100,
		VictoryPoints: 1000,
	}
}

// normalize fills zero values with defaults.
func (s Settings) normalize() Settings {
	d := DefaultSettings()
	if s.PlayerHealth <= 0 {
		s.PlayerHealth = d.PlayerHealth
	}
	if s.PlayerDamage <= 0 {
		s.PlayerDamage = d.PlayerDamage
	}
	if s.StartLevel < 1 {
		s.StartLevel = 1
	}
	if s.GraceDelay < 0 {
		s.GraceDelay = 0
	}
	if s.Deadline.BaseTimePerLetter <= 0 {
		s.Deadline = d.Deadline
	}
	if len(s.Themes) == 0 {
		s.Themes = d.Themes
	}
	return s
}
