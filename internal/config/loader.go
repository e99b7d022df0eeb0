package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// TypingFile is the config file name looked up in the search directories.
const TypingFile = "typing.yaml"

// LoadTyping loads typing game configuration, then applies ARCADE_TYPING_*
// environment overrides and validates the result.
// Search order: customPath -> ~/.arcade/configs/typing.yaml -> ./configs/typing.yaml -> embedded default
func LoadTyping(customPath string) (TypingConfig, error) {
	cfg, err := loadTypingFile(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ApplyTypingEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadTypingFile(customPath string) (TypingConfig, error) {
	// Missing keys keep their hardcoded defaults.
	cfg := DefaultTypingConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(TypingFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultTypingConfig()
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", TypingFile)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultTypingConfig()
	}

	if err := yaml.Unmarshal(defaultTypingYAML, &cfg); err != nil {
		return DefaultTypingConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate reports every out-of-range value in one error.
func (c TypingConfig) Validate() error {
	var errs []error
	if c.Player.Health <= 0 {
		errs = append(errs, fmt.Errorf("player.health must be positive, got %d", c.Player.Health))
	}
	if c.Player.Damage <= 0 {
		errs = append(errs, fmt.Errorf("player.damage must be positive, got %d", c.Player.Damage))
	}
	if c.Enemies.Damage < 0 {
		errs = append(errs, fmt.Errorf("enemies.damage must not be negative, got %d", c.Enemies.Damage))
	}
	if c.Enemies.HealthModifier < 0 {
		errs = append(errs, fmt.Errorf("enemies.health_modifier must not be negative, got %g", c.Enemies.HealthModifier))
	}
	if c.Deadline.BasePerLetter <= 0 {
		errs = append(errs, fmt.Errorf("deadline.base_per_letter must be positive, got %s", c.Deadline.BasePerLetter))
	}
	if c.Deadline.MinPerLetter < 0 || c.Deadline.MinPerLetter > c.Deadline.BasePerLetter {
		errs = append(errs, fmt.Errorf("deadline.min_per_letter must be within [0, base_per_letter], got %s", c.Deadline.MinPerLetter))
	}
	if c.Deadline.ScalingPerLevel < 0 {
		errs = append(errs, fmt.Errorf("deadline.scaling_per_level must not be negative, got %s", c.Deadline.ScalingPerLevel))
	}
	if c.Boss.Level < 0 {
		errs = append(errs, fmt.Errorf("boss.level must not be negative, got %d", c.Boss.Level))
	}
	if c.Boss.Level > 0 && c.Boss.HPScale <= 0 {
		errs = append(errs, fmt.Errorf("boss.hp_scale must be positive, got %d", c.Boss.HPScale))
	}
	if c.StartLevel < 1 {
		errs = append(errs, fmt.Errorf("start_level must be at least 1, got %d", c.StartLevel))
	}
	if c.GraceDelay < 0 {
		errs = append(errs, fmt.Errorf("grace_delay must not be negative, got %s", c.GraceDelay))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid typing config: %w", errors.Join(errs...))
}
