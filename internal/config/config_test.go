package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "typing.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := TypingConfig{}
	if err := yaml.Unmarshal(defaultTypingYAML, &cfg); err != nil {
		t.Fatalf("embedded config does not parse: %v", err)
	}
	want := DefaultTypingConfig()
	if cfg != want {
		t.Errorf("Embedded defaults drifted:\n got %+v\nwant %+v", cfg, want)
	}
}

func TestLoadTypingCustomPathMerges(t *testing.T) {
	path := writeConfig(t, `
player:
  health: 42
deadline:
  base_per_letter: 900ms
boss:
  level: 0
`)

	cfg, err := LoadTyping(path)
	if err != nil {
		t.Fatalf("LoadTyping() failed: %v", err)
	}
	if cfg.Player.Health != 42 {
		t.Errorf("Expected health 42, got %d", cfg.Player.Health)
	}
	if cfg.Deadline.BasePerLetter != 900*time.Millisecond {
		t.Errorf("Expected 900ms, got %s", cfg.Deadline.BasePerLetter)
	}
	if cfg.Boss.Level != 0 {
		t.Errorf("Expected boss disabled, got level %d", cfg.Boss.Level)
	}
	// Untouched keys keep their defaults
	if cfg.Player.Damage != 500 {
		t.Errorf("Expected default damage 500, got %d", cfg.Player.Damage)
	}
	if cfg.GraceDelay != time.Second {
		t.Errorf("Expected default grace 1s, got %s", cfg.GraceDelay)
	}
}

func TestLoadTypingMissingFile(t *testing.T) {
	_, err := LoadTyping(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing custom config")
	}
}

func TestLoadTypingBadYAML(t *testing.T) {
	path := writeConfig(t, "player: [not, a, map")
	if _, err := LoadTyping(path); err == nil {
		t.Fatal("Expected parse error")
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultTypingConfig()
	cfg.Player.Health = 0
	cfg.Deadline.MinPerLetter = 5 * time.Second
	cfg.StartLevel = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected validation error")
	}
	for _, want := range []string{"player.health", "deadline.min_per_letter", "start_level"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected error to mention %s, got %v", want, err)
		}
	}

	if err := DefaultTypingConfig().Validate(); err != nil {
		t.Errorf("Defaults should be valid, got %v", err)
	}
}

func TestValidateBossScaleOnlyWhenEnabled(t *testing.T) {
	cfg := DefaultTypingConfig()
	cfg.Boss.HPScale = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for enabled boss without hp_scale")
	}
	cfg.Boss.Level = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("Disabled boss needs no hp_scale, got %v", err)
	}
}

func TestLoadTypingEnvOverrides(t *testing.T) {
	t.Setenv("ARCADE_TYPING_PLAYER_HEALTH", "250")
	t.Setenv("ARCADE_TYPING_GRACE_DELAY", "500ms")
	t.Setenv("ARCADE_TYPING_HEALTH_MODIFIER", "0.25")
	t.Setenv("ARCADE_TYPING_WORDS", "/tmp/words.txt")

	path := writeConfig(t, "player:\n  health: 42\n")
	cfg, err := LoadTyping(path)
	if err != nil {
		t.Fatalf("LoadTyping() failed: %v", err)
	}
	if cfg.Player.Health != 250 {
		t.Errorf("Env should win over file, got health %d", cfg.Player.Health)
	}
	if cfg.GraceDelay != 500*time.Millisecond {
		t.Errorf("Expected grace 500ms, got %s", cfg.GraceDelay)
	}
	if cfg.Enemies.HealthModifier != 0.25 {
		t.Errorf("Expected modifier 0.25, got %v", cfg.Enemies.HealthModifier)
	}
	if cfg.Data.Words != "/tmp/words.txt" {
		t.Errorf("Expected words override, got %q", cfg.Data.Words)
	}
}

func TestLoadTypingEnvInvalid(t *testing.T) {
	t.Setenv("ARCADE_TYPING_PLAYER_HEALTH", "lots")

	path := writeConfig(t, "")
	if _, err := LoadTyping(path); err == nil {
		t.Fatal("Expected error for non-numeric env value")
	}
}

func TestLoadTypingEnvFailsValidation(t *testing.T) {
	t.Setenv("ARCADE_TYPING_START_LEVEL", "0")

	path := writeConfig(t, "")
	if _, err := LoadTyping(path); err == nil {
		t.Fatal("Expected validation error from env override")
	}
}

func TestParseDifficultyPreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", "", false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDifficultyPreset(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDifficultyPreset(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDifficultyPreset(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestApplyTypingPreset(t *testing.T) {
	cfg := DefaultTypingConfig()
	ApplyTypingPreset(&cfg, DifficultyEasy)
	if cfg.Player.Health != 150 || cfg.Deadline.BasePerLetter != 1500*time.Millisecond {
		t.Errorf("Easy preset not applied: %+v", cfg)
	}

	cfg = DefaultTypingConfig()
	ApplyTypingPreset(&cfg, DifficultyHard)
	if cfg.Player.Health != 70 || cfg.Enemies.HealthModifier != 0.15 || cfg.Enemies.Damage != 15 {
		t.Errorf("Hard preset not applied: %+v", cfg)
	}

	cfg = DefaultTypingConfig()
	ApplyTypingPreset(&cfg, DifficultyFixed)
	if cfg.Deadline.ScalingPerLevel != 0 || cfg.Enemies.HealthModifier != 0 {
		t.Errorf("Fixed preset should disable progression: %+v", cfg)
	}
	if !IsFixedPreset(DifficultyFixed) || IsFixedPreset(DifficultyNormal) {
		t.Error("IsFixedPreset returned the wrong answer")
	}

	cfg = DefaultTypingConfig()
	ApplyTypingPreset(&cfg, DifficultyNormal)
	if cfg != DefaultTypingConfig() {
		t.Error("Normal preset should leave the config unchanged")
	}
	for _, p := range []DifficultyPreset{DifficultyEasy, DifficultyHard, DifficultyFixed} {
		cfg := DefaultTypingConfig()
		ApplyTypingPreset(&cfg, p)
		if err := cfg.Validate(); err != nil {
			t.Errorf("Preset %s produced invalid config: %v", p, err)
		}
	}
}
