package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedMatchesDefaults(t *testing.T) {
	got := embeddedConfig()
	want := DefaultConfig()

	if got != want {
		t.Errorf("embedded YAML and DefaultConfig() disagree:\nembedded: %+v\ndefault:  %+v", got, want)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestDefaultGameplayConstants(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Gameplay.Lives != 3 {
		t.Errorf("Lives = %d, expected 3", cfg.Gameplay.Lives)
	}
	if cfg.Gameplay.HitAward != 100 {
		t.Errorf("HitAward = %d, expected 100", cfg.Gameplay.HitAward)
	}
	if cfg.Timing.FireCooldown != 300*time.Millisecond {
		t.Errorf("FireCooldown = %s, expected 300ms", cfg.Timing.FireCooldown)
	}
	if cfg.Timing.SpawnInterval != 2*time.Second {
		t.Errorf("SpawnInterval = %s, expected 2s", cfg.Timing.SpawnInterval)
	}
	if cfg.Difficulty.Enabled {
		t.Error("progression should be off by default so speeds stay constant")
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Player.Speed = 0
	cfg.Enemy.Width = -1
	cfg.Timing.FireCooldown = 0
	cfg.Gameplay.Lives = 0
	cfg.Difficulty.Progression.Type = "weekly"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}

	for _, want := range []string{"player.speed", "enemy.width", "timing.fire_cooldown", "gameplay.lives", "weekly"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skyfire.yaml")
	data := []byte(`
field:
  width: 800
  height: 600
player:
  speed: 7
timing:
  fire_cooldown: 150ms
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Field.Width != 800 || cfg.Field.Height != 600 {
		t.Errorf("Field = %+v, expected 800x600", cfg.Field)
	}
	if cfg.Player.Speed != 7 {
		t.Errorf("Player.Speed = %v, expected 7", cfg.Player.Speed)
	}
	if cfg.Timing.FireCooldown != 150*time.Millisecond {
		t.Errorf("FireCooldown = %s, expected 150ms", cfg.Timing.FireCooldown)
	}
	// Untouched values keep their defaults
	if cfg.Player.Width != DefaultConfig().Player.Width {
		t.Errorf("Player.Width = %v, expected default %v", cfg.Player.Width, DefaultConfig().Player.Width)
	}
	if cfg.Gameplay.Lives != 3 {
		t.Errorf("Lives = %d, expected default 3", cfg.Gameplay.Lives)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("player: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(broken); err == nil {
		t.Error("unparseable custom config should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("gameplay:\n  lives: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("invalid custom config should fail validation")
	}
}

func TestMarshalRoundTripsDurations(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "fire_cooldown: 300ms") {
		t.Errorf("durations should be written as strings, got:\n%s", data)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultConfig()

	easy := DefaultConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Gameplay.Lives != 5 {
		t.Errorf("easy lives = %d, expected 5", easy.Gameplay.Lives)
	}
	if easy.Enemy.Speed >= base.Enemy.Speed {
		t.Error("easy should slow enemies down")
	}
	if easy.Timing.SpawnInterval <= base.Timing.SpawnInterval {
		t.Error("easy should spawn less often")
	}

	normal := DefaultConfig()
	ApplyPreset(&normal, DifficultyNormal)
	if normal != base {
		t.Error("normal preset should not change the config")
	}

	hard := DefaultConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Gameplay.Lives != 2 {
		t.Errorf("hard lives = %d, expected 2", hard.Gameplay.Lives)
	}
	if !hard.Difficulty.Enabled {
		t.Error("hard should enable progression")
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset should stay valid: %v", err)
	}

	fixed := DefaultConfig()
	fixed.Difficulty.Enabled = true
	ApplyPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("fixed should disable progression")
	}
}
