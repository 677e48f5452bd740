package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	t.Run("arena", func(t *testing.T) {
		var cfg ArenaConfig
		if err := yaml.Unmarshal(GetDefaultYAML("arena"), &cfg); err != nil {
			t.Fatalf("embedded arena.yaml: %v", err)
		}
		if !reflect.DeepEqual(cfg, DefaultArenaConfig()) {
			t.Errorf("arena.yaml = %+v\nDefaultArenaConfig = %+v", cfg, DefaultArenaConfig())
		}
	})
	t.Run("classic", func(t *testing.T) {
		var cfg ClassicConfig
		if err := yaml.Unmarshal(GetDefaultYAML("classic"), &cfg); err != nil {
			t.Fatalf("embedded classic.yaml: %v", err)
		}
		if !reflect.DeepEqual(cfg, DefaultClassicConfig()) {
			t.Errorf("classic.yaml = %+v\nDefaultClassicConfig = %+v", cfg, DefaultClassicConfig())
		}
	})
	if GetDefaultYAML("pong") != nil {
		t.Error("unknown mode should have no default YAML")
	}
}

func TestLoadArenaCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.yaml")
	data := []byte("boss:\n  kill_bonus: 5000\ndifficulty:\n  preset: hard\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadArena(path)
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}
	if cfg.Boss.KillBonus != 5000 {
		t.Errorf("KillBonus = %d, expected 5000", cfg.Boss.KillBonus)
	}
	if cfg.Difficulty.Preset != DifficultyHard {
		t.Errorf("Preset = %s, expected hard", cfg.Difficulty.Preset)
	}
	if cfg.Engine.MaxDT != 0.1 || cfg.Boss.ContactDamage != 2 {
		t.Error("unspecified keys should keep their defaults")
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := LoadArena(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("engine: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadClassic(path); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultArenaConfig().Difficulty

	tests := []struct {
		preset     DifficultyPreset
		health     int
		wantHealth int
	}{
		{DifficultyNormal, 4, 4},
		{DifficultyEasy, 4, 3},
		{DifficultyHard, 4, 5},
		{DifficultyEasy, 1, 1},
	}
	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			dm := NewDifficultyManager(cfg)
			dm.SetPreset(tc.preset)
			if got := dm.ScaleHealth(tc.health, 0, 3); got != tc.wantHealth {
				t.Errorf("ScaleHealth(%d) = %d, expected %d", tc.health, got, tc.wantHealth)
			}
		})
	}

	dm := NewDifficultyManager(cfg)
	if dm.SpeedScale(2, 3) != 1 {
		t.Error("normal preset without progression must not scale speed")
	}

	cfg.Progression.Type = "wave"
	dm = NewDifficultyManager(cfg)
	if first, last := dm.Level(0, 3), dm.Level(2, 3); first != 0 || last != cfg.Progression.MaxBoost {
		t.Errorf("wave progression levels = %v..%v", first, last)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
		ok   bool
	}{
		{"", DifficultyNormal, true},
		{"easy", DifficultyEasy, true},
		{"hard", DifficultyHard, true},
		{"nightmare", DifficultyNormal, false},
	}
	for _, tc := range tests {
		got, ok := ParsePreset(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParsePreset(%q) = %s, %v", tc.in, got, ok)
		}
	}
}
