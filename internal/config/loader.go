package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadArena loads arena configuration.
// Search order: customPath -> ~/.omnitrix/configs/arena.yaml -> ./configs/arena.yaml -> embedded default
func LoadArena(customPath string) (ArenaConfig, error) {
	return load("arena.yaml", customPath, defaultArenaYAML, DefaultArenaConfig)
}

// LoadClassic loads side-scroller configuration.
// Search order: customPath -> ~/.omnitrix/configs/classic.yaml -> ./configs/classic.yaml -> embedded default
func LoadClassic(customPath string) (ClassicConfig, error) {
	return load("classic.yaml", customPath, defaultClassicYAML, DefaultClassicConfig)
}

// load decodes the first config found over the hardcoded defaults, so a
// file only needs the keys it changes.
func load[T any](filename, customPath string, embedded []byte, defaults func() T) (T, error) {
	// Try custom path first
	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			cfg := defaults()
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg := defaults()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".omnitrix", "configs", filename)
}

// ApplyArenaPreset sets the difficulty preset on an arena config.
func ApplyArenaPreset(cfg *ArenaConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = preset
}

// ApplyClassicPreset sets the difficulty preset on a classic config.
func ApplyClassicPreset(cfg *ClassicConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = preset
}
