package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrLevelNotFound is returned when no source provides the requested level.
var ErrLevelNotFound = errors.New("level not found")

// LoadLevel loads a level layout by name.
// Search order: customPath -> ~/.infestation/levels/<name>.yaml ->
// ./levels/<name>.yaml -> embedded default -> hardcoded fallback.
// A custom path that cannot be read or parsed is an error; the other
// sources are skipped when they are missing or broken.
func LoadLevel(name, customPath string) (LevelConfig, error) {
	if name == "" {
		name = DefaultLevelName
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return LevelConfig{}, fmt.Errorf("config: read level %s: %w", customPath, err)
		}
		cfg, err := parseLevel(data, name)
		if err != nil {
			return LevelConfig{}, fmt.Errorf("config: parse level %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user level directory, then the local one
	for _, p := range []string{userLevelPath(name), filepath.Join("levels", name+".yaml")} {
		if p == "" {
			continue
		}
		if data, err := os.ReadFile(p); err == nil {
			if cfg, err := parseLevel(data, name); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	if data, ok := embeddedLevel(name); ok {
		if cfg, err := parseLevel(data, name); err == nil {
			return cfg, nil
		}
	}

	if name == DefaultLevelName {
		return DefaultLevelConfig(), nil // Fallback to hardcoded if embed fails
	}
	return LevelConfig{}, fmt.Errorf("config: load level %q: %w", name, ErrLevelNotFound)
}

// parseLevel decodes and validates a level. The file name fills in a
// missing level name.
func parseLevel(data []byte, name string) (LevelConfig, error) {
	var cfg LevelConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Name == "" {
		cfg.Name = name
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userLevelPath returns the path to a user level file, or empty if home is unavailable.
func userLevelPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".infestation", "levels", name+".yaml")
}

// WriteLevel stores cfg as YAML at path, creating parent directories.
func WriteLevel(path string, cfg LevelConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode level: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create level dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write level %s: %w", path, err)
	}
	return nil
}
