package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedLevelsParse(t *testing.T) {
	names := EmbeddedLevels()
	if len(names) < 2 {
		t.Fatalf("EmbeddedLevels() = %v, expected at least apartment and sewer", names)
	}
	for _, name := range names {
		data, ok := embeddedLevel(name)
		if !ok {
			t.Fatalf("embeddedLevel(%q) missing", name)
		}
		cfg, err := parseLevel(data, name)
		if err != nil {
			t.Errorf("parseLevel(%q) error = %v", name, err)
			continue
		}
		if cfg.Name != name {
			t.Errorf("parseLevel(%q).Name = %q, expected %q", name, cfg.Name, name)
		}
		if len(cfg.Nests) == 0 {
			t.Errorf("level %q has no nests", name)
		}
	}
}

func TestEmbeddedApartmentMatchesFallback(t *testing.T) {
	data, _ := embeddedLevel(DefaultLevelName)
	cfg, err := parseLevel(data, DefaultLevelName)
	if err != nil {
		t.Fatalf("parseLevel() error = %v", err)
	}
	fallback := DefaultLevelConfig()
	if len(cfg.Walls) != len(fallback.Walls) || len(cfg.Nests) != len(fallback.Nests) {
		t.Errorf("embedded apartment differs from fallback: %d/%d walls, %d/%d nests",
			len(cfg.Walls), len(fallback.Walls), len(cfg.Nests), len(fallback.Nests))
	}
	if cfg.Barricades[0].NestsRequiredToClear != 4 {
		t.Errorf("barricade threshold = %d, expected 4", cfg.Barricades[0].NestsRequiredToClear)
	}
}

func TestLoadLevelCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	cfg := DefaultLevelConfig()
	cfg.Name = "custom"
	cfg.Nests = cfg.Nests[:2]
	if err := WriteLevel(path, cfg); err != nil {
		t.Fatalf("WriteLevel() error = %v", err)
	}

	got, err := LoadLevel("custom", path)
	if err != nil {
		t.Fatalf("LoadLevel() error = %v", err)
	}
	if got.Name != "custom" || len(got.Nests) != 2 {
		t.Errorf("LoadLevel() = %s with %d nests, expected custom with 2", got.Name, len(got.Nests))
	}
}

func TestLoadLevelCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadLevel("x", filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadLevel() with missing file expected error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("width: -5\nheight: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadLevel("bad", bad)
	if !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("LoadLevel() error = %v, expected ErrInvalidLevel", err)
	}
}

func TestLoadLevelEmbedded(t *testing.T) {
	cfg, err := LoadLevel("", "")
	if err != nil {
		t.Fatalf("LoadLevel() error = %v", err)
	}
	if cfg.Name != DefaultLevelName {
		t.Errorf("LoadLevel(\"\").Name = %q, expected %q", cfg.Name, DefaultLevelName)
	}
}

func TestLoadLevelUnknown(t *testing.T) {
	_, err := LoadLevel("no-such-level-anywhere", "")
	if !errors.Is(err, ErrLevelNotFound) {
		t.Errorf("LoadLevel() error = %v, expected ErrLevelNotFound", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*LevelConfig)
		valid  bool
	}{
		{"default", func(*LevelConfig) {}, true},
		{"zero width", func(c *LevelConfig) { c.Width = 0 }, false},
		{"degenerate wall", func(c *LevelConfig) { c.Walls[0].H = 0 }, false},
		{"negative threshold", func(c *LevelConfig) { c.Barricades[0].NestsRequiredToClear = -1 }, false},
		{"player outside", func(c *LevelConfig) { c.PlayerStart.X = 5000 }, false},
		{"nest outside", func(c *LevelConfig) { c.Nests[0].Y = -1 }, false},
	}
	for _, tt := range tests {
		cfg := DefaultLevelConfig()
		tt.mutate(&cfg)
		err := cfg.Validate()
		if (err == nil) != tt.valid {
			t.Errorf("Validate(%s) = %v, expected valid=%v", tt.name, err, tt.valid)
		}
	}
}

func TestLevelBuildsRuntimeLayout(t *testing.T) {
	cfg := DefaultLevelConfig()
	l := cfg.Level()
	if l.Bounds.W != cfg.Width || l.Bounds.H != cfg.Height {
		t.Errorf("Level().Bounds = %+v, expected %vx%v", l.Bounds, cfg.Width, cfg.Height)
	}
	if len(l.Barricades) != 1 || !l.Barricades[0].Active || l.Barricades[0].Required != 4 {
		t.Errorf("Level().Barricades = %+v, expected one active barricade requiring 4", l.Barricades)
	}
	if got := len(l.Obstacles(nil)); got != len(cfg.Walls)+1 {
		t.Errorf("Obstacles() len = %d, expected %d", got, len(cfg.Walls)+1)
	}
}
