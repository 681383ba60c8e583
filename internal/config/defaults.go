package config

import (
	"embed"
	"path"
	"sort"
	"strings"
)

//go:embed defaults/*.yaml
var defaultLevels embed.FS

// DefaultLevelName is the level used when none is requested.
const DefaultLevelName = "apartment"

// EmbeddedLevels returns the names of the built-in levels.
func EmbeddedLevels() []string {
	entries, err := defaultLevels.ReadDir("defaults")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

func embeddedLevel(name string) ([]byte, bool) {
	data, err := defaultLevels.ReadFile(path.Join("defaults", name+".yaml"))
	return data, err == nil
}

// DefaultLevelConfig is the hardcoded apartment layout, used only when the
// embedded copy cannot be parsed.
func DefaultLevelConfig() LevelConfig {
	return LevelConfig{
		Name:        DefaultLevelName,
		Objective:   "Exterminate the roaches and clear the building!",
		Width:       3000,
		Height:      2000,
		PlayerStart: PointConfig{X: 600, Y: 400},
		Walls: []RectConfig{
			{X: 0, Y: 0, W: 3000, H: 20},
			{X: 0, Y: 1980, W: 3000, H: 20},
			{X: 0, Y: 0, W: 20, H: 2000},
			{X: 2980, Y: 0, W: 20, H: 2000},
			{X: 1000, Y: 20, W: 30, H: 700},
			{X: 1000, Y: 900, W: 30, H: 1080},
			{X: 2000, Y: 20, W: 30, H: 900},
			{X: 2000, Y: 1100, W: 30, H: 880},
			{X: 1300, Y: 1000, W: 500, H: 30},
			{X: 300, Y: 900, W: 400, H: 40},
			{X: 2400, Y: 1000, W: 300, H: 200},
		},
		Nests: []PointConfig{
			{X: 300, Y: 1600},
			{X: 1500, Y: 400},
			{X: 1600, Y: 1500},
			{X: 2500, Y: 500},
			{X: 2600, Y: 1600},
		},
		Barricades: []BarricadeConfig{
			{RectConfig: RectConfig{X: 2000, Y: 920, W: 30, H: 180}, NestsRequiredToClear: 4},
		},
	}
}
