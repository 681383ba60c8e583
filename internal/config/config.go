// Package config provides YAML-based level loading for the simulation.
// Gameplay constants live with the code that uses them; only the level
// layout is data.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/infestation/internal/core"
	"github.com/vovakirdan/infestation/internal/level"
)

// ErrInvalidLevel is wrapped by every validation failure.
var ErrInvalidLevel = errors.New("invalid level")

// LevelConfig is the on-disk description of a level.
type LevelConfig struct {
	Name        string            `yaml:"name"`
	Objective   string            `yaml:"objective"`
	Width       float64           `yaml:"width"`
	Height      float64           `yaml:"height"`
	PlayerStart PointConfig       `yaml:"player_start"`
	Walls       []RectConfig      `yaml:"walls"`
	Nests       []PointConfig     `yaml:"nests"`
	Barricades  []BarricadeConfig `yaml:"barricades"`
}

// PointConfig is a world position.
type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// RectConfig is an axis-aligned rectangle given by its top-left corner.
type RectConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// BarricadeConfig is a barricade rectangle and its opening threshold.
type BarricadeConfig struct {
	RectConfig           `yaml:",inline"`
	NestsRequiredToClear int `yaml:"nests_required_to_clear"`
}

func (r RectConfig) rect() core.Rect {
	return core.NewRect(r.X, r.Y, r.W, r.H)
}

func (p PointConfig) vec() core.Vec2 {
	return core.V(p.X, p.Y)
}

// Validate checks the level for values the simulation cannot run with.
func (c LevelConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: bounds %vx%v must be positive", ErrInvalidLevel, c.Width, c.Height)
	}
	if !inBounds(c.PlayerStart, c.Width, c.Height) {
		return fmt.Errorf("%w: player start (%v,%v) outside bounds", ErrInvalidLevel, c.PlayerStart.X, c.PlayerStart.Y)
	}
	for i, w := range c.Walls {
		if w.W <= 0 || w.H <= 0 {
			return fmt.Errorf("%w: wall %d has degenerate size %vx%v", ErrInvalidLevel, i, w.W, w.H)
		}
	}
	for i, b := range c.Barricades {
		if b.W <= 0 || b.H <= 0 {
			return fmt.Errorf("%w: barricade %d has degenerate size %vx%v", ErrInvalidLevel, i, b.W, b.H)
		}
		if b.NestsRequiredToClear < 0 {
			return fmt.Errorf("%w: barricade %d threshold %d is negative", ErrInvalidLevel, i, b.NestsRequiredToClear)
		}
	}
	for i, n := range c.Nests {
		if !inBounds(n, c.Width, c.Height) {
			return fmt.Errorf("%w: nest %d at (%v,%v) outside bounds", ErrInvalidLevel, i, n.X, n.Y)
		}
	}
	return nil
}

func inBounds(p PointConfig, w, h float64) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= w && p.Y <= h
}

// Level builds a fresh runtime level from the configuration.
func (c LevelConfig) Level() *level.Level {
	l := &level.Level{
		Name:        c.Name,
		Bounds:      core.NewRect(0, 0, c.Width, c.Height),
		PlayerStart: c.PlayerStart.vec(),
	}
	for _, w := range c.Walls {
		l.Walls = append(l.Walls, w.rect())
	}
	for _, n := range c.Nests {
		l.Nests = append(l.Nests, n.vec())
	}
	for _, b := range c.Barricades {
		l.Barricades = append(l.Barricades, level.NewBarricade(b.rect(), b.NestsRequiredToClear))
	}
	return l
}
