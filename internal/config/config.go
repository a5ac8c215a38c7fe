// Package config provides YAML-based difficulty presets and environment
// settings for the memory game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Level names understood by the game and persisted as the last level played.
const (
	LevelEasy   = "easy"
	LevelMedium = "medium"
	LevelHard   = "hard"
)

// Level is one difficulty preset.
type Level struct {
	Name         string `yaml:"name" validate:"required,oneof=easy medium hard"`
	Title        string `yaml:"title" validate:"required"`
	Pairs        int    `yaml:"pairs" validate:"min=1"`
	Columns      int    `yaml:"columns" validate:"min=1"`
	MatchDelayMS int    `yaml:"match_delay_ms" validate:"min=1"`
	FlipMS       int    `yaml:"flip_ms" validate:"min=0"`
}

// MatchDelay is how long two face-up cards stay visible before resolution.
func (l Level) MatchDelay() time.Duration {
	return time.Duration(l.MatchDelayMS) * time.Millisecond
}

// FlipDuration is the length of the flip highlight.
func (l Level) FlipDuration() time.Duration {
	return time.Duration(l.FlipMS) * time.Millisecond
}

// Cards returns the number of cards on the board.
func (l Level) Cards() int {
	return l.Pairs * 2
}

// Par is the ideal move count for the level.
func (l Level) Par() int {
	return l.Pairs
}

// Presets is the ordered set of difficulty levels shown in the menu.
type Presets struct {
	Levels []Level `yaml:"levels" validate:"required,min=1,dive"`
}

var validate = validator.New()

// ErrUnknownLevel is returned when a level name is not in the presets.
var ErrUnknownLevel = errors.New("config: unknown level")

// Get returns the level with the given name.
func (p Presets) Get(name string) (Level, error) {
	for _, l := range p.Levels {
		if l.Name == name {
			return l, nil
		}
	}
	return Level{}, fmt.Errorf("%w %q", ErrUnknownLevel, name)
}

// Names returns the level names in menu order.
func (p Presets) Names() []string {
	names := make([]string, len(p.Levels))
	for i, l := range p.Levels {
		names[i] = l.Name
	}
	return names
}

// Index returns the menu position of the named level, or -1.
func (p Presets) Index(name string) int {
	for i, l := range p.Levels {
		if l.Name == name {
			return i
		}
	}
	return -1
}

// Validate checks field constraints, duplicate names, and that no level asks
// for more pairs than the symbol catalog can supply.
func (p Presets) Validate(catalogSize int) error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("config: invalid presets: %w", err)
	}

	seen := make(map[string]bool, len(p.Levels))
	for _, l := range p.Levels {
		if seen[l.Name] {
			return fmt.Errorf("config: duplicate level %q", l.Name)
		}
		seen[l.Name] = true

		if l.Pairs > catalogSize {
			return fmt.Errorf("config: level %q needs %d symbols, catalog has %d", l.Name, l.Pairs, catalogSize)
		}
	}
	return nil
}
