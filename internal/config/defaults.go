package config

import (
	_ "embed"
)

//go:embed defaults/levels.yaml
var defaultLevelsYAML []byte

// DefaultPresets returns the built-in easy/medium/hard presets.
func DefaultPresets() Presets {
	return Presets{
		Levels: []Level{
			{Name: LevelEasy, Title: "Easy", Pairs: 6, Columns: 4, MatchDelayMS: 800, FlipMS: 600},
			{Name: LevelMedium, Title: "Medium", Pairs: 12, Columns: 6, MatchDelayMS: 700, FlipMS: 500},
			{Name: LevelHard, Title: "Hard", Pairs: 20, Columns: 8, MatchDelayMS: 600, FlipMS: 400},
		},
	}
}

// DefaultYAML returns the embedded presets file, a starting point for a
// custom levels.yaml.
func DefaultYAML() []byte {
	return defaultLevelsYAML
}
