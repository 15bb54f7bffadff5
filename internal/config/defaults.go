package config

import (
	_ "embed"
)

//go:embed defaults/slider.yaml
var defaultSliderYAML []byte

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Side: 3,
		},
		Scramble: ScrambleConfig{
			Moves:   25,
			Uniform: false,
		},
		History: HistoryConfig{
			Path:  "~/.slider/history.db",
			Limit: 20,
		},
	}
}
