// Package config provides YAML-based configuration loading for the solver
// CLI: grid geometry, scramble defaults, and solve-history storage.
package config

// Config is the root configuration for the slider CLI.
type Config struct {
	Board    BoardConfig    `yaml:"board"`
	Scramble ScrambleConfig `yaml:"scramble"`
	History  HistoryConfig  `yaml:"history"`
}

// BoardConfig defines the grid geometry.
type BoardConfig struct {
	// Side is the grid side length; the board has Side×Side slots.
	Side int `yaml:"side"`
}

// ScrambleConfig defines defaults for scramble generation.
type ScrambleConfig struct {
	// Moves is the random-walk length used when scrambling from the goal.
	Moves int `yaml:"moves"`

	// Uniform switches to uniformly random solvable permutations instead
	// of a bounded random walk.
	Uniform bool `yaml:"uniform"`
}

// HistoryConfig defines the solve-history store.
type HistoryConfig struct {
	// Path is the SQLite database location. A leading ~ expands to the
	// user's home directory.
	Path string `yaml:"path"`

	// Limit is the default number of records shown by the history command.
	Limit int `yaml:"limit"`
}
