package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the built-in configuration. It matches the
// embedded defaults/match3.yaml.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: BoardConfig{
			Size:   8,
			Colors: []string{"red", "green", "blue", "yellow", "purple", "cyan"},
		},
		Rules: RulesConfig{
			MatchLimit:      15,
			PointsPerToken:  10,
			MaxCascadeSteps: 1000,
		},
		Animation: AnimationConfig{
			SwapTicks:  6,
			ClearTicks: 8,
			DropTicks:  2,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMatch3YAML
}
