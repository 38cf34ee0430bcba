// Package config loads match3 settings from YAML files and the environment
// and applies difficulty presets.
package config

// Match3Config is the full game configuration.
type Match3Config struct {
	Board     BoardConfig     `yaml:"board" envPrefix:"BOARD_"`
	Rules     RulesConfig     `yaml:"rules" envPrefix:"RULES_"`
	Animation AnimationConfig `yaml:"animation" envPrefix:"ANIMATION_"`
}

// BoardConfig describes the playfield.
type BoardConfig struct {
	Size   int      `yaml:"size" env:"SIZE"`
	Colors []string `yaml:"colors" env:"COLORS" envSeparator:","` // color names, see core.ParseColor
}

// RulesConfig holds scoring and termination rules.
type RulesConfig struct {
	MatchLimit      int `yaml:"match_limit" env:"MATCH_LIMIT"`             // successful swaps per game
	PointsPerToken  int `yaml:"points_per_token" env:"POINTS_PER_TOKEN"`   // score per removed token
	MaxCascadeSteps int `yaml:"max_cascade_steps" env:"MAX_CASCADE_STEPS"` // resolver safety bound
}

// AnimationConfig controls presentation pacing, in ticks.
type AnimationConfig struct {
	SwapTicks  int `yaml:"swap_ticks" env:"SWAP_TICKS"`   // one swap (or swap back)
	ClearTicks int `yaml:"clear_ticks" env:"CLEAR_TICKS"` // matched tokens flash
	DropTicks  int `yaml:"drop_ticks" env:"DROP_TICKS"`   // per row fallen
}
