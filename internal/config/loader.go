package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	m3 "github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

// EnvPrefix prefixes every environment override, e.g. MATCH3_BOARD_SIZE.
const EnvPrefix = "MATCH3_"

const configFile = "match3.yaml"

// ErrInvalid wraps validation failures.
var ErrInvalid = errors.New("config: invalid")

// LoadMatch3 loads the configuration and applies environment overrides.
// Search order: customPath -> ~/.match3/configs/match3.yaml ->
// ./configs/match3.yaml -> embedded default.
// Values missing from a file keep their defaults.
func LoadMatch3(customPath string) (Match3Config, error) {
	cfg, err := loadFile(customPath, searchPaths())
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg, nil); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// loadFile reads the first usable config. A customPath must exist and
// parse; the fallbacks are skipped silently when missing or broken.
func loadFile(customPath string, fallbacks []string) (Match3Config, error) {
	cfg := DefaultMatch3Config()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range fallbacks {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultMatch3Config()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	if err := yaml.Unmarshal(defaultMatch3YAML, &cfg); err != nil {
		return DefaultMatch3Config(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// searchPaths lists the fallback config locations in priority order.
func searchPaths() []string {
	var paths []string
	if p := userConfigPath(configFile); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", configFile))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".match3", "configs", filename)
}

// ApplyEnv overrides cfg with MATCH3_* variables. A nil environ reads the
// process environment. Unset variables leave fields untouched.
func ApplyEnv(cfg *Match3Config, environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks the values the engine and the animation layer rely on.
func (c Match3Config) Validate() error {
	if _, err := c.EngineConfig(0); err != nil {
		return err
	}
	a := c.Animation
	if a.SwapTicks < 1 || a.ClearTicks < 1 || a.DropTicks < 1 {
		return fmt.Errorf("%w: animation ticks must be at least 1", ErrInvalid)
	}
	return nil
}

// EngineConfig converts the file settings into engine rules.
func (c Match3Config) EngineConfig(seed int64) (m3.Config, error) {
	palette, err := m3.ParsePalette(c.Board.Colors)
	if err != nil {
		return m3.Config{}, fmt.Errorf("%w: board.colors: %v", ErrInvalid, err)
	}
	ec := m3.Config{
		Size:            c.Board.Size,
		Palette:         palette,
		MatchLimit:      c.Rules.MatchLimit,
		PointsPerToken:  c.Rules.PointsPerToken,
		MaxCascadeSteps: c.Rules.MaxCascadeSteps,
		Seed:            seed,
	}
	if err := ec.Validate(); err != nil {
		return m3.Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return ec, nil
}
