package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var fromYAML Match3Config
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &fromYAML))
	assert.Equal(t, DefaultMatch3Config(), fromYAML)
	assert.NoError(t, fromYAML.Validate())
}

func TestLoadFileCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "board:\n  size: 6\nrules:\n  match_limit: 3\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := loadFile(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Board.Size)
	assert.Equal(t, 3, cfg.Rules.MatchLimit)
	// Unset keys keep their defaults.
	assert.Equal(t, 10, cfg.Rules.PointsPerToken)
	assert.Len(t, cfg.Board.Colors, 6)
}

func TestLoadFileCustomPathErrors(t *testing.T) {
	_, err := loadFile(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("board: [unclosed"), 0o644))
	_, err = loadFile(bad, nil)
	assert.Error(t, err)
}

func TestLoadFileFallbackOrder(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.yaml")
	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("rules: ["), 0o644))
	require.NoError(t, os.WriteFile(good, []byte("rules:\n  match_limit: 7\n"), 0o644))

	cfg, err := loadFile("", []string{filepath.Join(dir, "absent.yaml"), broken, good})
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Rules.MatchLimit)

	cfg, err = loadFile("", []string{filepath.Join(dir, "absent.yaml")})
	require.NoError(t, err)
	assert.Equal(t, DefaultMatch3Config(), cfg, "embedded default when nothing is found")
}

func TestApplyEnv(t *testing.T) {
	cfg := DefaultMatch3Config()
	err := ApplyEnv(&cfg, map[string]string{
		"MATCH3_BOARD_SIZE":           "10",
		"MATCH3_BOARD_COLORS":         "red,green,blue,yellow",
		"MATCH3_RULES_MATCH_LIMIT":    "30",
		"MATCH3_ANIMATION_DROP_TICKS": "4",
		"UNRELATED":                   "x",
	})
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Board.Size)
	assert.Equal(t, []string{"red", "green", "blue", "yellow"}, cfg.Board.Colors)
	assert.Equal(t, 30, cfg.Rules.MatchLimit)
	assert.Equal(t, 4, cfg.Animation.DropTicks)
	assert.Equal(t, 10, cfg.Rules.PointsPerToken, "unset variables keep file values")
}

func TestApplyEnvBadValue(t *testing.T) {
	cfg := DefaultMatch3Config()
	err := ApplyEnv(&cfg, map[string]string{"MATCH3_BOARD_SIZE": "big"})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Match3Config)
	}{
		{"unknown color", func(c *Match3Config) { c.Board.Colors = []string{"red", "green", "mauve"} }},
		{"too few colors", func(c *Match3Config) { c.Board.Colors = []string{"red", "green"} }},
		{"board too small", func(c *Match3Config) { c.Board.Size = 2 }},
		{"no matches allowed", func(c *Match3Config) { c.Rules.MatchLimit = 0 }},
		{"zero animation", func(c *Match3Config) { c.Animation.SwapTicks = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultMatch3Config()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestEngineConfig(t *testing.T) {
	ec, err := DefaultMatch3Config().EngineConfig(99)
	require.NoError(t, err)
	assert.Equal(t, 8, ec.Size)
	assert.Len(t, ec.Palette, 6)
	assert.Equal(t, 15, ec.MatchLimit)
	assert.Equal(t, int64(99), ec.Seed)
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		colors     int
		matchLimit int
	}{
		{DifficultyEasy, 5, 10},
		{DifficultyNormal, 6, 15},
		{DifficultyHard, 7, 20},
	}
	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultMatch3Config()
			ApplyPreset(&cfg, tc.preset)
			assert.Len(t, cfg.Board.Colors, tc.colors)
			assert.Equal(t, tc.matchLimit, cfg.Rules.MatchLimit)
			assert.NoError(t, cfg.Validate())
			assert.Equal(t, "match3-"+string(tc.preset), tc.preset.GameID())
		})
	}
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyNormal, p)

	p, err = ParsePreset(" HARD ")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, p)

	_, err = ParsePreset("nightmare")
	assert.Error(t, err)
}
