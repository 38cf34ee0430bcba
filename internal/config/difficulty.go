package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset is a named rule adjustment applied on top of the loaded config.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// Title is the display name of the preset.
func (p DifficultyPreset) Title() string {
	switch p {
	case DifficultyEasy:
		return "Easy"
	case DifficultyHard:
		return "Hard"
	default:
		return "Normal"
	}
}

// Description is a one-line summary for menus.
func (p DifficultyPreset) Description() string {
	switch p {
	case DifficultyEasy:
		return "5 colors, 10 matches"
	case DifficultyHard:
		return "7 colors, 20 matches"
	default:
		return "6 colors, 15 matches"
	}
}

// GameID is the key scores are stored under for this preset.
func (p DifficultyPreset) GameID() string {
	return "match3-" + string(p)
}

// ApplyPreset adjusts the palette and match limit for a preset.
// Normal leaves the loaded values alone.
func ApplyPreset(cfg *Match3Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Board.Colors = []string{"red", "green", "blue", "yellow", "purple"}
		cfg.Rules.MatchLimit = 10
	case DifficultyHard:
		cfg.Board.Colors = []string{"red", "green", "blue", "yellow", "purple", "cyan", "orange"}
		cfg.Rules.MatchLimit = 20
	}
}
