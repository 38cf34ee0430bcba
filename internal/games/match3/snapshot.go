package match3

import (
	"strings"

	m3 "github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateAnimating   GameStateType = "animating"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
	StateError       GameStateType = "error"
)

// Snapshot captures the game for determinism tests and debugging.
type Snapshot struct {
	Tick         uint64
	Preset       string
	Board        []string // engine board, one letter per token
	Score        int      // engine score
	ShownScore   int      // score as the animation has caught up to it
	Matches      int
	MatchLimit   int
	Cursor       m3.Pos
	Selected     *m3.Pos
	Sprites      int
	PendingPhase int
	State        GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       g.tick,
		Preset:     string(g.preset),
		ShownScore: g.shownScore,
		Cursor:     g.cursor,
		Sprites:    len(g.anim.sprites),
		State:      g.stateType(),
	}
	snap.PendingPhase = len(g.anim.queue)
	if g.anim.current != nil {
		snap.PendingPhase++
	}
	if g.session == nil {
		return snap
	}

	es := g.session.Snapshot()
	snap.Board = es.Rows
	snap.Score = es.Score
	snap.Matches = es.MatchCount
	snap.MatchLimit = g.session.MatchLimit()
	snap.Selected = es.Selected
	return snap
}

func (g *Game) stateType() GameStateType {
	switch {
	case g.session == nil:
		return StateError
	case g.tooSmall:
		return StatePausedSmall
	case g.over:
		return StateGameOver
	case g.paused:
		return StatePaused
	case g.anim.busy():
		return StateAnimating
	default:
		return StatePlaying
	}
}

// String returns the engine board, one row per line.
func (s Snapshot) String() string {
	return strings.Join(s.Board, "\n")
}
