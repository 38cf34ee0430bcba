// Package match3 adapts the match3 engine to the arcade platform: it maps
// input to engine commands, replays engine events as animations and draws
// the board into a core.Screen.
package match3

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	m3 "github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

// messageSeconds is how long a status line stays on screen.
const messageSeconds = 1

// Option customizes a Game.
type Option func(*Game)

// WithLogger routes game and engine logs to l.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// Game implements core.Game for one difficulty preset.
type Game struct {
	cfg    config.Match3Config
	preset config.DifficultyPreset
	log    *log.Logger

	session *m3.Session
	err     error // engine failure, shown instead of the board

	tick     uint64
	tickRate int
	screenW  int
	screenH  int
	tooSmall bool
	paused   bool

	cursor m3.Pos

	anim         animator
	shownScore   int
	shownMatches int

	pendingOver bool
	over        bool
	finalScore  int

	message      string
	messageTicks int
}

// New creates a game with the given settings; call Reset before use.
// The preset is applied on top of cfg.
func New(cfg config.Match3Config, preset config.DifficultyPreset, opts ...Option) (*Game, error) {
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("match3: %w", err)
	}
	g := &Game{
		cfg:    cfg,
		preset: preset,
		log:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// ID returns the game identifier, which is also the leaderboard key.
func (g *Game) ID() string {
	return g.preset.GameID()
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Match 3 (" + g.preset.Title() + ")"
}

// Preset returns the difficulty the game was built with.
func (g *Game) Preset() config.DifficultyPreset {
	return g.preset
}

// Reset deals a new board and clears all presentation state.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.tick = 0
	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.paused = false
	g.err = nil

	ec, err := g.cfg.EngineConfig(rc.Seed)
	if err == nil {
		g.session, err = m3.NewSession(ec, m3.WithLogger(g.log))
	}
	if err != nil {
		g.err = err
		g.log.Error("cannot start session", "err", err)
		return
	}

	g.cursor = m3.Pos{Row: ec.Size / 2, Col: ec.Size / 2}
	g.restartPresentation()
	g.checkScreenSize()
	g.log.Debug("game reset", "preset", g.preset, "seed", rc.Seed, "size", ec.Size)
}

// restartPresentation mirrors the session's fresh board.
func (g *Game) restartPresentation() {
	g.anim.reset(g.session.Tokens())
	g.shownScore = 0
	g.shownMatches = 0
	g.pendingOver = false
	g.over = false
	g.finalScore = 0
	g.message = ""
	g.messageTicks = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.session == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.over {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && !g.over {
		g.session.Restart()
		g.restartPresentation()
		return core.StepResult{State: g.State()}
	}

	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 {
			g.message = ""
		}
	}

	g.advanceAnimation()
	if g.over {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	if in.Has(core.ActionBack) {
		g.session.ClearSelection()
	}
	if in.Has(core.ActionConfirm) {
		g.selectCell(g.cursor)
	}
	for _, c := range in.Clicks {
		if p, ok := g.cellAt(c.X, c.Y); ok {
			g.cursor = p
			g.selectCell(p)
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	n := g.session.Size()
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row = core.Clamp(g.cursor.Row-1, 0, n-1)
	case in.Has(core.ActionDown):
		g.cursor.Row = core.Clamp(g.cursor.Row+1, 0, n-1)
	}
	switch {
	case in.Has(core.ActionLeft):
		g.cursor.Col = core.Clamp(g.cursor.Col-1, 0, n-1)
	case in.Has(core.ActionRight):
		g.cursor.Col = core.Clamp(g.cursor.Col+1, 0, n-1)
	}
}

// selectCell forwards a pick to the engine and queues the resulting
// animations. Picks are ignored until the previous move has played out.
func (g *Game) selectCell(p m3.Pos) {
	if g.anim.busy() {
		return
	}

	out, err := g.session.Select(p.Row, p.Col)
	if err != nil {
		g.log.Error("select failed", "cell", p, "err", err)
		g.err = err
		// The cascade may have run partway; show what the engine holds.
		g.anim.reset(g.session.Tokens())
		if out.GameOver {
			g.pendingOver = false
			g.over = true
			g.finalScore = out.FinalScore
			g.shownScore = g.session.Score()
			g.shownMatches = g.session.MatchCount()
		}
		return
	}

	switch out.Kind {
	case m3.OutcomeRejected:
		g.flash("Pick a neighboring token")
	case m3.OutcomeReverted:
		g.anim.queueSwap(*out.Swap, g.cfg.Animation.SwapTicks)
		g.anim.queueSwapBack(*out.Swap, g.cfg.Animation.SwapTicks)
		g.flash("No match")
	case m3.OutcomeAccepted:
		g.anim.queueSwap(*out.Swap, g.cfg.Animation.SwapTicks)
		for _, st := range out.Steps {
			g.anim.queueStep(st, g.cfg.Rules.PointsPerToken, g.cfg.Animation.ClearTicks, g.cfg.Animation.DropTicks)
		}
		if len(out.Steps) > 1 {
			g.flash(fmt.Sprintf("Cascade x%d", len(out.Steps)))
		}
		if out.GameOver {
			g.pendingOver = true
			g.finalScore = out.FinalScore
		}
	}
}

// advanceAnimation plays one tick and applies finished phases to the HUD.
func (g *Game) advanceAnimation() {
	for _, done := range g.anim.advance() {
		g.shownScore += done.points
		if done.countsMatch {
			g.shownMatches++
		}
	}
	if g.pendingOver && !g.anim.busy() {
		g.pendingOver = false
		g.over = true
		g.session.ClearSelection()
		g.shownScore = g.session.Score()
		g.shownMatches = g.session.MatchCount()
	}
}

func (g *Game) flash(msg string) {
	g.message = msg
	g.messageTicks = g.tickRate * messageSeconds
}

// State returns the current game state. GameOver is reported only once the
// last cascade has finished animating.
func (g *Game) State() core.GameState {
	score := 0
	if g.session != nil {
		score = g.session.Score()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.over,
		Paused:   g.paused || g.tooSmall,
	}
}

// MatchCount returns the engine's match count, for result records.
func (g *Game) MatchCount() int {
	if g.session == nil {
		return 0
	}
	return g.session.MatchCount()
}

// Err returns the engine error that stopped the game, if any.
func (g *Game) Err() error {
	return g.err
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Enter/Space/Click: Pick | Esc: Unpick | P: Pause | R: Restart | Q: Quit"
}

var _ core.Game = (*Game)(nil)
