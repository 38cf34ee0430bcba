package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

const stubGameID = "tui-stub"

func init() {
	registry.Register(registry.GameInfo{ID: stubGameID, Title: "Stub", Description: "for tests"},
		func(registry.Options) (core.Game, error) {
			return &stubGame{}, nil
		})
}

// stubGame records what the platform feeds it.
type stubGame struct {
	state   core.GameState
	resets  int
	resized [2]int
	inputs  []core.InputFrame
	matches int
}

func (g *stubGame) ID() string               { return stubGameID }
func (g *stubGame) Title() string            { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *stubGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "stub board") }
func (g *stubGame) State() core.GameState    { return g.state }
func (g *stubGame) Resize(w, h int)          { g.resized = [2]int{w, h} }
func (g *stubGame) MatchCount() int          { return g.matches }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	return core.StepResult{State: g.state}
}

func (g *stubGame) lastInput() core.InputFrame {
	return g.inputs[len(g.inputs)-1]
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func newTestModel(game *stubGame, store *storage.Store) Model {
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 30, Seed: 1}
	m := NewModel(game, store, cfg, WithPlayer("alice"), WithModelLogger(log.New(io.Discard)))
	m.Init()
	return m
}

func TestModelPassesInputToGame(t *testing.T) {
	game := &stubGame{}
	m := newTestModel(game, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	in := game.lastInput()
	if !in.Has(core.ActionLeft) {
		t.Error("left key not delivered")
	}
	if len(in.Clicks) != 1 || in.Clicks[0] != (core.Click{X: 3, Y: 4}) {
		t.Errorf("Clicks = %v", in.Clicks)
	}

	m, _ = update(t, m, TickMsg{})
	if !game.lastInput().Empty() {
		t.Error("input should be cleared after each tick")
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store := openStore(t)
	game := &stubGame{matches: 3}
	m := newTestModel(game, store)

	game.state = core.GameState{Score: 120, GameOver: true}
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})

	scores, err := store.TopScores(stubGameID, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}
	got := scores[0]
	if got.Score != 120 || got.Player != "alice" || got.Matches != 3 || got.RunID == "" {
		t.Errorf("saved %+v", got)
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store := openStore(t)
	game := &stubGame{state: core.GameState{GameOver: true}}
	m := newTestModel(game, store)

	update(t, m, TickMsg{})

	scores, _ := store.TopScores(stubGameID, 10)
	if len(scores) != 0 {
		t.Errorf("zero score saved: %+v", scores)
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	store := openStore(t)
	game := &stubGame{state: core.GameState{Score: 10, GameOver: true}}
	m := newTestModel(game, store)
	m, _ = update(t, m, TickMsg{})

	m, _ = update(t, m, runeKey("r"))
	game.state = core.GameState{}
	m, _ = update(t, m, TickMsg{})

	if game.resets != 2 {
		t.Errorf("resets = %d, want 2", game.resets)
	}
	if m.scoreSaved {
		t.Error("a new game should be able to save again")
	}
}

func TestModelBack(t *testing.T) {
	game := &stubGame{}
	m := newTestModel(game, nil)

	// Mid-game Esc is an unpick for the game.
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() || cmd != nil {
		t.Fatal("Esc mid-game should not leave")
	}
	m, _ = update(t, m, TickMsg{})
	if !game.lastInput().Has(core.ActionBack) {
		t.Error("Esc not delivered to the game")
	}

	game.state.GameOver = true
	m, _ = update(t, m, TickMsg{})
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() || cmd == nil {
		t.Error("Esc after game over should go back")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&stubGame{}, nil)
	m, cmd := update(t, m, runeKey("q"))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := &stubGame{}
	m := newTestModel(game, nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if game.resized != [2]int{100, 30} {
		t.Errorf("resized = %v", game.resized)
	}
	if game.resets != 1 {
		t.Errorf("resize reset the game, resets = %d", game.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.View(), "stub board") {
		t.Error("View() should contain the game render")
	}
}

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

func TestSessionFlow(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}
	m := NewSessionModel(nil, config.DefaultMatch3Config(), cfg, "bob", log.New(io.Discard))

	// Scoreboard and back.
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScoreboard {
		t.Fatalf("screen = %v, want scoreboard", m.screen)
	}
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenSelector {
		t.Fatalf("screen = %v, want selector", m.screen)
	}

	// Move to the stub and start it.
	for i, g := range registry.List() {
		if g.ID == stubGameID {
			m.selector.cursor = i
		}
	}
	m, cmd := updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || cmd == nil {
		t.Fatalf("screen = %v, want game with a tick", m.screen)
	}
	if m.game.player != "bob" {
		t.Errorf("player = %q, want bob", m.game.player)
	}

	game := m.game.game.(*stubGame)
	game.state.GameOver = true
	m, _ = updateSession(t, m, TickMsg{})
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenSelector || m.game != nil {
		t.Fatal("leaving the game should return to the selector")
	}
	if m.selector.items[m.selector.cursor].ID != stubGameID {
		t.Error("selector should reopen on the last game")
	}

	m, cmd = updateSession(t, m, runeKey("q"))
	if !m.quitting || cmd == nil {
		t.Error("q on the selector should end the session")
	}
}
