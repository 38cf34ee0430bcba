package core

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Status is the session lifecycle state.
type Status uint8

const (
	StatusPlaying Status = iota
	StatusOver
)

func (s Status) String() string {
	if s == StatusOver {
		return "over"
	}
	return "playing"
}

// Config holds the rules of one game.
type Config struct {
	Size            int     // board is Size×Size
	Palette         Palette // colors new tokens are drawn from
	MatchLimit      int     // successful swaps before the game ends
	PointsPerToken  int     // score per removed token
	MaxCascadeSteps int     // resolver bound, 0 for the default
	Seed            int64   // 0 picks a time-based seed
}

// DefaultConfig returns the classic 8×8, six color, fifteen match game.
func DefaultConfig() Config {
	return Config{
		Size:            8,
		Palette:         DefaultPalette(),
		MatchLimit:      15,
		PointsPerToken:  10,
		MaxCascadeSteps: DefaultMaxCascadeSteps,
	}
}

// Validate checks the rules are playable.
func (c Config) Validate() error {
	switch {
	case c.Size < MinRun:
		return fmt.Errorf("%w: size %d is below %d", ErrInvalidConfig, c.Size, MinRun)
	case len(c.Palette) < 3:
		return fmt.Errorf("%w: palette needs at least 3 colors, got %d", ErrInvalidConfig, len(c.Palette))
	case c.Palette.hasDuplicates():
		return fmt.Errorf("%w: palette has duplicate colors", ErrInvalidConfig)
	case c.MatchLimit < 1:
		return fmt.Errorf("%w: match limit must be positive", ErrInvalidConfig)
	case c.PointsPerToken < 0:
		return fmt.Errorf("%w: points per token must not be negative", ErrInvalidConfig)
	case c.MaxCascadeSteps < 0:
		return fmt.Errorf("%w: max cascade steps must not be negative", ErrInvalidConfig)
	}
	for _, col := range c.Palette {
		if col >= ColorCount {
			return fmt.Errorf("%w: unknown color %d in palette", ErrInvalidConfig, col)
		}
	}
	return nil
}

// OutcomeKind classifies the result of a player command.
type OutcomeKind uint8

const (
	// OutcomeNone: nothing changed (the selected cell was picked again).
	OutcomeNone OutcomeKind = iota
	// OutcomeSelected: a first cell is now selected.
	OutcomeSelected
	// OutcomeRejected: the two cells are not adjacent.
	OutcomeRejected
	// OutcomeReverted: the swap made no match and was undone.
	OutcomeReverted
	// OutcomeAccepted: the swap matched and its cascade has settled.
	OutcomeAccepted
	// OutcomeGameOver: the session is over; nothing was changed.
	OutcomeGameOver
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNone:
		return "none"
	case OutcomeSelected:
		return "selected"
	case OutcomeRejected:
		return "rejected"
	case OutcomeReverted:
		return "reverted"
	case OutcomeAccepted:
		return "accepted"
	case OutcomeGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Outcome is everything a presentation layer needs after a command.
type Outcome struct {
	Kind OutcomeKind

	// Swap is set for Reverted and Accepted outcomes.
	Swap *SwapEvent
	// Steps holds the cascade passes of an Accepted swap, in order.
	Steps []Step

	ScoreDelta int
	Score      int
	MatchCount int

	// GameOver is set when this outcome ended the game, and on every
	// OutcomeGameOver. FinalScore is valid when GameOver is set.
	GameOver   bool
	FinalScore int
}

// Option customizes a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithColorSource replaces the seeded random source.
func WithColorSource(src ColorSource) Option {
	return func(s *Session) {
		if src != nil {
			s.src = src
		}
	}
}

// Session is one player's game: the board, the selection slot and the
// score bookkeeping. It is not safe for concurrent use.
type Session struct {
	cfg      Config
	src      ColorSource
	grid     *Grid
	resolver Resolver
	log      *log.Logger

	score      int
	matchCount int
	status     Status

	selected    Pos
	hasSelected bool
}

// NewSession validates cfg and deals a fresh board.
// The initial board may already contain matches; they stay until a swap
// causes a cascade.
func NewSession(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		cfg:      cfg,
		src:      rand.New(rand.NewSource(seed)),
		resolver: Resolver{MaxSteps: cfg.MaxCascadeSteps},
		log:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.grid = NewGrid(cfg.Size, s.src)
	s.grid.Fill(cfg.Palette)
	return s, nil
}

// NewSessionFromGrid starts a session on a prepared board.
// The grid must be full and match cfg.Size. Further tokens come from
// the grid's own color source.
func NewSessionFromGrid(cfg Config, g *Grid, opts ...Option) (*Session, error) {
	cfg.Size = g.Size()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !g.Full() {
		return nil, fmt.Errorf("%w: starting grid has %d holes", ErrInvalidConfig, g.Holes())
	}
	s := &Session{
		cfg:      cfg,
		src:      g.src,
		grid:     g,
		resolver: Resolver{MaxSteps: cfg.MaxCascadeSteps},
		log:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.src == nil {
		return nil, fmt.Errorf("%w: starting grid has no color source", ErrInvalidConfig)
	}
	g.src = s.src
	return s, nil
}

// Select handles a player picking cell (row, col).
//
// With nothing selected the cell becomes the selection. Picking the
// selected cell again changes nothing. Picking a different cell attempts
// a swap between the two. Out-of-range coordinates are an error.
func (s *Session) Select(row, col int) (Outcome, error) {
	if s.status == StatusOver {
		return s.gameOverOutcome(), nil
	}
	if !s.grid.InBounds(row, col) {
		return Outcome{}, fmt.Errorf("select: %w: (%d,%d)", ErrOutOfRange, row, col)
	}

	p := Pos{Row: row, Col: col}
	if !s.hasSelected {
		s.selected, s.hasSelected = p, true
		return s.outcome(OutcomeSelected), nil
	}
	if s.selected == p {
		return s.outcome(OutcomeNone), nil
	}
	return s.AttemptSwap(s.selected, p)
}

// AttemptSwap tries to exchange the tokens at a and b. The selection is
// cleared whatever happens, unless the game is already over.
func (s *Session) AttemptSwap(a, b Pos) (Outcome, error) {
	if s.status == StatusOver {
		return s.gameOverOutcome(), nil
	}
	if !s.grid.InBounds(a.Row, a.Col) || !s.grid.InBounds(b.Row, b.Col) {
		return Outcome{}, fmt.Errorf("swap: %w: %v <-> %v", ErrOutOfRange, a, b)
	}
	s.ClearSelection()

	if !a.Adjacent(b) {
		s.log.Debug("swap rejected", "a", a, "b", b)
		return s.outcome(OutcomeRejected), nil
	}

	ta, _ := s.grid.TokenAt(a.Row, a.Col)
	tb, _ := s.grid.TokenAt(b.Row, b.Col)
	swap := &SwapEvent{A: a, B: b, TokenA: ta.ID, TokenB: tb.ID}

	_ = s.grid.Swap(a, b)
	if len(DetectMatches(s.grid)) == 0 {
		_ = s.grid.Swap(a, b)
		swap.Reverted = true
		s.log.Debug("swap reverted", "a", a, "b", b)
		out := s.outcome(OutcomeReverted)
		out.Swap = swap
		return out, nil
	}

	before := s.score
	res, err := s.resolver.Resolve(s.grid, s.cfg.Palette, s.scoreStep)
	out := s.outcome(OutcomeAccepted)
	out.Swap = swap
	out.Steps = res.Steps
	out.ScoreDelta = s.score - before
	if err != nil {
		// The board still holds matches the resolver gave up on, so no
		// later swap can be judged against it. The session ends here.
		s.log.Error("cascade aborted", "steps", len(res.Steps), "err", err)
		s.end(&out)
		return out, fmt.Errorf("swap %v <-> %v: %w", a, b, err)
	}

	s.log.Debug("swap accepted", "a", a, "b", b, "steps", len(res.Steps), "removed", res.Removed, "score", s.score)

	if s.matchCount >= s.cfg.MatchLimit {
		s.end(&out)
	}
	return out, nil
}

func (s *Session) end(out *Outcome) {
	s.status = StatusOver
	s.log.Info("game over", "score", s.score, "matches", s.matchCount)
	out.GameOver = true
	out.FinalScore = s.score
}

// scoreStep applies one cascade pass to the score. Only the pass caused
// directly by the swap counts toward the match limit.
func (s *Session) scoreStep(st Step) {
	if st.Index == 0 {
		s.matchCount++
	}
	s.score += len(st.Removed) * s.cfg.PointsPerToken
}

// ClearSelection drops the current selection, if any.
func (s *Session) ClearSelection() {
	s.hasSelected = false
	s.selected = Pos{}
}

// Restart zeroes the score and deals a new board from the same color
// source. Token IDs keep increasing.
func (s *Session) Restart() {
	s.score = 0
	s.matchCount = 0
	s.status = StatusPlaying
	s.ClearSelection()
	s.grid.Reset(s.cfg.Palette)
	s.log.Debug("session restarted")
}

func (s *Session) outcome(kind OutcomeKind) Outcome {
	return Outcome{Kind: kind, Score: s.score, MatchCount: s.matchCount}
}

func (s *Session) gameOverOutcome() Outcome {
	out := s.outcome(OutcomeGameOver)
	out.GameOver = true
	out.FinalScore = s.score
	return out
}

// Config returns the rules the session was built with.
func (s *Session) Config() Config { return s.cfg }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// MatchCount returns the number of successful swaps.
func (s *Session) MatchCount() int { return s.matchCount }

// MatchLimit returns the match count that ends the game.
func (s *Session) MatchLimit() int { return s.cfg.MatchLimit }

// Status returns the lifecycle state.
func (s *Session) Status() Status { return s.status }

// Over reports whether the game has ended.
func (s *Session) Over() bool { return s.status == StatusOver }

// Size returns the board dimension.
func (s *Session) Size() int { return s.grid.Size() }

// Selected returns the selected cell, if any.
func (s *Session) Selected() (Pos, bool) { return s.selected, s.hasSelected }

// ColorAt returns the color at (row, col).
func (s *Session) ColorAt(row, col int) (Color, bool) { return s.grid.ColorAt(row, col) }

// TokenAt returns a copy of the token at (row, col).
func (s *Session) TokenAt(row, col int) (Token, error) {
	t, err := s.grid.TokenAt(row, col)
	if err != nil || t == nil {
		return Token{}, err
	}
	return *t, nil
}

// Tokens returns copies of every token in row-major order.
func (s *Session) Tokens() []Token {
	live := s.grid.Tokens()
	out := make([]Token, len(live))
	for i, t := range live {
		out[i] = *t
	}
	return out
}

// Snapshot captures the session for assertions and debugging.
type Snapshot struct {
	Rows       []string
	Score      int
	MatchCount int
	Status     Status
	Selected   *Pos
}

// Snapshot returns the current board as color letters plus counters.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Rows:       strings.Split(s.grid.String(), "\n"),
		Score:      s.score,
		MatchCount: s.matchCount,
		Status:     s.status,
	}
	if s.hasSelected {
		p := s.selected
		snap.Selected = &p
	}
	return snap
}
