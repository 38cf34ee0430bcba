package core

import "fmt"

// DefaultMaxCascadeSteps bounds a single Resolve call.
const DefaultMaxCascadeSteps = 1000

// Result summarizes a Resolve call.
type Result struct {
	Steps   []Step
	Removed int // tokens removed across all steps
}

// Resolver runs cascades to completion. It holds no board state.
type Resolver struct {
	// MaxSteps caps the number of remove/drop/refill passes.
	// Zero means DefaultMaxCascadeSteps.
	MaxSteps int
}

func (r Resolver) limit() int {
	if r.MaxSteps <= 0 {
		return DefaultMaxCascadeSteps
	}
	return r.MaxSteps
}

// Resolve repeatedly removes matches, drops the survivors and refills from
// palette until the grid has no matches. onStep, if non-nil, is called once
// per pass with that pass's events.
//
// A grid without matches is left untouched. If the grid still has matches
// after MaxSteps passes, ErrCascadeLimit is returned; the grid is full at
// that point and the steps done so far are in the Result.
func (r Resolver) Resolve(g *Grid, p Palette, onStep func(Step)) (Result, error) {
	var res Result
	for i := 0; ; i++ {
		matched := DetectMatches(g)
		if len(matched) == 0 {
			return res, nil
		}
		if i >= r.limit() {
			return res, fmt.Errorf("%w after %d steps", ErrCascadeLimit, i)
		}

		step := Step{Index: i}
		step.Removed = removeAll(g, matched)
		step.Moved = applyGravity(g)
		step.Spawned = refill(g, p)

		res.Steps = append(res.Steps, step)
		res.Removed += len(step.Removed)
		if onStep != nil {
			onStep(step)
		}
	}
}

func removeAll(g *Grid, cells []Pos) []TokenRef {
	removed := make([]TokenRef, 0, len(cells))
	for _, c := range cells {
		t, _ := g.Remove(c.Row, c.Col)
		if t != nil {
			removed = append(removed, TokenRef{ID: t.ID, Color: t.Color, At: c})
		}
	}
	return removed
}

// applyGravity compacts every column toward the bottom row, keeping the
// tokens' relative order. Holes end up at the top of each column.
func applyGravity(g *Grid) []Move {
	var moves []Move
	n := g.Size()
	for col := 0; col < n; col++ {
		write := n - 1
		for row := n - 1; row >= 0; row-- {
			t, _ := g.TokenAt(row, col)
			if t == nil {
				continue
			}
			if row != write {
				_, _ = g.Remove(row, col)
				_ = g.Place(t, write, col)
				moves = append(moves, Move{
					ID:    t.ID,
					Color: t.Color,
					From:  Pos{Row: row, Col: col},
					To:    Pos{Row: write, Col: col},
				})
			}
			write--
		}
	}
	return moves
}

// refill drops a new token into every hole. Holes are at the top of their
// column after gravity, so a column with k holes spawns its tokens k rows
// above where they land.
func refill(g *Grid, p Palette) []Spawn {
	var spawns []Spawn
	n := g.Size()
	for col := 0; col < n; col++ {
		holes := 0
		for row := 0; row < n; row++ {
			if t, _ := g.TokenAt(row, col); t == nil {
				holes++
			}
		}
		for row := 0; row < n; row++ {
			if t, _ := g.TokenAt(row, col); t != nil {
				continue
			}
			t := g.RandomToken(p)
			_ = g.Place(t, row, col)
			spawns = append(spawns, Spawn{
				ID:    t.ID,
				Color: t.Color,
				From:  Pos{Row: row - holes, Col: col},
				At:    Pos{Row: row, Col: col},
			})
		}
	}
	return spawns
}
