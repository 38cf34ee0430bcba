package core

import (
	"fmt"
	"strings"
)

// ColorSource is the part of *math/rand.Rand the grid needs to pick colors.
// Tests supply scripted sources to control refills.
type ColorSource interface {
	Intn(n int) int
}

// Grid is a size×size board of tokens stored in row-major order.
// A nil entry is a hole; holes exist only between removal and refill.
type Grid struct {
	size   int
	cells  []*Token
	src    ColorSource
	nextID uint64
}

// NewGrid returns an empty grid. Every cell starts as a hole.
func NewGrid(size int, src ColorSource) *Grid {
	return &Grid{
		size:  size,
		cells: make([]*Token, size*size),
		src:   src,
	}
}

// Size returns the number of rows (and columns).
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether (row, col) lies on the board.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

func (g *Grid) index(row, col int) int {
	return row*g.size + col
}

func (g *Grid) check(row, col int) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfRange, row, col, g.size, g.size)
	}
	return nil
}

// TokenAt returns the token at (row, col), or nil for a hole.
func (g *Grid) TokenAt(row, col int) (*Token, error) {
	if err := g.check(row, col); err != nil {
		return nil, err
	}
	return g.cells[g.index(row, col)], nil
}

// Place puts t at (row, col) and updates its coordinates.
// Any previous occupant is overwritten; the caller owns that decision.
func (g *Grid) Place(t *Token, row, col int) error {
	if err := g.check(row, col); err != nil {
		return err
	}
	g.cells[g.index(row, col)] = t
	if t != nil {
		t.Row, t.Col = row, col
	}
	return nil
}

// Remove turns (row, col) into a hole and returns what was there.
func (g *Grid) Remove(row, col int) (*Token, error) {
	if err := g.check(row, col); err != nil {
		return nil, err
	}
	i := g.index(row, col)
	t := g.cells[i]
	g.cells[i] = nil
	return t, nil
}

// RandomToken creates an unplaced token with a uniformly drawn palette color.
func (g *Grid) RandomToken(p Palette) *Token {
	g.nextID++
	return &Token{
		ID:    g.nextID,
		Color: p[g.src.Intn(len(p))],
		Row:   -1,
		Col:   -1,
	}
}

// Fill places a random token into every hole, top-left to bottom-right.
// Runs that happen to form are left in place.
func (g *Grid) Fill(p Palette) {
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			if g.cells[g.index(row, col)] == nil {
				_ = g.Place(g.RandomToken(p), row, col)
			}
		}
	}
}

// Reset empties the board and fills it again.
// Token IDs keep counting so they stay unique across restarts.
func (g *Grid) Reset(p Palette) {
	clear(g.cells)
	g.Fill(p)
}

// Swap exchanges the occupants of two cells, holes included.
func (g *Grid) Swap(a, b Pos) error {
	ta, err := g.TokenAt(a.Row, a.Col)
	if err != nil {
		return err
	}
	tb, err := g.TokenAt(b.Row, b.Col)
	if err != nil {
		return err
	}
	_ = g.Place(tb, a.Row, a.Col)
	_ = g.Place(ta, b.Row, b.Col)
	return nil
}

// ColorAt returns the color at (row, col). ok is false for holes and
// out-of-range coordinates.
func (g *Grid) ColorAt(row, col int) (c Color, ok bool) {
	if !g.InBounds(row, col) {
		return 0, false
	}
	t := g.cells[g.index(row, col)]
	if t == nil {
		return 0, false
	}
	return t.Color, true
}

// Holes counts empty cells.
func (g *Grid) Holes() int {
	n := 0
	for _, t := range g.cells {
		if t == nil {
			n++
		}
	}
	return n
}

// Full reports whether every cell holds a token.
func (g *Grid) Full() bool {
	return g.Holes() == 0
}

// Tokens returns the live tokens in row-major order.
func (g *Grid) Tokens() []*Token {
	out := make([]*Token, 0, len(g.cells))
	for _, t := range g.cells {
		if t != nil {
			out = append(out, t)
		}
	}
	return out
}

// Clone returns a deep copy. The clone shares the color source.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		size:   g.size,
		cells:  make([]*Token, len(g.cells)),
		src:    g.src,
		nextID: g.nextID,
	}
	for i, t := range g.cells {
		if t != nil {
			cp := *t
			c.cells[i] = &cp
		}
	}
	return c
}

// Equal reports whether both grids hold the same tokens in the same cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.size != o.size {
		return false
	}
	for i, t := range g.cells {
		u := o.cells[i]
		if (t == nil) != (u == nil) {
			return false
		}
		if t != nil && *t != *u {
			return false
		}
	}
	return true
}

// String renders one line per row using color letters, '.' for holes.
func (g *Grid) String() string {
	var sb strings.Builder
	for row := 0; row < g.size; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < g.size; col++ {
			if t := g.cells[g.index(row, col)]; t != nil {
				sb.WriteRune(t.Color.Char())
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// ParseGrid builds a grid from rows of color letters ('.' for a hole).
// Token IDs are assigned in row-major order. Intended for fixtures.
func ParseGrid(rows []string, src ColorSource) (*Grid, error) {
	size := len(rows)
	g := NewGrid(size, src)
	for row, line := range rows {
		runes := []rune(line)
		if len(runes) != size {
			return nil, fmt.Errorf("row %d has %d cells, want %d", row, len(runes), size)
		}
		for col, r := range runes {
			if r == '.' {
				continue
			}
			c, ok := ParseColor(string(r))
			if !ok {
				return nil, fmt.Errorf("row %d col %d: unknown color %q", row, col, r)
			}
			g.nextID++
			_ = g.Place(&Token{ID: g.nextID, Color: c}, row, col)
		}
	}
	return g, nil
}
