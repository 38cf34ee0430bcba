package core

import "fmt"

// Pos is a grid coordinate. Row 0 is the top row.
type Pos struct {
	Row, Col int
}

// P is shorthand for Pos{Row: row, Col: col}.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// String implements fmt.Stringer.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Manhattan returns the taxicab distance between two positions.
func (p Pos) Manhattan(o Pos) int {
	return abs(p.Row-o.Row) + abs(p.Col-o.Col)
}

// Adjacent reports whether the two cells share an edge.
func (p Pos) Adjacent(o Pos) bool {
	return p.Manhattan(o) == 1
}

// Less orders positions by row, then column.
func (p Pos) Less(o Pos) bool {
	if p.Row != o.Row {
		return p.Row < o.Row
	}
	return p.Col < o.Col
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
