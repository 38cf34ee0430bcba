package core

import "sort"

// MinRun is the shortest line of equal colors that counts as a match.
const MinRun = 3

// Axis is the direction of a run.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Run is a maximal line of at least MinRun same-colored tokens.
type Run struct {
	Axis   Axis
	Start  Pos // leftmost or topmost cell
	Length int
	Color  Color
}

// Cells lists the run's positions from Start onward.
func (r Run) Cells() []Pos {
	out := make([]Pos, r.Length)
	for i := range out {
		if r.Axis == Horizontal {
			out[i] = Pos{Row: r.Start.Row, Col: r.Start.Col + i}
		} else {
			out[i] = Pos{Row: r.Start.Row + i, Col: r.Start.Col}
		}
	}
	return out
}

// FindRuns returns every match on the grid: rows left to right first,
// then columns top to bottom. Holes end a run.
func FindRuns(g *Grid) []Run {
	var runs []Run
	n := g.Size()

	for row := 0; row < n; row++ {
		runs = scanLine(runs, n, Horizontal, func(i int) (Color, bool) {
			return g.ColorAt(row, i)
		}, func(i int) Pos { return Pos{Row: row, Col: i} })
	}
	for col := 0; col < n; col++ {
		runs = scanLine(runs, n, Vertical, func(i int) (Color, bool) {
			return g.ColorAt(i, col)
		}, func(i int) Pos { return Pos{Row: i, Col: col} })
	}
	return runs
}

// scanLine appends the runs found along one row or column.
func scanLine(runs []Run, n int, axis Axis, at func(int) (Color, bool), pos func(int) Pos) []Run {
	start := 0
	for start < n {
		c, ok := at(start)
		if !ok {
			start++
			continue
		}
		end := start + 1
		for end < n {
			next, ok := at(end)
			if !ok || next != c {
				break
			}
			end++
		}
		if end-start >= MinRun {
			runs = append(runs, Run{Axis: axis, Start: pos(start), Length: end - start, Color: c})
		}
		start = end
	}
	return runs
}

// DetectMatches returns the deduplicated cells of every run, sorted by
// row then column. Cells on a horizontal and a vertical run appear once.
func DetectMatches(g *Grid) []Pos {
	runs := FindRuns(g)
	if len(runs) == 0 {
		return nil
	}

	seen := make(map[Pos]bool)
	var out []Pos
	for _, r := range runs {
		for _, p := range r.Cells() {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
