package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

// scriptSource returns the scripted values in order, then repeats the
// last one. Values are palette indices.
type scriptSource struct {
	vals []int
	n    int
}

func (s *scriptSource) Intn(n int) int {
	if len(s.vals) == 0 {
		return 0
	}
	i := s.n
	if i >= len(s.vals) {
		i = len(s.vals) - 1
	}
	s.n++
	return s.vals[i] % n
}

func mustGrid(t *testing.T, src core.ColorSource, rows ...string) *core.Grid {
	t.Helper()
	g, err := core.ParseGrid(rows, src)
	require.NoError(t, err)
	return g
}

// cascadeBoard has no matches. Swapping (0,2) with (1,2) makes a single
// red run across the top row.
var cascadeBoard = []string{
	"RRBYP",
	"CPRGB",
	"PCGBC",
	"CPYCG",
	"YGCPY",
}

// cascadeScript feeds the refills after the cascadeBoard swap: a green
// 3-run, then a yellow 4-run with (0,3), then a quiet row.
var cascadeScript = []int{
	1, 1, 1, // G G G
	3, 3, 3, // Y Y Y
	4, 2, 5, 0, // P B C R
}
