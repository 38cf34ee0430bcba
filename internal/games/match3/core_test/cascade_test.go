package core_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

func TestResolveNoMatchesIsNoop(t *testing.T) {
	g := mustGrid(t, &scriptSource{}, cascadeBoard...)
	before := g.Clone()

	called := false
	res, err := core.Resolver{}.Resolve(g, core.DefaultPalette(), func(core.Step) { called = true })

	require.NoError(t, err)
	assert.Empty(t, res.Steps)
	assert.Zero(t, res.Removed)
	assert.False(t, called)
	assert.True(t, g.Equal(before))
}

func TestResolveGravityAndSpawn(t *testing.T) {
	src := &scriptSource{vals: []int{3, 5, 2}} // Y C B
	g := mustGrid(t, src,
		"GBYP",
		"RYPB",
		"RPBY",
		"RBYP",
	)

	var steps []core.Step
	res, err := core.Resolver{}.Resolve(g, core.DefaultPalette(), func(s core.Step) {
		steps = append(steps, s)
	})
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, res.Steps, steps)

	step := steps[0]
	assert.Equal(t, 0, step.Index)
	assert.Equal(t, []core.TokenRef{
		{ID: 5, Color: core.ColorRed, At: core.P(1, 0)},
		{ID: 9, Color: core.ColorRed, At: core.P(2, 0)},
		{ID: 13, Color: core.ColorRed, At: core.P(3, 0)},
	}, step.Removed)

	assert.Equal(t, []core.Move{
		{ID: 1, Color: core.ColorGreen, From: core.P(0, 0), To: core.P(3, 0)},
	}, step.Moved)

	assert.Equal(t, []core.Spawn{
		{ID: 17, Color: core.ColorYellow, From: core.P(-3, 0), At: core.P(0, 0)},
		{ID: 18, Color: core.ColorCyan, From: core.P(-2, 0), At: core.P(1, 0)},
		{ID: 19, Color: core.ColorBlue, From: core.P(-1, 0), At: core.P(2, 0)},
	}, step.Spawned)

	assert.Equal(t, "YBYP\nCYPB\nBPBY\nGBYP", g.String())

	moved, _ := g.TokenAt(3, 0)
	require.NotNil(t, moved)
	assert.Equal(t, uint64(1), moved.ID)
	assert.Equal(t, core.P(3, 0), moved.Pos())
}

func TestResolveRunsCascades(t *testing.T) {
	src := &scriptSource{vals: cascadeScript}
	g := mustGrid(t, src, cascadeBoard...)
	require.NoError(t, g.Swap(core.P(0, 2), core.P(1, 2)))

	var counts []int
	res, err := core.Resolver{}.Resolve(g, core.DefaultPalette(), func(s core.Step) {
		counts = append(counts, len(s.Removed))
	})

	require.NoError(t, err)
	assert.Equal(t, []int{3, 3, 4}, counts)
	assert.Equal(t, 10, res.Removed)
	for i, s := range res.Steps {
		assert.Equal(t, i, s.Index)
	}
	assert.Empty(t, core.DetectMatches(g))
	assert.True(t, g.Full())
}

func TestResolveAlwaysSettles(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	palette := core.Palette{core.ColorRed, core.ColorGreen, core.ColorBlue, core.ColorYellow}

	for trial := 0; trial < 50; trial++ {
		g := core.NewGrid(8, rng)
		g.Fill(palette)

		_, err := core.Resolver{}.Resolve(g, palette, nil)
		require.NoError(t, err)
		require.True(t, g.Full(), "holes left after resolve")
		require.Empty(t, core.DetectMatches(g), "matches left after resolve:\n%s", g)
	}
}

func TestResolveCascadeLimit(t *testing.T) {
	g := core.NewGrid(4, rand.New(rand.NewSource(1)))
	mono := core.Palette{core.ColorRed}
	g.Fill(mono)

	steps := 0
	res, err := core.Resolver{MaxSteps: 5}.Resolve(g, mono, func(core.Step) { steps++ })

	require.ErrorIs(t, err, core.ErrCascadeLimit)
	assert.Equal(t, 5, steps)
	assert.Len(t, res.Steps, 5)
	assert.True(t, g.Full(), "grid stays full when the bound trips")
}
