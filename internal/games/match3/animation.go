package match3

import (
	m3 "github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

// sprite is the on-screen stand-in for one engine token, found by ID.
type sprite struct {
	id    uint64
	color m3.Color

	row, col         float64 // current drawn position, in cells
	fromRow, fromCol float64
	toRow, toCol     float64
	moving           bool
	clearing         bool
}

type phaseKind int

const (
	phaseSwap phaseKind = iota
	phaseClear
	phaseDrop
)

func (k phaseKind) String() string {
	switch k {
	case phaseSwap:
		return "swap"
	case phaseClear:
		return "clear"
	case phaseDrop:
		return "drop"
	default:
		return "unknown"
	}
}

// spriteMove sends one sprite from one cell to another.
type spriteMove struct {
	id       uint64
	from, to m3.Pos
}

// phase is one stretch of animation built from an engine event batch.
type phase struct {
	kind     phaseKind
	duration int

	moves   []spriteMove
	spawns  []m3.Spawn
	removed []uint64

	// applied to the HUD when the phase finishes
	points      int
	countsMatch bool
}

// animator replays engine events at its own pace. The engine has already
// moved on; the animator only brings the picture up to date.
type animator struct {
	sprites map[uint64]*sprite
	queue   []phase
	current *phase
	ticks   int
}

// reset drops all pending phases and mirrors the given tokens as they are.
func (a *animator) reset(tokens []m3.Token) {
	a.sprites = make(map[uint64]*sprite, len(tokens))
	for _, t := range tokens {
		a.sprites[t.ID] = &sprite{
			id:    t.ID,
			color: t.Color,
			row:   float64(t.Row),
			col:   float64(t.Col),
		}
	}
	a.queue = nil
	a.current = nil
	a.ticks = 0
}

func (a *animator) busy() bool {
	return a.current != nil || len(a.queue) > 0
}

func (a *animator) queueSwap(ev m3.SwapEvent, ticks int) {
	a.queue = append(a.queue, phase{
		kind:     phaseSwap,
		duration: ticks,
		moves: []spriteMove{
			{id: ev.TokenA, from: ev.A, to: ev.B},
			{id: ev.TokenB, from: ev.B, to: ev.A},
		},
	})
}

func (a *animator) queueSwapBack(ev m3.SwapEvent, ticks int) {
	a.queue = append(a.queue, phase{
		kind:     phaseSwap,
		duration: ticks,
		moves: []spriteMove{
			{id: ev.TokenA, from: ev.B, to: ev.A},
			{id: ev.TokenB, from: ev.A, to: ev.B},
		},
	})
}

// queueStep turns one cascade pass into a clear phase and a drop phase.
// The drop lasts longer the further the longest fall is.
func (a *animator) queueStep(st m3.Step, pointsPerToken, clearTicks, dropTicks int) {
	clearPhase := phase{
		kind:        phaseClear,
		duration:    clearTicks,
		points:      len(st.Removed) * pointsPerToken,
		countsMatch: st.Index == 0,
	}
	for _, r := range st.Removed {
		clearPhase.removed = append(clearPhase.removed, r.ID)
	}

	fall := 1
	drop := phase{kind: phaseDrop, spawns: st.Spawned}
	for _, mv := range st.Moved {
		drop.moves = append(drop.moves, spriteMove{id: mv.ID, from: mv.From, to: mv.To})
		fall = max(fall, mv.To.Row-mv.From.Row)
	}
	for _, sp := range st.Spawned {
		drop.moves = append(drop.moves, spriteMove{id: sp.ID, from: sp.From, to: sp.At})
		fall = max(fall, sp.At.Row-sp.From.Row)
	}
	drop.duration = dropTicks * fall

	a.queue = append(a.queue, clearPhase, drop)
}

// advance plays one tick and returns the phases that finished during it.
func (a *animator) advance() []phase {
	if a.current == nil {
		if !a.start() {
			return nil
		}
	}

	a.ticks++
	t := 1.0
	if a.current.duration > 0 {
		t = min(1.0, float64(a.ticks)/float64(a.current.duration))
	}
	eased := easeOutQuad(t)
	for _, mv := range a.current.moves {
		if s := a.sprites[mv.id]; s != nil && s.moving {
			s.row = s.fromRow + (s.toRow-s.fromRow)*eased
			s.col = s.fromCol + (s.toCol-s.fromCol)*eased
		}
	}

	if a.ticks < a.current.duration {
		return nil
	}
	done := *a.current
	a.finish()
	return []phase{done}
}

// start pops the next phase and prepares its sprites.
func (a *animator) start() bool {
	if len(a.queue) == 0 {
		return false
	}
	p := a.queue[0]
	a.queue = a.queue[1:]
	a.current = &p
	a.ticks = 0

	switch p.kind {
	case phaseClear:
		for _, id := range p.removed {
			if s := a.sprites[id]; s != nil {
				s.clearing = true
			}
		}
	case phaseDrop:
		for _, sp := range p.spawns {
			a.sprites[sp.ID] = &sprite{
				id:    sp.ID,
				color: sp.Color,
				row:   float64(sp.From.Row),
				col:   float64(sp.From.Col),
			}
		}
	}

	for _, mv := range p.moves {
		s := a.sprites[mv.id]
		if s == nil {
			continue
		}
		s.fromRow, s.fromCol = float64(mv.from.Row), float64(mv.from.Col)
		s.toRow, s.toCol = float64(mv.to.Row), float64(mv.to.Col)
		s.row, s.col = s.fromRow, s.fromCol
		s.moving = true
	}
	return true
}

// finish snaps sprites to their targets and removes cleared ones.
func (a *animator) finish() {
	p := a.current
	for _, mv := range p.moves {
		if s := a.sprites[mv.id]; s != nil {
			s.row, s.col = s.toRow, s.toCol
			s.moving = false
		}
	}
	for _, id := range p.removed {
		delete(a.sprites, id)
	}
	a.current = nil
	a.ticks = 0
}

// clearingVisible reports whether clearing sprites are lit on this tick.
func (a *animator) clearingVisible() bool {
	return a.ticks%4 < 2
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}
