package core

// TokenRef identifies a token and where it was when the event happened.
type TokenRef struct {
	ID    uint64
	Color Color
	At    Pos
}

// Move records a token falling from one cell to another.
type Move struct {
	ID    uint64
	Color Color
	From  Pos
	To    Pos
}

// Spawn records a new token entering the board. From is above the grid
// (negative row) so the token can be shown dropping in.
type Spawn struct {
	ID    uint64
	Color Color
	From  Pos
	At    Pos
}

// Step is one remove/drop/refill pass of a cascade.
// Index 0 is the removal caused directly by the swap.
type Step struct {
	Index   int
	Removed []TokenRef
	Moved   []Move
	Spawned []Spawn
}

// SwapEvent describes an adjacent swap. When Reverted is set the tokens
// went back to their original cells.
type SwapEvent struct {
	A, B     Pos
	TokenA   uint64
	TokenB   uint64
	Reverted bool
}
