package core

// Token is one colored unit on the board.
// ID never changes and is never reused within a Grid's lifetime;
// Row and Col follow the token as it moves.
type Token struct {
	ID    uint64
	Color Color
	Row   int
	Col   int
}

// Pos returns the token's current cell.
func (t *Token) Pos() Pos {
	return Pos{Row: t.Row, Col: t.Col}
}

// Ref captures the token's identity, color and cell at this moment.
func (t *Token) Ref() TokenRef {
	return TokenRef{ID: t.ID, Color: t.Color, At: t.Pos()}
}
