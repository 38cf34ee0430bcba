package match3

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-match3/internal/core"
	m3 "github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

const (
	cellWidth = 3 // " ● "
	hudHeight = 3
	minWidth  = 36

	tokenGlyph    = '●'
	selectedGlyph = '◉'
	clearGlyph    = '✦'
)

// tokenColors maps engine colors to terminal colors.
var tokenColors = map[m3.Color]core.Color{
	m3.ColorRed:    core.ColorRed,
	m3.ColorGreen:  core.ColorGreen,
	m3.ColorBlue:   core.ColorBlue,
	m3.ColorYellow: core.ColorYellow,
	m3.ColorPurple: core.ColorMagenta,
	m3.ColorCyan:   core.ColorCyan,
	m3.ColorOrange: core.ColorOrange,
	m3.ColorWhite:  core.ColorWhite,
}

// Resize adapts the layout to a new terminal size without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// boardRect is the framed board area, border included.
func (g *Game) boardRect() core.Rect {
	n := g.cfg.Board.Size
	w := n*cellWidth + 2
	h := n + 2
	return core.NewRect((g.screenW-w)/2, hudHeight, w, h)
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	r := g.boardRect()
	g.tooSmall = g.screenW < max(r.W, minWidth) || g.screenH < r.Bottom()+1
}

// cellAt converts a screen position to a board cell.
func (g *Game) cellAt(x, y int) (m3.Pos, bool) {
	inner := g.boardRect().Inset(1)
	if !inner.Contains(x, y) {
		return m3.Pos{}, false
	}
	return m3.Pos{Row: y - inner.Y, Col: (x - inner.X) / cellWidth}, true
}

// cellOrigin returns the screen position of a cell's left edge.
func cellOrigin(inner core.Rect, row, col int) (int, int) {
	return inner.X + col*cellWidth, inner.Y + row
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		msg := "Cannot start game"
		if g.err != nil {
			msg = g.err.Error()
		}
		dst.DrawTextCenteredColored(g.screenH/2, msg, core.ColorBrightRed)
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	board := g.boardRect()
	g.renderHUD(dst, board)
	dst.DrawBoxColored(board, core.ColorGray)
	g.renderTokens(dst, board.Inset(1))
	g.renderCursor(dst, board.Inset(1))
	g.renderOverlays(dst, board)

	dst.DrawTextCenteredColored(g.screenH-1, g.Controls(), core.ColorGray)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	r := g.boardRect()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", max(r.W, minWidth), r.Bottom()+1))
}

// renderHUD draws the title, score, match counter and status line.
func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	dst.DrawTextCenteredColored(0, g.Title(), core.ColorBrightCyan)

	score := fmt.Sprintf("Score: %d", g.shownScore)
	dst.DrawTextColored(board.X, 1, score, core.ColorBrightYellow)

	matches := fmt.Sprintf("Matches: %d/%d", g.shownMatches, g.session.MatchLimit())
	dst.DrawText(board.Right()-len(matches), 1, matches)

	switch {
	case g.err != nil:
		dst.DrawTextCenteredColored(2, "engine error: "+g.err.Error(), core.ColorBrightRed)
	case g.message != "":
		dst.DrawTextCenteredColored(2, g.message, core.ColorWhite)
	}
}

// renderTokens draws every sprite at its (possibly fractional) position.
// Sprites above the board are still falling in and are not drawn.
func (g *Game) renderTokens(dst *core.Screen, inner core.Rect) {
	sel, hasSel := g.session.Selected()
	n := g.session.Size()

	for _, s := range g.anim.sprites {
		row := int(math.Round(s.row))
		col := int(math.Round(s.col))
		if row < 0 || row >= n || col < 0 || col >= n {
			continue
		}

		color := tokenColors[s.color]
		glyph := tokenGlyph
		switch {
		case g.over:
			color = core.ColorRed
		case s.clearing:
			if !g.anim.clearingVisible() {
				continue
			}
			glyph = clearGlyph
			color = color.Bright()
		case hasSel && !s.moving && sel == (m3.Pos{Row: row, Col: col}):
			glyph = selectedGlyph
			color = color.Bright()
		}

		x, y := cellOrigin(inner, row, col)
		dst.SetColored(x+1, y, glyph, color)
	}
}

func (g *Game) renderCursor(dst *core.Screen, inner core.Rect) {
	if g.over {
		return
	}
	x, y := cellOrigin(inner, g.cursor.Row, g.cursor.Col)
	dst.SetColored(x, y, '[', core.ColorBrightWhite)
	dst.SetColored(x+cellWidth-1, y, ']', core.ColorBrightWhite)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	if g.paused {
		drawOverlay(dst, board, "PAUSED", "Press P to resume")
		return
	}
	if g.over {
		drawOverlay(dst, board, "GAME OVER", fmt.Sprintf("Final score: %d", g.finalScore), "Press R to play again")
	}
}

// drawOverlay draws a boxed block of lines centered over area.
func drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	box := area.CenterIn(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, core.ColorBrightWhite)
	for i, line := range lines {
		row := box.Inset(1)
		row.Y += i
		x := row.CenterIn(len([]rune(line)), 1).X
		dst.DrawTextColored(x, row.Y, line, core.ColorBrightWhite)
	}
}
