package memory

import (
	"fmt"

	"github.com/dkrasnov/puzzlebox/internal/core"
)

const (
	cellWidth  = 5
	cellHeight = 2
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		msg := "Window too small"
		dst.DrawText((g.screenW-len(msg))/2, g.screenH/2, msg)
		return
	}

	boardW := BoardSize*cellWidth + 1
	boardH := BoardSize*cellHeight + 1
	hudHeight := 3

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)

	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	} else if g.gameOver {
		scoreStr := fmt.Sprintf("Score: %d in %d guesses", g.score, g.attempts)
		g.drawOverlay(dst, centerX, centerY, "ALL PAIRS FOUND!", scoreStr, "Press R to restart")
	}
}

// renderHUD draws the score line.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "Memory Match"
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	scoreStr := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(boardX, 1, scoreStr)

	pairStr := fmt.Sprintf("Pairs: %d/%d", g.pairs, len(symbols))
	dst.DrawText(boardX+boardW-len(pairStr), 1, pairStr)

	guessStr := fmt.Sprintf("Guesses: %d", g.attempts)
	dst.DrawText(boardX, 2, guessStr)
}

// renderBoard draws the card grid.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := range BoardSize {
		for x := range BoardSize {
			cellX := boardX + x*cellWidth
			cellY := boardY + y*cellHeight

			var face rune
			var color core.Color
			switch {
			case g.matched[y][x]:
				face = g.cards[y][x]
				color = core.ColorGreen
			case g.faceUp[y][x]:
				face = g.cards[y][x]
				color = core.ColorBrightYellow
			default:
				face = '?'
				color = core.ColorGray
			}

			// Cursor brackets around the active cell
			if g.cursor.X == x && g.cursor.Y == y {
				dst.DrawTextColor(cellX, cellY, "[", core.ColorBrightCyan)
				dst.DrawTextColor(cellX+4, cellY, "]", core.ColorBrightCyan)
			}

			dst.SetCell(cellX+2, cellY, face, color)
		}
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrow keys/WASD: Move | Enter/Space: Flip | R: Restart | Q: Quit"
}
