package g2048

import (
	"fmt"
	"strconv"

	"github.com/dkrasnov/puzzlebox/internal/core"
)

const (
	cellWidth  = 6 // width of each cell including left border
	cellHeight = 2 // height of each cell including top border
)

// tileColor picks a display color for a tile value.
func tileColor(v int) core.Color {
	switch {
	case v <= 0:
		return core.ColorDefault
	case v <= 4:
		return core.ColorWhite
	case v <= 16:
		return core.ColorYellow
	case v <= 64:
		return core.ColorOrange
	case v <= 256:
		return core.ColorBrightRed
	case v <= 1024:
		return core.ColorBrightMagenta
	default:
		return core.ColorBrightCyan
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := GridSize*cellWidth + 1
	boardH := GridSize*cellHeight + 1
	hudHeight := 3

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderGrid(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	x := (g.screenW - len(msg)) / 2
	y := g.screenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	dst.DrawText((g.screenW-len(hint))/2, y+1, hint)
}

// renderHUD draws the score line and status hints.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	scoreStr := fmt.Sprintf("Score: %d", g.engine.Score())
	dst.DrawText(boardX, 1, scoreStr)

	bestStr := fmt.Sprintf("Best: %d", g.engine.BestScore())
	bestX := boardX + boardW - len(bestStr)
	if bestX < boardX+len(scoreStr)+2 {
		bestX = boardX + len(scoreStr) + 2
	}
	dst.DrawText(bestX, 1, bestStr)

	movesStr := fmt.Sprintf("Moves: %d", g.engine.MoveCount())
	dst.DrawText(boardX, 2, movesStr)

	if g.engine.HasWon() {
		wonStr := "2048 reached!"
		dst.DrawTextColor(boardX+boardW-len(wonStr), 2, wonStr, core.ColorBrightGreen)
	} else if g.engine.CanUndo() {
		undoStr := "U: undo"
		dst.DrawTextColor(boardX+boardW-len(undoStr), 2, undoStr, core.ColorGray)
	}
}

// renderGrid draws the 4x4 grid with tiles.
func (g *Game) renderGrid(dst *core.Screen, boardX, boardY int) {
	grid := g.engine.Grid()

	// Grid borders
	for y := range GridSize + 1 {
		for x := range GridSize + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == GridSize:
				corner = '┐'
			case y == GridSize && x == 0:
				corner = '└'
			case y == GridSize && x == GridSize:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == GridSize:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == GridSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < GridSize {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < GridSize {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	// Tiles
	for y := range GridSize {
		for x := range GridSize {
			val := grid[y][x]
			if val == 0 {
				continue
			}

			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			valStr := strconv.Itoa(val)
			padLeft := (cellWidth - 1 - len(valStr)) / 2
			if padLeft < 0 {
				padLeft = 0
			}

			dst.DrawTextColor(cellX+padLeft, cellY, valStr, tileColor(val))
		}
	}
}

// renderOverlays draws pause and game-over overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.engine.IsGameOver() {
		maxStr := fmt.Sprintf("Max tile: %d", MaxTile(g.engine.Grid()))
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", maxStr, "U: undo last move", "R: restart")
		return
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

	// Clear area behind overlay
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
	return "Arrow keys/WASD: Move | U: Undo | R: Restart | P: Pause | Q: Quit"
}
