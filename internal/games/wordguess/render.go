package wordguess

import (
	"fmt"

	"github.com/dkrasnov/puzzlebox/internal/core"
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		msg := "Window too small"
		dst.DrawText((g.screenW-len(msg))/2, g.screenH/2, msg)
		return
	}

	title := "Word Guess"
	dst.DrawTextCentered(0, title)

	scoreStr := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(2, 1, scoreStr)

	livesStr := fmt.Sprintf("Misses: %d/%d", g.wrong, maxWrong)
	color := core.ColorDefault
	if g.wrong >= maxWrong-1 {
		color = core.ColorBrightRed
	}
	dst.DrawTextColor(g.screenW-len(livesStr)-2, 1, livesStr, color)

	// The word, masked while the round is live
	word := g.maskedWord()
	wordY := g.screenH/2 - 3
	dst.DrawTextCentered(wordY, word)

	g.renderAlphabet(dst, wordY+3)

	if g.gameOver {
		msgY := wordY - 2
		if g.won {
			dst.DrawTextCentered(msgY, "SOLVED! Press R for a new word")
		} else {
			dst.DrawTextCentered(msgY, "OUT OF GUESSES - Press R to retry")
		}
	} else if g.paused {
		dst.DrawTextCentered(wordY-2, "PAUSED")
	}
}

// renderAlphabet draws the A-Z picker with per-letter status colors.
func (g *Game) renderAlphabet(dst *core.Screen, y int) {
	startX := (g.screenW - 2*alphabetCols) / 2

	for i := 0; i < 26; i++ {
		letter := rune('A' + i)
		px := startX + (i%alphabetCols)*2
		py := y + i/alphabetCols

		var color core.Color
		switch {
		case !g.guessed[i]:
			color = core.ColorDefault
		case letterInWord(g.word, letter):
			color = core.ColorGreen
		default:
			color = core.ColorGray
		}

		if i == g.cursor && !g.gameOver {
			color = core.ColorBrightCyan
		}

		dst.SetCell(px, py, letter, color)
	}
}

func letterInWord(word string, letter rune) bool {
	for _, r := range word {
		if r == letter {
			return true
		}
	}
	return false
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrow keys/WASD: Pick letter | Enter/Space: Guess | R: Restart | Q: Quit"
}
