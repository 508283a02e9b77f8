// Package wordguess implements a letter-by-letter word guessing game.
// The player picks letters from an on-screen alphabet; too many wrong
// guesses lose the round.
package wordguess

import (
	"math/rand"
	"strings"

	"github.com/dkrasnov/puzzlebox/internal/core"
	"github.com/dkrasnov/puzzlebox/internal/registry"
)

const (
	// maxWrong is the number of wrong guesses before the round is lost.
	maxWrong = 6

	// letterPoints is scored per revealed letter occurrence; solving the
	// word pays winBonus on top.
	letterPoints = 10
	winBonus     = 25

	alphabetCols = 13 // A-Z laid out in two rows of 13
)

// Game implements the word-guessing game.
type Game struct {
	rng  *rand.Rand
	tick uint64

	word    string
	guessed [26]bool
	wrong   int
	cursor  int // index into the A-Z alphabet

	score int
	won   bool

	screenW int
	screenH int

	gameOver      bool
	paused        bool
	tooSmall      bool
	moveProcessed bool
}

// New creates a new word-guessing game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("wordguess", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "wordguess"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Word Guess"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.word = wordList[g.rng.Intn(len(wordList))]
	g.guessed = [26]bool{}
	g.wrong = 0
	g.cursor = 0
	g.score = 0
	g.won = false
	g.gameOver = false
	g.paused = false
	g.moveProcessed = false

	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW := 2*alphabetCols + 3
	minH := 12
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.moveProcessed = false

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionLeft):
		if g.cursor%alphabetCols > 0 {
			g.cursor--
		}
	case in.Has(core.ActionRight):
		if g.cursor%alphabetCols < alphabetCols-1 && g.cursor < 25 {
			g.cursor++
		}
	case in.Has(core.ActionUp):
		if g.cursor >= alphabetCols {
			g.cursor -= alphabetCols
		}
	case in.Has(core.ActionDown):
		if g.cursor+alphabetCols < 26 {
			g.cursor += alphabetCols
		}
	case in.Has(core.ActionConfirm) && !g.moveProcessed:
		g.guessLetter(rune('A' + g.cursor))
		g.moveProcessed = true
	}

	return core.StepResult{State: g.State()}
}

// guessLetter resolves a single letter guess. Repeating an already
// guessed letter is a no-op.
func (g *Game) guessLetter(letter rune) {
	idx := int(letter - 'A')
	if idx < 0 || idx >= 26 || g.guessed[idx] {
		return
	}
	g.guessed[idx] = true

	hits := strings.Count(g.word, string(letter))
	if hits == 0 {
		g.wrong++
		if g.wrong >= maxWrong {
			g.gameOver = true
		}
		return
	}

	g.score += hits * letterPoints

	if g.revealed() == len(g.word) {
		g.won = true
		g.score += winBonus
		g.gameOver = true
	}
}

// revealed counts how many letters of the word are uncovered.
func (g *Game) revealed() int {
	n := 0
	for _, r := range g.word {
		if g.guessed[r-'A'] {
			n++
		}
	}
	return n
}

// maskedWord renders the word with unguessed letters hidden.
func (g *Game) maskedWord() string {
	var sb strings.Builder
	for i, r := range g.word {
		if i > 0 {
			sb.WriteRune(' ')
		}
		if g.guessed[r-'A'] || g.gameOver {
			sb.WriteRune(r)
		} else {
			sb.WriteRune('_')
		}
	}
	return sb.String()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}
