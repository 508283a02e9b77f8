// Package memory implements a pair-matching card game on a 4x4 board.
package memory

import (
	"math/rand"

	"github.com/dkrasnov/puzzlebox/internal/core"
	"github.com/dkrasnov/puzzlebox/internal/registry"
)

// BoardSize is the board dimension; 16 cells hold 8 symbol pairs.
const BoardSize = 4

// matchPoints and missPenalty shape the score: finding a pair pays,
// wrong guesses chip away at it.
const (
	matchPoints = 20
	missPenalty = 1
)

// hideDelayTicks is how long a failed pair stays revealed.
const hideDelayTicks = 20

// symbols are the card faces; each appears exactly twice.
var symbols = []rune{'♠', '♥', '♦', '♣', '★', '☀', '☾', '♫'}

// Cell is a board coordinate.
type Cell struct {
	X, Y int
}

// Game implements the memory pair-matching game.
type Game struct {
	rng  *rand.Rand
	tick uint64

	cards   [BoardSize][BoardSize]rune
	faceUp  [BoardSize][BoardSize]bool
	matched [BoardSize][BoardSize]bool

	cursor   Cell
	first    *Cell // first card of the current guess
	hideAt   uint64
	hidePair [2]Cell
	hiding   bool

	score    int
	pairs    int // matched pairs
	attempts int // completed two-card guesses

	screenW int
	screenH int

	gameOver      bool
	paused        bool
	tooSmall      bool
	moveProcessed bool
}

// New creates a new memory game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("memory", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "memory"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Memory Match"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.faceUp = [BoardSize][BoardSize]bool{}
	g.matched = [BoardSize][BoardSize]bool{}
	g.cursor = Cell{}
	g.first = nil
	g.hiding = false
	g.score = 0
	g.pairs = 0
	g.attempts = 0
	g.gameOver = false
	g.paused = false
	g.moveProcessed = false

	g.dealCards()
	g.checkScreenSize()
}

// dealCards shuffles the eight pairs across the board.
func (g *Game) dealCards() {
	deck := make([]rune, 0, BoardSize*BoardSize)
	for _, s := range symbols {
		deck = append(deck, s, s)
	}

	g.rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	for y := range BoardSize {
		for x := range BoardSize {
			g.cards[y][x] = deck[y*BoardSize+x]
		}
	}
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW := 25
	minH := 13
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

	// Flip a failed pair back down once the reveal delay expires
	if g.hiding && g.tick >= g.hideAt {
		for _, c := range g.hidePair {
			g.faceUp[c.Y][c.X] = false
		}
		g.hiding = false
	}

	switch {
	case in.Has(core.ActionUp):
		g.cursor.Y = core.Max(g.cursor.Y-1, 0)
	case in.Has(core.ActionDown):
		g.cursor.Y = core.Min(g.cursor.Y+1, BoardSize-1)
	case in.Has(core.ActionLeft):
		g.cursor.X = core.Max(g.cursor.X-1, 0)
	case in.Has(core.ActionRight):
		g.cursor.X = core.Min(g.cursor.X+1, BoardSize-1)
	case in.Has(core.ActionConfirm) && !g.moveProcessed:
		g.flipCard()
		g.moveProcessed = true
	}

	return core.StepResult{State: g.State()}
}

// flipCard turns the card under the cursor and resolves the guess when
// it is the second card.
func (g *Game) flipCard() {
	c := g.cursor

	// Already matched or already showing: nothing to do
	if g.matched[c.Y][c.X] || g.faceUp[c.Y][c.X] {
		return
	}

	// A failed pair still on display flips down before a new guess
	if g.hiding {
		for _, h := range g.hidePair {
			g.faceUp[h.Y][h.X] = false
		}
		g.hiding = false
	}

	g.faceUp[c.Y][c.X] = true

	if g.first == nil {
		first := c
		g.first = &first
		return
	}

	first := *g.first
	g.first = nil
	g.attempts++

	if g.cards[first.Y][first.X] == g.cards[c.Y][c.X] {
		g.matched[first.Y][first.X] = true
		g.matched[c.Y][c.X] = true
		g.pairs++
		g.score += matchPoints

		if g.pairs == len(symbols) {
			g.gameOver = true
		}
		return
	}

	// Miss: keep both on display for a moment
	g.score = core.Max(g.score-missPenalty, 0)
	g.hidePair = [2]Cell{first, c}
	g.hideAt = g.tick + hideDelayTicks
	g.hiding = true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}
