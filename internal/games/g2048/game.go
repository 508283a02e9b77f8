package g2048

import (
	"math/rand"

	"github.com/dkrasnov/puzzlebox/internal/core"
	"github.com/dkrasnov/puzzlebox/internal/registry"
)

// Game adapts the grid engine to the platform game interface.
type Game struct {
	engine *Engine
	tick   uint64

	screenW int
	screenH int

	paused        bool
	tooSmall      bool
	moveProcessed bool // one engine operation per tick
}

// Package-level persistence cell, injected by the host before the game
// is created (registry factories take no arguments).
var bestScoreStore BestScoreStore

// SetBestScoreStore wires the persisted best-score cell for new games.
func SetBestScoreStore(s BestScoreStore) {
	bestScoreStore = s
}

// New creates a new 2048 game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("2048", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "2048"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.moveProcessed = false

	rng := rand.New(rand.NewSource(cfg.Seed))
	g.engine = NewEngine(bestScoreStore, rng)
	g.engine.StartNewGame()

	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	// Minimum size: board (25 wide, 9 tall) + HUD (3 lines)
	minW := 27
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

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Restart after game over is handled by the platform via Reset;
	// mid-session restart goes straight to the engine.
	if in.Has(core.ActionRestart) && !g.engine.IsGameOver() {
		g.engine.StartNewGame()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionUndo) && !g.moveProcessed {
		g.engine.Undo()
		g.moveProcessed = true
		return core.StepResult{State: g.State()}
	}

	var dir Direction
	moved := false

	switch {
	case in.Has(core.ActionUp):
		dir = DirUp
		moved = true
	case in.Has(core.ActionDown):
		dir = DirDown
		moved = true
	case in.Has(core.ActionLeft):
		dir = DirLeft
		moved = true
	case in.Has(core.ActionRight):
		dir = DirRight
		moved = true
	}

	if moved && !g.moveProcessed {
		g.engine.Move(dir)
		g.moveProcessed = true
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
// A won session stays playable; only a dead grid ends the game.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.engine.IsGameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Engine exposes the underlying grid engine, mainly for tests.
func (g *Game) Engine() *Engine {
	return g.engine
}
