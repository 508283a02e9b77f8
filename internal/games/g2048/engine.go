// Package g2048 implements the sliding-tile merge puzzle.
//
// The Engine type owns the 4x4 grid, score, move counter, win/game-over
// flags and a one-level undo snapshot. It is single-threaded by design:
// every operation runs to completion and the caller must confine it to
// one goroutine. Persistence and randomness are injected collaborators
// so deterministic sources can be substituted in tests.
package g2048

import (
	"math/rand"
	"time"
)

const (
	// WinTile is the tile value that marks a won session.
	WinTile = 2048

	// startTiles is the number of tiles placed by StartNewGame.
	startTiles = 2

	// spawnFourProb is the probability a spawned tile is a 4 rather
	// than a 2.
	spawnFourProb = 0.1
)

// BestScoreStore is the persistence collaborator for the best score.
// The engine reads it once at construction and writes whenever the
// current score exceeds the stored best. The storage key and format are
// owned by the implementation; the engine sees an opaque integer cell.
type BestScoreStore interface {
	LoadBestScore() (int, error)
	SaveBestScore(score int) error
}

// RandomSource supplies uniform cell selection and the biased coin flip
// for new tile values. *math/rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
	Float64() float64
}

// undoSnapshot is the single retained pre-move state.
// The whole-grid value copy is cheap for a fixed 4x4 array.
type undoSnapshot struct {
	grid      Grid
	score     int
	moveCount int
}

// Engine is the grid engine for one puzzle session.
type Engine struct {
	grid      Grid
	score     int
	bestScore int
	moveCount int
	hasWon    bool
	gameOver  bool
	undo      *undoSnapshot

	store BestScoreStore
	rng   RandomSource
}

// NewEngine creates an engine bound to its collaborators and loads the
// persisted best score. A nil store keeps the best score in memory only;
// a nil rng falls back to a time-seeded source. The session itself is
// not started until StartNewGame is called.
func NewEngine(store BestScoreStore, rng RandomSource) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e := &Engine{store: store, rng: rng}
	if store != nil {
		if best, err := store.LoadBestScore(); err == nil {
			e.bestScore = best
		}
	}
	return e
}

// StartNewGame resets the session: empty grid, zero score and move
// count, flags and undo slot cleared, and exactly two tiles placed by
// the spawn rule into distinct empty cells.
func (e *Engine) StartNewGame() {
	e.grid = Grid{}
	e.score = 0
	e.moveCount = 0
	e.hasWon = false
	e.gameOver = false
	e.undo = nil

	for range startTiles {
		e.spawnTile()
	}
}

// Move applies a move in the given direction. It returns true when the
// grid changed, false for no-op moves (illegal direction of travel, or
// the session is already over).
//
// On a grid change, in order: the pre-move state becomes the undo slot
// (overwriting any prior one), the move counter increments, one tile
// spawns into a uniformly chosen empty cell, the win flag latches if a
// tile reached 2048, game over is detected, and a new best score is
// persisted.
func (e *Engine) Move(dir Direction) bool {
	if e.gameOver {
		return false
	}

	// A dead grid reached by external construction still reads as over.
	if !CanMove(e.grid) {
		e.gameOver = true
		return false
	}

	prev := undoSnapshot{grid: e.grid, score: e.score, moveCount: e.moveCount}

	next, gained, changed := Slide(e.grid, dir)
	if !changed {
		return false
	}

	e.undo = &prev
	e.grid = next
	e.score += gained
	e.moveCount++

	e.spawnTile()

	if !e.hasWon && MaxTile(e.grid) >= WinTile {
		e.hasWon = true
	}

	if !CanMove(e.grid) {
		e.gameOver = true
	}

	if e.score > e.bestScore {
		e.bestScore = e.score
		if e.store != nil {
			// Best-effort write; gameplay never fails on storage.
			_ = e.store.SaveBestScore(e.bestScore)
		}
	}

	return true
}

// Undo restores the state captured before the most recent successful
// move. It is a no-op when no snapshot exists; a second consecutive call
// changes nothing. The game-over flag clears because the restored state
// was playable by construction. The win flag is one-way and survives.
func (e *Engine) Undo() {
	if e.undo == nil {
		return
	}

	e.grid = e.undo.grid
	e.score = e.undo.score
	e.moveCount = e.undo.moveCount
	e.gameOver = false
	e.undo = nil
}

// spawnTile places a 2 (90%) or 4 (10%) into a uniformly chosen empty
// cell. Does nothing on a full grid.
func (e *Engine) spawnTile() {
	empty := EmptyCells(e.grid)
	if len(empty) == 0 {
		return
	}

	cell := empty[e.rng.Intn(len(empty))]

	value := 2
	if e.rng.Float64() < spawnFourProb {
		value = 4
	}

	e.grid[cell.Y][cell.X] = value
}

// Grid returns a copy of the current grid.
func (e *Engine) Grid() Grid {
	return e.grid
}

// Score returns the current session score.
func (e *Engine) Score() int {
	return e.score
}

// BestScore returns the best score across sessions.
func (e *Engine) BestScore() int {
	return e.bestScore
}

// MoveCount returns the number of grid-changing moves this session.
func (e *Engine) MoveCount() int {
	return e.moveCount
}

// CanUndo reports whether an undo snapshot is available.
func (e *Engine) CanUndo() bool {
	return e.undo != nil
}

// HasWon reports whether a 2048 tile was reached this session.
func (e *Engine) HasWon() bool {
	return e.hasWon
}

// IsGameOver reports whether no move is legal.
func (e *Engine) IsGameOver() bool {
	return e.gameOver
}
