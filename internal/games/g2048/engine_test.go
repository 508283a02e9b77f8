package g2048

import (
	"math/rand"
	"testing"
)

// fixedRand is a deterministic RandomSource: Intn always lands on the
// same slot and Float64 always returns the same coin.
type fixedRand struct {
	cell  int
	value float64
}

func (r fixedRand) Intn(n int) int   { return r.cell % n }
func (r fixedRand) Float64() float64 { return r.value }

// fakeStore records the load/save traffic of the persistence collaborator.
type fakeStore struct {
	best      int
	loadCalls int
	saves     []int
}

func (s *fakeStore) LoadBestScore() (int, error) {
	s.loadCalls++
	return s.best, nil
}

func (s *fakeStore) SaveBestScore(score int) error {
	s.best = score
	s.saves = append(s.saves, score)
	return nil
}

// spawnTwos always spawns a 2 into the first empty cell (row-major).
var spawnTwos = fixedRand{cell: 0, value: 0.99}

func TestStartNewGame(t *testing.T) {
	e := NewEngine(nil, rand.New(rand.NewSource(7)))
	e.StartNewGame()

	grid := e.Grid()
	count := 0
	for y := range GridSize {
		for x := range GridSize {
			v := grid[y][x]
			if v == 0 {
				continue
			}
			count++
			if v != 2 && v != 4 {
				t.Errorf("starting tile at (%d,%d) = %d, want 2 or 4", x, y, v)
			}
		}
	}

	if count != 2 {
		t.Errorf("starting tile count = %d, want 2", count)
	}
	if e.Score() != 0 {
		t.Errorf("Score = %d, want 0", e.Score())
	}
	if e.MoveCount() != 0 {
		t.Errorf("MoveCount = %d, want 0", e.MoveCount())
	}
	if e.CanUndo() {
		t.Error("fresh game should have no undo snapshot")
	}
	if e.HasWon() || e.IsGameOver() {
		t.Error("fresh game should be in the playing state")
	}
}

func TestStartNewGameDeterministic(t *testing.T) {
	e1 := NewEngine(nil, rand.New(rand.NewSource(12345)))
	e1.StartNewGame()

	e2 := NewEngine(nil, rand.New(rand.NewSource(12345)))
	e2.StartNewGame()

	if e1.Grid() != e2.Grid() {
		t.Errorf("same seed should produce same starting grid:\n%v\nvs\n%v", e1.Grid(), e2.Grid())
	}
}

func TestMoveMergesAndSpawns(t *testing.T) {
	e := NewEngine(nil, spawnTwos)
	e.grid = Grid{
		{2, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	if !e.Move(DirLeft) {
		t.Fatal("Move(left) should report a change")
	}

	grid := e.Grid()
	if grid[0][0] != 4 {
		t.Errorf("cell (0,0) = %d, want 4", grid[0][0])
	}
	// spawnTwos drops a 2 into the first empty cell, right of the merge
	if grid[0][1] != 2 {
		t.Errorf("spawned cell (1,0) = %d, want 2", grid[0][1])
	}
	if e.Score() != 4 {
		t.Errorf("Score = %d, want 4", e.Score())
	}
	if e.MoveCount() != 1 {
		t.Errorf("MoveCount = %d, want 1", e.MoveCount())
	}
	if !e.CanUndo() {
		t.Error("successful move should arm the undo slot")
	}
	// two tiles merged into one, one tile spawned
	if got := CountTiles(grid); got != 2 {
		t.Errorf("tile count = %d, want 2", got)
	}
}

func TestMoveNoChange(t *testing.T) {
	e := NewEngine(nil, spawnTwos)
	e.grid = Grid{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	if e.Move(DirLeft) {
		t.Error("Move on a left-packed grid should report no change")
	}
	if e.Score() != 0 || e.MoveCount() != 0 {
		t.Error("ineffective move must not touch score or move count")
	}
	if e.CanUndo() {
		t.Error("ineffective move must not arm the undo slot")
	}
	if got := CountTiles(e.Grid()); got != 2 {
		t.Errorf("ineffective move must not spawn, tile count = %d", got)
	}
}

func TestFailedMoveKeepsPriorUndoSlot(t *testing.T) {
	e := NewEngine(nil, spawnTwos)
	e.grid = Grid{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	if !e.Move(DirLeft) {
		t.Fatal("first move should change the grid")
	}
	// grid is now [4,2,0,0] in row 0; left again is a no-op
	if e.Move(DirLeft) {
		t.Fatal("second move should be a no-op")
	}

	if !e.CanUndo() {
		t.Error("failed move must not discard the committed undo slot")
	}

	e.Undo()
	want := Grid{{2, 2, 0, 0}}
	if e.Grid() != want {
		t.Errorf("undo after failed move restored\n%v\nwant\n%v", e.Grid(), want)
	}
}

func TestWinDetection(t *testing.T) {
	e := NewEngine(nil, spawnTwos)
	e.grid = Grid{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	if !e.Move(DirLeft) {
		t.Fatal("Move(left) should report a change")
	}

	if e.Grid()[0][0] != 2048 {
		t.Errorf("cell (0,0) = %d, want 2048", e.Grid()[0][0])
	}
	if e.Score() != 2048 {
		t.Errorf("Score = %d, want 2048", e.Score())
	}
	if !e.HasWon() {
		t.Error("reaching 2048 should set the win flag")
	}
	if e.IsGameOver() {
		t.Error("winning does not end the session")
	}
}

func TestWinFlagSurvivesUndo(t *testing.T) {
	e := NewEngine(nil, spawnTwos)
	e.grid = Grid{
		{1024, 1024, 0, 0},
	}

	e.Move(DirLeft)
	if !e.HasWon() {
		t.Fatal("expected win flag set")
	}

	e.Undo()
	if !e.HasWon() {
		t.Error("win flag is one-way and must survive undo")
	}

	e.StartNewGame()
	if e.HasWon() {
		t.Error("StartNewGame must clear the win flag")
	}
}

func TestMoveOnDeadGrid(t *testing.T) {
	// Alternating values with no equal orthogonal neighbors
	dead := Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}

	for _, dir := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		e := NewEngine(nil, spawnTwos)
		e.grid = dead

		if e.Move(dir) {
			t.Errorf("Move(%v) on a dead grid should return false", dir)
		}
		if e.Grid() != dead {
			t.Errorf("Move(%v) must leave a dead grid unchanged", dir)
		}
		if !e.IsGameOver() {
			t.Errorf("Move(%v) on a dead grid should detect game over", dir)
		}
	}
}

func TestMoveIntoGameOver(t *testing.T) {
	// One legal move left; after it and the spawned tile the grid is dead.
	e := NewEngine(nil, spawnTwos)
	e.grid = Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{2, 2, 8, 4},
	}

	if !e.Move(DirLeft) {
		t.Fatal("the last legal move should succeed")
	}
	if !e.IsGameOver() {
		t.Error("grid with no empty cell and no pairs should be game over")
	}

	// Further moves are no-ops
	if e.Move(DirUp) {
		t.Error("Move after game over must be a no-op")
	}

	// Undo exits game over back into a playable state
	e.Undo()
	if e.IsGameOver() {
		t.Error("Undo must clear the game-over flag")
	}
	if e.Grid()[3] != ([4]int{2, 2, 8, 4}) {
		t.Errorf("Undo restored row 3 = %v", e.Grid()[3])
	}
}

func TestMergeRightPacking(t *testing.T) {
	e := NewEngine(nil, spawnTwos)
	e.grid = Grid{
		{2, 2, 2, 2},
	}

	if !e.Move(DirRight) {
		t.Fatal("Move(right) should report a change")
	}

	row := e.Grid()[0]
	if row[2] != 4 || row[3] != 4 {
		t.Errorf("row 0 = %v, want merged pairs packed right as [_,_,4,4]", row)
	}
	if e.Score() != 8 {
		t.Errorf("Score = %d, want 8", e.Score())
	}
}

func TestUndoRoundTrip(t *testing.T) {
	e := NewEngine(nil, spawnTwos)
	e.grid = Grid{
		{2, 0, 0, 2},
		{0, 4, 0, 0},
	}
	wantGrid := e.grid

	if !e.Move(DirLeft) {
		t.Fatal("Move should succeed")
	}

	e.Undo()

	if e.Grid() != wantGrid {
		t.Errorf("Undo restored\n%v\nwant\n%v", e.Grid(), wantGrid)
	}
	if e.Score() != 0 {
		t.Errorf("Undo score = %d, want 0", e.Score())
	}
	if e.MoveCount() != 0 {
		t.Errorf("Undo moveCount = %d, want 0", e.MoveCount())
	}
	if e.IsGameOver() {
		t.Error("state after undo is playable")
	}
	if e.CanUndo() {
		t.Error("undo slot must clear after use")
	}
}

func TestUndoTwiceIsIdempotent(t *testing.T) {
	e := NewEngine(nil, spawnTwos)
	e.grid = Grid{
		{2, 2, 0, 0},
	}

	e.Move(DirLeft)
	e.Undo()
	after := e.Grid()
	score, moves := e.Score(), e.MoveCount()

	e.Undo() // second undo with no move in between

	if e.Grid() != after || e.Score() != score || e.MoveCount() != moves {
		t.Error("second consecutive Undo must be a no-op")
	}
}

func TestUndoOnFreshGameIsNoop(t *testing.T) {
	e := NewEngine(nil, rand.New(rand.NewSource(3)))
	e.StartNewGame()
	before := e.Grid()

	e.Undo()

	if e.Grid() != before {
		t.Error("Undo with no prior move must not change anything")
	}
}

func TestUndoSlotOverwrittenByNextMove(t *testing.T) {
	e := NewEngine(nil, spawnTwos)
	e.grid = Grid{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
	}

	e.Move(DirLeft) // row0 [4,...], row1 [8,...]
	mid := e.Grid()

	e.Move(DirDown)
	e.Undo()

	// Only one level of history: undo lands on the state after the
	// first move, not the original grid.
	if e.Grid() != mid {
		t.Errorf("Undo restored\n%v\nwant post-first-move grid\n%v", e.Grid(), mid)
	}
	if e.MoveCount() != 1 {
		t.Errorf("MoveCount after undo = %d, want 1", e.MoveCount())
	}
}

func TestBestScoreLoadedOnce(t *testing.T) {
	store := &fakeStore{best: 100}
	e := NewEngine(store, spawnTwos)

	if e.BestScore() != 100 {
		t.Errorf("BestScore = %d, want 100 from store", e.BestScore())
	}
	if store.loadCalls != 1 {
		t.Errorf("loadCalls = %d, want 1", store.loadCalls)
	}

	e.StartNewGame()
	e.StartNewGame()
	if store.loadCalls != 1 {
		t.Error("best score is read once at construction, not per session")
	}
}

func TestBestScorePersistsOnNewBest(t *testing.T) {
	store := &fakeStore{}
	e := NewEngine(store, spawnTwos)
	e.grid = Grid{
		{2, 2, 0, 0},
	}

	e.Move(DirLeft)

	if e.BestScore() != 4 {
		t.Errorf("BestScore = %d, want 4", e.BestScore())
	}
	if len(store.saves) != 1 || store.saves[0] != 4 {
		t.Errorf("saves = %v, want [4]", store.saves)
	}
}

func TestBestScoreNotLoweredBySmallScores(t *testing.T) {
	store := &fakeStore{best: 1000}
	e := NewEngine(store, spawnTwos)
	e.grid = Grid{
		{2, 2, 0, 0},
	}

	e.Move(DirLeft)

	if e.BestScore() != 1000 {
		t.Errorf("BestScore = %d, want 1000", e.BestScore())
	}
	if len(store.saves) != 0 {
		t.Errorf("no save expected below the stored best, got %v", store.saves)
	}
}

func TestBestScoreSurvivesNewGame(t *testing.T) {
	store := &fakeStore{}
	e := NewEngine(store, spawnTwos)
	e.grid = Grid{
		{2, 2, 0, 0},
	}
	e.Move(DirLeft)

	e.StartNewGame()

	if e.Score() != 0 {
		t.Errorf("Score after new game = %d, want 0", e.Score())
	}
	if e.BestScore() != 4 {
		t.Errorf("BestScore after new game = %d, want 4", e.BestScore())
	}
}

func TestAllTilesArePowersOfTwo(t *testing.T) {
	e := NewEngine(nil, rand.New(rand.NewSource(99)))
	e.StartNewGame()

	dirs := []Direction{DirLeft, DirUp, DirRight, DirDown}
	for i := 0; i < 200 && !e.IsGameOver(); i++ {
		e.Move(dirs[i%len(dirs)])

		grid := e.Grid()
		for y := range GridSize {
			for x := range GridSize {
				v := grid[y][x]
				if v == 0 {
					continue
				}
				if v < 2 || v&(v-1) != 0 {
					t.Fatalf("cell (%d,%d) = %d is not a power of two >= 2", x, y, v)
				}
			}
		}
	}
}

func TestMoveCountOnlyCountsChanges(t *testing.T) {
	e := NewEngine(nil, spawnTwos)
	e.grid = Grid{
		{4, 2, 0, 0},
	}

	e.Move(DirLeft) // no-op
	if e.MoveCount() != 0 {
		t.Errorf("MoveCount = %d, want 0 after no-op", e.MoveCount())
	}

	e.Move(DirRight)
	if e.MoveCount() != 1 {
		t.Errorf("MoveCount = %d, want 1 after real move", e.MoveCount())
	}
}
