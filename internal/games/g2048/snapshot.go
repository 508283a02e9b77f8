package g2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWon         GameStateType = "won"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Score     int
	Best      int
	MoveCount int
	Grid      Grid
	MaxTile   int
	CanUndo   bool
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.engine.IsGameOver():
		state = StateGameOver
	case g.engine.HasWon():
		state = StateWon
	}

	return Snapshot{
		Tick:      g.tick,
		Score:     g.engine.Score(),
		Best:      g.engine.BestScore(),
		MoveCount: g.engine.MoveCount(),
		Grid:      g.engine.Grid(),
		MaxTile:   MaxTile(g.engine.Grid()),
		CanUndo:   g.engine.CanUndo(),
		State:     state,
	}
}
