package storage

// BestScoreCell binds the best-score row of a single game to the
// load/save contract game engines expect. The engine treats the value
// as an opaque integer cell; key and format live here.
type BestScoreCell struct {
	store  *Store
	gameID string
}

// BestScoreCell returns the persistence cell for the given game.
func (s *Store) BestScoreCell(gameID string) *BestScoreCell {
	return &BestScoreCell{store: s, gameID: gameID}
}

// LoadBestScore reads the persisted best score, 0 if none exists.
func (c *BestScoreCell) LoadBestScore() (int, error) {
	return c.store.BestScore(c.gameID)
}

// SaveBestScore writes a new best score.
func (c *BestScoreCell) SaveBestScore(score int) error {
	return c.store.SetBestScore(c.gameID, score)
}
