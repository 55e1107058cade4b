package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// ScoreEntry is one finished run.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	Wave      int
	CreatedAt time.Time
}

// GameStats aggregates every run of one mode.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	BestWave   int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

const (
	scoreColumns = `id, game_id, score, wave, created_at`
	statsColumns = `game_id, COUNT(*), COALESCE(MAX(score), 0), COALESCE(MAX(wave), 0),
		COALESCE(AVG(score), 0), COALESCE(SUM(score), 0), MAX(created_at)`
)

// SaveScore records a finished run and returns its row ID.
func (s *Store) SaveScore(gameID string, score, wave int) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO scores (game_id, score, wave) VALUES (?, ?, ?)`,
		gameID, score, wave,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores returns the best runs of a mode, highest first.
// Equal scores keep insertion order. A non-positive limit means 10.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryScores(
		`SELECT `+scoreColumns+` FROM scores WHERE game_id = ? ORDER BY score DESC, id ASC LIMIT ?`,
		gameID, limit,
	)
}

// AllScores returns every run of a mode, highest first.
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	return s.queryScores(
		`SELECT `+scoreColumns+` FROM scores WHERE game_id = ? ORDER BY score DESC, id ASC`,
		gameID,
	)
}

func (s *Store) queryScores(query string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var (
			e         ScoreEntry
			createdAt any
		)
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &e.Wave, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan score: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// HighScore returns the best score of a mode, or 0 if it was never played.
func (s *Store) HighScore(gameID string) (int, error) {
	var best int
	err := s.db.QueryRow(
		`SELECT COALESCE(MAX(score), 0) FROM scores WHERE game_id = ?`, gameID,
	).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return best, nil
}

// Rank returns the 1-based leaderboard position a score holds in a mode.
// Ties share the better position.
func (s *Store) Rank(gameID string, score int) (int, error) {
	var better int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM scores WHERE game_id = ? AND score > ?`, gameID, score,
	).Scan(&better)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot rank score: %w", err)
	}
	return better + 1, nil
}

// ClearScores deletes every run of a mode.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec(`DELETE FROM scores WHERE game_id = ?`, gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GetGameStats aggregates one mode. A mode with no runs yields zero stats.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	row := s.db.QueryRow(`SELECT `+statsColumns+` FROM scores WHERE game_id = ?`, gameID)
	stats, err := scanStats(row)
	if err != nil {
		return nil, err
	}
	// COUNT over no rows still yields one row with a NULL game_id
	stats.GameID = gameID
	return stats, nil
}

// GetAllGamesStats aggregates every mode that has been played, keyed by mode ID.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(`SELECT ` + statsColumns + ` FROM scores GROUP BY game_id`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	all := make(map[string]*GameStats)
	for rows.Next() {
		stats, err := scanStats(rows)
		if err != nil {
			return nil, err
		}
		all[stats.GameID] = stats
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return all, nil
}

func scanStats(r rowScanner) (*GameStats, error) {
	var (
		gs         GameStats
		gameID     sql.NullString
		lastPlayed any
	)
	if err := r.Scan(&gameID, &gs.GamesCount, &gs.HighScore, &gs.BestWave,
		&gs.AvgScore, &gs.TotalScore, &lastPlayed); err != nil {
		return nil, fmt.Errorf("storage: cannot scan stats: %w", err)
	}
	gs.GameID = gameID.String
	gs.LastPlayed = parseTime(lastPlayed)
	return &gs, nil
}
