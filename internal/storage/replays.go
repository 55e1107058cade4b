package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ReplayEntry indexes a replay file written to disk.
type ReplayEntry struct {
	ID        int64
	ReplayID  string
	GameID    string
	Path      string
	Seed      int64
	Ticks     int
	Score     int
	Checksum  uint64
	CreatedAt time.Time
}

// SaveReplay adds a replay to the index.
// Returns the ID of the inserted record.
func (s *Store) SaveReplay(e ReplayEntry) (int64, error) {
	// uint64 does not fit an SQLite INTEGER, store it as hex text
	res, err := s.db.Exec(
		`INSERT INTO replays (replay_id, game_id, path, seed, ticks, score, checksum)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ReplayID, e.GameID, e.Path, e.Seed, e.Ticks, e.Score,
		strconv.FormatUint(e.Checksum, 16),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save replay: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// ReplayByID looks up a replay by its replay ID.
// Returns nil if no such replay is indexed.
func (s *Store) ReplayByID(replayID string) (*ReplayEntry, error) {
	row := s.db.QueryRow(
		`SELECT id, replay_id, game_id, path, seed, ticks, score, checksum, created_at
		 FROM replays
		 WHERE replay_id = ?`,
		replayID,
	)

	e, err := scanReplay(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replay: %w", err)
	}
	return e, nil
}

// RecentReplays retrieves the most recently recorded replays.
func (s *Store) RecentReplays(limit int) ([]ReplayEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, replay_id, game_id, path, seed, ticks, score, checksum, created_at
		 FROM replays
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var entries []ReplayEntry
	for rows.Next() {
		e, err := scanReplay(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, *e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReplay(r rowScanner) (*ReplayEntry, error) {
	var e ReplayEntry
	var checksum string
	var createdAt any

	if err := r.Scan(&e.ID, &e.ReplayID, &e.GameID, &e.Path, &e.Seed,
		&e.Ticks, &e.Score, &checksum, &createdAt); err != nil {
		return nil, err
	}

	sum, err := strconv.ParseUint(checksum, 16, 64)
	if err != nil {
		return nil, fmt.Errorf("bad checksum %q: %w", checksum, err)
	}
	e.Checksum = sum
	e.CreatedAt = parseTime(createdAt)

	return &e, nil
}
