// Package storage provides SQLite-based persistence for finished levels.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/block-knock/internal/level"
)

// Store manages the SQLite database connection for result history.
type Store struct {
	db *sql.DB
}

// ResultEntry is one finished level.
type ResultEntry struct {
	ID        int64
	RunID     string // Groups the levels played in one session
	Player    string
	Level     int
	Throws    int
	Rank      level.Rank
	Outcome   string // level_complete, game_complete or game_over
	Won       bool
	CreatedAt time.Time
}

// BestEntry is the best cleared result for a level.
type BestEntry struct {
	Level  int
	Rank   level.Rank
	Throws int
	Clears int // How many times the level was cleared
}

// Stats contains aggregated statistics over all stored results.
type Stats struct {
	Runs       int
	Levels     int // Finished levels, won or lost
	Wins       int
	Golds      int
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS level_results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			level INTEGER NOT NULL,
			throws INTEGER NOT NULL,
			rank TEXT NOT NULL,
			outcome TEXT NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_level_results_level ON level_results(level, won);
		CREATE INDEX IF NOT EXISTS idx_level_results_run ON level_results(run_id);
		CREATE INDEX IF NOT EXISTS idx_level_results_player ON level_results(player);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished level.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(e ResultEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO level_results (run_id, player, level, throws, rank, outcome, won)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.RunID, e.Player, e.Level, e.Throws, e.Rank.String(), e.Outcome, e.Won,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentResults retrieves the most recent results, newest first.
// An empty player matches everyone.
func (s *Store) RecentResults(player string, limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, player, level, throws, rank, outcome, won, created_at
		 FROM level_results
		 WHERE ? = '' OR player = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		player, player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		var e ResultEntry
		var rank string
		var createdAt any
		if err := rows.Scan(&e.ID, &e.RunID, &e.Player, &e.Level, &e.Throws, &rank, &e.Outcome, &e.Won, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Rank, _ = level.ParseRank(rank)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// RunResults retrieves the results of one run in the order they were played.
func (s *Store) RunResults(runID string) ([]ResultEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, run_id, player, level, throws, rank, outcome, won, created_at
		 FROM level_results
		 WHERE run_id = ?
		 ORDER BY id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		var e ResultEntry
		var rank string
		var createdAt any
		if err := rows.Scan(&e.ID, &e.RunID, &e.Player, &e.Level, &e.Throws, &rank, &e.Outcome, &e.Won, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Rank, _ = level.ParseRank(rank)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestResults returns the best cleared result per level, ordered by level.
// Best means the best rank, then the fewest throws. An empty player matches everyone.
func (s *Store) BestResults(player string) ([]BestEntry, error) {
	rows, err := s.db.Query(
		`SELECT level, rank, throws
		 FROM level_results
		 WHERE won = 1 AND (? = '' OR player = ?)
		 ORDER BY level, throws`,
		player, player,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best results: %w", err)
	}
	defer rows.Close()

	var best []BestEntry
	for rows.Next() {
		var lvl, throws int
		var rankName string
		if err := rows.Scan(&lvl, &rankName, &throws); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rank, _ := level.ParseRank(rankName)

		if n := len(best); n > 0 && best[n-1].Level == lvl {
			cur := &best[n-1]
			cur.Clears++
			if rank.Better(cur.Rank) {
				cur.Rank = rank
				cur.Throws = throws
			}
			continue
		}
		best = append(best, BestEntry{Level: lvl, Rank: rank, Throws: throws, Clears: 1})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return best, nil
}

// GetStats retrieves aggregated statistics over all results.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(DISTINCT run_id), COUNT(*),
		        COALESCE(SUM(won), 0),
		        COALESCE(SUM(CASE WHEN won = 1 AND rank = 'Gold' THEN 1 ELSE 0 END), 0),
		        MAX(created_at)
		 FROM level_results`,
	).Scan(&stats.Runs, &stats.Levels, &stats.Wins, &stats.Golds, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// ClearResults deletes all stored results.
func (s *Store) ClearResults() error {
	_, err := s.db.Exec("DELETE FROM level_results")
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
