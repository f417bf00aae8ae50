// Package store persists computed puzzle answers in SQLite, so re-runs
// can show what a solver produced last time and when.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// Answer is one cached puzzle result.
type Answer struct {
	Year      int
	Day       int
	Part      int
	Answer    string
	RunID     string
	CreatedAt time.Time
}

// AnswerStore caches answers keyed by (year, day, part). Re-recording
// the same key overwrites the previous row.
type AnswerStore struct {
	mu     sync.RWMutex
	db     *sql.DB
	dbPath string
	logger *zap.Logger
}

// NewAnswerStore opens (creating if needed) the answer database at
// path. Pass ":memory:" for an ephemeral store.
func NewAnswerStore(path string, logger *zap.Logger) (*AnswerStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open answer database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		logger.Debug("failed to set sqlite busy_timeout", zap.Error(err))
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		logger.Debug("failed to set sqlite journal_mode=WAL", zap.Error(err))
	}

	s := &AnswerStore{db: db, dbPath: path, logger: logger}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Debug("answer store opened", zap.String("path", path))
	return s, nil
}

func (s *AnswerStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS answers (
		year       INTEGER NOT NULL,
		day        INTEGER NOT NULL,
		part       INTEGER NOT NULL,
		answer     TEXT NOT NULL,
		run_id     TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(year, day, part)
	);`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// Record stores the answer for one puzzle part, replacing any previous
// answer for the same part. It returns the run id the row was tagged
// with.
func (s *AnswerStore) Record(year, day, part int, answer string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runID := uuid.NewString()
	_, err := s.db.Exec(`
		INSERT INTO answers (year, day, part, answer, run_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(year, day, part)
		DO UPDATE SET answer = excluded.answer,
		              run_id = excluded.run_id,
		              created_at = excluded.created_at`,
		year, day, part, answer, runID, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("failed to record answer: %w", err)
	}

	s.logger.Debug("answer recorded",
		zap.Int("year", year),
		zap.Int("day", day),
		zap.Int("part", part),
		zap.String("run_id", runID))
	return runID, nil
}

// Get returns the cached answer for one puzzle part, or nil if none
// has been recorded.
func (s *AnswerStore) Get(year, day, part int) (*Answer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT year, day, part, answer, run_id, created_at
		FROM answers WHERE year = ? AND day = ? AND part = ?`,
		year, day, part)

	var a Answer
	err := row.Scan(&a.Year, &a.Day, &a.Part, &a.Answer, &a.RunID, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load answer: %w", err)
	}
	return &a, nil
}

// List returns every cached answer ordered by year, day, part.
func (s *AnswerStore) List() ([]Answer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT year, day, part, answer, run_id, created_at
		FROM answers ORDER BY year, day, part`)
	if err != nil {
		return nil, fmt.Errorf("failed to list answers: %w", err)
	}
	defer rows.Close()

	var out []Answer
	for rows.Next() {
		var a Answer
		if err := rows.Scan(&a.Year, &a.Day, &a.Part, &a.Answer, &a.RunID, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan answer row: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Stats returns the number of cached answers per year (keyed by the
// year as a string) plus the overall count under "total".
func (s *AnswerStore) Stats() (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`SELECT year, COUNT(*) FROM answers GROUP BY year`)
	if err != nil {
		return nil, fmt.Errorf("failed to load answer stats: %w", err)
	}
	defer rows.Close()

	stats := map[string]int{"total": 0}
	for rows.Next() {
		var year, count int
		if err := rows.Scan(&year, &count); err != nil {
			return nil, fmt.Errorf("failed to scan stats row: %w", err)
		}
		stats[strconv.Itoa(year)] = count
		stats["total"] += count
	}
	return stats, rows.Err()
}

// Close releases the database handle.
func (s *AnswerStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}
