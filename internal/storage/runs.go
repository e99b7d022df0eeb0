package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/typing-arcade/internal/registry"
)

// Run results as stored in the result column.
const (
	ResultVictory = "victory"
	ResultDefeat  = "defeat"
)

// Run is one finished typing session.
type Run struct {
	ID        int64
	RunID     string
	GameID    string
	Result    string
	Level     int
	Enemy     string
	Words     int
	Mistakes  int
	Score     int
	Duration  time.Duration
	CreatedAt time.Time
}

const runColumns = `id, run_id, game_id, result, level, enemy, words, mistakes, score, duration_ms, created_at`

// SaveRun records a finished run and also adds its score to the high score
// table. A missing RunID is generated. Returns the stored run.
func (s *Store) SaveRun(r Run) (Run, error) {
	if r.RunID == "" {
		r.RunID = uuid.NewString()
	}
	if r.Result != ResultVictory && r.Result != ResultDefeat {
		return r, fmt.Errorf("storage: invalid run result %q", r.Result)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return r, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO typing_runs
		 (run_id, game_id, result, level, enemy, words, mistakes, score, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.GameID, r.Result, r.Level, r.Enemy,
		r.Words, r.Mistakes, r.Score, r.Duration.Milliseconds(),
	)
	if err != nil {
		return r, fmt.Errorf("storage: cannot save run: %w", err)
	}
	if _, err := tx.Exec("INSERT INTO scores (game_id, score) VALUES (?, ?)", r.GameID, r.Score); err != nil {
		return r, fmt.Errorf("storage: cannot save score: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return r, fmt.Errorf("storage: cannot commit run: %w", err)
	}

	r.ID, err = res.LastInsertId()
	if err != nil {
		return r, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return r, nil
}

// SaveReport stores a run reported by a game.
func (s *Store) SaveReport(gameID string, rep registry.RunReport) (Run, error) {
	return s.SaveRun(Run{
		GameID:   gameID,
		Result:   rep.Result,
		Level:    rep.Level,
		Enemy:    rep.Enemy,
		Words:    rep.Words,
		Mistakes: rep.Mistakes,
		Score:    rep.Score,
		Duration: rep.Duration,
	})
}

// RecentRuns returns the latest runs for a game, newest first.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM typing_runs
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// BestRun returns the run that reached the highest level, breaking ties by
// score. Returns nil when the game has no runs.
func (s *Store) BestRun(gameID string) (*Run, error) {
	row := s.db.QueryRow(
		`SELECT `+runColumns+`
		 FROM typing_runs
		 WHERE game_id = ?
		 ORDER BY result = ? DESC, level DESC, score DESC, id ASC
		 LIMIT 1`,
		gameID, ResultVictory,
	)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// RunByID retrieves a run by its run ID. Returns nil if not found.
func (s *Store) RunByID(runID string) (*Run, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM typing_runs WHERE run_id = ?`, runID)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var (
		r          Run
		durationMS int64
		createdAt  any
	)
	err := row.Scan(
		&r.ID, &r.RunID, &r.GameID, &r.Result, &r.Level, &r.Enemy,
		&r.Words, &r.Mistakes, &r.Score, &durationMS, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return r, err
	}
	if err != nil {
		return r, fmt.Errorf("storage: cannot scan run: %w", err)
	}
	r.Duration = time.Duration(durationMS) * time.Millisecond
	r.CreatedAt = parseTimestamp(createdAt)
	return r, nil
}
