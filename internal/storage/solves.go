package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/gocube_viewer"
)

// Solve represents one solve playback in the database.
type Solve struct {
	SolveID    string
	ScanID     *string
	StartedAt  time.Time
	EndedAt    *time.Time
	DurationMs *int64
	Solution   string
	FinalPhase *string
}

// SolveRepository provides CRUD operations for solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create records the start of a solve and returns its ID. scanID may be
// empty when the cube was not scanned through the history.
func (r *SolveRepository) Create(scanID, solution string) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	var scanPtr *string
	if scanID != "" {
		scanPtr = &scanID
	}

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, scan_id, started_at, solution)
		VALUES (?, ?, ?, ?)
	`, id, scanPtr, startedAt.Format(time.RFC3339), solution)

	if err != nil {
		return "", fmt.Errorf("failed to create solve: %w", err)
	}

	return id, nil
}

// End marks a solve as complete with the phase the cube finished in.
func (r *SolveRepository) End(solveID string, finalPhase gocube.Phase) error {
	endedAt := time.Now().UTC()

	// Get start time to calculate duration
	var startedAtStr string
	err := r.db.QueryRow("SELECT started_at FROM solves WHERE solve_id = ?", solveID).Scan(&startedAtStr)
	if err != nil {
		return fmt.Errorf("failed to get solve start time: %w", err)
	}

	startedAt, err := time.Parse(time.RFC3339, startedAtStr)
	if err != nil {
		return fmt.Errorf("failed to parse start time: %w", err)
	}

	durationMs := endedAt.Sub(startedAt).Milliseconds()

	_, err = r.db.Exec(`
		UPDATE solves
		SET ended_at = ?, duration_ms = ?, final_phase = ?
		WHERE solve_id = ?
	`, endedAt.Format(time.RFC3339), durationMs, finalPhase.String(), solveID)

	if err != nil {
		return fmt.Errorf("failed to end solve: %w", err)
	}

	return nil
}

const solveColumns = `solve_id, scan_id, started_at, ended_at, duration_ms, solution, final_phase`

func scanSolve(row rowScanner) (*Solve, error) {
	var s Solve
	var startedAtStr string
	var endedAtStr sql.NullString

	err := row.Scan(
		&s.SolveID, &s.ScanID, &startedAtStr, &endedAtStr,
		&s.DurationMs, &s.Solution, &s.FinalPhase,
	)
	if err != nil {
		return nil, err
	}

	s.StartedAt, _ = time.Parse(time.RFC3339, startedAtStr)
	if endedAtStr.Valid {
		t, _ := time.Parse(time.RFC3339, endedAtStr.String)
		s.EndedAt = &t
	}
	return &s, nil
}

// Get retrieves a solve by ID. It returns nil if there is no such solve.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	s, err := scanSolve(r.db.QueryRow(`SELECT `+solveColumns+` FROM solves WHERE solve_id = ?`, solveID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}
	return s, nil
}

// GetLast retrieves the most recent solve.
func (r *SolveRepository) GetLast() (*Solve, error) {
	s, err := scanSolve(r.db.QueryRow(`
		SELECT ` + solveColumns + ` FROM solves
		ORDER BY started_at DESC, rowid DESC
		LIMIT 1
	`))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last solve: %w", err)
	}
	return s, nil
}

// List retrieves recent solves, newest first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT `+solveColumns+` FROM solves
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		s, err := scanSolve(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}
		solves = append(solves, *s)
	}

	return solves, rows.Err()
}

// Delete deletes a solve and its moves.
func (r *SolveRepository) Delete(solveID string) error {
	_, err := r.db.Exec("DELETE FROM solves WHERE solve_id = ?", solveID)
	if err != nil {
		return fmt.Errorf("failed to delete solve: %w", err)
	}
	return nil
}

// GetMoveCount returns the number of moves played in a solve.
func (r *SolveRepository) GetMoveCount(solveID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM moves WHERE solve_id = ?", solveID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get move count: %w", err)
	}
	return count, nil
}
