package storage

import (
	"database/sql"
	"fmt"

	"github.com/SeamusWaldron/gocube_viewer"
)

// MoveRecord represents a played move in the database.
type MoveRecord struct {
	MoveID    int64
	SolveID   string
	MoveIndex int
	TsMs      int64 // milliseconds since the solve started
	Face      string
	Turn      int
	Notation  string
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// Create records one played move and returns its ID.
func (r *MoveRepository) Create(solveID string, moveIndex int, tsMs int64, move gocube.Move) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO moves (solve_id, move_index, ts_ms, face, turn, notation)
		VALUES (?, ?, ?, ?, ?, ?)
	`, solveID, moveIndex, tsMs, move.Face.String(), int(move.Turn), move.Notation())

	if err != nil {
		return 0, fmt.Errorf("failed to create move: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get move ID: %w", err)
	}

	return id, nil
}

// CreateBatch records a sequence of moves in a single transaction, spaced
// interval milliseconds apart.
func (r *MoveRepository) CreateBatch(solveID string, moves []gocube.Move, startIndex int, intervalMs int64) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		for i, move := range moves {
			index := startIndex + i
			_, err := tx.Exec(`
				INSERT INTO moves (solve_id, move_index, ts_ms, face, turn, notation)
				VALUES (?, ?, ?, ?, ?, ?)
			`, solveID, index, int64(index)*intervalMs, move.Face.String(), int(move.Turn), move.Notation())
			if err != nil {
				return fmt.Errorf("failed to create move %d: %w", index, err)
			}
		}
		return nil
	})
}

// GetBySolve retrieves all moves for a solve in order.
func (r *MoveRepository) GetBySolve(solveID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, solve_id, move_index, ts_ms, face, turn, notation
		FROM moves
		WHERE solve_id = ?
		ORDER BY move_index
	`, solveID)

	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		err := rows.Scan(&m.MoveID, &m.SolveID, &m.MoveIndex, &m.TsMs, &m.Face, &m.Turn, &m.Notation)
		if err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}

	return moves, rows.Err()
}

// GetNextIndex returns the next move index for a solve.
func (r *MoveRepository) GetNextIndex(solveID string) (int, error) {
	var maxIndex int
	err := r.db.QueryRow(`
		SELECT COALESCE(MAX(move_index), -1) FROM moves WHERE solve_id = ?
	`, solveID).Scan(&maxIndex)
	if err != nil {
		return 0, fmt.Errorf("failed to get max move index: %w", err)
	}
	return maxIndex + 1, nil
}

// ToMoves converts records back to moves by re-parsing their notation.
func ToMoves(records []MoveRecord) ([]gocube.Move, error) {
	moves := make([]gocube.Move, len(records))
	for i, r := range records {
		m, err := gocube.ParseMove(r.Notation)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", r.MoveIndex, err)
		}
		moves[i] = m
	}
	return moves, nil
}
