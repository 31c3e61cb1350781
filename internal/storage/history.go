package storage

import (
	"fmt"
	"time"

	"github.com/SeamusWaldron/gocube_viewer"
)

// History records one viewer session: each completed scan, and each solve
// played on it with its moves.
type History struct {
	scans  *ScanRepository
	solves *SolveRepository
	moves  *MoveRepository
	source string

	scanID    string
	solveID   string
	moveIndex int
	started   time.Time
}

// NewHistory creates a recorder. source names where scan data came from.
func NewHistory(db *DB, source string) *History {
	return &History{
		scans:  NewScanRepository(db),
		solves: NewSolveRepository(db),
		moves:  NewMoveRepository(db),
		source: source,
	}
}

// RecordScan stores a completed scan. Later solves are linked to it.
func (h *History) RecordScan(c *gocube.Cube) error {
	id, err := h.scans.Create(h.source, c)
	if err != nil {
		return err
	}
	h.scanID = id
	return nil
}

// RecordSolveStart opens a solve record for the last scan.
func (h *History) RecordSolveStart(solution string) error {
	id, err := h.solves.Create(h.scanID, solution)
	if err != nil {
		return err
	}
	h.solveID = id
	h.moveIndex = 0
	h.started = time.Now()
	return nil
}

// RecordMove appends a played move to the open solve.
func (h *History) RecordMove(m gocube.Move) error {
	if h.solveID == "" {
		return fmt.Errorf("no solve in progress")
	}
	_, err := h.moves.Create(h.solveID, h.moveIndex, time.Since(h.started).Milliseconds(), m)
	if err != nil {
		return err
	}
	h.moveIndex++
	return nil
}

// RecordSolveEnd closes the open solve.
func (h *History) RecordSolveEnd(final gocube.Phase) error {
	if h.solveID == "" {
		return fmt.Errorf("no solve in progress")
	}
	err := h.solves.End(h.solveID, final)
	h.solveID = ""
	return err
}

// ScanID returns the ID of the last recorded scan.
func (h *History) ScanID() string {
	return h.scanID
}
