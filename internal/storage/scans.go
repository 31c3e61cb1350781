package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/gocube_viewer"
)

// Scan is one completed six-face scan.
type Scan struct {
	ScanID    string
	ScannedAt time.Time
	Source    string    // color source, e.g. the API base URL
	Faces     [6]string // scan codes in face order U F R B L D
	Phase     string
}

// Cube rebuilds the facelet snapshot of the scan.
func (s *Scan) Cube() (*gocube.Cube, error) {
	c := &gocube.Cube{}
	for i, colors := range s.Faces {
		parsed, err := gocube.ParseFaceColors(colors)
		if err != nil {
			return nil, fmt.Errorf("scan %s face %d: %w", s.ScanID, i, err)
		}
		c.Facelets[i] = parsed
	}
	return c, nil
}

// ScanRepository provides CRUD operations for scans.
type ScanRepository struct {
	db *DB
}

// NewScanRepository creates a new scan repository.
func NewScanRepository(db *DB) *ScanRepository {
	return &ScanRepository{db: db}
}

// Create stores a scanned cube and returns its ID.
func (r *ScanRepository) Create(source string, c *gocube.Cube) (string, error) {
	id := uuid.New().String()
	scannedAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO scans (scan_id, scanned_at, source, face_u, face_f, face_r, face_b, face_l, face_d, phase)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, scannedAt.Format(time.RFC3339), source,
		c.Face(gocube.FaceU), c.Face(gocube.FaceF), c.Face(gocube.FaceR),
		c.Face(gocube.FaceB), c.Face(gocube.FaceL), c.Face(gocube.FaceD),
		c.DetectPhase().String())

	if err != nil {
		return "", fmt.Errorf("failed to create scan: %w", err)
	}

	return id, nil
}

const scanColumns = `scan_id, scanned_at, source, face_u, face_f, face_r, face_b, face_l, face_d, phase`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScan(row rowScanner) (*Scan, error) {
	var s Scan
	var scannedAtStr string
	err := row.Scan(
		&s.ScanID, &scannedAtStr, &s.Source,
		&s.Faces[0], &s.Faces[1], &s.Faces[2], &s.Faces[3], &s.Faces[4], &s.Faces[5],
		&s.Phase,
	)
	if err != nil {
		return nil, err
	}
	s.ScannedAt, _ = time.Parse(time.RFC3339, scannedAtStr)
	return &s, nil
}

// Get retrieves a scan by ID. It returns nil if there is no such scan.
func (r *ScanRepository) Get(scanID string) (*Scan, error) {
	s, err := scanScan(r.db.QueryRow(`SELECT `+scanColumns+` FROM scans WHERE scan_id = ?`, scanID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scan: %w", err)
	}
	return s, nil
}

// GetLast retrieves the most recent scan.
func (r *ScanRepository) GetLast() (*Scan, error) {
	s, err := scanScan(r.db.QueryRow(`
		SELECT ` + scanColumns + ` FROM scans
		ORDER BY scanned_at DESC, rowid DESC
		LIMIT 1
	`))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last scan: %w", err)
	}
	return s, nil
}

// List retrieves recent scans, newest first.
func (r *ScanRepository) List(limit int) ([]Scan, error) {
	rows, err := r.db.Query(`
		SELECT `+scanColumns+` FROM scans
		ORDER BY scanned_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	defer rows.Close()

	var scans []Scan
	for rows.Next() {
		s, err := scanScan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		scans = append(scans, *s)
	}
	return scans, rows.Err()
}

// Delete deletes a scan and the solves played on it.
func (r *ScanRepository) Delete(scanID string) error {
	_, err := r.db.Exec("DELETE FROM scans WHERE scan_id = ?", scanID)
	if err != nil {
		return fmt.Errorf("failed to delete scan: %w", err)
	}
	return nil
}
