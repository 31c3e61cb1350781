package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/gocube_viewer"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func solvedCube(t *testing.T) *gocube.Cube {
	t.Helper()
	s := gocube.NewStore()
	for i, colors := range []string{"wwwwwwwww", "ggggggggg", "rrrrrrrrr", "bbbbbbbbb", "ooooooooo", "yyyyyyyyy"} {
		require.NoError(t, s.ApplyFaceColors(gocube.Face(i), colors))
	}
	return s.Cube()
}

func TestOpenAppliesMigrations(t *testing.T) {
	db := openTestDB(t)

	version, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, version)

	// Re-applying is a no-op.
	require.NoError(t, db.MigrateUp())
	version, err = db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestOpenReusesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	db, err := Open(path)
	require.NoError(t, err)
	id, err := NewScanRepository(db).Create("test", solvedCube(t))
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()
	assert.Equal(t, path, db.Path())

	got, err := NewScanRepository(db).Get(id)
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestScanRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewScanRepository(db)

	s := gocube.NewStore()
	scan := []string{"wwwwwwwww", "ggggggggg", "rrrrrrrrr", "bbbbbbbbb", "ooooooooo", "yyyyyyyyy"}
	for i, colors := range scan {
		require.NoError(t, s.ApplyFaceColors(gocube.Face(i), colors))
	}
	s.ApplyMove(gocube.R)

	id, err := repo.Create("http://localhost:8080", s.Cube())
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	got, err := repo.Get(id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "http://localhost:8080", got.Source)
	assert.Equal(t, "wwgwwgwwg", got.Faces[gocube.FaceU])
	assert.Equal(t, "second_layer", got.Phase)
	assert.False(t, got.ScannedAt.IsZero())

	c, err := got.Cube()
	require.NoError(t, err)
	assert.Equal(t, s.Cube().Facelets, c.Facelets)

	missing, err := repo.Get("no-such-scan")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestScanListAndLast(t *testing.T) {
	db := openTestDB(t)
	repo := NewScanRepository(db)

	last, err := repo.GetLast()
	require.NoError(t, err)
	assert.Nil(t, last)

	var ids []string
	for i := 0; i < 3; i++ {
		id, err := repo.Create("test", solvedCube(t))
		require.NoError(t, err)
		ids = append(ids, id)
	}

	scans, err := repo.List(2)
	require.NoError(t, err)
	require.Len(t, scans, 2)
	assert.Equal(t, ids[2], scans[0].ScanID)

	last, err = repo.GetLast()
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, ids[2], last.ScanID)
	assert.Equal(t, "solved", last.Phase)
}

func TestSolveLifecycle(t *testing.T) {
	db := openTestDB(t)
	scans := NewScanRepository(db)
	solves := NewSolveRepository(db)
	moves := NewMoveRepository(db)

	scanID, err := scans.Create("test", solvedCube(t))
	require.NoError(t, err)

	solveID, err := solves.Create(scanID, "R U R' U'")
	require.NoError(t, err)

	played, err := gocube.ParseMoves("R U R' U'")
	require.NoError(t, err)
	require.NoError(t, moves.CreateBatch(solveID, played, 0, 1000))
	require.NoError(t, solves.End(solveID, gocube.PhaseCross))

	got, err := solves.Get(solveID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.ScanID)
	assert.Equal(t, scanID, *got.ScanID)
	assert.Equal(t, "R U R' U'", got.Solution)
	require.NotNil(t, got.EndedAt)
	require.NotNil(t, got.DurationMs)
	require.NotNil(t, got.FinalPhase)
	assert.Equal(t, "cross", *got.FinalPhase)

	count, err := solves.GetMoveCount(solveID)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	records, err := moves.GetBySolve(solveID)
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "R'", records[2].Notation)
	assert.Equal(t, int64(2000), records[2].TsMs)

	back, err := ToMoves(records)
	require.NoError(t, err)
	assert.Equal(t, played, back)

	next, err := moves.GetNextIndex(solveID)
	require.NoError(t, err)
	assert.Equal(t, 4, next)
}

func TestSolveWithoutScan(t *testing.T) {
	db := openTestDB(t)
	solves := NewSolveRepository(db)

	id, err := solves.Create("", "F2")
	require.NoError(t, err)

	got, err := solves.Get(id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.ScanID)
	assert.Nil(t, got.EndedAt)

	list, err := solves.List(10)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, solves.Delete(id))
	got, err = solves.Get(id)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeleteScanCascades(t *testing.T) {
	db := openTestDB(t)
	scans := NewScanRepository(db)
	solves := NewSolveRepository(db)
	moves := NewMoveRepository(db)

	scanID, err := scans.Create("test", solvedCube(t))
	require.NoError(t, err)
	solveID, err := solves.Create(scanID, "R")
	require.NoError(t, err)
	_, err = moves.Create(solveID, 0, 0, gocube.R)
	require.NoError(t, err)

	require.NoError(t, scans.Delete(scanID))

	got, err := solves.Get(solveID)
	require.NoError(t, err)
	assert.Nil(t, got)
	count, err := solves.GetMoveCount(solveID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMovesRejectUnknownSolve(t *testing.T) {
	db := openTestDB(t)
	_, err := NewMoveRepository(db).Create("missing", 0, 0, gocube.U)
	assert.Error(t, err)
}

func TestHistorySession(t *testing.T) {
	db := openTestDB(t)
	h := NewHistory(db, "http://localhost:8080")

	assert.Error(t, h.RecordMove(gocube.R), "no solve open yet")

	require.NoError(t, h.RecordScan(solvedCube(t)))
	require.NotEmpty(t, h.ScanID())
	require.NoError(t, h.RecordSolveStart("R U"))
	require.NoError(t, h.RecordMove(gocube.R))
	require.NoError(t, h.RecordMove(gocube.U))
	require.NoError(t, h.RecordSolveEnd(gocube.PhaseScrambled))
	assert.Error(t, h.RecordSolveEnd(gocube.PhaseSolved), "solve already closed")

	solves := NewSolveRepository(db)
	last, err := solves.GetLast()
	require.NoError(t, err)
	require.NotNil(t, last)
	require.NotNil(t, last.ScanID)
	assert.Equal(t, h.ScanID(), *last.ScanID)
	require.NotNil(t, last.FinalPhase)
	assert.Equal(t, "scrambled", *last.FinalPhase)

	records, err := NewMoveRepository(db).GetBySolve(last.SolveID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "U", records[1].Notation)
}
