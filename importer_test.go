package gocube

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestImportFaceZeroResets(t *testing.T) {
	s := coloredStore(t, solvedScan)
	s.ApplyMoves(SexyMove)
	im := NewImporter(s)

	if err := im.ImportFace(0, "wwwwwwwww"); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 27; i++ {
		if s.Occupant(i).ID != CubieID(i) {
			t.Fatalf("slot %d holds cubie %d after face 0", i, s.Occupant(i).ID)
		}
	}
	if s.Colored() {
		t.Error("a new scan should not be colored after one face")
	}
	if got := s.Cube().Face(FaceF); got != "?????????" {
		t.Errorf("front after reset = %q, want blank", got)
	}
}

func TestImportFaceOtherIndexKeepsState(t *testing.T) {
	s := NewStore()
	s.ApplyMove(R)
	im := NewImporter(s)
	if err := im.ImportFace(2, "rrrrrrrrr"); err != nil {
		t.Fatal(err)
	}
	if s.SlotOf(0) != 2 {
		t.Error("importing a non-zero face should not reset the store")
	}
}

func TestImportFaceValidation(t *testing.T) {
	s := coloredStore(t, solvedScan)
	im := NewImporter(s)

	if err := im.ImportFace(6, "rrrrrrrrr"); !errors.Is(err, ErrInvalidFace) {
		t.Errorf("index 6 err = %v, want ErrInvalidFace", err)
	}
	if err := im.ImportFace(-1, "rrrrrrrrr"); !errors.Is(err, ErrInvalidFace) {
		t.Errorf("index -1 err = %v, want ErrInvalidFace", err)
	}
	if err := im.ImportFace(0, "rrrrrrrr"); !errors.Is(err, ErrMalformedColorData) {
		t.Errorf("short colors err = %v, want ErrMalformedColorData", err)
	}
	// Bad data on face 0 must not wipe the existing scan.
	if !s.Colored() || !s.Cube().IsSolved() {
		t.Error("rejected import modified the store")
	}
}

func TestImportFaceRejectedDuringSolve(t *testing.T) {
	s := coloredStore(t, solvedScan)
	p := NewPlayer(s, nil)
	im := NewImporter(s)
	im.SetPlayer(p)

	if err := p.Solve("R U"); err != nil {
		t.Fatal(err)
	}
	if err := im.ImportFace(0, "wwwwwwwww"); !errors.Is(err, ErrSolveInProgress) {
		t.Errorf("err = %v, want ErrSolveInProgress", err)
	}
}

func TestImportFaceResetsPresenter(t *testing.T) {
	s := coloredStore(t, solvedScan)
	pr := NewPresenter()
	r := pr.RotateFace(FaceR, s.Layer(FaceR), false, time.Unix(0, 0))
	s.Turn(FaceR, false)
	pr.Settle()
	pr.RotateFace(FaceU, s.Layer(FaceU), false, time.Unix(1, 0))

	im := NewImporter(s)
	im.SetPresenter(pr)
	if err := im.ImportFace(0, "wwwwwwwww"); err != nil {
		t.Fatal(err)
	}
	if !r.Finished() || pr.Busy() {
		t.Error("face 0 should drop in-flight rotations")
	}
	assertMatchesStore(t, pr, s)
}

func TestImportAll(t *testing.T) {
	src := &fakeSource{scan: solvedScan, failAt: -1}
	s := NewStore()
	im := NewImporter(s)

	if err := im.ImportAll(context.Background(), src); err != nil {
		t.Fatalf("ImportAll: %v", err)
	}
	if len(src.calls) != 6 {
		t.Errorf("fetches = %v, want one per face", src.calls)
	}
	for i, index := range src.calls {
		if index != i {
			t.Errorf("fetch %d asked for face %d", i, index)
		}
	}
	if !s.Colored() || !s.Cube().IsSolved() {
		t.Error("store should hold the solved scan")
	}
}

func TestImportAllNetworkError(t *testing.T) {
	src := &fakeSource{scan: solvedScan, failAt: 3}
	s := NewStore()
	im := NewImporter(s)

	err := im.ImportAll(context.Background(), src)
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("err = %v, want ErrNetwork", err)
	}
	if !errors.Is(err, errFakeFetch) {
		t.Errorf("err = %v should wrap the fetch error", err)
	}
	if len(src.calls) != 4 {
		t.Errorf("fetches = %v, want no retry and no fetch past the failure", src.calls)
	}
	if s.Colored() {
		t.Error("a partial scan should not be colored")
	}
	if got := s.Cube().Face(FaceR); got != "rrrrrrrrr" {
		t.Errorf("faces before the failure should stay applied, right = %q", got)
	}
}

type swappedSource struct{ fakeSource }

func (f *swappedSource) FetchFace(ctx context.Context, index int) (FaceRecord, error) {
	rec, err := f.fakeSource.FetchFace(ctx, index)
	rec.Face = (index + 1) % 6
	return rec, err
}

func TestImportAllFaceMismatch(t *testing.T) {
	src := &swappedSource{fakeSource{scan: solvedScan, failAt: -1}}
	err := NewImporter(NewStore()).ImportAll(context.Background(), src)
	if !errors.Is(err, ErrMalformedColorData) {
		t.Errorf("err = %v, want ErrMalformedColorData", err)
	}
}
