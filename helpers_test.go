package gocube

import (
	"context"
	"errors"
	"testing"
)

// solvedScan is scan data for a solved cube, in scan order.
var solvedScan = [6]string{
	"wwwwwwwww", // U
	"ggggggggg", // F
	"rrrrrrrrr", // R
	"bbbbbbbbb", // B
	"ooooooooo", // L
	"yyyyyyyyy", // D
}

// coloredStore returns a store painted with scan.
func coloredStore(t *testing.T, scan [6]string) *Store {
	t.Helper()
	s := NewStore()
	for i, colors := range scan {
		if err := s.ApplyFaceColors(Face(i), colors); err != nil {
			t.Fatalf("ApplyFaceColors(%d, %q): %v", i, colors, err)
		}
	}
	return s
}

func scanOf(c *Cube) [6]string {
	var out [6]string
	for _, f := range Faces {
		out[f] = c.Face(f)
	}
	return out
}

// fakeSource serves faces from a fixed scan.
type fakeSource struct {
	scan   [6]string
	failAt int // face index that fails, -1 for none
	calls  []int
}

var errFakeFetch = errors.New("connection refused")

func (f *fakeSource) FetchFace(ctx context.Context, index int) (FaceRecord, error) {
	f.calls = append(f.calls, index)
	if index == f.failAt {
		return FaceRecord{}, errFakeFetch
	}
	return FaceRecord{Face: index, Colors: f.scan[index]}, nil
}
