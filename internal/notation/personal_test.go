package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/gocube_viewer"
)

func TestDescribe(t *testing.T) {
	tests := map[gocube.Move]string{
		gocube.R:      "R up",
		gocube.RPrime: "R down",
		gocube.L:      "L down",
		gocube.U:      "T rotate left",
		gocube.UPrime: "T rotate right",
		gocube.D2:     "B rotate right x 2",
		gocube.FPrime: "F rotate anti-clockwise",
		gocube.B:      "Back rotate clockwise",
	}
	for m, want := range tests {
		assert.Equal(t, want, Describe(m), m.Notation())
	}

	// Every move has its own phrase.
	seen := make(map[string]bool)
	for _, m := range gocube.AllMoves {
		d := Describe(m)
		assert.False(t, seen[d], d)
		seen[d] = true
	}
}

func TestDescribeInverse(t *testing.T) {
	// A quarter turn and its inverse describe opposite directions.
	assert.Equal(t, "R down", Describe(gocube.R.Inverse()))
	assert.Equal(t, "T rotate right", Describe(gocube.U.Inverse()))
}

func TestFormatDescribed(t *testing.T) {
	moves, err := gocube.ParseMoves("R U R' U'")
	require.NoError(t, err)
	assert.Equal(t, "R up, T rotate left, R down, T rotate right", FormatDescribed(moves))
	assert.Equal(t, "", FormatDescribed(nil))
}
