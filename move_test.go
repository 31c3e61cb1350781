package gocube

import (
	"errors"
	"testing"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		input string
		want  Move
	}{
		{"R", R},
		{"R'", RPrime},
		{"R2", R2},
		{"R2'", R2},
		{"U", U},
		{"F'", FPrime},
		{"B2", B2},
		{"L", L},
		{"D'", DPrime},
	}

	for _, tt := range tests {
		got, err := ParseMove(tt.input)
		if err != nil {
			t.Errorf("ParseMove(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMove(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseMoveRejects(t *testing.T) {
	for _, input := range []string{"X", "r", "R3", "R''", "RR", "", "M", "x2"} {
		if _, err := ParseMove(input); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("ParseMove(%q) err = %v, want ErrInvalidNotation", input, err)
		}
	}
}

func TestParseMoves(t *testing.T) {
	moves, err := ParseMoves("  R U  R' U'\n F2 ")
	if err != nil {
		t.Fatalf("ParseMoves error: %v", err)
	}
	want := []Move{R, U, RPrime, UPrime, F2}
	if len(moves) != len(want) {
		t.Fatalf("got %d moves, want %d", len(moves), len(want))
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("move %d = %v, want %v", i, moves[i], want[i])
		}
	}

	empty, err := ParseMoves("")
	if err != nil || len(empty) != 0 {
		t.Errorf("ParseMoves(\"\") = %v, %v", empty, err)
	}
}

func TestParseMovesStopsAtBadToken(t *testing.T) {
	_, err := ParseMoves("R U X U'")
	if !errors.Is(err, ErrInvalidNotation) {
		t.Fatalf("err = %v, want ErrInvalidNotation", err)
	}
	t.Log(err)
}

func TestFormatMoves(t *testing.T) {
	if got := FormatMoves(SexyMove); got != "R U R' U'" {
		t.Errorf("FormatMoves = %q", got)
	}
	if got := FormatMoves(nil); got != "" {
		t.Errorf("FormatMoves(nil) = %q", got)
	}
}

func TestInverse(t *testing.T) {
	if R.Inverse() != RPrime || RPrime.Inverse() != R || R2.Inverse() != R2 {
		t.Error("Inverse mismatch")
	}
	inv := InverseMoves(SexyMove)
	if got := FormatMoves(inv); got != "U R U' R'" {
		t.Errorf("InverseMoves = %q", got)
	}
}

func TestQuarterTurns(t *testing.T) {
	if R.QuarterTurns() != 1 || RPrime.QuarterTurns() != 1 || R2.QuarterTurns() != 2 {
		t.Error("QuarterTurns mismatch")
	}
	if len(AllMoves) != 18 {
		t.Errorf("AllMoves has %d moves", len(AllMoves))
	}
}
