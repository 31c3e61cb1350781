package gocube

import (
	"errors"
	"testing"
)

func TestParseColor(t *testing.T) {
	for _, c := range Colors {
		got, err := ParseColor(c.Code())
		if err != nil || got != c {
			t.Errorf("ParseColor(%c) = %v, %v", c.Code(), got, err)
		}
	}
	if got, err := ParseColor('W'); err != nil || got != White {
		t.Errorf("ParseColor('W') = %v, %v", got, err)
	}
	if _, err := ParseColor('x'); !errors.Is(err, ErrMalformedColorData) {
		t.Errorf("ParseColor('x') err = %v", err)
	}
}

func TestFormatFaceColors(t *testing.T) {
	colors, err := ParseFaceColors("rgbyowrgb")
	if err != nil {
		t.Fatal(err)
	}
	if got := FormatFaceColors(colors); got != "rgbyowrgb" {
		t.Errorf("FormatFaceColors = %q", got)
	}
}

func TestColorHex(t *testing.T) {
	want := map[Color]string{
		Red:    "#FF1919",
		Green:  "#199B4C",
		Blue:   "#0D48AC",
		Yellow: "#FED52F",
		Orange: "#FF5525",
		White:  "#FFFFFF",
	}
	for c, hex := range want {
		if c.Hex() != hex {
			t.Errorf("%s.Hex() = %s, want %s", c, c.Hex(), hex)
		}
	}
}

func TestSolvedScan(t *testing.T) {
	if got := SolvedScan(); got != solvedScan {
		t.Errorf("SolvedScan() = %v", got)
	}
}
