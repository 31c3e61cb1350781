package gocube

import (
	"fmt"
	"strings"
)

// Color represents a sticker color.
type Color byte

const (
	Blank  Color = 0 // Uncolored facet
	Red    Color = 1
	Green  Color = 2
	Blue   Color = 3
	Yellow Color = 4
	Orange Color = 5
	White  Color = 6
)

// Colors lists every sticker color in scan alphabet order.
var Colors = []Color{Red, Green, Blue, Yellow, Orange, White}

func (c Color) String() string {
	switch c {
	case Red:
		return "R"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Yellow:
		return "Y"
	case Orange:
		return "O"
	case White:
		return "W"
	default:
		return "."
	}
}

// Code returns the single letter used in scan data (r, g, b, y, o, w).
// Blank has no code and returns '?'.
func (c Color) Code() byte {
	switch c {
	case Red:
		return 'r'
	case Green:
		return 'g'
	case Blue:
		return 'b'
	case Yellow:
		return 'y'
	case Orange:
		return 'o'
	case White:
		return 'w'
	default:
		return '?'
	}
}

// Hex returns the display color as #RRGGBB.
func (c Color) Hex() string {
	switch c {
	case Red:
		return "#FF1919"
	case Green:
		return "#199B4C"
	case Blue:
		return "#0D48AC"
	case Yellow:
		return "#FED52F"
	case Orange:
		return "#FF5525"
	case White:
		return "#FFFFFF"
	default:
		return "#36454F" // body grey
	}
}

// ParseColor maps a scan code to a Color. Codes are case-insensitive.
// Any letter outside the scan alphabet is rejected.
func ParseColor(code byte) (Color, error) {
	switch code {
	case 'r', 'R':
		return Red, nil
	case 'g', 'G':
		return Green, nil
	case 'b', 'B':
		return Blue, nil
	case 'y', 'Y':
		return Yellow, nil
	case 'o', 'O':
		return Orange, nil
	case 'w', 'W':
		return White, nil
	}
	return Blank, fmt.Errorf("%w: unknown color code %q", ErrMalformedColorData, code)
}

// ParseFaceColors parses exactly nine scan codes.
func ParseFaceColors(s string) ([9]Color, error) {
	var out [9]Color
	if len(s) != 9 {
		return out, fmt.Errorf("%w: want 9 color codes, got %d", ErrMalformedColorData, len(s))
	}
	for i := 0; i < 9; i++ {
		c, err := ParseColor(s[i])
		if err != nil {
			return out, fmt.Errorf("position %d: %w", i, err)
		}
		out[i] = c
	}
	return out, nil
}

// FormatFaceColors is the inverse of ParseFaceColors.
func FormatFaceColors(colors [9]Color) string {
	b := make([]byte, 9)
	for i, c := range colors {
		b[i] = c.Code()
	}
	return string(b)
}

// StandardScheme is the color each face shows when solved, indexed by Face.
var StandardScheme = [6]Color{White, Green, Red, Blue, Orange, Yellow}

// SolvedScan returns scan data for a solved cube in the standard scheme.
func SolvedScan() [6]string {
	var scan [6]string
	for f, c := range StandardScheme {
		scan[f] = strings.Repeat(string(c.Code()), 9)
	}
	return scan
}
