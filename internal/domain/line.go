package domain

import "fmt"

// ParseLine reads the 81-character puzzle form: digits '1'-'9' for givens,
// '0' or '.' for free cells. Nothing else is permitted on a puzzle line.
func ParseLine(line string) (Grid, error) {
	var g Grid
	if len(line) != 81 {
		return g, fmt.Errorf("%w: want 81 characters, got %d", ErrMalformedInput, len(line))
	}
	for i := 0; i < 81; i++ {
		switch ch := line[i]; {
		case ch >= '1' && ch <= '9':
			g[i] = ch - '0'
		case ch == '0' || ch == '.':
			g[i] = 0
		default:
			return Grid{}, fmt.Errorf("%w: character %q at position %d", ErrMalformedInput, ch, i)
		}
	}
	return g, nil
}

// Line renders the grid back into the 81-character form, '.' for free cells.
func (g *Grid) Line() string {
	buf := make([]byte, 81)
	for i, v := range g {
		if v == 0 {
			buf[i] = '.'
		} else {
			buf[i] = '0' + v
		}
	}
	return string(buf)
}

// MarshalText encodes the grid as its line form for JSON payloads.
func (g Grid) MarshalText() ([]byte, error) {
	return []byte(g.Line()), nil
}

// UnmarshalText parses the line form, accepting '0' and '.' alike.
func (g *Grid) UnmarshalText(text []byte) error {
	parsed, err := ParseLine(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
