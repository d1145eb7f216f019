package internal

import (
	"fmt"
	"strings"

	"crosswarped.com/sudoku"
)

// ParsePuzzle converts puzzle text into the flat row-major value sequence the
// solver consumes. Digits 1-9 are givens; '0', '.' and '_' denote blanks.
// Whitespace and the separator characters '|', '-' and '+' commonly found in
// pretty-printed grids are ignored.
func ParsePuzzle(text string) ([]int, error) {
	values := make([]int, 0, sudoku.NumCells)
	for _, r := range text {
		switch {
		case r >= '1' && r <= '9':
			values = append(values, int(r-'0'))
		case r == '0' || r == '.' || r == '_':
			values = append(values, 0)
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
		case r == '|' || r == '-' || r == '+':
		default:
			return nil, fmt.Errorf("unexpected character %q in puzzle", r)
		}
	}
	if len(values) != sudoku.NumCells {
		return nil, fmt.Errorf("puzzle has %d cells, want %d", len(values), sudoku.NumCells)
	}
	return values, nil
}

// FormatValues renders a flat value sequence as a single line, with '.' for
// every blank. It is the inverse of ParsePuzzle's single-line form.
func FormatValues(values []int) string {
	var sb strings.Builder
	sb.Grow(len(values))
	for _, v := range values {
		if v == 0 {
			sb.WriteByte('.')
		} else {
			sb.WriteByte(byte('0' + v))
		}
	}
	return sb.String()
}
