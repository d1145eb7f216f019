package internal

import (
	"slices"
	"strings"
	"testing"

	"crosswarped.com/sudoku"
)

func TestParsePuzzle(t *testing.T) {
	line := "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"

	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"single line with dots", line, false},
		{"zeros for blanks", strings.ReplaceAll(line, ".", "0"), false},
		{"underscores for blanks", strings.ReplaceAll(line, ".", "_"), false},
		{
			name: "multi-line grid with separators",
			text: `
				5 3 . | . 7 . | . . .
				6 . . | 1 9 5 | . . .
				. 9 8 | . . . | . 6 .
				------+-------+------
				8 . . | . 6 . | . . 3
				4 . . | 8 . 3 | . . 1
				7 . . | . 2 . | . . 6
				------+-------+------
				. 6 . | . . . | 2 8 .
				. . . | 4 1 9 | . . 5
				. . . | . 8 . | . 7 9
			`,
			wantErr: false,
		},
		{"too few cells", line[:80], true},
		{"too many cells", line + "1", true},
		{"stray letter", strings.Replace(line, ".", "x", 1), true},
		{"empty input", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := ParsePuzzle(tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePuzzle() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if len(values) != sudoku.NumCells {
				t.Fatalf("got %d values, want %d", len(values), sudoku.NumCells)
			}
			if values[0] != 5 || values[1] != 3 || values[2] != 0 {
				t.Errorf("first cells = %v, want [5 3 0 ...]", values[:3])
			}
		})
	}
}

func TestParsePuzzle_RoundTrip(t *testing.T) {
	line := "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	values, err := ParsePuzzle(line)
	if err != nil {
		t.Fatalf("ParsePuzzle: %v", err)
	}

	formatted := FormatValues(values)
	if formatted != line {
		t.Errorf("FormatValues() = %q, want %q", formatted, line)
	}

	again, err := ParsePuzzle(formatted)
	if err != nil {
		t.Fatalf("ParsePuzzle(FormatValues()): %v", err)
	}
	if !slices.Equal(again, values) {
		t.Errorf("round trip changed values:\ngot  %v\nwant %v", again, values)
	}
}
