package sudoku

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestNewBoard(t *testing.T) {
	tests := []struct {
		name    string
		values  []int
		wantErr bool
	}{
		{"all blanks", make([]int, NumCells), false},
		{"too short", make([]int, NumCells-1), true},
		{"too long", make([]int, NumCells+1), true},
		{"nil input", nil, true},
		{
			name: "value out of range",
			values: func() []int {
				v := make([]int, NumCells)
				v[40] = 10
				return v
			}(),
			wantErr: true,
		},
		{
			name: "negative value",
			values: func() []int {
				v := make([]int, NumCells)
				v[0] = -3
				return v
			}(),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoard(tt.values)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewBoard() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidInput) {
				t.Errorf("error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestBoard_Values(t *testing.T) {
	values := make([]int, NumCells)
	values[0] = 5
	values[10] = 3
	values[80] = 9

	b, err := NewBoard(values)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}

	if got := b.Values(); !slices.Equal(got, values) {
		t.Errorf("Values() = %v, want %v", got, values)
	}
}

func TestBoard_Cell(t *testing.T) {
	values := make([]int, NumCells)
	values[1*GridSize+2] = 7

	b, err := NewBoard(values)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}

	if v, ok := b.Cell(1, 2).Value(); !ok || v != 7 {
		t.Errorf("Cell(1, 2).Value() = (%d, %v), want (7, true)", v, ok)
	}
	if b.Cell(0, 0).Determined() {
		t.Errorf("Cell(0, 0) is determined, want full candidate set")
	}
}

func TestBoard_Repr(t *testing.T) {
	values := make([]int, NumCells)
	values[0] = 1
	values[8] = 2
	values[72] = 3
	values[80] = 4

	b, err := NewBoard(values)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}

	lines := strings.Split(b.Repr(), "\n")
	if len(lines) != GridSize {
		t.Fatalf("Repr() has %d lines, want %d", len(lines), GridSize)
	}
	if lines[0] != "1.......2" {
		t.Errorf("first line = %q, want %q", lines[0], "1.......2")
	}
	if lines[8] != "3.......4" {
		t.Errorf("last line = %q, want %q", lines[8], "3.......4")
	}
}

func TestBoard_DebugString(t *testing.T) {
	b, err := NewBoard(make([]int, NumCells))
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}

	out := b.DebugString()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	// 3 content rows per cell row plus 10 separator rules.
	if len(lines) != GridSize*BoxSize+GridSize+1 {
		t.Errorf("DebugString() has %d lines, want %d", len(lines), GridSize*BoxSize+GridSize+1)
	}
	if !strings.Contains(out, "123") {
		t.Errorf("DebugString() for a blank board should show candidate 123 rows:\n%s", out)
	}
}
