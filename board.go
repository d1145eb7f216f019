package sudoku

import (
	"errors"
	"fmt"
	"strings"

	"crosswarped.com/sudoku/pkg/primitives"
)

const (
	// BoxSize is the side length of one box region.
	BoxSize = 3
	// GridSize is the side length of the whole grid.
	GridSize = BoxSize * BoxSize
	// NumCells is the total number of cells on a board.
	NumCells = GridSize * GridSize
)

var (
	// ErrInvalidInput reports a structurally invalid puzzle: wrong cell
	// count, or a value outside [0, GridSize]. Detected at construction,
	// never inside the solving loop.
	ErrInvalidInput = errors.New("invalid puzzle input")

	// ErrContradiction reports a board that admits no consistent assignment.
	ErrContradiction = errors.New("puzzle has no solution")
)

// Board is a fixed-size row-major grid of candidate sets.
//
// Board is a value type: assignment clones the whole grid, so speculative
// branches of the solver never alias their parent.
type Board struct {
	cells [NumCells]primitives.DigitSet
}

// NewBoard builds a board from a flat row-major sequence of exactly NumCells
// values in [0, GridSize], where 0 denotes a blank cell.
func NewBoard(values []int) (Board, error) {
	var b Board
	if len(values) != NumCells {
		return b, fmt.Errorf("%w: got %d cells, want %d", ErrInvalidInput, len(values), NumCells)
	}
	for i, v := range values {
		d, err := primitives.DigitSetForValue(v)
		if err != nil {
			return b, fmt.Errorf("%w: cell %d holds %d", ErrInvalidInput, i, v)
		}
		b.cells[i] = d
	}
	return b, nil
}

// Cell returns the candidate set at the given position.
func (b Board) Cell(row, col int) primitives.DigitSet {
	return b.cells[row*GridSize+col]
}

// Values returns the board as a flat row-major sequence, with 0 for every
// cell that is not yet determined.
func (b Board) Values() []int {
	out := make([]int, NumCells)
	for i, c := range b.cells {
		if v, ok := c.Value(); ok {
			out[i] = v
		}
	}
	return out
}

// Solved checks if every cell is determined.
func (b Board) Solved() bool {
	for _, c := range b.cells {
		if !c.Determined() {
			return false
		}
	}
	return true
}

// Repr renders the board as GridSize lines of digits, with '.' for every
// undetermined cell.
func (b Board) Repr() string {
	lines := make([]string, GridSize)
	for r := range lines {
		var row [GridSize]byte
		for c := range row {
			if v, ok := b.cells[r*GridSize+c].Value(); ok {
				row[c] = byte('0' + v)
			} else {
				row[c] = '.'
			}
		}
		lines[r] = string(row[:])
	}
	return strings.Join(lines, "\n")
}

// DebugString renders the full candidate state, one mini-grid of remaining
// digits per cell, with box-drawing separators.
func (b Board) DebugString() string {
	var sb strings.Builder
	writeRule(&sb, '╔', '═', '╤', '╦', '╗')
	for r := range GridSize {
		for sub := range BoxSize {
			for c := range GridSize {
				switch {
				case c == 0:
					sb.WriteString("║ ")
				case c%BoxSize == 0:
					sb.WriteString(" ║ ")
				default:
					sb.WriteString(" │ ")
				}
				cell := b.cells[r*GridSize+c]
				for k := range BoxSize {
					v := sub*BoxSize + k + 1
					if cell.Contains(v) {
						sb.WriteByte(byte('0' + v))
					} else {
						sb.WriteByte(' ')
					}
				}
			}
			sb.WriteString(" ║\n")
		}
		switch {
		case r == GridSize-1:
			writeRule(&sb, '╚', '═', '╧', '╩', '╝')
		case r%BoxSize == BoxSize-1:
			writeRule(&sb, '╠', '═', '╪', '╬', '╣')
		default:
			writeRule(&sb, '╟', '─', '┼', '╫', '╢')
		}
	}
	return sb.String()
}

func writeRule(sb *strings.Builder, start, line, cross, boxCross, end rune) {
	sb.WriteRune(start)
	for i := range GridSize {
		for range BoxSize + 2 {
			sb.WriteRune(line)
		}
		switch {
		case i == GridSize-1:
			sb.WriteRune(end)
		case i%BoxSize == BoxSize-1:
			sb.WriteRune(boxCross)
		default:
			sb.WriteRune(cross)
		}
	}
	sb.WriteRune('\n')
}
