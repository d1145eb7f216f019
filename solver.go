package sudoku

import (
	"context"
	"errors"
	"fmt"

	"crosswarped.com/sudoku/pkg/primitives"
)

// region lists the cell indices of one row, column or box.
type region [GridSize]int

// Region index tables. Reduction order within a round is fixed: every row,
// then every column, then every box.
var (
	rowRegions = buildRegions(func(g, k int) int {
		return g*GridSize + k
	})
	colRegions = buildRegions(func(g, k int) int {
		return k*GridSize + g
	})
	boxRegions = buildRegions(func(g, k int) int {
		r := (g/BoxSize)*BoxSize + k/BoxSize
		c := (g%BoxSize)*BoxSize + k%BoxSize
		return r*GridSize + c
	})
)

func buildRegions(cell func(group, k int) int) [GridSize]region {
	var out [GridSize]region
	for g := range out {
		for k := range out[g] {
			out[g][k] = cell(g, k)
		}
	}
	return out
}

// Solve returns a fully determined board satisfying the row, column and box
// uniqueness constraints, found by constraint propagation with depth-first
// backtracking on stall. Guess order is deterministic: lowest cell index
// first, ascending digit within a cell.
//
// On ErrContradiction the returned board carries the best-effort partial
// reduction for diagnostics. A cancelled context surfaces as its ctx error.
func Solve(ctx context.Context, b Board) (Board, error) {
	err := solve(ctx, &b)
	return b, err
}

func solve(ctx context.Context, b *Board) error {
	if err := b.propagate(ctx); err != nil {
		return err
	}
	if b.Solved() {
		return nil
	}

	idx := b.branchCell()
	for guess := range b.cells[idx].Singles() {
		if err := ctx.Err(); err != nil {
			return err
		}
		child := *b
		child.cells[idx] = guess
		err := solve(ctx, &child)
		if err == nil {
			*b = child
			return nil
		}
		if !errors.Is(err, ErrContradiction) {
			return err
		}
		// The guess provably leads nowhere, so the digit can be excluded
		// here outright, shrinking every later branch through this board.
		b.cells[idx] &^= guess
	}
	return fmt.Errorf("%w: cell %d exhausted all candidates", ErrContradiction, idx)
}

// propagate applies row, column and box reduction rounds until a full round
// changes nothing, or a region reports a contradiction.
func (b *Board) propagate(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		changed, err := b.reduceOnce()
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
	}
}

// reduceOnce runs one full round of region reductions and reports whether
// any cell's candidate set shrank.
func (b *Board) reduceOnce() (bool, error) {
	changed := false
	for _, pass := range [][GridSize]region{rowRegions, colRegions, boxRegions} {
		for _, reg := range pass {
			ch, err := b.reduceRegion(reg)
			if err != nil {
				return false, err
			}
			changed = changed || ch
		}
	}
	return changed, nil
}

// reduceRegion collects the digits already taken by determined cells of the
// region and strips them from every undetermined cell.
func (b *Board) reduceRegion(cells region) (bool, error) {
	var forbidden primitives.DigitSet
	for _, i := range cells {
		c := b.cells[i]
		if !c.Determined() {
			continue
		}
		if forbidden&c != 0 {
			v, _ := c.Value()
			return false, fmt.Errorf("%w: digit %d determined twice in one region", ErrContradiction, v)
		}
		forbidden |= c
	}

	changed := false
	for _, i := range cells {
		next, ch, err := b.cells[i].Restrict(forbidden)
		if err != nil {
			return false, fmt.Errorf("%w: cell %d has no remaining candidates", ErrContradiction, i)
		}
		if ch {
			b.cells[i] = next
			changed = true
		}
	}
	return changed, nil
}

// branchCell returns the lowest index still holding 2+ candidates, or -1 on
// a fully determined board.
func (b *Board) branchCell() int {
	for i, c := range b.cells {
		if c.Count() > 1 {
			return i
		}
	}
	return -1
}
