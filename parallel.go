package sudoku

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"crosswarped.com/sudoku/pkg/primitives"
)

// SolveParallel behaves like Solve, but once the initial propagation stalls
// it explores the branch cell's sibling guesses concurrently, each on its
// own clone of the board. The first branch to reach a solution wins and the
// rest are cancelled.
//
// For uniquely solvable puzzles the result is identical to Solve's. Boards
// with several valid completions may resolve to whichever branch finishes
// first.
func SolveParallel(ctx context.Context, b Board) (Board, error) {
	if err := b.propagate(ctx); err != nil {
		return b, err
	}
	if b.Solved() {
		return b, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	idx := b.branchCell()
	guesses := b.cells[idx]

	type attempt struct {
		board Board
		err   error
	}
	// Buffered to the branch count so losing goroutines never block.
	results := make(chan attempt, guesses.Count())

	var wg sync.WaitGroup
	for guess := range guesses.Singles() {
		wg.Add(1)
		go func(guess primitives.DigitSet) {
			defer wg.Done()
			child := b
			child.cells[idx] = guess
			err := solve(ctx, &child)
			results <- attempt{board: child, err: err}
		}(guess)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	for res := range results {
		if res.err == nil {
			return res.board, nil
		}
		if !errors.Is(res.err, ErrContradiction) {
			return b, res.err
		}
	}
	return b, fmt.Errorf("%w: cell %d exhausted all candidates", ErrContradiction, idx)
}
