package sudoku

import (
	"errors"
	"slices"
	"testing"
)

func TestSolveParallel_MatchesSequential(t *testing.T) {
	tests := []struct {
		name   string
		givens []int
	}{
		{"hard", boardHard},
		{"evil", boardEvil},
		{"evil2", boardEvil2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sequential := solveAndCheck(t, tt.givens)

			parallel, err := SolveParallel(t.Context(), mustBoard(t, tt.givens))
			if err != nil {
				t.Fatalf("SolveParallel: %v", err)
			}
			checkSound(t, parallel)
			checkGivens(t, tt.givens, parallel)

			// These puzzles are uniquely solvable, so both paths must agree.
			if !slices.Equal(parallel.Values(), sequential.Values()) {
				t.Errorf("parallel and sequential solves disagree:\nparallel   %v\nsequential %v",
					parallel.Values(), sequential.Values())
			}
		})
	}
}

func TestSolveParallel_NoGuessNeeded(t *testing.T) {
	parallel, err := SolveParallel(t.Context(), mustBoard(t, solvedGrid))
	if err != nil {
		t.Fatalf("SolveParallel: %v", err)
	}
	if !slices.Equal(parallel.Values(), solvedGrid) {
		t.Errorf("solved board changed: %v", parallel.Values())
	}
}

func TestSolveParallel_Contradiction(t *testing.T) {
	givens := make([]int, NumCells)
	for i := range givens {
		givens[i] = 1
	}

	_, err := SolveParallel(t.Context(), mustBoard(t, givens))
	if !errors.Is(err, ErrContradiction) {
		t.Errorf("SolveParallel error = %v, want ErrContradiction", err)
	}
}
