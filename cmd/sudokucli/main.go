package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"time"

	"crosswarped.com/sudoku"
	"crosswarped.com/sudoku/internal"
)

func main() {

	puzzle := flag.String("puzzle", "", "The puzzle as an inline string (81 cells; digits, with 0 or . for blanks)")
	file := flag.String("file", "", "The file to load the puzzle from")
	timeout := flag.Duration("timeout", 1*time.Minute, "The timeout for the solver")
	parallel := flag.Bool("parallel", false, "Explore sibling guesses concurrently")
	candidates := flag.Bool("candidates", false, "Also print the candidate view of the final board")

	profile := flag.Bool("profile", false, "Profile the solver")
	profileFile := flag.String("profile-file", "cpu.pprof", "The file to write the CPU profile to")
	memoryProfileFile := flag.String("memory-profile-file", "mem.pprof", "The file to write the memory profile to")

	flag.Parse()

	if *puzzle != "" && *file != "" {
		fmt.Println("Cannot use both -puzzle and -file")
		os.Exit(1)
	}

	text := *puzzle
	if *file != "" {
		raw, err := os.ReadFile(*file)
		if err != nil {
			fmt.Println("Error loading puzzle from file:", err)
			os.Exit(1)
		}
		text = string(raw)
	}
	if text == "" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Println("Error reading puzzle from stdin:", err)
			os.Exit(1)
		}
		text = string(raw)
	}

	values, err := internal.ParsePuzzle(text)
	if err != nil {
		fmt.Println("Error parsing puzzle:", err)
		os.Exit(1)
	}

	board, err := sudoku.NewBoard(values)
	if err != nil {
		fmt.Println("Error building board:", err)
		os.Exit(1)
	}

	var mf *os.File
	if *profile {
		f, err := os.Create(*profileFile)
		if err != nil {
			fmt.Println("Error creating profile file:", err)
			os.Exit(1)
		}
		defer f.Close()

		mf, err = os.Create(*memoryProfileFile)
		if err != nil {
			fmt.Println("Error creating memory profile file:", err)
			os.Exit(1)
		}
		defer mf.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Println("Error starting CPU profile:", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	solveFunc := sudoku.Solve
	if *parallel {
		solveFunc = sudoku.SolveParallel
	}

	start := time.Now()
	solved, err := solveFunc(ctx, board)
	elapsed := time.Since(start)

	if err != nil {
		if errors.Is(err, sudoku.ErrContradiction) {
			fmt.Println("No solution exists. Best-effort reduction:")
			fmt.Println(solved.DebugString())
			os.Exit(1)
		}
		fmt.Println("Error solving puzzle:", err)
		os.Exit(1)
	}

	fmt.Println(solved.Repr())
	if *candidates {
		fmt.Println(solved.DebugString())
	}
	fmt.Println("Solved in", elapsed)

	if mf != nil {
		pprof.WriteHeapProfile(mf)
	}
}
