package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/gorilla/websocket"
	"google.golang.org/api/iterator"

	"crosswarped.com/sudoku"
	"crosswarped.com/sudoku/internal"
)

type SolveGridRequest struct {
	Puzzle       string `json:"puzzle"`
	StoredPuzzle string `json:"storedPuzzle"`
	Scope        string `json:"scope"`
	Parallel     bool   `json:"parallel"`
}

type SolveGridResponse struct {
	Success  bool   `json:"success"`
	Solution string `json:"solution,omitempty"`
	Partial  string `json:"partial,omitempty"`
	Error    string `json:"error,omitempty"`
}

func getStoredPuzzle(ctx context.Context, scope, key string) (string, error) {
	client, err := bigquery.NewClient(ctx, "sudoku-x")
	if err != nil {
		return "", fmt.Errorf("bigquery.NewClient: %w", err)
	}
	defer client.Close()

	query := fmt.Sprintf("SELECT cells FROM `sudoku-x.FirestoreQuery.all_puzzles` WHERE scope = %q AND puzzle_key = %q LIMIT 1", scope, key)
	q := client.Query(query)
	q.Location = "US"

	job, err := q.Run(ctx)
	if err != nil {
		return "", fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return "", fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return "", fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return "", fmt.Errorf("job.Read: %w", err)
	}

	var row []bigquery.Value
	err = it.Next(&row)
	if err == iterator.Done {
		return "", fmt.Errorf("no stored puzzle %q in scope %q", key, scope)
	}
	if err != nil {
		return "", fmt.Errorf("it.Next: %w", err)
	}
	cells, ok := row[0].(string)
	if !ok {
		return "", fmt.Errorf("row[0] is not a string: %v", row[0])
	}
	return cells, nil
}

func execute(ctx context.Context, req SolveGridRequest) (sudoku.Board, error) {
	text := req.Puzzle
	if req.StoredPuzzle != "" {
		if text != "" {
			return sudoku.Board{}, fmt.Errorf("puzzle and storedPuzzle are mutually exclusive")
		}
		stored, err := getStoredPuzzle(ctx, req.Scope, req.StoredPuzzle)
		if err != nil {
			return sudoku.Board{}, fmt.Errorf("getStoredPuzzle: %w", err)
		}
		text = stored
	}
	if text == "" {
		return sudoku.Board{}, fmt.Errorf("puzzle must not be empty")
	}

	values, err := internal.ParsePuzzle(text)
	if err != nil {
		return sudoku.Board{}, fmt.Errorf("%w: %v", sudoku.ErrInvalidInput, err)
	}
	board, err := sudoku.NewBoard(values)
	if err != nil {
		return sudoku.Board{}, err
	}

	deadline, ok := ctx.Deadline()
	timeout := 1 * time.Minute
	if ok {
		timeout = time.Until(deadline) - 5*time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if req.Parallel {
		return sudoku.SolveParallel(ctx, board)
	}
	return sudoku.Solve(ctx, board)
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func asResponse(board sudoku.Board, err error) SolveGridResponse {
	if err == nil {
		return SolveGridResponse{
			Success:  true,
			Solution: internal.FormatValues(board.Values()),
		}
	}
	response := SolveGridResponse{Error: err.Error()}
	if errors.Is(err, sudoku.ErrContradiction) {
		// The partially reduced board helps callers see where it went wrong.
		response.Partial = internal.FormatValues(board.Values())
	}
	return response
}

func solveGrid(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		fmt.Fprintf(w, `{"success": false, "error": "Method %s not allowed"}`, r.Method)
		return
	}

	var req SolveGridRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fmt.Printf("Error parsing JSON body: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		response := SolveGridResponse{
			Error: fmt.Sprintf("Invalid JSON: %v", err),
		}
		json.NewEncoder(w).Encode(response)
		return
	}

	board, err := execute(r.Context(), req)
	response := asResponse(board, err)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		fmt.Printf("Error marshaling response: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"success": false, "error": "Internal server error"}`)
		return
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// solveSession upgrades to a websocket and solves one puzzle per text
// message, replying with a SolveGridResponse per puzzle.
func solveSession(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		fmt.Printf("Error upgrading connection: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}

		board, err := execute(r.Context(), SolveGridRequest{Puzzle: string(msg)})
		if err := conn.WriteJSON(asResponse(board, err)); err != nil {
			return
		}
	}
}

func main() {
	funcframework.RegisterHTTPFunction("/solve-grid", solveGrid)
	funcframework.RegisterHTTPFunction("/solve-session", solveSession)

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	hostname := ""
	if localOnly := os.Getenv("LOCAL_ONLY"); localOnly == "true" {
		hostname = "127.0.0.1"
	}
	if err := funcframework.StartHostPort(hostname, port); err != nil {
		log.Fatalf("funcframework.StartHostPort: %v\n", err)
	}
}
