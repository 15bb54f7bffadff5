package solver

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vagnervjs/slider/internal/board"
)

func adj3() board.Adjacency { return board.NewAdjacency(3) }

func TestSolveAlreadySolved(t *testing.T) {
	res, err := Solve(board.Goal(9), adj3())
	if err != nil {
		t.Fatalf("Solve() failed: %v", err)
	}
	if res.Status != StatusAlreadySolved {
		t.Errorf("Status = %v, expected already-solved", res.Status)
	}
	if len(res.Actions) != 0 {
		t.Errorf("Expected no actions, got %v", res.Actions)
	}

	// The adjacency table must not matter when no search is needed.
	if res, err := Solve(board.Goal(9), nil); err != nil || res.Status != StatusAlreadySolved {
		t.Errorf("Solve(goal, nil) = (%v, %v), expected already-solved", res.Status, err)
	}
}

func TestSolveOneMove(t *testing.T) {
	start := board.Board{1, 2, 3, 4, 5, 6, 7, 0, 8}

	res, err := Solve(start, adj3())
	if err != nil {
		t.Fatalf("Solve() failed: %v", err)
	}
	if res.Status != StatusSolved {
		t.Fatalf("Status = %v, expected solved", res.Status)
	}
	if len(res.Actions) != 1 {
		t.Fatalf("Expected 1 action, got %d: %v", len(res.Actions), res.Actions)
	}

	want := Action{Tile: 8, From: 8, To: 7}
	if res.Actions[0] != want {
		t.Errorf("Action = %+v, expected %+v", res.Actions[0], want)
	}
}

func TestSolveTwoMoves(t *testing.T) {
	start := board.Board{1, 2, 3, 4, 0, 5, 7, 8, 6}

	res, err := Solve(start, adj3())
	if err != nil {
		t.Fatalf("Solve() failed: %v", err)
	}
	if res.Status != StatusSolved {
		t.Fatalf("Status = %v, expected solved", res.Status)
	}

	want := []Action{
		{Tile: 5, From: 5, To: 4},
		{Tile: 6, From: 8, To: 5},
	}
	if len(res.Actions) != len(want) {
		t.Fatalf("Expected %d actions, got %d: %v", len(want), len(res.Actions), res.Actions)
	}
	for i := range want {
		if res.Actions[i] != want[i] {
			t.Errorf("Action %d = %+v, expected %+v", i, res.Actions[i], want[i])
		}
	}
}

func TestSolveUnsolvable(t *testing.T) {
	start := board.Board{8, 1, 2, 0, 4, 3, 7, 6, 5}

	res, err := Solve(start, adj3())
	if err != nil {
		t.Fatalf("Solve() failed: %v", err)
	}
	if res.Status != StatusUnsolvable {
		t.Errorf("Status = %v, expected unsolvable", res.Status)
	}
	if len(res.Actions) != 0 {
		t.Errorf("Unsolvable result carries actions: %v", res.Actions)
	}
	if res.Expanded == 0 {
		t.Error("Unsolvable verdict without expanding anything")
	}
}

// replay applies an action sequence to a start board and returns the result.
func replay(t *testing.T, start board.Board, actions []Action) board.Board {
	t.Helper()
	b := start
	for i, a := range actions {
		next := board.ApplyMove(b, a.From, a.To)
		if next.Key() == b.Key() {
			t.Fatalf("Action %d (%+v) was a no-op on %v", i, a, b)
		}
		if next[a.To] != a.Tile {
			t.Fatalf("Action %d moved tile %d, expected %d", i, next[a.To], a.Tile)
		}
		b = next
	}
	return b
}

func TestSolveReplayReachesGoal(t *testing.T) {
	rng := rand.New(rand.NewSource(2026))
	adj := adj3()

	for i := 0; i < 20; i++ {
		k := 1 + rng.Intn(24)
		start := board.Scramble(3, k, rng)

		res, err := Solve(start, adj)
		if err != nil {
			t.Fatalf("Solve(%v) failed: %v", start, err)
		}
		if res.Status == StatusUnsolvable {
			t.Fatalf("Scrambled board reported unsolvable: %v", start)
		}

		// Optimality bounds: a k-step scramble is solvable in at most k
		// moves, and every path between two fixed boards has the same
		// parity, so the optimal length matches k mod 2.
		if len(res.Actions) > k {
			t.Errorf("Path of %d moves for a %d-step scramble: %v", len(res.Actions), k, start)
		}
		if (k-len(res.Actions))%2 != 0 {
			t.Errorf("Path length %d has wrong parity for %d-step scramble: %v", len(res.Actions), k, start)
		}

		if got := replay(t, start, res.Actions); !got.IsGoal() {
			t.Errorf("Replay ended at %v, expected the goal", got)
		}
		if res.Status == StatusSolved && len(res.Actions) == 0 {
			t.Errorf("Solved status with empty path for %v", start)
		}
	}
}

func TestSolveOptimalKnownDistances(t *testing.T) {
	tests := []struct {
		name  string
		start board.Board
		moves int
	}{
		{name: "depth 1", start: board.Board{1, 2, 3, 4, 5, 6, 7, 0, 8}, moves: 1},
		{name: "depth 2", start: board.Board{1, 2, 3, 4, 0, 5, 7, 8, 6}, moves: 2},
		{name: "depth 2 bottom row", start: board.Board{1, 2, 3, 4, 5, 6, 0, 7, 8}, moves: 2},
		{name: "depth 4 cycle", start: board.Board{1, 2, 3, 4, 6, 8, 7, 5, 0}, moves: 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Solve(tc.start, adj3())
			if err != nil {
				t.Fatalf("Solve() failed: %v", err)
			}
			if res.Status != StatusSolved {
				t.Fatalf("Status = %v, expected solved", res.Status)
			}
			if len(res.Actions) != tc.moves {
				t.Errorf("Path length = %d, expected %d (%v)", len(res.Actions), tc.moves, res.Actions)
			}
			if got := replay(t, tc.start, res.Actions); !got.IsGoal() {
				t.Errorf("Replay ended at %v, expected the goal", got)
			}
		})
	}
}

func TestSolveInputNotMutated(t *testing.T) {
	start := board.Board{1, 2, 3, 4, 0, 5, 7, 8, 6}
	want := start.Key()

	if _, err := Solve(start, adj3()); err != nil {
		t.Fatalf("Solve() failed: %v", err)
	}
	if start.Key() != want {
		t.Errorf("Solve mutated its input: %v", start)
	}
}

func TestSolveNoBlank(t *testing.T) {
	start := board.Board{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if _, err := Solve(start, adj3()); !errors.Is(err, ErrNoBlank) {
		t.Errorf("Solve error = %v, expected ErrNoBlank", err)
	}
}

func TestSolveNonSquareBoard(t *testing.T) {
	start := board.Board{2, 1, 3, 4, 5, 6, 7, 0}
	if _, err := Solve(start, adj3()); !errors.Is(err, board.ErrGridNotSquare) {
		t.Errorf("Solve error = %v, expected ErrGridNotSquare", err)
	}
}

func TestSolveMalformedAdjacency(t *testing.T) {
	start := board.Board{1, 2, 3, 4, 5, 6, 7, 0, 8}

	// An empty table gives the root no moves: the frontier drains and the
	// search reports a definitive verdict instead of crashing.
	res, err := Solve(start, board.Adjacency{})
	if err != nil {
		t.Fatalf("Solve() failed: %v", err)
	}
	if res.Status != StatusUnsolvable {
		t.Errorf("Status = %v, expected unsolvable with empty adjacency", res.Status)
	}

	// A table missing only some squares still lets other branches finish.
	partial := board.NewAdjacency(3)
	delete(partial, 1)
	res, err = Solve(start, partial)
	if err != nil {
		t.Fatalf("Solve() with partial adjacency failed: %v", err)
	}
	if res.Status != StatusSolved {
		t.Errorf("Status = %v, expected solved with partial adjacency", res.Status)
	}
}
