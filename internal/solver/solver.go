// Package solver implements A* best-first search over sliding-puzzle
// configurations. Each call to Solve owns all of its state (frontier,
// closed set, node arena), so independent searches may run in parallel
// without coordination. The search is synchronous and performs no I/O;
// callers that must not block should run it on their own goroutine.
package solver

import (
	"errors"

	"github.com/vagnervjs/slider/internal/board"
)

// ErrNoBlank is returned when a board holds no blank slot. That is a caller
// contract violation; the search aborts rather than loop on a board it can
// never move.
var ErrNoBlank = errors.New("solver: board has no blank slot")

// Action is one atomic move: Tile slid from slot From into the blank at
// slot To. Slots are 0-indexed. Actions are emitted in play order and never
// re-ordered.
type Action struct {
	Tile int
	From int
	To   int
}

// Status tags the outcome of a search.
type Status int

const (
	// StatusAlreadySolved means the start board equals the goal; no moves
	// are needed and no search was performed.
	StatusAlreadySolved Status = iota

	// StatusSolved means an optimal (minimum-length) path was found.
	StatusSolved

	// StatusUnsolvable means the entire reachable state space was exhausted
	// without finding the goal. It is a definitive verdict, not a timeout.
	StatusUnsolvable
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusAlreadySolved:
		return "already-solved"
	case StatusSolved:
		return "solved"
	case StatusUnsolvable:
		return "unsolvable"
	default:
		return "unknown"
	}
}

// Result is the three-way outcome of a search. Actions is non-empty only
// when Status is StatusSolved. Expanded counts nodes taken off the frontier,
// for reporting.
type Result struct {
	Status   Status
	Actions  []Action
	Expanded int
}

// node is one search-tree record. Nodes live in a per-call arena and link
// to their parent by arena index, so path reconstruction needs no
// back-references. A node is never mutated after creation.
type node struct {
	state  board.Board
	parent int // arena index, -1 for the root
	action Action
	g, h   int
}

// Solve runs A* from start toward the goal board of start's length, using
// adj to enumerate legal moves. It returns one of three outcomes: already
// solved (empty action list), an optimal ordered action list, or a
// definitive unsolvable verdict after exhausting the reachable space.
//
// start must hold exactly one blank and a full tile set; a board with no
// blank aborts with ErrNoBlank. A board whose length is not a perfect
// square surfaces board.ErrGridNotSquare from the heuristic. A square
// missing from adj makes that node expand to nothing; other branches
// continue. start is never mutated.
func Solve(start board.Board, adj board.Adjacency) (Result, error) {
	if start.IsGoal() {
		return Result{Status: StatusAlreadySolved}, nil
	}
	if _, ok := start.BlankSlot(); !ok {
		return Result{}, ErrNoBlank
	}

	goal := board.Goal(len(start))
	h0, err := board.HeuristicDistance(start, goal, len(start))
	if err != nil {
		return Result{}, err
	}

	arena := []node{{state: start, parent: -1, g: 0, h: h0}}
	open := newFrontier()
	open.push(&entry{node: 0, key: start.Key(), f: h0, h: h0})

	// Boards already scheduled for expansion, keyed by canonical
	// serialization. Populated when a board enters the frontier, not when
	// it is expanded, so one board is never queued from two parents.
	closed := map[string]struct{}{start.Key(): {}}

	expanded := 0
	for open.Len() > 0 {
		cur := open.pop()
		n := arena[cur.node]
		expanded++

		if n.state.IsGoal() {
			return Result{
				Status:   StatusSolved,
				Actions:  reconstruct(arena, cur.node),
				Expanded: expanded,
			}, nil
		}

		blank, ok := n.state.BlankSlot()
		if !ok {
			return Result{}, ErrNoBlank
		}
		neighbors, ok := adj[board.SlotToSquare(blank)]
		if !ok {
			// Malformed adjacency table: this node has no moves, but other
			// frontier branches may still reach the goal.
			continue
		}

		for _, sq := range neighbors {
			from := board.SquareToSlot(sq)
			next := board.ApplyMove(n.state, from, blank)
			key := next.Key()

			g := n.g + 1
			h, err := board.HeuristicDistance(next, goal, len(next))
			if err != nil {
				return Result{}, err
			}
			f := g + h

			if old, ok := open.byKey[key]; ok {
				if old.f <= f {
					continue
				}
				// Better path to a board still waiting in the frontier:
				// replace the stale entry in place.
				arena = append(arena, node{
					state:  next,
					parent: cur.node,
					action: Action{Tile: n.state[from], From: from, To: blank},
					g:      g,
					h:      h,
				})
				open.update(old, len(arena)-1, f, h)
				continue
			}
			if _, seen := closed[key]; seen {
				continue
			}

			arena = append(arena, node{
				state:  next,
				parent: cur.node,
				action: Action{Tile: n.state[from], From: from, To: blank},
				g:      g,
				h:      h,
			})
			open.push(&entry{node: len(arena) - 1, key: key, f: f, h: h})
			closed[key] = struct{}{}
		}
	}

	return Result{Status: StatusUnsolvable, Expanded: expanded}, nil
}

// reconstruct walks parent indexes from the goal node back to the root and
// reverses the collected actions into play order.
func reconstruct(arena []node, idx int) []Action {
	var actions []Action
	for i := idx; arena[i].parent >= 0; i = arena[i].parent {
		actions = append(actions, arena[i].action)
	}
	for i, j := 0, len(actions)-1; i < j; i, j = i+1, j-1 {
		actions[i], actions[j] = actions[j], actions[i]
	}
	return actions
}
