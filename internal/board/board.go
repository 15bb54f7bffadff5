// Package board provides the sliding-puzzle board model: representation,
// goal test, move application, coordinate conversions, and the Manhattan
// distance heuristic. It contains pure functions only; no operation mutates
// its input, so boards can be shared freely between search branches.
package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Blank is the sentinel value for the empty slot.
const Blank = 0

var (
	// ErrGridNotSquare is returned when a board length is not a perfect
	// square and therefore does not describe an N×N grid.
	ErrGridNotSquare = errors.New("board: grid size is not a perfect square")

	// ErrBadBoard is returned when a board string cannot be parsed.
	ErrBadBoard = errors.New("board: malformed board string")
)

// Board is an ordered sequence of slots. Each slot holds a tile in
// [1, len-1] or Blank. Slots are 0-indexed; the 1-indexed "square number"
// space used by adjacency tables is slot+1.
type Board []int

// Goal returns the canonical solved board for the given slot count:
// tiles 1..size-1 in order, blank last.
func Goal(size int) Board {
	b := make(Board, size)
	for i := 0; i < size-1; i++ {
		b[i] = i + 1
	}
	b[size-1] = Blank
	return b
}

// IsGoal reports whether b is the solved configuration for its own length.
// A length mismatch is simply not the goal, never an error.
func (b Board) IsGoal() bool {
	if len(b) == 0 {
		return false
	}
	for i, v := range b {
		want := i + 1
		if i == len(b)-1 {
			want = Blank
		}
		if v != want {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the board.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	copy(out, b)
	return out
}

// BlankSlot returns the slot holding the blank, or ok=false if the board
// has no blank at all (a caller contract violation).
func (b Board) BlankSlot() (int, bool) {
	for i, v := range b {
		if v == Blank {
			return i, true
		}
	}
	return 0, false
}

// Key returns the canonical serialization of the board. Two structurally
// equal boards always produce the same key; different boards never collide.
func (b Board) Key() string {
	var sb strings.Builder
	for i, v := range b {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}

// String renders the board in the same comma-joined form Parse accepts.
func (b Board) String() string { return b.Key() }

// Parse reads a comma-separated board string such as "1,2,3,4,0,5,7,8,6".
// Whitespace around values is ignored. Parse validates shape only (integer
// slots); tile-set validity is the caller's contract.
func Parse(s string) (Board, error) {
	parts := strings.Split(s, ",")
	b := make(Board, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadBoard, s)
		}
		b = append(b, v)
	}
	return b, nil
}

// SlotToSquare converts a 0-indexed slot to its 1-indexed square number.
func SlotToSquare(slot int) int { return slot + 1 }

// SquareToSlot converts a 1-indexed square number to its 0-indexed slot.
func SquareToSlot(square int) int { return square - 1 }

// ApplyMove returns a new board with the tile at fromSlot slid into toSlot.
// Preconditions: toSlot currently holds the blank and fromSlot holds a real
// tile. If either is violated (including out-of-range slots) the original
// board is returned unchanged, a no-op signal for defensive callers. The
// input board is never mutated.
func ApplyMove(b Board, fromSlot, toSlot int) Board {
	if fromSlot < 0 || fromSlot >= len(b) || toSlot < 0 || toSlot >= len(b) {
		return b
	}
	if b[toSlot] != Blank {
		return b
	}
	tile := b[fromSlot]
	if tile < 1 || tile > len(b)-1 {
		return b
	}
	out := b.Clone()
	out[fromSlot], out[toSlot] = out[toSlot], out[fromSlot]
	return out
}

// Side returns the grid side length for a board of the given slot count,
// or ErrGridNotSquare if the count is not a perfect square.
func Side(size int) (int, error) {
	if size <= 0 {
		return 0, ErrGridNotSquare
	}
	side := 1
	for side*side < size {
		side++
	}
	if side*side != size {
		return 0, ErrGridNotSquare
	}
	return side, nil
}
