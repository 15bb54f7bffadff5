package board

// Solvable reports whether b can reach the goal configuration under the
// sliding-move rules. It uses the inversion-count parity test, so it
// classifies a board without searching.
//
// For odd side lengths a board is solvable iff its inversion count is even.
// For even side lengths the blank's row enters the parity: solvable iff
// inversions plus the blank's row counted from the bottom (1-based) is odd.
func Solvable(b Board) bool {
	side, err := Side(len(b))
	if err != nil {
		return false
	}

	inversions := 0
	for i := 0; i < len(b); i++ {
		if b[i] == Blank {
			continue
		}
		for j := i + 1; j < len(b); j++ {
			if b[j] != Blank && b[j] < b[i] {
				inversions++
			}
		}
	}

	if side%2 == 1 {
		return inversions%2 == 0
	}

	blankSlot, ok := b.BlankSlot()
	if !ok {
		return false
	}
	rowFromBottom := side - blankSlot/side
	return (inversions+rowFromBottom)%2 == 1
}
