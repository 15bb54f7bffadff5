package board

import "math/rand"

// Scramble returns a board produced by walking `moves` random legal moves
// away from the goal of a side×side grid. Every board it returns is
// solvable, since each step is itself a legal move.
func Scramble(side, moves int, rng *rand.Rand) Board {
	adj := NewAdjacency(side)
	b := Goal(side * side)
	for i := 0; i < moves; i++ {
		blank, _ := b.BlankSlot()
		neighbors := adj[SlotToSquare(blank)]
		pick := neighbors[rng.Intn(len(neighbors))]
		b = ApplyMove(b, SquareToSlot(pick), blank)
	}
	return b
}

// UniformShuffle returns a uniformly random *solvable* board for a
// side×side grid. Unsolvable permutations (half of all shuffles) are
// rejected and redrawn.
func UniformShuffle(side int, rng *rand.Rand) Board {
	b := Goal(side * side)
	for {
		rng.Shuffle(len(b), func(i, j int) {
			b[i], b[j] = b[j], b[i]
		})
		if Solvable(b) {
			return b
		}
	}
}
