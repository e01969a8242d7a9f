package sudoku

import "math/rand/v2"

const (
	// MinClues is the lower bound on filled cells in a generated puzzle.
	MinClues = 28
	// DefaultRemovals matches the original service's default difficulty:
	// how many cells to try to clear from the solved grid.
	DefaultRemovals = 40

	generateRetries = 10
)

// Clues converts a removal-count difficulty into a target clue count,
// clamped so a puzzle always keeps at least MinClues filled cells.
func Clues(removals int) int {
	clues := Cells - removals
	if clues < MinClues {
		return MinClues
	}
	if clues > Cells {
		return Cells
	}
	return clues
}

// Generate produces a puzzle with exactly one solution and its solved grid.
// It first solves the empty grid with shuffled candidate order, then clears
// random cells one at a time, keeping a removal only if the puzzle still has
// a single solution. Carving stops once clues cells remain or no candidate
// cell can be cleared without losing uniqueness.
//
// All randomness flows through rnd, so a seeded generator reproduces the
// same puzzle.
func Generate(rnd *rand.Rand, clues int) (puzzle, solution Grid, err error) {
	if clues < MinClues {
		clues = MinClues
	}
	for range generateRetries {
		solution = Grid{}
		if err := solveRandom(&solution, rnd); err != nil {
			// cannot happen for an empty 9x9 grid under correct
			// propagation; a fresh attempt is all we can do
			continue
		}
		puzzle = solution
		carve(&puzzle, rnd, clues)
		return puzzle, solution, nil
	}
	return Grid{}, Grid{}, ErrGenerationFailed
}

// carve clears cells of g in random order, rejecting any removal that gives
// the puzzle a second solution.
func carve(g *Grid, rnd *rand.Rand, clues int) {
	order := rnd.Perm(Cells)
	for _, i := range order {
		if g.Filled() <= clues {
			return
		}
		v := g.At(i)
		if v == 0 {
			continue
		}
		g.set(i, 0)
		if countSolutions(*g, 2) != 1 {
			g.set(i, v)
		}
	}
}
