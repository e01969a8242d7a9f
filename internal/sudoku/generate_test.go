package sudoku

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClues(t *testing.T) {
	assert.Equal(t, Cells, Clues(0))
	assert.Equal(t, 41, Clues(DefaultRemovals))
	assert.Equal(t, MinClues, Clues(60))
	assert.Equal(t, Cells, Clues(-5))
}

func TestGenerate(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))

	puzzle, solution, err := Generate(rnd, Clues(DefaultRemovals))
	require.NoError(t, err)

	assert.True(t, solution.Complete())
	assert.True(t, solution.Consistent())
	assert.True(t, puzzle.Consistent())
	assert.GreaterOrEqual(t, puzzle.Filled(), MinClues)

	for r := range Size {
		for c := range Size {
			if puzzle[r][c] != 0 {
				assert.Equal(t, solution[r][c], puzzle[r][c])
			}
		}
	}

	solved, err := Solve(puzzle)
	require.NoError(t, err)
	assert.Equal(t, solution, solved)

	assert.Equal(t, 1, countSolutions(puzzle, 2), "puzzle must be unique")
}

func TestGenerateNearFull(t *testing.T) {
	// a removal count below Size leaves a denser grid than any normal
	// difficulty; generation must still succeed, not retry itself to death
	for removals := range 9 {
		rnd := rand.New(rand.NewPCG(uint64(removals), 99))
		puzzle, solution, err := Generate(rnd, Clues(removals))
		require.NoError(t, err, "removals=%d", removals)

		assert.GreaterOrEqual(t, puzzle.Filled(), Cells-removals)
		assert.True(t, solution.Complete())
		assert.True(t, puzzle.Consistent())
		assert.Equal(t, 1, countSolutions(puzzle, 2))
	}
}

func TestGenerateReproducible(t *testing.T) {
	p1, s1, err := Generate(rand.New(rand.NewPCG(7, 11)), Clues(DefaultRemovals))
	require.NoError(t, err)
	p2, s2, err := Generate(rand.New(rand.NewPCG(7, 11)), Clues(DefaultRemovals))
	require.NoError(t, err)

	assert.Equal(t, s1, s2)
	assert.Equal(t, p1, p2)
}

func TestGenerateAll(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	t.Parallel()

	tests := []struct {
		name     string
		removals int
	}{
		{"easy(25)", 25},
		{"medium(40)", 40},
		{"hard(53)", 53},
		{"clamped(70)", 70},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			for seed := range uint64(5) {
				rnd := rand.New(rand.NewPCG(seed, seed+1))
				puzzle, solution, err := Generate(rnd, Clues(test.removals))
				if err != nil {
					t.Fatalf("could not generate %s: %v", test.name, err)
				}
				if filled := puzzle.Filled(); filled < MinClues {
					t.Errorf("%s: %d clues, want at least %d", test.name, filled, MinClues)
				}
				if countSolutions(puzzle, 2) != 1 {
					t.Errorf("%s: puzzle is not unique", test.name)
				}
				if solved, err := Solve(puzzle); err != nil || solved != solution {
					t.Errorf("%s: puzzle does not solve back to its solution", test.name)
				}
			}
		})
	}
}
