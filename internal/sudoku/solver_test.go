package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The classic example puzzle and its unique solution.
var testPuzzle = Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

var testSolution = Grid{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func TestSolve(t *testing.T) {
	solved, err := Solve(testPuzzle)
	require.NoError(t, err)
	assert.Equal(t, testSolution, solved)
}

func TestSolveIdempotent(t *testing.T) {
	solved, err := Solve(testSolution)
	require.NoError(t, err)
	assert.Equal(t, testSolution, solved)
}

func TestSolveDeterministic(t *testing.T) {
	first, err := Solve(Grid{})
	require.NoError(t, err)
	second, err := Solve(Grid{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSolveInconsistent(t *testing.T) {
	g := testPuzzle
	g[0][2] = 5 // duplicates the 5 at 0:0
	_, err := Solve(g)
	assert.ErrorIs(t, err, ErrUnsolvable)
}

func TestSolveEmptyDomain(t *testing.T) {
	// 0:0 is empty and consistent but has no candidate left: its row
	// holds 2..9 and its column holds a 1.
	var g Grid
	for c := 1; c < Size; c++ {
		g[0][c] = c + 1
	}
	g[5][0] = 1
	require.True(t, g.Consistent())
	_, err := Solve(g)
	assert.ErrorIs(t, err, ErrUnsolvable)
}

func TestCountSolutions(t *testing.T) {
	assert.Equal(t, 1, countSolutions(testPuzzle, 2))
	assert.Equal(t, 1, countSolutions(testSolution, 2))
	assert.Equal(t, 2, countSolutions(Grid{}, 2), "empty grid is ambiguous")

	g := testPuzzle
	g[0][2] = 5
	assert.Equal(t, 0, countSolutions(g, 2), "inconsistent grid")
}
