package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindHintSolvedBoard(t *testing.T) {
	_, ok := FindHint(testSolution, testSolution)
	assert.False(t, ok)
}

func TestFindHintEmptyCell(t *testing.T) {
	board := testSolution
	board[3][4] = 0

	h, ok := FindHint(board, testSolution)
	require.True(t, ok)
	assert.Equal(t, Hint{Row: 3, Col: 4, Value: testSolution[3][4]}, h)
}

func TestFindHintWrongCell(t *testing.T) {
	board := testSolution
	board[6][1] = board[6][1]%Size + 1 // any wrong value

	h, ok := FindHint(board, testSolution)
	require.True(t, ok)
	assert.Equal(t, Hint{Row: 6, Col: 1, Value: testSolution[6][1]}, h)
}

func TestFindHintRowMajorOrder(t *testing.T) {
	board := testSolution
	board[2][7] = 0
	board[5][1] = 0

	h, ok := FindHint(board, testSolution)
	require.True(t, ok)
	assert.Equal(t, 2, h.Row)
	assert.Equal(t, 7, h.Col)
}
