package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	valid, message := Check(testSolution)
	assert.True(t, valid)
	assert.Equal(t, "Correct! Well done!", message)
}

func TestCheckIncomplete(t *testing.T) {
	g := testSolution
	g[4][4] = 0
	valid, message := Check(g)
	assert.False(t, valid)
	assert.Equal(t, "Puzzle incomplete", message)
}

func TestCheckDuplicates(t *testing.T) {
	tests := []struct {
		name    string
		build   func() Grid
		message string
	}{
		{
			name: "row",
			build: func() Grid {
				var g Grid
				g[0][0], g[0][5] = 7, 7
				return g
			},
			message: "Duplicate in row 1",
		},
		{
			name: "column",
			build: func() Grid {
				var g Grid
				g[2][6], g[7][6] = 3, 3
				return g
			},
			message: "Duplicate in column 7",
		},
		{
			name: "box",
			build: func() Grid {
				var g Grid
				g[0][0], g[1][1] = 5, 5
				return g
			},
			message: "Duplicate in box 1",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			valid, message := Check(test.build())
			assert.False(t, valid)
			assert.Equal(t, test.message, message)
		})
	}
}
