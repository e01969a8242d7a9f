package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPeersOf(t *testing.T) {
	for r := range Size {
		for c := range Size {
			self := r*Size + c
			seen := map[int]bool{}
			for _, j := range PeersOf(r, c) {
				assert.NotEqual(t, self, j, "cell is not its own peer")
				assert.False(t, seen[j], "peers must be unique")
				seen[j] = true
			}
			assert.Len(t, seen, 20)
		}
	}
}

func TestPeersOfCorner(t *testing.T) {
	peers := PeersOf(0, 0)
	contains := func(r, c int) bool {
		for _, j := range peers {
			if j == r*Size+c {
				return true
			}
		}
		return false
	}
	assert.True(t, contains(0, 8), "same row")
	assert.True(t, contains(8, 0), "same column")
	assert.True(t, contains(2, 2), "same box")
	assert.False(t, contains(3, 3), "no shared unit")
}

func TestUnitsOf(t *testing.T) {
	u := UnitsOf(4, 4)
	assert.Equal(t, 4*Size, u[Row][0])
	assert.Equal(t, 4*Size+8, u[Row][8])
	assert.Equal(t, 4, u[Column][0])
	assert.Equal(t, 8*Size+4, u[Column][8])
	assert.Equal(t, 3*Size+3, u[Box][0])
	assert.Equal(t, 5*Size+5, u[Box][8])
}

func TestConsistent(t *testing.T) {
	var g Grid
	assert.True(t, g.Consistent(), "empty grid")

	g[0][0], g[0][8] = 7, 7
	assert.False(t, g.Consistent(), "row duplicate")

	g = Grid{}
	g[0][4], g[8][4] = 2, 2
	assert.False(t, g.Consistent(), "column duplicate")

	g = Grid{}
	g[0][0], g[2][2] = 9, 9
	assert.False(t, g.Consistent(), "box duplicate")

	g = Grid{}
	g[0][0], g[1][3] = 5, 5
	assert.True(t, g.Consistent(), "no shared unit")
}

func TestCompleteAndFilled(t *testing.T) {
	var g Grid
	assert.False(t, g.Complete())
	assert.Equal(t, 0, g.Filled())

	g = testSolution
	assert.True(t, g.Complete())
	assert.Equal(t, Cells, g.Filled())

	g[5][5] = 0
	assert.False(t, g.Complete())
	assert.Equal(t, Cells-1, g.Filled())
}
