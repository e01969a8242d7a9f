// CSP formulation after the classic AllDifferent decomposition:
// 81 variables, domains {1..9}, 27 AllDifferent units (rows, columns, boxes).

package sudoku

import (
	"fmt"
	"strings"
)

const (
	// Size is the side length of the board.
	Size = 9
	// Cells is the total number of cells.
	Cells = Size * Size
	boxes = 3
)

// Grid is a 9x9 sudoku board. A zero value means the cell is empty.
type Grid [Size][Size]int

// UnitKind names the three constraint-unit shapes a cell belongs to.
type UnitKind int

const (
	Row UnitKind = iota
	Column
	Box
)

func (k UnitKind) String() string {
	switch k {
	case Row:
		return "row"
	case Column:
		return "column"
	case Box:
		return "box"
	}
	return "unit"
}

var (
	// units[i] holds the 3 unit cell lists (row, column, box) of cell i.
	units [Cells][3][Size]int
	// peers[i] holds the 20 other cells sharing a unit with cell i.
	peers [Cells][20]int
)

func init() {
	for i := range Cells {
		r, c := i/Size, i%Size
		for k := range Size {
			units[i][Row][k] = r*Size + k
			units[i][Column][k] = k*Size + c
		}
		br, bc := r/boxes*boxes, c/boxes*boxes
		for k := range Size {
			units[i][Box][k] = (br+k/boxes)*Size + (bc + k%boxes)
		}
		seen := map[int]bool{i: true}
		n := 0
		for _, unit := range units[i] {
			for _, j := range unit {
				if !seen[j] {
					seen[j] = true
					peers[i][n] = j
					n++
				}
			}
		}
	}
}

// UnitsOf returns the row, column and box cell lists containing (r, c).
// Cells are encoded as row*9+col indices.
func UnitsOf(r, c int) [3][Size]int {
	return units[r*Size+c]
}

// PeersOf returns the 20 cells sharing a unit with (r, c), as row*9+col
// indices.
func PeersOf(r, c int) [20]int {
	return peers[r*Size+c]
}

// At returns the value at cell index i.
func (g *Grid) At(i int) int { return g[i/Size][i%Size] }

func (g *Grid) set(i, v int) { g[i/Size][i%Size] = v }

// Complete reports whether every cell is filled.
func (g *Grid) Complete() bool {
	for r := range Size {
		for c := range Size {
			if g[r][c] == 0 {
				return false
			}
		}
	}
	return true
}

// Consistent reports whether no unit holds a duplicate non-zero value.
func (g *Grid) Consistent() bool {
	for kind := Row; kind <= Box; kind++ {
		for n := range Size {
			var seen [Size + 1]bool
			for _, i := range unitCells(kind, n) {
				v := g.At(i)
				if v == 0 {
					continue
				}
				if seen[v] {
					return false
				}
				seen[v] = true
			}
		}
	}
	return true
}

// Filled returns the number of non-empty cells.
func (g *Grid) Filled() int {
	n := 0
	for r := range Size {
		for c := range Size {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// unitCells returns the cell indices of the n-th unit of the given kind,
// n in [0,8]. Box n covers rows 3*(n/3).. and columns 3*(n%3)...
func unitCells(kind UnitKind, n int) [Size]int {
	switch kind {
	case Row:
		return units[n*Size][Row]
	case Column:
		return units[n][Column]
	default:
		return units[(n/boxes*boxes)*Size+(n%boxes*boxes)][Box]
	}
}

func (g *Grid) String() string {
	var b strings.Builder
	for r := range Size {
		for c := range Size {
			if g[r][c] == 0 {
				fmt.Fprint(&b, ". ")
			} else {
				fmt.Fprintf(&b, "%d ", g[r][c])
			}
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
