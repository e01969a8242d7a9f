package sudoku

import "fmt"

// Check validates a submitted board: valid iff the board is complete and no
// unit holds a duplicate value. The message explains the first violation
// found (rows, then columns, then boxes, then incompleteness) and is meant
// to be shown to the player as is.
func Check(board Grid) (bool, string) {
	for kind := Row; kind <= Box; kind++ {
		for n := range Size {
			var seen [Size + 1]bool
			for _, i := range unitCells(kind, n) {
				v := board.At(i)
				if v == 0 {
					continue
				}
				if seen[v] {
					return false, fmt.Sprintf("Duplicate in %s %d", kind, n+1)
				}
				seen[v] = true
			}
		}
	}
	if !board.Complete() {
		return false, "Puzzle incomplete"
	}
	return true, "Correct! Well done!"
}
