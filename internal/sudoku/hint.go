package sudoku

// Hint reveals the solution value of a single cell.
type Hint struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Value int `json:"value"`
}

// FindHint returns the first cell, in row-major order, where board is empty
// or disagrees with solution. ok is false when the board already matches the
// solution everywhere.
func FindHint(board, solution Grid) (h Hint, ok bool) {
	for r := range Size {
		for c := range Size {
			if board[r][c] != solution[r][c] {
				return Hint{Row: r, Col: c, Value: solution[r][c]}, true
			}
		}
	}
	return Hint{}, false
}
