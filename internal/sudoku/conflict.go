package sudoku

import (
	"fmt"
	"strings"
)

// Conflict describes one board cell whose value contradicts a fixed clue or
// a uniqueness constraint, with a player-readable reason.
type Conflict struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Value  int    `json:"value"`
	Reason string `json:"reason"`
}

// Analyze compares board against the puzzle's fixed clues and the
// AllDifferent units, in row-major order. A cell that differs from a fixed
// clue is reported as overwritten/cleared; a fixed cell that still matches
// its clue is correct by definition and never flagged, even when a wrong
// user cell duplicates it (the user cell is the offender). Any other
// non-empty cell sharing its value with a peer is reported with the unit
// type and the peer's coordinate. Coordinates in reason texts are 1-based.
func Analyze(puzzle, board Grid) []Conflict {
	var conflicts []Conflict
	for r := range Size {
		for c := range Size {
			if puzzle[r][c] != 0 {
				if board[r][c] != puzzle[r][c] {
					conflicts = append(conflicts, Conflict{
						Row: r, Col: c, Value: board[r][c],
						Reason: fmt.Sprintf(
							"clue overwritten/cleared: cell must stay %d",
							puzzle[r][c],
						),
					})
				}
				continue
			}
			v := board[r][c]
			if v == 0 {
				continue
			}
			if reason := duplicateReason(&board, r, c, v); reason != "" {
				conflicts = append(conflicts, Conflict{
					Row: r, Col: c, Value: v, Reason: reason,
				})
			}
		}
	}
	return conflicts
}

// duplicateReason collects one reason per unit kind in which (r, c) shares
// its value with another cell, joined like the original service did.
func duplicateReason(board *Grid, r, c, v int) string {
	self := r*Size + c
	var reasons []string
	for kind := Row; kind <= Box; kind++ {
		for _, j := range units[self][kind] {
			if j != self && board.At(j) == v {
				reasons = append(reasons, fmt.Sprintf(
					"duplicate %d in %s (also at row %d, column %d)",
					v, unitLabel(kind, r, c), j/Size+1, j%Size+1,
				))
				break
			}
		}
	}
	return strings.Join(reasons, "; ")
}

func unitLabel(kind UnitKind, r, c int) string {
	switch kind {
	case Row:
		return fmt.Sprintf("row %d", r+1)
	case Column:
		return fmt.Sprintf("column %d", c+1)
	default:
		return fmt.Sprintf("box %d", (r/boxes)*boxes+c/boxes+1)
	}
}

// Repair clears every conflicting cell of board, restores the puzzle's
// clues and completes the result with the solver. The conflict list is
// returned alongside the solution so the caller can report what was
// cleared; on ErrUnsolvable the returned grid is zero.
func Repair(puzzle, board Grid) (Grid, []Conflict, error) {
	conflicts := Analyze(puzzle, board)
	cleaned := board
	for _, c := range conflicts {
		cleaned[c.Row][c.Col] = 0
	}
	for r := range Size {
		for c := range Size {
			if puzzle[r][c] != 0 {
				cleaned[r][c] = puzzle[r][c]
			}
		}
	}
	solved, err := Solve(cleaned)
	if err != nil {
		return Grid{}, conflicts, err
	}
	return solved, conflicts, nil
}
