package sudoku

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsolvable is returned when backtracking exhausts every candidate
	// (or the node budget) without completing the grid.
	ErrUnsolvable = errors.New("no solution exists")

	// ErrGenerationFailed is returned when no unique-solution puzzle could
	// be produced within the retry budget.
	ErrGenerationFailed = errors.New("puzzle generation failed")
)

// InvalidAssignmentError reports an assignment of a value that is not in the
// target cell's domain. It always indicates a bug in the caller, never bad
// user input.
type InvalidAssignmentError struct {
	Row, Col, Value int
}

func (e InvalidAssignmentError) Error() string {
	return fmt.Sprintf(
		"invalid assignment: %d not in domain of cell %d:%d",
		e.Value, e.Row, e.Col,
	)
}
