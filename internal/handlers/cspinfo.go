package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// CspInfo describes the techniques behind the solver. Static payload, no
// computation; kept for parity with the original service.
func CspInfo(log *logrus.Logger) http.HandlerFunc {
	payload := map[string]any{
		"solver": "CSP (Constraint Satisfaction Problem)",
		"techniques": []string{
			"MRV (Minimum Remaining Values) - Pick cell with fewest options",
			"Forward Checking - Remove assigned value from peers' domains",
			"Backtracking - Depth-first search with exact undo",
			"Uniqueness counting - Reject puzzles with a second solution",
		},
		"variables":   81,
		"constraints": "AllDifferent on each row, column, and 3x3 box",
	}
	return func(w http.ResponseWriter, r *http.Request) {
		sendJSONOrLog(w, log, payload)
	}
}
