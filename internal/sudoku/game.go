package sudoku

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"math/rand/v2"
)

// GameState is the per-game envelope held by the session layer between
// requests. The engine itself is stateless: every operation below is a thin
// wrapper that feeds the stored grids to the pure functions of this package.
type GameState struct {
	Difficulty int // cells the generator was asked to clear
	Puzzle     Grid
	Solution   Grid
	Board      Grid
	Won        bool
	UsedSolve  bool
	HintsUsed  int
}

// NewGame generates a fresh puzzle/solution pair. difficulty is the number
// of cells to clear from the solved grid (clamped, see Clues).
func NewGame(difficulty int, rnd *rand.Rand) (*GameState, error) {
	puzzle, solution, err := Generate(rnd, Clues(difficulty))
	if err != nil {
		return nil, err
	}
	return &GameState{
		Difficulty: difficulty,
		Puzzle:     puzzle,
		Solution:   solution,
		Board:      puzzle,
	}, nil
}

// ParseGameStateFromBytes decodes a state blob produced by Bytes.
func ParseGameStateFromBytes(buf []byte) (*GameState, error) {
	var game GameState
	err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&game)
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *GameState) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ValidatePosition reports whether (r, c) is on the board.
func (s *GameState) ValidatePosition(r, c int) bool {
	return 0 <= r && r < Size && 0 <= c && c < Size
}

// Fixed reports whether (r, c) holds an original clue.
func (s *GameState) Fixed(r, c int) bool {
	return s.Puzzle[r][c] != 0
}

// SetCell writes v (0 clears) into a non-clue cell of the working board.
func (s *GameState) SetCell(r, c, v int) error {
	if !s.ValidatePosition(r, c) || v < 0 || v > Size {
		return fmt.Errorf("invalid move %d at %d:%d", v, r, c)
	}
	if s.Fixed(r, c) {
		return fmt.Errorf("cell %d:%d is a clue", r, c)
	}
	s.Board[r][c] = v
	return nil
}

// Check validates the working board and marks the game won when it is a
// correct solution.
func (s *GameState) Check() (bool, string) {
	valid, message := Check(s.Board)
	if valid {
		s.Won = true
	}
	return valid, message
}

// Hint reveals the first empty or incorrect cell on the working board and
// applies it.
func (s *GameState) Hint() (Hint, bool) {
	h, ok := FindHint(s.Board, s.Solution)
	if !ok {
		return Hint{}, false
	}
	s.Board[h.Row][h.Col] = h.Value
	s.HintsUsed++
	return h, true
}

// Solve repairs the working board (clearing conflicting cells) and completes
// it. The finished grid replaces the working board and the game is flagged
// as machine-solved.
func (s *GameState) Solve() (Grid, []Conflict, error) {
	solved, conflicts, err := Repair(s.Puzzle, s.Board)
	if err != nil {
		return Grid{}, conflicts, err
	}
	s.Board = solved
	s.UsedSolve = true
	return solved, conflicts, nil
}
