package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/gorilla/schema"

	"github.com/jefin08/Sudoku-2.0/internal/sudoku"
)

type NewGameDTO struct {
	Difficulty int `schema:"difficulty"`
}

// ParseNewGameDTO reads the optional difficulty (cells to clear) from the
// query string, defaulting to the original service's 40.
func ParseNewGameDTO(src map[string][]string) (NewGameDTO, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	dto := NewGameDTO{Difficulty: sudoku.DefaultRemovals}
	if err := dec.Decode(&dto, src); err != nil {
		return dto, err
	}
	if dto.Difficulty < 0 || dto.Difficulty >= sudoku.Cells {
		return dto, fmt.Errorf("difficulty must be in [0,%d)", sudoku.Cells)
	}
	return dto, nil
}

type RecordsFilterDTO struct {
	Username   *string `schema:"username"`
	Difficulty *int32  `schema:"difficulty"`
}

func ParseRecordsFilterDTO(src map[string][]string) (RecordsFilterDTO, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var dto RecordsFilterDTO
	err := dec.Decode(&dto, src)
	return dto, err
}

type boardDTO struct {
	Board [][]int `json:"board"`
}

// ParseBoardDTO decodes and validates a submitted board. Shape and value
// range are enforced here so the engine only ever sees well-formed 9x9
// grids.
func ParseBoardDTO(r io.Reader) (sudoku.Grid, error) {
	var dto boardDTO
	if err := json.NewDecoder(r).Decode(&dto); err != nil {
		return sudoku.Grid{}, fmt.Errorf("invalid request body: %w", err)
	}
	return gridFromRows(dto.Board)
}

func gridFromRows(rows [][]int) (sudoku.Grid, error) {
	var g sudoku.Grid
	if len(rows) != sudoku.Size {
		return g, fmt.Errorf("board must have %d rows", sudoku.Size)
	}
	for r, row := range rows {
		if len(row) != sudoku.Size {
			return g, fmt.Errorf("row %d must have %d cells", r, sudoku.Size)
		}
		for c, v := range row {
			if v < 0 || v > sudoku.Size {
				return g, fmt.Errorf("cell %d:%d holds %d, want 0..9", r, c, v)
			}
			g[r][c] = v
		}
	}
	return g, nil
}

type GameSessionDTO struct {
	SessionID  string      `json:"session_id"`
	Difficulty int         `json:"difficulty"`
	Clues      int         `json:"clues"`
	Puzzle     sudoku.Grid `json:"puzzle"`
	Solution   sudoku.Grid `json:"solution"`
	Board      sudoku.Grid `json:"board"`
	Won        bool        `json:"won"`
	UsedSolve  bool        `json:"used_solve"`
	HintsUsed  int         `json:"hints_used"`
	StartedAt  int64       `json:"started_at"`
	EndedAt    *int64      `json:"ended_at,omitempty"`
}

func NewGameSessionDTO(
	sessionId int64, startedAt time.Time, endedAt *time.Time,
	game *sudoku.GameState,
) GameSessionDTO {
	var ended *int64
	if endedAt != nil {
		e := endedAt.UnixMilli()
		ended = &e
	}
	return GameSessionDTO{
		SessionID:  strconv.FormatInt(sessionId, 10),
		Difficulty: game.Difficulty,
		Clues:      game.Puzzle.Filled(),
		Puzzle:     game.Puzzle,
		Solution:   game.Solution,
		Board:      game.Board,
		Won:        game.Won,
		UsedSolve:  game.UsedSolve,
		HintsUsed:  game.HintsUsed,
		StartedAt:  startedAt.UnixMilli(),
		EndedAt:    ended,
	}
}

type CheckResultDTO struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

type HintResultDTO struct {
	Success bool         `json:"success"`
	Hint    *sudoku.Hint `json:"hint,omitempty"`
	Message string       `json:"message,omitempty"`
}

type SolveResultDTO struct {
	Success   bool              `json:"success"`
	Solution  *sudoku.Grid      `json:"solution,omitempty"`
	Conflicts []sudoku.Conflict `json:"conflicts"`
	Message   string            `json:"message"`
}
