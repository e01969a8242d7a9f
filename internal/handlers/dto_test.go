package handlers

import (
	"fmt"
	"math/rand/v2"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jefin08/Sudoku-2.0/internal/sudoku"
)

func TestParseNewGameDTO(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    int
		wantErr bool
	}{
		{"default", "", sudoku.DefaultRemovals, false},
		{"explicit", "difficulty=53", 53, false},
		{"zero", "difficulty=0", 0, false},
		{"negative", "difficulty=-1", 0, true},
		{"too large", "difficulty=81", 0, true},
		{"not a number", "difficulty=hard", 0, true},
		{"unknown keys ignored", "difficulty=30&foo=bar", 30, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			dto, err := ParseNewGameDTO(values)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, dto.Difficulty)
		})
	}
}

func TestParseRecordsFilterDTO(t *testing.T) {
	values, err := url.ParseQuery("username=alice&difficulty=40")
	require.NoError(t, err)

	dto, err := ParseRecordsFilterDTO(values)
	require.NoError(t, err)
	require.NotNil(t, dto.Username)
	assert.Equal(t, "alice", *dto.Username)
	require.NotNil(t, dto.Difficulty)
	assert.Equal(t, int32(40), *dto.Difficulty)

	dto, err = ParseRecordsFilterDTO(url.Values{})
	require.NoError(t, err)
	assert.Nil(t, dto.Username)
	assert.Nil(t, dto.Difficulty)
}

func TestParseBoardDTO(t *testing.T) {
	body := `{"board":[
		[5,3,0,0,7,0,0,0,0],
		[6,0,0,1,9,5,0,0,0],
		[0,9,8,0,0,0,0,6,0],
		[8,0,0,0,6,0,0,0,3],
		[4,0,0,8,0,3,0,0,1],
		[7,0,0,0,2,0,0,0,6],
		[0,6,0,0,0,0,2,8,0],
		[0,0,0,4,1,9,0,0,5],
		[0,0,0,0,8,0,0,7,9]]}`

	g, err := ParseBoardDTO(strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, 5, g[0][0])
	assert.Equal(t, 9, g[8][8])
}

func TestParseBoardDTOErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "not json"},
		{"missing rows", `{"board":[[1,2,3,4,5,6,7,8,9]]}`},
		{"short row", `{"board":[[1],[],[],[],[],[],[],[],[]]}`},
		{"value out of range", `{"board":[
			[10,0,0,0,0,0,0,0,0],
			[0,0,0,0,0,0,0,0,0],
			[0,0,0,0,0,0,0,0,0],
			[0,0,0,0,0,0,0,0,0],
			[0,0,0,0,0,0,0,0,0],
			[0,0,0,0,0,0,0,0,0],
			[0,0,0,0,0,0,0,0,0],
			[0,0,0,0,0,0,0,0,0],
			[0,0,0,0,0,0,0,0,0]]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBoardDTO(strings.NewReader(tt.body))
			assert.Error(t, err)
		})
	}
}

func TestExecuteCommand(t *testing.T) {
	game, err := sudoku.NewGame(40, rand.New(rand.NewPCG(7, 8)))
	require.NoError(t, err)

	require.Error(t, executeCommand(game, ""))
	require.Error(t, executeCommand(game, "x"))
	require.Error(t, executeCommand(game, "s 1 2"))
	require.Error(t, executeCommand(game, "s a b c"))
	require.NoError(t, executeCommand(game, "g"))

	r, c := -1, -1
	for i := 0; i < sudoku.Cells && r < 0; i++ {
		if game.Board[i/sudoku.Size][i%sudoku.Size] == 0 {
			r, c = i/sudoku.Size, i%sudoku.Size
		}
	}
	require.GreaterOrEqual(t, r, 0)

	require.NoError(t, executeCommand(game, fmt.Sprintf("s %d %d %d", r, c, 5)))
	assert.Equal(t, 5, game.Board[r][c])

	require.NoError(t, executeCommand(game, fmt.Sprintf("e %d %d", r, c)))
	assert.Equal(t, 0, game.Board[r][c])

	require.NoError(t, executeCommand(game, "h"))
	assert.Equal(t, 1, game.HintsUsed)

	require.NoError(t, executeCommand(game, "a"))
	assert.True(t, game.UsedSolve)

	require.NoError(t, executeCommand(game, "k"))
	assert.True(t, game.Won)
}
