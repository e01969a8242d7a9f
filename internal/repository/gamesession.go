package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

type GameSession struct {
	GameSessionID int64
	PlayerID      *int64
	Difficulty    int32
	Clues         int32
	Won           bool
	UsedSolve     bool
	State         []byte
	StartedAt     time.Time
	EndedAt       *time.Time
}

type CreateSessionParams struct {
	PlayerID   *int64
	Difficulty int32
	Clues      int32
	State      []byte
}

func (q *Queries) CreateSession(
	ctx context.Context, params CreateSessionParams,
) (*GameSession, error) {
	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO game_session (
			player_id, difficulty, clues, state
		)
		VALUES (
			@player_id, @difficulty, @clues, @state
		)
		RETURNING *`,
		pgx.NamedArgs{
			"player_id":  params.PlayerID,
			"difficulty": params.Difficulty,
			"clues":      params.Clues,
			"state":      params.State,
		},
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}

func (q *Queries) GetSession(ctx context.Context, gameSessionId int64) (*GameSession, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT * FROM game_session WHERE game_session_id = $1",
		gameSessionId,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}

type UpdateSessionParams struct {
	GameSessionID int64
	State         []byte
	Won           bool
	UsedSolve     bool
	EndedAt       *time.Time
}

func (q *Queries) UpdateSession(ctx context.Context, params UpdateSessionParams) error {
	_, err := q.db.Exec(
		ctx,
		`UPDATE game_session
		SET state = @state
			, won = @won
			, used_solve = @used_solve
			, ended_at = @ended_at
		WHERE game_session_id = @game_session_id`,
		pgx.NamedArgs{
			"game_session_id": params.GameSessionID,
			"state":           params.State,
			"won":             params.Won,
			"used_solve":      params.UsedSolve,
			"ended_at":        params.EndedAt,
		},
	)
	return err
}
