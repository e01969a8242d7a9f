package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
)

type Record struct {
	GameSessionID int64   `json:"game_session_id"`
	Username      *string `json:"username"`
	Difficulty    int32   `json:"difficulty"`
	Clues         int32   `json:"clues"`
	PlaytimeMs    float64 `json:"playtime_ms"`
}

type RecordFilter struct {
	Username   *string
	Difficulty *int32
}

func (f RecordFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.Username != nil {
		clauses = append(clauses, "username = @username")
		args["username"] = *f.Username
	}
	if f.Difficulty != nil {
		clauses = append(clauses, "difficulty = @difficulty")
		args["difficulty"] = *f.Difficulty
	}
	return strings.Join(clauses, " AND "), args
}

// GetRecords lists completed games ordered by playtime, fastest first.
// Machine-solved games never count.
func (q *Queries) GetRecords(
	ctx context.Context, filter RecordFilter,
) ([]Record, error) {
	query := `
	SELECT
		game_session_id,
		username,
		difficulty,
		clues,
		(
			extract('epoch' from ended_at) -
			extract('epoch' from started_at)
		) * 1000 playtime_ms
	FROM game_session
		LEFT OUTER JOIN player USING (player_id)
	WHERE
		won = true
		AND used_solve = false
		AND ended_at IS NOT NULL
	`

	whereClause, args := filter.WhereClause()
	if whereClause != "" {
		query += " AND " + whereClause
	}

	query += " ORDER BY playtime_ms;"

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Record])
}
