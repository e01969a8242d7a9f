package handlers

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/jefin08/Sudoku-2.0/internal/config"
	"github.com/jefin08/Sudoku-2.0/internal/middleware"
	"github.com/jefin08/Sudoku-2.0/internal/repository"
	"github.com/jefin08/Sudoku-2.0/internal/sudoku"
)

type GameHandler struct {
	log  *logrus.Logger
	repo *repository.Queries
	ws   *config.WebSocket
	rnd  *rand.Rand
}

func NewGameHandler(
	log *logrus.Logger,
	db *pgxpool.Pool,
	ws *config.WebSocket,
	rnd *rand.Rand,
) *GameHandler {
	return &GameHandler{
		log:  log,
		repo: repository.New(db),
		ws:   ws,
		rnd:  rnd,
	}
}

func (g *GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseNewGameDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(err))
		return
	}

	game, err := sudoku.NewGame(dto.Difficulty, g.rnd)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("unable to generate a new game: ", err)
		return
	}

	state, err := game.Bytes()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("unable to encode game state: ", err)
		return
	}

	params := repository.CreateSessionParams{
		Difficulty: int32(game.Difficulty),
		Clues:      int32(game.Puzzle.Filled()),
		State:      state,
	}
	if claims, ok := r.Context().Value(middleware.CtxPlayerClaims).(*config.PlayerClaims); ok {
		g.log.Debug("creating session for player ", claims.Username)
		params.PlayerID = &claims.PlayerId
	} else {
		g.log.Debug("creating anonymous session")
	}

	session, err := g.repo.CreateSession(r.Context(), params)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("unable to create game session: ", err)
		return
	}

	sendJSONOrLog(w, g.log, NewGameSessionDTO(
		session.GameSessionID, session.StartedAt, session.EndedAt, game,
	))
}

func (g *GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, g.log, NewGameSessionDTO(
		session.GameSessionID, session.StartedAt, session.EndedAt, game,
	))
}

func (g *GameHandler) Check(w http.ResponseWriter, r *http.Request) {
	board, err := ParseBoardDTO(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(err))
		return
	}

	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	game.Board = board
	valid, message := game.Check()
	if valid && session.EndedAt == nil {
		now := time.Now().UTC()
		session.EndedAt = &now
	}

	if !g.updateSession(w, r, session, game) {
		return
	}

	sendJSONOrLog(w, g.log, CheckResultDTO{Valid: valid, Message: message})
}

func (g *GameHandler) Hint(w http.ResponseWriter, r *http.Request) {
	board, err := ParseBoardDTO(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(err))
		return
	}

	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	game.Board = board
	hint, found := game.Hint()
	if !found {
		sendJSONOrLog(w, g.log, HintResultDTO{
			Success: false, Message: "No hints available",
		})
		return
	}

	if !g.updateSession(w, r, session, game) {
		return
	}

	sendJSONOrLog(w, g.log, HintResultDTO{Success: true, Hint: &hint})
}

func (g *GameHandler) Solve(w http.ResponseWriter, r *http.Request) {
	board, err := ParseBoardDTO(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(err))
		return
	}

	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	game.Board = board
	solved, conflicts, err := game.Solve()
	if conflicts == nil {
		conflicts = []sudoku.Conflict{}
	}
	if errors.Is(err, sudoku.ErrUnsolvable) {
		sendJSONOrLog(w, g.log, SolveResultDTO{
			Success:   false,
			Conflicts: conflicts,
			Message:   "No solution exists",
		})
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("solve failed: ", err)
		return
	}

	if !g.updateSession(w, r, session, game) {
		return
	}

	message := "Solved!"
	if len(conflicts) > 0 {
		message = fmt.Sprintf("Cleared %d error(s) and solved.", len(conflicts))
	}
	sendJSONOrLog(w, g.log, SolveResultDTO{
		Success:   true,
		Solution:  &solved,
		Conflicts: conflicts,
		Message:   message,
	})
}

// fetchSession loads the session named by the path and decodes its game
// state. On failure the response status is already written.
func (g *GameHandler) fetchSession(
	w http.ResponseWriter, r *http.Request,
) (*repository.GameSession, *sudoku.GameState, bool) {
	sessionId, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, nil, false
	}

	session, err := g.repo.GetSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("unable to fetch session from db: ", err)
		return nil, nil, false
	}

	game, err := sudoku.ParseGameStateFromBytes(session.State)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("db returned invalid game_session.state: ", err)
		return nil, nil, false
	}

	return session, game, true
}

func (g *GameHandler) updateSession(
	w http.ResponseWriter, r *http.Request,
	session *repository.GameSession, game *sudoku.GameState,
) bool {
	state, err := game.Bytes()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("unable to serialize game state: ", err)
		return false
	}

	err = g.repo.UpdateSession(r.Context(), repository.UpdateSessionParams{
		GameSessionID: session.GameSessionID,
		State:         state,
		Won:           game.Won,
		UsedSolve:     game.UsedSolve,
		EndedAt:       session.EndedAt,
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("unable to update session in db: ", err)
		return false
	}
	return true
}
