package handlers

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/jefin08/Sudoku-2.0/internal/config"
	"github.com/jefin08/Sudoku-2.0/internal/middleware"
	"github.com/jefin08/Sudoku-2.0/internal/repository"
)

type Records struct {
	log  *logrus.Logger
	repo *repository.Queries
}

func NewRecords(log *logrus.Logger, db *pgxpool.Pool) *Records {
	return &Records{log: log, repo: repository.New(db)}
}

func (h *Records) GetRecords(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseRecordsFilterDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.log, wrapError(err))
		return
	}

	h.respondWithRecords(w, r, repository.RecordFilter{
		Username:   dto.Username,
		Difficulty: dto.Difficulty,
	})
}

func (h *Records) GetOwnRecords(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.CtxPlayerClaims).(*config.PlayerClaims)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	dto, err := ParseRecordsFilterDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.log, wrapError(err))
		return
	}

	h.respondWithRecords(w, r, repository.RecordFilter{
		Username:   &claims.Username,
		Difficulty: dto.Difficulty,
	})
}

func (h *Records) respondWithRecords(
	w http.ResponseWriter, r *http.Request, filter repository.RecordFilter,
) {
	records, err := h.repo.GetRecords(r.Context(), filter)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.Error("failed to fetch records: ", err)
		return
	}
	if records == nil {
		records = []repository.Record{}
	}
	sendJSONOrLog(w, h.log, records)
}
