package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/jefin08/Sudoku-2.0/internal/config"
	"github.com/jefin08/Sudoku-2.0/internal/middleware"
	"github.com/jefin08/Sudoku-2.0/internal/repository"
)

type Auth struct {
	log     *logrus.Logger
	repo    *repository.Queries
	cookies *config.Cookies
	jwt     *config.JWT
}

func NewAuth(
	log *logrus.Logger,
	db *pgxpool.Pool,
	cookies *config.Cookies,
	jwt *config.JWT,
) *Auth {
	return &Auth{
		log:     log,
		repo:    repository.New(db),
		cookies: cookies,
		jwt:     jwt,
	}
}

var (
	ErrBadAuthBody        = fmt.Errorf("request body must contain url-encoded username and password")
	ErrBadPasswordTooLong = fmt.Errorf("password too long")
	ErrUsernameTaken      = fmt.Errorf("username taken")
	ErrBadCredentials     = fmt.Errorf("invalid username or password")
)

type PlayerInfo struct {
	PlayerId int64  `json:"player_id"`
	Username string `json:"username"`
}

type Status struct {
	LoggedIn bool        `json:"logged_in"`
	Player   *PlayerInfo `json:"player,omitempty"`
}

func (h *Auth) Status(w http.ResponseWriter, r *http.Request) {
	var status *Status
	claims, ok := r.Context().Value(middleware.CtxPlayerClaims).(*config.PlayerClaims)
	if ok {
		status = &Status{
			LoggedIn: true,
			Player:   &PlayerInfo{claims.PlayerId, claims.Username},
		}
		token, err := h.jwt.Sign(claims)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			h.log.Error("unable to tokenize checked claims: ", err)
			return
		}
		h.cookies.Refresh(w, token)
	} else {
		status = &Status{LoggedIn: false}
		h.cookies.Clear(w)
	}

	sendJSONOrLog(w, h.log, status)
}

func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")
	if username == "" || password == "" {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.log, wrapError(ErrBadAuthBody))
		return
	}

	passwordBytes := []byte(password)
	if len(passwordBytes) > 72 {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.log, wrapError(ErrBadPasswordTooLong))
		return
	}

	hash, err := bcrypt.GenerateFromPassword(passwordBytes, bcrypt.DefaultCost)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.Error("unable to hash password: ", err)
		return
	}

	player, err := h.repo.CreatePlayer(r.Context(), repository.CreatePlayerParams{
		Username:     username,
		PasswordHash: hash,
	})
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) &&
		pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		w.WriteHeader(http.StatusConflict)
		sendJSONOrLog(w, h.log, wrapError(ErrUsernameTaken))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.Error("unable to insert player: ", err)
		return
	}

	token, err := h.jwt.Sign(
		config.NewPlayerClaims(player.PlayerID, player.Username),
	)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.Error("unable to create a jwt token: ", err)
		return
	}

	h.cookies.Refresh(w, token)
}

func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")
	if username == "" || password == "" {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.log, wrapError(ErrBadAuthBody))
		return
	}

	player, err := h.repo.FetchPlayer(r.Context(), username)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusUnauthorized)
		sendJSONOrLog(w, h.log, wrapError(ErrBadCredentials))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.Error("could not fetch player from db: ", err)
		return
	}

	err = bcrypt.CompareHashAndPassword(player.PasswordHash, []byte(password))
	if err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			h.log.Error("bcrypt compare error: ", err)
		}
		w.WriteHeader(http.StatusUnauthorized)
		sendJSONOrLog(w, h.log, wrapError(ErrBadCredentials))
		return
	}

	token, err := h.jwt.Sign(
		config.NewPlayerClaims(player.PlayerID, player.Username),
	)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.Error("failed to sign player claims: ", err)
		return
	}

	if err := h.cookies.Refresh(w, token); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.Error("failed to set auth cookies: ", err)
	}
}

func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	h.cookies.Clear(w)
}
