package app

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/jefin08/Sudoku-2.0/internal/handlers"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (a *App) loadRoutes() {
	auth := handlers.NewAuth(a.log, a.db, a.cookies, a.jwt)
	game := handlers.NewGameHandler(a.log, a.db, a.ws, createRand())
	records := handlers.NewRecords(a.log, a.db)

	a.router.HandleFunc("POST /v1/register", auth.Register)
	a.router.HandleFunc("POST /v1/login", auth.Login)
	a.router.HandleFunc("POST /v1/logout", auth.Logout)
	a.router.HandleFunc("GET /v1/status", auth.Status)

	a.router.HandleFunc("GET /v1/records", records.GetRecords)
	a.router.HandleFunc("GET /v1/myrecords", records.GetOwnRecords)

	a.router.HandleFunc("POST /v1/game", game.NewGame)
	a.router.HandleFunc("GET /v1/game/{id}", game.Fetch)
	a.router.HandleFunc("POST /v1/game/{id}/check", game.Check)
	a.router.HandleFunc("POST /v1/game/{id}/hint", game.Hint)
	a.router.HandleFunc("POST /v1/game/{id}/solve", game.Solve)
	a.router.HandleFunc("/v1/game/{id}/connect", game.ConnectWS)

	a.router.HandleFunc("GET /v1/csp-info", handlers.CspInfo(a.log))
}
