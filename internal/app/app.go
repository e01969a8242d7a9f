package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/jefin08/Sudoku-2.0/internal/config"
	"github.com/jefin08/Sudoku-2.0/internal/database"
	"github.com/jefin08/Sudoku-2.0/internal/middleware"
)

type App struct {
	log     *logrus.Logger
	router  *http.ServeMux
	db      *pgxpool.Pool
	cookies *config.Cookies
	jwt     *config.JWT
	ws      *config.WebSocket
}

func New(log *logrus.Logger) *App {
	return &App{
		log:    log,
		router: http.NewServeMux(),
	}
}

// Start connects to the database, runs migrations, mounts the routes and
// serves until ctx is cancelled.
func (a *App) Start(ctx context.Context) error {
	db, err := database.ConnectAndMigrate(ctx)
	if err != nil {
		return fmt.Errorf("unable to connect to db: %w", err)
	}
	a.db = db
	defer db.Close()

	jwt, err := config.NewJWT()
	if err != nil {
		return fmt.Errorf("unable to read jwt config: %w", err)
	}
	a.jwt = jwt

	cookies, err := config.NewCookies(jwt)
	if err != nil {
		return fmt.Errorf("unable to read cookies config: %w", err)
	}
	a.cookies = cookies

	ws, err := config.NewWebSocket()
	if err != nil {
		return fmt.Errorf("unable to read ws config: %w", err)
	}
	a.ws = ws

	a.loadRoutes()

	server := &http.Server{
		Addr: config.Port(),
		Handler: middleware.Wrap(
			a.router,
			middleware.Cors(),
			middleware.Auth(cookies),
			middleware.Logging(a.log),
		),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	a.log.Info("ready to serve @ ", config.Port())

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	return g.Wait()
}
