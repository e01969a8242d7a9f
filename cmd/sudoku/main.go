package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/jefin08/Sudoku-2.0/internal/app"
	"github.com/jefin08/Sudoku-2.0/internal/config"
)

func main() {
	log, err := config.NewLogger()
	if err != nil {
		logrus.Fatal("unable to set up logging: ", err)
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	log.Info("starting up, development = ", config.Development())

	if err := app.New(log).Start(ctx); err != nil {
		log.Fatal("exit reason: ", err)
	}
}
