package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/paperdock/paperdock/internal/client/cli"
	"github.com/paperdock/paperdock/internal/client/config"
	"github.com/paperdock/paperdock/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
}
