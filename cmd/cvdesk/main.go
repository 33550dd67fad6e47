package main

import (
	"context"
	"log"
	"os"

	"github.com/cvdesk/cvdesk/internal/buildinfo"
	"github.com/cvdesk/cvdesk/internal/client/cli"
	"github.com/cvdesk/cvdesk/internal/client/config"
	"github.com/cvdesk/cvdesk/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger, err := logging.NewZapLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() { _ = logger.Sync() }()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
