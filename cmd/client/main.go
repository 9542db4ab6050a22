package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/codecrafted/internal/buildinfo"
	"github.com/dmitrijs2005/codecrafted/internal/client/cli"
	"github.com/dmitrijs2005/codecrafted/internal/client/config"
	"github.com/dmitrijs2005/codecrafted/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.NewFromLevel(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
