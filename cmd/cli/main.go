package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/doorbell/internal/client/cli"
	"github.com/dmitrijs2005/doorbell/internal/client/config"
	"github.com/dmitrijs2005/doorbell/internal/logging"
)

// Set with -ldflags "-X main.buildVersion=..."
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
)

func main() {

	fmt.Fprintf(os.Stdout, "Build version: %s\nBuild date: %s\n", buildVersion, buildDate)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}
	logger := logging.New(os.Stderr, level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("%v", err)
		stop()
		os.Exit(1)
	}
}
