// Package main is the entry point for the shipping CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"shipping/cmd"
	"shipping/internal/adapters/in/cli"
	"shipping/internal/pkg/logging"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		return err
	}

	// Logs go to stderr so stdout stays valid JSON.
	logConfig := configs.Logging()
	logConfig.Output = "stderr"
	if configs.LogLevel == "info" {
		logConfig.Level = "warn"
	}
	logger, err := logging.New(logConfig)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	app, err := cmd.NewCompositionRoot(configs, logger, prometheus.NewRegistry())
	if err != nil {
		return err
	}

	return cli.NewRootCommand(app.CreateCLIHandlers(), os.Stdout).ExecuteContext(context.Background())
}
