package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/nba-roster-builder/internal/config"
	"github.com/preston-bernstein/nba-roster-builder/internal/logging"
	"github.com/preston-bernstein/nba-roster-builder/internal/runner"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_TUI_RUN") == "1" {
		return
	}

	cfg := config.Load()
	out, closeLog, err := runner.OpenLogOutput(cfg.Log.File)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "nba-roster-builder",
		Version: appVersion,
		Output:  out,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runner.New(cfg, logger).Run(ctx); err != nil {
		logger.Error("roster builder exited", "error", err)
		stop()
		_ = closeLog()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
