// Command frameseq is the CLI entrypoint for the frameseq sequence tool.
//
// It parses flags, validates configuration, and either runs tool
// diagnostics (--check) or the discover/aggregate/dispatch pipeline.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/backmassage/frameseq/internal/check"
	"github.com/backmassage/frameseq/internal/config"
	"github.com/backmassage/frameseq/internal/display"
	"github.com/backmassage/frameseq/internal/logging"
	"github.com/backmassage/frameseq/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build" these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "frameseq: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "frameseq: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "frameseq: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	display.PrintBanner()

	if cfg.CheckOnly {
		check.RunCheck(&cfg, log)
		return 0
	}

	if fi, err := os.Stat(cfg.InputDir); err != nil || !fi.IsDir() {
		log.Error("Input directory not found: %s", cfg.InputDir)
		return 1
	}

	log.Info("=== frameseq v%s (%s) ===", version, commit)
	log.Info("In: %s", cfg.InputDir)

	// Fail fast if the tool the selected action needs is unavailable.
	if err := check.CheckDeps(&cfg); err != nil {
		log.Error("%v", err)
		return 1
	}

	// Phase 3: Signal handling — cancel context on SIGINT/SIGTERM so the
	// pipeline can stop between sequences without leaving partial output.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current sequence…")
		cancel()
	}()

	// Phase 4: Run pipeline (discover → aggregate → dispatch).
	stats := pipeline.Run(ctx, &cfg, log)

	if stats.Failed > 0 {
		return 1
	}
	return 0
}
