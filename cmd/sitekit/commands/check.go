package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/tomkeim/sitekit/internal/check"
	"github.com/tomkeim/sitekit/internal/runlog"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	Format string `short:"f" default:"text" help:"Output format" enum:"text,json"`
}

// Run validates the descriptor and all content documents.
//
// Exit codes: 0 clean, 1 warnings only, 2 errors.
func (cc *CheckCmd) Run(_ *Global, root *CLI) error {
	cfg, siteRoot, err := root.loadConfig()
	if err != nil {
		return err
	}

	result, err := check.New(cfg, siteRoot).Run()
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	recordRun(siteRoot, runlog.Run{
		Command:  "check",
		Errors:   result.ErrorCount(),
		Warnings: result.WarningCount(),
	})

	if err := check.NewFormatter(cc.Format).Format(os.Stdout, result); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if result.HasErrors() {
		os.Exit(2)
	}
	if result.HasWarnings() {
		os.Exit(1)
	}
	return nil
}

// recordRun appends to the run history; failures are logged, never fatal.
func recordRun(siteRoot string, run runlog.Run) {
	if err := ensureRunlogDir(siteRoot); err != nil {
		slog.Warn("run history unavailable", "error", err)
		return
	}
	store, err := runlog.Open(runlogPath(siteRoot))
	if err != nil {
		slog.Warn("run history unavailable", "error", err)
		return
	}
	defer func() { _ = store.Close() }()

	if _, err := store.Record(context.Background(), run); err != nil {
		slog.Warn("recording run failed", "error", err)
	}
}
