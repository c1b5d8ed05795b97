package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/tomkeim/sitekit/internal/check"
	"github.com/tomkeim/sitekit/internal/gitsync"
	"github.com/tomkeim/sitekit/internal/redirect"
	"github.com/tomkeim/sitekit/internal/server"
)

// ServeCmd implements the 'serve' command.
type ServeCmd struct {
	Addr    string `short:"a" default:":8080" help:"Listen address"`
	NoWatch bool   `help:"Disable content watching"`
	NoSync  bool   `help:"Disable scheduled content sync even when configured"`
}

// Run serves the generated site until interrupted. The redirect table is
// applied exactly as the hosting layer would; the content watcher re-runs
// the checks on every change so authoring mistakes surface immediately.
func (sc *ServeCmd) Run(_ *Global, root *CLI) error {
	cfg, siteRoot, err := root.loadConfig()
	if err != nil {
		return err
	}

	table, err := redirect.NewTable(cfg.RedirectMap())
	if err != nil {
		return err
	}
	slog.Info("redirect table loaded", slog.Int("rules", table.Len()))

	srv, err := server.New(server.Options{
		SiteDir:   filepath.Join(siteRoot, cfg.Site.Dir),
		Addr:      sc.Addr,
		Redirects: table,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !sc.NoWatch {
		checker := check.New(cfg, siteRoot)
		watcher := server.NewWatcher(filepath.Join(siteRoot, cfg.Content.Dir), func(context.Context) {
			result, err := checker.Run()
			if err != nil {
				slog.Error("content check failed", "error", err)
				return
			}
			slog.Info("content checked",
				slog.Int("files", result.FilesTotal),
				slog.Int("errors", result.ErrorCount()),
				slog.Int("warnings", result.WarningCount()))
		})
		go func() {
			if err := watcher.Run(ctx); err != nil {
				slog.Warn("content watcher stopped", "error", err)
			}
		}()
	}

	if cfg.Sync != nil && !sc.NoSync {
		syncer := gitsync.New(cfg.Sync, filepath.Join(siteRoot, cfg.Content.Dir))
		sched, err := gitsync.NewScheduler(syncer, func(outcome gitsync.Outcome) {
			slog.Info("content synced", "outcome", string(outcome))
		})
		if err != nil {
			return err
		}
		if err := sched.Start(ctx, cfg.Sync.IntervalDuration()); err != nil {
			return err
		}
		defer func() {
			if err := sched.Stop(); err != nil {
				slog.Warn("stopping sync scheduler", "error", err)
			}
		}()
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
