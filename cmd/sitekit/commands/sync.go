package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/tomkeim/sitekit/internal/gitsync"
	"github.com/tomkeim/sitekit/internal/runlog"
)

// SyncCmd implements the 'sync' command.
type SyncCmd struct{}

// Run performs a one-shot content pull from the configured remote.
func (sc *SyncCmd) Run(_ *Global, root *CLI) error {
	cfg, siteRoot, err := root.loadConfig()
	if err != nil {
		return err
	}
	if cfg.Sync == nil {
		return fmt.Errorf("no sync block configured in %s", root.Config)
	}

	syncer := gitsync.New(cfg.Sync, filepath.Join(siteRoot, cfg.Content.Dir))
	outcome, err := syncer.Sync(context.Background())
	if err != nil {
		return fmt.Errorf("sync: %w", err)
	}

	recordRun(siteRoot, runlog.Run{Command: "sync", Note: string(outcome)})
	fmt.Printf("sync: %s\n", outcome)
	return nil
}
