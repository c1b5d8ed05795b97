// Package commands implements the sitekit CLI subcommands.
package commands

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/tomkeim/sitekit/internal/config"
)

// Global carries state shared across subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI is the root command definition.
type CLI struct {
	Config  string           `short:"c" help:"Site descriptor path" default:"site.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Init    InitCmd    `cmd:"" help:"Write a starter site descriptor"`
	Check   CheckCmd   `cmd:"" help:"Validate the descriptor and every content document"`
	List    ListCmd    `cmd:"" help:"List posts by publish date, newest first"`
	New     NewCmd     `cmd:"" help:"Scaffold a new post with complete front-matter"`
	Serve   ServeCmd   `cmd:"" help:"Serve the generated site with redirects applied"`
	Sync    SyncCmd    `cmd:"" help:"Pull content updates from the configured git remote"`
	Verify  VerifyCmd  `cmd:"" help:"Verify internal links in the generated site"`
	History HistoryCmd `cmd:"" help:"Show recent tool runs"`
}

// AfterApply runs after flag parsing; sets up logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// loadConfig loads the descriptor and returns it with the site root (the
// directory the descriptor lives in, which relative dirs resolve against).
func (c *CLI) loadConfig() (*config.Config, string, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, "", err
	}
	root := filepath.Dir(c.Config)
	return cfg, root, nil
}

// runlogPath is where the run history database lives, relative to the site
// root.
func runlogPath(root string) string {
	return filepath.Join(root, ".sitekit", "runs.db")
}

// ensureRunlogDir creates the runlog directory if needed.
func ensureRunlogDir(root string) error {
	return os.MkdirAll(filepath.Join(root, ".sitekit"), 0o755)
}
