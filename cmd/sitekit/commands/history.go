package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/tomkeim/sitekit/internal/runlog"
)

// HistoryCmd implements the 'history' command.
type HistoryCmd struct {
	Limit int `short:"n" default:"20" help:"Maximum number of runs to show"`
}

// Run lists recent tool runs, newest first.
func (hc *HistoryCmd) Run(_ *Global, root *CLI) error {
	_, siteRoot, err := root.loadConfig()
	if err != nil {
		return err
	}

	path := runlogPath(siteRoot)
	if _, err := os.Stat(path); err != nil {
		fmt.Println("no run history yet")
		return nil
	}

	store, err := runlog.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	runs, err := store.Recent(context.Background(), hc.Limit)
	if err != nil {
		return err
	}

	for _, run := range runs {
		line := fmt.Sprintf("%s  %-7s errors=%d warnings=%d",
			run.StartedAt.Format("2006-01-02 15:04:05"), run.Command, run.Errors, run.Warnings)
		if run.Note != "" {
			line += "  " + run.Note
		}
		fmt.Println(line)
	}
	return nil
}
