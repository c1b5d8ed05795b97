// Package gitsync pulls the authored content tree from a git remote.
//
// The blog deploys from git: a one-shot sync clones or fast-forwards the
// working copy, and serve mode can run the same pull on a schedule. Sync
// never rewrites local history; a diverged working copy is an error for the
// author to resolve.
package gitsync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/tomkeim/sitekit/internal/config"
)

// Outcome describes what a sync did.
type Outcome string

const (
	OutcomeCloned   Outcome = "cloned"
	OutcomeUpdated  Outcome = "updated"
	OutcomeUpToDate Outcome = "up-to-date"
)

// Syncer clones or updates a working copy from the configured remote.
type Syncer struct {
	cfg *config.Sync
	dir string
}

// New creates a syncer that maintains the working copy at dir.
func New(cfg *config.Sync, dir string) *Syncer {
	return &Syncer{cfg: cfg, dir: dir}
}

// Sync ensures dir holds an up-to-date checkout of the configured branch.
func (s *Syncer) Sync(ctx context.Context) (Outcome, error) {
	if _, err := os.Stat(s.dir); os.IsNotExist(err) {
		return s.clone(ctx)
	}
	return s.pull(ctx)
}

func (s *Syncer) clone(ctx context.Context) (Outcome, error) {
	slog.Debug("cloning content remote", "remote", s.cfg.Remote, "branch", s.cfg.Branch, "dir", s.dir)

	_, err := git.PlainCloneContext(ctx, s.dir, false, &git.CloneOptions{
		URL:           s.cfg.Remote,
		ReferenceName: plumbing.NewBranchReferenceName(s.cfg.Branch),
		SingleBranch:  true,
	})
	if err != nil {
		return "", fmt.Errorf("clone %s: %w", s.cfg.Remote, err)
	}

	slog.Info("content cloned", "remote", s.cfg.Remote, "dir", s.dir)
	return OutcomeCloned, nil
}

func (s *Syncer) pull(ctx context.Context) (Outcome, error) {
	repo, err := git.PlainOpen(s.dir)
	if err != nil {
		return "", fmt.Errorf("open working copy %s: %w", s.dir, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("worktree: %w", err)
	}

	err = worktree.PullContext(ctx, &git.PullOptions{
		ReferenceName: plumbing.NewBranchReferenceName(s.cfg.Branch),
		SingleBranch:  true,
	})
	switch {
	case errors.Is(err, git.NoErrAlreadyUpToDate):
		slog.Debug("content already up to date", "dir", s.dir)
		return OutcomeUpToDate, nil
	case err != nil:
		return "", fmt.Errorf("pull %s: %w", s.cfg.Remote, err)
	}

	if ref, headErr := repo.Head(); headErr == nil {
		slog.Info("content updated", "dir", s.dir, "commit", ref.Hash().String()[:8])
	}
	return OutcomeUpdated, nil
}
