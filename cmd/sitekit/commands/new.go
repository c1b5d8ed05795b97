package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tomkeim/sitekit/internal/content"
	"github.com/tomkeim/sitekit/internal/frontmatter"
)

// NewCmd implements the 'new' command.
type NewCmd struct {
	Title       string `arg:"" help:"Title of the new post"`
	Description string `short:"d" help:"Post description" default:"TODO: describe this post"`
	HeroImage   string `help:"Hero image path (defaults to /images/<slug>.png)"`
}

// Run scaffolds a post with complete front-matter so it passes 'check' for
// everything except assets the author still has to add.
func (nc *NewCmd) Run(_ *Global, root *CLI) error {
	cfg, siteRoot, err := root.loadConfig()
	if err != nil {
		return err
	}

	title := strings.TrimSpace(nc.Title)
	if title == "" {
		return fmt.Errorf("title must not be empty")
	}

	slug := content.Slugify(title)
	if slug == "" {
		return fmt.Errorf("title %q produces an empty slug", title)
	}

	hero := nc.HeroImage
	if hero == "" {
		hero = "/images/" + slug + ".png"
	}

	desc := strings.TrimSpace(nc.Description)
	if desc == "" {
		desc = "TODO: describe this post"
	}

	meta := frontmatter.Meta{
		Title:       title,
		Description: desc,
		PubDate:     time.Now().Format("January 2 2006"),
		HeroImage:   hero,
	}

	doc, err := frontmatter.Serialize(meta, []byte("\nWrite here.\n"))
	if err != nil {
		return err
	}

	path := filepath.Join(siteRoot, cfg.Content.Dir, slug+".md")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("post already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return fmt.Errorf("write post: %w", err)
	}

	fmt.Printf("created %s\n", path)
	return nil
}
