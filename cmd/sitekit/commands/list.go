package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tomkeim/sitekit/internal/content"
	"github.com/tomkeim/sitekit/internal/site"
)

// ListCmd implements the 'list' command.
type ListCmd struct {
	Format string `short:"f" default:"text" help:"Output format" enum:"text,json"`
}

type listEntry struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PubDate     string `json:"pubDate"`
}

// Run prints every post, publish date descending.
func (lc *ListCmd) Run(_ *Global, root *CLI) error {
	cfg, siteRoot, err := root.loadConfig()
	if err != nil {
		return err
	}

	scan, err := content.Scan(filepath.Join(siteRoot, cfg.Content.Dir))
	if err != nil {
		return err
	}

	ordered := content.List(scan.Documents)

	if lc.Format == "json" {
		entries := make([]listEntry, 0, len(ordered))
		for _, doc := range ordered {
			entries = append(entries, listEntry{
				Slug:        doc.Slug,
				Title:       doc.Meta.Title,
				Description: doc.Meta.Description,
				PubDate:     doc.Meta.PubDate,
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	fmt.Printf("%s - %s\n\n", site.Title, site.Description)
	for _, doc := range ordered {
		fmt.Printf("%-16s /%s/  %s\n", doc.Meta.PubDate, doc.Slug, doc.Meta.Title)
	}
	fmt.Printf("\n%d posts", len(ordered))
	if n := len(scan.Problems); n > 0 {
		fmt.Printf(" (%d documents skipped; run 'sitekit check')", n)
	}
	fmt.Println()
	return nil
}
