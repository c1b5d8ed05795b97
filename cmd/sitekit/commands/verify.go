package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tomkeim/sitekit/internal/config"
	"github.com/tomkeim/sitekit/internal/linkcheck"
	"github.com/tomkeim/sitekit/internal/redirect"
	"github.com/tomkeim/sitekit/internal/runlog"
)

// VerifyCmd implements the 'verify' command.
type VerifyCmd struct{}

// Run verifies every internal link in the generated tree. Exit code 2 when
// broken links are found.
func (vc *VerifyCmd) Run(_ *Global, root *CLI) error {
	cfg, siteRoot, err := root.loadConfig()
	if err != nil {
		return err
	}

	table, err := redirect.NewTable(cfg.RedirectMap())
	if err != nil {
		return err
	}

	verifier := linkcheck.New(filepath.Join(siteRoot, cfg.Site.Dir), table)
	result, err := verifier.Run()
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	warnings := 0
	if cfg.ExtensionEnabled(config.ExtensionSitemap) && !verifier.SitemapPresent() {
		warnings++
		fmt.Println("WARNING: sitemap extension is enabled but the generated tree has no sitemap.xml")
	}

	for _, broken := range result.Broken {
		fmt.Printf("BROKEN: %s -> %s\n", broken.Page, broken.URL)
	}
	fmt.Printf("%d pages, %d internal links checked: %d broken\n",
		result.PagesChecked, result.LinksChecked, len(result.Broken))

	recordRun(siteRoot, runlog.Run{Command: "verify", Errors: len(result.Broken), Warnings: warnings})

	if len(result.Broken) > 0 {
		os.Exit(2)
	}
	if warnings > 0 {
		os.Exit(1)
	}
	return nil
}
