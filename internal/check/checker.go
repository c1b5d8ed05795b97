package check

import (
	"fmt"
	"path/filepath"

	"github.com/tomkeim/sitekit/internal/config"
	"github.com/tomkeim/sitekit/internal/content"
)

// Rule identifiers, reported with every issue.
const (
	RuleFrontmatterParse    = "frontmatter-parse"
	RuleFrontmatterRequired = "frontmatter-required"
	RulePubDateParse        = "pubdate-parse"
	RuleHeroImageExists     = "hero-image-exists"
	RuleRedirectTarget      = "redirect-target-exists"
	RuleAssetLinks          = "asset-links"
)

// Checker runs every content and descriptor rule for one site.
type Checker struct {
	cfg  *config.Config
	root string // directory the descriptor's relative dirs resolve against
}

// New creates a checker rooted at root.
func New(cfg *config.Config, root string) *Checker {
	return &Checker{cfg: cfg, root: root}
}

func (c *Checker) contentDir() string { return filepath.Join(c.root, c.cfg.Content.Dir) }
func (c *Checker) assetsDir() string  { return filepath.Join(c.root, c.cfg.Assets.Dir) }
func (c *Checker) siteDir() string    { return filepath.Join(c.root, c.cfg.Site.Dir) }

// Run scans the content dir and applies every rule.
func (c *Checker) Run() (*Result, error) {
	scan, err := content.Scan(c.contentDir())
	if err != nil {
		return nil, fmt.Errorf("check: %w", err)
	}

	res := &Result{FilesTotal: len(scan.Documents) + len(scan.Problems)}

	for _, p := range scan.Problems {
		res.Issues = append(res.Issues, Issue{
			Path:     p.Path,
			Severity: SeverityError,
			Rule:     RuleFrontmatterParse,
			Message:  p.Err.Error(),
		})
	}

	for _, doc := range scan.Documents {
		res.Issues = append(res.Issues, c.checkDocument(doc)...)
	}

	res.Issues = append(res.Issues, c.checkRedirectTargets(scan.Documents)...)
	return res, nil
}
