package check

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tomkeim/sitekit/internal/content"
	"github.com/tomkeim/sitekit/internal/markdown"
)

func (c *Checker) checkDocument(doc content.Document) []Issue {
	var issues []Issue

	if missing := doc.Meta.MissingFields(); len(missing) > 0 {
		issues = append(issues, Issue{
			Path:     doc.Path,
			Severity: SeverityError,
			Rule:     RuleFrontmatterRequired,
			Message:  fmt.Sprintf("missing required front-matter fields: %s", strings.Join(missing, ", ")),
		})
	}

	if strings.TrimSpace(doc.Meta.PubDate) != "" {
		if _, err := doc.Meta.PublishDate(); err != nil {
			issues = append(issues, Issue{
				Path:     doc.Path,
				Severity: SeverityError,
				Rule:     RulePubDateParse,
				Message:  err.Error(),
			})
		}
	}

	if hero := strings.TrimSpace(doc.Meta.HeroImage); hero != "" && !c.assetExists(hero) {
		issues = append(issues, Issue{
			Path:     doc.Path,
			Severity: SeverityError,
			Rule:     RuleHeroImageExists,
			Message:  fmt.Sprintf("hero image %s not found under %s", hero, c.cfg.Assets.Dir),
		})
	}

	issues = append(issues, c.checkAssetLinks(doc)...)
	return issues
}

// checkAssetLinks verifies that root-relative image/link destinations in the
// body point at existing assets. External URLs, fragments and page-relative
// links are out of scope here; the verify command covers the generated tree.
func (c *Checker) checkAssetLinks(doc content.Document) []Issue {
	var issues []Issue
	for _, dest := range markdown.ExtractDestinations(doc.Body) {
		if !isAssetDestination(dest.URL) {
			continue
		}
		if c.assetExists(dest.URL) {
			continue
		}
		issues = append(issues, Issue{
			Path:     doc.Path,
			Severity: SeverityWarning,
			Rule:     RuleAssetLinks,
			Message:  fmt.Sprintf("%s %s not found under %s", dest.Kind, dest.URL, c.cfg.Assets.Dir),
		})
	}
	return issues
}

// checkRedirectTargets warns when a redirect points at nothing we know of:
// neither a scanned document slug nor a page in the generated tree. The
// descriptor contract says targets *should* resolve, so this warns instead
// of blocking.
func (c *Checker) checkRedirectTargets(docs []content.Document) []Issue {
	slugs := make(map[string]struct{}, len(docs))
	for _, doc := range docs {
		slugs[doc.Slug] = struct{}{}
	}

	var issues []Issue
	for _, r := range c.cfg.Redirects {
		slug := strings.Trim(r.To, "/")
		if _, ok := slugs[slug]; ok {
			continue
		}
		if pageExists(c.siteDir(), r.To) {
			continue
		}
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Rule:     RuleRedirectTarget,
			Message:  fmt.Sprintf("redirect %s -> %s: target is not a known document or generated page", r.From, r.To),
		})
	}
	return issues
}

// isAssetDestination reports whether a destination is a root-relative asset
// reference with a file extension.
func isAssetDestination(dest string) bool {
	if !strings.HasPrefix(dest, "/") {
		return false
	}
	if i := strings.IndexAny(dest, "?#"); i >= 0 {
		dest = dest[:i]
	}
	return filepath.Ext(dest) != ""
}

func (c *Checker) assetExists(ref string) bool {
	rel := strings.TrimPrefix(ref, "/")
	_, err := os.Stat(filepath.Join(c.assetsDir(), filepath.FromSlash(rel)))
	return err == nil
}

// pageExists reports whether the generated tree contains a page for the
// given site path.
func pageExists(siteDir, sitePath string) bool {
	rel := strings.Trim(sitePath, "/")
	candidates := []string{
		filepath.Join(siteDir, filepath.FromSlash(rel), "index.html"),
		filepath.Join(siteDir, filepath.FromSlash(rel)+".html"),
		filepath.Join(siteDir, filepath.FromSlash(rel)),
	}
	for _, p := range candidates {
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return true
		}
	}
	return false
}
