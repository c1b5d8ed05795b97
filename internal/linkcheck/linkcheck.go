// Package linkcheck verifies the static tree the external generator emitted.
//
// It walks every HTML page, extracts internal link and asset destinations,
// and resolves each against the tree itself plus the redirect table: a
// legacy path that redirects to a live page is not broken. External URLs are
// out of scope.
package linkcheck

import (
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/tomkeim/sitekit/internal/redirect"
)

// Broken is one unresolvable internal destination.
type Broken struct {
	Page string // page the destination was found on, relative to the site dir
	URL  string // the destination as written
}

// Result summarizes one verification run.
type Result struct {
	PagesChecked int
	LinksChecked int
	Broken       []Broken
}

// Verifier checks a generated site tree.
type Verifier struct {
	siteDir   string
	redirects *redirect.Table
}

// New creates a verifier over siteDir. redirects may be nil.
func New(siteDir string, redirects *redirect.Table) *Verifier {
	return &Verifier{siteDir: siteDir, redirects: redirects}
}

// Run walks the tree and verifies every internal destination.
func (v *Verifier) Run() (*Result, error) {
	if st, err := os.Stat(v.siteDir); err != nil || !st.IsDir() {
		return nil, fmt.Errorf("site dir not found or not a directory: %s", v.siteDir)
	}

	res := &Result{}
	err := filepath.WalkDir(v.siteDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".html") {
			return nil
		}

		rel, err := filepath.Rel(v.siteDir, p)
		if err != nil {
			return err
		}
		res.PagesChecked++

		dests, err := extractFromFile(p)
		if err != nil {
			return fmt.Errorf("parse %s: %w", rel, err)
		}

		pageDir := path.Dir(filepath.ToSlash(rel))
		for _, dest := range dests {
			sitePath, internal := normalizeDestination(dest, pageDir)
			if !internal {
				continue
			}
			res.LinksChecked++
			if !v.resolves(sitePath) {
				res.Broken = append(res.Broken, Broken{Page: filepath.ToSlash(rel), URL: dest})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(res.Broken, func(i, j int) bool {
		if res.Broken[i].Page != res.Broken[j].Page {
			return res.Broken[i].Page < res.Broken[j].Page
		}
		return res.Broken[i].URL < res.Broken[j].URL
	})
	return res, nil
}

// SitemapPresent reports whether the tree carries a sitemap.xml (or the
// index variant some generators emit).
func (v *Verifier) SitemapPresent() bool {
	for _, name := range []string{"sitemap.xml", "sitemap-index.xml"} {
		if st, err := os.Stat(filepath.Join(v.siteDir, name)); err == nil && !st.IsDir() {
			return true
		}
	}
	return false
}

// resolves reports whether a root-relative site path is owned by a file in
// the tree, directly or through one redirect hop.
func (v *Verifier) resolves(sitePath string) bool {
	if v.pathOwned(sitePath) {
		return true
	}
	if v.redirects != nil {
		if target, ok := v.redirects.Resolve(sitePath); ok {
			return v.pathOwned(target)
		}
	}
	return false
}

func (v *Verifier) pathOwned(sitePath string) bool {
	rel := strings.Trim(sitePath, "/")
	candidates := []string{
		filepath.Join(v.siteDir, filepath.FromSlash(rel)),
		filepath.Join(v.siteDir, filepath.FromSlash(rel), "index.html"),
	}
	if rel == "" {
		candidates = []string{filepath.Join(v.siteDir, "index.html")}
	}
	for _, c := range candidates {
		if st, err := os.Stat(c); err == nil {
			if !st.IsDir() {
				return true
			}
		}
	}
	return false
}

// normalizeDestination turns an href/src into a root-relative site path.
// The second return is false for external, fragment-only and non-HTTP
// destinations.
func normalizeDestination(dest, pageDir string) (string, bool) {
	u, err := url.Parse(dest)
	if err != nil {
		return "", false
	}
	if u.Scheme != "" || u.Host != "" {
		return "", false
	}
	if u.Path == "" { // fragment or query only
		return "", false
	}
	p := u.Path
	if !strings.HasPrefix(p, "/") {
		p = path.Join("/", pageDir, p)
	}
	return p, true
}

// extractFromFile parses one HTML file and returns every href/src value.
func extractFromFile(htmlPath string) ([]string, error) {
	f, err := os.Open(filepath.Clean(htmlPath))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	doc, err := html.Parse(f)
	if err != nil {
		return nil, err
	}

	var dests []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if d := destinationAttr(n); d != "" {
				dests = append(dests, d)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return dests, nil
}

func destinationAttr(n *html.Node) string {
	var attr string
	switch n.Data {
	case "a", "link":
		attr = "href"
	case "img", "script", "source":
		attr = "src"
	default:
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == attr {
			return a.Val
		}
	}
	return ""
}
