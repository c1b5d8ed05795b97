// Package content discovers and orders the site's markdown documents.
package content

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/tomkeim/sitekit/internal/frontmatter"
)

// Document is one authored post: front-matter plus markdown body.
type Document struct {
	Slug string // URL slug, derived from the filename
	Path string // path relative to the content dir
	Meta frontmatter.Meta
	Body []byte

	// published is the parsed pubDate; zero when the date failed to parse.
	published time.Time
}

// PublishedAt returns the parsed publish date (zero if unparseable).
func (d Document) PublishedAt() time.Time { return d.published }

// ScanResult holds the outcome of one content discovery pass. Documents
// appear in discovery (lexical walk) order; a document with broken
// front-matter lands in Problems so the check rules can report it.
type ScanResult struct {
	Documents []Document
	Problems  []Problem
}

// Problem records a document that could not be parsed.
type Problem struct {
	Path string
	Err  error
}

// Scan discovers all markdown documents under dir. Scan itself only fails
// on filesystem errors, never on document content.
func Scan(dir string) (*ScanResult, error) {
	if st, err := os.Stat(dir); err != nil || !st.IsDir() {
		return nil, fmt.Errorf("content dir not found or not a directory: %s", dir)
	}

	res := &ScanResult{}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if !isMarkdown(d.Name()) {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", rel, err)
		}

		meta, body, err := frontmatter.Parse(data)
		if err != nil {
			res.Problems = append(res.Problems, Problem{Path: rel, Err: err})
			return nil
		}

		doc := Document{
			Slug: slugFromFilename(d.Name()),
			Path: rel,
			Meta: meta,
			Body: body,
		}
		if t, err := meta.PublishDate(); err == nil {
			doc.published = t
		}
		res.Documents = append(res.Documents, doc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan content dir: %w", err)
	}
	return res, nil
}

// List returns documents ordered by publish date descending. Documents with
// equal dates keep their discovery order, so the listing is deterministic
// for a fixed input set.
func List(docs []Document) []Document {
	out := make([]Document, len(docs))
	copy(out, docs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].published.After(out[j].published)
	})
	return out
}

func isMarkdown(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".md" || ext == ".mdx"
}

func slugFromFilename(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
