// Package frontmatter implements the content document header contract.
//
// Every post starts with a `---` delimited YAML block carrying the four
// fields the generator needs to render metadata and listings: title,
// description, pubDate and heroImage. A document missing any of them must
// fail validation instead of rendering a blank field.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates the document started with a YAML
// front-matter delimiter but never closed it.
var ErrMissingClosingDelimiter = errors.New("front-matter start delimiter found but closing delimiter is missing")

// ErrNoFrontmatter indicates the document has no front-matter block at all.
var ErrNoFrontmatter = errors.New("document has no front-matter block")

// Meta is the typed front-matter of one content document.
type Meta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	PubDate     string `yaml:"pubDate"`
	HeroImage   string `yaml:"heroImage"`
}

// pubDateLayouts are accepted publish date formats, tried in order. The
// human-readable "June 15 2025" form is the one posts actually use.
var pubDateLayouts = []string{
	"January 2 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"Jan 2, 2006",
	"2006-01-02",
	time.RFC3339,
}

// PublishDate parses the pubDate field into a calendar date.
func (m Meta) PublishDate() (time.Time, error) {
	raw := strings.TrimSpace(m.PubDate)
	if raw == "" {
		return time.Time{}, errors.New("pubDate is empty")
	}
	for _, layout := range pubDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized pubDate %q", raw)
}

// MissingFields returns the names of required fields that are absent or
// blank, in schema order.
func (m Meta) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(m.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(m.Description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(m.PubDate) == "" {
		missing = append(missing, "pubDate")
	}
	if strings.TrimSpace(m.HeroImage) == "" {
		missing = append(missing, "heroImage")
	}
	return missing
}

// Validate fails when any required field is absent or blank.
func (m Meta) Validate() error {
	if missing := m.MissingFields(); len(missing) > 0 {
		return fmt.Errorf("missing required front-matter fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Split separates the YAML front-matter block from the markdown body.
//
// had is false when the document does not start with a `---` line; body is
// then the full input. CRLF input is accepted.
func Split(content []byte) (meta []byte, body []byte, had bool, err error) {
	const delim = "---"

	rest, ok := cutLine(content, delim)
	if !ok {
		return nil, content, false, nil
	}

	// Scan line by line for the closing delimiter.
	var fm bytes.Buffer
	for len(rest) > 0 {
		line, tail := nextLine(rest)
		if strings.TrimRight(string(line), "\r\n") == delim {
			return fm.Bytes(), tail, true, nil
		}
		fm.Write(line)
		rest = tail
	}
	return nil, nil, false, ErrMissingClosingDelimiter
}

// Parse splits a full document and decodes its front-matter into Meta.
func Parse(content []byte) (Meta, []byte, error) {
	raw, body, had, err := Split(content)
	if err != nil {
		return Meta{}, nil, err
	}
	if !had {
		return Meta{}, body, ErrNoFrontmatter
	}

	var m Meta
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return Meta{}, nil, fmt.Errorf("decode front-matter: %w", err)
	}
	return m, body, nil
}

// cutLine strips a leading line equal to want (ignoring trailing CR) and
// returns the remainder.
func cutLine(content []byte, want string) ([]byte, bool) {
	line, tail := nextLine(content)
	if strings.TrimRight(string(line), "\r\n") != want {
		return nil, false
	}
	return tail, true
}

// nextLine returns the first line of b including its newline, and the rest.
func nextLine(b []byte) (line, tail []byte) {
	idx := bytes.IndexByte(b, '\n')
	if idx < 0 {
		return b, nil
	}
	return b[:idx+1], b[idx+1:]
}
