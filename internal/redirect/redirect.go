// Package redirect implements the legacy-path redirect table.
//
// Matching is exact string comparison of the request path: no patterns, no
// case folding, no trailing-slash normalization. An unmatched path is not an
// error; it falls through to whatever owns the path, and only a 404 results
// if nothing does.
package redirect

import (
	"fmt"
	"net/http"
)

// Table maps deprecated request paths to their canonical replacements.
type Table struct {
	rules map[string]string
}

// NewTable builds a table from source→target pairs.
//
// The config layer has already rejected duplicates; NewTable re-checks the
// structural invariants so the table is safe to build from other inputs too.
func NewTable(rules map[string]string) (*Table, error) {
	cloned := make(map[string]string, len(rules))
	for from, to := range rules {
		if from == "" {
			return nil, fmt.Errorf("redirect table: empty source path")
		}
		if to == "" {
			return nil, fmt.Errorf("redirect table: empty target for source %s", from)
		}
		cloned[from] = to
	}
	return &Table{rules: cloned}, nil
}

// Len returns the number of rules.
func (t *Table) Len() int { return len(t.rules) }

// Resolve returns the canonical target for path, if one is mapped.
func (t *Table) Resolve(path string) (string, bool) {
	target, ok := t.rules[path]
	return target, ok
}

// Handler applies the table in front of next. Matched paths get a permanent
// redirect; the legacy path is deliberately deprecated, so 301 is the fixed
// status. Everything else falls through.
func (t *Table) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if target, ok := t.Resolve(r.URL.Path); ok {
			http.Redirect(w, r, target, http.StatusMovedPermanently)
			return
		}
		next.ServeHTTP(w, r)
	})
}
