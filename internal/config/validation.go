package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"
)

// Validate checks the descriptor invariants.
//
// Redirect sources must be unique: the hosting layer resolves them by exact
// match, so a duplicate source is an authoring error that has to surface at
// load time, not at first request.
func (c *Config) Validate() error {
	if err := validateOrigin(c.Origin); err != nil {
		return err
	}

	for _, ext := range c.Extensions {
		if !slices.Contains(KnownExtensions, ext) {
			return fmt.Errorf("unknown extension %q (known: %s)", ext, strings.Join(KnownExtensions, ", "))
		}
	}

	seen := make(map[string]struct{}, len(c.Redirects))
	for i, r := range c.Redirects {
		if r.From == "" {
			return fmt.Errorf("redirect %d: empty source path", i)
		}
		if r.To == "" {
			return fmt.Errorf("redirect %d: empty target path", i)
		}
		if !strings.HasPrefix(r.From, "/") {
			return fmt.Errorf("redirect %d: source %q must start with /", i, r.From)
		}
		if _, dup := seen[r.From]; dup {
			return fmt.Errorf("duplicate redirect source: %s", r.From)
		}
		seen[r.From] = struct{}{}
	}

	if c.Sync != nil {
		if c.Sync.Remote == "" {
			return fmt.Errorf("sync: remote is required when the sync block is present")
		}
		d, err := time.ParseDuration(c.Sync.Interval)
		if err != nil {
			return fmt.Errorf("sync: invalid interval %q: %w", c.Sync.Interval, err)
		}
		if d <= 0 {
			return fmt.Errorf("sync: interval must be positive")
		}
	}

	return nil
}

func validateOrigin(origin string) error {
	if origin == "" {
		return fmt.Errorf("origin is required")
	}
	u, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("origin %q: %w", origin, err)
	}
	if !u.IsAbs() {
		return fmt.Errorf("origin %q must be an absolute URL", origin)
	}
	if u.Scheme != "https" {
		return fmt.Errorf("origin %q must use the https scheme", origin)
	}
	if u.Host == "" {
		return fmt.Errorf("origin %q has no host", origin)
	}
	return nil
}
