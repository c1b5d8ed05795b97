// Package config loads and validates the site descriptor.
//
// The descriptor is read once at startup, validated fail-fast, and never
// mutated afterwards. It names the site's canonical origin, the generator
// extensions the external static-site generator should enable, the redirect
// table applied by the hosting layer, and the directories the toolkit
// operates on.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the site descriptor.
type Config struct {
	Origin     string     `yaml:"origin"`
	Extensions []string   `yaml:"extensions,omitempty"`
	Redirects  []Redirect `yaml:"redirects,omitempty"`
	Content    Content    `yaml:"content,omitempty"`
	Site       SiteOutput `yaml:"site,omitempty"`
	Assets     Assets     `yaml:"assets,omitempty"`
	Sync       *Sync      `yaml:"sync,omitempty"`
}

// Redirect maps one deprecated request path to its canonical replacement.
//
// Redirects are a list rather than a YAML mapping so that duplicate sources
// are representable in the file and can be rejected at load time instead of
// silently collapsing.
type Redirect struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Content describes where authored markdown documents live.
type Content struct {
	Dir string `yaml:"dir,omitempty"`
}

// SiteOutput describes where the external generator emits the static tree.
type SiteOutput struct {
	Dir string `yaml:"dir,omitempty"`
}

// Assets describes where static assets (hero images etc.) live.
type Assets struct {
	Dir string `yaml:"dir,omitempty"`
}

// Sync configures optional git-based content synchronization.
//
// Interval is a time.ParseDuration string ("5m", "1h"); it is parsed during
// validation and exposed via IntervalDuration.
type Sync struct {
	Remote   string `yaml:"remote"`
	Branch   string `yaml:"branch,omitempty"`
	Interval string `yaml:"interval,omitempty"`
}

// IntervalDuration returns the parsed sync interval.
//
// Valid only after Validate has run; a descriptor that fails duration parsing
// never leaves Load.
func (s *Sync) IntervalDuration() time.Duration {
	d, _ := time.ParseDuration(s.Interval)
	return d
}

// Extension names the generator features a descriptor may enable.
const (
	ExtensionMDX     = "mdx"     // markdown with embedded components
	ExtensionSitemap = "sitemap" // sitemap.xml generation
	ExtensionIcon    = "icon"    // icon resource support
)

// KnownExtensions lists every extension name a descriptor may enable.
var KnownExtensions = []string{ExtensionMDX, ExtensionSitemap, ExtensionIcon}

// Load reads, expands and validates the descriptor at configPath.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file not found: %s", configPath)
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	return Parse(data)
}

// Parse unmarshals and validates a descriptor from raw YAML.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Content.Dir == "" {
		c.Content.Dir = "content"
	}
	if c.Site.Dir == "" {
		c.Site.Dir = "dist"
	}
	if c.Assets.Dir == "" {
		c.Assets.Dir = "public"
	}
	if c.Sync != nil {
		if c.Sync.Branch == "" {
			c.Sync.Branch = "main"
		}
		if c.Sync.Interval == "" {
			c.Sync.Interval = "5m"
		}
	}
}

// RedirectMap returns the redirect pairs as a lookup table.
//
// Callers must only use this after Validate has established that sources are
// unique.
func (c *Config) RedirectMap() map[string]string {
	m := make(map[string]string, len(c.Redirects))
	for _, r := range c.Redirects {
		m[r.From] = r.To
	}
	return m
}

// ExtensionEnabled reports whether the descriptor enables the named extension.
func (c *Config) ExtensionEnabled(name string) bool {
	for _, ext := range c.Extensions {
		if ext == name {
			return true
		}
	}
	return false
}
