package config

import (
	"fmt"
	"os"
)

const defaultConfig = `# sitekit site descriptor
origin: https://tomkeim.nl

# Generator extensions the external static-site generator should enable.
extensions:
  - mdx
  - sitemap
  - icon

# Legacy paths and their canonical replacements, matched exactly.
redirects:
  - from: /blog/fabric-wheels-deployment
    to: /fabric-wheels-deployment/

content:
  dir: content
site:
  dir: dist
assets:
  dir: public

# Uncomment to pull content from a git remote:
# sync:
#   remote: git@github.com:tomkeim/tomkeim.nl.git
#   branch: main
#   interval: 5m
`

// Init writes a descriptor with example content to configPath.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}
	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
