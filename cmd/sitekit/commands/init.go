package commands

import (
	"fmt"

	"github.com/tomkeim/sitekit/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite an existing descriptor"`
}

// Run writes a starter descriptor.
func (ic *InitCmd) Run(_ *Global, root *CLI) error {
	if err := config.Init(root.Config, ic.Force); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", root.Config)
	return nil
}
