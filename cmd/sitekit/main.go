package main

import (
	"github.com/alecthomas/kong"

	"github.com/tomkeim/sitekit/cmd/sitekit/commands"
	"github.com/tomkeim/sitekit/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("sitekit"),
		kong.Description("Content and configuration toolkit for tomkeim.nl"),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)

	err := ctx.Run(&commands.Global{}, &cli)
	ctx.FatalIfErrorf(err)
}
