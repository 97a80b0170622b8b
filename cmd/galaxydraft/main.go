package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version   kong.VersionFlag `short:"v" help:"Show version"`
	Generate  GenerateCmd      `cmd:"" help:"Generate a balanced draft"`
	ImportMap ImportMapCmd     `cmd:"import-map" help:"Render a galaxy from a map string"`
	Layouts   LayoutsCmd       `cmd:"" help:"List the embedded galaxy layouts"`
	History   HistoryCmd       `cmd:"" help:"Show recent generated drafts"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("galaxydraft"),
		kong.Description("Balanced galaxy and draft generator for hex-map strategy games"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
