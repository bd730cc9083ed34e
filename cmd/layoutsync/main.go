package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/layoutsync/cmd/layoutsync/commands"
	"git.home.luguber.info/inful/layoutsync/internal/foundation/errors"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("layoutsync"),
		kong.Description("Keep shared header, footer and navigation markup in sync across static HTML pages."),
		kong.UsageOnError(),
		commands.Vars(),
	)

	err := parser.Run(&commands.Global{Stdout: os.Stdout}, cli)
	errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
