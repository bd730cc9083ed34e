package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"git.home.luguber.info/inful/layoutsync/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force  bool   `help:"Overwrite existing configuration file"`
	Output string `short:"o" name:"output" help:"Directory to write ${config_file} into" type:"path"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	path := root.Config
	switch {
	case i.Output != "":
		path = filepath.Join(i.Output, config.DefaultFileName)
	case path == "":
		path = config.DefaultFileName
	}
	return RunInit(g.stdout(), path, i.Force)
}

// RunInit writes the default configuration to path.
func RunInit(out io.Writer, path string, force bool) error {
	_, _ = fmt.Fprintf(out, "Writing configuration to %s\n", path)
	if err := config.Init(path, force); err != nil {
		_, _ = fmt.Fprintln(out, "Initialization failed")
		return err
	}
	_, _ = fmt.Fprintln(out, "Initialized successfully")
	return nil
}
