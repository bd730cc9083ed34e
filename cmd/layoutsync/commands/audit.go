package commands

import (
	"context"

	"git.home.luguber.info/inful/layoutsync/internal/audit"
	"git.home.luguber.info/inful/layoutsync/internal/storage"
)

// AuditCmd implements the 'audit' command.
type AuditCmd struct {
	Format string `short:"f" help:"Output format (text, json)" enum:"text,json" default:"text"`
}

func (a *AuditCmd) Run(g *Global, root *CLI) error {
	cfg, _, err := root.loadConfig()
	if err != nil {
		return err
	}

	report, err := audit.Run(context.Background(), storage.NewFSStore(cfg.SiteDir), auditOptions(cfg))
	if err != nil {
		return err
	}
	if a.Format == "json" {
		return audit.WriteJSON(g.stdout(), report)
	}
	return audit.WriteText(g.stdout(), report)
}
