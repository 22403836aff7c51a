package command

import (
	"context"
	"fmt"

	"github.com/hasnatAfzal/LinkdinScrapper/internal/domain"
)

type ExportCommand struct {
	deps *Dependencies
}

func NewExportCommand(deps *Dependencies) *ExportCommand {
	return &ExportCommand{deps: deps}
}

func (c *ExportCommand) Name() string {
	return "export"
}

func (c *ExportCommand) Description() string {
	return "Write the current result set to a CSV file (export [path])"
}

func (c *ExportCommand) Execute(ctx context.Context, session *domain.Session, args []string) error {
	if err := c.ensureDeps(); err != nil {
		return err
	}

	if !session.HasResults() {
		return c.deps.PrintError("No profiles loaded. Run a search first.")
	}

	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	written, err := c.deps.Exporter.Export(session.Profiles, path)
	if err != nil {
		return c.deps.PrintError(fmt.Sprintf("export failed: %v", err))
	}

	return c.deps.Print(fmt.Sprintf("Exported %d profiles to %s", len(session.Profiles), written))
}

func (c *ExportCommand) ensureDeps() error {
	if c == nil || c.deps == nil {
		return fmt.Errorf("export command dependencies not configured")
	}

	if c.deps.Print == nil || c.deps.PrintError == nil {
		return fmt.Errorf("output callbacks not configured")
	}

	if c.deps.Exporter == nil {
		return fmt.Errorf("export command services not configured")
	}

	return nil
}
