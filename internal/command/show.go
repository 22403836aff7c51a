package command

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hasnatAfzal/LinkdinScrapper/internal/domain"
)

type ShowCommand struct {
	deps *Dependencies
}

func NewShowCommand(deps *Dependencies) *ShowCommand {
	return &ShowCommand{deps: deps}
}

func (c *ShowCommand) Name() string {
	return "show"
}

func (c *ShowCommand) Description() string {
	return "Show the current result set, or one profile in full (show 2)"
}

func (c *ShowCommand) Execute(ctx context.Context, session *domain.Session, args []string) error {
	if err := c.ensureDeps(); err != nil {
		return err
	}

	if !session.HasResults() {
		return c.deps.PrintError("No profiles loaded. Run a search first.")
	}

	if len(args) == 0 {
		return c.deps.Print(c.deps.Formatter.FormatTable(session.Profiles))
	}

	index, err := strconv.Atoi(args[0])
	if err != nil || index < 1 || index > len(session.Profiles) {
		return c.deps.PrintError(fmt.Sprintf("show expects a profile number between 1 and %d", len(session.Profiles)))
	}

	return c.deps.Print(c.deps.Formatter.FormatProfile(session.Profiles[index-1], index))
}

func (c *ShowCommand) ensureDeps() error {
	if c == nil || c.deps == nil {
		return fmt.Errorf("show command dependencies not configured")
	}

	if c.deps.Print == nil || c.deps.PrintError == nil {
		return fmt.Errorf("output callbacks not configured")
	}

	if c.deps.Formatter == nil {
		return fmt.Errorf("show command services not configured")
	}

	return nil
}
