package command

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/hasnatAfzal/LinkdinScrapper/internal/constants"
	"github.com/hasnatAfzal/LinkdinScrapper/internal/domain"
	"github.com/hasnatAfzal/LinkdinScrapper/internal/util"
)

type SetCommand struct {
	deps *Dependencies
}

func NewSetCommand(deps *Dependencies) *SetCommand {
	return &SetCommand{deps: deps}
}

func (c *SetCommand) Name() string {
	return "set"
}

func (c *SetCommand) Description() string {
	return "Adjust search settings: set pages <1-10>, set delay <0-60>, set site <domain>"
}

func (c *SetCommand) Execute(ctx context.Context, session *domain.Session, args []string) error {
	if err := c.ensureDeps(); err != nil {
		return err
	}

	if len(args) == 0 {
		return c.deps.Print(c.deps.Formatter.FormatSettings(session.Pages, session.DelaySeconds, session.SiteFilter))
	}

	key := strings.ToLower(args[0])
	if len(args) < 2 {
		return c.deps.PrintError(fmt.Sprintf("set %s needs a value", key))
	}
	value := args[1]

	switch key {
	case "pages":
		pages, err := strconv.Atoi(value)
		if err != nil || pages < constants.SearchConfig.MinPages || pages > constants.SearchConfig.MaxPages {
			return c.deps.PrintError(fmt.Sprintf("pages must be a number between %d and %d",
				constants.SearchConfig.MinPages, constants.SearchConfig.MaxPages))
		}
		session.Pages = pages
		return c.deps.Print(fmt.Sprintf("pages set to %d", pages))

	case "delay":
		delay, err := strconv.Atoi(value)
		if err != nil || delay < constants.SearchConfig.MinDelay || delay > constants.SearchConfig.MaxDelay {
			return c.deps.PrintError(fmt.Sprintf("delay must be a number between %d and %d seconds",
				constants.SearchConfig.MinDelay, constants.SearchConfig.MaxDelay))
		}
		session.DelaySeconds = delay
		return c.deps.Print(fmt.Sprintf("delay set to %ds", delay))

	case "site":
		session.SiteFilter = strings.TrimPrefix(util.Normalize(value), "site:")
		return c.deps.Print(fmt.Sprintf("site filter set to %s", session.SiteFilter))

	default:
		return c.deps.PrintError(fmt.Sprintf("unknown setting %q (expected pages, delay or site)", key))
	}
}

func (c *SetCommand) ensureDeps() error {
	if c == nil || c.deps == nil {
		return fmt.Errorf("set command dependencies not configured")
	}

	if c.deps.Print == nil || c.deps.PrintError == nil {
		return fmt.Errorf("output callbacks not configured")
	}

	if c.deps.Formatter == nil {
		return fmt.Errorf("set command services not configured")
	}

	return nil
}
