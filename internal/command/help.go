package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/hasnatAfzal/LinkdinScrapper/internal/domain"
)

type HelpCommand struct {
	deps     *Dependencies
	registry *Registry
}

func NewHelpCommand(deps *Dependencies, registry *Registry) *HelpCommand {
	return &HelpCommand{deps: deps, registry: registry}
}

func (c *HelpCommand) Name() string {
	return "help"
}

func (c *HelpCommand) Description() string {
	return "Show the available commands"
}

func (c *HelpCommand) Execute(ctx context.Context, session *domain.Session, args []string) error {
	if c == nil || c.deps == nil || c.deps.Print == nil {
		return fmt.Errorf("help command dependencies not configured")
	}

	var sb strings.Builder
	sb.WriteString("Available commands:\n")
	for _, cmd := range c.registry.List() {
		sb.WriteString(fmt.Sprintf("  %-8s %s\n", cmd.Name(), cmd.Description()))
	}
	sb.WriteString(fmt.Sprintf("  %-8s %s", "quit", "Leave the program (also: exit, Ctrl-D)"))

	return c.deps.Print(sb.String())
}
