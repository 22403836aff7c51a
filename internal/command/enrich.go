package command

import (
	"context"
	"fmt"

	"github.com/hasnatAfzal/LinkdinScrapper/internal/domain"
)

type EnrichCommand struct {
	deps *Dependencies
}

func NewEnrichCommand(deps *Dependencies) *EnrichCommand {
	return &EnrichCommand{deps: deps}
}

func (c *EnrichCommand) Name() string {
	return "enrich"
}

func (c *EnrichCommand) Description() string {
	return "Fill missing profile images from og:image page metadata"
}

func (c *EnrichCommand) Execute(ctx context.Context, session *domain.Session, args []string) error {
	if err := c.ensureDeps(); err != nil {
		return err
	}

	if !session.HasResults() {
		return c.deps.PrintError("No profiles loaded. Run a search first.")
	}

	missing := 0
	for _, p := range session.Profiles {
		if !p.HasImage() {
			missing++
		}
	}
	if missing == 0 {
		return c.deps.Print("All profiles already have images.")
	}

	resolved := c.deps.Enricher.Enrich(ctx, session.Profiles)
	return c.deps.Print(fmt.Sprintf("Resolved %d of %d missing profile images", resolved, missing))
}

func (c *EnrichCommand) ensureDeps() error {
	if c == nil || c.deps == nil {
		return fmt.Errorf("enrich command dependencies not configured")
	}

	if c.deps.Print == nil || c.deps.PrintError == nil {
		return fmt.Errorf("output callbacks not configured")
	}

	if c.deps.Enricher == nil {
		return fmt.Errorf("enrich command services not configured")
	}

	return nil
}
