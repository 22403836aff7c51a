package command

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hasnatAfzal/LinkdinScrapper/internal/domain"
	"github.com/hasnatAfzal/LinkdinScrapper/internal/extract"
	"github.com/hasnatAfzal/LinkdinScrapper/internal/search"
	"go.uber.org/zap"
)

type SearchCommand struct {
	deps *Dependencies
}

func NewSearchCommand(deps *Dependencies) *SearchCommand {
	return &SearchCommand{deps: deps}
}

func (c *SearchCommand) Name() string {
	return "search"
}

func (c *SearchCommand) Description() string {
	return "Search public LinkedIn profiles matching the given keywords"
}

func (c *SearchCommand) Execute(ctx context.Context, session *domain.Session, args []string) error {
	if err := c.ensureDeps(); err != nil {
		return err
	}

	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return c.deps.PrintError("search needs a query, e.g. search software engineer berlin")
	}

	fullQuery := query
	if session.SiteFilter != "" {
		fullQuery = fmt.Sprintf("%s site:%s", query, session.SiteFilter)
	}

	c.deps.Logger.Info("Search requested",
		zap.String("query", query),
		zap.Int("pages", session.Pages),
		zap.Int("delay_seconds", session.DelaySeconds))

	// Progress fires before and after every page; consecutive identical
	// renders are collapsed.
	lastUpdate := ""
	opts := search.Options{
		MaxPages: session.Pages,
		Delay:    time.Duration(session.DelaySeconds) * time.Second,
		Extra:    c.deps.ExtraParams,
		OnProgress: func(pagesCompleted, maxPages, resultCount int) {
			update := c.deps.Formatter.FormatProgress(pagesCompleted, maxPages, resultCount)
			if update == lastUpdate {
				return
			}
			lastUpdate = update
			_ = c.deps.Print(update)
		},
	}

	results := c.deps.Searcher.Search(ctx, fullQuery, opts)

	profiles := make([]*domain.Profile, 0, len(results))
	for _, result := range results {
		profiles = append(profiles, extract.Extract(result))
	}

	// An empty round leaves the previous result set in place.
	if len(profiles) == 0 {
		return c.deps.Print(c.deps.Formatter.FormatSummary(query, profiles))
	}

	session.SetResults(query, profiles)

	if err := c.deps.Print(c.deps.Formatter.FormatSummary(query, profiles)); err != nil {
		return err
	}
	return c.deps.Print(c.deps.Formatter.FormatPreview(profiles))
}

func (c *SearchCommand) ensureDeps() error {
	if c == nil || c.deps == nil {
		return fmt.Errorf("search command dependencies not configured")
	}

	if c.deps.Print == nil || c.deps.PrintError == nil {
		return fmt.Errorf("output callbacks not configured")
	}

	if c.deps.Searcher == nil || c.deps.Formatter == nil {
		return fmt.Errorf("search command services not configured")
	}

	if c.deps.Logger == nil {
		c.deps.Logger = zap.NewNop()
	}

	return nil
}
