package app

import (
	"context"
	"fmt"

	"github.com/hasnatAfzal/LinkdinScrapper/internal/adapter"
	"github.com/hasnatAfzal/LinkdinScrapper/internal/command"
	"github.com/hasnatAfzal/LinkdinScrapper/internal/config"
	"github.com/hasnatAfzal/LinkdinScrapper/internal/domain"
	"github.com/hasnatAfzal/LinkdinScrapper/internal/enrich"
	"github.com/hasnatAfzal/LinkdinScrapper/internal/export"
	"github.com/hasnatAfzal/LinkdinScrapper/internal/search"
	"go.uber.org/zap"
)

// Container bundles assembled services for constructing runtime components.
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	Searcher  *search.Client
	Enricher  *enrich.ImageEnricher
	Exporter  *export.CSVExporter
	Formatter *adapter.ProfileFormatter
	Parser    *adapter.LineParser
}

// Build assembles all services. Credential validation happens here, before
// any interactive work starts.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	searchClient, err := search.NewClient(ctx, cfg.Google.APIKey, cfg.Google.SearchEngineID, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create search client: %w", err)
	}

	return &Container{
		Config:    cfg,
		Logger:    logger,
		Searcher:  searchClient,
		Enricher:  enrich.NewImageEnricher(logger),
		Exporter:  export.NewCSVExporter(cfg.Export.OutputDir, logger),
		Formatter: adapter.NewProfileFormatter(),
		Parser:    adapter.NewLineParser(),
	}, nil
}

// NewSession seeds interactive state from the configured defaults.
func (c *Container) NewSession() *domain.Session {
	return domain.NewSession(c.Config.Search.MaxPages, c.Config.Search.DelaySeconds, c.Config.Search.SiteFilter)
}

// Commands builds the command registry wired to the given output callbacks.
func (c *Container) Commands(print, printError func(string) error) *command.Registry {
	deps := &command.Dependencies{
		Searcher:    c.Searcher,
		Enricher:    c.Enricher,
		Exporter:    c.Exporter,
		Formatter:   c.Formatter,
		ExtraParams: c.Config.Search.ExtraParams(),
		Print:       print,
		PrintError:  printError,
		Logger:      c.Logger,
	}

	registry := command.NewRegistry()
	registry.Register(command.NewSearchCommand(deps))
	registry.Register(command.NewShowCommand(deps))
	registry.Register(command.NewExportCommand(deps))
	registry.Register(command.NewEnrichCommand(deps))
	registry.Register(command.NewSetCommand(deps))
	registry.Register(command.NewHelpCommand(deps, registry))

	registry.RegisterAlias("find", "search")
	registry.RegisterAlias("results", "show")
	registry.RegisterAlias("save", "export")
	registry.RegisterAlias("images", "enrich")

	return registry
}
