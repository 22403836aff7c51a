package command

import (
	"context"

	"github.com/hasnatAfzal/LinkdinScrapper/internal/adapter"
	"github.com/hasnatAfzal/LinkdinScrapper/internal/domain"
	"github.com/hasnatAfzal/LinkdinScrapper/internal/search"
	"go.uber.org/zap"
)

type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, session *domain.Session, args []string) error
}

// Searcher runs a paginated search and returns the raw results it managed to
// collect. Page-level failures are absorbed, never surfaced here.
type Searcher interface {
	Search(ctx context.Context, query string, opts search.Options) []*domain.SearchResult
}

// Enricher backfills missing profile images, returning how many it resolved.
type Enricher interface {
	Enrich(ctx context.Context, profiles []*domain.Profile) int
}

// Exporter persists profiles and returns the path of the written file.
type Exporter interface {
	Export(profiles []*domain.Profile, path string) (string, error)
}

type Dependencies struct {
	Searcher    Searcher
	Enricher    Enricher
	Exporter    Exporter
	Formatter   *adapter.ProfileFormatter
	ExtraParams map[string]string
	Print       func(message string) error
	PrintError  func(message string) error
	Logger      *zap.Logger
}
