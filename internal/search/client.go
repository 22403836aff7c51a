package search

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hasnatAfzal/LinkdinScrapper/internal/constants"
	"github.com/hasnatAfzal/LinkdinScrapper/internal/domain"
	"github.com/hasnatAfzal/LinkdinScrapper/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// ProgressFunc is invoked with (pagesCompleted, maxPages, itemsAccumulated)
// before and after every page fetch.
type ProgressFunc func(pagesCompleted, maxPages, itemsAccumulated int)

// Options bound a single retrieval run.
type Options struct {
	MaxPages   int
	Delay      time.Duration
	Extra      map[string]string
	OnProgress ProgressFunc
}

// pageFetcher issues one search request at a 1-based start offset.
type pageFetcher interface {
	FetchPage(ctx context.Context, query string, start int64, extra map[string]string) (*customsearch.Search, error)
}

// Client drives paginated Custom Search retrieval. Requests are strictly
// sequential; the only suspension point is the configured inter-page delay.
type Client struct {
	fetcher pageFetcher
	logger  *zap.Logger
	sleep   func(time.Duration)
}

func NewClient(ctx context.Context, apiKey, engineID string, logger *zap.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, errors.NewConfigError("Google API key is required", "GOOGLE_API_KEY")
	}
	if engineID == "" {
		return nil, errors.NewConfigError("Custom Search engine ID is required", "GOOGLE_CSE_ID")
	}

	svc, err := customsearch.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, errors.NewConfigError("failed to create search service", "GOOGLE_API_KEY").WithCause(err)
	}

	logger.Info("Search client initialized",
		zap.String("engine_id", engineID),
		zap.Int64("results_per_page", constants.SearchConfig.ResultsPerPage))

	return &Client{
		fetcher: &googleFetcher{svc: svc, engineID: engineID},
		logger:  logger,
		sleep:   time.Sleep,
	}, nil
}

// Search fetches up to opts.MaxPages pages for query and returns every item
// in page order, annotated with page number and running index. Per-page
// transport or decode failures are logged and end pagination early; the
// caller only ever sees the accumulated items.
func (c *Client) Search(ctx context.Context, query string, opts Options) []*domain.SearchResult {
	all := make([]*domain.SearchResult, 0, opts.MaxPages*int(constants.SearchConfig.ResultsPerPage))

	for page := 1; page <= opts.MaxPages; page++ {
		reportProgress(opts.OnProgress, page-1, opts.MaxPages, len(all))

		c.logger.Info("Fetching search page",
			zap.Int("page", page),
			zap.Int("max_pages", opts.MaxPages))

		// The API uses 1-based start offsets.
		start := int64(page-1)*constants.SearchConfig.ResultsPerPage + 1

		resp, err := c.fetcher.FetchPage(ctx, query, start, opts.Extra)
		if err != nil {
			c.logPageFailure(page, err)
			break
		}

		if len(resp.Items) == 0 {
			c.logger.Info("No more results available",
				zap.Int("pages_fetched", page-1))
			break
		}

		for _, item := range resp.Items {
			all = append(all, &domain.SearchResult{
				Title:       item.Title,
				Snippet:     item.Snippet,
				Link:        item.Link,
				Pagemap:     json.RawMessage(item.Pagemap),
				PageNumber:  page,
				ResultIndex: len(all) + 1,
			})
		}

		c.logger.Info("Search page retrieved",
			zap.Int("page", page),
			zap.Int("items", len(resp.Items)))

		reportProgress(opts.OnProgress, page, opts.MaxPages, len(all))

		if page < opts.MaxPages && opts.Delay > 0 {
			c.logger.Info("Waiting before next request",
				zap.Duration("delay", opts.Delay))
			c.sleep(opts.Delay)
		}
	}

	c.logger.Info("Search completed", zap.Int("total_results", len(all)))
	return all
}

func (c *Client) logPageFailure(page int, err error) {
	if apiErr, ok := err.(*googleapi.Error); ok {
		c.logger.Error("Search request rejected",
			zap.Int("page", page),
			zap.Int("status", apiErr.Code),
			zap.String("message", apiErr.Message))
		return
	}

	c.logger.Error("Search page fetch failed",
		zap.Int("page", page),
		zap.Error(err))
}

func reportProgress(fn ProgressFunc, pagesCompleted, maxPages, items int) {
	if fn != nil {
		fn(pagesCompleted, maxPages, items)
	}
}

// googleFetcher is the production pageFetcher over the Custom Search JSON API.
type googleFetcher struct {
	svc      *customsearch.Service
	engineID string
}

func (g *googleFetcher) FetchPage(ctx context.Context, query string, start int64, extra map[string]string) (*customsearch.Search, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.SearchConfig.RequestTimeout)
	defer cancel()

	call := g.svc.Cse.List().
		Q(query).
		Cx(g.engineID).
		Start(start).
		Num(constants.SearchConfig.ResultsPerPage)

	callOpts := make([]googleapi.CallOption, 0, len(extra))
	for key, value := range extra {
		callOpts = append(callOpts, googleapi.QueryParameter(key, value))
	}

	return call.Context(ctx).Do(callOpts...)
}
