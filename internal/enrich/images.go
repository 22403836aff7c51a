package enrich

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/hasnatAfzal/LinkdinScrapper/internal/constants"
	"github.com/hasnatAfzal/LinkdinScrapper/internal/domain"
	"github.com/hasnatAfzal/LinkdinScrapper/pkg/errors"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// ImageEnricher backfills missing profile images by fetching each profile
// page and reading its og:image meta tag. Lookups that fail for any reason
// leave the profile untouched.
type ImageEnricher struct {
	httpClient *http.Client
	logger     *zap.Logger
}

func NewImageEnricher(logger *zap.Logger) *ImageEnricher {
	return &ImageEnricher{
		httpClient: &http.Client{Timeout: constants.EnrichConfig.RequestTimeout},
		logger:     logger,
	}
}

// Enrich resolves images for every profile whose Image is empty, fetching
// pages with bounded concurrency. Returns the number of images resolved.
func (e *ImageEnricher) Enrich(ctx context.Context, profiles []*domain.Profile) int {
	pending := make([]*domain.Profile, 0, len(profiles))
	for _, p := range profiles {
		if p != nil && p.Image == "" && p.Link != "" {
			pending = append(pending, p)
		}
	}

	if len(pending) == 0 {
		return 0
	}

	e.logger.Info("Enriching profile images",
		zap.Int("profiles", len(pending)),
		zap.Int("concurrency", constants.EnrichConfig.Concurrency))

	resolved := 0
	var mu sync.Mutex

	p := pool.New().WithMaxGoroutines(constants.EnrichConfig.Concurrency)
	for _, profile := range pending {
		profile := profile
		p.Go(func() {
			imageURL, err := e.fetchPageImage(ctx, profile.Link)
			if err != nil {
				e.logger.Debug("Image lookup failed",
					zap.String("link", profile.Link),
					zap.Error(err))
				return
			}
			if imageURL == "" {
				return
			}

			mu.Lock()
			profile.Image = imageURL
			resolved++
			mu.Unlock()
		})
	}
	p.Wait()

	e.logger.Info("Image enrichment completed",
		zap.Int("resolved", resolved),
		zap.Int("attempted", len(pending)))

	return resolved
}

func (e *ImageEnricher) fetchPageImage(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", constants.EnrichConfig.UserAgent)

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.NewAPIError(fmt.Sprintf("unexpected status code: %d", resp.StatusCode),
			resp.StatusCode, map[string]any{"url": pageURL})
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}

	content, _ := doc.Find(`meta[property="og:image"]`).First().Attr("content")
	return strings.TrimSpace(content), nil
}
