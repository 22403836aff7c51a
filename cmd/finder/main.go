package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/hasnatAfzal/LinkdinScrapper/internal/app"
	"github.com/hasnatAfzal/LinkdinScrapper/internal/config"
	"github.com/hasnatAfzal/LinkdinScrapper/internal/constants"
	"github.com/hasnatAfzal/LinkdinScrapper/internal/util"
	"go.uber.org/zap"
)

func main() {
	query := flag.String("query", "", "run one search for these keywords and exit")
	pages := flag.Int("pages", 0, "pages to fetch per search, 1-10 (overrides SEARCH_MAX_PAGES)")
	delay := flag.Int("delay", -1, "seconds between pages, 0-60 (overrides SEARCH_DELAY_SECONDS)")
	site := flag.String("site", "", "site restriction for queries (overrides SEARCH_SITE_FILTER)")
	out := flag.String("out", "", "CSV output path for -query mode (default: timestamped name)")
	enrichImages := flag.Bool("enrich", false, "fill missing profile images after searching")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Flags win over environment configuration.
	if *pages > 0 {
		cfg.Search.MaxPages = util.Clamp(*pages, constants.SearchConfig.MinPages, constants.SearchConfig.MaxPages)
	}
	if *delay >= 0 {
		cfg.Search.DelaySeconds = util.Clamp(*delay, constants.SearchConfig.MinDelay, constants.SearchConfig.MaxDelay)
	}
	if *site != "" {
		cfg.Search.SiteFilter = strings.TrimPrefix(util.Normalize(*site), "site:")
	}

	logger, err := util.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("LinkedIn profile finder starting...",
		zap.String("log_level", cfg.Logging.Level),
		zap.Int("pages", cfg.Search.MaxPages),
		zap.Int("delay_seconds", cfg.Search.DelaySeconds),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	}()

	container, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to assemble application services", zap.Error(err))
		os.Exit(1)
	}

	finder := app.New(container, os.Stdin, os.Stdout)

	if *query != "" {
		if err := finder.RunOnce(ctx, *query, *enrichImages, *out); err != nil {
			logger.Error("Search run failed", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	if err := finder.Run(ctx); err != nil {
		logger.Error("Interactive session ended with error", zap.Error(err))
		os.Exit(1)
	}
}
