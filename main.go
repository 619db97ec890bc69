package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/clemthi/create-rss-feed/pkg/config"
	"github.com/clemthi/create-rss-feed/pkg/feed"
	"github.com/clemthi/create-rss-feed/pkg/httpclient"
	"github.com/clemthi/create-rss-feed/pkg/logging"
	"github.com/clemthi/create-rss-feed/pkg/scraper"
	"github.com/clemthi/create-rss-feed/pkg/sites"
	"github.com/clemthi/create-rss-feed/pkg/urls"
)

func main() {
	logger, err := logging.New(os.Getenv("LOG_LEVEL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(context.Background(), logger); err != nil {
		logger.Error("error occurred during process", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

// run executes one scrape and reports the first error encountered. Any failure
// leaves a previously written output file untouched
func run(ctx context.Context, logger *zap.Logger) error {
	configPath := os.Getenv("CONFIG_FILE")
	if configPath == "" {
		configPath = config.DefaultPath
	}

	cfg, err := config.Load(configPath, config.EnvProvider{LookupEnv: os.LookupEnv})
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	site, err := sites.ForName(cfg.Strategy)
	if err != nil {
		return err
	}
	logger.Debug("configuration loaded",
		zap.String("start_url", cfg.StartURL),
		zap.String("output_file", cfg.OutputFile),
		zap.String("strategy", site.Name))

	client := httpclient.NewClient(
		httpclient.WithUserAgent(cfg.UserAgent),
		httpclient.WithTimeout(cfg.Timeout),
		httpclient.WithRequestsPerSecond(cfg.RequestsPerSecond),
	)
	fetcher := urls.NewHTMLFetcher(client, urls.NewContainsFilter(site.DetailMarker))
	service := scraper.NewService(fetcher, client, site.Extractor, logger)

	programs, err := service.Run(ctx, cfg.StartURL)
	if err != nil {
		return fmt.Errorf("failed to scrape programs: %w", err)
	}

	builder := feed.NewBuilder(cfg.ProgramTitle, cfg.ProgramURL, cfg.ProgramDesc)
	rssFeed, err := builder.Build(programs)
	if err != nil {
		return fmt.Errorf("failed to build feed: %w", err)
	}

	if err := feed.WriteFile(rssFeed, cfg.OutputFile); err != nil {
		return fmt.Errorf("failed to write feed: %w", err)
	}

	logger.Info("rss file created",
		zap.String("file", cfg.OutputFile),
		zap.Int("items", len(programs)))
	return nil
}
