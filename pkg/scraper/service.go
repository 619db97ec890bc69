package scraper

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/clemthi/create-rss-feed/pkg/content"
	"github.com/clemthi/create-rss-feed/pkg/domain"
)

// ListingFetcher lists candidate detail-page URLs from a listing page
type ListingFetcher interface {
	Fetch(ctx context.Context, pageURL string) ([]string, error)
}

// PageClient fetches a page body as UTF-8 text
type PageClient interface {
	Get(ctx context.Context, url string) (string, error)
}

// Service walks a listing page, builds one program record per detail page and
// returns the records ready for serialization: complete, dated and ordered
// most recent first
type Service struct {
	listing   ListingFetcher
	pages     PageClient
	extractor content.Extractor
	logger    *zap.Logger
}

// NewService creates a new scrape service
func NewService(listing ListingFetcher, pages PageClient, extractor content.Extractor, logger *zap.Logger) *Service {
	return &Service{
		listing:   listing,
		pages:     pages,
		extractor: extractor,
		logger:    logger,
	}
}

// Run executes one scrape starting from startURL. A fetch failure on the
// listing or on any detail page aborts the whole run; detail pages missing
// required fields are skipped with a warning
func (s *Service) Run(ctx context.Context, startURL string) ([]domain.Program, error) {
	detailURLs, err := s.listing.Fetch(ctx, startURL)
	if err != nil {
		return nil, fmt.Errorf("failed to list detail pages: %w", err)
	}
	s.logger.Debug("listing page fetched",
		zap.String("url", startURL),
		zap.Int("candidates", len(detailURLs)))

	programs := make([]domain.Program, 0, len(detailURLs))
	for _, detailURL := range detailURLs {
		program, ok, err := s.extractProgram(ctx, detailURL)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		programs = append(programs, program)
	}

	s.logger.Info("programs fetched", zap.Int("count", len(programs)))

	return s.aggregate(programs), nil
}

// extractProgram builds a record from one detail page. ok is false when the
// page does not carry all the required fields
func (s *Service) extractProgram(ctx context.Context, pageURL string) (domain.Program, bool, error) {
	s.logger.Info("parsing detail page", zap.String("url", pageURL))

	htmlContent, err := s.pages.Get(ctx, pageURL)
	if err != nil {
		return domain.Program{}, false, fmt.Errorf("failed to fetch detail page %s: %w", pageURL, err)
	}

	title, err := s.extractor.ExtractTitle(htmlContent)
	if err != nil {
		return domain.Program{}, false, fmt.Errorf("failed to extract title from %s: %w", pageURL, err)
	}
	description, err := s.extractor.ExtractDescription(htmlContent)
	if err != nil {
		return domain.Program{}, false, fmt.Errorf("failed to extract description from %s: %w", pageURL, err)
	}
	audioHref, err := s.extractor.ExtractAudioLink(htmlContent)
	if err != nil {
		return domain.Program{}, false, fmt.Errorf("failed to extract audio link from %s: %w", pageURL, err)
	}

	// Repair the encoding before trimming: mojibake for some accented letters
	// ends in a non-breaking space that trimming would strip
	program := domain.Program{
		Title:       strings.TrimSpace(content.FixEncoding(title)),
		Description: strings.TrimSpace(content.FixEncoding(description)),
		Link:        resolveLink(pageURL, audioHref),
	}

	if !program.Complete() {
		s.logger.Warn("cannot find all data for program",
			zap.String("title", program.Title),
			zap.String("url", pageURL))
		return domain.Program{}, false, nil
	}

	date, ok := content.DateFromLink(program.Link)
	if !ok {
		s.logger.Warn("cannot determine date of program",
			zap.String("title", program.Title),
			zap.String("url", pageURL))
	}
	program.Date = date

	return program, true, nil
}

// aggregate drops records without a derivable date and orders the rest most
// recent first. Records sharing a date keep their listing order
func (s *Service) aggregate(programs []domain.Program) []domain.Program {
	dated := make([]domain.Program, 0, len(programs))
	for _, p := range programs {
		if !p.Dated() {
			s.logger.Debug("dropping program without date",
				zap.String("title", p.Title),
				zap.String("link", p.Link))
			continue
		}
		dated = append(dated, p)
	}

	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].Date > dated[j].Date
	})

	return dated
}

// resolveLink resolves href against the URL of the page it appeared on. An
// unparseable href is returned as is
func resolveLink(pageURL, href string) string {
	if href == "" {
		return ""
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return href
	}

	return base.ResolveReference(ref).String()
}
