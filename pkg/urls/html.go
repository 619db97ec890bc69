package urls

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PageClient fetches a page body as UTF-8 text
type PageClient interface {
	Get(ctx context.Context, url string) (string, error)
}

// HTMLFetcher fetches a listing page and returns the absolute URL of every
// link on it, narrowed down by the configured filters. Order is document order
// and duplicates are kept, so the result mirrors exactly what the listing
// links to
type HTMLFetcher struct {
	client  PageClient
	filters []Filter
}

// NewHTMLFetcher creates a new HTML fetcher applying the given filters
func NewHTMLFetcher(client PageClient, filters ...Filter) *HTMLFetcher {
	return &HTMLFetcher{
		client:  client,
		filters: filters,
	}
}

// Fetch fetches the HTML page at pageURL and extracts the links it points to
func (f *HTMLFetcher) Fetch(ctx context.Context, pageURL string) ([]string, error) {
	html, err := f.client.Get(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch HTML: %w", err)
	}

	links, err := ExtractLinks(html, pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to extract URLs: %w", err)
	}

	return FilterURLs(ctx, links, f.filters...)
}

// ExtractLinks returns the href of every anchor in the HTML document, resolved
// against base. Anchors without a usable target (fragments, javascript:,
// mailto:) are skipped. A page without links yields an empty list, not an error
func ExtractLinks(html, base string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	baseURL, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	var links []string
	doc.Find("a[href]").Each(func(i int, link *goquery.Selection) {
		href, exists := link.Attr("href")
		if !exists {
			return
		}

		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript:") || strings.HasPrefix(href, "mailto:") {
			return
		}

		parsed, err := url.Parse(href)
		if err != nil {
			return
		}

		links = append(links, baseURL.ResolveReference(parsed).String())
	})

	return links, nil
}
