package urls

import (
	"context"
	"fmt"
	"strings"
)

// Filter decides whether a harvested URL is kept
type Filter interface {
	ShouldKeep(ctx context.Context, url string) (bool, error)
}

// ContainsFilter keeps URLs containing a marker substring. Listing pages link
// to many site pages; only the ones carrying the marker are episode detail
// pages
type ContainsFilter struct {
	marker string
}

// NewContainsFilter creates a new filter keeping URLs that contain marker.
// An empty marker keeps every URL
func NewContainsFilter(marker string) *ContainsFilter {
	return &ContainsFilter{
		marker: marker,
	}
}

// ShouldKeep returns true if the URL contains the marker substring
func (f *ContainsFilter) ShouldKeep(ctx context.Context, urlStr string) (bool, error) {
	return strings.Contains(urlStr, f.marker), nil
}

// FilterURLs applies all filters to a list of URLs, preserving order and
// duplicates
func FilterURLs(ctx context.Context, urls []string, filters ...Filter) ([]string, error) {
	filtered := make([]string, 0, len(urls))

	for _, urlStr := range urls {
		keep := true
		for _, f := range filters {
			shouldKeep, err := f.ShouldKeep(ctx, urlStr)
			if err != nil {
				return nil, fmt.Errorf("filter error for URL %s: %w", urlStr, err)
			}
			if !shouldKeep {
				keep = false
				break
			}
		}
		if keep {
			filtered = append(filtered, urlStr)
		}
	}

	return filtered, nil
}
