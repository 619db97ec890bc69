package sites

import (
	"fmt"
	"strings"

	"github.com/clemthi/create-rss-feed/pkg/content"
)

// Site bundles everything that is specific to one scraped website: how its
// listing page marks links to episode detail pages, and how the program fields
// are laid out on those pages
type Site struct {
	Name         string
	DetailMarker string // substring identifying detail-page URLs, empty keeps every link
	Extractor    content.Extractor
}

// ForName returns the site profile registered under name, matched
// case-insensitively. An empty name selects the rendezvousavecmrx.free.fr
// profile
func ForName(name string) (Site, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "mrx":
		return Site{
			Name:         "mrx",
			DetailMarker: MrXDetailMarker,
			Extractor:    NewMrXExtractor(),
		}, nil
	case "generic":
		return Site{
			Name:      "generic",
			Extractor: content.NewGenericExtractor(),
		}, nil
	default:
		return Site{}, fmt.Errorf("unknown extraction strategy: %s", name)
	}
}
