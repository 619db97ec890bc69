package feed

import (
	"fmt"
	"os"
	"time"

	"github.com/gorilla/feeds"

	"github.com/clemthi/create-rss-feed/pkg/domain"
)

// dateLayout is the broadcast date form carried by domain.Program
const dateLayout = "2006-01-02"

// Builder assembles RSS 2.0 feeds from program records
type Builder struct {
	title       string
	link        string
	description string
	now         func() time.Time
}

// Option configures a Builder
type Option func(*Builder)

// WithClock overrides the time source used for the feed build date
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		b.now = now
	}
}

// NewBuilder creates a feed builder for the channel described by title, link
// and description
func NewBuilder(title, link, description string, opts ...Option) *Builder {
	b := &Builder{
		title:       title,
		link:        link,
		description: description,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build converts program records into an RSS feed. Every record must carry a
// broadcast date; the publication time is local midnight of that date and the
// audio link doubles as the item guid
func (b *Builder) Build(programs []domain.Program) (*feeds.Feed, error) {
	items := make([]*feeds.Item, 0, len(programs))
	for _, p := range programs {
		published, err := time.ParseInLocation(dateLayout, p.Date, time.Local)
		if err != nil {
			return nil, fmt.Errorf("failed to parse date %q for %s: %w", p.Date, p.Link, err)
		}

		items = append(items, &feeds.Item{
			Title:       p.Title,
			Link:        &feeds.Link{Href: p.Link},
			Description: p.Description,
			Id:          p.Link,
			Created:     published,
		})
	}

	return &feeds.Feed{
		Title:       b.title,
		Link:        &feeds.Link{Href: b.link},
		Description: b.description,
		Updated:     b.now(),
		Items:       items,
	}, nil
}

// WriteFile renders the feed as RSS 2.0 XML into path, replacing any existing
// file
func WriteFile(f *feeds.Feed, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := f.WriteRss(out); err != nil {
		out.Close()
		return fmt.Errorf("failed to write feed to %s: %w", path, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
