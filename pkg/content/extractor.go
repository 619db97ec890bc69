package content

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// Extractor defines an interface for extracting program fields from the HTML
// of an episode detail page. Implementations hold all the site-specific
// knowledge; an empty result with a nil error means the field is not present
// on the page
type Extractor interface {
	ExtractTitle(htmlContent string) (string, error)
	ExtractDescription(htmlContent string) (string, error)
	ExtractAudioLink(htmlContent string) (string, error)
}

// audioExtensions lists the file extensions the generic extractor treats as audio
var audioExtensions = []string{".mp3", ".m4a", ".ogg", ".oga", ".wav"}

// GenericExtractor implements the Extractor interface for arbitrary
// article-like pages: title and description come from readability, the audio
// link is the first anchor pointing at an audio file
type GenericExtractor struct{}

// NewGenericExtractor creates a new generic extractor
func NewGenericExtractor() *GenericExtractor {
	return &GenericExtractor{}
}

// ExtractTitle extracts the page title, falling back to common markup when
// readability does not find one
func (e *GenericExtractor) ExtractTitle(htmlContent string) (string, error) {
	article, err := readability.FromReader(strings.NewReader(htmlContent), nil)
	if err == nil {
		if title := strings.TrimSpace(article.Title); title != "" {
			return title, nil
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title, nil
	}
	if title := strings.TrimSpace(doc.Find("h1").First().Text()); title != "" {
		return title, nil
	}
	if title, exists := doc.Find("meta[property='og:title']").Attr("content"); exists && strings.TrimSpace(title) != "" {
		return strings.TrimSpace(title), nil
	}

	return "", nil
}

// ExtractDescription extracts the page description, preferring the document
// excerpt and falling back to the full readable text
func (e *GenericExtractor) ExtractDescription(htmlContent string) (string, error) {
	article, err := readability.FromReader(strings.NewReader(htmlContent), nil)
	if err != nil {
		return "", fmt.Errorf("failed to extract description: %w", err)
	}

	if excerpt := strings.TrimSpace(article.Excerpt); excerpt != "" {
		return excerpt, nil
	}
	return strings.TrimSpace(article.TextContent), nil
}

// ExtractAudioLink returns the href of the first anchor pointing at an audio
// file, or an empty string when the page has none
func (e *GenericExtractor) ExtractAudioLink(htmlContent string) (string, error) {
	return FirstAudioLink(htmlContent, audioExtensions)
}

// FirstAudioLink returns the href of the first anchor whose target ends in one
// of the given extensions, compared case-insensitively. The href is returned
// as written in the document, relative links included
func FirstAudioLink(htmlContent string, extensions []string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	var found string
	doc.Find("a[href]").EachWithBreak(func(i int, link *goquery.Selection) bool {
		href, _ := link.Attr("href")
		href = strings.TrimSpace(href)
		lower := strings.ToLower(href)
		for _, ext := range extensions {
			if strings.HasSuffix(lower, ext) {
				found = href
				return false
			}
		}
		return true
	})

	return found, nil
}
