package sites

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/clemthi/create-rss-feed/pkg/content"
)

// MrXDetailMarker is the path fragment identifying episode detail pages among
// the links of the rendezvousavecmrx.free.fr listing page
const MrXDetailMarker = "detail_emission.php"

// MrXExtractor implements the content.Extractor interface for
// rendezvousavecmrx.free.fr detail pages. The page layout is fixed: the title
// lives in the div with id "titre", the description in the div with id
// "emission", and the audio file is the first link ending in ".mp3"
type MrXExtractor struct{}

// NewMrXExtractor creates a new extractor for rendezvousavecmrx.free.fr
func NewMrXExtractor() *MrXExtractor {
	return &MrXExtractor{}
}

// ExtractTitle extracts the episode title
func (e *MrXExtractor) ExtractTitle(htmlContent string) (string, error) {
	return textOfFirst(htmlContent, "div#titre")
}

// ExtractDescription extracts the episode description
func (e *MrXExtractor) ExtractDescription(htmlContent string) (string, error) {
	return textOfFirst(htmlContent, "div#emission")
}

// ExtractAudioLink returns the href of the first link ending in ".mp3"
func (e *MrXExtractor) ExtractAudioLink(htmlContent string) (string, error) {
	return content.FirstAudioLink(htmlContent, []string{".mp3"})
}

// textOfFirst returns the text of the first element matching selector, as
// written in the document, or an empty string when the document has none.
// Surrounding whitespace is kept: trimming before the encoding repair would
// destroy mojibake sequences ending in a non-breaking space
func textOfFirst(htmlContent, selector string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc.Find(selector).First().Text(), nil
}
