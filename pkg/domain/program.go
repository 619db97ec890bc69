package domain

// Program represents one radio show episode assembled from its detail page
type Program struct {
	Title       string
	Description string
	Link        string // absolute URL of the audio file
	Date        string // broadcast date in YYYY-MM-DD form, empty when unknown
}

// Complete reports whether all the fields required for a feed item are present
func (p Program) Complete() bool {
	return p.Title != "" && p.Description != "" && p.Link != ""
}

// Dated reports whether a broadcast date could be derived for the episode
func (p Program) Dated() bool {
	return p.Date != ""
}
