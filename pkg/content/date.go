package content

import "regexp"

// datePattern matches audio links whose filename carries the broadcast date,
// e.g. "mrx_2023_07_04.mp3". Matching is case-insensitive and anchored to the
// end of the link
var datePattern = regexp.MustCompile(`(?i)_(\d{4})_(\d{2})_(\d{2})\.[a-z0-9]+$`)

// DateFromLink derives the broadcast date from an audio link whose filename
// ends in _YYYY_MM_DD.<ext>. The date is returned in YYYY-MM-DD form; ok is
// false when the filename does not follow the convention
func DateFromLink(link string) (date string, ok bool) {
	m := datePattern.FindStringSubmatch(link)
	if m == nil {
		return "", false
	}
	return m[1] + "-" + m[2] + "-" + m[3], true
}
