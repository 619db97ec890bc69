package content

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// FixEncoding repairs the classic mojibake produced when UTF-8 text is decoded
// as Windows-1252, turning e.g. "Ã©mission" back into "émission". Each rune is
// mapped back to its Windows-1252 byte; when the resulting byte sequence is
// valid UTF-8 the reinterpretation is returned. Text that does not round-trip
// this way was not mojibake and is returned unchanged
func FixEncoding(s string) string {
	if isASCII(s) {
		return s
	}

	raw, err := charmap.Windows1252.NewEncoder().String(s)
	if err != nil {
		// Contains runes outside Windows-1252, so it cannot be mojibake
		return s
	}
	if raw == s || !utf8.ValidString(raw) {
		return s
	}
	return raw
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
