package validators

import (
	"html"
	"strings"
	"unicode/utf8"
)

const MaxNotesLength = 255

// SanitizeNotes trims, HTML-neutralizes and length-caps free-text notes
// before they are stored. The cap applies after escaping so the stored
// value never exceeds the column size; the cut backs up to a rune boundary
// and drops any escape entity it would otherwise split.
func SanitizeNotes(notes string) string {
	s := html.EscapeString(strings.TrimSpace(notes))
	if len(s) <= MaxNotesLength {
		return s
	}

	cut := MaxNotesLength
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	s = s[:cut]

	if amp := strings.LastIndexByte(s, '&'); amp >= 0 && !strings.Contains(s[amp:], ";") {
		s = s[:amp]
	}
	return s
}
