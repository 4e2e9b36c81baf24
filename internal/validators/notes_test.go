package validators

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeNotes(t *testing.T) {
	assert.Equal(t, "hello", SanitizeNotes("  hello  "))
	assert.Equal(t, "&lt;b&gt;hi&lt;/b&gt;", SanitizeNotes("<b>hi</b>"))
	assert.Equal(t, "", SanitizeNotes("   "))
}

func TestSanitizeNotesCapKeepsValidUTF8(t *testing.T) {
	// 200 two-byte runes escape to 400 bytes; a byte cap at 255 would land
	// mid-rune
	got := SanitizeNotes(strings.Repeat("é", 200))

	assert.LessOrEqual(t, len(got), MaxNotesLength)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 254, len(got))
}

func TestSanitizeNotesCapDropsSplitEntity(t *testing.T) {
	// the trailing "&" escapes to "&amp;", which straddles the cap
	got := SanitizeNotes(strings.Repeat("a", 253) + "&x")

	assert.LessOrEqual(t, len(got), MaxNotesLength)
	assert.NotContains(t, got, "&")
	assert.Equal(t, strings.Repeat("a", 253), got)
}
