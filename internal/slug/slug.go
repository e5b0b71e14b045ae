// Package slug derives URL-safe identifiers from display titles.
package slug

import (
	"strings"
	"unicode"
)

// Derive maps a title to its slug: lower-cased, with every run of
// non-letter/non-digit characters collapsed to a single hyphen and
// leading/trailing hyphens stripped. Letters outside ASCII are kept
// lower-cased, not transliterated. Deterministic and pure.
//
// An empty or all-symbol title yields an empty slug; callers must treat
// that as a validation failure rather than persist it.
func Derive(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	pendingHyphen := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	return b.String()
}
