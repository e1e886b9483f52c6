// Package textutil normalizes free-text name fields the way the rest of the
// system expects to find them stored: diacritics stripped, lowercased.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize removes diacritics and lowercases s. "Maria Conceição" becomes
// "maria conceicao". Falls back to plain lowercasing if the transform fails.
func Normalize(s string) string {
	out, _, err := transform.String(stripper, s)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return strings.ToLower(strings.TrimSpace(out))
}
