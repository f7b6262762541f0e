// Package country resolves free-text country names to ISO 3166-1
// alpha-2 codes for flag-icon lookup.
package country

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Resolve maps a free-text country name to a lowercase two-letter
// code. Lookup order: direct code or name match, then the alias table
// after normalization, then fixed fallbacks. When nothing matches the
// original input is returned unchanged, signaling "cannot resolve"
// without an error.
func Resolve(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return input
	}

	key := normalize(trimmed)

	// A bare alpha-2 code passes through as-is.
	if len(key) == 2 {
		if _, ok := codes[key]; ok {
			return key
		}
	}

	if code, ok := names[key]; ok {
		return code
	}
	if code, ok := aliases[key]; ok {
		return code
	}
	if code, ok := fallbacks[key]; ok {
		return code
	}
	return input
}

// stripDiacritics removes combining marks after NFD decomposition, so
// "Côte d'Ivoire" and "Cote d'Ivoire" normalize to the same key.
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalize lowercases, folds diacritics and drops punctuation, keeping
// single spaces between words.
func normalize(s string) string {
	folded, _, err := transform.String(stripDiacritics, s)
	if err != nil {
		folded = s
	}
	var b strings.Builder
	b.Grow(len(folded))
	lastSpace := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		case unicode.IsSpace(r) && !lastSpace && b.Len() > 0:
			b.WriteRune(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}
