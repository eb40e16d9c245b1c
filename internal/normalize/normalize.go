// Package normalize canonicalizes course display text so that case, accent
// and whitespace variants of the same name compare equal.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Name lowercases text, decomposes it (NFD), drops combining marks and
// collapses whitespace runs to single spaces. The result is trimmed.
//
// Name is idempotent: Name(Name(s)) == Name(s).
func Name(text string) string {
	lowered := strings.ToLower(text)

	// transform.Chain keeps internal state, so a fresh chain is built per call.
	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	stripped, _, err := transform.String(stripper, lowered)
	if err != nil {
		stripped = lowered
	}

	return strings.Join(strings.Fields(stripped), " ")
}

// Equal reports whether a and b normalize to the same text.
func Equal(a, b string) bool {
	return Name(a) == Name(b)
}
