// Package textmatch holds the Vietnamese-aware string primitives used by the
// command resolver: diacritic folding, edit-distance similarity and the tiered
// fuzzy phrase matcher.
package textmatch

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold strips diacritics so "Đặt phòng" becomes "Dat phong". Case is preserved.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.Map(foldStroke, out)
}

// đ and Đ carry a stroke, not a combining mark, so NFD leaves them alone.
func foldStroke(r rune) rune {
	switch r {
	case 'đ':
		return 'd'
	case 'Đ':
		return 'D'
	}
	return r
}

// Canonical trims, lowercases and recomposes s to NFC.
func Canonical(s string) string {
	return norm.NFC.String(strings.ToLower(strings.TrimSpace(s)))
}

// FoldedCanonical is Fold(Canonical(s)).
func FoldedCanonical(s string) string {
	return Fold(Canonical(s))
}
