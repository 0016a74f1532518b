package keyword

import (
	"strings"
	"unicode"

	"smartfactory-assistant/pkg/textmatch"
)

func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsMark(r)
	})
}

func containsPhrase(words, phrase []string) bool {
	if len(phrase) == 0 || len(phrase) > len(words) {
		return false
	}
	for i := 0; i+len(phrase) <= len(words); i++ {
		match := true
		for j, p := range phrase {
			if words[i+j] != p {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func containsAnyPhrase(words []string, phrases [][]string) bool {
	for _, p := range phrases {
		if containsPhrase(words, p) {
			return true
		}
	}
	return false
}

func tokenizeAll(phrases []string) [][]string {
	out := make([][]string, 0, len(phrases))
	for _, p := range phrases {
		if t := tokenize(textmatch.Canonical(p)); len(t) > 0 {
			out = append(out, t)
		}
	}
	return out
}
