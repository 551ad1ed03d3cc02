package customercode

import (
	"strings"
	"unicode"
)

// DefaultMaxLength is the abbreviation length used when none is configured.
const DefaultMaxLength = 3

// Fallback is the prefix used when a name has no usable words.
const Fallback = "CUS"

var ignoredWords = map[string]bool{
	// corporate suffixes
	"LTD": true, "LIMITED": true, "PVT": true, "PRIVATE": true,
	"COMPANY": true, "CORP": true, "CORPORATION": true,
	"INC": true, "INCORPORATED": true, "LLC": true, "LLP": true,
	// stopwords
	"THE": true, "AND": true, "OF": true, "FOR": true, "IN": true,
	"ON": true, "AT": true, "BY": true, "WITH": true,
}

// Abbreviate derives the alphabetic code prefix of a customer name.
//
// Non-letters separate words. Corporate suffixes and stopwords are dropped.
// A single remaining word yields its first maxLength letters; otherwise the
// initials of the first maxLength words are used. Names with nothing left
// map to Fallback.
func Abbreviate(name string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}

	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return unicode.ToUpper(r)
		}
		return ' '
	}, name)

	var words []string
	for _, w := range strings.Fields(cleaned) {
		if !ignoredWords[w] {
			words = append(words, w)
		}
	}

	switch {
	case len(words) == 0:
		return Fallback
	case len(words) == 1:
		r := []rune(words[0])
		if len(r) > maxLength {
			r = r[:maxLength]
		}
		return string(r)
	}

	if len(words) > maxLength {
		words = words[:maxLength]
	}
	var b strings.Builder
	for _, w := range words {
		b.WriteRune([]rune(w)[0])
	}
	return b.String()
}
