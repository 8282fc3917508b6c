// Package normalize provides the canonical text and number forms that answer
// comparison is built on. Every function is pure and total except Number,
// which reports whether its input parses at all.
package normalize

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// ErrNotANumber is returned by Number when the input does not parse as a
// single numeric value.
var ErrNotANumber = errors.New("normalize: not a number")

var articles = []string{"a ", "an ", "the "}

// String canonicalizes free text for comparison: lower-cased, punctuation
// removed (alphanumerics and internal whitespace kept), whitespace collapsed
// to single spaces, leading articles stripped. Idempotent.
func String(input string) string {
	lowered := strings.ToLower(input)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	text := strings.Join(strings.Fields(b.String()), " ")

	for stripped := true; stripped; {
		stripped = false
		for _, article := range articles {
			if strings.HasPrefix(text, article) {
				text = strings.TrimPrefix(text, article)
				stripped = true
				break
			}
		}
	}
	return text
}

// Number parses a numeric-looking string, tolerating currency and percent
// decoration and comma thousands separators.
func Number(input string) (float64, error) {
	cleaned := strings.TrimSpace(input)
	for _, decoration := range []string{"$", "£", "€", "%", ","} {
		cleaned = strings.ReplaceAll(cleaned, decoration, "")
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, ErrNotANumber
	}
	return value, nil
}
