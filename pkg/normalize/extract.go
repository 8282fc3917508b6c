package normalize

import (
	"math"
	"regexp"
	"strings"
)

// numberPattern matches number-shaped substrings: optional currency prefix,
// digit groups with optional comma separators, optional decimal part.
var numberPattern = regexp.MustCompile(`\$?[\d,]+\.?\d*`)

// finalAnswerPatterns are tried top to bottom; the first match wins. Both are
// anchored to the end of the text so only a trailing clause is captured.
var finalAnswerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:is|are|was|were|equals?|=|:)\s*["']?([^"'.,!?]+)["']?[.,!?]?\s*$`),
	regexp.MustCompile(`(?i)(?:answer|result|total|value)(?:\s+is)?\s*[:\s]+["']?([^"'.,!?]+)["']?[.,!?]?\s*$`),
}

// Numbers extracts every parseable number from free text in order of
// occurrence, duplicates included. Substrings that fail to parse or parse to
// a non-finite value are dropped.
func Numbers(text string) []float64 {
	matches := numberPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	numbers := make([]float64, 0, len(matches))
	for _, match := range matches {
		value, err := Number(match)
		if err != nil {
			continue
		}
		if math.IsInf(value, 0) || math.IsNaN(value) {
			continue
		}
		numbers = append(numbers, value)
	}
	return numbers
}

// FinalAnswer pulls a terminal value out of verbose prose, e.g. the "Paris"
// in "The capital of France is Paris." Text without a recognizable trailing
// clause passes through unchanged, which also covers already-short answers.
func FinalAnswer(text string) string {
	text = strings.TrimSpace(text)
	for _, pattern := range finalAnswerPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return text
}
