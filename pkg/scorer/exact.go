// Package scorer judges candidate answers against ground truth. The strict
// comparator decides exact matches; the generous scorer layers a fixed
// cascade of more lenient strategies on top of it for verbose model output.
package scorer

import (
	"strconv"
	"strings"

	"answercheck/pkg/normalize"
)

// ExactMatch is the default authoritative strict comparator. A truth that is
// a plain float literal compares as a number (with currency and percent
// decoration stripped from the candidate), a comma- or semicolon-separated
// truth compares element-wise in order, anything else compares as normalized
// strings. Total: malformed input is a non-match, never an error.
func ExactMatch(candidate, truth string) bool {
	if value, ok := plainFloat(truth); ok {
		parsed, err := normalize.Number(candidate)
		return err == nil && parsed == value
	}

	if strings.ContainsAny(truth, ",;") {
		truthElems := splitList(truth)
		candidateElems := splitList(candidate)
		if len(truthElems) != len(candidateElems) {
			return false
		}
		for i, truthElem := range truthElems {
			candidateElem := candidateElems[i]
			if value, ok := plainFloat(truthElem); ok {
				parsed, err := normalize.Number(candidateElem)
				if err != nil || parsed != value {
					return false
				}
			} else if normalize.String(candidateElem) != normalize.String(truthElem) {
				return false
			}
		}
		return true
	}

	return normalize.String(candidate) == normalize.String(truth)
}

func plainFloat(input string) (float64, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	return value, err == nil
}

func splitList(input string) []string {
	elems := strings.Split(strings.ReplaceAll(input, ";", ","), ",")
	for i, elem := range elems {
		elems[i] = strings.TrimSpace(elem)
	}
	return elems
}
