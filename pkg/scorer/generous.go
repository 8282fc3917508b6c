package scorer

import (
	"context"
	"math"
	"strings"

	"answercheck/pkg/core"
	"answercheck/pkg/normalize"
)

// abbreviations are applied by sequential substring replacement in exactly
// this order; earlier entries can rewrite text a later entry would match.
var abbreviations = []struct {
	pattern     string
	replacement string
}{
	{"st.", "saint"},
	{"st ", "saint "},
	{"mt.", "mount"},
	{"mt ", "mount "},
	{"dr.", "doctor"},
	{"dr ", "doctor "},
	{"mr.", "mister"},
	{"mrs.", "missus"},
	{"ft.", "fort"},
	{"ft ", "fort "},
}

// Generous scores candidate answers with a fixed cascade of increasingly
// lenient strategies: the strict comparator first, then numeric extraction,
// substring containment, final-answer extraction, word subset, unordered list
// comparison, and abbreviation expansion. The first success wins and names
// the verdict's match type.
type Generous struct {
	// Exact overrides the authoritative strict comparator. Defaults to
	// ExactMatch.
	Exact core.ExactMatcher
	// Strict disables every fallback strategy.
	Strict bool
}

func (g Generous) Name() string {
	if g.Strict {
		return "strict"
	}
	return "generous"
}

func (g Generous) Score(_ context.Context, sample core.Sample) (core.ScoreResult, error) {
	return ScoreWithDetails(g.Exact, sample.Answer, sample.Expected, g.Strict), nil
}

// Score runs the fallback cascade and reports whether the candidate matches
// the truth, along with the strategy that decided it.
func Score(exact core.ExactMatcher, candidate, truth string) (bool, core.MatchType) {
	if exact == nil {
		exact = ExactMatch
	}

	if exact(candidate, truth) {
		return true, core.MatchExact
	}

	if matchNumber(candidate, truth) {
		return true, core.MatchNumberExtract
	}

	normAnswer := normalize.String(candidate)
	normTruth := normalize.String(truth)

	if normTruth != "" && strings.Contains(normAnswer, normTruth) {
		return true, core.MatchContains
	}

	if exact(normalize.FinalAnswer(candidate), truth) {
		return true, core.MatchExtracted
	}

	if matchWordSubset(normAnswer, normTruth) {
		return true, core.MatchWords
	}

	if matchUnorderedList(candidate, truth) {
		return true, core.MatchUnorderedList
	}

	if matchAbbreviations(candidate, truth) {
		return true, core.MatchAbbreviation
	}

	return false, core.MatchNone
}

// ScoreWithDetails produces the full verdict. StrictCorrect is always the
// outcome of the exact comparator alone, regardless of which fallback (if
// any) decided Correct. With strict set, no fallback runs and the match type
// is exact or no_match only.
func ScoreWithDetails(exact core.ExactMatcher, candidate, truth string, strict bool) core.ScoreResult {
	if exact == nil {
		exact = ExactMatch
	}

	strictCorrect := exact(candidate, truth)

	if strict {
		matchType := core.MatchNone
		if strictCorrect {
			matchType = core.MatchExact
		}
		return core.ScoreResult{
			Correct:       strictCorrect,
			MatchType:     matchType,
			StrictCorrect: strictCorrect,
		}
	}

	correct, matchType := Score(exact, candidate, truth)
	return core.ScoreResult{
		Correct:       correct,
		MatchType:     matchType,
		StrictCorrect: strictCorrect,
	}
}

func matchNumber(candidate, truth string) bool {
	value, err := normalize.Number(truth)
	if err != nil {
		return false
	}
	for _, n := range normalize.Numbers(candidate) {
		if n == value {
			return true
		}
		// "3" vs "3.0": integral values compare equal after truncation.
		// Compared as floats; an int64 conversion would overflow above 2^63.
		if value == math.Trunc(value) && n == math.Trunc(n) && math.Trunc(n) == math.Trunc(value) {
			return true
		}
	}
	return false
}

func matchWordSubset(normAnswer, normTruth string) bool {
	truthWords := strings.Fields(normTruth)
	if len(truthWords) == 0 {
		return false
	}

	answerSet := make(map[string]struct{})
	for _, word := range strings.Fields(normAnswer) {
		answerSet[word] = struct{}{}
	}

	truthSet := make(map[string]struct{}, len(truthWords))
	for _, word := range truthWords {
		if _, ok := answerSet[word]; !ok {
			return false
		}
		truthSet[word] = struct{}{}
	}

	// Equal word sets are not a subset match; the unordered-list strategy
	// owns that case.
	return len(truthSet) < len(answerSet)
}

func matchUnorderedList(candidate, truth string) bool {
	if !strings.Contains(truth, ",") || !strings.Contains(candidate, ",") {
		return false
	}

	truthItems := normalizedSet(strings.Split(truth, ","))
	candidateItems := normalizedSet(strings.Split(candidate, ","))
	if len(truthItems) == 0 || len(truthItems) != len(candidateItems) {
		return false
	}
	for item := range truthItems {
		if _, ok := candidateItems[item]; !ok {
			return false
		}
	}
	return true
}

func normalizedSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[normalize.String(strings.TrimSpace(item))] = struct{}{}
	}
	return set
}

func matchAbbreviations(candidate, truth string) bool {
	return normalize.String(expandAbbreviations(candidate)) == normalize.String(expandAbbreviations(truth))
}

func expandAbbreviations(text string) string {
	result := strings.ToLower(text)
	for _, a := range abbreviations {
		result = strings.ReplaceAll(result, a.pattern, a.replacement)
	}
	return result
}
