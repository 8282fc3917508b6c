package scorer

import (
	"context"
	"slices"
	"sort"
	"strings"
	"testing"

	"answercheck/pkg/core"

	"github.com/stretchr/testify/require"
)

func TestScoreExactWinsFirst(t *testing.T) {
	correct, matchType := Score(nil, "Paris", "paris")
	require.True(t, correct)
	require.Equal(t, core.MatchExact, matchType)
}

func TestScoreNumberExtract(t *testing.T) {
	correct, matchType := Score(nil, "The total is 1,000.", "1000")
	require.True(t, correct)
	require.Equal(t, core.MatchNumberExtract, matchType)

	// integral equivalence: 3.0 in prose matches the truth "3"
	correct, matchType = Score(nil, "It costs 3.0 dollars", "3")
	require.True(t, correct)
	require.Equal(t, core.MatchNumberExtract, matchType)
}

func TestScoreNumberExtractBeyondInt64(t *testing.T) {
	// distinct integral values above 2^63 must not collapse into a match
	correct, matchType := Score(nil, "The count is 20000000000000000000", "10000000000000000000")
	require.False(t, correct)
	require.Equal(t, core.MatchNone, matchType)

	correct, matchType = Score(nil, "The count is 10000000000000000000", "10000000000000000000")
	require.True(t, correct)
	require.Equal(t, core.MatchNumberExtract, matchType)
}

func TestScoreContains(t *testing.T) {
	correct, matchType := Score(nil, "The capital is Shillong, a hill city.", "Shillong")
	require.True(t, correct)
	require.Equal(t, core.MatchContains, matchType)
}

func TestScoreExtracted(t *testing.T) {
	// an order-insensitive comparator: extraction re-runs it on the trailing
	// clause after plain containment has already failed
	wordSets := func(candidate, truth string) bool {
		c := strings.Fields(strings.ToLower(candidate))
		g := strings.Fields(strings.ToLower(truth))
		sort.Strings(c)
		sort.Strings(g)
		return len(c) > 0 && slices.Equal(c, g)
	}

	correct, matchType := Score(wordSets, "The answer is Paris France", "France Paris")
	require.True(t, correct)
	require.Equal(t, core.MatchExtracted, matchType)
}

func TestScoreWordSubset(t *testing.T) {
	correct, matchType := Score(nil, "Marie Curie won twice", "Curie Marie")
	require.True(t, correct)
	require.Equal(t, core.MatchWords, matchType)
}

func TestScoreUnorderedList(t *testing.T) {
	correct, matchType := Score(nil, "celery, broccoli, lettuce", "broccoli, celery, lettuce")
	require.True(t, correct)
	require.Equal(t, core.MatchUnorderedList, matchType)
}

func TestScoreAbbreviation(t *testing.T) {
	correct, matchType := Score(nil, "St. Louis", "Saint Louis")
	require.True(t, correct)
	require.Equal(t, core.MatchAbbreviation, matchType)

	correct, matchType = Score(nil, "Mt Everest", "Mount Everest")
	require.True(t, correct)
	require.Equal(t, core.MatchAbbreviation, matchType)
}

func TestScoreNoMatch(t *testing.T) {
	correct, matchType := Score(nil, "Paris", "Berlin")
	require.False(t, correct)
	require.Equal(t, core.MatchNone, matchType)
}

func TestScoreNoneLiteral(t *testing.T) {
	// a nil upstream answer arrives as the literal string "None"
	correct, matchType := Score(nil, "None", "None")
	require.True(t, correct)
	require.Equal(t, core.MatchExact, matchType)

	correct, matchType = Score(nil, "None", "Berlin")
	require.False(t, correct)
	require.Equal(t, core.MatchNone, matchType)
}

func TestScoreWithDetailsStrictInvariant(t *testing.T) {
	pairs := []struct{ candidate, truth string }{
		{"Paris", "paris"},
		{"The total is 1,000.", "1000"},
		{"celery, broccoli, lettuce", "broccoli, celery, lettuce"},
		{"Paris", "Berlin"},
		{"St. Louis", "Saint Louis"},
	}

	for _, pair := range pairs {
		result := ScoreWithDetails(nil, pair.candidate, pair.truth, false)
		require.Equal(t, ExactMatch(pair.candidate, pair.truth), result.StrictCorrect, pair)
		if result.StrictCorrect {
			require.True(t, result.Correct, pair)
			require.Equal(t, core.MatchExact, result.MatchType, pair)
		}
	}
}

func TestScoreWithDetailsStrictMode(t *testing.T) {
	result := ScoreWithDetails(nil, "The total is 1,000.", "1000", true)
	require.False(t, result.Correct)
	require.False(t, result.StrictCorrect)
	require.Equal(t, core.MatchNone, result.MatchType)

	result = ScoreWithDetails(nil, "1000", "1000", true)
	require.True(t, result.Correct)
	require.True(t, result.StrictCorrect)
	require.Equal(t, core.MatchExact, result.MatchType)
}

func TestScoreCustomExactMatcher(t *testing.T) {
	// the strict comparator is a black-box collaborator and substitutable
	always := func(_, _ string) bool { return true }
	result := ScoreWithDetails(always, "anything", "whatever", false)
	require.True(t, result.Correct)
	require.True(t, result.StrictCorrect)
	require.Equal(t, core.MatchExact, result.MatchType)
}

func TestGenerousScorer(t *testing.T) {
	sc := Generous{}
	require.Equal(t, "generous", sc.Name())

	result, err := sc.Score(context.Background(), core.Sample{
		Answer:   "The capital is Shillong, a hill city.",
		Expected: "Shillong",
	})
	require.NoError(t, err)
	require.True(t, result.Correct)
	require.Equal(t, core.MatchContains, result.MatchType)
	require.False(t, result.StrictCorrect)

	strict := Generous{Strict: true}
	require.Equal(t, "strict", strict.Name())
	result, err = strict.Score(context.Background(), core.Sample{
		Answer:   "The capital is Shillong, a hill city.",
		Expected: "Shillong",
	})
	require.NoError(t, err)
	require.False(t, result.Correct)
	require.Equal(t, core.MatchNone, result.MatchType)
}
