package core

import "time"

// MatchType identifies which comparison strategy produced a verdict.
type MatchType string

const (
	MatchExact         MatchType = "exact"
	MatchNumberExtract MatchType = "number_extract"
	MatchContains      MatchType = "contains"
	MatchExtracted     MatchType = "extracted"
	MatchWords         MatchType = "words_match"
	MatchUnorderedList MatchType = "unordered_list"
	MatchAbbreviation  MatchType = "abbreviation_match"
	MatchNone          MatchType = "no_match"
)

// ExactMatcher is the authoritative strict comparator. It must be
// deterministic and total: any pair of strings yields a verdict, never a
// panic. Implementations are substitutable; scorer.ExactMatch is the default.
type ExactMatcher func(candidate, truth string) bool

// ScoreResult is the full verdict for one candidate/truth pair.
// StrictCorrect is always the outcome of the exact comparator alone,
// whichever fallback produced Correct; Correct is true whenever
// StrictCorrect is.
type ScoreResult struct {
	Correct       bool      `json:"correct" yaml:"correct"`
	MatchType     MatchType `json:"match_type" yaml:"match_type"`
	StrictCorrect bool      `json:"strict_correct" yaml:"strict_correct"`
}

// Result captures the outcome for one sample.
type Result struct {
	Sample   Sample        `json:"sample" yaml:"sample"`
	Score    ScoreResult   `json:"score" yaml:"score"`
	Error    string        `json:"error,omitempty" yaml:"error,omitempty"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Report summarizes a verification run.
type Report struct {
	TaskName   string            `json:"task_name" yaml:"task_name"`
	ScorerName string            `json:"scorer_name" yaml:"scorer_name"`
	Metrics    Metrics           `json:"metrics" yaml:"metrics"`
	Results    []Result          `json:"results" yaml:"results"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	StartedAt  time.Time         `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time         `json:"finished_at" yaml:"finished_at"`
}

// Metrics aggregates verification statistics.
type Metrics struct {
	TotalSamples   int               `json:"total_samples" yaml:"total_samples"`
	Correct        int               `json:"correct" yaml:"correct"`
	StrictCorrect  int               `json:"strict_correct" yaml:"strict_correct"`
	Accuracy       float64           `json:"accuracy" yaml:"accuracy"`
	StrictAccuracy float64           `json:"strict_accuracy" yaml:"strict_accuracy"`
	MatchTypes     map[MatchType]int `json:"match_types,omitempty" yaml:"match_types,omitempty"`
	AvgDuration    time.Duration     `json:"avg_duration" yaml:"avg_duration"`
	P50Duration    time.Duration     `json:"p50_duration" yaml:"p50_duration"`
	P95Duration    time.Duration     `json:"p95_duration" yaml:"p95_duration"`
	P99Duration    time.Duration     `json:"p99_duration" yaml:"p99_duration"`
}
