package core

import (
	"context"
	"errors"
	"math"
	"sort"
	"sync"
	"time"
)

// Verifier runs a dataset of candidate answers through a scorer.
type Verifier struct {
	Dataset      Dataset
	Scorer       Scorer
	Workers      int
	Progress     func(completed, total int)
	TotalSamples int
}

// Run executes a verification and returns a report.
func (v *Verifier) Run(ctx context.Context) (Report, error) {
	if v.Dataset == nil || v.Scorer == nil {
		return Report{}, errors.New("verifier: dataset and scorer are required")
	}

	workers := v.Workers
	if workers <= 0 {
		workers = 1
	}

	started := time.Now()
	sampleCh, errCh := v.Dataset.Samples(ctx)

	resultsCh := make(chan Result, workers)
	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		for sample := range sampleCh {
			select {
			case <-ctx.Done():
				return
			default:
			}

			result := verifySample(ctx, v.Scorer, sample)
			select {
			case resultsCh <- result:
			case <-ctx.Done():
				return
			}
		}
	}

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go worker()
	}

	go func() {
		wg.Wait()
		close(resultsCh)
	}()

	var results []Result
	var datasetErr error
	for {
		select {
		case <-ctx.Done():
			return Report{}, ctx.Err()
		case err, ok := <-errCh:
			if ok && err != nil && datasetErr == nil {
				datasetErr = err
			}
		case result, ok := <-resultsCh:
			if !ok {
				if datasetErr != nil {
					return Report{}, datasetErr
				}
				report := Report{
					TaskName:   v.Dataset.Name(),
					ScorerName: v.Scorer.Name(),
					Metrics:    CalculateMetrics(results),
					Results:    results,
					StartedAt:  started,
					FinishedAt: time.Now(),
				}
				return report, nil
			}
			results = append(results, result)
			if v.Progress != nil {
				v.Progress(len(results), v.TotalSamples)
			}
		}
	}
}

func verifySample(ctx context.Context, scorer Scorer, sample Sample) Result {
	start := time.Now()
	result := Result{Sample: sample}

	score, err := scorer.Score(ctx, sample)
	if err != nil {
		result.Error = err.Error()
	}
	result.Score = score
	result.Duration = time.Since(start)
	return result
}

// CalculateMetrics aggregates per-sample verdicts into run statistics.
func CalculateMetrics(results []Result) Metrics {
	if len(results) == 0 {
		return Metrics{}
	}

	durations := make([]time.Duration, 0, len(results))
	matchTypes := make(map[MatchType]int)
	var correct, strictCorrect int

	for _, result := range results {
		durations = append(durations, result.Duration)
		if result.Score.Correct {
			correct++
		}
		if result.Score.StrictCorrect {
			strictCorrect++
		}
		if result.Score.MatchType != "" {
			matchTypes[result.Score.MatchType]++
		}
	}

	total := len(results)
	return Metrics{
		TotalSamples:   total,
		Correct:        correct,
		StrictCorrect:  strictCorrect,
		Accuracy:       float64(correct) / float64(total),
		StrictAccuracy: float64(strictCorrect) / float64(total),
		MatchTypes:     matchTypes,
		AvgDuration:    averageDuration(durations),
		P50Duration:    percentileDuration(durations, 0.50),
		P95Duration:    percentileDuration(durations, 0.95),
		P99Duration:    percentileDuration(durations, 0.99),
	}
}

func averageDuration(values []time.Duration) time.Duration {
	if len(values) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range values {
		sum += v
	}
	return time.Duration(int64(sum) / int64(len(values)))
}

func percentileDuration(values []time.Duration, p float64) time.Duration {
	if len(values) == 0 {
		return 0
	}
	copied := make([]time.Duration, len(values))
	copy(copied, values)
	sort.Slice(copied, func(i, j int) bool { return copied[i] < copied[j] })

	if p <= 0 {
		return copied[0]
	}
	if p >= 1 {
		return copied[len(copied)-1]
	}

	index := p * float64(len(copied)-1)
	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))
	if lower == upper {
		return copied[lower]
	}
	weight := index - float64(lower)
	lowerVal := float64(copied[lower])
	upperVal := float64(copied[upper])
	return time.Duration(lowerVal*(1-weight) + upperVal*weight)
}
