package core

import "context"

// Scorer judges a sample's candidate answer against its ground truth.
type Scorer interface {
	Name() string
	Score(ctx context.Context, sample Sample) (ScoreResult, error)
}
