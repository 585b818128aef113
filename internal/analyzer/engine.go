package analyzer

import (
	"context"
	"math"

	"InsightPipe/internal/model"
)

// Uncategorized is returned when no taxonomy category matches.
const Uncategorized = "Uncategorized"

// NeutralSentiment is the fallback score for empty text or analysis failure.
const NeutralSentiment = 5.0

// Engine defines the capability interface for feedback analysis. The rule
// engine never returns errors; remote-backed implementations may, and
// callers fall back to the rules on any error.
type Engine interface {
	Classify(ctx context.Context, text string) (category string, confidence float64, err error)
	ScoreSentiment(ctx context.Context, text string) (float64, error)
	ScoreAlignment(ctx context.Context, text string, goals []model.StrategicGoal) (float64, error)
	ExtractEntities(ctx context.Context, text string) ([]string, error)
	Name() string
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
