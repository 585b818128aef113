package analyzer

import (
	"math"
	"strings"
)

// SourceWeights maps feedback channels to priority multipliers. Support
// tickets carry more urgency than sales or research feedback; unlisted
// sources multiply by 1.0.
var SourceWeights = map[string]float64{
	"support":  1.2,
	"sales":    1.0,
	"research": 0.8,
	"unknown":  1.0,
}

// PriorityScore combines classification confidence, sentiment, strategic
// alignment, and the source multiplier into one 0-10 score. Negative
// sentiment raises priority; alignment dominates the mix.
func PriorityScore(confidence, sentiment, alignment float64, sourceType string) float64 {
	base := confidence * 0.3
	sentimentImpact := (10 - sentiment) * 0.2
	strategicImpact := alignment * 0.4

	mult, ok := SourceWeights[strings.ToLower(sourceType)]
	if !ok {
		mult = 1.0
	}

	return round2(math.Min((base+sentimentImpact+strategicImpact)*mult, 10.0))
}
