package sentiment

import (
	"github.com/jonreiter/govader"
)

var analyzer = govader.NewSentimentIntensityAnalyzer()

const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"

	labelThreshold = 0.20
)

// CrossCheck scores text with VADER and buckets the compound score into a
// label. The result is stored next to the heuristic lexicon score so large
// disagreements between the two can be surfaced for review.
func CrossCheck(text string) (float64, string) {
	scores := analyzer.PolarityScores(text)
	compound := scores.Compound

	var label string
	switch {
	case compound >= labelThreshold:
		label = LabelPositive
	case compound <= -labelThreshold:
		label = LabelNegative
	default:
		label = LabelNeutral
	}

	return compound, label
}
