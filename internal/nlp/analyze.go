package nlp

import (
	"math"
	"strings"
)

// Emotional intensity buckets derived from the sentiment magnitude.
const (
	EmotionalVeryPositive = "very positive"
	EmotionalPositive     = "positive"
	EmotionalNeutral      = "neutral"
	EmotionalNegative     = "negative"
	EmotionalVeryNegative = "very negative"
)

// actionableTerms flag reviews that suggest the business should act.
// Any single case-insensitive substring match suffices.
var actionableTerms = []string{
	"should", "need", "improve", "fix", "better", "change", "consider",
	"recommend", "suggestion", "try", "please", "would", "could", "wish",
}

// ReviewAnalysis is the combined result of the per-review analyses. The
// zero value (with Emotional set to neutral) is the documented default for
// empty input and internal failures.
type ReviewAnalysis struct {
	Sentiment  float64  `json:"sentiment"`
	Keywords   []string `json:"keywords"`
	Topics     []string `json:"topics"`
	Emotional  string   `json:"emotional"`
	Actionable bool     `json:"actionable"`
}

func defaultAnalysis() ReviewAnalysis {
	return ReviewAnalysis{Emotional: EmotionalNeutral}
}

// AnalyzeReview composes sentiment, keyword, and topic analysis over one
// review. rating is carried for interface parity with the ingestion record;
// the composed analyses derive everything from the text alone.
//
// Empty or whitespace-only text short-circuits to the default result
// without attempting any sub-analysis. A failure during composition also
// returns the default result whole, never a partially populated one.
func AnalyzeReview(text string, rating int, businessCategory string) ReviewAnalysis {
	_ = rating

	if strings.TrimSpace(text) == "" {
		return defaultAnalysis()
	}

	return failsoft("analyze_review", defaultAnalysis(), func() ReviewAnalysis {
		sentiment := AnalyzeSentiment(text)

		lower := strings.ToLower(text)
		actionable := false
		for _, term := range actionableTerms {
			if strings.Contains(lower, term) {
				actionable = true
				break
			}
		}

		return ReviewAnalysis{
			Sentiment:  sentiment,
			Keywords:   ExtractKeywords(text, DefaultKeywordCount),
			Topics:     ClassifyTopics(text, businessCategory),
			Emotional:  emotionalBucket(sentiment),
			Actionable: actionable,
		}
	})
}

// emotionalBucket maps a sentiment score to its intensity label. The
// comparisons are strict, so exactly 0.3 or 0.7 falls to the lower bucket.
func emotionalBucket(sentiment float64) string {
	switch magnitude := math.Abs(sentiment); {
	case magnitude > 0.7:
		if sentiment > 0 {
			return EmotionalVeryPositive
		}
		return EmotionalVeryNegative
	case magnitude > 0.3:
		if sentiment > 0 {
			return EmotionalPositive
		}
		return EmotionalNegative
	default:
		return EmotionalNeutral
	}
}
