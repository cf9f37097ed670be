package nlp

import "strings"

// sentimentScale is the fixed normalization divisor for raw lexicon scores.
// Raw scores with magnitude above it saturate at ±1, which the emotional
// bucket thresholds downstream depend on. Do not tune it independently.
const sentimentScale = 5.0

// AnalyzeSentiment scores the polarity of text in [-1, 1]. Zero means
// neutral or unanalyzable (empty or whitespace-only text, internal error).
//
// The score is the sum of matched lexicon valences over the word tokens of
// text, divided by sentimentScale and clamped.
func AnalyzeSentiment(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}

	return failsoft("sentiment", 0, func() float64 {
		raw := 0
		for _, token := range tokenize(text) {
			raw += polarityLexicon[token]
		}
		return clamp(float64(raw)/sentimentScale, -1, 1)
	})
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
