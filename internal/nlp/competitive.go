package nlp

import (
	"regexp"
	"strings"
)

// comparativePhrases gates competitor extraction: no phrase, no mentions.
var comparativePhrases = []string{
	"better than", "worse than", "compared to", "similar to", "unlike",
	"prefer", "rather go to", "instead of", "more than", "less than",
}

// Subsets of comparativePhrases used to decide comparison direction.
var (
	comparativePositivePhrases = []string{"better than", "prefer", "more than"}
	comparativeNegativePhrases = []string{"worse than", "rather go to", "instead of"}
)

// competitorPattern matches capitalized words with an optional possessive,
// e.g. "Joe's". A stand-in for NER: it happily matches sentence-initial
// common words too, and callers get the raw matches unfiltered.
var competitorPattern = regexp.MustCompile(`[A-Z][a-z]+('s)?`)

// CompetitiveInsight reports competitor references found in a review.
// CompetitorMentions keeps every regex match in order, duplicates included,
// with no validation against real entities.
type CompetitiveInsight struct {
	CompetitorMentions  []string `json:"competitor_mentions"`
	ComparativePositive bool     `json:"comparative_positive"`
}

// AnalyzeCompetitiveInsights detects comparative language in text and, when
// present, extracts potential competitor names. ComparativePositive is true
// only when strictly more positive than negative comparative phrases occur;
// ties stay false. Empty text or failure yields the zero insight.
func AnalyzeCompetitiveInsights(text string) CompetitiveInsight {
	if strings.TrimSpace(text) == "" {
		return CompetitiveInsight{}
	}

	return failsoft("competitive", CompetitiveInsight{}, func() CompetitiveInsight {
		lower := strings.ToLower(text)

		hasComparison := false
		for _, phrase := range comparativePhrases {
			if strings.Contains(lower, phrase) {
				hasComparison = true
				break
			}
		}
		if !hasComparison {
			return CompetitiveInsight{}
		}

		positive, negative := 0, 0
		for _, phrase := range comparativePositivePhrases {
			if strings.Contains(lower, phrase) {
				positive++
			}
		}
		for _, phrase := range comparativeNegativePhrases {
			if strings.Contains(lower, phrase) {
				negative++
			}
		}

		return CompetitiveInsight{
			CompetitorMentions:  competitorPattern.FindAllString(text, -1),
			ComparativePositive: positive > negative,
		}
	})
}
