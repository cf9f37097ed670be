package nlp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnalyzeCompetitiveInsightsEmptyText(t *testing.T) {
	got := AnalyzeCompetitiveInsights("")
	require.Empty(t, got.CompetitorMentions)
	require.False(t, got.ComparativePositive)
}

func TestAnalyzeCompetitiveInsightsFavorableComparison(t *testing.T) {
	got := AnalyzeCompetitiveInsights("The food here is better than at Joe's Diner")

	require.True(t, got.ComparativePositive)
	require.Contains(t, got.CompetitorMentions, "Joe's")
	require.Contains(t, got.CompetitorMentions, "Diner")
	// Sentence-initial words match the capitalized-word pattern too.
	require.Contains(t, got.CompetitorMentions, "The")
}

func TestAnalyzeCompetitiveInsightsNoComparativePhrase(t *testing.T) {
	// Capitalized names alone never trigger extraction.
	got := AnalyzeCompetitiveInsights("Mario's pasta was fantastic")
	require.Empty(t, got.CompetitorMentions)
	require.False(t, got.ComparativePositive)
}

func TestAnalyzeCompetitiveInsightsUnfavorableComparison(t *testing.T) {
	got := AnalyzeCompetitiveInsights("I would rather go to Luigi's instead of this place")

	require.False(t, got.ComparativePositive)
	require.Contains(t, got.CompetitorMentions, "Luigi's")
}

func TestAnalyzeCompetitiveInsightsTieIsNotPositive(t *testing.T) {
	got := AnalyzeCompetitiveInsights("Better than Alpha but worse than Bravo")

	require.NotEmpty(t, got.CompetitorMentions)
	require.False(t, got.ComparativePositive)
}

func TestAnalyzeCompetitiveInsightsKeepsDuplicates(t *testing.T) {
	got := AnalyzeCompetitiveInsights("Acme is better than Acme used to be")

	count := 0
	for _, m := range got.CompetitorMentions {
		if m == "Acme" {
			count++
		}
	}
	require.Equal(t, 2, count)
}
