package nlp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnalyzeSentimentEmptyText(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n  "} {
		require.Zero(t, AnalyzeSentiment(text), "text=%q", text)
	}
}

func TestAnalyzeSentimentNegativeSaturation(t *testing.T) {
	// terrible (-3) + awful (-3) = -6 raw, past the -5 saturation point.
	got := AnalyzeSentiment("This place is terrible and awful")
	require.Equal(t, -1.0, got)
}

func TestAnalyzeSentimentPositiveSaturation(t *testing.T) {
	got := AnalyzeSentiment("Superb food, outstanding and wonderful service")
	require.Equal(t, 1.0, got)
}

func TestAnalyzeSentimentMildScore(t *testing.T) {
	// good (+3) / 5 = 0.6, inside the clamp range.
	got := AnalyzeSentiment("The food was good")
	require.InDelta(t, 0.6, got, 1e-9)
}

func TestAnalyzeSentimentNoLexiconMatches(t *testing.T) {
	require.Zero(t, AnalyzeSentiment("The quarterly report arrived on Monday"))
}

func TestAnalyzeSentimentAlwaysInRange(t *testing.T) {
	texts := []string{
		"terrible awful horrible worst disgusting nasty hate hate hate",
		"amazing awesome fantastic wonderful superb outstanding brilliant",
		"ok",
		"good but slow",
		"a mixed bag: great food, rude staff, dirty tables, lovely patio",
	}
	for _, text := range texts {
		got := AnalyzeSentiment(text)
		require.GreaterOrEqual(t, got, -1.0, "text=%q", text)
		require.LessOrEqual(t, got, 1.0, "text=%q", text)
	}
}

func TestAnalyzeSentimentIdempotent(t *testing.T) {
	text := "Great service but the portions were small and overpriced"
	require.Equal(t, AnalyzeSentiment(text), AnalyzeSentiment(text))
}
