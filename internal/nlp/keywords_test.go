package nlp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractKeywordsEmptyText(t *testing.T) {
	require.Empty(t, ExtractKeywords("", 5))
	require.Empty(t, ExtractKeywords("   \n\t", 5))
}

func TestExtractKeywordsFrequencyRanking(t *testing.T) {
	text := "The pizza was amazing, absolutely amazing pizza and great service"

	got := ExtractKeywords(text, 2)
	require.Equal(t, []string{"pizza", "amazing"}, got)
}

func TestExtractKeywordsDefaultCount(t *testing.T) {
	text := "The pizza was amazing, absolutely amazing pizza and great service"

	// Non-positive count selects the default of five.
	got := ExtractKeywords(text, 0)
	require.Equal(t, []string{"pizza", "amazing", "absolutely", "great", "service"}, got)
}

func TestExtractKeywordsMinimumTermLength(t *testing.T) {
	// "go" survives stopword filtering but is too short to be a keyword.
	got := ExtractKeywords("go to the gym", 5)
	require.Equal(t, []string{"gym"}, got)
}

func TestExtractKeywordsStopwordsOnly(t *testing.T) {
	require.Empty(t, ExtractKeywords("the and but or with", 5))
}

func TestExtractKeywordsNeverExceedsCount(t *testing.T) {
	text := "burgers fries shakes salads wraps tacos nachos wings onion rings"
	for _, count := range []int{1, 3, 5, 20} {
		got := ExtractKeywords(text, count)
		require.LessOrEqual(t, len(got), count, "count=%d", count)
		for _, kw := range got {
			require.GreaterOrEqual(t, len(kw), 3, "keyword=%q", kw)
		}
	}
}

func TestExtractKeywordsDeterministic(t *testing.T) {
	text := "slow service slow kitchen cold coffee cold plates"
	first := ExtractKeywords(text, 4)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, ExtractKeywords(text, 4))
	}
}
