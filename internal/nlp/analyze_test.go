package nlp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnalyzeReviewEmptyText(t *testing.T) {
	want := ReviewAnalysis{Emotional: EmotionalNeutral}

	// Rating never changes the empty-text default.
	require.Equal(t, want, AnalyzeReview("", 5, ""))
	require.Equal(t, want, AnalyzeReview("", 1, "Restaurant"))
	require.Equal(t, want, AnalyzeReview("   \n", 3, ""))
}

func TestAnalyzeReviewPositiveComposite(t *testing.T) {
	got := AnalyzeReview("The staff was friendly and helpful, great service", 5, "")

	// friendly (2) + helpful (2) + great (3) = 7 raw, saturates at 1.
	require.Equal(t, 1.0, got.Sentiment)
	require.Equal(t, EmotionalVeryPositive, got.Emotional)
	require.Contains(t, got.Topics, "service")
	require.Contains(t, got.Topics, "quality")
	require.NotEmpty(t, got.Keywords)
	require.False(t, got.Actionable)
}

func TestAnalyzeReviewModeratelyPositive(t *testing.T) {
	got := AnalyzeReview("The food was good", 4, "")

	require.InDelta(t, 0.6, got.Sentiment, 1e-9)
	require.Equal(t, EmotionalPositive, got.Emotional)
}

func TestAnalyzeReviewActionable(t *testing.T) {
	got := AnalyzeReview("You should fix the parking situation", 3, "")

	require.True(t, got.Actionable)
	require.Equal(t, EmotionalNeutral, got.Emotional)
	require.Zero(t, got.Sentiment)
}

func TestAnalyzeReviewVeryNegative(t *testing.T) {
	got := AnalyzeReview("terrible and awful, the worst", 1, "")

	require.Equal(t, -1.0, got.Sentiment)
	require.Equal(t, EmotionalVeryNegative, got.Emotional)
}

func TestEmotionalBucketBoundaries(t *testing.T) {
	cases := []struct {
		sentiment float64
		want      string
	}{
		{0, EmotionalNeutral},
		{0.3, EmotionalNeutral},  // boundary falls to the lower bucket
		{-0.3, EmotionalNeutral},
		{0.31, EmotionalPositive},
		{-0.31, EmotionalNegative},
		{0.7, EmotionalPositive}, // boundary falls to the lower bucket
		{-0.7, EmotionalNegative},
		{0.71, EmotionalVeryPositive},
		{-0.71, EmotionalVeryNegative},
		{1, EmotionalVeryPositive},
		{-1, EmotionalVeryNegative},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, emotionalBucket(tc.sentiment), "sentiment=%v", tc.sentiment)
	}
}

func TestAnalyzeReviewIdempotent(t *testing.T) {
	text := "Great pizza, better than Slice City, but please fix the slow service"
	first := AnalyzeReview(text, 4, "Pizza Restaurant")
	require.Equal(t, first, AnalyzeReview(text, 4, "Pizza Restaurant"))
}
