package nlp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculateResponseUrgencyNoText(t *testing.T) {
	require.Equal(t, 1, CalculateResponseUrgency("", 1, true))
	require.Equal(t, 1, CalculateResponseUrgency("", 5, false))
}

func TestCalculateResponseUrgencyWhitespaceOnlyText(t *testing.T) {
	// Only the exact empty string short-circuits to 1. Whitespace-only text
	// walks the normal scoring path and lands on the base score.
	require.Equal(t, 5, CalculateResponseUrgency(" ", 4, false))
	require.Equal(t, 5, CalculateResponseUrgency("\t\n", 4, false))
}

func TestCalculateResponseUrgencyWorstCaseClamped(t *testing.T) {
	// base 5 + low rating 3 + photos 2 + urgent keywords 2 = 12, capped.
	got := CalculateResponseUrgency("Terrible food, filthy place, legal action", 1, true)
	require.Equal(t, 10, got)
}

func TestCalculateResponseUrgencyBaseline(t *testing.T) {
	require.Equal(t, 5, CalculateResponseUrgency("A perfectly ordinary visit", 5, false))
}

func TestCalculateResponseUrgencyRatingAdjustments(t *testing.T) {
	text := "An average experience overall"

	require.Equal(t, 8, CalculateResponseUrgency(text, 2, false))
	require.Equal(t, 8, CalculateResponseUrgency(text, 1, false))
	require.Equal(t, 6, CalculateResponseUrgency(text, 3, false))
	require.Equal(t, 5, CalculateResponseUrgency(text, 4, false))
}

func TestCalculateResponseUrgencyPhotoAdjustment(t *testing.T) {
	text := "An average experience overall"
	require.Equal(t, 7, CalculateResponseUrgency(text, 5, true))
}

func TestCalculateResponseUrgencyLongTextAdjustment(t *testing.T) {
	long := strings.Repeat("a calm and pleasant evening out ", 8) // > 200 chars
	require.Equal(t, 6, CalculateResponseUrgency(long, 4, false))
}

func TestCalculateResponseUrgencyUrgentKeyword(t *testing.T) {
	require.Equal(t, 7, CalculateResponseUrgency("I demand a refund", 5, false))
	// Multiple urgent keywords still count once.
	require.Equal(t, 7, CalculateResponseUrgency("refund or lawsuit, your call", 5, false))
}

func TestCalculateResponseUrgencyMonotonicFactors(t *testing.T) {
	text := "An average experience overall"
	base := CalculateResponseUrgency(text, 4, false)

	require.GreaterOrEqual(t, CalculateResponseUrgency(text, 2, false), base)
	require.GreaterOrEqual(t, CalculateResponseUrgency(text, 4, true), base)
	require.GreaterOrEqual(t, CalculateResponseUrgency(text+" and I want a refund", 4, false), base)
	require.GreaterOrEqual(t, CalculateResponseUrgency(text+strings.Repeat(" more detail", 20), 4, false), base)

	// Stacking every factor never escapes the cap.
	all := CalculateResponseUrgency(
		"Terrible, disgusting, unsafe."+strings.Repeat(" never again", 20), 1, true)
	require.Equal(t, 10, all)
}
