package nlp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyTopicsEmptyText(t *testing.T) {
	require.Empty(t, ClassifyTopics("", ""))
	require.Empty(t, ClassifyTopics("  \t ", "Restaurant"))
}

func TestClassifyTopicsRestaurantExtension(t *testing.T) {
	text := "The staff was friendly but the food was cold"

	// "freshness" fires because "cold" contains the trigger "old";
	// matching is plain substring containment.
	got := ClassifyTopics(text, "Italian Restaurant")
	require.Equal(t, []string{"service", "food", "freshness"}, got)
}

func TestClassifyTopicsWithoutRestaurantExtension(t *testing.T) {
	text := "The staff was friendly but the food was cold"

	got := ClassifyTopics(text, "Auto Repair")
	require.Equal(t, []string{"service", "food"}, got)
}

func TestClassifyTopicsMultipleCategories(t *testing.T) {
	got := ClassifyTopics("Great value for the price, but parking was far", "")
	require.Equal(t, []string{"quality", "price", "location"}, got)
}

func TestClassifyTopicsDeduplicatesWithinCategory(t *testing.T) {
	// Both "dirty" and "filthy" trigger cleanliness; it appears once.
	got := ClassifyTopics("dirty tables and a filthy floor", "")
	require.Equal(t, []string{"cleanliness"}, got)
}

func TestClassifyTopicsRestaurantMatchIsCaseInsensitive(t *testing.T) {
	got := ClassifyTopics("the serving size was tiny", "FAST FOOD RESTAURANT")
	require.Contains(t, got, "portion")
}

func TestClassifyTopicsNoMatches(t *testing.T) {
	require.Empty(t, ClassifyTopics("we stopped by on a whim", ""))
}
