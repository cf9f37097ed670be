package ingestion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/reviewpulse/reviewpulse/internal/models"
)

func TestGenerateReviewContentIDIsDeterministic(t *testing.T) {
	a := generateReviewContentID("google", "place-1", "rev-1")
	b := generateReviewContentID("google", "place-1", "rev-1")
	require.Equal(t, a, b)
	require.Len(t, a, 64)
}

func TestGenerateReviewContentIDVariesByPart(t *testing.T) {
	base := generateReviewContentID("google", "place-1", "rev-1")
	require.NotEqual(t, base, generateReviewContentID("yelp", "place-1", "rev-1"))
	require.NotEqual(t, base, generateReviewContentID("google", "place-2", "rev-1"))
	require.NotEqual(t, base, generateReviewContentID("google", "place-1", "rev-2"))
}

func TestFeedItemToRaw(t *testing.T) {
	published := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	profile := models.BusinessProfile{
		ID:       "biz-1",
		Source:   models.SourceGoogle,
		Category: "Italian Restaurant",
	}
	item := models.FeedReviewItem{
		ReviewID:        "rev-1",
		PlaceID:         "place-1",
		Stars:           2,
		Text:            "The pasta was cold",
		ReviewerName:    "Ana",
		ReviewURL:       "https://maps.example.com/rev-1",
		PublishedAtDate: published,
		ReviewImageURLs: []string{"https://img.example.com/1.jpg"},
	}

	review := feedItemToRaw(profile, item)

	require.Equal(t, generateReviewContentID("google", "place-1", "rev-1"), review.ReviewID)
	require.Equal(t, "biz-1", review.BusinessID)
	require.Equal(t, "Italian Restaurant", review.BusinessCategory)
	require.Equal(t, 2, review.Rating)
	require.True(t, review.HasPhotos)
	require.Equal(t, 1, review.Metadata.PhotoCount)
	require.Equal(t, "rev-1", review.Metadata.SourceID)
	require.Equal(t, published, review.Metadata.PublishedAt)
}

func TestFeedItemToRawFallsBackToFeedCategory(t *testing.T) {
	profile := models.BusinessProfile{ID: "biz-1", Source: models.SourceGoogle}
	item := models.FeedReviewItem{ReviewID: "rev-1", CategoryName: "Coffee shop", Text: "ok"}

	review := feedItemToRaw(profile, item)
	require.Equal(t, "Coffee shop", review.BusinessCategory)
}
