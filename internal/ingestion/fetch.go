package ingestion

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/reviewpulse/reviewpulse/internal/clients"
	"github.com/reviewpulse/reviewpulse/internal/clients/kafka_client"
	"github.com/reviewpulse/reviewpulse/internal/db"
	"github.com/reviewpulse/reviewpulse/internal/models"
)

// FetchReviewsForProfiles loads the active business profiles, pages each
// profile's scraped dataset, and publishes unseen reviews to Kafka.
func FetchReviewsForProfiles(ctx context.Context) {
	slog.Info("[Ingestion] Fetching reviews for active business profiles...")

	profiles, err := db.GetActiveBusinessProfiles(ctx)
	if err != nil {
		slog.Error("[Ingestion] Failed to fetch business profiles from DB",
			slog.String("error", err.Error()))
		return
	}

	if len(profiles) == 0 {
		slog.Warn("[Ingestion] No active business profiles found. Skipping fetch.")
		return
	}

	for _, profile := range profiles {
		if profile.DatasetID == "" {
			slog.Warn("[Ingestion] Profile has no dataset configured, skipping",
				slog.String("business_id", profile.ID))
			continue
		}

		if err := fetchAndProcessProfile(ctx, profile); err != nil {
			slog.Error("[Ingestion] Failed processing profile",
				slog.String("business_id", profile.ID),
				slog.String("error", err.Error()))
		}
	}

	slog.Info("[Ingestion] Successfully fetched & sent reviews to Kafka!")
}

func fetchAndProcessProfile(ctx context.Context, profile models.BusinessProfile) error {
	offset := 0
	for {
		select {
		case <-ctx.Done():
			slog.Warn("[Ingestion] Context cancelled, stopping fetch for profile",
				slog.String("business_id", profile.ID))
			return ctx.Err()
		default:
		}

		items, next, err := fetchWithRetries(ctx, profile.DatasetID, offset)
		if err != nil {
			return fmt.Errorf("fetch failed after retries: %w", err)
		}

		processItems(ctx, profile, items)
		if next < 0 {
			break
		}
		offset = next
	}
	return nil
}

func fetchWithRetries(ctx context.Context, datasetID string, offset int) ([]models.FeedReviewItem, int, error) {
	var items []models.FeedReviewItem
	var next int
	var err error

	for attempt := 1; attempt <= 3; attempt++ {
		items, next, err = clients.GetFeedClient().FetchReviewPage(ctx, datasetID, offset)
		if err == nil {
			return items, next, nil
		}

		slog.Warn("[Ingestion] Retrying feed fetch",
			slog.String("dataset_id", datasetID),
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()))

		select {
		case <-ctx.Done():
			return nil, -1, ctx.Err()
		case <-time.After(2 * time.Second):
		}
	}

	return nil, -1, err
}

func processItems(ctx context.Context, profile models.BusinessProfile, items []models.FeedReviewItem) {
	for _, item := range items {
		select {
		case <-ctx.Done():
			slog.Warn("[Ingestion] Context cancelled during item processing")
			return
		default:
		}

		// Ratings-only reviews carry no text to analyze.
		if item.Text == "" || clients.GetValkeyClient().IsReviewProcessed(ctx, profile.Source, item.ReviewID) {
			continue
		}

		review := feedItemToRaw(profile, item)
		if err := kafka_client.PublishToKafka(ctx, kafka_client.KAFKA_TOPIC_RAW_REVIEWS, review.ReviewID, review); err != nil {
			slog.Warn("[Ingestion] Failed to publish to Kafka",
				slog.String("review_id", review.ReviewID),
				slog.String("error", err.Error()))
			continue
		}

		if err := clients.GetValkeyClient().MarkReviewProcessed(ctx, profile.Source, item.ReviewID); err != nil {
			slog.Warn("[Ingestion] Error marking review as processed",
				slog.String("review_id", item.ReviewID),
				slog.String("error", err.Error()))
		}
	}
}

func generateReviewContentID(source, placeID, sourceReviewID string) string {
	raw := fmt.Sprintf("%s:%s:%s", source, placeID, sourceReviewID)
	hash := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(hash[:])
}

func feedItemToRaw(profile models.BusinessProfile, item models.FeedReviewItem) models.RawReview {
	category := profile.Category
	if category == "" {
		category = item.CategoryName
	}

	return models.RawReview{
		ReviewID:         generateReviewContentID(profile.Source, item.PlaceID, item.ReviewID),
		Source:           profile.Source,
		BusinessID:       profile.ID,
		BusinessCategory: category,
		Rating:           item.Stars,
		Text:             item.Text,
		HasPhotos:        len(item.ReviewImageURLs) > 0,
		Metadata: models.ReviewMetadata{
			Author:      item.ReviewerName,
			PlaceID:     item.PlaceID,
			SourceID:    item.ReviewID,
			URL:         item.ReviewURL,
			PhotoCount:  len(item.ReviewImageURLs),
			PublishedAt: item.PublishedAtDate,
		},
	}
}
