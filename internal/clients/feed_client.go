package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/reviewpulse/reviewpulse/internal/models"
)

// feedPageSize is the dataset-items page size requested from the scraping
// actor's API.
const feedPageSize = 100

var (
	feedInstance *FeedClient
	feedOnce     sync.Once
)

// FeedClient reads scraped review items from the external scraping actor's
// dataset endpoint. The actor itself (job scheduling, crawling) is outside
// this service; we only page through its result datasets.
type FeedClient struct {
	Client  *http.Client
	baseURL string
	token   string
}

func GetFeedClient() *FeedClient {
	feedOnce.Do(func() {
		baseURL := os.Getenv("REVIEW_FEED_URL")
		if baseURL == "" {
			slog.Error("[FeedClient] Missing REVIEW_FEED_URL in environment variables")
			panic("[FeedClient] Missing REVIEW_FEED_URL in environment variables")
		}

		feedInstance = &FeedClient{
			Client:  &http.Client{Timeout: 30 * time.Second},
			baseURL: baseURL,
			token:   os.Getenv("REVIEW_FEED_TOKEN"),
		}
		slog.Info("[FeedClient] Feed client initialized",
			slog.String("base_url", baseURL))
	})
	return feedInstance
}

// FetchReviewPage returns one page of dataset items for a profile plus the
// offset of the next page, or -1 when the dataset is exhausted.
func (fc *FeedClient) FetchReviewPage(ctx context.Context, datasetID string, offset int) ([]models.FeedReviewItem, int, error) {
	url := fmt.Sprintf("%s/v2/datasets/%s/items?format=json&offset=%d&limit=%d",
		fc.baseURL, datasetID, offset, feedPageSize)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, -1, fmt.Errorf("[FeedClient] failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", USER_AGENT)
	if fc.token != "" {
		req.Header.Set("Authorization", "Bearer "+fc.token)
	}

	resp, err := fc.Client.Do(req)
	if err != nil {
		return nil, -1, fmt.Errorf("[FeedClient] request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, -1, fmt.Errorf("[FeedClient] unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var items []models.FeedReviewItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, -1, fmt.Errorf("[FeedClient] failed to decode items: %w", err)
	}

	next := -1
	if len(items) == feedPageSize {
		next = offset + feedPageSize
	}
	return items, next, nil
}

// IsHealthy probes the feed endpoint. Used by the consumer health monitor
// to gate ingestion when the actor platform is down.
func (fc *FeedClient) IsHealthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fc.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := fc.Client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}
