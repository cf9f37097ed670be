package models

import "time"

// Review sources the pipeline understands. Facebook and Yelp identifiers
// are modeled ahead of their feed integrations.
const (
	SourceGoogle   = "google"
	SourceFacebook = "facebook"
	SourceYelp     = "yelp"
)

// RawReview is one scraped review as published on the raw-reviews topic.
// ReviewID is a content hash derived from source, place, and the source's
// own review identifier, so replays dedupe cleanly.
type RawReview struct {
	ReviewID         string         `json:"review_id"`
	Source           string         `json:"source"`
	BusinessID       string         `json:"business_id"`
	BusinessCategory string         `json:"business_category,omitempty"`
	Rating           int            `json:"rating"`
	Text             string         `json:"text"`
	HasPhotos        bool           `json:"has_photos"`
	Metadata         ReviewMetadata `json:"metadata"`
}

type ReviewMetadata struct {
	Author      string    `json:"author,omitempty"`
	PlaceID     string    `json:"place_id,omitempty"`
	SourceID    string    `json:"source_id,omitempty"`
	URL         string    `json:"url,omitempty"`
	PhotoCount  int       `json:"photo_count,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}
