package models

import "time"

// FeedReviewItem is the wire shape of one dataset item from the external
// scraping actor's feed. Field names follow the actor's Google Maps
// output; missing fields stay at their zero values.
type FeedReviewItem struct {
	ReviewID        string    `json:"reviewId"`
	PlaceID         string    `json:"placeId"`
	Title           string    `json:"title"`
	CategoryName    string    `json:"categoryName"`
	Stars           int       `json:"stars"`
	Text            string    `json:"text"`
	ReviewerName    string    `json:"name"`
	ReviewURL       string    `json:"reviewUrl"`
	PublishedAtDate time.Time `json:"publishedAtDate"`
	ReviewImageURLs []string  `json:"reviewImageUrls"`
}
