package models

import "time"

// BusinessProfile is one connected review source for a team, loaded from
// Postgres by the producer. DatasetID points at the scraping actor's
// dataset for this place.
type BusinessProfile struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"team_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Source    string    `json:"source"`
	PlaceID   string    `json:"place_id"`
	DatasetID string    `json:"dataset_id"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
