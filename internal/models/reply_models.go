package models

import "time"

// ReplyRequest asks the reply consumer to draft an owner response for an
// urgent review. It carries just enough context for the prompt.
type ReplyRequest struct {
	ReviewID     string   `json:"review_id"`
	BusinessID   string   `json:"business_id"`
	BusinessName string   `json:"business_name,omitempty"`
	Rating       int      `json:"rating"`
	Text         string   `json:"text"`
	Topics       []string `json:"topics,omitempty"`
	Urgency      int      `json:"urgency"`
}

// ReplySuggestion is a drafted owner response, persisted for the dashboard
// to offer as a starting point. Never sent anywhere automatically.
type ReplySuggestion struct {
	SuggestionID string    `json:"suggestion_id"`
	ReviewID     string    `json:"review_id"`
	BusinessID   string    `json:"business_id"`
	Reply        string    `json:"reply"`
	Model        string    `json:"model"`
	CreatedAt    time.Time `json:"created_at"`
}
