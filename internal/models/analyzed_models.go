package models

import (
	"time"

	"github.com/reviewpulse/reviewpulse/internal/nlp"
)

// AnalyzedReview is a raw review plus everything the analysis consumer
// derived from it. The heuristic sentiment drives the dashboard; the VADER
// score is recorded alongside as a cross-check signal.
type AnalyzedReview struct {
	RawReview
	Analysis    nlp.ReviewAnalysis     `json:"analysis"`
	Urgency     int                    `json:"urgency"`
	Competitive nlp.CompetitiveInsight `json:"competitive"`
	VaderScore  float64                `json:"vader_score"`
	VaderLabel  string                 `json:"vader_label"`
	Labels      []string               `json:"labels"`
	AnalyzedAt  time.Time              `json:"analyzed_at"`
}
