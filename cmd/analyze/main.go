package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/reviewpulse/reviewpulse/internal/logging"
	"github.com/reviewpulse/reviewpulse/internal/nlp"
	"github.com/reviewpulse/reviewpulse/internal/sentiment"
	"github.com/reviewpulse/reviewpulse/internal/triage"
)

// analyze runs the full analysis pass over a single review from the command
// line. Handy for tuning the lexicon and topic tables without a pipeline.
func main() {
	text := flag.String("text", "", "review text (reads stdin when empty)")
	rating := flag.Int("rating", 0, "star rating, 1 to 5")
	category := flag.String("category", "", "business category, e.g. 'Italian Restaurant'")
	photos := flag.Bool("photos", false, "review has attached photos")
	flag.Parse()

	logging.InitLogger()

	input := *text
	if input == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			slog.Error("Failed to read review text from stdin", slog.String("error", err.Error()))
			os.Exit(1)
		}
		input = string(data)
	}

	cleaned := sentiment.Sanitize(input)

	analysis := nlp.AnalyzeReview(cleaned, *rating, *category)
	urgency := nlp.CalculateResponseUrgency(cleaned, *rating, *photos)
	competitive := nlp.AnalyzeCompetitiveInsights(cleaned)
	vaderScore, vaderLabel := sentiment.CrossCheck(cleaned)

	out := struct {
		Analysis    nlp.ReviewAnalysis     `json:"analysis"`
		Urgency     int                    `json:"urgency"`
		Competitive nlp.CompetitiveInsight `json:"competitive"`
		VaderScore  float64                `json:"vader_score"`
		VaderLabel  string                 `json:"vader_label"`
		Labels      []string               `json:"labels"`
		AnalyzedAt  time.Time              `json:"analyzed_at"`
	}{
		Analysis:    analysis,
		Urgency:     urgency,
		Competitive: competitive,
		VaderScore:  vaderScore,
		VaderLabel:  vaderLabel,
		Labels:      triage.Labels(urgency, competitive),
		AnalyzedAt:  time.Now().UTC(),
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		slog.Error("Failed to encode analysis", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(string(encoded))
}
