// Package triage derives dashboard filter labels from analysis results at
// ingestion time.
package triage

import (
	"github.com/reviewpulse/reviewpulse/internal/nlp"
)

const (
	LabelUrgent                = "urgent"
	LabelMediumPriority        = "medium-priority"
	LabelMentionsCompetitor    = "mentions-competitor"
	LabelFavorableComparison   = "favorable-comparison"
	LabelUnfavorableComparison = "unfavorable-comparison"
)

const (
	urgentThreshold         = 8
	mediumPriorityThreshold = 5
)

// Labels maps an urgency score and competitive insight to triage labels.
// A review gets at most one priority label: urgent at urgency ≥ 8,
// medium-priority at ≥ 5. Any competitor mention adds mentions-competitor
// plus a comparison-direction label.
func Labels(urgency int, insight nlp.CompetitiveInsight) []string {
	var labels []string

	switch {
	case urgency >= urgentThreshold:
		labels = append(labels, LabelUrgent)
	case urgency >= mediumPriorityThreshold:
		labels = append(labels, LabelMediumPriority)
	}

	if len(insight.CompetitorMentions) > 0 {
		labels = append(labels, LabelMentionsCompetitor)
		if insight.ComparativePositive {
			labels = append(labels, LabelFavorableComparison)
		} else {
			labels = append(labels, LabelUnfavorableComparison)
		}
	}

	return labels
}

// IsUrgent reports whether an urgency score crosses the urgent threshold.
// The reply suggester uses it to decide which reviews deserve a draft.
func IsUrgent(urgency int) bool {
	return urgency >= urgentThreshold
}
