package triage

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reviewpulse/reviewpulse/internal/nlp"
)

func TestLabelsPriorityTiers(t *testing.T) {
	cases := []struct {
		urgency int
		want    []string
	}{
		{10, []string{LabelUrgent}},
		{8, []string{LabelUrgent}},
		{7, []string{LabelMediumPriority}},
		{5, []string{LabelMediumPriority}},
		{4, nil},
		{1, nil},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Labels(tc.urgency, nlp.CompetitiveInsight{}), "urgency=%d", tc.urgency)
	}
}

func TestLabelsFavorableComparison(t *testing.T) {
	insight := nlp.CompetitiveInsight{
		CompetitorMentions:  []string{"Joe's"},
		ComparativePositive: true,
	}
	got := Labels(6, insight)
	require.Equal(t, []string{LabelMediumPriority, LabelMentionsCompetitor, LabelFavorableComparison}, got)
}

func TestLabelsUnfavorableComparison(t *testing.T) {
	insight := nlp.CompetitiveInsight{
		CompetitorMentions: []string{"Luigi's"},
	}
	got := Labels(9, insight)
	require.Equal(t, []string{LabelUrgent, LabelMentionsCompetitor, LabelUnfavorableComparison}, got)
}

func TestIsUrgent(t *testing.T) {
	require.True(t, IsUrgent(8))
	require.False(t, IsUrgent(7))
}
