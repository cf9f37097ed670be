package sentiment

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripLinksKeepsMarkdownLinkText(t *testing.T) {
	got := StripLinks("see [their menu](https://example.com/menu) for prices")
	require.Equal(t, "see their menu for prices", got)
}

func TestStripLinksDropsBareURLs(t *testing.T) {
	got := StripLinks("photos at https://example.com/p/123 and www.example.com/p/456")
	require.Equal(t, "photos at  and ", got)
}

func TestSanitizeRendersMarkdown(t *testing.T) {
	got := Sanitize("**Great** spot!\n\n- fast\n- friendly")
	require.Equal(t, "Great spot! fast friendly", got)
}

func TestSanitizeCollapsesWhitespace(t *testing.T) {
	got := Sanitize("too   many\n\n\nspaces")
	require.Equal(t, "too many spaces", got)
}

func TestCrossCheckLabels(t *testing.T) {
	_, label := CrossCheck("I absolutely love this place, it is wonderful")
	require.Equal(t, LabelPositive, label)

	_, label = CrossCheck("horrible experience, I hate it")
	require.Equal(t, LabelNegative, label)

	_, label = CrossCheck("the building is on Main Street")
	require.Equal(t, LabelNeutral, label)
}
