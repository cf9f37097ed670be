package nlp

import "strings"

// topicCategory pairs a topic label with the substrings that trigger it.
// Matching is case-insensitive substring containment over the whole text,
// not token matching, so e.g. "cold" triggers freshness via "old". That
// crudeness is part of the documented behavior.
type topicCategory struct {
	label    string
	triggers []string
}

// topicCategories is evaluated in order; the first trigger hit per category
// adds the label and short-circuits the rest of that category only.
var topicCategories = []topicCategory{
	{"service", []string{"service", "staff", "friendly", "helpful", "polite", "professional", "attentive", "rude", "slow"}},
	{"quality", []string{"quality", "excellent", "great", "good", "bad", "poor", "terrible", "amazing", "awesome"}},
	{"price", []string{"price", "expensive", "cheap", "affordable", "value", "worth", "overpriced", "reasonable"}},
	{"cleanliness", []string{"clean", "dirty", "spotless", "filthy", "hygiene", "neat", "tidy", "mess"}},
	{"food", []string{"food", "delicious", "tasty", "flavor", "menu", "dish", "meal", "portion", "ingredient"}},
	{"location", []string{"location", "parking", "convenient", "close", "far", "accessibility", "distance"}},
	{"atmosphere", []string{"atmosphere", "ambiance", "environment", "noise", "quiet", "loud", "music", "cozy", "comfortable"}},
	{"wait", []string{"wait", "time", "quick", "fast", "slow", "delay", "prompt", "waited", "minutes", "hour"}},
	{"product", []string{"product", "item", "purchase", "bought", "broken", "works", "quality", "durable"}},
}

// restaurantCategories extends the table when the business category
// mentions "restaurant".
var restaurantCategories = []topicCategory{
	{"taste", []string{"taste", "flavor", "delicious", "bland", "spicy", "sweet", "sour", "bitter", "savory"}},
	{"portion", []string{"portion", "serving", "size", "generous", "small", "large", "enough", "tiny", "huge"}},
	{"freshness", []string{"fresh", "rotten", "stale", "new", "old", "soggy", "crispy"}},
}

// ClassifyTopics returns the set of topic labels whose triggers appear in
// text. businessCategory containing "restaurant" (any case) enables the
// restaurant extension categories. The result is deduplicated and ordered
// by the fixed evaluation order; empty text or failure yields nil.
func ClassifyTopics(text string, businessCategory string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	return failsoft("topics", nil, func() []string {
		lower := strings.ToLower(text)

		categories := topicCategories
		if strings.Contains(strings.ToLower(businessCategory), "restaurant") {
			categories = append(append([]topicCategory{}, topicCategories...), restaurantCategories...)
		}

		var topics []string
		for _, cat := range categories {
			for _, trigger := range cat.triggers {
				if strings.Contains(lower, trigger) {
					topics = append(topics, cat.label)
					break
				}
			}
		}
		return topics
	})
}
