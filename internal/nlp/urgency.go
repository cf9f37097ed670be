package nlp

import (
	"strings"
	"unicode/utf8"
)

const (
	urgencyBase = 5
	urgencyMax  = 10

	// Reviews longer than this many characters get an urgency bump for
	// being detailed feedback.
	longReviewChars = 200
)

// urgentKeywords bump urgency once regardless of how many of them match.
// Substring containment, so "ill" also fires inside e.g. "grill".
var urgentKeywords = []string{
	"terrible", "awful", "horrible", "never again", "disaster", "emergency",
	"health", "safety", "danger", "sick", "ill", "food poisoning", "dirty",
	"filthy", "gross", "disgusting", "refund", "manager", "lawsuit", "legal",
}

// CalculateResponseUrgency scores how quickly a business should respond to
// a review, from 1 (nothing to act on) to 10. Empty text returns 1: with no
// text there is nothing urgent, but the score stays a valid integer rather
// than a neutral midpoint. Failure returns the base score of 5.
//
// Starting from the base of 5, all applicable adjustments stack: low rating
// (+3 for ≤2, +1 for 3), long text (+1), attached photos (+2, they raise
// visibility), and urgent keywords (+2 once). The sum is capped at 10.
func CalculateResponseUrgency(text string, rating int, hasPhotos bool) int {
	if text == "" {
		return 1
	}

	return failsoft("urgency", urgencyBase, func() int {
		score := urgencyBase

		switch {
		case rating <= 2:
			score += 3
		case rating == 3:
			score++
		}

		if utf8.RuneCountInString(text) > longReviewChars {
			score++
		}

		if hasPhotos {
			score += 2
		}

		lower := strings.ToLower(text)
		for _, keyword := range urgentKeywords {
			if strings.Contains(lower, keyword) {
				score += 2
				break
			}
		}

		if score > urgencyMax {
			score = urgencyMax
		}
		return score
	})
}
