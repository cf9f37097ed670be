package nlp

import (
	"strings"
	"unicode"
)

// tokenize splits text into lowercase word tokens. Anything that is not a
// letter or digit is a separator, so punctuation never leaks into tokens.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// removeStopwords filters common English function words from tokens.
// Tokens are expected to be lowercase already.
func removeStopwords(tokens []string) []string {
	filtered := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if isStopword(t) {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}

func isStopword(token string) bool {
	_, ok := englishStopwords[token]
	return ok
}
