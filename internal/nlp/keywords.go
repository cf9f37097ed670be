package nlp

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultKeywordCount is used when ExtractKeywords is called with a
	// non-positive count.
	DefaultKeywordCount = 5

	// minKeywordRunes drops short tokens from the ranked terms.
	minKeywordRunes = 3
)

type rankedTerm struct {
	term  string
	score float64
	first int // index of first occurrence, for deterministic ties
}

// ExtractKeywords returns the top terms of text, most relevant first.
// The result never exceeds count entries and every term is at least three
// runes long. Empty or whitespace-only text yields nil, as does any
// internal failure.
//
// Terms are weighted with TF-IDF over a corpus consisting of the single
// document being analyzed, so the IDF factor is a constant and the ranking
// reduces to term frequency. The degenerate weighting is kept so the
// scores stay comparable with historical data.
func ExtractKeywords(text string, count int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if count <= 0 {
		count = DefaultKeywordCount
	}

	return failsoft("keywords", nil, func() []string {
		tokens := tokenize(text)
		if len(tokens) == 0 {
			return nil
		}
		// A text of nothing but stopwords legitimately ranks no terms.
		// Filtering failure, by contrast, is handled by the failsoft guard.
		ranked := scoreTerms(removeStopwords(tokens))

		sort.SliceStable(ranked, func(i, j int) bool {
			if ranked[i].score != ranked[j].score {
				return ranked[i].score > ranked[j].score
			}
			return ranked[i].first < ranked[j].first
		})

		if len(ranked) > count {
			ranked = ranked[:count]
		}
		terms := make([]string, len(ranked))
		for i, r := range ranked {
			terms[i] = r.term
		}
		return terms
	})
}

// scoreTerms computes single-document TF-IDF weights for tokens and drops
// terms shorter than minKeywordRunes.
func scoreTerms(tokens []string) []rankedTerm {
	tf := make(map[string]int, len(tokens))
	first := make(map[string]int, len(tokens))
	for i, t := range tokens {
		if _, seen := tf[t]; !seen {
			first[t] = i
		}
		tf[t]++
	}

	// One document in the corpus: every term appears in it, so IDF is the
	// same constant for all terms and only orders nothing.
	idf := math.Log(2)

	docLen := float64(len(tokens))
	ranked := make([]rankedTerm, 0, len(tf))
	for term, count := range tf {
		if utf8.RuneCountInString(term) < minKeywordRunes {
			continue
		}
		ranked = append(ranked, rankedTerm{
			term:  term,
			score: float64(count) / docLen * idf,
			first: first[term],
		})
	}
	return ranked
}
