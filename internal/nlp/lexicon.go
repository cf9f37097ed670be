package nlp

// polarityLexicon maps lowercase tokens to integer valences. Weights follow
// AFINN-165, extended with a handful of review-domain terms (slow, stale,
// overpriced, ...) that AFINN does not carry. The raw score of a text is the
// sum of matched token weights; see AnalyzeSentiment for normalization.
var polarityLexicon = map[string]int{
	// positive
	"amazing":     4,
	"attentive":   2,
	"awesome":     4,
	"beautiful":   3,
	"best":        3,
	"brilliant":   4,
	"charming":    3,
	"clean":       2,
	"comfortable": 2,
	"convenient":  2,
	"cozy":        2,
	"delicious":   3,
	"delight":     3,
	"delighted":   3,
	"delightful":  3,
	"enjoy":       2,
	"enjoyed":     2,
	"excellent":   3,
	"fabulous":    4,
	"fantastic":   4,
	"favorite":    2,
	"fresh":       1,
	"friendly":    2,
	"fun":         4,
	"generous":    2,
	"glad":        3,
	"good":        3,
	"great":       3,
	"happy":       3,
	"helpful":     2,
	"impressed":   3,
	"love":        3,
	"loved":       3,
	"lovely":      3,
	"nice":        3,
	"outstanding": 5,
	"perfect":     3,
	"pleasant":    3,
	"pleased":     3,
	"polite":      2,
	"professional": 2,
	"recommend":   2,
	"recommended": 2,
	"satisfied":   2,
	"spotless":    2,
	"superb":      5,
	"tasty":       2,
	"terrific":    4,
	"thank":       2,
	"thanks":      2,
	"welcoming":   2,
	"wonderful":   4,
	"worth":       2,
	"wow":         4,

	// negative
	"angry":         -3,
	"annoying":      -2,
	"appalling":     -2,
	"avoid":         -1,
	"awful":         -3,
	"bad":           -3,
	"bland":         -1,
	"broken":        -1,
	"cold":          -1,
	"complain":      -2,
	"complaint":     -2,
	"disappointed":  -2,
	"disappointing": -2,
	"disaster":      -2,
	"disgusting":    -3,
	"dirty":         -2,
	"expensive":     -1,
	"filthy":        -2,
	"gross":         -2,
	"hate":          -3,
	"hated":         -3,
	"horrible":      -3,
	"mediocre":      -2,
	"mess":          -2,
	"nasty":         -3,
	"noisy":         -1,
	"overpriced":    -2,
	"poor":          -2,
	"rotten":        -3,
	"rude":          -2,
	"sad":           -2,
	"sick":          -2,
	"slow":          -2,
	"soggy":         -1,
	"stale":         -2,
	"terrible":      -3,
	"unacceptable":  -2,
	"uncomfortable": -2,
	"unfriendly":    -2,
	"unhappy":       -2,
	"waste":         -1,
	"worst":         -3,
	"wrong":         -2,
}
