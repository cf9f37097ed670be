package sentiment

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	bareURLPattern      = regexp.MustCompile(`https?://\S+|www\.\S+`)
	htmlTagPattern      = regexp.MustCompile(`<[^>]*>`)
)

// StripLinks drops URLs from review text, keeping the link text of
// markdown-style links. Scraped feeds embed photo and profile URLs that
// would otherwise pollute keyword extraction.
func StripLinks(input string) string {
	input = markdownLinkPattern.ReplaceAllString(input, "$1")
	return bareURLPattern.ReplaceAllString(input, "")
}

// Sanitize renders any markdown in scraped review text to plain text,
// collapses whitespace, and strips URLs. Some sources deliver reviews with
// markdown formatting intact; the analysis core expects plain prose.
func Sanitize(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	text := htmlTagPattern.ReplaceAllString(string(output), " ")
	plain := strings.Join(strings.Fields(text), " ")

	return StripLinks(plain)
}
