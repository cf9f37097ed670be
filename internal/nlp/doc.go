// Package nlp derives sentiment, keywords, topics, competitive mentions,
// and response urgency from raw review text.
//
// Every function is pure, stateless, and fail-soft: on any internal
// failure it logs a diagnostic and returns its documented default value.
// Callers never see an error or a panic, so the ingestion pipeline can run
// these analyses inline over scraped data of unpredictable quality without
// a bad record aborting a batch. Calls are independent and safe for
// concurrent use.
//
// The lexicons and trigger tables live in this package as read-only data.
// They are deliberately crude: topic classification is substring
// containment, not token matching, and competitor extraction is a
// capitalized-word regex, not NER.
package nlp
