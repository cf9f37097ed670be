package kafka_client

import "time"

const (
	KAFKA_TOPIC_RAW_REVIEWS      = "raw-reviews"      // scraped reviews straight off the feed
	KAFKA_TOPIC_ANALYZED_REVIEWS = "analyzed-reviews" // batched analysis results headed for storage
	KAFKA_TOPIC_REPLY_REQUESTS   = "reply-requests"   // urgent reviews that want a drafted reply
)

const (
	BATCH_SIZE    = 50
	BATCH_TIMEOUT = 5 * time.Second
	MAX_RETRIES   = 5
	RETRY_DELAY   = 2 * time.Second
)
