package utils

import (
	"sync"

	"github.com/confluentinc/confluent-kafka-go/kafka"
)

// messageMap remembers which Kafka message a review came from so the
// consumer can commit the right offset after its batch lands downstream.
var messageMap sync.Map

func TrackMessage(reviewID string, msg *kafka.Message) {
	messageMap.Store(reviewID, msg)
}

func GetMessageForReview(reviewID string) (*kafka.Message, bool) {
	msg, ok := messageMap.Load(reviewID)
	if !ok {
		return nil, false
	}
	messageMap.Delete(reviewID)
	return msg.(*kafka.Message), true
}
