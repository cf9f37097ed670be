package consumers

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	"github.com/reviewpulse/reviewpulse/internal/clients/kafka_client"
	"github.com/reviewpulse/reviewpulse/internal/db"
	"github.com/reviewpulse/reviewpulse/internal/models"
	"github.com/reviewpulse/reviewpulse/internal/replies"
	"github.com/reviewpulse/reviewpulse/internal/utils"
)

// StartReplyRequestConsumer drafts reply suggestions for urgent reviews.
// When a health signal is attached, the consumer holds off while the reply
// service is down instead of burning through retries.
func StartReplyRequestConsumer(ctx context.Context, consumer *kafka.Consumer, health ...*atomic.Bool) {
	iterator := kafka_client.NewKafkaMessageIterator(ctx, consumer)
	committer := kafka_client.NewCommitHandler(ctx, consumer)

	slog.Info("[ReplyConsumer] Listening for messages...")

	for {
		select {
		case <-ctx.Done():
			slog.Warn("[ReplyConsumer] Stopping consumer...")
			return
		default:
			if !waitUntilHealthy(ctx, health) {
				return
			}

			msg, err := iterator.Next()
			if err != nil {
				utils.HandleConsumerError(err)
				continue
			}

			var request models.ReplyRequest
			if err := utils.DeserializeFromJSON(msg.Value, &request); err != nil {
				utils.HandleConsumerError(err)
				continue
			}

			utils.TrackMessage(request.ReviewID, msg)

			suggestion, err := replies.SuggestReply(ctx, request)
			if err != nil {
				slog.Error("[ReplyConsumer] Failed to draft reply",
					slog.String("review_id", request.ReviewID),
					slog.String("error", err.Error()))
				continue
			}

			if err := db.StoreReplySuggestion(ctx, suggestion); err != nil {
				slog.Error("[ReplyConsumer] Failed to store reply suggestion",
					slog.String("review_id", request.ReviewID),
					slog.String("error", err.Error()))
				continue
			}

			trackedMsg, found := utils.GetMessageForReview(request.ReviewID)
			if found {
				if err := committer.Commit(trackedMsg); err != nil {
					slog.Warn("[ReplyConsumer] Failed to commit offset",
						slog.String("error", err.Error()))
				}
			}
		}
	}
}

// waitUntilHealthy blocks while any attached health signal reports down.
// Returns false only when the context is canceled.
func waitUntilHealthy(ctx context.Context, health []*atomic.Bool) bool {
	for {
		healthy := true
		for _, h := range health {
			if !h.Load() {
				healthy = false
				break
			}
		}
		if healthy {
			return true
		}

		slog.Warn("[ReplyConsumer] Reply service unhealthy, pausing consumption...")
		select {
		case <-ctx.Done():
			return false
		case <-time.After(5 * time.Second):
		}
	}
}
