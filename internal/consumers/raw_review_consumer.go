package consumers

import (
	"context"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	"github.com/reviewpulse/reviewpulse/internal/clients/kafka_client"
	"github.com/reviewpulse/reviewpulse/internal/models"
	"github.com/reviewpulse/reviewpulse/internal/nlp"
	"github.com/reviewpulse/reviewpulse/internal/sentiment"
	"github.com/reviewpulse/reviewpulse/internal/triage"
	"github.com/reviewpulse/reviewpulse/internal/utils"
)

var analyzedBuffer = utils.NewBatchBuffer[models.AnalyzedReview]()

// StartRawReviewConsumer runs the full analysis pass over incoming raw
// reviews and publishes the results in batches. Urgent reviews additionally
// get a reply request published right away, before the batch flushes.
func StartRawReviewConsumer(ctx context.Context, consumer *kafka.Consumer) {
	iterator := kafka_client.NewKafkaMessageIterator(ctx, consumer)
	committer := kafka_client.NewCommitHandler(ctx, consumer)

	slog.Info("[RawReviewConsumer] Listening for messages...")

	ticker := time.NewTicker(utils.BATCH_TIMEOUT)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Warn("[RawReviewConsumer] Stopping consumer...")
			publishAnalyzedBatch(ctx, committer)
			return
		case <-ticker.C:
			go publishAnalyzedBatch(ctx, committer)
		default:
			msg, err := iterator.Next()
			if err != nil {
				utils.HandleConsumerError(err)
				continue
			}

			var review models.RawReview
			if err := utils.DeserializeFromJSON(msg.Value, &review); err != nil {
				utils.HandleConsumerError(err)
				continue
			}

			analyzed := analyzeReview(review)

			utils.TrackMessage(analyzed.ReviewID, msg)

			if triage.IsUrgent(analyzed.Urgency) {
				requestReplySuggestion(ctx, analyzed)
			}

			analyzedBuffer.Add(analyzed)
			if analyzedBuffer.Size() >= utils.BATCH_SIZE {
				go publishAnalyzedBatch(ctx, committer)
			}
		}
	}
}

// analyzeReview runs every analyzer over the sanitized text. The stored
// review keeps the original text; only the analyzers see the cleaned copy.
func analyzeReview(review models.RawReview) models.AnalyzedReview {
	text := sentiment.Sanitize(review.Text)

	analysis := nlp.AnalyzeReview(text, review.Rating, review.BusinessCategory)
	urgency := nlp.CalculateResponseUrgency(text, review.Rating, review.HasPhotos)
	competitive := nlp.AnalyzeCompetitiveInsights(text)
	vaderScore, vaderLabel := sentiment.CrossCheck(text)

	return models.AnalyzedReview{
		RawReview:   review,
		Analysis:    analysis,
		Urgency:     urgency,
		Competitive: competitive,
		VaderScore:  vaderScore,
		VaderLabel:  vaderLabel,
		Labels:      triage.Labels(urgency, competitive),
		AnalyzedAt:  time.Now().UTC(),
	}
}

func requestReplySuggestion(ctx context.Context, analyzed models.AnalyzedReview) {
	request := models.ReplyRequest{
		ReviewID:   analyzed.ReviewID,
		BusinessID: analyzed.BusinessID,
		Rating:     analyzed.Rating,
		Text:       analyzed.Text,
		Topics:     analyzed.Analysis.Topics,
		Urgency:    analyzed.Urgency,
	}

	for i := 0; i < 3; i++ {
		err := kafka_client.PublishToKafka(ctx, kafka_client.KAFKA_TOPIC_REPLY_REQUESTS, request.ReviewID, request)
		if err == nil {
			return
		}
		slog.Warn("[RawReviewConsumer] Reply request publishing failed",
			slog.String("review_id", request.ReviewID),
			slog.Int("attempt", i+1),
			slog.String("error", err.Error()))
		time.Sleep(2 * time.Second)
	}
}

func publishAnalyzedBatch(ctx context.Context, committer *kafka_client.KafkaCommitHandler) {
	batch := analyzedBuffer.GetAndClear()
	if len(batch) == 0 {
		return
	}

	for i := 0; i < 3; i++ {
		err := kafka_client.PublishToKafka(ctx, kafka_client.KAFKA_TOPIC_ANALYZED_REVIEWS, batch[0].ReviewID, batch)
		if err == nil {
			break
		}
		slog.Warn("[RawReviewConsumer] Batch publishing failed",
			slog.Int("attempt", i+1),
			slog.String("error", err.Error()))
		time.Sleep(2 * time.Second)
	}

	for _, review := range batch {
		trackedMsg, found := utils.GetMessageForReview(review.ReviewID)
		if found {
			if err := committer.Commit(trackedMsg); err != nil {
				slog.Warn("[RawReviewConsumer] Failed to commit offset",
					slog.String("error", err.Error()))
			}
		}
	}
}
