package consumers

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	"github.com/reviewpulse/reviewpulse/internal/clients"
	"github.com/reviewpulse/reviewpulse/internal/clients/kafka_client"
	"github.com/reviewpulse/reviewpulse/internal/db"
	"github.com/reviewpulse/reviewpulse/internal/models"
	"github.com/reviewpulse/reviewpulse/internal/utils"
)

var insertBuffer = utils.NewBatchBuffer[models.AnalyzedReview]()

// StartResultsConsumer persists analyzed review batches to DynamoDB and
// mirrors each review into the search index the dashboard queries. A search
// health signal, when attached, skips the mirror while the cluster is down;
// the DynamoDB write and the offset commit proceed regardless.
func StartResultsConsumer(ctx context.Context, consumer *kafka.Consumer, health ...*atomic.Bool) {
	iterator := kafka_client.NewKafkaMessageIterator(ctx, consumer)
	committer := kafka_client.NewCommitHandler(ctx, consumer)

	ticker := time.NewTicker(utils.BATCH_TIMEOUT)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			processResults(ctx, committer, health)
			return
		case <-ticker.C:
			processResults(ctx, committer, health)
		default:
			msg, err := iterator.Next()
			if err != nil {
				utils.HandleConsumerError(err)
				continue
			}

			var reviews []models.AnalyzedReview
			if err := utils.DeserializeFromJSON(msg.Value, &reviews); err != nil {
				utils.HandleConsumerError(err)
				continue
			}

			for _, review := range reviews {
				utils.TrackMessage(review.ReviewID, msg)
				insertBuffer.Add(review)
				if insertBuffer.Size() >= utils.DYNAMODB_BATCH_SIZE {
					processResults(ctx, committer, health)
				}
			}
		}
	}
}

func processResults(ctx context.Context, committer *kafka_client.KafkaCommitHandler, health []*atomic.Bool) {
	var insertErr error
	batch := insertBuffer.GetAndClear()
	if len(batch) == 0 {
		return
	}

	for i := 0; i < 3; i++ {
		insertErr = db.BatchInsertAnalyzedReviews(ctx, batch)
		if insertErr == nil {
			break
		}
		slog.Error("[ResultsConsumer] Failed to write reviews to DB",
			slog.String("error", insertErr.Error()),
			slog.Int("attempt", i+1))
	}

	if searchIsHealthy(health) {
		indexBatch(ctx, batch)
	} else {
		slog.Warn("[ResultsConsumer] Search cluster unhealthy, skipping mirror for batch",
			slog.Int("count", len(batch)))
	}

	for _, review := range batch {
		msg, found := utils.GetMessageForReview(review.ReviewID)
		if found {
			if err := committer.Commit(msg); err != nil {
				slog.Warn("[ResultsConsumer] Failed to commit offset",
					slog.String("error", err.Error()))
			}
		}
	}
}

// searchIsHealthy reports whether every attached search health signal is up.
// No attached signals means the mirror always runs.
func searchIsHealthy(health []*atomic.Bool) bool {
	for _, h := range health {
		if !h.Load() {
			return false
		}
	}
	return true
}

// indexBatch mirrors the batch into OpenSearch. Indexing failures do not
// block the DynamoDB write or the offset commit; the dashboard reindexes
// from the table when the index drifts.
func indexBatch(ctx context.Context, batch []models.AnalyzedReview) {
	opensearch := clients.GetOpensearchClient(ctx)
	for _, review := range batch {
		if err := opensearch.IndexAnalyzedReview(ctx, review); err != nil {
			slog.Warn("[ResultsConsumer] Failed to index review",
				slog.String("review_id", review.ReviewID),
				slog.String("error", err.Error()))
		}
	}
}
