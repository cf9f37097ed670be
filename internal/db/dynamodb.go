package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/reviewpulse/reviewpulse/internal/clients"
	"github.com/reviewpulse/reviewpulse/internal/models"
)

const (
	ANALYZED_REVIEWS_TABLE_NAME  = "AnalyzedReviews"
	REPLY_SUGGESTIONS_TABLE_NAME = "ReplySuggestions"
)

var dbClient *dynamodb.Client

func InitDynamoDB() {
	dbClient = clients.GetDynamoDBClient()
}

// BatchInsertAnalyzedReviews writes a batch of results in DynamoDB-sized
// chunks, retrying unprocessed items with backoff before giving up on them.
func BatchInsertAnalyzedReviews(ctx context.Context, reviews []models.AnalyzedReview) error {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	const maxBatchSize = 25
	for i := 0; i < len(reviews); i += maxBatchSize {
		select {
		case <-ctx.Done():
			slog.Warn("[DynamoDB] context canceled")
			return ctx.Err()
		default:
		}

		end := i + maxBatchSize
		if end > len(reviews) {
			end = len(reviews)
		}

		writeRequests := make([]types.WriteRequest, 0, maxBatchSize)
		for _, review := range reviews[i:end] {
			writeRequests = append(writeRequests, types.WriteRequest{
				PutRequest: &types.PutRequest{
					Item: ReviewToDynamoDBItem(review),
				},
			})
		}

		out, err := dbClient.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				ANALYZED_REVIEWS_TABLE_NAME: writeRequests,
			},
		})
		if err != nil {
			return fmt.Errorf("[DynamoDB] Failed to batch write analyzed reviews: %w", err)
		}

		retryCount := 0
		backoff := 500 * time.Millisecond
		for len(out.UnprocessedItems) > 0 && retryCount < 3 {
			time.Sleep(backoff)
			backoff *= 2

			slog.Warn("[DynamoDB] Retrying unprocessed review items...",
				slog.Int("attempt", retryCount+1),
				slog.Int("remaining", len(out.UnprocessedItems[ANALYZED_REVIEWS_TABLE_NAME])))

			out, err = dbClient.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: out.UnprocessedItems,
			})
			if err != nil {
				return fmt.Errorf("[DynamoDB] Failed to retry batch write: %w", err)
			}
			retryCount++
		}

		if len(out.UnprocessedItems) > 0 {
			slog.Error("[DynamoDB] Some review items were not written even after retries",
				slog.Int("remaining", len(out.UnprocessedItems[ANALYZED_REVIEWS_TABLE_NAME])))
		}
	}

	slog.Info("[DynamoDB] Successfully stored analyzed reviews",
		slog.Int("count", len(reviews)))
	return nil
}

// ReviewToDynamoDBItem flattens an analyzed review into the item shape the
// dashboard queries against (snake_case keys).
func ReviewToDynamoDBItem(review models.AnalyzedReview) map[string]types.AttributeValue {
	item := make(map[string]types.AttributeValue)

	item["review_id"] = &types.AttributeValueMemberS{Value: review.ReviewID}
	item["business_id"] = &types.AttributeValueMemberS{Value: review.BusinessID}
	item["source"] = &types.AttributeValueMemberS{Value: review.Source}
	item["rating"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", review.Rating)}
	item["sentiment"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%f", review.Analysis.Sentiment)}
	item["emotional"] = &types.AttributeValueMemberS{Value: review.Analysis.Emotional}
	item["actionable"] = &types.AttributeValueMemberBOOL{Value: review.Analysis.Actionable}
	item["urgency"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", review.Urgency)}
	item["vader_score"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%f", review.VaderScore)}
	item["vader_label"] = &types.AttributeValueMemberS{Value: review.VaderLabel}
	item["analyzed_at"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", review.AnalyzedAt.Unix())}

	if review.Text != "" {
		item["text"] = &types.AttributeValueMemberS{Value: review.Text}
	}
	if review.BusinessCategory != "" {
		item["business_category"] = &types.AttributeValueMemberS{Value: review.BusinessCategory}
	}
	if len(review.Analysis.Keywords) > 0 {
		item["keywords"] = &types.AttributeValueMemberSS{Value: review.Analysis.Keywords}
	}
	if len(review.Analysis.Topics) > 0 {
		item["topics"] = &types.AttributeValueMemberSS{Value: review.Analysis.Topics}
	}
	if len(review.Labels) > 0 {
		item["labels"] = &types.AttributeValueMemberSS{Value: review.Labels}
	}
	if len(review.Competitive.CompetitorMentions) > 0 {
		item["competitor_mentions"] = &types.AttributeValueMemberSS{Value: review.Competitive.CompetitorMentions}
		item["comparative_positive"] = &types.AttributeValueMemberBOOL{Value: review.Competitive.ComparativePositive}
	}

	metadata := make(map[string]types.AttributeValue)
	if review.Metadata.Author != "" {
		metadata["author"] = &types.AttributeValueMemberS{Value: review.Metadata.Author}
	}
	if review.Metadata.PlaceID != "" {
		metadata["place_id"] = &types.AttributeValueMemberS{Value: review.Metadata.PlaceID}
	}
	if review.Metadata.URL != "" {
		metadata["url"] = &types.AttributeValueMemberS{Value: review.Metadata.URL}
	}
	if !review.Metadata.PublishedAt.IsZero() {
		metadata["published_at"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", review.Metadata.PublishedAt.Unix())}
	}
	if len(metadata) > 0 {
		item["metadata"] = &types.AttributeValueMemberM{Value: metadata}
	}

	return item
}

func GetRecentAnalyzedReviews(ctx context.Context) ([]models.AnalyzedReview, error) {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	var reviews []models.AnalyzedReview
	input := &dynamodb.ScanInput{
		TableName: aws.String(ANALYZED_REVIEWS_TABLE_NAME),
	}

	paginator := dynamodb.NewScanPaginator(dbClient, input)
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("[DynamoDB] Scan for analyzed reviews failed: %w", err)
		}
		var page []models.AnalyzedReview
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			slog.Error("[DynamoDB] Unable to unmarshal review page", slog.String("error", err.Error()))
			return nil, err
		}
		reviews = append(reviews, page...)
	}

	slog.Info("[DynamoDB] Successfully retrieved analyzed reviews", slog.Int("count", len(reviews)))
	return reviews, nil
}

func StoreReplySuggestion(ctx context.Context, suggestion models.ReplySuggestion) error {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	item, err := attributevalue.MarshalMap(suggestion)
	if err != nil {
		return fmt.Errorf("[DynamoDB] Failed to marshal reply suggestion: %w", err)
	}

	_, err = dbClient.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(REPLY_SUGGESTIONS_TABLE_NAME),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("[DynamoDB] Failed to store reply suggestion: %w", err)
	}

	slog.Info("[DynamoDB] Stored reply suggestion",
		slog.String("review_id", suggestion.ReviewID),
		slog.String("suggestion_id", suggestion.SuggestionID))
	return nil
}
