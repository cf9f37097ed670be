package replies

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"

	"github.com/reviewpulse/reviewpulse/internal/clients"
	"github.com/reviewpulse/reviewpulse/internal/models"
)

const (
	openAIModel         = openai.GPT3Dot5Turbo1106
	openAIRetryAttempts = 3
)

const systemPrompt = `You draft short, professional replies that a business owner can post
in response to a customer review. Acknowledge the specific issues raised, apologize where
warranted, and invite the customer to follow up directly. Never promise refunds or
compensation. Keep the reply under 120 words and do not mention that it was generated.`

// SuggestReply drafts an owner response for an urgent review. The draft is
// only ever stored as a suggestion; nothing is posted on the owner's behalf.
func SuggestReply(ctx context.Context, request models.ReplyRequest) (models.ReplySuggestion, error) {
	messages := buildChatMessages(request)

	var resp openai.ChatCompletionResponse
	var completionErr error

	for i := 0; i < openAIRetryAttempts; i++ {
		start := time.Now()
		resp, completionErr = clients.GetOpenAIClient().Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:    openAIModel,
			Messages: messages,
		})
		if completionErr == nil {
			break
		}
		slog.Warn("[ReplySuggester] Failed to get a response from OpenAI, retrying...",
			slog.String("review_id", request.ReviewID),
			slog.Int("attempt", i+1),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", completionErr.Error()))
	}
	if completionErr != nil {
		return models.ReplySuggestion{}, fmt.Errorf("[ReplySuggester] OpenAI request failed after %d attempts: %w",
			openAIRetryAttempts, completionErr)
	}

	if len(resp.Choices) == 0 {
		return models.ReplySuggestion{}, fmt.Errorf("[ReplySuggester] OpenAI returned no choices for review %s", request.ReviewID)
	}

	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	if reply == "" {
		return models.ReplySuggestion{}, fmt.Errorf("[ReplySuggester] OpenAI returned an empty reply for review %s", request.ReviewID)
	}

	return models.ReplySuggestion{
		SuggestionID: uuid.NewString(),
		ReviewID:     request.ReviewID,
		BusinessID:   request.BusinessID,
		Reply:        reply,
		Model:        openAIModel,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

func buildChatMessages(request models.ReplyRequest) []openai.ChatCompletionMessage {
	var sb strings.Builder

	if request.BusinessName != "" {
		fmt.Fprintf(&sb, "Business: %s\n", request.BusinessName)
	}
	fmt.Fprintf(&sb, "Rating: %d out of 5\n", request.Rating)
	if len(request.Topics) > 0 {
		fmt.Fprintf(&sb, "Issues raised: %s\n", strings.Join(request.Topics, ", "))
	}
	fmt.Fprintf(&sb, "Review:\n%s", request.Text)

	return []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: sb.String()},
	}
}
