package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/AustinTravis/WritingSpacePlace/internal/config"
	"github.com/AustinTravis/WritingSpacePlace/internal/models"
)

// Decoding parameters of the completion backend. Fixed: changing them
// changes the character of generated prompts, so they are not configurable
// per request.
const (
	aiTemperature float32 = 0.7
	aiTopP        float32 = 1.0
)

// TextGenerator produces a short completion for a single instruction.
type TextGenerator interface {
	GenerateText(ctx context.Context, content string) (string, error)
}

// AIClient talks to an OpenAI-compatible chat-completion API (Groq by
// default). One instruction in, one short completion out, no retries.
type AIClient struct {
	openaiClient *openai.Client
	model        string
	maxTokens    int
	logger       *zap.Logger
}

var _ TextGenerator = (*AIClient)(nil)

// NewAIClient creates a completion client from the AI section of the config.
func NewAIClient(cfg *config.Config, logger *zap.Logger) *AIClient {
	clientConfig := openai.DefaultConfig(cfg.AIAPIKey)
	clientConfig.BaseURL = cfg.AIBaseURL
	clientConfig.HTTPClient = &http.Client{Timeout: cfg.AITimeout}

	return &AIClient{
		openaiClient: openai.NewClientWithConfig(clientConfig),
		model:        cfg.AIModel,
		maxTokens:    cfg.AIMaxTokens,
		logger:       logger.Named("AIClient"),
	}
}

// GenerateText forwards the content as a single user-role message and
// returns the completion text. Any transport failure or empty completion
// yields models.ErrGenerationFailed; the caller owns user-facing messaging.
func (c *AIClient) GenerateText(ctx context.Context, content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("content cannot be empty: %w", models.ErrInvalidInput)
	}

	resp, err := c.openaiClient.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: content},
		},
		Temperature: aiTemperature,
		TopP:        aiTopP,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		c.logger.Error("Chat completion request failed", zap.Error(err), zap.String("model", c.model))
		return "", fmt.Errorf("%w: %v", models.ErrGenerationFailed, err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		c.logger.Warn("Chat completion returned no text", zap.String("model", c.model))
		return "", models.ErrGenerationFailed
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
