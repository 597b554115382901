package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AustinTravis/WritingSpacePlace/internal/config"
	"github.com/AustinTravis/WritingSpacePlace/internal/models"
)

func newTestAIClient(baseURL string) *AIClient {
	return NewAIClient(&config.Config{
		AIAPIKey:    "test-key",
		AIBaseURL:   baseURL,
		AIModel:     "test-model",
		AITimeout:   5 * time.Second,
		AIMaxTokens: 150,
	}, zap.NewNop())
}

func completionResponse(text string) map[string]interface{} {
	return map[string]interface{}{
		"id":     "chatcmpl-test",
		"object": "chat.completion",
		"model":  "test-model",
		"choices": []map[string]interface{}{
			{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]interface{}{
					"role":    "assistant",
					"content": text,
				},
			},
		},
	}
}

func TestAIClient_GenerateText(t *testing.T) {
	var gotRequest struct {
		Model       string  `json:"model"`
		Temperature float32 `json:"temperature"`
		TopP        float32 `json:"top_p"`
		MaxTokens   int     `json:"max_tokens"`
		Messages    []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRequest))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionResponse("  A fresh writing prompt.\n"))
	}))
	defer server.Close()

	client := newTestAIClient(server.URL)

	text, err := client.GenerateText(context.Background(), "write something")
	require.NoError(t, err)
	assert.Equal(t, "A fresh writing prompt.", text, "completion should be trimmed")

	assert.Equal(t, "test-model", gotRequest.Model)
	assert.InDelta(t, 0.7, gotRequest.Temperature, 0.001)
	assert.InDelta(t, 1.0, gotRequest.TopP, 0.001)
	assert.Equal(t, 150, gotRequest.MaxTokens)
	require.Len(t, gotRequest.Messages, 1)
	assert.Equal(t, "user", gotRequest.Messages[0].Role)
	assert.Equal(t, "write something", gotRequest.Messages[0].Content)
}

func TestAIClient_EmptyContent(t *testing.T) {
	client := newTestAIClient("http://localhost:0")

	_, err := client.GenerateText(context.Background(), "   ")
	require.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestAIClient_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestAIClient(server.URL)

	_, err := client.GenerateText(context.Background(), "write something")
	require.ErrorIs(t, err, models.ErrGenerationFailed)
}

func TestAIClient_EmptyCompletion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionResponse("   "))
	}))
	defer server.Close()

	client := newTestAIClient(server.URL)

	_, err := client.GenerateText(context.Background(), "write something")
	require.ErrorIs(t, err, models.ErrGenerationFailed)
}
