package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/AustinTravis/WritingSpacePlace/internal/models"
)

var _ PromptHandoffStore = (*redisHandoffStore)(nil)

// redisHandoffStore passes a freshly generated prompt to the editor screen.
// One entry per user, overwritten by each new generation, consumed exactly
// once via GETDEL. The TTL keeps abandoned prompts from lingering.
type redisHandoffStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisHandoffStore creates a Redis-backed PromptHandoffStore.
func NewRedisHandoffStore(client *redis.Client, ttl time.Duration, logger *zap.Logger) PromptHandoffStore {
	return &redisHandoffStore{
		client: client,
		ttl:    ttl,
		logger: logger.Named("RedisHandoffStore"),
	}
}

func handoffKey(userID uuid.UUID) string {
	return fmt.Sprintf("writing_prompt:%s", userID.String())
}

func (s *redisHandoffStore) Put(ctx context.Context, userID uuid.UUID, prompt string) error {
	if err := s.client.Set(ctx, handoffKey(userID), prompt, s.ttl).Err(); err != nil {
		s.logger.Error("Failed to store prompt handoff", zap.Error(err), zap.String("userID", userID.String()))
		return fmt.Errorf("failed to store prompt handoff: %w", err)
	}
	s.logger.Debug("Prompt handoff stored", zap.String("userID", userID.String()))
	return nil
}

func (s *redisHandoffStore) Consume(ctx context.Context, userID uuid.UUID) (string, error) {
	prompt, err := s.client.GetDel(ctx, handoffKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", models.ErrNoHandoffPrompt
		}
		s.logger.Error("Failed to consume prompt handoff", zap.Error(err), zap.String("userID", userID.String()))
		return "", fmt.Errorf("failed to consume prompt handoff: %w", err)
	}
	s.logger.Debug("Prompt handoff consumed", zap.String("userID", userID.String()))
	return prompt, nil
}
