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

var _ TokenRepository = (*redisTokenRepository)(nil)

type redisTokenRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisTokenRepository creates a new Redis-backed TokenRepository.
func NewRedisTokenRepository(client *redis.Client, logger *zap.Logger) TokenRepository {
	return &redisTokenRepository{
		client: client,
		logger: logger.Named("RedisTokenRepo"),
	}
}

// SetToken stores two key-value pairs per token pair:
// access_uuid:{AccessUUID} -> UserID (access TTL) and
// refresh_uuid:{RefreshUUID} -> UserID (refresh TTL), plus both identifiers
// in the user_tokens:{UserID} set so a user's tokens can be enumerated.
func (r *redisTokenRepository) SetToken(ctx context.Context, userID uuid.UUID, td *models.TokenDetails) error {
	now := time.Now()
	accessTTL := time.Unix(td.AtExpires, 0).Sub(now)
	refreshTTL := time.Unix(td.RtExpires, 0).Sub(now)
	userIDStr := userID.String()
	userSetKey := fmt.Sprintf("user_tokens:%s", userIDStr)

	pipe := r.client.Pipeline()
	pipe.Set(ctx, fmt.Sprintf("access_uuid:%s", td.AccessUUID), userIDStr, accessTTL)
	pipe.Set(ctx, fmt.Sprintf("refresh_uuid:%s", td.RefreshUUID), userIDStr, refreshTTL)
	pipe.SAdd(ctx, userSetKey, fmt.Sprintf("access:%s", td.AccessUUID), fmt.Sprintf("refresh:%s", td.RefreshUUID))

	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("Failed to set token details in redis", zap.Error(err), zap.String("userID", userIDStr))
		return fmt.Errorf("failed to set token details in redis: %w", err)
	}
	r.logger.Debug("Token pair stored",
		zap.String("userID", userIDStr),
		zap.String("accessUUID", td.AccessUUID),
		zap.String("refreshUUID", td.RefreshUUID),
	)
	return nil
}

// DeleteTokens removes the given token UUIDs and their identifiers from the
// user's set. Missing keys are not an error.
func (r *redisTokenRepository) DeleteTokens(ctx context.Context, userID uuid.UUID, accessUUID, refreshUUID string) (int64, error) {
	keysToDelete := []string{}
	identifiersToRemove := []interface{}{}
	userSetKey := fmt.Sprintf("user_tokens:%s", userID.String())

	if accessUUID != "" {
		keysToDelete = append(keysToDelete, fmt.Sprintf("access_uuid:%s", accessUUID))
		identifiersToRemove = append(identifiersToRemove, fmt.Sprintf("access:%s", accessUUID))
	}
	if refreshUUID != "" {
		keysToDelete = append(keysToDelete, fmt.Sprintf("refresh_uuid:%s", refreshUUID))
		identifiersToRemove = append(identifiersToRemove, fmt.Sprintf("refresh:%s", refreshUUID))
	}
	if len(keysToDelete) == 0 {
		r.logger.Warn("DeleteTokens called with no UUIDs")
		return 0, nil
	}

	pipe := r.client.Pipeline()
	delCmd := pipe.Del(ctx, keysToDelete...)
	pipe.SRem(ctx, userSetKey, identifiersToRemove...)

	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("Failed to delete tokens from redis", zap.Error(err), zap.String("userID", userID.String()))
		return 0, fmt.Errorf("failed to delete tokens: %w", err)
	}

	deletedCount, _ := delCmd.Result()
	r.logger.Debug("Tokens deleted", zap.String("userID", userID.String()), zap.Int64("deletedCount", deletedCount))
	return deletedCount, nil
}

func (r *redisTokenRepository) GetUserIDByAccessUUID(ctx context.Context, accessUUID string) (uuid.UUID, error) {
	return r.getUserID(ctx, fmt.Sprintf("access_uuid:%s", accessUUID))
}

func (r *redisTokenRepository) GetUserIDByRefreshUUID(ctx context.Context, refreshUUID string) (uuid.UUID, error) {
	return r.getUserID(ctx, fmt.Sprintf("refresh_uuid:%s", refreshUUID))
}

func (r *redisTokenRepository) getUserID(ctx context.Context, key string) (uuid.UUID, error) {
	userIDStr, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, models.ErrTokenNotFound
		}
		r.logger.Error("Failed to get token from redis", zap.Error(err), zap.String("key", key))
		return uuid.Nil, fmt.Errorf("failed to get token from redis: %w", err)
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		r.logger.Error("Stored token maps to an invalid user id", zap.Error(err), zap.String("key", key))
		return uuid.Nil, fmt.Errorf("invalid user id in token store: %w", err)
	}
	return userID, nil
}
