package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/AustinTravis/WritingSpacePlace/internal/models"
)

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// TokenRepository defines persistence for issued token pairs (Redis).
type TokenRepository interface {
	// SetToken stores the token details (access & refresh UUIDs mapped to
	// the user ID) with the appropriate TTLs.
	SetToken(ctx context.Context, userID uuid.UUID, td *models.TokenDetails) error

	// DeleteTokens removes the specified token UUIDs from the store and
	// returns the number of keys deleted.
	DeleteTokens(ctx context.Context, userID uuid.UUID, accessUUID, refreshUUID string) (int64, error)

	// GetUserIDByAccessUUID returns the user the access UUID belongs to, or
	// models.ErrTokenNotFound when it is absent or expired.
	GetUserIDByAccessUUID(ctx context.Context, accessUUID string) (uuid.UUID, error)

	// GetUserIDByRefreshUUID returns the user the refresh UUID belongs to, or
	// models.ErrTokenNotFound when it is absent or expired.
	GetUserIDByRefreshUUID(ctx context.Context, refreshUUID string) (uuid.UUID, error)
}

// StoryRepository defines persistence for stories.
type StoryRepository interface {
	CreateStory(ctx context.Context, story *models.Story) error
	GetStoryByID(ctx context.Context, id uuid.UUID) (*models.Story, error)
	UpdateStory(ctx context.Context, story *models.Story) error
	DeleteStory(ctx context.Context, id, userID uuid.UUID) error
	ListStoriesByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.StorySummary, error)
}

// PromptRepository is the paginated-query surface the Template Sampler
// draws from, plus the append-only generation audit log. Templates and
// components are read-only to this service.
type PromptRepository interface {
	CountActiveTemplates(ctx context.Context) (int64, error)

	// GetActiveTemplateByOffset fetches the single active template at the
	// given offset of the id-ordered active set. Returns
	// models.ErrNotFound when the offset falls past the end (a row was
	// deactivated between count and fetch).
	GetActiveTemplateByOffset(ctx context.Context, offset int64) (*models.PromptTemplate, error)

	CountComponentsByType(ctx context.Context, componentType string) (int64, error)

	// GetComponentContentByOffset fetches one component's content at the
	// given offset of the id-ordered pool for a type. Returns
	// models.ErrNotFound when the offset falls past the end.
	GetComponentContentByOffset(ctx context.Context, componentType string, offset int64) (string, error)

	// RecordGeneration appends a provenance record. Callers treat failures
	// as non-fatal.
	RecordGeneration(ctx context.Context, gen *models.PromptGeneration) error
}

// PromptHandoffStore hands a generated prompt from the generation flow to
// the editor screen. Entries are single-read: consuming removes them.
type PromptHandoffStore interface {
	Put(ctx context.Context, userID uuid.UUID, prompt string) error

	// Consume returns and deletes the pending prompt, or
	// models.ErrNoHandoffPrompt when none is waiting.
	Consume(ctx context.Context, userID uuid.UUID) (string, error)
}
