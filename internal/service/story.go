package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/AustinTravis/WritingSpacePlace/internal/models"
)

// StoryInput carries the editable fields of a story.
type StoryInput struct {
	Title      string                 `json:"title"`
	Content    string                 `json:"content"`
	Genre      string                 `json:"genre"`
	Tags       []string               `json:"tags"`
	Status     models.StoryStatus     `json:"status"`
	Visibility models.StoryVisibility `json:"visibility"`
	Prompt     string                 `json:"prompt"`
}

// StoryService owns story CRUD and derived fields (word count).
type StoryService interface {
	CreateStory(ctx context.Context, userID uuid.UUID, input StoryInput) (*models.Story, error)

	// GetStory returns the story when the requester owns it, or when it is
	// published and public. requesterID may be uuid.Nil for anonymous
	// readers.
	GetStory(ctx context.Context, id, requesterID uuid.UUID) (*models.Story, error)

	UpdateStory(ctx context.Context, id, userID uuid.UUID, input StoryInput) (*models.Story, error)
	DeleteStory(ctx context.Context, id, userID uuid.UUID) error
	ListStories(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.StorySummary, error)
}
