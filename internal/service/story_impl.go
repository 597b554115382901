package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AustinTravis/WritingSpacePlace/internal/models"
	"github.com/AustinTravis/WritingSpacePlace/internal/repository"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

var _ StoryService = (*storyServiceImpl)(nil)

type storyServiceImpl struct {
	storyRepo repository.StoryRepository
	logger    *zap.Logger
}

// NewStoryService creates the story CRUD service.
func NewStoryService(storyRepo repository.StoryRepository, logger *zap.Logger) StoryService {
	return &storyServiceImpl{
		storyRepo: storyRepo,
		logger:    logger.Named("StoryService"),
	}
}

func (s *storyServiceImpl) CreateStory(ctx context.Context, userID uuid.UUID, input StoryInput) (*models.Story, error) {
	story := &models.Story{UserID: userID}
	if err := applyInput(story, input); err != nil {
		return nil, err
	}

	if err := s.storyRepo.CreateStory(ctx, story); err != nil {
		return nil, err
	}
	s.logger.Info("Story created", zap.String("storyID", story.ID.String()), zap.String("userID", userID.String()))
	return story, nil
}

func (s *storyServiceImpl) GetStory(ctx context.Context, id, requesterID uuid.UUID) (*models.Story, error) {
	story, err := s.storyRepo.GetStoryByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if story.UserID != requesterID {
		isPublic := story.Visibility == models.StoryVisibilityPublic && story.Status == models.StoryStatusPublished
		if !isPublic {
			// Hide the story's existence from non-owners.
			return nil, models.ErrStoryNotFound
		}
	}
	return story, nil
}

func (s *storyServiceImpl) UpdateStory(ctx context.Context, id, userID uuid.UUID, input StoryInput) (*models.Story, error) {
	story, err := s.storyRepo.GetStoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if story.UserID != userID {
		return nil, models.ErrStoryNotFound
	}

	if err := applyInput(story, input); err != nil {
		return nil, err
	}

	if err := s.storyRepo.UpdateStory(ctx, story); err != nil {
		return nil, err
	}
	return story, nil
}

func (s *storyServiceImpl) DeleteStory(ctx context.Context, id, userID uuid.UUID) error {
	return s.storyRepo.DeleteStory(ctx, id, userID)
}

func (s *storyServiceImpl) ListStories(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.StorySummary, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.storyRepo.ListStoriesByUser(ctx, userID, limit, offset)
}

// applyInput validates the input and copies it onto the story, recomputing
// the word count from the content.
func applyInput(story *models.Story, input StoryInput) error {
	genre := input.Genre
	if genre == "" {
		genre = "fiction"
	}
	if !models.ValidGenres[genre] {
		return fmt.Errorf("%w: %q", models.ErrInvalidGenre, input.Genre)
	}

	status := input.Status
	if status == "" {
		status = models.StoryStatusDraft
	}
	if status != models.StoryStatusDraft && status != models.StoryStatusPublished {
		return fmt.Errorf("invalid status %q: %w", input.Status, models.ErrInvalidInput)
	}

	visibility := input.Visibility
	if visibility == "" {
		visibility = models.StoryVisibilityPrivate
	}
	if visibility != models.StoryVisibilityPrivate && visibility != models.StoryVisibilityPublic {
		return fmt.Errorf("invalid visibility %q: %w", input.Visibility, models.ErrInvalidInput)
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	story.Title = strings.TrimSpace(input.Title)
	story.Content = input.Content
	story.WordCount = CountWords(input.Content)
	story.Status = status
	story.Genre = genre
	story.Tags = tags
	story.Visibility = visibility
	story.Prompt = input.Prompt
	return nil
}

// CountWords counts whitespace-separated words in the editor's HTML
// content, ignoring markup. Tags are stripped with a small scanner rather
// than a full HTML parse; editor output is well-formed enough for that.
func CountWords(content string) int {
	var b strings.Builder
	inTag := false
	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
			b.WriteRune(' ')
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return len(strings.Fields(b.String()))
}
