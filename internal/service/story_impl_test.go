package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AustinTravis/WritingSpacePlace/internal/mocks"
	"github.com/AustinTravis/WritingSpacePlace/internal/models"
)

func TestCountWords(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 0},
		{"plain text", "three little words", 3},
		{"html paragraphs", "<p>Hello world</p><p>Another line here</p>", 5},
		{"nested markup", "<div><strong>Bold</strong> and <em>italic</em> text</div>", 4},
		{"whitespace only", "   \n\t  ", 0},
		{"adjacent tags glue nothing", "one<br>two", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountWords(tt.content))
		})
	}
}

func TestCreateStory_DefaultsAndWordCount(t *testing.T) {
	repo := mocks.NewMockStoryRepository(t)
	svc := NewStoryService(repo, zap.NewNop())

	userID := uuid.New()
	repo.On("CreateStory", mock.Anything, mock.MatchedBy(func(s *models.Story) bool {
		return s.UserID == userID &&
			s.Genre == "fiction" &&
			s.Status == models.StoryStatusDraft &&
			s.Visibility == models.StoryVisibilityPrivate &&
			s.WordCount == 4 &&
			s.Tags != nil
	})).Return(nil)

	story, err := svc.CreateStory(context.Background(), userID, StoryInput{
		Title:   "Untitled",
		Content: "<p>Four words of content</p>",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, story.WordCount)
	repo.AssertExpectations(t)
}

func TestCreateStory_InvalidGenre(t *testing.T) {
	repo := mocks.NewMockStoryRepository(t)
	svc := NewStoryService(repo, zap.NewNop())

	_, err := svc.CreateStory(context.Background(), uuid.New(), StoryInput{
		Title: "Bad genre",
		Genre: "interpretive-dance",
	})
	require.ErrorIs(t, err, models.ErrInvalidGenre)
	repo.AssertNotCalled(t, "CreateStory", mock.Anything, mock.Anything)
}

func TestGetStory_HidesPrivateFromNonOwners(t *testing.T) {
	repo := mocks.NewMockStoryRepository(t)
	svc := NewStoryService(repo, zap.NewNop())

	ownerID := uuid.New()
	storyID := uuid.New()
	story := &models.Story{
		ID:         storyID,
		UserID:     ownerID,
		Status:     models.StoryStatusDraft,
		Visibility: models.StoryVisibilityPrivate,
	}
	repo.On("GetStoryByID", mock.Anything, storyID).Return(story, nil)

	// The owner sees it.
	got, err := svc.GetStory(context.Background(), storyID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, storyID, got.ID)

	// A stranger gets not-found, not forbidden.
	_, err = svc.GetStory(context.Background(), storyID, uuid.New())
	require.ErrorIs(t, err, models.ErrStoryNotFound)

	// So does an anonymous reader.
	_, err = svc.GetStory(context.Background(), storyID, uuid.Nil)
	require.ErrorIs(t, err, models.ErrStoryNotFound)
}

func TestGetStory_PublishedPublicIsReadable(t *testing.T) {
	repo := mocks.NewMockStoryRepository(t)
	svc := NewStoryService(repo, zap.NewNop())

	storyID := uuid.New()
	story := &models.Story{
		ID:         storyID,
		UserID:     uuid.New(),
		Status:     models.StoryStatusPublished,
		Visibility: models.StoryVisibilityPublic,
	}
	repo.On("GetStoryByID", mock.Anything, storyID).Return(story, nil)

	got, err := svc.GetStory(context.Background(), storyID, uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, storyID, got.ID)
}

func TestUpdateStory_OwnershipEnforced(t *testing.T) {
	repo := mocks.NewMockStoryRepository(t)
	svc := NewStoryService(repo, zap.NewNop())

	storyID := uuid.New()
	story := &models.Story{
		ID:     storyID,
		UserID: uuid.New(),
		Genre:  "fiction",
	}
	repo.On("GetStoryByID", mock.Anything, storyID).Return(story, nil)

	_, err := svc.UpdateStory(context.Background(), storyID, uuid.New(), StoryInput{Title: "Hijacked"})
	require.ErrorIs(t, err, models.ErrStoryNotFound)
	repo.AssertNotCalled(t, "UpdateStory", mock.Anything, mock.Anything)
}

func TestListStories_LimitClamping(t *testing.T) {
	repo := mocks.NewMockStoryRepository(t)
	svc := NewStoryService(repo, zap.NewNop())

	userID := uuid.New()
	repo.On("ListStoriesByUser", mock.Anything, userID, defaultListLimit, 0).Return([]*models.StorySummary{}, nil).Once()
	repo.On("ListStoriesByUser", mock.Anything, userID, maxListLimit, 0).Return([]*models.StorySummary{}, nil).Once()

	_, err := svc.ListStories(context.Background(), userID, 0, -5)
	require.NoError(t, err)

	_, err = svc.ListStories(context.Background(), userID, 5000, 0)
	require.NoError(t, err)

	repo.AssertExpectations(t)
}
