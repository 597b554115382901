package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/AustinTravis/WritingSpacePlace/internal/models"
	"github.com/AustinTravis/WritingSpacePlace/internal/repository"
)

// MockStoryRepository is a mock type for the StoryRepository type
type MockStoryRepository struct {
	mock.Mock
}

// CreateStory provides a mock function with given fields: ctx, story
func (_m *MockStoryRepository) CreateStory(ctx context.Context, story *models.Story) error {
	ret := _m.Called(ctx, story)
	return ret.Error(0)
}

// GetStoryByID provides a mock function with given fields: ctx, id
func (_m *MockStoryRepository) GetStoryByID(ctx context.Context, id uuid.UUID) (*models.Story, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Story
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Story)
	}
	return r0, ret.Error(1)
}

// UpdateStory provides a mock function with given fields: ctx, story
func (_m *MockStoryRepository) UpdateStory(ctx context.Context, story *models.Story) error {
	ret := _m.Called(ctx, story)
	return ret.Error(0)
}

// DeleteStory provides a mock function with given fields: ctx, id, userID
func (_m *MockStoryRepository) DeleteStory(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	ret := _m.Called(ctx, id, userID)
	return ret.Error(0)
}

// ListStoriesByUser provides a mock function with given fields: ctx, userID, limit, offset
func (_m *MockStoryRepository) ListStoriesByUser(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]*models.StorySummary, error) {
	ret := _m.Called(ctx, userID, limit, offset)

	var r0 []*models.StorySummary
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.StorySummary)
	}
	return r0, ret.Error(1)
}

// NewMockStoryRepository creates a new instance of MockStoryRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockStoryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockStoryRepository {
	m := &MockStoryRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ repository.StoryRepository = (*MockStoryRepository)(nil)
