package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/AustinTravis/WritingSpacePlace/internal/repository"
)

// MockPromptHandoffStore is a mock type for the PromptHandoffStore type
type MockPromptHandoffStore struct {
	mock.Mock
}

// Put provides a mock function with given fields: ctx, userID, prompt
func (_m *MockPromptHandoffStore) Put(ctx context.Context, userID uuid.UUID, prompt string) error {
	ret := _m.Called(ctx, userID, prompt)
	return ret.Error(0)
}

// Consume provides a mock function with given fields: ctx, userID
func (_m *MockPromptHandoffStore) Consume(ctx context.Context, userID uuid.UUID) (string, error) {
	ret := _m.Called(ctx, userID)

	var r0 string
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) string); ok {
		r0 = rf(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(string)
		}
	}

	return r0, ret.Error(1)
}

// NewMockPromptHandoffStore creates a new instance of MockPromptHandoffStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockPromptHandoffStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPromptHandoffStore {
	m := &MockPromptHandoffStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ repository.PromptHandoffStore = (*MockPromptHandoffStore)(nil)
