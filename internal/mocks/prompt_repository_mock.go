package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/AustinTravis/WritingSpacePlace/internal/models"
	"github.com/AustinTravis/WritingSpacePlace/internal/repository"
)

// MockPromptRepository is a mock type for the PromptRepository type
type MockPromptRepository struct {
	mock.Mock
}

// CountActiveTemplates provides a mock function with given fields: ctx
func (_m *MockPromptRepository) CountActiveTemplates(ctx context.Context) (int64, error) {
	ret := _m.Called(ctx)

	var r0 int64
	if rf, ok := ret.Get(0).(func(context.Context) int64); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(int64)
	}

	return r0, ret.Error(1)
}

// GetActiveTemplateByOffset provides a mock function with given fields: ctx, offset
func (_m *MockPromptRepository) GetActiveTemplateByOffset(ctx context.Context, offset int64) (*models.PromptTemplate, error) {
	ret := _m.Called(ctx, offset)

	var r0 *models.PromptTemplate
	if rf, ok := ret.Get(0).(func(context.Context, int64) *models.PromptTemplate); ok {
		r0 = rf(ctx, offset)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.PromptTemplate)
		}
	}

	return r0, ret.Error(1)
}

// CountComponentsByType provides a mock function with given fields: ctx, componentType
func (_m *MockPromptRepository) CountComponentsByType(ctx context.Context, componentType string) (int64, error) {
	ret := _m.Called(ctx, componentType)

	var r0 int64
	if rf, ok := ret.Get(0).(func(context.Context, string) int64); ok {
		r0 = rf(ctx, componentType)
	} else {
		r0 = ret.Get(0).(int64)
	}

	return r0, ret.Error(1)
}

// GetComponentContentByOffset provides a mock function with given fields: ctx, componentType, offset
func (_m *MockPromptRepository) GetComponentContentByOffset(ctx context.Context, componentType string, offset int64) (string, error) {
	ret := _m.Called(ctx, componentType, offset)

	var r0 string
	if rf, ok := ret.Get(0).(func(context.Context, string, int64) string); ok {
		r0 = rf(ctx, componentType, offset)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(string)
		}
	}

	return r0, ret.Error(1)
}

// RecordGeneration provides a mock function with given fields: ctx, gen
func (_m *MockPromptRepository) RecordGeneration(ctx context.Context, gen *models.PromptGeneration) error {
	ret := _m.Called(ctx, gen)
	return ret.Error(0)
}

// NewMockPromptRepository creates a new instance of MockPromptRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockPromptRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPromptRepository {
	m := &MockPromptRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ repository.PromptRepository = (*MockPromptRepository)(nil)
