package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AustinTravis/WritingSpacePlace/internal/models"
)

type mockPromptService struct {
	mock.Mock
}

func (_m *mockPromptService) GenerateRandomPrompt(ctx context.Context) (string, error) {
	ret := _m.Called(ctx)
	return ret.String(0), ret.Error(1)
}

func (_m *mockPromptService) GenerateGuidedPrompt(ctx context.Context, params models.GuidedPromptParams) (string, error) {
	ret := _m.Called(ctx, params)
	return ret.String(0), ret.Error(1)
}

func (_m *mockPromptService) GenerateUnconstrainedPrompt(ctx context.Context) (string, error) {
	ret := _m.Called(ctx)
	return ret.String(0), ret.Error(1)
}

func (_m *mockPromptService) ProduceStartPrompt(ctx context.Context, userID uuid.UUID, mode models.StartMode, params *models.GuidedPromptParams) (string, error) {
	ret := _m.Called(ctx, userID, mode, params)
	return ret.String(0), ret.Error(1)
}

func (_m *mockPromptService) ConsumePendingPrompt(ctx context.Context, userID uuid.UUID) (string, error) {
	ret := _m.Called(ctx, userID)
	return ret.String(0), ret.Error(1)
}

// fakeAuth injects an authenticated user without going through JWT parsing.
func fakeAuth(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contextKeyUserID, userID)
		c.Set(contextKeyAccessUUID, uuid.New().String())
		c.Next()
	}
}

func setupPromptFlowRouter(t *testing.T, svc *mockPromptService, userID uuid.UUID) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewHandler(nil, nil, svc, nil, zap.NewNop())
	router := gin.New()
	router.POST("/api/prompts/generate", fakeAuth(userID), h.generatePrompt)
	router.GET("/api/prompts/current", fakeAuth(userID), h.currentPrompt)
	return router
}

func TestGeneratePrompt_RandomMode(t *testing.T) {
	svc := new(mockPromptService)
	svc.Test(t)
	userID := uuid.New()

	svc.On("ProduceStartPrompt", mock.Anything, userID, models.StartModeRandom, (*models.GuidedPromptParams)(nil)).
		Return("A clockmaker finds a letter addressed to the future.", nil)

	router := setupPromptFlowRouter(t, svc, userID)
	w := postJSON(t, router, "/api/prompts/generate", `{"mode":"random"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"prompt":"A clockmaker finds a letter addressed to the future."}`, w.Body.String())
	svc.AssertExpectations(t)
}

func TestGeneratePrompt_EmptyPoolMapsTo404(t *testing.T) {
	svc := new(mockPromptService)
	svc.Test(t)
	userID := uuid.New()

	svc.On("ProduceStartPrompt", mock.Anything, userID, models.StartModeRandom, (*models.GuidedPromptParams)(nil)).
		Return("", models.ErrNoPromptAvailable)

	router := setupPromptFlowRouter(t, svc, userID)
	w := postJSON(t, router, "/api/prompts/generate", `{"mode":"random"}`)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGeneratePrompt_UnknownModeUsesBoundedMetricLabel(t *testing.T) {
	svc := new(mockPromptService)
	svc.Test(t)
	userID := uuid.New()

	svc.On("ProduceStartPrompt", mock.Anything, userID, models.StartMode("surprise"), (*models.GuidedPromptParams)(nil)).
		Return("", models.ErrInvalidInput)

	before := testutil.ToFloat64(promptGenerationsTotal.WithLabelValues("invalid", "failure"))

	router := setupPromptFlowRouter(t, svc, userID)
	w := postJSON(t, router, "/api/prompts/generate", `{"mode":"surprise"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)

	// The raw client string never becomes a label value.
	after := testutil.ToFloat64(promptGenerationsTotal.WithLabelValues("invalid", "failure"))
	assert.Equal(t, before+1, after)
	assert.Equal(t, float64(0), testutil.ToFloat64(promptGenerationsTotal.WithLabelValues("surprise", "failure")))
}

func TestCurrentPrompt_ReturnsPending(t *testing.T) {
	svc := new(mockPromptService)
	svc.Test(t)
	userID := uuid.New()

	svc.On("ConsumePendingPrompt", mock.Anything, userID).Return("Pending prompt text.", nil)

	router := setupPromptFlowRouter(t, svc, userID)
	req := httptest.NewRequest(http.MethodGet, "/api/prompts/current", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"prompt":"Pending prompt text."}`, w.Body.String())
}

func TestCurrentPrompt_NothingPendingMapsTo404(t *testing.T) {
	svc := new(mockPromptService)
	svc.Test(t)
	userID := uuid.New()

	svc.On("ConsumePendingPrompt", mock.Anything, userID).Return("", models.ErrNoHandoffPrompt)

	router := setupPromptFlowRouter(t, svc, userID)
	req := httptest.NewRequest(http.MethodGet, "/api/prompts/current", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}
