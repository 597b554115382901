package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AustinTravis/WritingSpacePlace/internal/mocks"
	"github.com/AustinTravis/WritingSpacePlace/internal/models"
)

func setupProxyRouter(t *testing.T, gen *mocks.MockTextGenerator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewHandler(nil, nil, nil, gen, zap.NewNop())
	router := gin.New()
	router.POST("/api/generate-prompt", h.generatePromptProxy)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGeneratePromptProxy_Success(t *testing.T) {
	gen := mocks.NewMockTextGenerator(t)
	gen.On("GenerateText", mock.Anything, "space pirates").Return("Write about space pirates who lost their ship.", nil)

	router := setupProxyRouter(t, gen)
	w := postJSON(t, router, "/api/generate-prompt", `{"content":"space pirates"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.PromptResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Write about space pirates who lost their ship.", resp.Prompt)
	gen.AssertExpectations(t)
}

func TestGeneratePromptProxy_MissingContent(t *testing.T) {
	gen := mocks.NewMockTextGenerator(t)
	router := setupProxyRouter(t, gen)

	for name, body := range map[string]string{
		"absent field":    `{}`,
		"empty string":    `{"content":""}`,
		"whitespace only": `{"content":"   "}`,
		"malformed json":  `{"content":`,
	} {
		t.Run(name, func(t *testing.T) {
			w := postJSON(t, router, "/api/generate-prompt", body)

			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"Content is required"}`, w.Body.String())
		})
	}

	gen.AssertNotCalled(t, "GenerateText", mock.Anything, mock.Anything)
}

func TestGeneratePromptProxy_GeneratorFailure(t *testing.T) {
	gen := mocks.NewMockTextGenerator(t)
	gen.On("GenerateText", mock.Anything, "anything").Return("", errors.New("upstream timeout"))

	router := setupProxyRouter(t, gen)
	w := postJSON(t, router, "/api/generate-prompt", `{"content":"anything"}`)

	// Upstream details never leak to the caller.
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to generate prompt"}`, w.Body.String())
}
