package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/AustinTravis/WritingSpacePlace/internal/models"
)

// modeMetricLabel collapses client-supplied modes outside the known set to
// a single label value, keeping metric cardinality bounded.
func modeMetricLabel(mode models.StartMode) string {
	switch mode {
	case models.StartModeBlank, models.StartModeRandom, models.StartModeGuided:
		return string(mode)
	default:
		return "invalid"
	}
}

// generatePromptProxy forwards free-form content to the completion backend.
// The wire contract is fixed: callers depend on these exact bodies.
func (h *Handler) generatePromptProxy(c *gin.Context) {
	var req generatePromptProxyRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Content) == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: "Content is required"})
		return
	}

	prompt, err := h.textGen.GenerateText(c.Request.Context(), req.Content)
	if err != nil {
		h.logger.Error("Prompt proxy generation failed", zap.Error(err))
		promptGenerationsTotal.WithLabelValues("proxy", "failure").Inc()
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to generate prompt"})
		return
	}

	promptGenerationsTotal.WithLabelValues("proxy", "success").Inc()
	c.JSON(http.StatusOK, models.PromptResponse{Prompt: prompt})
}

// generatePrompt produces a start prompt for the chosen mode and parks it
// for the editor screen to pick up.
func (h *Handler) generatePrompt(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		handleServiceError(c, models.ErrUnauthorized)
		return
	}

	var req generatePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	modeLabel := modeMetricLabel(req.Mode)

	prompt, err := h.promptService.ProduceStartPrompt(c.Request.Context(), userID, req.Mode, req.Params)
	if err != nil {
		promptGenerationsTotal.WithLabelValues(modeLabel, "failure").Inc()
		handleServiceError(c, err)
		return
	}

	promptGenerationsTotal.WithLabelValues(modeLabel, "success").Inc()
	c.JSON(http.StatusOK, models.PromptResponse{Prompt: prompt})
}

// currentPrompt returns the pending prompt for the user and removes it, so
// a second read comes back empty-handed.
func (h *Handler) currentPrompt(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		handleServiceError(c, models.ErrUnauthorized)
		return
	}

	prompt, err := h.promptService.ConsumePendingPrompt(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PromptResponse{Prompt: prompt})
}
