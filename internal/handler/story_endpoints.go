package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AustinTravis/WritingSpacePlace/internal/models"
	"github.com/AustinTravis/WritingSpacePlace/internal/service"
)

func (h *Handler) createStory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		handleServiceError(c, models.ErrUnauthorized)
		return
	}

	var input service.StoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	story, err := h.storyService.CreateStory(c.Request.Context(), userID, input)
	if err != nil {
		storySavesTotal.WithLabelValues("create", "failure").Inc()
		handleServiceError(c, err)
		return
	}

	storySavesTotal.WithLabelValues("create", "success").Inc()
	c.JSON(http.StatusCreated, story)
}

func (h *Handler) getStory(c *gin.Context) {
	storyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid story ID"})
		return
	}

	// Anonymous readers get uuid.Nil and see only public published stories.
	requesterID, _ := currentUserID(c)

	story, err := h.storyService.GetStory(c.Request.Context(), storyID, requesterID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, story)
}

func (h *Handler) updateStory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		handleServiceError(c, models.ErrUnauthorized)
		return
	}

	storyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid story ID"})
		return
	}

	var input service.StoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	story, err := h.storyService.UpdateStory(c.Request.Context(), storyID, userID, input)
	if err != nil {
		storySavesTotal.WithLabelValues("update", "failure").Inc()
		handleServiceError(c, err)
		return
	}

	storySavesTotal.WithLabelValues("update", "success").Inc()
	c.JSON(http.StatusOK, story)
}

func (h *Handler) deleteStory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		handleServiceError(c, models.ErrUnauthorized)
		return
	}

	storyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid story ID"})
		return
	}

	if err := h.storyService.DeleteStory(c.Request.Context(), storyID, userID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Story deleted"})
}

func (h *Handler) listStories(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		handleServiceError(c, models.ErrUnauthorized)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	stories, err := h.storyService.ListStories(c.Request.Context(), userID, limit, offset)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stories": stories})
}
