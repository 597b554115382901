package handler

import (
	"regexp"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/AustinTravis/WritingSpacePlace/internal/service"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 30
	minPasswordLength = 8
	maxPasswordLength = 100
)

// Allowed characters in a username.
var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Handler wires the HTTP surface to the service layer.
type Handler struct {
	authService   service.AuthService
	storyService  service.StoryService
	promptService service.PromptService
	textGen       service.TextGenerator
	logger        *zap.Logger
}

// NewHandler creates a new Handler.
func NewHandler(
	authService service.AuthService,
	storyService service.StoryService,
	promptService service.PromptService,
	textGen service.TextGenerator,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		authService:   authService,
		storyService:  storyService,
		promptService: promptService,
		textGen:       textGen,
		logger:        logger.Named("Handler"),
	}
}

// RegisterRoutes sets up all API routes. authRateLimiter is applied to the
// credential-bearing auth endpoints only.
func (h *Handler) RegisterRoutes(router *gin.Engine, authRateLimiter gin.HandlerFunc) {
	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authRateLimiter, h.register)
		auth.POST("/login", authRateLimiter, h.login)
		auth.POST("/refresh", authRateLimiter, h.refresh)
		auth.POST("/logout", h.AuthMiddleware(), h.logout)
		auth.GET("/me", h.AuthMiddleware(), h.me)
	}

	// Anonymous proxy used by the landing page.
	api.POST("/generate-prompt", h.generatePromptProxy)

	prompts := api.Group("/prompts", h.AuthMiddleware())
	{
		prompts.POST("/generate", h.generatePrompt)
		prompts.GET("/current", h.currentPrompt)
	}

	stories := api.Group("/stories")
	{
		stories.GET("/:id", h.OptionalAuthMiddleware(), h.getStory)

		authed := stories.Group("", h.AuthMiddleware())
		authed.POST("", h.createStory)
		authed.GET("", h.listStories)
		authed.PUT("/:id", h.updateStory)
		authed.DELETE("/:id", h.deleteStory)
	}
}
