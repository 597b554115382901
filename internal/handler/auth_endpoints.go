package handler

import (
	"fmt"
	"net/http"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/AustinTravis/WritingSpacePlace/internal/models"
	"github.com/AustinTravis/WritingSpacePlace/internal/service"
)

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request data: " + err.Error()})
		return
	}

	if len(req.Username) < minUsernameLength || len(req.Username) > maxUsernameLength {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: fmt.Sprintf("Username length must be between %d and %d characters", minUsernameLength, maxUsernameLength)})
		return
	}
	if !usernameRegex.MatchString(req.Username) {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: "Username can only contain letters, numbers, underscores, and hyphens"})
		return
	}

	if len(req.Password) < minPasswordLength || len(req.Password) > maxPasswordLength {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: fmt.Sprintf("Password length must be between %d and %d characters", minPasswordLength, maxPasswordLength)})
		return
	}
	var (
		hasLetter bool
		hasDigit  bool
	)
	for _, char := range req.Password {
		if unicode.IsLetter(char) {
			hasLetter = true
		}
		if unicode.IsDigit(char) {
			hasDigit = true
		}
		if hasLetter && hasDigit {
			break
		}
	}
	if !hasLetter || !hasDigit {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: "Password must contain at least one letter and one digit"})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	registrationsTotal.Inc()

	c.JSON(http.StatusCreated, gin.H{
		"id":       user.ID.String(),
		"username": user.Username,
		"email":    user.Email,
	})
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	tokens, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokens)
}

func (h *Handler) logout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		handleServiceError(c, models.ErrUnauthorized)
		return
	}
	accessUUID := c.GetString(contextKeyAccessUUID)
	if accessUUID == "" {
		h.logger.Error("Access UUID missing in context during logout")
		handleServiceError(c, models.ErrInternalServer)
		return
	}

	var req logoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: "Missing or invalid refresh_token in request body: " + err.Error()})
		return
	}

	// The signature is not checked here: the token only identifies which
	// refresh UUID to revoke, and the delete is scoped to the
	// already-authenticated user.
	token, _, err := new(jwt.Parser).ParseUnverified(req.RefreshToken, &service.Claims{})
	if err != nil {
		handleServiceError(c, models.ErrTokenMalformed)
		return
	}
	claims, ok := token.Claims.(*service.Claims)
	if !ok || claims.UserID != userID {
		handleServiceError(c, models.ErrTokenInvalid)
		return
	}

	if err := h.authService.Logout(c.Request.Context(), userID, accessUUID, claims.ID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

func (h *Handler) refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: "Missing or invalid refresh_token in request body: " + err.Error()})
		return
	}

	tokens, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokens)
}

func (h *Handler) me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		handleServiceError(c, models.ErrUnauthorized)
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		h.logger.Warn("Failed to load current user", zap.Error(err), zap.String("userID", userID.String()))
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
