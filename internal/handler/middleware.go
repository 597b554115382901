package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AustinTravis/WritingSpacePlace/internal/models"
	"github.com/AustinTravis/WritingSpacePlace/internal/service"
)

const (
	contextKeyUserID     = "user_id"
	contextKeyAccessUUID = "access_uuid"
)

// AuthMiddleware requires a valid, non-revoked bearer token and puts the
// user ID and access UUID into the request context.
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := h.verifyBearer(c)
		if err != nil {
			tokenVerificationsTotal.WithLabelValues("failure").Inc()
			handleServiceError(c, err)
			return
		}

		tokenVerificationsTotal.WithLabelValues("success").Inc()
		c.Set(contextKeyUserID, claims.UserID)
		c.Set(contextKeyAccessUUID, claims.ID)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the user when a bearer token is present,
// but lets anonymous requests through. Used for public story reads.
func (h *Handler) OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}

		claims, err := h.verifyBearer(c)
		if err != nil {
			// An explicit but bad token is still rejected.
			handleServiceError(c, err)
			return
		}

		c.Set(contextKeyUserID, claims.UserID)
		c.Set(contextKeyAccessUUID, claims.ID)
		c.Next()
	}
}

func (h *Handler) verifyBearer(c *gin.Context) (*service.Claims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, models.ErrTokenInvalid
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		h.logger.Warn("Invalid Authorization header format")
		return nil, models.ErrTokenInvalid
	}

	claims, err := h.authService.VerifyAccessToken(c.Request.Context(), parts[1])
	if err != nil {
		h.logger.Warn("Access token verification failed", zap.Error(err))
		return nil, err
	}
	return claims, nil
}

// currentUserID extracts the authenticated user's ID from the context.
// Returns uuid.Nil and false when the request is anonymous.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get(contextKeyUserID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := raw.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}
	return id, true
}
