package service

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/AustinTravis/WritingSpacePlace/internal/models"
)

// Claims are the JWT claims carried by both access and refresh tokens. The
// registered ID (jti) is the UUID under which the token is tracked in the
// token store.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	jwt.RegisteredClaims
}

// AuthService defines authentication and token lifecycle logic.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.TokenDetails, error)
	// Logout revokes the whole session pair: the access UUID from the
	// verified bearer token and the refresh UUID extracted from the
	// submitted refresh token.
	Logout(ctx context.Context, userID uuid.UUID, accessUUID, refreshUUID string) error
	Refresh(ctx context.Context, refreshToken string) (*models.TokenDetails, error)

	// VerifyAccessToken parses and validates an access token and confirms
	// it has not been revoked in the token store.
	VerifyAccessToken(ctx context.Context, tokenString string) (*Claims, error)

	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
}
