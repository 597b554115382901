package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AustinTravis/WritingSpacePlace/internal/config"
	"github.com/AustinTravis/WritingSpacePlace/internal/mocks"
	"github.com/AustinTravis/WritingSpacePlace/internal/models"
)

func TestHashAndCheckPassword(t *testing.T) {
	password := "mysecretpassword1"
	pepper := "test-pepper-for-unit-tests"

	hashedPassword, err := hashPassword(password, pepper)
	require.NoError(t, err)
	require.NotEmpty(t, hashedPassword)
	assert.NotEqual(t, password, hashedPassword)

	assert.True(t, checkPasswordHash(password, pepper, hashedPassword))
	assert.False(t, checkPasswordHash("wrongpassword1", pepper, hashedPassword))
	assert.False(t, checkPasswordHash(password, "another-pepper", hashedPassword))
	assert.False(t, checkPasswordHash(password, pepper, "not-a-bcrypt-hash"))
}

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-jwt-secret",
		PasswordPepper:  "test-pepper",
		AccessTokenTTL:  5 * time.Minute,
		RefreshTokenTTL: 10 * time.Minute,
	}
}

func TestRegister_InvalidEmail(t *testing.T) {
	userRepo := mocks.NewMockUserRepository(t)
	svc := NewAuthService(userRepo, nil, testAuthConfig(), zap.NewNop())

	_, err := svc.Register(context.Background(), "someuser", "not-an-email", "password1")
	require.ErrorIs(t, err, models.ErrInvalidInput)
	userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestRegister_NormalizesEmail(t *testing.T) {
	userRepo := mocks.NewMockUserRepository(t)
	svc := NewAuthService(userRepo, nil, testAuthConfig(), zap.NewNop())

	userRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "writer@example.com" && u.Username == "writer" && u.PasswordHash != "password1"
	})).Return(nil)

	user, err := svc.Register(context.Background(), " writer ", " Writer@Example.COM ", "password1")
	require.NoError(t, err)
	assert.Equal(t, "writer@example.com", user.Email)
	userRepo.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := mocks.NewMockUserRepository(t)
	svc := NewAuthService(userRepo, nil, testAuthConfig(), zap.NewNop())

	hash, err := hashPassword("correct-password1", "test-pepper")
	require.NoError(t, err)

	userRepo.On("GetUserByUsername", mock.Anything, "writer").Return(&models.User{
		Username:     "writer",
		PasswordHash: hash,
	}, nil)

	_, err = svc.Login(context.Background(), "writer", "wrong-password1")
	require.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestLogin_UnknownUserMapsToInvalidCredentials(t *testing.T) {
	userRepo := mocks.NewMockUserRepository(t)
	svc := NewAuthService(userRepo, nil, testAuthConfig(), zap.NewNop())

	userRepo.On("GetUserByUsername", mock.Anything, "ghost").Return(nil, models.ErrUserNotFound)

	// Not found is deliberately indistinguishable from a bad password.
	_, err := svc.Login(context.Background(), "ghost", "password1")
	require.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestLogout_DeletesBothTokenUUIDs(t *testing.T) {
	tokenRepo := mocks.NewMockTokenRepository(t)
	svc := NewAuthService(nil, tokenRepo, testAuthConfig(), zap.NewNop())

	userID := uuid.New()
	accessUUID := uuid.New().String()
	refreshUUID := uuid.New().String()

	// Both halves of the session pair must be revoked, otherwise the
	// refresh token could mint new pairs until its TTL runs out.
	tokenRepo.On("DeleteTokens", mock.Anything, userID, accessUUID, refreshUUID).Return(int64(2), nil)

	require.NoError(t, svc.Logout(context.Background(), userID, accessUUID, refreshUUID))
	tokenRepo.AssertExpectations(t)
}

func TestLogin_IssuesTokenPair(t *testing.T) {
	userRepo := mocks.NewMockUserRepository(t)
	tokenRepo := mocks.NewMockTokenRepository(t)
	svc := NewAuthService(userRepo, tokenRepo, testAuthConfig(), zap.NewNop())

	hash, err := hashPassword("correct-password1", "test-pepper")
	require.NoError(t, err)

	user := &models.User{Username: "writer", PasswordHash: hash}
	userRepo.On("GetUserByUsername", mock.Anything, "writer").Return(user, nil)
	tokenRepo.On("SetToken", mock.Anything, user.ID, mock.MatchedBy(func(td *models.TokenDetails) bool {
		return td.AccessToken != "" && td.RefreshToken != "" && td.AccessUUID != td.RefreshUUID
	})).Return(nil)

	td, err := svc.Login(context.Background(), "writer", "correct-password1")
	require.NoError(t, err)
	assert.NotEmpty(t, td.AccessToken)
	assert.NotEmpty(t, td.RefreshToken)
	assert.NotEqual(t, td.AccessToken, td.RefreshToken)
	tokenRepo.AssertExpectations(t)
}
