package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/AustinTravis/WritingSpacePlace/internal/config"
	"github.com/AustinTravis/WritingSpacePlace/internal/models"
	"github.com/AustinTravis/WritingSpacePlace/internal/repository"
)

const tokenIssuer = "writingspaceplace"

var _ AuthService = (*authServiceImpl)(nil)

type authServiceImpl struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	cfg       *config.Config
	logger    *zap.Logger
}

// NewAuthService creates a new instance of authServiceImpl.
func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.TokenRepository, cfg *config.Config, logger *zap.Logger) AuthService {
	return &authServiceImpl{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		cfg:       cfg,
		logger:    logger.Named("AuthService"),
	}
}

// Register creates a new user.
func (s *authServiceImpl) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)

	logFields := []zap.Field{zap.String("username", username), zap.String("email", email)}
	s.logger.Info("Registering new user", logFields...)

	if _, err := mail.ParseAddress(email); err != nil {
		s.logger.Warn("Registration attempt with invalid email format", append(logFields, zap.Error(err))...)
		return nil, fmt.Errorf("invalid email format: %w", models.ErrInvalidInput)
	}
	if username == "" || password == "" {
		return nil, models.ErrInvalidInput
	}

	hashedPassword, err := hashPassword(password, s.cfg.PasswordPepper)
	if err != nil {
		s.logger.Error("Failed to hash password during registration", append(logFields, zap.Error(err))...)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		DisplayName:  username,
		Email:        email,
		PasswordHash: hashedPassword,
	}

	// Uniqueness is enforced by the DB constraints; the repository maps the
	// violations to ErrUserAlreadyExists / ErrEmailAlreadyExists.
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if !errors.Is(err, models.ErrUserAlreadyExists) && !errors.Is(err, models.ErrEmailAlreadyExists) {
			s.logger.Error("Failed to create user via repository", append(logFields, zap.Error(err))...)
		}
		return nil, err
	}

	s.logger.Info("User registered successfully", zap.String("userID", user.ID.String()), zap.String("username", user.Username))
	return user, nil
}

// Login authenticates a user and returns token details.
func (s *authServiceImpl) Login(ctx context.Context, username, password string) (*models.TokenDetails, error) {
	s.logger.Info("Login attempt", zap.String("username", username))
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			s.logger.Warn("Login failed: user not found", zap.String("username", username))
			return nil, models.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !checkPasswordHash(password, s.cfg.PasswordPepper, user.PasswordHash) {
		s.logger.Warn("Login failed: invalid password", zap.String("username", username))
		return nil, models.ErrInvalidCredentials
	}

	td, err := s.createTokens(user.ID)
	if err != nil {
		s.logger.Error("Failed to create tokens during login", zap.Error(err), zap.String("userID", user.ID.String()))
		return nil, fmt.Errorf("failed to create tokens: %w", err)
	}

	if err := s.tokenRepo.SetToken(ctx, user.ID, td); err != nil {
		return nil, fmt.Errorf("failed to save token details: %w", err)
	}

	s.logger.Info("User logged in successfully", zap.String("userID", user.ID.String()))
	return td, nil
}

// Logout removes both stored token UUIDs so neither the access token nor
// the refresh token can be used again. Succeeds even when the tokens are
// already gone.
func (s *authServiceImpl) Logout(ctx context.Context, userID uuid.UUID, accessUUID, refreshUUID string) error {
	deletedCount, err := s.tokenRepo.DeleteTokens(ctx, userID, accessUUID, refreshUUID)
	if err != nil {
		// Tokens may already have expired; not surfaced to the client.
		s.logger.Error("Failed to delete tokens during logout", zap.Error(err), zap.String("accessUUID", accessUUID))
	}
	if deletedCount == 0 {
		s.logger.Info("No tokens found to delete during logout", zap.String("accessUUID", accessUUID))
	}
	return nil
}

// Refresh issues a new token pair based on a valid, still-stored refresh
// token, revoking the old refresh token in the process.
func (s *authServiceImpl) Refresh(ctx context.Context, refreshTokenString string) (*models.TokenDetails, error) {
	s.logger.Info("Token refresh attempt")
	claims, err := s.parseToken(refreshTokenString)
	if err != nil {
		return nil, err
	}

	refreshUUID := claims.ID
	userID, err := s.tokenRepo.GetUserIDByRefreshUUID(ctx, refreshUUID)
	if err != nil {
		if errors.Is(err, models.ErrTokenNotFound) {
			s.logger.Warn("Refresh attempt with revoked token", zap.String("refreshUUID", refreshUUID))
			return nil, models.ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if userID != claims.UserID {
		s.logger.Warn("Refresh token user mismatch", zap.String("refreshUUID", refreshUUID))
		return nil, models.ErrTokenInvalid
	}

	newTd, err := s.createTokens(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to create new tokens during refresh: %w", err)
	}

	if _, err := s.tokenRepo.DeleteTokens(ctx, claims.UserID, "", refreshUUID); err != nil {
		s.logger.Error("Non-critical: failed to delete old refresh token", zap.Error(err), zap.String("refreshUUID", refreshUUID))
	}

	if err := s.tokenRepo.SetToken(ctx, claims.UserID, newTd); err != nil {
		return nil, fmt.Errorf("failed to save new token details: %w", err)
	}

	s.logger.Info("Tokens refreshed", zap.String("userID", claims.UserID.String()))
	return newTd, nil
}

// VerifyAccessToken validates the signature and expiry, then checks the
// access UUID is still present in the token store (i.e. not revoked).
func (s *authServiceImpl) VerifyAccessToken(ctx context.Context, tokenString string) (*Claims, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, err
	}

	userID, err := s.tokenRepo.GetUserIDByAccessUUID(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, models.ErrTokenNotFound) {
			return nil, models.ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to check access token: %w", err)
	}
	if userID != claims.UserID {
		return nil, models.ErrTokenInvalid
	}

	return claims, nil
}

func (s *authServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

func (s *authServiceImpl) parseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, models.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, models.ErrTokenMalformed
		default:
			return nil, models.ErrTokenInvalid
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, models.ErrTokenInvalid
	}
	return claims, nil
}

// createTokens builds a signed access/refresh pair with fresh UUIDs.
func (s *authServiceImpl) createTokens(userID uuid.UUID) (*models.TokenDetails, error) {
	td := &models.TokenDetails{}
	td.AtExpires = time.Now().Add(s.cfg.AccessTokenTTL).Unix()
	td.AccessUUID = uuid.New().String()
	td.RtExpires = time.Now().Add(s.cfg.RefreshTokenTTL).Unix()
	td.RefreshUUID = uuid.New().String()

	sign := func(tokenUUID string, expires int64) (string, error) {
		claims := &Claims{
			UserID: userID,
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        tokenUUID,
				ExpiresAt: jwt.NewNumericDate(time.Unix(expires, 0)),
				Subject:   userID.String(),
				Issuer:    tokenIssuer,
				IssuedAt:  jwt.NewNumericDate(time.Now()),
			},
		}
		return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	}

	var err error
	if td.AccessToken, err = sign(td.AccessUUID, td.AtExpires); err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	if td.RefreshToken, err = sign(td.RefreshUUID, td.RtExpires); err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return td, nil
}

// pepperPassword applies an HMAC-SHA256 pepper before bcrypt so the stored
// hash is useless without the server-side secret.
func pepperPassword(password, pepper string) []byte {
	h := hmac.New(sha256.New, []byte(pepper))
	h.Write([]byte(password))
	return h.Sum(nil)
}

// hashPassword generates a bcrypt hash of the peppered password.
func hashPassword(password, pepper string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(pepperPassword(password, pepper), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// checkPasswordHash compares a peppered password against a stored hash.
func checkPasswordHash(password, pepper, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), pepperPassword(password, pepper)) == nil
}
