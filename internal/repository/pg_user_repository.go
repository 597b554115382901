package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/AustinTravis/WritingSpacePlace/internal/models"
)

const userFields = `id, username, display_name, email, password_hash, created_at, updated_at`

type PgUserRepository struct {
	db *pgxpool.Pool
}

func NewPgUserRepository(db *pgxpool.Pool) *PgUserRepository {
	if db == nil {
		log.Fatal().Msg("Database pool is nil for PgUserRepository")
	}
	return &PgUserRepository{db: db}
}

var _ UserRepository = (*PgUserRepository)(nil)

func (r *PgUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (username, email, password_hash, display_name) VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query, user.Username, user.Email, user.PasswordHash, user.DisplayName).Scan(
		&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			if pgErr.ConstraintName == "users_email_key" {
				return models.ErrEmailAlreadyExists
			}
			return models.ErrUserAlreadyExists
		}
		log.Error().Err(err).Str("username", user.Username).Msg("Failed to create user")
		return fmt.Errorf("failed to create user: %w", err)
	}
	log.Info().Str("userID", user.ID.String()).Str("username", user.Username).Msg("User created")
	return nil
}

func (r *PgUserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userFields)
	return r.getUser(ctx, query, id)
}

func (r *PgUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE username = $1`, userFields)
	return r.getUser(ctx, query, username)
}

func (r *PgUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userFields)
	return r.getUser(ctx, query, email)
}

func (r *PgUserRepository) getUser(ctx context.Context, query string, arg any) (*models.User, error) {
	var user models.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.Username, &user.DisplayName, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		log.Error().Err(err).Msg("Failed to get user")
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}
