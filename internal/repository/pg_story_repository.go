package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/AustinTravis/WritingSpacePlace/internal/models"
)

const storyFields = `id, user_id, title, content, word_count, status, genre, tags, visibility, prompt, created_at, updated_at`

type PgStoryRepository struct {
	db *pgxpool.Pool
}

func NewPgStoryRepository(db *pgxpool.Pool) *PgStoryRepository {
	if db == nil {
		log.Fatal().Msg("Database pool is nil for PgStoryRepository")
	}
	return &PgStoryRepository{db: db}
}

var _ StoryRepository = (*PgStoryRepository)(nil)

func (r *PgStoryRepository) CreateStory(ctx context.Context, story *models.Story) error {
	query := `INSERT INTO stories (user_id, title, content, word_count, status, genre, tags, visibility, prompt)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		story.UserID, story.Title, story.Content, story.WordCount,
		story.Status, story.Genre, story.Tags, story.Visibility, story.Prompt,
	).Scan(&story.ID, &story.CreatedAt, &story.UpdatedAt)
	if err != nil {
		log.Error().Err(err).Str("userID", story.UserID.String()).Msg("Failed to create story")
		return fmt.Errorf("failed to create story: %w", err)
	}
	log.Info().Str("storyID", story.ID.String()).Str("userID", story.UserID.String()).Msg("Story created")
	return nil
}

func (r *PgStoryRepository) GetStoryByID(ctx context.Context, id uuid.UUID) (*models.Story, error) {
	query := fmt.Sprintf(`SELECT %s FROM stories WHERE id = $1`, storyFields)
	var story models.Story
	err := r.db.QueryRow(ctx, query, id).Scan(
		&story.ID, &story.UserID, &story.Title, &story.Content, &story.WordCount,
		&story.Status, &story.Genre, &story.Tags, &story.Visibility, &story.Prompt,
		&story.CreatedAt, &story.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrStoryNotFound
		}
		log.Error().Err(err).Str("storyID", id.String()).Msg("Failed to get story")
		return nil, fmt.Errorf("failed to get story: %w", err)
	}
	return &story, nil
}

func (r *PgStoryRepository) UpdateStory(ctx context.Context, story *models.Story) error {
	query := `UPDATE stories SET
			title = $1, content = $2, word_count = $3, status = $4,
			genre = $5, tags = $6, visibility = $7, prompt = $8, updated_at = NOW()
		WHERE id = $9 AND user_id = $10
		RETURNING updated_at`
	err := r.db.QueryRow(ctx, query,
		story.Title, story.Content, story.WordCount, story.Status,
		story.Genre, story.Tags, story.Visibility, story.Prompt,
		story.ID, story.UserID,
	).Scan(&story.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrStoryNotFound
		}
		log.Error().Err(err).Str("storyID", story.ID.String()).Msg("Failed to update story")
		return fmt.Errorf("failed to update story: %w", err)
	}
	return nil
}

func (r *PgStoryRepository) DeleteStory(ctx context.Context, id, userID uuid.UUID) error {
	commandTag, err := r.db.Exec(ctx, `DELETE FROM stories WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		log.Error().Err(err).Str("storyID", id.String()).Msg("Failed to delete story")
		return fmt.Errorf("failed to delete story: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return models.ErrStoryNotFound
	}
	log.Info().Str("storyID", id.String()).Str("userID", userID.String()).Msg("Story deleted")
	return nil
}

func (r *PgStoryRepository) ListStoriesByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.StorySummary, error) {
	query := `SELECT id, title, word_count, status, genre, tags, updated_at
		FROM stories WHERE user_id = $1
		ORDER BY updated_at DESC
		LIMIT $2 OFFSET $3`
	var stories []*models.StorySummary
	if err := pgxscan.Select(ctx, r.db, &stories, query, userID, limit, offset); err != nil {
		log.Error().Err(err).Str("userID", userID.String()).Msg("Failed to list stories")
		return nil, fmt.Errorf("failed to list stories: %w", err)
	}
	return stories, nil
}
