package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/AustinTravis/WritingSpacePlace/internal/models"
)

const templateFields = `id, template, required_components, is_active`

type PgPromptRepository struct {
	db *pgxpool.Pool
}

func NewPgPromptRepository(db *pgxpool.Pool) *PgPromptRepository {
	if db == nil {
		log.Fatal().Msg("Database pool is nil for PgPromptRepository")
	}
	return &PgPromptRepository{db: db}
}

var _ PromptRepository = (*PgPromptRepository)(nil)

func (r *PgPromptRepository) CountActiveTemplates(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM prompt_templates WHERE is_active = TRUE`).Scan(&count)
	if err != nil {
		log.Error().Err(err).Msg("Failed to count active prompt templates")
		return 0, fmt.Errorf("failed to count active prompt templates: %w", err)
	}
	return count, nil
}

// GetActiveTemplateByOffset relies on the id ordering to give the count/offset
// pair a stable window. A row deactivated between the count and the fetch
// surfaces as ErrNotFound, which callers treat as an empty draw.
func (r *PgPromptRepository) GetActiveTemplateByOffset(ctx context.Context, offset int64) (*models.PromptTemplate, error) {
	query := fmt.Sprintf(`SELECT %s FROM prompt_templates WHERE is_active = TRUE ORDER BY id LIMIT 1 OFFSET $1`, templateFields)
	var tmpl models.PromptTemplate
	err := r.db.QueryRow(ctx, query, offset).Scan(
		&tmpl.ID, &tmpl.Template, &tmpl.RequiredComponents, &tmpl.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		log.Error().Err(err).Int64("offset", offset).Msg("Failed to get active template by offset")
		return nil, fmt.Errorf("failed to get active template by offset: %w", err)
	}
	return &tmpl, nil
}

func (r *PgPromptRepository) CountComponentsByType(ctx context.Context, componentType string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM prompt_components WHERE component_type = $1`, componentType).Scan(&count)
	if err != nil {
		log.Error().Err(err).Str("componentType", componentType).Msg("Failed to count prompt components")
		return 0, fmt.Errorf("failed to count prompt components: %w", err)
	}
	return count, nil
}

func (r *PgPromptRepository) GetComponentContentByOffset(ctx context.Context, componentType string, offset int64) (string, error) {
	query := `SELECT content FROM prompt_components WHERE component_type = $1 ORDER BY id LIMIT 1 OFFSET $2`
	var content string
	err := r.db.QueryRow(ctx, query, componentType, offset).Scan(&content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", models.ErrNotFound
		}
		log.Error().Err(err).Str("componentType", componentType).Int64("offset", offset).Msg("Failed to get component content by offset")
		return "", fmt.Errorf("failed to get component content by offset: %w", err)
	}
	return content, nil
}

func (r *PgPromptRepository) RecordGeneration(ctx context.Context, gen *models.PromptGeneration) error {
	query := `INSERT INTO prompt_generations (template_id, final_prompt, components_used) VALUES ($1, $2, $3) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query, gen.TemplateID, gen.FinalPrompt, gen.ComponentsUsed).Scan(&gen.ID, &gen.CreatedAt)
	if err != nil {
		log.Error().Err(err).Str("templateID", gen.TemplateID.String()).Msg("Failed to record prompt generation")
		return fmt.Errorf("failed to record prompt generation: %w", err)
	}
	log.Info().Str("templateID", gen.TemplateID.String()).Str("generationID", gen.ID.String()).Msg("Prompt generation recorded")
	return nil
}
