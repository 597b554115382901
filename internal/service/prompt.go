package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/AustinTravis/WritingSpacePlace/internal/models"
)

// PromptService generates writing prompts and hands them off to the editor.
type PromptService interface {
	// GenerateRandomPrompt runs the template sampler: one uniformly random
	// active template, each placeholder filled by an independent uniform
	// draw over its component pool. Returns models.ErrNoPromptAvailable
	// when no active template exists.
	GenerateRandomPrompt(ctx context.Context) (string, error)

	// GenerateGuidedPrompt asks the completion backend for a prompt shaped
	// by the seven guided fields. Fields are interpolated verbatim without
	// validation; callers must populate all of them.
	GenerateGuidedPrompt(ctx context.Context, params models.GuidedPromptParams) (string, error)

	// GenerateUnconstrainedPrompt asks the completion backend for an
	// open-ended, genre-agnostic prompt.
	GenerateUnconstrainedPrompt(ctx context.Context) (string, error)

	// ProduceStartPrompt dispatches one of the start modes (blank, random,
	// guided) and stores any non-empty result in the handoff store for the
	// editor screen to consume.
	ProduceStartPrompt(ctx context.Context, userID uuid.UUID, mode models.StartMode, params *models.GuidedPromptParams) (string, error)

	// ConsumePendingPrompt returns the prompt waiting for the user, if any,
	// removing it from the handoff store. Returns models.ErrNoHandoffPrompt
	// once consumed or expired.
	ConsumePendingPrompt(ctx context.Context, userID uuid.UUID) (string, error)
}
