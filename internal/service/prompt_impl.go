package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AustinTravis/WritingSpacePlace/internal/models"
	"github.com/AustinTravis/WritingSpacePlace/internal/repository"
)

const unconstrainedInstruction = "Generate a creative writing prompt for a story. " +
	"The prompt should be open-ended, engaging, and suitable for any genre. " +
	"Keep it to 3-4 sentences."

// BuildGuidedInstruction composes the instruction sent to the completion
// backend for the guided flow. All seven fields are interpolated verbatim;
// the generator performs no validation by contract.
func BuildGuidedInstruction(p models.GuidedPromptParams) string {
	return fmt.Sprintf(
		"Generate a creative writing prompt for a %s story with a %s tone. "+
			"The main character should be a %s. The story is set in a %s during %s. "+
			"The prompt should suit a %s writing style, and the central conflict should be %s. "+
			"Keep it to 3-4 sentences.",
		p.Genre, p.Mood, p.MainCharacter, p.Setting, p.TimePeriod, p.WritingStyle, p.ConflictType,
	)
}

var _ PromptService = (*promptServiceImpl)(nil)

type promptServiceImpl struct {
	promptRepo repository.PromptRepository
	handoff    repository.PromptHandoffStore
	ai         TextGenerator
	logger     *zap.Logger

	// Uniform draw in [0, n). Swapped out in tests.
	randInt63n func(n int64) int64
}

// NewPromptService creates the prompt generation service.
func NewPromptService(promptRepo repository.PromptRepository, handoff repository.PromptHandoffStore, ai TextGenerator, logger *zap.Logger) PromptService {
	return &promptServiceImpl{
		promptRepo: promptRepo,
		handoff:    handoff,
		ai:         ai,
		logger:     logger.Named("PromptService"),
		randInt63n: rand.Int63n,
	}
}

// GenerateRandomPrompt implements the template sampler. Draws are
// independent across calls: repeats are allowed and expected. The
// count-then-fetch pairs are deliberately non-transactional; a row removed
// in between surfaces as an empty fetch and is treated as an empty pool,
// never as a failure.
func (s *promptServiceImpl) GenerateRandomPrompt(ctx context.Context) (string, error) {
	count, err := s.promptRepo.CountActiveTemplates(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to count active templates: %w", err)
	}
	if count == 0 {
		s.logger.Debug("No active prompt templates")
		return "", models.ErrNoPromptAvailable
	}

	offset := s.randInt63n(count)
	tmpl, err := s.promptRepo.GetActiveTemplateByOffset(ctx, offset)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.logger.Debug("Active template window emptied between count and fetch", zap.Int64("offset", offset))
			return "", models.ErrNoPromptAvailable
		}
		return "", fmt.Errorf("failed to fetch template: %w", err)
	}

	finalPrompt := tmpl.Template
	for _, componentType := range tmpl.RequiredComponents {
		content, ok := s.sampleComponent(ctx, componentType)
		if !ok {
			// Placeholder stays verbatim in the output.
			continue
		}
		finalPrompt = strings.Replace(finalPrompt, "{"+componentType+"}", content, 1)
	}

	// Provenance only: a failed audit write must not withhold the prompt.
	gen := &models.PromptGeneration{
		TemplateID:     tmpl.ID,
		FinalPrompt:    finalPrompt,
		ComponentsUsed: tmpl.RequiredComponents,
	}
	if err := s.promptRepo.RecordGeneration(ctx, gen); err != nil {
		s.logger.Warn("Failed to record prompt generation", zap.Error(err), zap.String("templateID", tmpl.ID.String()))
	}

	return finalPrompt, nil
}

// sampleComponent draws one component of the given type. Empty pools, the
// count/fetch race and repository errors all report !ok, leaving the token
// unsubstituted.
func (s *promptServiceImpl) sampleComponent(ctx context.Context, componentType string) (string, bool) {
	count, err := s.promptRepo.CountComponentsByType(ctx, componentType)
	if err != nil {
		s.logger.Warn("Failed to count components, skipping substitution", zap.Error(err), zap.String("componentType", componentType))
		return "", false
	}
	if count == 0 {
		return "", false
	}

	content, err := s.promptRepo.GetComponentContentByOffset(ctx, componentType, s.randInt63n(count))
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			s.logger.Warn("Failed to fetch component, skipping substitution", zap.Error(err), zap.String("componentType", componentType))
		}
		return "", false
	}
	return content, true
}

func (s *promptServiceImpl) GenerateGuidedPrompt(ctx context.Context, params models.GuidedPromptParams) (string, error) {
	return s.ai.GenerateText(ctx, BuildGuidedInstruction(params))
}

func (s *promptServiceImpl) GenerateUnconstrainedPrompt(ctx context.Context) (string, error) {
	return s.ai.GenerateText(ctx, unconstrainedInstruction)
}

func (s *promptServiceImpl) ProduceStartPrompt(ctx context.Context, userID uuid.UUID, mode models.StartMode, params *models.GuidedPromptParams) (string, error) {
	var (
		prompt string
		err    error
	)

	switch mode {
	case models.StartModeBlank:
		return "", nil
	case models.StartModeRandom:
		prompt, err = s.GenerateRandomPrompt(ctx)
	case models.StartModeGuided:
		// Without guided fields the instruction degrades to the open-ended
		// variant rather than failing the request.
		if params == nil {
			prompt, err = s.GenerateUnconstrainedPrompt(ctx)
		} else {
			prompt, err = s.GenerateGuidedPrompt(ctx, *params)
		}
	default:
		return "", fmt.Errorf("unknown start mode %q: %w", mode, models.ErrInvalidInput)
	}
	if err != nil {
		return "", err
	}

	if err := s.handoff.Put(ctx, userID, prompt); err != nil {
		// The prompt is still returned in the response body; losing the
		// handoff copy only affects the editor-screen pickup.
		s.logger.Warn("Failed to store prompt handoff", zap.Error(err), zap.String("userID", userID.String()))
	}

	return prompt, nil
}

func (s *promptServiceImpl) ConsumePendingPrompt(ctx context.Context, userID uuid.UUID) (string, error) {
	return s.handoff.Consume(ctx, userID)
}
