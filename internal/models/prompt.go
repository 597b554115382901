package models

import (
	"time"

	"github.com/google/uuid"
)

// PromptTemplate is a prompt skeleton containing named placeholder tokens
// of the form {componentType}. Templates are managed by an external admin
// process and are read-only to this service.
type PromptTemplate struct {
	ID                 uuid.UUID `db:"id" json:"id"`
	Template           string    `db:"template" json:"template"`
	RequiredComponents []string  `db:"required_components" json:"requiredComponents"`
	IsActive           bool      `db:"is_active" json:"isActive"`
}

// PromptComponent is a reusable text fragment belonging to a named
// category, used to fill one template token.
type PromptComponent struct {
	ID            uuid.UUID `db:"id" json:"id"`
	ComponentType string    `db:"component_type" json:"componentType"`
	Content       string    `db:"content" json:"content"`
}

// PromptGeneration is an append-only provenance record of one successful
// Template Sampler draw. Records are never mutated or deleted.
type PromptGeneration struct {
	ID             uuid.UUID `db:"id" json:"id"`
	TemplateID     uuid.UUID `db:"template_id" json:"templateId"`
	FinalPrompt    string    `db:"final_prompt" json:"finalPrompt"`
	ComponentsUsed []string  `db:"components_used" json:"componentsUsed"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
}

// GuidedPromptParams carries the seven categorical fields a user picks in
// the guided flow. The generator interpolates them verbatim and performs no
// validation; callers must populate every field before invoking it.
type GuidedPromptParams struct {
	Genre         string `json:"genre"`
	Mood          string `json:"mood"`
	MainCharacter string `json:"mainCharacter"`
	Setting       string `json:"setting"`
	TimePeriod    string `json:"timePeriod"`
	WritingStyle  string `json:"writingStyle"`
	ConflictType  string `json:"conflictType"`
}

// StartMode selects how a new story begins.
type StartMode string

const (
	StartModeBlank  StartMode = "blank"
	StartModeRandom StartMode = "random"
	StartModeGuided StartMode = "guided"
)
