package models

import (
	"time"

	"github.com/google/uuid"
)

// StoryStatus is the lifecycle state of a story.
type StoryStatus string

const (
	StoryStatusDraft     StoryStatus = "draft"
	StoryStatusPublished StoryStatus = "published"
)

// StoryVisibility controls who can read a story.
type StoryVisibility string

const (
	StoryVisibilityPrivate StoryVisibility = "private"
	StoryVisibilityPublic  StoryVisibility = "public"
)

// Genres accepted for a story. Matches the editor's genre dropdown.
var ValidGenres = map[string]bool{
	"fiction":     true,
	"non-fiction": true,
	"poetry":      true,
	"mystery":     true,
	"fantasy":     true,
	"sci-fi":      true,
	"romance":     true,
	"thriller":    true,
	"horror":      true,
	"other":       true,
}

// Story is a long-form text authored in the rich-text editor.
// Content is the editor's HTML; WordCount is derived from it on save.
type Story struct {
	ID         uuid.UUID       `db:"id" json:"id"`
	UserID     uuid.UUID       `db:"user_id" json:"userId"`
	Title      string          `db:"title" json:"title"`
	Content    string          `db:"content" json:"content"`
	WordCount  int             `db:"word_count" json:"wordCount"`
	Status     StoryStatus     `db:"status" json:"status"`
	Genre      string          `db:"genre" json:"genre"`
	Tags       []string        `db:"tags" json:"tags"`
	Visibility StoryVisibility `db:"visibility" json:"visibility"`
	Prompt     string          `db:"prompt" json:"prompt,omitempty"`
	CreatedAt  time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time       `db:"updated_at" json:"updatedAt"`
}

// StorySummary is a list-view projection of a story, without content.
type StorySummary struct {
	ID        uuid.UUID   `db:"id" json:"id"`
	Title     string      `db:"title" json:"title"`
	WordCount int         `db:"word_count" json:"wordCount"`
	Status    StoryStatus `db:"status" json:"status"`
	Genre     string      `db:"genre" json:"genre"`
	Tags      []string    `db:"tags" json:"tags"`
	UpdatedAt time.Time   `db:"updated_at" json:"updatedAt"`
}
