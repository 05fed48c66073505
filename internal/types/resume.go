// Package types provides type definitions for structured data used throughout the resume-screener system.
package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ExtractedRecord is the structured output of parsing one resume document.
// Name, Email and Phone are best-effort; an empty string means no match was
// found. Skills is always a subset of the configured skill vocabulary, kept
// in vocabulary order for deterministic display.
type ExtractedRecord struct {
	Name   string   `json:"name,omitempty"`
	Email  string   `json:"email,omitempty"`
	Phone  string   `json:"phone,omitempty"`
	Skills []string `json:"skills"`
}

// SkillsText renders the skill set as a comma-joined string, the form the
// scorer and the resume store consume.
func (r *ExtractedRecord) SkillsText() string {
	return strings.Join(r.Skills, ", ")
}

// ScoredResume is a resume annotated with a relevance score for one scoring
// batch. Scores are batch-local: the same resume can score differently
// against a different job description or resume set, so they are never
// persisted.
type ScoredResume struct {
	ID         uuid.UUID `json:"id"`
	SkillsText string    `json:"skills"`
	Score      int       `json:"score"`
}

// StoredResume is a parsed resume row as held by the resume store.
type StoredResume struct {
	ID        uuid.UUID `json:"id"`
	Filename  string    `json:"filename"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Skills    string    `json:"skills"`
	CreatedAt time.Time `json:"created_at"`
}
