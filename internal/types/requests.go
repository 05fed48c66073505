package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ScoreRequest is the request body for the scoring endpoint.
type ScoreRequest struct {
	JobDescription string `json:"job_description" validate:"required"`
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// RankedResume is one entry of a scoring response, joining the stored resume
// fields with its batch-local score.
type RankedResume struct {
	ID       uuid.UUID `json:"id"`
	Filename string    `json:"filename"`
	Name     string    `json:"name,omitempty"`
	Skills   string    `json:"skills"`
	Score    int       `json:"score"`
}

// UploadResponse summarizes a batch upload: how many files parsed, how many
// failed, and which ones. Per-file failures never abort the batch.
type UploadResponse struct {
	Parsed int         `json:"parsed"`
	Failed int         `json:"failed"`
	Errors []FileError `json:"errors,omitempty"`
	Saved  []uuid.UUID `json:"saved,omitempty"`
}

// FileError reports one failed file within a batch upload.
type FileError struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
}
