// Package pipeline composes text extraction, field extraction, skill matching
// and relevance scoring into the two entry points the rest of the system
// calls: ParseDocument and ScoreAndRank.
//
// The pipeline is stateless per call: the only shared state is the immutable
// skill vocabulary loaded at startup, so one Parser is safe for concurrent
// use across parallel invocations.
package pipeline

import (
	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/fields"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

// Parser holds the immutable resources the parsing pipeline needs.
type Parser struct {
	vocabulary *skills.Vocabulary
	fields     *fields.Extractor
}

// Option configures a Parser.
type Option func(*Parser)

// WithVocabulary overrides the default skill vocabulary.
func WithVocabulary(v *skills.Vocabulary) Option {
	return func(p *Parser) {
		p.vocabulary = v
	}
}

// WithNameStrategy overrides the default first-line name heuristic.
func WithNameStrategy(s fields.NameStrategy) Option {
	return func(p *Parser) {
		p.fields = fields.NewExtractor(s)
	}
}

// NewParser creates a Parser with the built-in vocabulary and the first-line
// name strategy unless options say otherwise.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		vocabulary: skills.Default(),
		fields:     fields.NewExtractor(nil),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseDocument extracts text from the document at path and derives one
// ExtractedRecord from it. Unknown extensions fail with
// *extraction.UnsupportedFormatError and unreadable documents with
// *extraction.ExtractionError, both propagated unwrapped; no partial record
// is produced on failure.
func (p *Parser) ParseDocument(path string) (*types.ExtractedRecord, error) {
	text, err := extraction.ExtractFile(path)
	if err != nil {
		return nil, err
	}
	return p.ParseText(text), nil
}

// ParseText derives an ExtractedRecord from already-extracted plain text.
func (p *Parser) ParseText(text string) *types.ExtractedRecord {
	contact := p.fields.Extract(text)
	return &types.ExtractedRecord{
		Name:   contact.Name,
		Email:  contact.Email,
		Phone:  contact.Phone,
		Skills: p.vocabulary.Match(text),
	}
}

// ScoreAndRank scores the resume collection against the job description and
// returns it sorted by score descending, stable on ties. It never fails.
func (p *Parser) ScoreAndRank(jobDescription string, resumes []types.ScoredResume) []types.ScoredResume {
	return scoring.Rank(jobDescription, resumes)
}
