package pipeline

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/fields"
	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

func TestParseDocument_UnsupportedExtension(t *testing.T) {
	p := NewParser()

	_, err := p.ParseDocument("resume.odt")
	require.Error(t, err)

	var formatErr *extraction.UnsupportedFormatError
	assert.True(t, errors.As(err, &formatErr))
}

func TestParseDocument_MissingFile(t *testing.T) {
	p := NewParser()

	_, err := p.ParseDocument("nowhere/resume.pdf")
	require.Error(t, err)

	var extractErr *extraction.ExtractionError
	assert.True(t, errors.As(err, &extractErr))
}

func TestParseText_Scenario(t *testing.T) {
	p := NewParser()
	text := "Jane Doe\nExperienced Python and Docker engineer, contact: jane@co.com, 555-123-4567"

	record := p.ParseText(text)
	assert.Equal(t, "Jane Doe", record.Name)
	assert.Equal(t, "jane@co.com", record.Email)
	assert.Equal(t, "555-123-4567", record.Phone)
	assert.Subset(t, record.Skills, []string{"Python", "Docker"})
}

func TestParseText_NoMatchesAreSoftFailures(t *testing.T) {
	p := NewParser()

	record := p.ParseText("An entirely unremarkable document.")
	assert.Equal(t, "", record.Email)
	assert.Equal(t, "", record.Phone)
	assert.Empty(t, record.Skills)
}

func TestParseText_CustomVocabularyAndStrategy(t *testing.T) {
	vocab, err := skills.New([]string{"go", "terraform"})
	require.NoError(t, err)

	p := NewParser(
		WithVocabulary(vocab),
		WithNameStrategy(&fields.EntityNameStrategy{}),
	)

	record := p.ParseText("Resume\nJane Doe\nGo and Terraform, but also Python.")
	assert.Equal(t, "Jane Doe", record.Name)
	assert.Equal(t, []string{"Go", "Terraform"}, record.Skills)
}

func TestScoreAndRank_PassThrough(t *testing.T) {
	p := NewParser()
	a := types.ScoredResume{ID: uuid.New(), SkillsText: "Python, Docker"}
	b := types.ScoredResume{ID: uuid.New(), SkillsText: "Java"}

	ranked := p.ScoreAndRank("python docker kubernetes", []types.ScoredResume{b, a})
	require.Len(t, ranked, 2)
	assert.Equal(t, a.ID, ranked[0].ID)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
}
