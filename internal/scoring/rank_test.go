package scoring

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/types"
)

func resume(skills string) types.ScoredResume {
	return types.ScoredResume{ID: uuid.New(), SkillsText: skills}
}

func TestRank_EmptyJobDescription(t *testing.T) {
	r1 := resume("Python, Docker")
	r2 := resume("Java")

	ranked := Rank("", []types.ScoredResume{r1, r2})
	require.Len(t, ranked, 2)

	// Empty query is a stable no-op: all zero, original order.
	assert.Equal(t, r1.ID, ranked[0].ID)
	assert.Equal(t, r2.ID, ranked[1].ID)
	assert.Equal(t, 0, ranked[0].Score)
	assert.Equal(t, 0, ranked[1].Score)
}

func TestRank_WhitespaceJobDescription(t *testing.T) {
	ranked := Rank("   \n\t", []types.ScoredResume{resume("Python")})
	require.Len(t, ranked, 1)
	assert.Equal(t, 0, ranked[0].Score)
}

func TestRank_EmptyCollection(t *testing.T) {
	assert.Empty(t, Rank("python docker", nil))
}

func TestRank_FullOverlapBeatsNoOverlap(t *testing.T) {
	matching := resume("Python, Docker")
	unrelated := resume("Java")

	ranked := Rank("python docker kubernetes", []types.ScoredResume{unrelated, matching})
	require.Len(t, ranked, 2)

	assert.Equal(t, matching.ID, ranked[0].ID)
	assert.Equal(t, unrelated.ID, ranked[1].ID)
	assert.Greater(t, ranked[0].Score, 0)
	assert.Equal(t, 0, ranked[1].Score)
}

func TestRank_ScoreRange(t *testing.T) {
	resumes := []types.ScoredResume{
		resume("Python, Docker, Kubernetes"),
		resume("Python"),
		resume("Cobol"),
	}

	for _, r := range Rank("python docker kubernetes", resumes) {
		assert.GreaterOrEqual(t, r.Score, 0)
		assert.LessOrEqual(t, r.Score, 100)
	}
}

func TestRank_StableTieBreak(t *testing.T) {
	r1 := resume("Fortran")
	r2 := resume("Cobol")
	r3 := resume("Pascal")

	// None overlap the query: all score zero and keep their original order.
	ranked := Rank("python docker", []types.ScoredResume{r1, r2, r3})
	require.Len(t, ranked, 3)
	assert.Equal(t, r1.ID, ranked[0].ID)
	assert.Equal(t, r2.ID, ranked[1].ID)
	assert.Equal(t, r3.ID, ranked[2].ID)
}

func TestRank_DegenerateCorpusFallsBackToZero(t *testing.T) {
	r1 := resume("")
	r2 := resume("")

	// The query is all stop words and no resume has skills; vectorization
	// cannot build a vocabulary, so every resume scores zero.
	ranked := Rank("the and of", []types.ScoredResume{r1, r2})
	require.Len(t, ranked, 2)
	assert.Equal(t, 0, ranked[0].Score)
	assert.Equal(t, 0, ranked[1].Score)
	assert.Equal(t, r1.ID, ranked[0].ID)
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	input := []types.ScoredResume{resume("Java"), resume("Python")}

	Rank("python", input)
	assert.Equal(t, 0, input[0].Score)
	assert.Equal(t, "Java", input[0].SkillsText)
}

func TestVectorize_EmptyVocabulary(t *testing.T) {
	_, err := vectorize([]string{"the and", "of to"})
	require.Error(t, err)
}

func TestCosine_IdenticalDocumentsScoreFull(t *testing.T) {
	vectors, err := vectorize([]string{"python docker", "python docker"})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, cosine(vectors[0], vectors[1]), 1e-9)
}

func TestTokenize_StopWordsRemoved(t *testing.T) {
	tokens := tokenize("The quick engineer and the team")
	assert.NotContains(t, tokens, "the")
	assert.NotContains(t, tokens, "and")
	assert.Contains(t, tokens, "quick")
	assert.Contains(t, tokens, "engineer")
	assert.Contains(t, tokens, "team")
}

func TestTokenize_KeepsCompoundSkillTokens(t *testing.T) {
	tokens := tokenize("C++ and scikit-learn, node.js")
	assert.Contains(t, tokens, "c++")
	assert.Contains(t, tokens, "scikit-learn")
	assert.Contains(t, tokens, "node.js")
}
