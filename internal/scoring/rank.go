// Package scoring ranks resumes against a job description by term-weighted
// textual similarity.
//
// The vector space is built per call from the job description plus each
// resume's extracted skills text, weighted by smoothed inverse document
// frequency. Scoring is deliberately limited to extracted skill terms: scores
// stay explainable as shared-skill overlap at the cost of ignoring relevance
// signals in narrative text. Scoring never fails outward; degenerate corpora
// resolve to all-zero scores.
package scoring

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// Rank scores each resume against the job description and returns the
// collection sorted by score descending. Ties keep their original relative
// order. The input slice is not mutated.
func Rank(jobDescription string, resumes []types.ScoredResume) []types.ScoredResume {
	ranked := make([]types.ScoredResume, len(resumes))
	copy(ranked, resumes)

	if strings.TrimSpace(jobDescription) == "" || len(ranked) == 0 {
		for i := range ranked {
			ranked[i].Score = 0
		}
		return ranked
	}

	docs := make([]string, 0, len(ranked)+1)
	docs = append(docs, jobDescription)
	for _, r := range ranked {
		docs = append(docs, r.SkillsText)
	}

	vectors, err := vectorize(docs)
	if err != nil {
		// Degenerate corpus: rank nothing rather than failing the caller.
		for i := range ranked {
			ranked[i].Score = 0
		}
		return ranked
	}

	query := vectors[0]
	for i := range ranked {
		sim := cosine(query, vectors[i+1])
		ranked[i].Score = int(sim * 100)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
