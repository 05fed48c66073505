package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/types"
)

// handleScore ranks every stored resume against the posted job description.
// Scores are computed fresh per request; the vector space is local to the
// current resume set and query, never cached.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	stored, err := s.store.ListResumes(r.Context(), "")
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	batch := make([]types.ScoredResume, 0, len(stored))
	byID := make(map[uuid.UUID]types.StoredResume, len(stored))
	for _, resume := range stored {
		batch = append(batch, types.ScoredResume{ID: resume.ID, SkillsText: resume.Skills})
		byID[resume.ID] = resume
	}

	ranked := s.parser.ScoreAndRank(req.JobDescription, batch)

	resp := make([]types.RankedResume, 0, len(ranked))
	for _, scored := range ranked {
		stored := byID[scored.ID]
		resp = append(resp, types.RankedResume{
			ID:       scored.ID,
			Filename: stored.Filename,
			Name:     stored.Name,
			Skills:   scored.SkillsText,
			Score:    scored.Score,
		})
	}
	s.writeJSON(w, http.StatusOK, resp)
}
