package server

import (
	"encoding/csv"
	"net/http"
)

// handleExport streams every stored resume as a CSV attachment.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	resumes, err := s.store.ListResumes(r.Context(), "")
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="resumes.csv"`)

	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"ID", "Filename", "Name", "Email", "Phone", "Skills"}); err != nil {
		return
	}
	for _, resume := range resumes {
		record := []string{
			resume.ID.String(),
			resume.Filename,
			resume.Name,
			resume.Email,
			resume.Phone,
			resume.Skills,
		}
		if err := writer.Write(record); err != nil {
			return
		}
	}
}
