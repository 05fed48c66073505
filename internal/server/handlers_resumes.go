package server

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/types"
)

// maxUploadBytes caps one multipart upload request.
const maxUploadBytes = 32 << 20

// maxParallelParses bounds how many documents are parsed at once for a
// single batch upload. Each ParseDocument call is self-contained, so
// parallelism is safe.
const maxParallelParses = 4

// handleUpload accepts a multipart batch of resume files under the "resumes"
// field. Each file is stored in the upload directory, parsed, and persisted.
// Per-file failures are collected and reported; they never abort the batch.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart request: "+err.Error())
		return
	}

	files := r.MultipartForm.File["resumes"]
	if len(files) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "No files in 'resumes' field")
		return
	}

	resp := types.UploadResponse{}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(maxParallelParses)

	for _, header := range files {
		g.Go(func() error {
			filename := filepath.Base(header.Filename)
			if filename == "" || filename == "." {
				mu.Lock()
				resp.Failed++
				resp.Errors = append(resp.Errors, types.FileError{Filename: header.Filename, Error: "invalid filename"})
				mu.Unlock()
				return nil
			}

			path := filepath.Join(s.uploadDir, filename)
			if err := saveUploadedFile(header, path); err != nil {
				mu.Lock()
				resp.Failed++
				resp.Errors = append(resp.Errors, types.FileError{Filename: filename, Error: err.Error()})
				mu.Unlock()
				return nil
			}

			record, err := s.parser.ParseDocument(path)
			if err != nil {
				// Skip-and-report: leave the batch running, drop the file.
				_ = os.Remove(path)
				mu.Lock()
				resp.Failed++
				resp.Errors = append(resp.Errors, types.FileError{Filename: filename, Error: err.Error()})
				mu.Unlock()
				return nil
			}

			id, err := s.store.SaveResume(ctx, filename, record)
			if err != nil {
				mu.Lock()
				resp.Failed++
				resp.Errors = append(resp.Errors, types.FileError{Filename: filename, Error: err.Error()})
				mu.Unlock()
				return nil
			}

			mu.Lock()
			resp.Parsed++
			resp.Saved = append(resp.Saved, id)
			mu.Unlock()
			return nil
		})
	}

	// Workers only report per-file failures, so Wait cannot fail.
	_ = g.Wait()

	status := http.StatusCreated
	if resp.Parsed == 0 {
		status = http.StatusUnprocessableEntity
	}
	s.writeJSON(w, status, resp)
}

// saveUploadedFile copies one multipart file to disk.
func saveUploadedFile(header *multipart.FileHeader, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".pdf" && ext != ".docx" {
		return &extraction.UnsupportedFormatError{Extension: ext}
	}

	src, err := header.Open()
	if err != nil {
		return fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// handleListResumes lists stored resumes, filtered by the optional ?q= query
// against name and skills.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	resumes, err := s.store.ListResumes(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if resumes == nil {
		resumes = []types.StoredResume{}
	}
	s.writeJSON(w, http.StatusOK, resumes)
}

// handleGetResume returns one stored resume.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	resume, err := s.store.GetResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "resume not found")
		return
	}
	s.writeJSON(w, http.StatusOK, resume)
}

// handleDeleteResume removes a resume row and its uploaded file.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	filename, err := s.store.DeleteResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if filename != "" {
		path := filepath.Join(s.uploadDir, filepath.Base(filename))
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			// The row is gone; a leftover file is worth a log line, not a 500.
			log.Printf("Failed to remove %s: %v", path, err)
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleDownloadResume serves the original uploaded document.
func (s *Server) handleDownloadResume(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	resume, err := s.store.GetResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "resume not found")
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", resume.Filename))
	http.ServeFile(w, r, filepath.Join(s.uploadDir, filepath.Base(resume.Filename)))
}
