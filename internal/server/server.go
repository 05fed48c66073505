// Package server provides the HTTP REST API around the resume screening
// pipeline: batch upload, dashboard listing, relevance scoring, CSV export,
// and per-resume delete/download. All parsing and scoring goes through the
// pipeline's two entry points; the handlers themselves are thin glue.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/pipeline"
	"github.com/jonathan/resume-screener/internal/types"
)

// ResumeStore is the persistence surface the handlers need. *db.DB satisfies
// it; tests use a fake.
type ResumeStore interface {
	SaveResume(ctx context.Context, filename string, record *types.ExtractedRecord) (uuid.UUID, error)
	GetResume(ctx context.Context, id uuid.UUID) (*types.StoredResume, error)
	ListResumes(ctx context.Context, query string) ([]types.StoredResume, error)
	DeleteResume(ctx context.Context, id uuid.UUID) (string, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      ResumeStore
	parser     *pipeline.Parser
	uploadDir  string
}

// Config holds server configuration
type Config struct {
	Port      int
	UploadDir string
	Store     ResumeStore
	Parser    *pipeline.Parser
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("server requires a resume store")
	}
	if cfg.Parser == nil {
		cfg.Parser = pipeline.NewParser()
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}

	s := &Server{
		store:     cfg.Store,
		parser:    cfg.Parser,
		uploadDir: cfg.UploadDir,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /resumes", s.handleUpload)
	mux.HandleFunc("GET /resumes", s.handleListResumes)
	mux.HandleFunc("GET /resumes/{id}", s.handleGetResume)
	mux.HandleFunc("DELETE /resumes/{id}", s.handleDeleteResume)
	mux.HandleFunc("GET /resumes/{id}/download", s.handleDownloadResume)
	mux.HandleFunc("POST /score", s.handleScore)
	mux.HandleFunc("GET /export", s.handleExport)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

// Handler exposes the configured mux, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("Listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-stop:
		log.Printf("Received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON writes a JSON response with the given status code.
func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// errorResponse writes a JSON error body with the given status code.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

// pathID parses the {id} path value as a UUID.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid resume id: %w", err)
	}
	return id, nil
}
