package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/types"
)

// fakeStore is an in-memory ResumeStore for handler tests.
type fakeStore struct {
	resumes map[uuid.UUID]types.StoredResume
	order   []uuid.UUID
	saveErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{resumes: make(map[uuid.UUID]types.StoredResume)}
}

func (f *fakeStore) add(filename, name, skills string) uuid.UUID {
	id := uuid.New()
	f.resumes[id] = types.StoredResume{
		ID:        id,
		Filename:  filename,
		Name:      name,
		Skills:    skills,
		CreatedAt: time.Now(),
	}
	f.order = append(f.order, id)
	return id
}

func (f *fakeStore) SaveResume(_ context.Context, filename string, record *types.ExtractedRecord) (uuid.UUID, error) {
	if f.saveErr != nil {
		return uuid.Nil, f.saveErr
	}
	return f.add(filename, record.Name, record.SkillsText()), nil
}

func (f *fakeStore) GetResume(_ context.Context, id uuid.UUID) (*types.StoredResume, error) {
	r, ok := f.resumes[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (f *fakeStore) ListResumes(_ context.Context, query string) ([]types.StoredResume, error) {
	var out []types.StoredResume
	for _, id := range f.order {
		r := f.resumes[id]
		if query != "" {
			q := strings.ToLower(query)
			if !strings.Contains(strings.ToLower(r.Name), q) &&
				!strings.Contains(strings.ToLower(r.Skills), q) {
				continue
			}
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeStore) DeleteResume(_ context.Context, id uuid.UUID) (string, error) {
	r, ok := f.resumes[id]
	if !ok {
		return "", fmt.Errorf("resume not found: %s", id)
	}
	delete(f.resumes, id)
	return r.Filename, nil
}

func newTestServer(t *testing.T, store ResumeStore) *Server {
	t.Helper()
	srv, err := New(Config{
		Port:      0,
		UploadDir: t.TempDir(),
		Store:     store,
	})
	require.NoError(t, err)
	return srv
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t, newFakeStore())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestHandleUpload_NoFiles(t *testing.T) {
	srv := newTestServer(t, newFakeStore())

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/resumes", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleUpload_SkipAndReport(t *testing.T) {
	srv := newTestServer(t, newFakeStore())

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	// Unsupported extension and a corrupt PDF: both fail individually, the
	// batch itself still answers with per-file errors.
	part, err := writer.CreateFormFile("resumes", "notes.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("plain text"))
	require.NoError(t, err)

	part, err = writer.CreateFormFile("resumes", "broken.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("not a pdf"))
	require.NoError(t, err)

	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/resumes", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp types.UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Parsed)
	assert.Equal(t, 2, resp.Failed)
	require.Len(t, resp.Errors, 2)

	failed := map[string]bool{}
	for _, e := range resp.Errors {
		failed[e.Filename] = true
	}
	assert.True(t, failed["notes.txt"])
	assert.True(t, failed["broken.pdf"])
}

func TestHandleListResumes_Search(t *testing.T) {
	store := newFakeStore()
	store.add("jane.pdf", "Jane Doe", "Python, Docker")
	store.add("bob.pdf", "Bob Roe", "Java")
	srv := newTestServer(t, store)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/resumes?q=python", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resumes []types.StoredResume
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resumes))
	require.Len(t, resumes, 1)
	assert.Equal(t, "Jane Doe", resumes[0].Name)
}

func TestHandleGetResume_NotFound(t *testing.T) {
	srv := newTestServer(t, newFakeStore())

	url := "/resumes/" + uuid.NewString()
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetResume_BadID(t *testing.T) {
	srv := newTestServer(t, newFakeStore())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/resumes/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleDeleteResume(t *testing.T) {
	store := newFakeStore()
	id := store.add("jane.pdf", "Jane Doe", "Python")
	srv := newTestServer(t, store)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/resumes/"+id.String(), nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/resumes/"+id.String(), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleScore_RanksStoredResumes(t *testing.T) {
	store := newFakeStore()
	matching := store.add("jane.pdf", "Jane Doe", "Python, Docker")
	unrelated := store.add("bob.pdf", "Bob Roe", "Java")
	srv := newTestServer(t, store)

	body := strings.NewReader(`{"job_description": "python docker kubernetes"}`)
	req := httptest.NewRequest(http.MethodPost, "/score", body)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var ranked []types.RankedResume
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ranked))
	require.Len(t, ranked, 2)
	assert.Equal(t, matching, ranked[0].ID)
	assert.Equal(t, unrelated, ranked[1].ID)
	assert.Greater(t, ranked[0].Score, 0)
	assert.Equal(t, 0, ranked[1].Score)
	assert.Equal(t, "Jane Doe", ranked[0].Name)
}

func TestHandleScore_MissingJobDescription(t *testing.T) {
	srv := newTestServer(t, newFakeStore())

	req := httptest.NewRequest(http.MethodPost, "/score", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleExport_CSV(t *testing.T) {
	store := newFakeStore()
	store.add("jane.pdf", "Jane Doe", "Python, Docker")
	srv := newTestServer(t, store)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/export", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "ID,Filename,Name,Email,Phone,Skills")
	assert.Contains(t, rec.Body.String(), "jane.pdf")
	assert.Contains(t, rec.Body.String(), "Jane Doe")
}

func TestNew_RequiresStore(t *testing.T) {
	_, err := New(Config{Port: 0})
	require.Error(t, err)
}
