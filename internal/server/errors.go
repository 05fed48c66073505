package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jonathan/resume-screener/internal/extraction"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var formatErr *extraction.UnsupportedFormatError
	if errors.As(err, &formatErr) {
		return http.StatusUnsupportedMediaType
	}
	var extractErr *extraction.ExtractionError
	if errors.As(err, &extractErr) {
		return http.StatusUnprocessableEntity
	}
	if err != nil && strings.Contains(err.Error(), "not found") {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
