package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "pdf-merge-api/pkg/errors"
)

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, http.StatusTeapot, "nope")

	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected status %d, got %d", http.StatusTeapot, rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content type application/json, got %s", ct)
	}
	if strings.TrimSpace(rr.Body.String()) != `{"error":"nope"}` {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestWriteError_EscapesMessage(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, http.StatusNotFound, `directory not found: C:\pdfs\"q"`)

	want := `{"error":"directory not found: C:\\pdfs\\\"q\""}`
	if strings.TrimSpace(rr.Body.String()) != want {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestWriteAppError(t *testing.T) {
	rr := httptest.NewRecorder()
	writeAppError(rr, apperrors.NewNotFoundError("gone", nil))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}
	if strings.TrimSpace(rr.Body.String()) != `{"error":"gone"}` {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}
