package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"pdf-merge-api/internal/domain"
)

func TestFromDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantType   ErrorType
		wantStatus int
	}{
		{
			name:       "Directory not found",
			err:        fmt.Errorf("%w: /missing", domain.ErrDirectoryNotFound),
			wantType:   ErrorTypeNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "No files found",
			err:        domain.ErrNoFilesFound,
			wantType:   ErrorTypeNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "No valid documents",
			err:        fmt.Errorf("%w: 2 files skipped", domain.ErrNoValidDocuments),
			wantType:   ErrorTypeProcessing,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "Validation",
			err:        &domain.ValidationError{Field: "DirectoryPath", Message: "must not be empty"},
			wantType:   ErrorTypeValidation,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Deadline exceeded",
			err:        fmt.Errorf("merge aborted: %w", context.DeadlineExceeded),
			wantType:   ErrorTypeTimeout,
			wantStatus: http.StatusGatewayTimeout,
		},
		{
			name:       "Unexpected",
			err:        errors.New("disk on fire"),
			wantType:   ErrorTypeInternal,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := FromDomainError(tt.err)
			if appErr.Type != tt.wantType {
				t.Fatalf("expected type %s, got %s", tt.wantType, appErr.Type)
			}
			if GetStatusCode(appErr) != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, GetStatusCode(appErr))
			}
			if !IsType(appErr, tt.wantType) {
				t.Fatalf("IsType(%s) returned false", tt.wantType)
			}
		})
	}
}

func TestFromDomainError_KeepsMessages(t *testing.T) {
	err := fmt.Errorf("%w: /srv/missing", domain.ErrDirectoryNotFound)
	appErr := FromDomainError(err)
	if !strings.Contains(appErr.Message, "/srv/missing") {
		t.Fatalf("expected message to embed the path, got %s", appErr.Message)
	}
	if !errors.Is(appErr, domain.ErrDirectoryNotFound) {
		t.Fatalf("expected cause to unwrap to ErrDirectoryNotFound")
	}

	internal := FromDomainError(errors.New("write failed"))
	if internal.Message != "internal error during processing: write failed" {
		t.Fatalf("unexpected internal message: %s", internal.Message)
	}
}

func TestFromDomainError_Nil(t *testing.T) {
	if FromDomainError(nil) != nil {
		t.Fatal("expected nil for nil error")
	}
}

func TestGetStatusCode_PlainError(t *testing.T) {
	if GetStatusCode(errors.New("plain")) != http.StatusInternalServerError {
		t.Fatal("expected 500 for non-AppError")
	}
	wrapped := fmt.Errorf("outer: %w", NewNotFoundError("gone", nil))
	if GetStatusCode(wrapped) != http.StatusNotFound {
		t.Fatal("expected wrapped AppError status to be found")
	}
}

func TestAppError_Error(t *testing.T) {
	e := NewValidationError("bad request", "DirectoryPath")
	if e.Error() != "validation: bad request (DirectoryPath)" {
		t.Fatalf("unexpected error string: %s", e.Error())
	}
	if NewInternalError("boom", nil).Error() != "internal: boom" {
		t.Fatalf("unexpected error string without details")
	}
}
