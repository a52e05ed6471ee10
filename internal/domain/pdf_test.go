package domain

import (
	"errors"
	"regexp"
	"testing"
	"time"
)

func TestMergeRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "Empty path", path: "", wantErr: true},
		{name: "Single space", path: " ", wantErr: true},
		{name: "Tab", path: "\t", wantErr: true},
		{name: "Newline", path: "\n", wantErr: true},
		{name: "Relative path", path: "docs", wantErr: false},
		{name: "Absolute path", path: "/srv/pdfs", wantErr: false},
		{name: "Path with surrounding spaces", path: "  /srv/pdfs ", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := MergeRequest{DirectoryPath: tt.path}
			err := req.Validate()
			if tt.wantErr && err == nil {
				t.Fatalf("expected validation error for %q", tt.path)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected validation error for %q: %v", tt.path, err)
			}
			if tt.wantErr {
				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Fatalf("expected *ValidationError, got %T", err)
				}
				if vErr.Field != "DirectoryPath" {
					t.Fatalf("expected field DirectoryPath, got %s", vErr.Field)
				}
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	withField := &ValidationError{Field: "DirectoryPath", Message: "must not be empty"}
	if withField.Error() != "DirectoryPath must not be empty" {
		t.Fatalf("unexpected message: %s", withField.Error())
	}

	withoutField := &ValidationError{Message: "bad input"}
	if withoutField.Error() != "bad input" {
		t.Fatalf("unexpected message: %s", withoutField.Error())
	}
}

func TestSuggestedFilename(t *testing.T) {
	ts := time.Date(2024, time.March, 7, 9, 5, 3, 0, time.Local)

	got := SuggestedFilename(ts)
	if got != "merged_20240307090503.pdf" {
		t.Fatalf("unexpected filename: %s", got)
	}

	pattern := regexp.MustCompile(`^merged_\d{14}\.pdf$`)
	if !pattern.MatchString(SuggestedFilename(time.Now())) {
		t.Fatalf("filename does not match merged_<14 digits>.pdf")
	}
}

func TestDomainErrors_Distinct(t *testing.T) {
	if errors.Is(ErrDirectoryNotFound, ErrNoFilesFound) {
		t.Fatal("directory-not-found must be distinguishable from no-files-found")
	}
	if errors.Is(ErrNoFilesFound, ErrNoValidDocuments) {
		t.Fatal("no-files-found must be distinguishable from no-valid-documents")
	}
}
