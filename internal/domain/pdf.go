package domain

import (
	"strings"
	"time"
)

// SuggestedFilenameLayout is the timestamp layout used in merged output names.
const SuggestedFilenameLayout = "20060102150405"

// MergeRequest is the payload accepted by the merge endpoint.
type MergeRequest struct {
	DirectoryPath string `json:"directoryPath"`
}

// Validate rejects missing or whitespace-only directory paths.
func (r *MergeRequest) Validate() error {
	if strings.TrimSpace(r.DirectoryPath) == "" {
		return &ValidationError{Field: "DirectoryPath", Message: "must not be empty"}
	}
	return nil
}

// SkipReasonNoPages marks a candidate that opened as a PDF but has no pages.
const SkipReasonNoPages = "document has no pages"

// SkippedFile records a candidate left out of the merge and why.
type SkippedFile struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// MergeResult is the outcome of merging one directory.
type MergeResult struct {
	Content   []byte        `json:"-"`
	PageCount int           `json:"page_count"`
	Files     []string      `json:"files"`
	Skipped   []SkippedFile `json:"skipped"`
}

// SuggestedFilename returns the download name for a merge completed at t,
// e.g. merged_20250101120000.pdf.
func SuggestedFilename(t time.Time) string {
	return "merged_" + t.Format(SuggestedFilenameLayout) + ".pdf"
}
