package domain

import "errors"

// Domain errors
var (
	ErrDirectoryNotFound = errors.New("directory not found")
	ErrNoFilesFound      = errors.New("no PDF files found in directory or its subdirectories")
	ErrNoValidDocuments  = errors.New("no valid PDF documents could be merged")
)

// ValidationError represents a validation error with field and message information.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + " " + e.Message
	}
	return e.Message
}
