package domain

import (
	"context"
	"io"
	"time"
)

// Merger merges every PDF found beneath a directory into one document.
type Merger interface {
	MergeDirectory(ctx context.Context, directoryPath string) (*MergeResult, error)
}

// PDFEngine is the PDF parsing and writing capability used by the merger.
type PDFEngine interface {
	// PageCount opens a document in import mode and reports its page count.
	PageCount(rs io.ReadSeeker) (int, error)
	// Merge appends the pages of docs, in order, into one document written to w.
	Merge(docs []io.ReadSeeker, w io.Writer) error
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetLogLevel() string
	GetLogFormat() string
	GetMaxRequestSize() int64
	GetMergeTimeout() time.Duration
	GetShutdownTimeout() time.Duration
	GetPDFValidationMode() string
	GetAllowedOrigins() []string
}
