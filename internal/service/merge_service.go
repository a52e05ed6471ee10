package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"pdf-merge-api/internal/domain"
)

// MergeService merges every PDF beneath a directory into a single document.
type MergeService struct {
	engine   domain.PDFEngine
	logger   domain.Logger
	foldCase bool
	excluded []string
}

// MergeOption configures a MergeService.
type MergeOption func(*MergeService)

// WithExcludedFiles keeps the given files out of every merge, even when they
// sit inside the scanned tree. Paths that do not exist are ignored.
func WithExcludedFiles(paths ...string) MergeOption {
	return func(s *MergeService) {
		s.excluded = append(s.excluded, paths...)
	}
}

// NewMergeService creates a new merge service instance
func NewMergeService(engine domain.PDFEngine, logger domain.Logger, opts ...MergeOption) *MergeService {
	s := &MergeService{
		engine:   engine,
		logger:   logger,
		foldCase: caseInsensitiveFS,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MergeDirectory merges the PDFs found beneath directoryPath, in scan order.
// Files that cannot be opened as PDFs are skipped and reported in the result.
func (s *MergeService) MergeDirectory(ctx context.Context, directoryPath string) (*domain.MergeResult, error) {
	info, err := os.Stat(directoryPath)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", domain.ErrDirectoryNotFound, directoryPath)
	}

	files, err := findPDFFiles(directoryPath, s.foldCase)
	if err != nil {
		return nil, err
	}
	files = s.withoutExcluded(files)
	if len(files) == 0 {
		return nil, domain.ErrNoFilesFound
	}

	s.logger.Debug("Merging PDF files", "directory", directoryPath, "candidates", len(files))

	result := &domain.MergeResult{
		Files:   make([]string, 0, len(files)),
		Skipped: make([]domain.SkippedFile, 0),
	}
	docs := make([]io.ReadSeeker, 0, len(files))

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("merge aborted after %d of %d files: %w", len(result.Files)+len(result.Skipped), len(files), err)
		}

		doc, pages, err := s.openDocument(path)
		if err != nil {
			s.logger.Warn("Skipping unreadable PDF", "file", path, "error", err)
			result.Skipped = append(result.Skipped, domain.SkippedFile{Path: path, Reason: err.Error()})
			continue
		}
		if pages == 0 {
			// Opened fine but has nothing to append; pdfcpu cannot merge an empty page tree.
			s.logger.Info("Skipping PDF without pages", "file", path)
			result.Skipped = append(result.Skipped, domain.SkippedFile{Path: path, Reason: domain.SkipReasonNoPages})
			continue
		}

		docs = append(docs, doc)
		result.Files = append(result.Files, path)
		result.PageCount += pages
	}

	if result.PageCount == 0 {
		return nil, fmt.Errorf("%w: %d of %d files skipped", domain.ErrNoValidDocuments, len(result.Skipped), len(files))
	}

	var out bytes.Buffer
	if err := s.engine.Merge(docs, &out); err != nil {
		return nil, fmt.Errorf("serialize merged document: %w", err)
	}
	result.Content = out.Bytes()

	s.logger.Info("Merged PDF files",
		"directory", directoryPath,
		"files", len(result.Files),
		"skipped", len(result.Skipped),
		"pages", result.PageCount,
		"bytes", len(result.Content),
	)

	return result, nil
}

// openDocument reads path into memory and opens it in import mode. The file
// handle is released before the document is parsed.
func (s *MergeService) openDocument(path string) (io.ReadSeeker, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}

	doc := bytes.NewReader(data)
	pages, err := s.engine.PageCount(doc)
	if err != nil {
		return nil, 0, err
	}
	return doc, pages, nil
}

// withoutExcluded drops candidates that are the same file as an excluded path.
func (s *MergeService) withoutExcluded(files []string) []string {
	if len(s.excluded) == 0 {
		return files
	}

	var excluded []os.FileInfo
	for _, path := range s.excluded {
		if info, err := os.Stat(path); err == nil {
			excluded = append(excluded, info)
		}
	}
	if len(excluded) == 0 {
		return files
	}

	kept := files[:0]
	for _, path := range files {
		info, err := os.Stat(path)
		if err == nil && sameAsAny(info, excluded) {
			s.logger.Debug("Ignoring excluded file", "file", path)
			continue
		}
		kept = append(kept, path)
	}
	return kept
}

func sameAsAny(info os.FileInfo, others []os.FileInfo) bool {
	for _, other := range others {
		if os.SameFile(info, other) {
			return true
		}
	}
	return false
}
