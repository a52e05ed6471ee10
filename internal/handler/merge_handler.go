// Package handler provides HTTP handlers for the API.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"
	"time"

	"pdf-merge-api/internal/domain"
	apperrors "pdf-merge-api/pkg/errors"
)

// MergeHandler handles PDF merge requests
type MergeHandler struct {
	merger         domain.Merger
	logger         domain.Logger
	maxRequestSize int64
	mergeTimeout   time.Duration
	now            func() time.Time
}

// NewMergeHandler creates a new merge handler
func NewMergeHandler(merger domain.Merger, logger domain.Logger, maxRequestSize int64, mergeTimeout time.Duration) *MergeHandler {
	return &MergeHandler{
		merger:         merger,
		logger:         logger,
		maxRequestSize: maxRequestSize,
		mergeTimeout:   mergeTimeout,
		now:            time.Now,
	}
}

// MergePDFs merges every PDF beneath the requested directory and returns the result as a download.
func (h *MergeHandler) MergePDFs(w http.ResponseWriter, r *http.Request) {
	if h.maxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	}

	var req domain.MergeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	if h.mergeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.mergeTimeout)
		defer cancel()
	}

	result, err := h.merger.MergeDirectory(ctx, req.DirectoryPath)
	if err != nil {
		appErr := apperrors.FromDomainError(err)
		if apperrors.IsType(appErr, apperrors.ErrorTypeInternal) || apperrors.IsType(appErr, apperrors.ErrorTypeTimeout) {
			h.logger.Error("Failed to merge PDFs", err, "directory", req.DirectoryPath)
		} else {
			h.logger.Info("Merge request rejected", "directory", req.DirectoryPath, "reason", err.Error())
		}
		writeAppError(w, appErr)
		return
	}

	filename := domain.SuggestedFilename(h.now())

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Content)))
	w.Header().Set("X-Merged-Pages", strconv.Itoa(result.PageCount))
	w.Header().Set("X-Merged-Files", strconv.Itoa(len(result.Files)))
	w.Header().Set("X-Skipped-Files", strconv.Itoa(len(result.Skipped)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(result.Content); err != nil {
		h.logger.Warn("Failed to write merged PDF", "error", err, "filename", filename)
	}
}
