// Package pdf wraps pdfcpu behind the domain.PDFEngine capability.
package pdf

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ValidationMode controls how strictly input documents are checked when opened.
type ValidationMode string

const (
	ValidationRelaxed ValidationMode = "relaxed"
	ValidationStrict  ValidationMode = "strict"
)

// ParseValidationMode maps a config value to a ValidationMode, defaulting to relaxed.
func ParseValidationMode(s string) ValidationMode {
	if strings.EqualFold(strings.TrimSpace(s), string(ValidationStrict)) {
		return ValidationStrict
	}
	return ValidationRelaxed
}

// Engine implements domain.PDFEngine with pdfcpu.
type Engine struct {
	mode ValidationMode
}

// Option configures an Engine.
type Option func(*Engine)

// WithValidationMode sets the validation mode used when opening documents.
func WithValidationMode(mode ValidationMode) Option {
	return func(e *Engine) {
		e.mode = mode
	}
}

// NewEngine creates a pdfcpu-backed engine. pdfcpu's user config directory is
// disabled so the engine never touches the filesystem on its own.
func NewEngine(opts ...Option) *Engine {
	api.DisableConfigDir()

	e := &Engine{mode: ValidationRelaxed}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Mode returns the engine's validation mode.
func (e *Engine) Mode() ValidationMode {
	return e.mode
}

// PageCount reads and validates a document without modifying it.
func (e *Engine) PageCount(rs io.ReadSeeker) (int, error) {
	if rs == nil {
		return 0, errors.New("pdf: missing document")
	}

	ctx, err := api.ReadContext(rs, e.configuration())
	if err != nil {
		return 0, fmt.Errorf("pdf: read: %w", err)
	}
	if err := api.ValidateContext(ctx); err != nil {
		return 0, fmt.Errorf("pdf: validate: %w", err)
	}
	return ctx.PageCount, nil
}

// Merge concatenates docs in order and writes the result to w.
func (e *Engine) Merge(docs []io.ReadSeeker, w io.Writer) error {
	if len(docs) == 0 {
		return errors.New("pdf: nothing to merge")
	}
	for _, rs := range docs {
		if _, err := rs.Seek(0, io.SeekStart); err != nil {
			return fmt.Errorf("pdf: rewind input: %w", err)
		}
	}

	if err := api.MergeRaw(docs, w, false, e.configuration()); err != nil {
		return fmt.Errorf("pdf: merge: %w", err)
	}
	return nil
}

// configuration returns a fresh pdfcpu configuration; pdfcpu mutates it per command.
func (e *Engine) configuration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	if e.mode == ValidationStrict {
		conf.ValidationMode = model.ValidationStrict
	} else {
		conf.ValidationMode = model.ValidationRelaxed
	}
	return conf
}
