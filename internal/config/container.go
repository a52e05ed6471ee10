package config

import (
	"pdf-merge-api/internal/domain"
	"pdf-merge-api/internal/pdf"
	"pdf-merge-api/internal/service"
	"pdf-merge-api/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config    domain.Config
	Logger    domain.Logger
	PDFEngine domain.PDFEngine
	Merger    domain.Merger
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return NewContainerWithConfig(NewConfig())
}

// NewContainerWithConfig wires the application around an existing configuration
func NewContainerWithConfig(cfg domain.Config) *Container {
	appLogger := logger.NewLogger(cfg.GetLogLevel(), cfg.GetLogFormat())

	engine := pdf.NewEngine(
		pdf.WithValidationMode(pdf.ParseValidationMode(cfg.GetPDFValidationMode())),
	)
	merger := service.NewMergeService(engine, appLogger)

	return &Container{
		Config:    cfg,
		Logger:    appLogger,
		PDFEngine: engine,
		Merger:    merger,
	}
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}

// GetMerger returns the merge service instance
func (c *Container) GetMerger() domain.Merger {
	return c.Merger
}
