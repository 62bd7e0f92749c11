package domain

import (
	"context"
	"time"

	"github.com/davidbz/tenancheck/internal/cache"
)

// Analyzer represents any document analysis backend.
type Analyzer interface {
	// Analyze runs a full analysis of the request's document.
	Analyze(ctx context.Context, req *AnalysisRequest) (*AnalysisResult, error)

	// Name returns the analyzer identifier.
	Name() string

	// IsModelSupported checks if the analyzer supports the given model.
	IsModelSupported(ctx context.Context, model string) bool

	// SupportedModels returns the models the analyzer serves.
	SupportedModels(ctx context.Context) []string
}

// AnalyzerRegistry manages available analyzers.
type AnalyzerRegistry interface {
	// Register adds an analyzer to the registry.
	Register(ctx context.Context, analyzer Analyzer) error

	// Get retrieves an analyzer by name.
	Get(ctx context.Context, name string) (Analyzer, error)

	// GetByModel retrieves the analyzer serving a model.
	GetByModel(ctx context.Context, model string) (Analyzer, error)

	// List returns all registered analyzer names.
	List(ctx context.Context) ([]string, error)
}

// AnalysisCache stores analysis results keyed by document content and partition.
type AnalysisCache interface {
	// Get returns the cached result for content or a near-duplicate, or cache.ErrMiss.
	Get(ctx context.Context, content, jurisdiction, documentType string) (*cache.Hit[AnalysisResult], error)

	// Set stores a result. A ttl <= 0 uses the cache default.
	Set(ctx context.Context, content, jurisdiction, documentType string, result AnalysisResult, ttl time.Duration) error

	// Stats returns current cache statistics.
	Stats(ctx context.Context) cache.Stats

	// Clear drops every entry.
	Clear(ctx context.Context)
}
