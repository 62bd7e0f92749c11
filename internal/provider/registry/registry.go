package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/davidbz/tenancheck/internal/domain"
	"github.com/davidbz/tenancheck/internal/observability"
)

// Registry implements the AnalyzerRegistry interface.
type Registry struct {
	mu              sync.RWMutex
	analyzers       map[string]domain.Analyzer
	modelToAnalyzer map[string]string
}

// NewRegistry creates a new analyzer registry.
func NewRegistry() *Registry {
	return &Registry{
		mu:              sync.RWMutex{},
		analyzers:       make(map[string]domain.Analyzer),
		modelToAnalyzer: make(map[string]string),
	}
}

// Register adds an analyzer to the registry. A model may be served by one
// analyzer only.
func (r *Registry) Register(ctx context.Context, analyzer domain.Analyzer) error {
	if analyzer == nil {
		return errors.New("analyzer cannot be nil")
	}

	name := analyzer.Name()
	if name == "" {
		return errors.New("analyzer name cannot be empty")
	}

	models := analyzer.SupportedModels(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.analyzers[name]; exists {
		return fmt.Errorf("analyzer %s already registered", name)
	}

	for _, model := range models {
		if owner, taken := r.modelToAnalyzer[model]; taken {
			return fmt.Errorf("model %s already served by analyzer %s", model, owner)
		}
	}

	r.analyzers[name] = analyzer

	// Build reverse index from the analyzer's supported models
	for _, model := range models {
		r.modelToAnalyzer[model] = name
	}

	observability.FromContext(ctx).Info("analyzer registered",
		observability.String("analyzer", name),
		observability.Strings("models", models))

	return nil
}

// Get retrieves an analyzer by name.
func (r *Registry) Get(_ context.Context, name string) (domain.Analyzer, error) {
	if name == "" {
		return nil, errors.New("analyzer name cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	analyzer, exists := r.analyzers[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrAnalyzerNotFound, name)
	}

	return analyzer, nil
}

// List returns all registered analyzer names in sorted order.
func (r *Registry) List(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.analyzers))
	for name := range r.analyzers {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

// GetByModel retrieves the analyzer serving the given model.
func (r *Registry) GetByModel(ctx context.Context, model string) (domain.Analyzer, error) {
	if model == "" {
		return nil, errors.New("model cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	name, exists := r.modelToAnalyzer[model]
	if !exists {
		// Fall back to asking each analyzer, for models outside the known lists.
		for _, analyzer := range r.analyzers {
			if analyzer.IsModelSupported(ctx, model) {
				return analyzer, nil
			}
		}
		return nil, fmt.Errorf("%w: no analyzer found for model: %s", domain.ErrAnalyzerNotFound, model)
	}

	analyzer, exists := r.analyzers[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrAnalyzerNotFound, name)
	}

	return analyzer, nil
}
