package domain

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/davidbz/tenancheck/internal/cache"
	"github.com/davidbz/tenancheck/internal/fingerprint"
	"github.com/davidbz/tenancheck/internal/observability"
)

var (
	// ErrEmptyContent indicates a request without document text.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrAnalyzerNotFound indicates no registered analyzer serves the model.
	ErrAnalyzerNotFound = errors.New("analyzer not found")

	// ErrModelRequired indicates neither the request nor the config names a model.
	ErrModelRequired = errors.New("model cannot be empty")

	// ErrCacheDisabled indicates the service runs without a cache.
	ErrCacheDisabled = errors.New("cache is disabled")
)

// AnalysisConfig contains analysis orchestration settings.
type AnalysisConfig struct {
	DefaultModel string        `env:"ANALYSIS_DEFAULT_MODEL" envDefault:"echo-lease-1"`
	CacheTTL     time.Duration `env:"ANALYSIS_CACHE_TTL"     envDefault:"0s"`
}

// AnalysisService orchestrates cached document analyses.
type AnalysisService struct {
	registry       AnalyzerRegistry
	costCalculator CostCalculator
	cache          AnalysisCache
	cfg            AnalysisConfig

	// inflight coalesces concurrent misses for the same document. The first
	// caller's context governs the shared analysis.
	inflight singleflight.Group
}

// NewAnalysisService creates a new analysis service (DI constructor).
// A nil cache disables caching.
func NewAnalysisService(
	registry AnalyzerRegistry,
	costCalculator CostCalculator,
	analysisCache AnalysisCache,
	cfg *AnalysisConfig,
) *AnalysisService {
	s := &AnalysisService{
		registry:       registry,
		costCalculator: costCalculator,
		cache:          analysisCache,
	}
	if cfg != nil {
		s.cfg = *cfg
	}
	return s
}

// Analyze returns the analysis of a document, from the cache when possible.
func (s *AnalysisService) Analyze(ctx context.Context, req *AnalysisRequest) (*AnalysisOutcome, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrEmptyContent
	}

	normalized := AnalysisRequest{
		Content:      req.Content,
		Jurisdiction: normalizeLabel(req.Jurisdiction),
		DocumentType: normalizeLabel(req.DocumentType),
		Model:        strings.TrimSpace(req.Model),
	}
	if normalized.Model == "" {
		normalized.Model = s.cfg.DefaultModel
	}
	if normalized.Model == "" {
		return nil, ErrModelRequired
	}

	ctx = observability.WithModel(ctx, normalized.Model)
	ctx = observability.WithDocument(ctx, normalized.Jurisdiction, normalized.DocumentType)
	logger := observability.FromContext(ctx)

	if s.cache == nil {
		result, err := s.run(ctx, &normalized)
		if err != nil {
			return nil, err
		}
		return &AnalysisOutcome{Result: result, Cache: nil}, nil
	}

	hit, err := s.cache.Get(ctx, normalized.Content, normalized.Jurisdiction, normalized.DocumentType)
	switch {
	case err == nil:
		logger.Info("cache HIT - returning cached analysis",
			observability.String("match", string(hit.Match)),
			observability.Float64("similarity_score", hit.Similarity),
			observability.Uint64("access_count", hit.AccessCount),
			observability.Time("cached_at", hit.CachedAt),
			observability.String("cached_model", hit.Payload.Model))

		result := hit.Payload
		return &AnalysisOutcome{
			Result: &result,
			Cache: &CacheInfo{
				Hit:             true,
				Match:           string(hit.Match),
				SimilarityScore: hit.Similarity,
				CachedAt:        hit.CachedAt,
			},
		}, nil
	case !errors.Is(err, cache.ErrMiss):
		logger.Warn("cache get failed, continuing without cache", observability.Error(err))
	default:
		logger.Info("cache MISS - calling analyzer")
	}

	value, err, shared := s.inflight.Do(flightKey(&normalized), func() (interface{}, error) {
		result, runErr := s.run(ctx, &normalized)
		if runErr != nil {
			return nil, runErr
		}

		if setErr := s.cache.Set(
			ctx, normalized.Content, normalized.Jurisdiction, normalized.DocumentType, *result, s.cfg.CacheTTL,
		); setErr != nil {
			logger.Warn("failed to store analysis in cache", observability.Error(setErr))
		}

		return result, nil
	})
	if err != nil {
		return nil, err
	}

	result, _ := value.(*AnalysisResult)
	if shared {
		logger.Debug("analysis shared with concurrent request")
		result = cloneResult(result)
	}

	return &AnalysisOutcome{Result: result, Cache: &CacheInfo{Hit: false}}, nil
}

// CacheStats returns the cache statistics.
func (s *AnalysisService) CacheStats(ctx context.Context) (cache.Stats, error) {
	if s.cache == nil {
		return cache.Stats{}, ErrCacheDisabled
	}
	return s.cache.Stats(ctx), nil
}

// ClearCache drops every cached analysis.
func (s *AnalysisService) ClearCache(ctx context.Context) error {
	if s.cache == nil {
		return ErrCacheDisabled
	}

	s.cache.Clear(ctx)
	observability.FromContext(ctx).Info("analysis cache cleared")
	return nil
}

func (s *AnalysisService) run(ctx context.Context, req *AnalysisRequest) (*AnalysisResult, error) {
	analyzer, err := s.registry.GetByModel(ctx, req.Model)
	if err != nil {
		return nil, fmt.Errorf("analyzer routing failed: %w", err)
	}

	started := time.Now()
	result, err := analyzer.Analyze(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}

	// Calculate cost in domain layer
	cost, err := s.costCalculator.Calculate(ctx, result.Model, result.Usage)
	if err != nil {
		observability.FromContext(ctx).Warn("failed to price analysis", observability.Error(err))
	}
	result.Usage.Cost = cost

	observability.FromContext(ctx).Info("analysis completed",
		observability.String("analyzer", analyzer.Name()),
		observability.Int("issues", len(result.Issues)),
		observability.Int("tokens", result.Usage.TotalTokens),
		observability.Float64("cost", cost),
		observability.Duration("elapsed", time.Since(started)))

	return result, nil
}

func normalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// flightKey matches the cache's exact key so coalescing and caching agree.
// Labels are quoted so that no two partitions share a key.
func flightKey(req *AnalysisRequest) string {
	return strconv.Quote(req.Jurisdiction) + strconv.Quote(req.DocumentType) + fingerprint.Hash(req.Content)
}

func cloneResult(result *AnalysisResult) *AnalysisResult {
	clone := *result
	clone.Issues = slices.Clone(result.Issues)
	return &clone
}
