package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/davidbz/tenancheck/internal/domain"
	"github.com/davidbz/tenancheck/internal/observability"
)

const (
	headerCache           = "X-Tenancheck-Cache"
	headerCacheMatch      = "X-Tenancheck-Cache-Match"
	headerCacheSimilarity = "X-Tenancheck-Cache-Similarity"
	headerCacheTimestamp  = "X-Tenancheck-Cache-Timestamp"
	headerCacheAge        = "X-Tenancheck-Cache-Age"
)

// Handler handles HTTP requests.
type Handler struct {
	service *domain.AnalysisService
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(service *domain.AnalysisService) *Handler {
	return &Handler{
		service: service,
	}
}

// HandleAnalysis processes document analysis requests.
func (h *Handler) HandleAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Early validation.
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Parse request.
	var req domain.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	logger := observability.FromContext(ctx)
	logger.Info("analysis request received",
		observability.String("jurisdiction", req.Jurisdiction),
		observability.String("document_type", req.DocumentType),
		observability.String("model", req.Model),
		observability.Int("content_length", len(req.Content)),
	)

	outcome, err := h.service.Analyze(ctx, &req)
	if err != nil {
		status := statusFor(err)
		logger.Error("analysis failed", observability.Error(err), observability.Int("status", status))
		http.Error(w, err.Error(), status)
		return
	}

	setCacheHeaders(w, outcome.Cache)

	logger.Info("analysis succeeded",
		observability.Bool("cache_hit", outcome.Cache != nil && outcome.Cache.Hit),
		observability.Int("compliance_score", outcome.Result.ComplianceScore),
		observability.Int("issues", len(outcome.Result.Issues)),
		observability.Float64("cost", outcome.Result.Usage.Cost),
	)

	writeJSON(w, r, http.StatusOK, outcome.Result)
}

// HandleCacheStats reports cache statistics.
func (h *Handler) HandleCacheStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	stats, err := h.service.CacheStats(r.Context())
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	writeJSON(w, r, http.StatusOK, stats)
}

// HandleCacheClear drops every cached analysis.
func (h *Handler) HandleCacheClear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := h.service.ClearCache(r.Context()); err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// setCacheHeaders describes how the cache served the response. Nothing is
// written when caching is disabled.
func setCacheHeaders(w http.ResponseWriter, info *domain.CacheInfo) {
	if info == nil {
		return
	}

	if !info.Hit {
		w.Header().Set(headerCache, "MISS")
		return
	}

	w.Header().Set(headerCache, "HIT")
	w.Header().Set(headerCacheMatch, info.Match)
	w.Header().Set(headerCacheSimilarity, strconv.FormatFloat(info.SimilarityScore, 'f', 4, 64))
	w.Header().Set(headerCacheTimestamp, info.CachedAt.Format(time.RFC3339))

	age := max(int64(time.Since(info.CachedAt).Seconds()), 0)
	w.Header().Set(headerCacheAge, strconv.FormatInt(age, 10))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrEmptyContent),
		errors.Is(err, domain.ErrModelRequired),
		errors.Is(err, domain.ErrAnalyzerNotFound):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrCacheDisabled):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Already written status, can't change it, just log.
		observability.FromContext(r.Context()).Error("failed to encode response", observability.Error(err))
	}
}
