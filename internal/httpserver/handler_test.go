package httpserver //nolint:testpackage // Need access to unexported setCacheHeaders function

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/tenancheck/internal/cache"
	"github.com/davidbz/tenancheck/internal/domain"
	"github.com/davidbz/tenancheck/internal/mocks"
)

const leaseText = "This assured shorthold tenancy agreement is made between the landlord and the tenant. " +
	"The rent is £950 per calendar month. The deposit will be protected in a government approved deposit scheme."

func analysisRequest() domain.AnalysisRequest {
	return domain.AnalysisRequest{
		Content:      leaseText,
		Jurisdiction: "England",
		DocumentType: "AST",
		Model:        "echo-lease-1",
	}
}

func postAnalysis(t *testing.T, handler *Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	reqBody, err := json.Marshal(body)
	require.NoError(t, err)

	httpReq := httptest.NewRequest(http.MethodPost, "/v1/analyses", bytes.NewReader(reqBody))
	w := httptest.NewRecorder()
	handler.HandleAnalysis(w, httpReq)
	return w
}

func TestHandleAnalysis_CacheHit_SetsHeaders(t *testing.T) {
	mockRegistry := mocks.NewMockAnalyzerRegistry(t)
	mockCostCalc := mocks.NewMockCostCalculator(t)
	mockCache := mocks.NewMockAnalysisCache(t)

	service := domain.NewAnalysisService(mockRegistry, mockCostCalc, mockCache, &domain.AnalysisConfig{})
	handler := NewHandler(service)

	cachedAt := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
	cached := domain.AnalysisResult{
		ID:              "echo-0123456789abcdef",
		Model:           "echo-lease-1",
		Provider:        "echo",
		Summary:         "Offline review",
		ComplianceScore: 75,
		Issues: []domain.Issue{
			{Category: "safety", Severity: domain.SeverityMedium, Title: "Gas safety certificate not mentioned"},
		},
	}

	mockCache.EXPECT().
		Get(mock.Anything, leaseText, "england", "ast").
		Return(&cache.Hit[domain.AnalysisResult]{
			Payload:    cached,
			Match:      cache.MatchSimilar,
			Similarity: 0.9612,
			CachedAt:   cachedAt,
		}, nil)

	w := postAnalysis(t, handler, analysisRequest())

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "HIT", w.Header().Get("X-Tenancheck-Cache"))
	require.Equal(t, "similar", w.Header().Get("X-Tenancheck-Cache-Match"))
	require.Equal(t, "0.9612", w.Header().Get("X-Tenancheck-Cache-Similarity"))
	require.Equal(t, cachedAt.Format(time.RFC3339), w.Header().Get("X-Tenancheck-Cache-Timestamp"))

	age, err := strconv.ParseInt(w.Header().Get("X-Tenancheck-Cache-Age"), 10, 64)
	require.NoError(t, err)
	require.Positive(t, age)

	var response domain.AnalysisResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	require.Equal(t, cached.ID, response.ID)
	require.Equal(t, 75, response.ComplianceScore)
	require.Len(t, response.Issues, 1)
}

func TestHandleAnalysis_CacheMiss_SetsHeaders(t *testing.T) {
	mockRegistry := mocks.NewMockAnalyzerRegistry(t)
	mockCostCalc := mocks.NewMockCostCalculator(t)
	mockCache := mocks.NewMockAnalysisCache(t)
	mockAnalyzer := mocks.NewMockAnalyzer(t)

	service := domain.NewAnalysisService(mockRegistry, mockCostCalc, mockCache, &domain.AnalysisConfig{})
	handler := NewHandler(service)

	analyzed := &domain.AnalysisResult{
		ID:              "echo-fedcba9876543210",
		Model:           "echo-lease-1",
		Provider:        "echo",
		ComplianceScore: 90,
		Issues:          []domain.Issue{},
		Usage:           domain.Usage{PromptTokens: 40, CompletionTokens: 12, TotalTokens: 52},
	}

	mockCache.EXPECT().
		Get(mock.Anything, leaseText, "england", "ast").
		Return(nil, cache.ErrMiss)

	mockRegistry.EXPECT().
		GetByModel(mock.Anything, "echo-lease-1").
		Return(mockAnalyzer, nil)

	mockAnalyzer.EXPECT().
		Analyze(mock.Anything, mock.MatchedBy(func(req *domain.AnalysisRequest) bool {
			return req.Jurisdiction == "england" && req.DocumentType == "ast" && req.Content == leaseText
		})).
		Return(analyzed, nil)

	mockAnalyzer.EXPECT().Name().Return("echo")

	mockCostCalc.EXPECT().
		Calculate(mock.Anything, "echo-lease-1", analyzed.Usage).
		Return(0.0042, nil)

	mockCache.EXPECT().
		Set(mock.Anything, leaseText, "england", "ast", mock.MatchedBy(func(result domain.AnalysisResult) bool {
			return result.ID == analyzed.ID && result.Usage.Cost == 0.0042
		}), time.Duration(0)).
		Return(nil)

	w := postAnalysis(t, handler, analysisRequest())

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "MISS", w.Header().Get("X-Tenancheck-Cache"))
	require.Empty(t, w.Header().Get("X-Tenancheck-Cache-Match"))
	require.Empty(t, w.Header().Get("X-Tenancheck-Cache-Similarity"))
	require.Empty(t, w.Header().Get("X-Tenancheck-Cache-Timestamp"))
	require.Empty(t, w.Header().Get("X-Tenancheck-Cache-Age"))

	var response domain.AnalysisResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	require.Equal(t, analyzed.ID, response.ID)
	require.InDelta(t, 0.0042, response.Usage.Cost, 0.0001)
}

func TestHandleAnalysis_CacheDisabled_NoHeaders(t *testing.T) {
	mockRegistry := mocks.NewMockAnalyzerRegistry(t)
	mockCostCalc := mocks.NewMockCostCalculator(t)
	mockAnalyzer := mocks.NewMockAnalyzer(t)

	service := domain.NewAnalysisService(mockRegistry, mockCostCalc, nil, &domain.AnalysisConfig{})
	handler := NewHandler(service)

	analyzed := &domain.AnalysisResult{ID: "echo-1", Model: "echo-lease-1", Provider: "echo", Issues: []domain.Issue{}}

	mockRegistry.EXPECT().GetByModel(mock.Anything, "echo-lease-1").Return(mockAnalyzer, nil)
	mockAnalyzer.EXPECT().Analyze(mock.Anything, mock.Anything).Return(analyzed, nil)
	mockAnalyzer.EXPECT().Name().Return("echo")
	mockCostCalc.EXPECT().Calculate(mock.Anything, "echo-lease-1", analyzed.Usage).Return(0, nil)

	w := postAnalysis(t, handler, analysisRequest())

	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, w.Header().Get("X-Tenancheck-Cache"))
	require.Empty(t, w.Header().Get("X-Tenancheck-Cache-Similarity"))
}

func TestHandleAnalysis_DefaultModel(t *testing.T) {
	mockRegistry := mocks.NewMockAnalyzerRegistry(t)
	mockCostCalc := mocks.NewMockCostCalculator(t)
	mockAnalyzer := mocks.NewMockAnalyzer(t)

	service := domain.NewAnalysisService(mockRegistry, mockCostCalc, nil, &domain.AnalysisConfig{DefaultModel: "gpt-4o-mini"})
	handler := NewHandler(service)

	analyzed := &domain.AnalysisResult{ID: "chatcmpl-1", Model: "gpt-4o-mini", Provider: "openai", Issues: []domain.Issue{}}

	mockRegistry.EXPECT().GetByModel(mock.Anything, "gpt-4o-mini").Return(mockAnalyzer, nil)
	mockAnalyzer.EXPECT().
		Analyze(mock.Anything, mock.MatchedBy(func(req *domain.AnalysisRequest) bool {
			return req.Model == "gpt-4o-mini"
		})).
		Return(analyzed, nil)
	mockAnalyzer.EXPECT().Name().Return("openai")
	mockCostCalc.EXPECT().Calculate(mock.Anything, "gpt-4o-mini", analyzed.Usage).Return(0, nil)

	req := analysisRequest()
	req.Model = ""
	w := postAnalysis(t, handler, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestHandleAnalysis_Errors(t *testing.T) {
	t.Run("method not allowed", func(t *testing.T) {
		handler := NewHandler(domain.NewAnalysisService(
			mocks.NewMockAnalyzerRegistry(t), mocks.NewMockCostCalculator(t), nil, nil))

		w := httptest.NewRecorder()
		handler.HandleAnalysis(w, httptest.NewRequest(http.MethodGet, "/v1/analyses", nil))

		require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})

	t.Run("invalid json", func(t *testing.T) {
		handler := NewHandler(domain.NewAnalysisService(
			mocks.NewMockAnalyzerRegistry(t), mocks.NewMockCostCalculator(t), nil, nil))

		w := httptest.NewRecorder()
		handler.HandleAnalysis(w, httptest.NewRequest(http.MethodPost, "/v1/analyses", bytes.NewReader([]byte("invalid json"))))

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty content", func(t *testing.T) {
		handler := NewHandler(domain.NewAnalysisService(
			mocks.NewMockAnalyzerRegistry(t), mocks.NewMockCostCalculator(t), nil, nil))

		req := analysisRequest()
		req.Content = "   \n"
		w := postAnalysis(t, handler, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), domain.ErrEmptyContent.Error())
	})

	t.Run("no model", func(t *testing.T) {
		handler := NewHandler(domain.NewAnalysisService(
			mocks.NewMockAnalyzerRegistry(t), mocks.NewMockCostCalculator(t), nil, nil))

		req := analysisRequest()
		req.Model = ""
		w := postAnalysis(t, handler, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown model", func(t *testing.T) {
		mockRegistry := mocks.NewMockAnalyzerRegistry(t)
		mockCache := mocks.NewMockAnalysisCache(t)
		handler := NewHandler(domain.NewAnalysisService(mockRegistry, mocks.NewMockCostCalculator(t), mockCache, nil))

		mockCache.EXPECT().Get(mock.Anything, leaseText, "england", "ast").Return(nil, cache.ErrMiss)
		mockRegistry.EXPECT().
			GetByModel(mock.Anything, "unknown-model").
			Return(nil, domain.ErrAnalyzerNotFound)

		req := analysisRequest()
		req.Model = "unknown-model"
		w := postAnalysis(t, handler, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("analyzer failure", func(t *testing.T) {
		mockRegistry := mocks.NewMockAnalyzerRegistry(t)
		mockAnalyzer := mocks.NewMockAnalyzer(t)
		handler := NewHandler(domain.NewAnalysisService(mockRegistry, mocks.NewMockCostCalculator(t), nil, nil))

		mockRegistry.EXPECT().GetByModel(mock.Anything, "echo-lease-1").Return(mockAnalyzer, nil)
		mockAnalyzer.EXPECT().Analyze(mock.Anything, mock.Anything).Return(nil, errors.New("upstream timeout"))

		w := postAnalysis(t, handler, analysisRequest())

		require.Equal(t, http.StatusBadGateway, w.Code)
		require.Contains(t, w.Body.String(), "upstream timeout")
	})
}

func TestHandleCacheStats(t *testing.T) {
	mockCache := mocks.NewMockAnalysisCache(t)
	handler := NewHandler(domain.NewAnalysisService(
		mocks.NewMockAnalyzerRegistry(t), mocks.NewMockCostCalculator(t), mockCache, nil))

	mockCache.EXPECT().Stats(mock.Anything).Return(cache.Stats{
		TotalEntries: 3,
		MaxEntries:   1000,
		HitRate:      0.5,
		TotalHits:    2,
		ExactHits:    1,
		SimilarHits:  1,
		TotalMisses:  2,
		Categories:   map[string]int{"england": 3},
	})

	w := httptest.NewRecorder()
	handler.HandleCacheStats(w, httptest.NewRequest(http.MethodGet, "/v1/cache/stats", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var stats cache.Stats
	require.NoError(t, json.NewDecoder(w.Body).Decode(&stats))
	require.Equal(t, 3, stats.TotalEntries)
	require.InDelta(t, 0.5, stats.HitRate, 1e-9)
	require.Equal(t, map[string]int{"england": 3}, stats.Categories)
}

func TestHandleCacheStats_Disabled(t *testing.T) {
	handler := NewHandler(domain.NewAnalysisService(
		mocks.NewMockAnalyzerRegistry(t), mocks.NewMockCostCalculator(t), nil, nil))

	w := httptest.NewRecorder()
	handler.HandleCacheStats(w, httptest.NewRequest(http.MethodGet, "/v1/cache/stats", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleCacheClear(t *testing.T) {
	mockCache := mocks.NewMockAnalysisCache(t)
	handler := NewHandler(domain.NewAnalysisService(
		mocks.NewMockAnalyzerRegistry(t), mocks.NewMockCostCalculator(t), mockCache, nil))

	mockCache.EXPECT().Clear(mock.Anything).Return()

	w := httptest.NewRecorder()
	handler.HandleCacheClear(w, httptest.NewRequest(http.MethodDelete, "/v1/cache", nil))

	require.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	handler.HandleCacheClear(w, httptest.NewRequest(http.MethodPost, "/v1/cache", nil))

	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestSetCacheHeaders_NilCacheInfo(t *testing.T) {
	w := httptest.NewRecorder()

	setCacheHeaders(w, nil)

	require.Empty(t, w.Header().Get("X-Tenancheck-Cache"))
	require.Empty(t, w.Header().Get("X-Tenancheck-Cache-Match"))
	require.Empty(t, w.Header().Get("X-Tenancheck-Cache-Age"))
}

func TestSetCacheHeaders_ExactHit(t *testing.T) {
	w := httptest.NewRecorder()
	cachedAt := time.Now().Add(-90 * time.Second)

	setCacheHeaders(w, &domain.CacheInfo{
		Hit:             true,
		Match:           "exact",
		SimilarityScore: 1,
		CachedAt:        cachedAt,
	})

	require.Equal(t, "HIT", w.Header().Get("X-Tenancheck-Cache"))
	require.Equal(t, "exact", w.Header().Get("X-Tenancheck-Cache-Match"))
	require.Equal(t, "1.0000", w.Header().Get("X-Tenancheck-Cache-Similarity"))
	require.Equal(t, cachedAt.Format(time.RFC3339), w.Header().Get("X-Tenancheck-Cache-Timestamp"))

	age, err := strconv.ParseInt(w.Header().Get("X-Tenancheck-Cache-Age"), 10, 64)
	require.NoError(t, err)
	require.GreaterOrEqual(t, age, int64(90))
}

func TestSetCacheHeaders_FutureTimestampClampsAge(t *testing.T) {
	w := httptest.NewRecorder()

	setCacheHeaders(w, &domain.CacheInfo{Hit: true, Match: "exact", SimilarityScore: 1, CachedAt: time.Now().Add(time.Hour)})

	require.Equal(t, "0", w.Header().Get("X-Tenancheck-Cache-Age"))
}

func TestHandleHealth(t *testing.T) {
	handler := NewHandler(domain.NewAnalysisService(
		mocks.NewMockAnalyzerRegistry(t), mocks.NewMockCostCalculator(t), nil, nil))

	w := httptest.NewRecorder()
	handler.HandleHealth(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var response map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	require.Equal(t, "healthy", response["status"])
}
