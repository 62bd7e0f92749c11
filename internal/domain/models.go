package domain

import "time"

// AnalysisRequest is a tenancy document submitted for analysis.
type AnalysisRequest struct {
	Content      string `json:"content"`
	Jurisdiction string `json:"jurisdiction"`  // england, wales, scotland, northern-ireland
	DocumentType string `json:"document_type"` // ast, licence, prt, ...
	Model        string `json:"model,omitempty"`
}

// Severity ranks an issue.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Issue is a single finding of an analysis.
type Issue struct {
	Category       string   `json:"category"`
	Severity       Severity `json:"severity"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Recommendation string   `json:"recommendation,omitempty"`
}

// AnalysisResult is the outcome of analysing a document.
type AnalysisResult struct {
	ID              string    `json:"id"`
	Model           string    `json:"model"`
	Provider        string    `json:"provider"`
	Summary         string    `json:"summary"`
	ComplianceScore int       `json:"compliance_score"`
	Issues          []Issue   `json:"issues"`
	Usage           Usage     `json:"usage"`
	CompletedAt     time.Time `json:"completed_at"`
}

// Usage tracks token consumption.
type Usage struct {
	PromptTokens     int     `json:"prompt_tokens"`
	CompletionTokens int     `json:"completion_tokens"`
	TotalTokens      int     `json:"total_tokens"`
	Cost             float64 `json:"cost,omitempty"`
}

// CacheInfo describes how the cache served a request.
type CacheInfo struct {
	Hit             bool
	Match           string // exact or similar, empty on a miss
	SimilarityScore float64
	CachedAt        time.Time
}

// AnalysisOutcome pairs a result with its cache metadata.
// Cache is nil when caching is disabled.
type AnalysisOutcome struct {
	Result *AnalysisResult
	Cache  *CacheInfo
}
