// Package echo provides an offline analyzer for development and testing.
// It implements the domain.Analyzer interface without making external API calls,
// deriving a deterministic review from the document's fingerprint.
package echo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/davidbz/tenancheck/internal/domain"
	"github.com/davidbz/tenancheck/internal/fingerprint"
	"github.com/davidbz/tenancheck/internal/observability"
)

const (
	providerName = "echo"
	modelName    = "echo-lease-1"

	maxScore = 100
	idLength = 16
)

// offlinePricing is zero because analyses never leave the process.
var offlinePricing = domain.PricingConfig{}

// document is what checks inspect: key phrases carry the money terms,
// the normalized text carries everything else.
type document struct {
	jurisdiction string
	phrases      []string
	text         string
}

// check flags an issue when a document lacks an expected term.
type check struct {
	applies func(doc document) bool
	present func(doc document) bool
	penalty int
	issue   domain.Issue
}

var checks = []check{
	{
		applies: func(doc document) bool { return hasPrefix(doc.phrases, "deposit") },
		present: func(doc document) bool {
			return strings.Contains(doc.text, "deposit scheme") || strings.Contains(doc.text, "deposit protection")
		},
		penalty: 30,
		issue: domain.Issue{
			Category:       "deposit",
			Severity:       domain.SeverityHigh,
			Title:          "Deposit protection not mentioned",
			Description:    "A deposit is taken but no tenancy deposit scheme is named.",
			Recommendation: "Protect the deposit in an authorised scheme within 30 days and state the scheme.",
		},
	},
	{
		present: func(doc document) bool { return hasPrefix(doc.phrases, "rent") },
		penalty: 15,
		issue: domain.Issue{
			Category:       "rent",
			Severity:       domain.SeverityMedium,
			Title:          "Rent amount not stated",
			Description:    "No rent figure was found in the agreement.",
			Recommendation: "State the rent amount and payment frequency.",
		},
	},
	{
		present: func(doc document) bool { return strings.Contains(doc.text, "gas safety") },
		penalty: 15,
		issue: domain.Issue{
			Category:       "safety",
			Severity:       domain.SeverityMedium,
			Title:          "Gas safety certificate not mentioned",
			Description:    "The agreement does not refer to a gas safety record.",
			Recommendation: "Provide the current gas safety record before move-in.",
		},
	},
	{
		present: func(doc document) bool { return strings.Contains(doc.text, "energy performance certificate") },
		penalty: 10,
		issue: domain.Issue{
			Category:       "safety",
			Severity:       domain.SeverityLow,
			Title:          "Energy performance certificate not mentioned",
			Description:    "The agreement does not refer to an EPC.",
			Recommendation: "Provide the EPC to the tenant.",
		},
	},
	{
		applies: func(doc document) bool { return doc.jurisdiction == "england" },
		present: func(doc document) bool { return strings.Contains(doc.text, "right to rent") },
		penalty: 10,
		issue: domain.Issue{
			Category:       "compliance",
			Severity:       domain.SeverityLow,
			Title:          "Right to rent checks not mentioned",
			Description:    "Lettings in England require right to rent checks.",
			Recommendation: "Record that right to rent checks were carried out.",
		},
	},
}

// Provider implements the domain.Analyzer interface for offline review.
type Provider struct {
	name            string
	supportedModels map[string]bool
}

// NewProvider creates a new echo analyzer.
// No configuration is required as this analyzer operates entirely in-memory.
func NewProvider() *Provider {
	return &Provider{
		name: providerName,
		supportedModels: map[string]bool{
			modelName: true,
		},
	}
}

// Analyze reviews the document and returns a deterministic result.
func (p *Provider) Analyze(ctx context.Context, req *domain.AnalysisRequest) (*domain.AnalysisResult, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	if !p.supportedModels[req.Model] {
		return nil, fmt.Errorf("model %s is not supported by echo analyzer", req.Model)
	}

	logger := observability.FromContext(ctx)
	logger.Debug("reviewing document offline")

	fp := fingerprint.Generate(req.Content, req.Jurisdiction, req.DocumentType)
	doc := document{
		jurisdiction: strings.ToLower(req.Jurisdiction),
		phrases:      fp.KeyPhrases,
		text:         fingerprint.Normalize(req.Content),
	}

	issues := make([]domain.Issue, 0, len(checks))
	score := maxScore
	for _, c := range checks {
		if c.applies != nil && !c.applies(doc) {
			continue
		}
		if c.present(doc) {
			continue
		}
		issues = append(issues, c.issue)
		score -= c.penalty
	}

	summary := buildSummary(req, fp, len(issues))

	// Simple word-based token counting
	promptTokens := countTokens(req.Content)
	completionTokens := countTokens(summary)
	for _, issue := range issues {
		completionTokens += countTokens(issue.Title) + countTokens(issue.Description)
	}

	logger.Debug("offline review completed",
		observability.Int("key_phrases", len(fp.KeyPhrases)),
		observability.Int("issues", len(issues)),
		observability.Int("compliance_score", score))

	return &domain.AnalysisResult{
		ID:              "echo-" + fp.ContentHash[:idLength],
		Model:           req.Model,
		Provider:        p.name,
		Summary:         summary,
		ComplianceScore: max(score, 0),
		Issues:          issues,
		Usage: domain.Usage{
			PromptTokens:     promptTokens,
			CompletionTokens: completionTokens,
			TotalTokens:      promptTokens + completionTokens,
			Cost:             0.0,
		},
		CompletedAt: time.Now(),
	}, nil
}

// Name returns the analyzer identifier.
func (p *Provider) Name() string {
	return p.name
}

// IsModelSupported checks if the analyzer supports the given model.
func (p *Provider) IsModelSupported(_ context.Context, model string) bool {
	return p.supportedModels[model]
}

// SupportedModels returns a list of all models this analyzer supports.
func (p *Provider) SupportedModels(_ context.Context) []string {
	models := make([]string, 0, len(p.supportedModels))
	for model := range p.supportedModels {
		models = append(models, model)
	}
	return models
}

func buildSummary(req *domain.AnalysisRequest, fp fingerprint.Fingerprint, issues int) string {
	jurisdiction := req.Jurisdiction
	if jurisdiction == "" {
		jurisdiction = "unspecified jurisdiction"
	}
	documentType := req.DocumentType
	if documentType == "" {
		documentType = "tenancy"
	}

	return fmt.Sprintf("Offline review of a %s %s agreement (%s): %d key terms found, %d issues flagged.",
		jurisdiction, documentType, fingerprint.SizeClass(fp.Length), len(fp.KeyPhrases), issues)
}

func hasPrefix(phrases []string, prefix string) bool {
	for _, phrase := range phrases {
		if strings.HasPrefix(phrase, prefix) {
			return true
		}
	}
	return false
}

// countTokens performs simple word-based token counting.
func countTokens(content string) int {
	return len(strings.Fields(content))
}

// RegisterPricing records the echo model as explicitly free, so its analyses
// are priced rather than reported as unpriced.
func RegisterPricing(ctx context.Context, registry domain.PricingRegistry) error {
	if err := registry.RegisterPricing(ctx, modelName, offlinePricing); err != nil {
		return fmt.Errorf("failed to register echo pricing: %w", err)
	}
	return nil
}
