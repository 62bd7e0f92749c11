package openai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/davidbz/tenancheck/internal/domain"
)

const systemPrompt = `You review residential tenancy agreements under UK housing law.
Reply with a single JSON object and nothing else:
{
  "summary": string,
  "compliance_score": integer from 0 to 100,
  "issues": [
    {
      "category": string,
      "severity": "low" | "medium" | "high",
      "title": string,
      "description": string,
      "recommendation": string
    }
  ]
}
Apply the rules of the stated jurisdiction. Flag unlawful fees, unprotected deposits,
missing statutory information and unfair terms.`

// verdict is the JSON shape requested in systemPrompt.
type verdict struct {
	Summary         string         `json:"summary"`
	ComplianceScore int            `json:"compliance_score"`
	Issues          []domain.Issue `json:"issues"`
}

func userPrompt(req *domain.AnalysisRequest) string {
	return fmt.Sprintf("Jurisdiction: %s\nDocument type: %s\n\n%s",
		orUnspecified(req.Jurisdiction), orUnspecified(req.DocumentType), req.Content)
}

func parseVerdict(content string) (verdict, error) {
	var v verdict
	if err := json.Unmarshal([]byte(content), &v); err != nil {
		return verdict{}, fmt.Errorf("failed to parse analysis: %w", err)
	}

	v.ComplianceScore = min(max(v.ComplianceScore, 0), 100)

	if v.Issues == nil {
		v.Issues = []domain.Issue{}
	}
	for i := range v.Issues {
		v.Issues[i].Severity = normalizeSeverity(v.Issues[i].Severity)
	}

	return v, nil
}

func normalizeSeverity(severity domain.Severity) domain.Severity {
	switch domain.Severity(strings.ToLower(strings.TrimSpace(string(severity)))) {
	case domain.SeverityLow:
		return domain.SeverityLow
	case domain.SeverityHigh:
		return domain.SeverityHigh
	default:
		return domain.SeverityMedium
	}
}

func orUnspecified(value string) string {
	if value == "" {
		return "unspecified"
	}
	return value
}
