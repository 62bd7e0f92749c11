package domain

import (
	"context"
	"errors"
)

const tokensPerPricingUnit = 1000.0

// ErrPricingNotFound indicates no pricing is registered for a model.
var ErrPricingNotFound = errors.New("pricing not found")

// PricingConfig is the token price of one analysis model, in USD per 1K tokens.
type PricingConfig struct {
	InputCostPer1K  float64
	OutputCostPer1K float64
}

// Cost prices the token usage of one analysis.
func (p PricingConfig) Cost(usage Usage) float64 {
	return float64(usage.PromptTokens)/tokensPerPricingUnit*p.InputCostPer1K +
		float64(usage.CompletionTokens)/tokensPerPricingUnit*p.OutputCostPer1K
}

// CostCalculator prices the usage reported by an analyzer.
type CostCalculator interface {
	// Calculate returns the USD cost of usage on model. Unpriced models cost 0.
	Calculate(ctx context.Context, model string, usage Usage) (float64, error)
}

// PricingRegistry maintains pricing information for analysis models.
type PricingRegistry interface {
	// GetPricing returns the pricing of a model or ErrPricingNotFound.
	GetPricing(ctx context.Context, model string) (PricingConfig, error)

	// RegisterPricing adds or replaces the pricing of a model.
	RegisterPricing(ctx context.Context, model string, config PricingConfig) error
}
