package domain

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/davidbz/tenancheck/internal/observability"
)

// costPrecision rounds costs to micro-dollars so cached and fresh results
// report identical figures.
const costPrecision = 1e6

// StandardCostCalculator prices analyses from the pricing registry.
type StandardCostCalculator struct {
	pricingRegistry PricingRegistry
}

// NewStandardCostCalculator creates a new cost calculator.
func NewStandardCostCalculator(registry PricingRegistry) *StandardCostCalculator {
	return &StandardCostCalculator{
		pricingRegistry: registry,
	}
}

// Calculate computes the cost of an analysis from its token usage. A model
// without registered pricing costs 0 rather than failing the analysis.
func (c *StandardCostCalculator) Calculate(ctx context.Context, model string, usage Usage) (float64, error) {
	if model == "" {
		return 0, errors.New("model cannot be empty")
	}

	pricing, err := c.pricingRegistry.GetPricing(ctx, model)
	if errors.Is(err, ErrPricingNotFound) {
		observability.FromContext(ctx).Debug("no pricing registered, cost reported as zero",
			observability.String("model", model))
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get pricing: %w", err)
	}

	return math.Round(pricing.Cost(usage)*costPrecision) / costPrecision, nil
}
