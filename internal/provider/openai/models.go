package openai

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/davidbz/tenancheck/internal/domain"
)

// catalog lists the chat models able to return a JSON-object verdict, with
// their list price in USD per 1K tokens.
var catalog = map[string]domain.PricingConfig{
	"gpt-4":         {InputCostPer1K: 0.03, OutputCostPer1K: 0.06},
	"gpt-4-turbo":   {InputCostPer1K: 0.01, OutputCostPer1K: 0.03},
	"gpt-4o":        {InputCostPer1K: 0.0025, OutputCostPer1K: 0.01},
	"gpt-4o-mini":   {InputCostPer1K: 0.00015, OutputCostPer1K: 0.0006},
	"gpt-3.5-turbo": {InputCostPer1K: 0.0005, OutputCostPer1K: 0.0015},
}

// SupportedModels returns the catalog models in sorted order.
func SupportedModels() []string {
	return slices.Sorted(maps.Keys(catalog))
}

// RegisterPricing registers the catalog prices with the registry.
func RegisterPricing(ctx context.Context, registry domain.PricingRegistry) error {
	for _, model := range SupportedModels() {
		if err := registry.RegisterPricing(ctx, model, catalog[model]); err != nil {
			return fmt.Errorf("failed to register pricing for model %s: %w", model, err)
		}
	}
	return nil
}

func buildModelSet(models []string) map[string]struct{} {
	set := make(map[string]struct{}, len(models))
	for _, model := range models {
		set[model] = struct{}{}
	}
	return set
}
