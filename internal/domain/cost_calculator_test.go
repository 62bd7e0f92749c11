package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/tenancheck/internal/domain"
)

type failingPricingRegistry struct {
	domain.PricingRegistry
}

func (failingPricingRegistry) GetPricing(context.Context, string) (domain.PricingConfig, error) {
	return domain.PricingConfig{}, errors.New("pricing backend unavailable")
}

func TestStandardCostCalculator_Calculate(t *testing.T) {
	ctx := context.Background()
	registry := domain.NewInMemoryPricingRegistry()

	require.NoError(t, registry.RegisterPricing(ctx, "test-model", domain.PricingConfig{
		InputCostPer1K:  0.01,
		OutputCostPer1K: 0.02,
	}))

	calculator := domain.NewStandardCostCalculator(registry)

	tests := []struct {
		name         string
		model        string
		usage        domain.Usage
		expectedCost float64
		expectError  bool
	}{
		{
			name:         "typical lease analysis",
			model:        "test-model",
			usage:        domain.Usage{PromptTokens: 1000, CompletionTokens: 500},
			expectedCost: 0.02,
		},
		{
			name:         "unpriced model is free",
			model:        "unknown-model",
			usage:        domain.Usage{PromptTokens: 1000, CompletionTokens: 500},
			expectedCost: 0,
		},
		{
			name:        "empty model",
			model:       "",
			expectError: true,
		},
		{
			name:         "zero tokens",
			model:        "test-model",
			expectedCost: 0,
		},
		{
			name:         "short clause",
			model:        "test-model",
			usage:        domain.Usage{PromptTokens: 250, CompletionTokens: 100},
			expectedCost: 0.0045,
		},
		{
			name:         "rounded to micro-dollars",
			model:        "test-model",
			usage:        domain.Usage{PromptTokens: 1, CompletionTokens: 1},
			expectedCost: 0.00003,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost, err := calculator.Calculate(ctx, tt.model, tt.usage)

			if tt.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.InDelta(t, tt.expectedCost, cost, 1e-9)
		})
	}
}

func TestStandardCostCalculator_RegistryFailure(t *testing.T) {
	calculator := domain.NewStandardCostCalculator(failingPricingRegistry{})

	_, err := calculator.Calculate(context.Background(), "test-model", domain.Usage{PromptTokens: 10})
	require.ErrorContains(t, err, "pricing backend unavailable")
}

func TestPricingConfig_Cost(t *testing.T) {
	pricing := domain.PricingConfig{InputCostPer1K: 0.15, OutputCostPer1K: 0.6}

	require.InDelta(t, 0.0, pricing.Cost(domain.Usage{}), 1e-12)
	require.InDelta(t, 0.75, pricing.Cost(domain.Usage{PromptTokens: 1000, CompletionTokens: 1000}), 1e-12)
	require.InDelta(t, 0.0006, pricing.Cost(domain.Usage{PromptTokens: 4}), 1e-12)
}

func TestInMemoryPricingRegistry(t *testing.T) {
	ctx := context.Background()
	registry := domain.NewInMemoryPricingRegistry()

	t.Run("register and retrieve", func(t *testing.T) {
		pricing := domain.PricingConfig{InputCostPer1K: 0.03, OutputCostPer1K: 0.06}
		require.NoError(t, registry.RegisterPricing(ctx, "gpt-4", pricing))

		retrieved, err := registry.GetPricing(ctx, "gpt-4")
		require.NoError(t, err)
		require.Equal(t, pricing, retrieved)
	})

	t.Run("unknown model", func(t *testing.T) {
		_, err := registry.GetPricing(ctx, "non-existent-model")
		require.ErrorIs(t, err, domain.ErrPricingNotFound)
		require.ErrorContains(t, err, "non-existent-model")
	})

	t.Run("empty model", func(t *testing.T) {
		err := registry.RegisterPricing(ctx, "", domain.PricingConfig{InputCostPer1K: 0.01})
		require.Error(t, err)
	})

	t.Run("negative price", func(t *testing.T) {
		err := registry.RegisterPricing(ctx, "refund-model", domain.PricingConfig{OutputCostPer1K: -0.01})
		require.Error(t, err)

		_, err = registry.GetPricing(ctx, "refund-model")
		require.ErrorIs(t, err, domain.ErrPricingNotFound)
	})

	t.Run("free model", func(t *testing.T) {
		require.NoError(t, registry.RegisterPricing(ctx, "free-model", domain.PricingConfig{}))
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, registry.RegisterPricing(ctx, "test-model", domain.PricingConfig{InputCostPer1K: 0.01, OutputCostPer1K: 0.02}))
		require.NoError(t, registry.RegisterPricing(ctx, "test-model", domain.PricingConfig{InputCostPer1K: 0.05, OutputCostPer1K: 0.10}))

		retrieved, err := registry.GetPricing(ctx, "test-model")
		require.NoError(t, err)
		require.InDelta(t, 0.05, retrieved.InputCostPer1K, 1e-12)
		require.InDelta(t, 0.10, retrieved.OutputCostPer1K, 1e-12)
	})
}
