package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/davidbz/tenancheck/internal/cache"
	"github.com/davidbz/tenancheck/internal/config"
	"github.com/davidbz/tenancheck/internal/domain"
	"github.com/davidbz/tenancheck/internal/httpserver"
	"github.com/davidbz/tenancheck/internal/httpserver/middleware"
	"github.com/davidbz/tenancheck/internal/observability"
	"github.com/davidbz/tenancheck/internal/provider/echo"
	"github.com/davidbz/tenancheck/internal/provider/openai"
	"github.com/davidbz/tenancheck/internal/provider/registry"
)

const metricsNamespace = "tenancheck"

// ErrProviderNotConfigured indicates that a provider is not configured and should be skipped.
var ErrProviderNotConfigured = errors.New("provider not configured")

func main() {
	container := buildContainer()

	err := container.Invoke(func(
		server *httpserver.Server,
		analysisCache *cache.Cache[domain.AnalysisResult],
		cacheCfg *cache.Config,
		serverCfg *config.ServerConfig,
	) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if cacheCfg.Enabled {
			analysisCache.Start(ctx)
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Start()
		}()

		select {
		case err := <-errCh:
			_ = analysisCache.Close()
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(serverCfg.ShutdownTimeout)*time.Second)
		defer cancel()

		shutdownErr := server.Shutdown(shutdownCtx)
		closeErr := analysisCache.Close()
		return errors.Join(shutdownErr, closeErr, <-errCh)
	})
	if err != nil {
		log.Fatalf("Failed to run application: %v", err)
	}
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}
	if err := container.Provide(func(logger *zap.Logger) cache.EventPublisher {
		return observability.NewEventBus(logger)
	}); err != nil {
		log.Fatalf("Failed to provide event bus: %v", err)
	}
	if err := container.Invoke(func(*zap.Logger) {}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Analysis Cache
	if err := container.Provide(func(
		cfg *cache.Config,
		publisher cache.EventPublisher,
	) (*cache.Cache[domain.AnalysisResult], error) {
		return cache.New[domain.AnalysisResult](*cfg, publisher)
	}); err != nil {
		log.Fatalf("Failed to provide analysis cache: %v", err)
	}
	if err := container.Provide(func(
		cfg *cache.Config,
		analysisCache *cache.Cache[domain.AnalysisResult],
	) domain.AnalysisCache {
		if !cfg.Enabled {
			return nil
		}
		return analysisCache
	}); err != nil {
		log.Fatalf("Failed to provide cache port: %v", err)
	}

	// Metrics
	if err := container.Provide(func(analysisCache *cache.Cache[domain.AnalysisResult]) (*prometheus.Registry, error) {
		metrics := prometheus.NewRegistry()
		if err := metrics.Register(collectors.NewGoCollector()); err != nil {
			return nil, fmt.Errorf("failed to register go collector: %w", err)
		}
		if err := metrics.Register(cache.NewCollector(metricsNamespace, analysisCache)); err != nil {
			return nil, fmt.Errorf("failed to register cache collector: %w", err)
		}
		return metrics, nil
	}); err != nil {
		log.Fatalf("Failed to provide metrics registry: %v", err)
	}

	// Analyzer Registry
	if err := container.Provide(func() domain.AnalyzerRegistry {
		return registry.NewRegistry()
	}); err != nil {
		log.Fatalf("Failed to provide registry: %v", err)
	}

	// Pricing
	if err := container.Provide(func() domain.PricingRegistry {
		return domain.NewInMemoryPricingRegistry()
	}); err != nil {
		log.Fatalf("Failed to provide pricing registry: %v", err)
	}
	if err := container.Provide(func(pricing domain.PricingRegistry) domain.CostCalculator {
		return domain.NewStandardCostCalculator(pricing)
	}); err != nil {
		log.Fatalf("Failed to provide cost calculator: %v", err)
	}

	// OpenAI Analyzer
	if err := container.Provide(func(cfg *openai.Config) (*openai.Provider, error) {
		if cfg.APIKey == "" {
			return nil, ErrProviderNotConfigured
		}
		return openai.NewProvider(*cfg)
	}); err != nil {
		log.Fatalf("Failed to provide OpenAI analyzer: %v", err)
	}

	// Register analyzers and their pricing (invoked for side effects)
	if err := container.Invoke(func(
		reg domain.AnalyzerRegistry,
		pricing domain.PricingRegistry,
	) error {
		ctx := context.Background()

		if err := reg.Register(ctx, echo.NewProvider()); err != nil {
			return fmt.Errorf("failed to register echo analyzer: %w", err)
		}
		return echo.RegisterPricing(ctx, pricing)
	}); err != nil {
		log.Fatalf("Failed to register analyzers: %v", err)
	}

	if err := container.Invoke(func(
		reg domain.AnalyzerRegistry,
		pricing domain.PricingRegistry,
		openaiProvider *openai.Provider,
	) error {
		ctx := context.Background()

		if err := reg.Register(ctx, openaiProvider); err != nil {
			return fmt.Errorf("failed to register OpenAI analyzer: %w", err)
		}
		return openai.RegisterPricing(ctx, pricing)
	}); err != nil {
		// Ignore ErrProviderNotConfigured as it's expected for optional analyzers
		if !errors.Is(err, ErrProviderNotConfigured) {
			log.Fatalf("Failed to register OpenAI analyzer: %v", err)
		}
		observability.FromContext(context.Background()).Info("OpenAI analyzer not configured, serving offline analyzer only")
	}

	// Domain Services
	if err := container.Provide(domain.NewAnalysisService); err != nil {
		log.Fatalf("Failed to provide analysis service: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(httpserver.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(httpserver.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}
