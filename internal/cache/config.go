package cache

import (
	"errors"
	"fmt"
	"time"
)

const (
	defaultMaxEntries          = 1000
	defaultTTL                 = 24 * time.Hour
	defaultSimilarityThreshold = 0.85
	defaultSweepInterval       = time.Hour
)

// Config contains analysis cache settings.
type Config struct {
	Enabled             bool          `env:"CACHE_ENABLED"              envDefault:"true"`
	MaxEntries          int           `env:"CACHE_MAX_ENTRIES"          envDefault:"1000"`
	DefaultTTL          time.Duration `env:"CACHE_DEFAULT_TTL"          envDefault:"24h"`
	SimilarityThreshold float64       `env:"CACHE_SIMILARITY_THRESHOLD" envDefault:"0.85"`
	SweepInterval       time.Duration `env:"CACHE_SWEEP_INTERVAL"       envDefault:"1h"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Enabled:             true,
		MaxEntries:          defaultMaxEntries,
		DefaultTTL:          defaultTTL,
		SimilarityThreshold: defaultSimilarityThreshold,
		SweepInterval:       defaultSweepInterval,
	}
}

// Validate checks that the configuration can back a cache.
func (c Config) Validate() error {
	if c.MaxEntries <= 0 {
		return fmt.Errorf("max entries must be positive, got %d", c.MaxEntries)
	}

	if c.DefaultTTL <= 0 {
		return errors.New("default ttl must be positive")
	}

	if c.SimilarityThreshold <= 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("similarity threshold must be in (0, 1], got %v", c.SimilarityThreshold)
	}

	if c.SweepInterval <= 0 {
		return errors.New("sweep interval must be positive")
	}

	return nil
}
