// Package cache implements the in-process analysis cache that sits in front of
// expensive document analyses. Entries are indexed by an exact content key and
// can also be served to near-duplicate documents of the same partition.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/simplelru"

	"github.com/davidbz/tenancheck/internal/fingerprint"
	"github.com/davidbz/tenancheck/internal/observability"
)

// ErrMiss indicates no cached entry was found.
var ErrMiss = errors.New("cache miss")

// Event types published by the cache.
const (
	EventEvicted = "cache.evicted"
	EventSwept   = "cache.swept"
	EventCleared = "cache.cleared"
)

// Match describes how a hit was found.
type Match string

const (
	// MatchExact is a hit on the exact content key.
	MatchExact Match = "exact"
	// MatchSimilar is a hit on a near-duplicate entry of the same partition.
	MatchSimilar Match = "similar"
)

// EventPublisher publishes cache lifecycle events.
type EventPublisher interface {
	// Publish publishes an event with the given type and data.
	Publish(ctx context.Context, eventType string, data map[string]interface{})
}

// Hit is a successful lookup. Payload is a private copy owned by the caller.
type Hit[T any] struct {
	Payload     T
	Key         Key
	Match       Match
	Similarity  float64
	CachedAt    time.Time
	AccessCount uint64
}

// counters are cumulative since construction or the last Clear.
type counters struct {
	exactHits   uint64
	similarHits uint64
	misses      uint64
	sets        uint64
	evictions   uint64
	expirations uint64
}

// snapshot is the part of an entry copied out under the lock.
type snapshot struct {
	key         Key
	payload     []byte
	match       Match
	similarity  float64
	createdAt   time.Time
	accessCount uint64
}

// Cache is a bounded, TTL-aware cache of analysis payloads of type T.
// It is safe for concurrent use.
type Cache[T any] struct {
	mu         sync.Mutex
	cfg        Config
	entries    *simplelru.LRU[Key, *entry]
	partitions map[fingerprint.Partition]map[Key]struct{}
	counters   counters
	publisher  EventPublisher
	now        func() time.Time

	sweepMu   sync.Mutex
	stopSweep context.CancelFunc
	sweepDone chan struct{}
}

// New creates a cache. The publisher may be nil.
func New[T any](cfg Config, publisher EventPublisher) (*Cache[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cache config: %w", err)
	}

	c := &Cache[T]{
		cfg:        cfg,
		partitions: make(map[fingerprint.Partition]map[Key]struct{}),
		publisher:  publisher,
		now:        time.Now,
	}

	entries, err := simplelru.NewLRU[Key, *entry](cfg.MaxEntries, c.unindex)
	if err != nil {
		return nil, fmt.Errorf("failed to create lru: %w", err)
	}
	c.entries = entries

	return c, nil
}

// Get returns the payload cached for content, or for a sufficiently similar
// document of the same category and sub-category. It returns ErrMiss when
// nothing qualifies.
func (c *Cache[T]) Get(ctx context.Context, content, category, subCategory string) (*Hit[T], error) {
	logger := observability.FromContext(ctx)

	fp := fingerprint.Generate(content, category, subCategory)
	key := KeyOf(fp)

	found, ok := c.lookup(fp, key)
	if !ok {
		logger.Debug("analysis cache miss",
			observability.String("cache_key", key.String()))
		return nil, ErrMiss
	}

	var payload T
	if err := json.Unmarshal(found.payload, &payload); err != nil {
		logger.Error("failed to unmarshal cached payload",
			observability.String("cache_key", found.key.String()),
			observability.Error(err))
		return nil, fmt.Errorf("failed to unmarshal cached payload: %w", err)
	}

	logger.Debug("analysis cache hit",
		observability.String("cache_key", found.key.String()),
		observability.String("match", string(found.match)),
		observability.Float64("similarity", found.similarity))

	return &Hit[T]{
		Payload:     payload,
		Key:         found.key,
		Match:       found.match,
		Similarity:  found.similarity,
		CachedAt:    found.createdAt,
		AccessCount: found.accessCount,
	}, nil
}

// Set stores payload for content. A ttl <= 0 uses the configured default.
// An existing entry with the same key is replaced.
func (c *Cache[T]) Set(
	ctx context.Context,
	content, category, subCategory string,
	payload T,
	ttl time.Duration,
) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if ttl <= 0 {
		ttl = c.cfg.DefaultTTL
	}

	fp := fingerprint.Generate(content, category, subCategory)

	c.mu.Lock()
	e := newEntry(fp, data, c.now(), ttl)

	var evicted *entry
	if !c.entries.Contains(e.key) && c.entries.Len() >= c.cfg.MaxEntries {
		evicted = c.evictOldest(ctx)
	}

	c.entries.Add(e.key, e)
	c.index(e.key)
	c.counters.sets++
	c.mu.Unlock()

	if evicted != nil {
		c.publish(ctx, EventEvicted, map[string]interface{}{
			"cache_key":    evicted.key.String(),
			"access_count": evicted.accessCount,
			"idle":         e.createdAt.Sub(evicted.lastAccessedAt).String(),
		})
	}

	observability.FromContext(ctx).Debug("analysis cached",
		observability.String("cache_key", e.key.String()),
		observability.Int("payload_bytes", len(data)),
		observability.Duration("ttl", ttl))

	return nil
}

// Clear drops every entry and resets the cumulative counters.
func (c *Cache[T]) Clear(ctx context.Context) {
	c.mu.Lock()
	dropped := c.entries.Len()
	c.entries.Purge()
	c.partitions = make(map[fingerprint.Partition]map[Key]struct{})
	c.counters = counters{}
	c.mu.Unlock()

	c.publish(ctx, EventCleared, map[string]interface{}{
		"dropped": dropped,
	})
}

// Len returns the number of entries physically held, expired or not.
func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.entries.Len()
}

// lookup resolves key exactly, then falls back to the similarity scan.
func (c *Cache[T]) lookup(fp fingerprint.Fingerprint, key Key) (snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()

	if e, ok := c.entries.Peek(key); ok {
		if !e.expired(now) {
			c.promote(e, now)
			c.counters.exactHits++
			return takeSnapshot(e, MatchExact, 1), true
		}
		c.entries.Remove(key)
		c.counters.expirations++
	}

	if best, score := c.findSimilar(fp, now); best != nil {
		c.promote(best, now)
		c.counters.similarHits++
		return takeSnapshot(best, MatchSimilar, score), true
	}

	c.counters.misses++
	return snapshot{}, false
}

// findSimilar returns the best-scoring live entry of fp's partition above the threshold.
func (c *Cache[T]) findSimilar(fp fingerprint.Fingerprint, now time.Time) (*entry, float64) {
	var (
		best      *entry
		bestScore float64
	)

	for key := range c.partitions[fp.Partition()] {
		e, ok := c.entries.Peek(key)
		if !ok || e.expired(now) {
			continue
		}

		score, candidate := similarity(fp, e, now)
		if !candidate || score <= bestScore {
			continue
		}
		best, bestScore = e, score
	}

	if best == nil || bestScore <= c.cfg.SimilarityThreshold {
		return nil, 0
	}

	return best, bestScore
}

func (c *Cache[T]) promote(e *entry, now time.Time) {
	c.entries.Get(e.key)
	e.touch(now)
}

// evictOldest removes the least recently used entry. Callers hold mu.
func (c *Cache[T]) evictOldest(ctx context.Context) *entry {
	_, victim, ok := c.entries.RemoveOldest()
	if !ok {
		observability.FromContext(ctx).Warn("eviction found no candidate at capacity",
			observability.Int("entries", c.entries.Len()),
			observability.Int("max_entries", c.cfg.MaxEntries))
		return nil
	}

	c.counters.evictions++
	return victim
}

func (c *Cache[T]) index(key Key) {
	partition := key.Partition()
	keys, ok := c.partitions[partition]
	if !ok {
		keys = make(map[Key]struct{})
		c.partitions[partition] = keys
	}
	keys[key] = struct{}{}
}

// unindex is the LRU removal callback; it runs under mu.
func (c *Cache[T]) unindex(key Key, _ *entry) {
	partition := key.Partition()
	keys, ok := c.partitions[partition]
	if !ok {
		return
	}

	delete(keys, key)
	if len(keys) == 0 {
		delete(c.partitions, partition)
	}
}

func (c *Cache[T]) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if c.publisher == nil {
		return
	}
	c.publisher.Publish(ctx, eventType, data)
}

func takeSnapshot(e *entry, match Match, score float64) snapshot {
	return snapshot{
		key:         e.key,
		payload:     e.payload,
		match:       match,
		similarity:  score,
		createdAt:   e.createdAt,
		accessCount: e.accessCount,
	}
}
