package cache

import "context"

// Stats is a point-in-time view of the cache. Counters are cumulative since
// construction or the last Clear; entry counts and breakdowns cover live
// (unexpired) entries only.
type Stats struct {
	TotalEntries      int            `json:"total_entries"`
	MaxEntries        int            `json:"max_entries"`
	HitRate           float64        `json:"hit_rate"`
	TotalHits         uint64         `json:"total_hits"`
	ExactHits         uint64         `json:"exact_hits"`
	SimilarHits       uint64         `json:"similar_hits"`
	TotalMisses       uint64         `json:"total_misses"`
	Sets              uint64         `json:"sets"`
	Evictions         uint64         `json:"evictions"`
	Expirations       uint64         `json:"expirations"`
	ApproxMemoryBytes int64          `json:"approx_memory_bytes"`
	Categories        map[string]int `json:"categories"`
	SubCategories     map[string]int `json:"sub_categories"`
}

// Stats returns current statistics. It never fails; an empty cache yields zero values.
func (c *Cache[T]) Stats(_ context.Context) Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	stats := Stats{
		MaxEntries:    c.cfg.MaxEntries,
		ExactHits:     c.counters.exactHits,
		SimilarHits:   c.counters.similarHits,
		TotalHits:     c.counters.exactHits + c.counters.similarHits,
		TotalMisses:   c.counters.misses,
		Sets:          c.counters.sets,
		Evictions:     c.counters.evictions,
		Expirations:   c.counters.expirations,
		Categories:    make(map[string]int),
		SubCategories: make(map[string]int),
	}

	if requests := stats.TotalHits + stats.TotalMisses; requests > 0 {
		stats.HitRate = float64(stats.TotalHits) / float64(requests)
	}

	for _, key := range c.entries.Keys() {
		e, ok := c.entries.Peek(key)
		if !ok || e.expired(now) {
			continue
		}
		stats.TotalEntries++
		stats.ApproxMemoryBytes += e.size()
		stats.Categories[key.Category]++
		stats.SubCategories[key.SubCategory]++
	}

	return stats
}
