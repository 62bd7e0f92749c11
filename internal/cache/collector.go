package cache

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// StatsSource provides cache statistics.
type StatsSource interface {
	Stats(ctx context.Context) Stats
}

// Collector exports cache statistics as Prometheus metrics.
type Collector struct {
	source StatsSource

	entries       *prometheus.Desc
	maxEntries    *prometheus.Desc
	hits          *prometheus.Desc
	misses        *prometheus.Desc
	hitRatio      *prometheus.Desc
	sets          *prometheus.Desc
	evictions     *prometheus.Desc
	expirations   *prometheus.Desc
	memoryBytes   *prometheus.Desc
	categoryCount *prometheus.Desc
	typeCount     *prometheus.Desc
}

// NewCollector creates a collector reading from source on every scrape.
func NewCollector(namespace string, source StatsSource) *Collector {
	name := func(metric string) string {
		return prometheus.BuildFQName(namespace, "cache", metric)
	}

	return &Collector{
		source:        source,
		entries:       prometheus.NewDesc(name("entries"), "Live entries in the analysis cache.", nil, nil),
		maxEntries:    prometheus.NewDesc(name("max_entries"), "Configured entry capacity.", nil, nil),
		hits:          prometheus.NewDesc(name("hits_total"), "Cache hits by match type.", []string{"match"}, nil),
		misses:        prometheus.NewDesc(name("misses_total"), "Cache misses.", nil, nil),
		hitRatio:      prometheus.NewDesc(name("hit_ratio"), "Hits divided by lookups.", nil, nil),
		sets:          prometheus.NewDesc(name("sets_total"), "Entries written.", nil, nil),
		evictions:     prometheus.NewDesc(name("evictions_total"), "Entries evicted at capacity.", nil, nil),
		expirations:   prometheus.NewDesc(name("expirations_total"), "Entries removed after their ttl.", nil, nil),
		memoryBytes:   prometheus.NewDesc(name("memory_bytes"), "Approximate memory held by live entries.", nil, nil),
		categoryCount: prometheus.NewDesc(name("category_entries"), "Live entries per category.", []string{"category"}, nil),
		typeCount:     prometheus.NewDesc(name("sub_category_entries"), "Live entries per sub-category.", []string{"sub_category"}, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entries
	ch <- c.maxEntries
	ch <- c.hits
	ch <- c.misses
	ch <- c.hitRatio
	ch <- c.sets
	ch <- c.evictions
	ch <- c.expirations
	ch <- c.memoryBytes
	ch <- c.categoryCount
	ch <- c.typeCount
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.source.Stats(context.Background())

	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(stats.TotalEntries))
	ch <- prometheus.MustNewConstMetric(c.maxEntries, prometheus.GaugeValue, float64(stats.MaxEntries))
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(stats.ExactHits), string(MatchExact))
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(stats.SimilarHits), string(MatchSimilar))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(stats.TotalMisses))
	ch <- prometheus.MustNewConstMetric(c.hitRatio, prometheus.GaugeValue, stats.HitRate)
	ch <- prometheus.MustNewConstMetric(c.sets, prometheus.CounterValue, float64(stats.Sets))
	ch <- prometheus.MustNewConstMetric(c.evictions, prometheus.CounterValue, float64(stats.Evictions))
	ch <- prometheus.MustNewConstMetric(c.expirations, prometheus.CounterValue, float64(stats.Expirations))
	ch <- prometheus.MustNewConstMetric(c.memoryBytes, prometheus.GaugeValue, float64(stats.ApproxMemoryBytes))

	for category, count := range stats.Categories {
		ch <- prometheus.MustNewConstMetric(c.categoryCount, prometheus.GaugeValue, float64(count), category)
	}
	for subCategory, count := range stats.SubCategories {
		ch <- prometheus.MustNewConstMetric(c.typeCount, prometheus.GaugeValue, float64(count), subCategory)
	}
}
