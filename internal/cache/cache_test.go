package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/tenancheck/internal/cache"
)

type analysis struct {
	Summary string   `json:"summary"`
	Score   int      `json:"score"`
	Issues  []string `json:"issues"`
}

func newCache(t *testing.T) *cache.Cache[analysis] {
	t.Helper()

	c, err := cache.New[analysis](cache.DefaultConfig(), nil)
	require.NoError(t, err)
	return c
}

func TestCache_ExactRoundTrip(t *testing.T) {
	c := newCache(t)
	ctx := context.Background()
	want := analysis{Summary: "compliant", Score: 92, Issues: []string{"missing gas certificate"}}

	require.NoError(t, c.Set(ctx, "Tenancy text", "england", "ast", want, 0))

	hit, err := c.Get(ctx, "Tenancy text", "england", "ast")
	require.NoError(t, err)
	require.Equal(t, want, hit.Payload)
	require.Equal(t, cache.MatchExact, hit.Match)
	require.InDelta(t, 1.0, hit.Similarity, 1e-9)
	require.Equal(t, uint64(2), hit.AccessCount)
	require.False(t, hit.CachedAt.IsZero())
	require.Equal(t, "england", hit.Key.Category)
	require.Equal(t, "ast", hit.Key.SubCategory)
}

func TestCache_NormalizedContentSharesKey(t *testing.T) {
	c := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "The rent is £900", "england", "ast", analysis{Summary: "x"}, 0))

	hit, err := c.Get(ctx, "  the RENT is\n£900  ", "england", "ast")
	require.NoError(t, err)
	require.Equal(t, cache.MatchExact, hit.Match)
}

func TestCache_PartitionIsolation(t *testing.T) {
	c := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "Tenancy text", "england", "ast", analysis{Summary: "england"}, 0))

	_, err := c.Get(ctx, "Tenancy text", "wales", "ast")
	require.ErrorIs(t, err, cache.ErrMiss)

	_, err = c.Get(ctx, "Tenancy text", "england", "licence")
	require.ErrorIs(t, err, cache.ErrMiss)

	require.NoError(t, c.Set(ctx, "Tenancy text", "wales", "ast", analysis{Summary: "wales"}, 0))

	hit, err := c.Get(ctx, "Tenancy text", "england", "ast")
	require.NoError(t, err)
	require.Equal(t, "england", hit.Payload.Summary)

	hit, err = c.Get(ctx, "Tenancy text", "wales", "ast")
	require.NoError(t, err)
	require.Equal(t, "wales", hit.Payload.Summary)
}

func TestCache_ExpiresAfterTTL(t *testing.T) {
	c := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "Tenancy text", "england", "ast", analysis{}, time.Millisecond))
	time.Sleep(10 * time.Millisecond)

	hit, err := c.Get(ctx, "Tenancy text", "england", "ast")
	require.ErrorIs(t, err, cache.ErrMiss)
	require.Nil(t, hit)
}

func TestCache_HitRateAccounting(t *testing.T) {
	c := newCache(t)
	ctx := context.Background()

	_, err := c.Get(ctx, "Tenancy text", "england", "ast")
	require.ErrorIs(t, err, cache.ErrMiss)

	require.NoError(t, c.Set(ctx, "Tenancy text", "england", "ast", analysis{}, 0))

	_, err = c.Get(ctx, "Tenancy text", "england", "ast")
	require.NoError(t, err)

	stats := c.Stats(ctx)
	require.InDelta(t, 0.5, stats.HitRate, 1e-9)
	require.Equal(t, uint64(1), stats.TotalHits)
	require.Equal(t, uint64(1), stats.TotalMisses)
	require.Equal(t, 1, stats.TotalEntries)
}

func TestCache_IdempotentOverwrite(t *testing.T) {
	c := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "Tenancy text", "england", "ast", analysis{Score: 1}, 0))
	require.NoError(t, c.Set(ctx, "Tenancy text", "england", "ast", analysis{Score: 2}, 0))

	hit, err := c.Get(ctx, "Tenancy text", "england", "ast")
	require.NoError(t, err)
	require.Equal(t, 2, hit.Payload.Score)
	require.Equal(t, uint64(2), hit.AccessCount, "overwrite resets usage")
	require.Equal(t, 1, c.Stats(ctx).TotalEntries)
}

func TestCache_PayloadIsCopied(t *testing.T) {
	c := newCache(t)
	ctx := context.Background()
	stored := analysis{Issues: []string{"original"}}

	require.NoError(t, c.Set(ctx, "Tenancy text", "england", "ast", stored, 0))
	stored.Issues[0] = "mutated after set"

	hit, err := c.Get(ctx, "Tenancy text", "england", "ast")
	require.NoError(t, err)
	require.Equal(t, []string{"original"}, hit.Payload.Issues)

	hit.Payload.Issues[0] = "mutated after get"

	again, err := c.Get(ctx, "Tenancy text", "england", "ast")
	require.NoError(t, err)
	require.Equal(t, []string{"original"}, again.Payload.Issues)
}

func TestCache_BlankContentIsCacheable(t *testing.T) {
	c := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "", "", "", analysis{Summary: "blank"}, 0))

	hit, err := c.Get(ctx, "   ", "", "")
	require.NoError(t, err)
	require.Equal(t, "blank", hit.Payload.Summary)
}

func TestCache_SetRejectsUnencodablePayload(t *testing.T) {
	c, err := cache.New[func()](cache.DefaultConfig(), nil)
	require.NoError(t, err)

	err = c.Set(context.Background(), "Tenancy text", "england", "ast", func() {}, 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to marshal payload")
	require.Zero(t, c.Len())
}
