package cache

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*TwoTier, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	c, err := New(16, client, slog.Default())
	require.NoError(t, err)
	return c, mr
}

func TestTwoTierSetGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	_, ok := c.Get(ctx, "signals:trending:7d:20:all")
	assert.False(t, ok)

	c.Set(ctx, "signals:trending:7d:20:all", []byte(`[{"entity":"Bitcoin"}]`), time.Minute)

	got, ok := c.Get(ctx, "signals:trending:7d:20:all")
	require.True(t, ok)
	assert.Equal(t, `[{"entity":"Bitcoin"}]`, string(got))
}

func TestTwoTierFallsThroughToRemote(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	// Populate only the distributed tier, as another process would.
	mr.Set("narratives:active:20:any", `[]`)
	mr.SetTTL("narratives:active:20:any", time.Minute)

	got, ok := c.Get(ctx, "narratives:active:20:any")
	require.True(t, ok)
	assert.Equal(t, `[]`, string(got))

	// The hit is backfilled locally and survives remote loss.
	mr.FlushAll()
	_, ok = c.Get(ctx, "narratives:active:20:any")
	assert.True(t, ok)
}

func TestTwoTierLocalExpiry(t *testing.T) {
	c, err := New(16, nil, slog.Default())
	require.NoError(t, err)
	ctx := context.Background()

	c.Set(ctx, "k", []byte("v"), 20*time.Millisecond)
	_, ok := c.Get(ctx, "k")
	assert.True(t, ok)

	time.Sleep(40 * time.Millisecond)
	_, ok = c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestTwoTierInvalidatePrefix(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, TrendingKey("24h", 20, ""), []byte("a"), time.Minute)
	c.Set(ctx, TrendingKey("7d", 20, ""), []byte("b"), time.Minute)
	c.Set(ctx, ActiveNarrativesKey(20, ""), []byte("c"), time.Minute)

	c.InvalidatePrefix(ctx, PrefixSignals)

	_, ok := c.Get(ctx, TrendingKey("24h", 20, ""))
	assert.False(t, ok)
	_, ok = c.Get(ctx, TrendingKey("7d", 20, ""))
	assert.False(t, ok)
	_, ok = c.Get(ctx, ActiveNarrativesKey(20, ""))
	assert.True(t, ok)

	assert.False(t, mr.Exists(TrendingKey("24h", 20, "")))
	assert.True(t, mr.Exists(ActiveNarrativesKey(20, "")))
}

func TestTwoTierWorksWithoutRemote(t *testing.T) {
	c, err := New(4, nil, slog.Default())
	require.NoError(t, err)
	ctx := context.Background()

	c.Set(ctx, "k", []byte("v"), time.Minute)
	got, ok := c.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, "v", string(got))

	c.InvalidatePrefix(ctx, "k")
	_, ok = c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestNoop(t *testing.T) {
	var c Cache = Noop{}
	ctx := context.Background()
	c.Set(ctx, "k", []byte("v"), time.Minute)
	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "signals:trending:7d:20:all", TrendingKey("7d", 20, ""))
	assert.Equal(t, "signals:trending:24h:5:cryptocurrency", TrendingKey("24h", 5, "cryptocurrency"))
	assert.Equal(t, "narratives:active:10:hot", ActiveNarrativesKey(10, "hot"))
	assert.Equal(t, "narratives:archived:30:50", ArchivedNarrativesKey(30, 50))
	assert.Equal(t, "narratives:resurrections:7:20", ResurrectionsKey(7, 20))
}
