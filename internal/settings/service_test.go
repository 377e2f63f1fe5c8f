package settings

import (
	"context"
	"testing"
	"time"

	dbtypes "github.com/dmoreira/workshop-backend/pkg/db/types"
	"github.com/dmoreira/workshop-backend/pkg/redis"
	"github.com/stretchr/testify/require"
)

type memoryCache struct {
	values map[string]string
	sets   int
	dels   int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string]string{}}
}

func (m *memoryCache) Get(_ context.Context, key string) (string, error) {
	if v, ok := m.values[key]; ok {
		return v, nil
	}
	return "", redis.Nil
}

func (m *memoryCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	m.values[key] = value.(string)
	m.sets++
	return nil
}

func (m *memoryCache) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.values, k)
	}
	m.dels++
	return nil
}

func (m *memoryCache) CacheKey(parts ...string) string {
	key := "test:cache"
	for _, p := range parts {
		key += ":" + p
	}
	return key
}

func mustJSON(t *testing.T, v any) dbtypes.JSONValue {
	t.Helper()
	val, err := dbtypes.NewJSONValue(v)
	require.NoError(t, err)
	return val
}

func TestEnsureDefaultsSeedsKnownKeysOnce(t *testing.T) {
	svc := NewService(NewRepository(newTestDB(t)), nil, nil)
	ctx := context.Background()

	require.NoError(t, svc.EnsureDefaults(ctx))

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)
	require.JSONEq(t, `5`, string(all["low_stock_threshold"]))
	require.JSONEq(t, `"Oficina Mecânica"`, string(all["workshop_name"]))

	// an existing value survives a re-run
	require.NoError(t, svc.Set(ctx, "workshop_name", mustJSON(t, "Oficina do Zé")))
	require.NoError(t, svc.EnsureDefaults(ctx))

	all, err = svc.GetAll(ctx)
	require.NoError(t, err)
	require.JSONEq(t, `"Oficina do Zé"`, string(all["workshop_name"]))
}

func TestSetCreatesThenUpdates(t *testing.T) {
	svc := NewService(NewRepository(newTestDB(t)), nil, nil)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, "workshop_phone", mustJSON(t, "11 4002-8922")))
	require.NoError(t, svc.Set(ctx, "workshop_phone", mustJSON(t, "11 4002-0000")))

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.JSONEq(t, `"11 4002-0000"`, string(all["workshop_phone"]))
}

func TestLowStockThresholdFallsBackToDefault(t *testing.T) {
	svc := NewService(NewRepository(newTestDB(t)), nil, nil)
	ctx := context.Background()

	// missing key
	n, err := svc.LowStockThreshold(ctx)
	require.NoError(t, err)
	require.Equal(t, DefaultLowStockThreshold, n)

	// non-numeric value
	require.NoError(t, svc.Set(ctx, "low_stock_threshold", mustJSON(t, "plenty")))
	n, err = svc.LowStockThreshold(ctx)
	require.NoError(t, err)
	require.Equal(t, DefaultLowStockThreshold, n)

	// numeric value
	require.NoError(t, svc.Set(ctx, "low_stock_threshold", mustJSON(t, 12)))
	n, err = svc.LowStockThreshold(ctx)
	require.NoError(t, err)
	require.Equal(t, 12, n)

	// quoted number
	require.NoError(t, svc.Set(ctx, "low_stock_threshold", mustJSON(t, "7")))
	n, err = svc.LowStockThreshold(ctx)
	require.NoError(t, err)
	require.Equal(t, 7, n)
}

func TestGetAllUsesCacheAndSetInvalidates(t *testing.T) {
	cache := newMemoryCache()
	svc := NewService(NewRepository(newTestDB(t)), cache, nil)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, "workshop_logo", mustJSON(t, "logo.png")))

	// first read populates the cache
	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.JSONEq(t, `"logo.png"`, string(all["workshop_logo"]))
	require.Equal(t, 1, cache.sets)

	// second read is served from the cache
	all, err = svc.GetAll(ctx)
	require.NoError(t, err)
	require.JSONEq(t, `"logo.png"`, string(all["workshop_logo"]))
	require.Equal(t, 1, cache.sets)

	// a write drops the cached map
	require.NoError(t, svc.Set(ctx, "workshop_logo", mustJSON(t, "new.png")))
	require.Empty(t, cache.values)

	all, err = svc.GetAll(ctx)
	require.NoError(t, err)
	require.JSONEq(t, `"new.png"`, string(all["workshop_logo"]))
}
