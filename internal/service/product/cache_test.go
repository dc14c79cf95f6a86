package product

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/orders/internal/domain"
)

type mapCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	ttls    map[string]time.Duration
	readErr error
}

func newMapCache() *mapCache {
	return &mapCache{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (c *mapCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.readErr != nil {
		return nil, c.readErr
	}
	data, ok := c.data[key]
	if !ok {
		return nil, errCacheMiss
	}
	return data, nil
}

func (c *mapCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	c.ttls[key] = ttl
	return nil
}

func TestCachedClient_ReadThrough(t *testing.T) {
	catalog := NewCatalog(sampleProducts()...)
	cache := newMapCache()
	client := newCachedClient(catalog, cache, time.Minute, loggerForTests())
	ctx := context.Background()

	first, err := client.FindByID(ctx, "p1")
	require.NoError(t, err)
	second, err := client.FindByID(ctx, "p1")
	require.NoError(t, err)

	require.Equal(t, first.Name, second.Name)
	require.True(t, second.Price.Equal(decimal.NewFromInt(10)))
	require.Equal(t, 1, catalog.FindCalls)
	require.Equal(t, time.Minute, cache.ttls[cacheKeyPrefix+"p1"])
}

func TestCachedClient_ReadErrorFallsBack(t *testing.T) {
	catalog := NewCatalog(sampleProducts()...)
	cache := newMapCache()
	cache.readErr = errors.New("redis down")
	client := newCachedClient(catalog, cache, 0, loggerForTests())

	p, err := client.FindByID(context.Background(), "p2")
	require.NoError(t, err)
	require.Equal(t, "Mouse", p.Name)
	require.Equal(t, defaultCacheTTL, client.ttl)
}

func TestCachedClient_NotFoundIsNotCached(t *testing.T) {
	catalog := NewCatalog()
	cache := newMapCache()
	client := newCachedClient(catalog, cache, time.Minute, loggerForTests())

	_, err := client.FindByID(context.Background(), "ghost")
	require.ErrorIs(t, err, domain.ErrProductNotFound)
	require.Empty(t, cache.data)
}

func TestCachedClient_OrderRequestRefreshesCache(t *testing.T) {
	catalog := NewCatalog(sampleProducts()...)
	cache := newMapCache()
	client := newCachedClient(catalog, cache, time.Minute, loggerForTests())
	ctx := context.Background()

	res, err := client.OrderRequest(ctx, []domain.ProductLine{{ProductID: "p1", Quantity: 2}})
	require.NoError(t, err)
	require.True(t, res.OK)

	p, err := client.FindByID(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, int32(3), p.Quantity)
	require.Zero(t, catalog.FindCalls)
}

func TestCachedClient_Redis(t *testing.T) {
	addr := os.Getenv("ORDERS_REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("ORDERS_REDIS_TEST_ADDR is not set")
	}

	ctx := context.Background()
	rdb, err := OpenRedis(ctx, addr, "", 0)
	require.NoError(t, err)
	defer rdb.Close()

	catalog := NewCatalog(sampleProducts()...)
	client := NewCachedClient(catalog, rdb, time.Second, loggerForTests())
	require.NoError(t, rdb.Del(ctx, cacheKeyPrefix+"p1").Err())

	_, err = client.FindByID(ctx, "p1")
	require.NoError(t, err)
	_, err = client.FindByID(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, 1, catalog.FindCalls)
}
