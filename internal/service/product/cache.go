package product

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orders/internal/domain"
)

const (
	defaultCacheTTL = 30 * time.Second
	cacheKeyPrefix  = "orders:product:"
	redisPingWait   = 5 * time.Second
)

// errCacheMiss — отсутствие записи в кэше.
var errCacheMiss = errors.New("product cache miss")

// snapshotCache — минимальный набор операций кэша снимков товаров.
type snapshotCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type redisSnapshotCache struct {
	rdb redis.Cmdable
}

func (c redisSnapshotCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errCacheMiss
	}
	return data, err
}

func (c redisSnapshotCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

// OpenRedis подключается к Redis и проверяет доступность.
func OpenRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingWait)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return rdb, nil
}

// CachedClient кэширует ответы FindByID в Redis. OrderRequest всегда идёт
// в сервис товаров и обновляет кэш полученными снимками.
type CachedClient struct {
	next   domain.ProductClient
	cache  snapshotCache
	ttl    time.Duration
	logger *log.Entry
}

// NewCachedClient оборачивает next кэшем поверх rdb.
func NewCachedClient(next domain.ProductClient, rdb redis.Cmdable, ttl time.Duration, logger *log.Entry) *CachedClient {
	return newCachedClient(next, redisSnapshotCache{rdb: rdb}, ttl, logger)
}

func newCachedClient(next domain.ProductClient, cache snapshotCache, ttl time.Duration, logger *log.Entry) *CachedClient {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	if logger == nil {
		logger = log.WithField("component", "product-cache")
	}
	return &CachedClient{next: next, cache: cache, ttl: ttl, logger: logger}
}

// FindByID читает снимок из кэша, при промахе идёт в сервис товаров.
// Ошибки Redis не прерывают запрос.
func (c *CachedClient) FindByID(ctx context.Context, productID string) (domain.Product, error) {
	key := cacheKeyPrefix + productID

	data, err := c.cache.Get(ctx, key)
	switch {
	case err == nil:
		var p domain.Product
		jsonErr := json.Unmarshal(data, &p)
		if jsonErr == nil {
			return p, nil
		}
		c.logger.WithError(jsonErr).WithField("product_id", productID).Warn("drop malformed cache entry")
	case !errors.Is(err, errCacheMiss):
		c.logger.WithError(err).WithField("product_id", productID).Warn("product cache read failed")
	}

	p, err := c.next.FindByID(ctx, productID)
	if err != nil {
		return domain.Product{}, err
	}
	c.store(ctx, p)
	return p, nil
}

// OrderRequest не кэшируется.
func (c *CachedClient) OrderRequest(ctx context.Context, lines []domain.ProductLine) (domain.Fulfillment, error) {
	res, err := c.next.OrderRequest(ctx, lines)
	if err != nil || !res.OK {
		return res, err
	}
	for _, p := range res.Products {
		c.store(ctx, p)
	}
	return res, nil
}

func (c *CachedClient) store(ctx context.Context, p domain.Product) {
	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, cacheKeyPrefix+p.ID, data, c.ttl); err != nil {
		c.logger.WithError(err).WithField("product_id", p.ID).Warn("product cache write failed")
	}
}

var _ domain.ProductClient = (*CachedClient)(nil)
