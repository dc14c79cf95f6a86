package app

import (
	"context"
	"errors"
	"fmt"

	promgrpc "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/orders/internal/health"
	"github.com/vladislavdragonenkov/orders/internal/service/product"
)

// productDependencies — клиент сервиса товаров и ресурсы, которые нужно закрыть при остановке.
type productDependencies struct {
	client       domain.ProductClient
	cacheChecker healthcheck.Checker
	closers      []func() error
}

func (d productDependencies) close(logger *log.Entry) {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			logger.WithError(err).Warn("failed to close product client resource")
		}
	}
}

// initProductClient подключается к сервису товаров по gRPC или, если это разрешено,
// поднимает in-process каталог. При заданном ORDERS_REDIS_ADDR ответы FindByID кэшируются.
func initProductClient(ctx context.Context, cfg Config, logger *log.Entry) (productDependencies, error) {
	var deps productDependencies

	switch {
	case cfg.ProductServiceURL != "":
		conn, err := grpc.NewClient(cfg.ProductServiceURL,
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithChainUnaryInterceptor(promgrpc.UnaryClientInterceptor),
		)
		if err != nil {
			return productDependencies{}, fmt.Errorf("dial product service %s: %w", cfg.ProductServiceURL, err)
		}
		deps.client = product.NewClient(conn, logger.WithField("component", "product-client"))
		deps.closers = append(deps.closers, conn.Close)
		logger.WithField("target", cfg.ProductServiceURL).Info("product service client initialized")
	case cfg.AllowMockProducts:
		deps.client = product.NewCatalog()
		logger.Warn("PRODUCT_SERVICE_URL is empty, using in-process product catalog")
	default:
		return productDependencies{}, errors.New("product service address is not configured")
	}

	if cfg.RedisAddr == "" {
		return deps, nil
	}

	rdb, err := product.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.WithError(err).Warn("redis is unavailable, product cache disabled")
		return deps, nil
	}
	deps.client = product.NewCachedClient(deps.client, rdb, cfg.ProductCacheTTL, logger.WithField("component", "product-cache"))
	deps.cacheChecker = healthcheck.NewOptionalChecker("product-cache", redisPing(rdb))
	deps.closers = append(deps.closers, rdb.Close)
	logger.WithField("addr", cfg.RedisAddr).Info("product cache enabled")
	return deps, nil
}

func redisPing(rdb redis.Cmdable) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	}
}
