package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/orders/internal/service/outbox"
)

const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

// Config описывает настройки запуска сервиса заказов.
type Config struct {
	GRPCAddr    string
	HTTPAddr    string
	MetricsAddr string

	StorageDriver       string
	PostgresDSN         string
	PostgresAutoMigrate bool

	// ProductServiceURL — адрес gRPC сервиса товаров.
	ProductServiceURL string
	// AllowMockProducts разрешает in-process каталог, если адрес сервиса товаров не задан.
	AllowMockProducts bool

	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	ProductCacheTTL time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	OutboxPollInterval time.Duration
	OutboxBatchSize    int
	OutboxMaxAttempts  int
	OutboxRetryDelay   time.Duration
}

// DefaultConfig возвращает настройки для локального запуска.
func DefaultConfig() Config {
	return Config{
		GRPCAddr:            ":50051",
		HTTPAddr:            ":8080",
		MetricsAddr:         ":9090",
		StorageDriver:       StorageDriverMemory,
		PostgresAutoMigrate: true,
		ProductCacheTTL:     30 * time.Second,
		KafkaTopic:          "orders.order.events",
		OutboxPollInterval:  time.Second,
		OutboxBatchSize:     100,
		OutboxMaxAttempts:   3,
		OutboxRetryDelay:    50 * time.Millisecond,
	}
}

// Validate проверяет согласованность настроек.
func (c Config) Validate() error {
	var errs []error

	switch c.StorageDriver {
	case StorageDriverMemory:
	case StorageDriverPostgres:
		if c.PostgresDSN == "" {
			errs = append(errs, errors.New("postgres storage requires ORDERS_POSTGRES_DSN"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported storage driver %q", c.StorageDriver))
	}

	if c.ProductServiceURL == "" && !c.AllowMockProducts {
		errs = append(errs, errors.New("PRODUCT_SERVICE_URL is required unless ORDERS_ALLOW_MOCK_PRODUCTS is set"))
	}
	if c.GRPCAddr == "" {
		errs = append(errs, errors.New("grpc address is required"))
	}
	if c.OutboxBatchSize < 0 || c.OutboxMaxAttempts < 0 {
		errs = append(errs, errors.New("outbox batch size and max attempts must not be negative"))
	}

	return errors.Join(errs...)
}

// outboxConfig переносит настройки outbox в параметры воркера; нули заменяются значениями по умолчанию.
func (c Config) outboxConfig() outbox.Config {
	cfg := outbox.DefaultConfig()
	if c.OutboxPollInterval > 0 {
		cfg.PollInterval = c.OutboxPollInterval
	}
	if c.OutboxBatchSize > 0 {
		cfg.BatchSize = c.OutboxBatchSize
	}
	if c.OutboxMaxAttempts > 0 {
		cfg.MaxAttempts = c.OutboxMaxAttempts
	}
	if c.OutboxRetryDelay >= 0 {
		cfg.RetryDelay = c.OutboxRetryDelay
	}
	return cfg
}
