package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	log "github.com/sirupsen/logrus"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ApplicationName попадает в pg_stat_activity, если DSN не задаёт свой.
const ApplicationName = "orders-service"

const pingTimeout = 5 * time.Second

// PoolConfig — параметры пула соединений database/sql.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultPoolConfig возвращает параметры пула по умолчанию.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		MaxOpenConns:    25,
		MaxIdleConns:    25,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}
}

type options struct {
	pool          PoolConfig
	logger        *log.Entry
	slowThreshold time.Duration
}

// Option настраивает Open.
type Option func(*options)

// WithPool задаёт параметры пула.
func WithPool(pool PoolConfig) Option {
	return func(o *options) { o.pool = pool }
}

// WithLogger задаёт логгер для медленных и упавших запросов GORM.
func WithLogger(logger *log.Entry) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSlowQueryThreshold задаёт порог медленного запроса.
func WithSlowQueryThreshold(d time.Duration) Option {
	return func(o *options) { o.slowThreshold = d }
}

// Store держит пул pgx-соединений и GORM-сессию поверх него.
type Store struct {
	db   *sql.DB
	gorm *gorm.DB
}

// connConfig разбирает DSN и проставляет application_name, если его нет.
func connConfig(dsn string) (*pgx.ConnConfig, error) {
	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	if cfg.RuntimeParams == nil {
		cfg.RuntimeParams = map[string]string{}
	}
	if cfg.RuntimeParams["application_name"] == "" {
		cfg.RuntimeParams["application_name"] = ApplicationName
	}
	return cfg, nil
}

// Open подключается к PostgreSQL, проверяет доступность базы и поднимает GORM на том же пуле.
func Open(ctx context.Context, dsn string, opts ...Option) (*Store, error) {
	o := options{
		pool:          DefaultPoolConfig(),
		logger:        log.WithField("component", "gorm"),
		slowThreshold: 200 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(&o)
	}

	cfg, err := connConfig(dsn)
	if err != nil {
		return nil, err
	}
	db := stdlib.OpenDB(*cfg)
	db.SetMaxOpenConns(o.pool.MaxOpenConns)
	db.SetMaxIdleConns(o.pool.MaxIdleConns)
	db.SetConnMaxLifetime(o.pool.ConnMaxLifetime)
	db.SetConnMaxIdleTime(o.pool.ConnMaxIdleTime)

	store := &Store{db: db}
	if err := store.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	store.gorm, err = gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db}), &gorm.Config{
		Logger: gormlogger.New(o.logger, gormlogger.Config{
			SlowThreshold:             o.slowThreshold,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
		// Postgres хранит микросекунды; время обрезается заранее, чтобы значения совпадали после чтения.
		NowFunc:                func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		SkipDefaultTransaction: true,
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open gorm session: %w", err)
	}
	return store, nil
}

// DB возвращает пул database/sql.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Gorm возвращает GORM-сессию хранилища.
func (s *Store) Gorm() *gorm.DB {
	return s.gorm
}

// Ping проверяет доступность базы.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return errors.New("postgres store is not initialized")
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return s.db.PingContext(ctx)
}

// Close закрывает пул.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
