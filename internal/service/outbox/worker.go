// Package outbox доставляет события заказов, записанные в outbox в той же транзакции,
// что и изменение заказа.
//
// События одного заказа публикуются в порядке постановки: если событие заказа не удалось
// доставить, следующие события этого заказа в текущем проходе откладываются.
package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	"github.com/vladislavdragonenkov/orders/internal/metrics"
)

// Config — параметры опроса и повторной публикации.
type Config struct {
	PollInterval time.Duration
	BatchSize    int
	MaxAttempts  int
	// RetryDelay удваивается с каждой попыткой, но не больше MaxRetryDelay.
	RetryDelay    time.Duration
	MaxRetryDelay time.Duration
}

// DefaultConfig возвращает параметры по умолчанию.
func DefaultConfig() Config {
	return Config{
		PollInterval:  time.Second,
		BatchSize:     100,
		MaxAttempts:   3,
		RetryDelay:    50 * time.Millisecond,
		MaxRetryDelay: 2 * time.Second,
	}
}

func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.PollInterval <= 0 {
		c.PollInterval = def.PollInterval
	}
	if c.BatchSize <= 0 {
		c.BatchSize = def.BatchSize
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = def.MaxAttempts
	}
	if c.RetryDelay < 0 {
		c.RetryDelay = 0
	}
	if c.MaxRetryDelay <= 0 {
		c.MaxRetryDelay = def.MaxRetryDelay
	}
	return c
}

// Option настраивает Worker.
type Option func(*Worker)

// WithLogger задаёт логгер воркера.
func WithLogger(logger *log.Entry) Option {
	return func(w *Worker) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithDeadLetter задаёт паблишер для событий, исчерпавших попытки.
func WithDeadLetter(publisher domain.OutboxPublisher) Option {
	return func(w *Worker) {
		w.deadLetter = publisher
	}
}

// WithMetrics включает метрики доставки.
func WithMetrics(m *metrics.OutboxMetrics) Option {
	return func(w *Worker) {
		w.metrics = m
	}
}

// Result — итог одного прохода по outbox.
type Result struct {
	Sent     int
	Failed   int
	Deferred int
}

// Worker публикует pending-события заказов.
type Worker struct {
	repo       domain.OutboxRepository
	publisher  domain.OutboxPublisher
	deadLetter domain.OutboxPublisher
	logger     *log.Entry
	metrics    *metrics.OutboxMetrics
	cfg        Config
	now        func() time.Time
}

// NewWorker создаёт воркер outbox.
func NewWorker(repo domain.OutboxRepository, publisher domain.OutboxPublisher, cfg Config, opts ...Option) *Worker {
	w := &Worker{
		repo:      repo,
		publisher: publisher,
		logger:    log.WithField("component", "outbox-worker"),
		cfg:       cfg.normalized(),
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run опрашивает outbox до отмены ctx.
func (w *Worker) Run(ctx context.Context) {
	if w.repo == nil || w.publisher == nil {
		w.logger.Warn("outbox worker is disabled: repo or publisher is nil")
		return
	}

	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	for {
		if res := w.ProcessOnce(ctx); res != (Result{}) {
			w.logger.WithFields(log.Fields{
				"sent":     res.Sent,
				"failed":   res.Failed,
				"deferred": res.Deferred,
			}).Debug("outbox batch processed")
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// ProcessOnce обрабатывает один батч pending-событий.
func (w *Worker) ProcessOnce(ctx context.Context) Result {
	var res Result
	if ctx.Err() != nil {
		return res
	}
	defer w.refreshBacklog(ctx)

	batch, err := w.repo.PullPending(ctx, w.cfg.BatchSize)
	if err != nil {
		w.logger.WithError(err).Warn("failed to pull pending order events")
		return res
	}

	// Заказы, события которых в этом проходе дальше публиковать нельзя.
	blocked := make(map[string]struct{})
	for _, msg := range batch {
		if ctx.Err() != nil {
			return res
		}
		if _, ok := blocked[msg.AggregateID]; ok {
			res.Deferred++
			w.metrics.RecordPublish(metrics.PublishDeferred)
			continue
		}

		entry := w.logger.WithFields(log.Fields{
			"outbox_id":  msg.ID,
			"order_id":   msg.AggregateID,
			"event_type": msg.EventType,
		})

		attempts, err := w.deliver(ctx, msg)
		if err != nil {
			if ctx.Err() != nil {
				return res
			}
			blocked[msg.AggregateID] = struct{}{}
			res.Failed++
			w.metrics.RecordPublish(metrics.PublishFailed)
			entry.WithError(err).Error("order event was not delivered")
			w.bury(ctx, msg, attempts, err, entry)
			continue
		}

		if err := w.repo.MarkSent(ctx, msg.ID); err != nil {
			// Событие останется pending и уйдёт повторно; последующие события заказа ждут его.
			blocked[msg.AggregateID] = struct{}{}
			entry.WithError(err).Warn("failed to mark order event as sent")
			continue
		}
		res.Sent++
	}
	return res
}

// deliver публикует событие с экспоненциальной задержкой между попытками.
func (w *Worker) deliver(ctx context.Context, msg domain.OutboxMessage) (int, error) {
	var lastErr error
	for attempt := 1; attempt <= w.cfg.MaxAttempts; attempt++ {
		lastErr = w.publisher.Publish(msg)
		if lastErr == nil {
			w.metrics.RecordPublish(metrics.PublishSent)
			return attempt, nil
		}
		w.metrics.RecordPublish(metrics.PublishRetry)

		if attempt == w.cfg.MaxAttempts {
			break
		}
		if delay := w.backoff(attempt); delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return attempt, ctx.Err()
			case <-timer.C:
			}
		}
	}
	return w.cfg.MaxAttempts, fmt.Errorf("publish %s after %d attempts: %w", msg.EventType, w.cfg.MaxAttempts, lastErr)
}

func (w *Worker) backoff(attempt int) time.Duration {
	delay := w.cfg.RetryDelay
	for i := 1; i < attempt && delay < w.cfg.MaxRetryDelay; i++ {
		delay *= 2
	}
	return min(delay, w.cfg.MaxRetryDelay)
}

// bury отправляет событие в DLQ и помечает его failed.
func (w *Worker) bury(ctx context.Context, msg domain.OutboxMessage, attempts int, cause error, entry *log.Entry) {
	if w.deadLetter != nil {
		if err := w.publishDeadLetter(msg, attempts, cause); err != nil {
			w.metrics.RecordPublish(metrics.PublishDLQError)
			entry.WithError(err).Warn("failed to publish order event to DLQ")
		} else {
			w.metrics.RecordPublish(metrics.PublishDLQ)
		}
	}
	if err := w.repo.MarkFailed(ctx, msg.ID); err != nil {
		entry.WithError(err).Warn("failed to mark order event as failed")
	}
}

type deadLetter struct {
	OutboxID      string          `json:"outbox_id"`
	AggregateType string          `json:"aggregate_type"`
	OrderID       string          `json:"order_id"`
	EventType     string          `json:"event_type"`
	Payload       json.RawMessage `json:"payload"`
	Attempts      int             `json:"attempts"`
	Error         string          `json:"publish_error"`
	FailedAt      time.Time       `json:"failed_at"`
}

func (w *Worker) publishDeadLetter(msg domain.OutboxMessage, attempts int, cause error) error {
	body, err := json.Marshal(deadLetter{
		OutboxID:      msg.ID,
		AggregateType: msg.AggregateType,
		OrderID:       msg.AggregateID,
		EventType:     msg.EventType,
		Payload:       json.RawMessage(msg.Payload),
		Attempts:      attempts,
		Error:         cause.Error(),
		FailedAt:      w.now(),
	})
	if err != nil {
		return fmt.Errorf("marshal dead letter: %w", err)
	}

	dead := msg
	dead.Payload = body
	dead.Attempts = attempts
	if err := w.deadLetter.Publish(dead); err != nil {
		return fmt.Errorf("publish dead letter: %w", err)
	}
	return nil
}

func (w *Worker) refreshBacklog(ctx context.Context) {
	if w.metrics == nil {
		return
	}
	stats, err := w.repo.Stats(ctx)
	if err != nil {
		w.logger.WithError(err).Warn("failed to collect outbox backlog stats")
		return
	}
	w.metrics.SetBacklog(stats.PendingCount, stats.OldestPendingAt, w.now())
}
