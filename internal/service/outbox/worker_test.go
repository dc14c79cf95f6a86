package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	"github.com/vladislavdragonenkov/orders/internal/metrics"
)

func event(id, orderID string, eventType domain.OrderEventType) domain.OutboxMessage {
	return domain.OutboxMessage{
		ID:            id,
		AggregateType: domain.OrderAggregateType,
		AggregateID:   orderID,
		EventType:     string(eventType),
		Payload:       []byte(`{"order_id":"` + orderID + `"}`),
	}
}

func noDelay(attempts int) Config {
	return Config{MaxAttempts: attempts, RetryDelay: 0}
}

func TestWorker_ProcessOnce_MarksSent(t *testing.T) {
	t.Parallel()

	repo := &stubOutboxRepo{pending: []domain.OutboxMessage{
		event("msg-1", "order-1", domain.OrderEventCreated),
		event("msg-2", "order-1", domain.OrderEventStatusChanged),
	}}
	publisher := &stubPublisher{}

	res := NewWorker(repo, publisher, noDelay(3)).ProcessOnce(context.Background())

	assert.Equal(t, Result{Sent: 2}, res)
	assert.Equal(t, []string{"msg-1", "msg-2"}, repo.sentIDs)
	assert.Empty(t, repo.failedIDs)
	assert.Equal(t, []string{"msg-1", "msg-2"}, publisher.published())
}

func TestWorker_ProcessOnce_RetriesThenSucceeds(t *testing.T) {
	t.Parallel()

	repo := &stubOutboxRepo{pending: []domain.OutboxMessage{event("msg-3", "order-3", domain.OrderEventStatusChanged)}}
	publisher := &stubPublisher{sequence: []error{errors.New("attempt 1"), errors.New("attempt 2"), nil}}

	res := NewWorker(repo, publisher, noDelay(3)).ProcessOnce(context.Background())

	assert.Equal(t, Result{Sent: 1}, res)
	assert.Equal(t, 3, publisher.calls())
	assert.Equal(t, []string{"msg-3"}, repo.sentIDs)
}

func TestWorker_ProcessOnce_DeadLettersAndDefersSameOrder(t *testing.T) {
	t.Parallel()

	repo := &stubOutboxRepo{pending: []domain.OutboxMessage{
		event("msg-1", "order-1", domain.OrderEventCreated),
		event("msg-2", "order-2", domain.OrderEventCreated),
		event("msg-3", "order-1", domain.OrderEventStatusChanged),
	}}
	publisher := &stubPublisher{failFor: map[string]error{"msg-1": errors.New("broker down")}}
	dlq := &stubPublisher{}
	registry := prometheus.NewRegistry()

	worker := NewWorker(repo, publisher, noDelay(2),
		WithDeadLetter(dlq),
		WithMetrics(metrics.NewOutboxMetricsWithRegisterer(registry)),
	)
	fixed := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	worker.now = func() time.Time { return fixed }

	res := worker.ProcessOnce(context.Background())

	assert.Equal(t, Result{Sent: 1, Failed: 1, Deferred: 1}, res)
	assert.Equal(t, []string{"msg-2"}, repo.sentIDs)
	assert.Equal(t, []string{"msg-1"}, repo.failedIDs)
	// msg-3 не публиковался: статус заказа не должен обогнать его создание.
	assert.NotContains(t, publisher.published(), "msg-3")

	require.Len(t, dlq.messages, 1)
	var letter deadLetter
	require.NoError(t, json.Unmarshal(dlq.messages[0].Payload, &letter))
	assert.Equal(t, "msg-1", letter.OutboxID)
	assert.Equal(t, "order-1", letter.OrderID)
	assert.Equal(t, 2, letter.Attempts)
	assert.Contains(t, letter.Error, "broker down")
	assert.True(t, letter.FailedAt.Equal(fixed))
	assert.JSONEq(t, `{"order_id":"order-1"}`, string(letter.Payload))

	families, err := registry.Gather()
	require.NoError(t, err)
	results := map[string]float64{}
	for _, family := range families {
		if family.GetName() != "orders_outbox_publish_attempts_total" {
			continue
		}
		for _, m := range family.GetMetric() {
			results[m.GetLabel()[0].GetValue()] = m.GetCounter().GetValue()
		}
	}
	assert.Equal(t, float64(1), results[metrics.PublishDeferred])
	assert.Equal(t, float64(1), results[metrics.PublishDLQ])
	assert.Equal(t, float64(2), results[metrics.PublishRetry])
}

func TestWorker_ProcessOnce_MarkSentFailureBlocksOrder(t *testing.T) {
	t.Parallel()

	repo := &stubOutboxRepo{
		pending: []domain.OutboxMessage{
			event("msg-1", "order-1", domain.OrderEventCreated),
			event("msg-2", "order-1", domain.OrderEventDeleted),
		},
		markSentErr: errors.New("db gone"),
	}

	res := NewWorker(repo, &stubPublisher{}, noDelay(1)).ProcessOnce(context.Background())

	assert.Equal(t, Result{Deferred: 1}, res)
	assert.Empty(t, repo.failedIDs)
}

func TestWorker_ProcessOnce_PullError(t *testing.T) {
	t.Parallel()

	repo := &stubOutboxRepo{pullErr: errors.New("timeout")}
	publisher := &stubPublisher{}

	assert.Equal(t, Result{}, NewWorker(repo, publisher, noDelay(1)).ProcessOnce(context.Background()))
	assert.Zero(t, publisher.calls())
}

func TestWorker_ProcessOnce_CanceledDuringBackoff(t *testing.T) {
	t.Parallel()

	repo := &stubOutboxRepo{pending: []domain.OutboxMessage{event("msg-1", "order-1", domain.OrderEventCreated)}}
	publisher := &stubPublisher{failFor: map[string]error{"msg-1": errors.New("down")}}
	worker := NewWorker(repo, publisher, Config{MaxAttempts: 5, RetryDelay: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	assert.Equal(t, Result{}, worker.ProcessOnce(ctx))
	assert.Empty(t, repo.failedIDs, "event must stay pending")
	assert.Equal(t, 1, publisher.calls())
}

func TestWorker_Backoff(t *testing.T) {
	w := NewWorker(&stubOutboxRepo{}, &stubPublisher{}, Config{RetryDelay: 100 * time.Millisecond, MaxRetryDelay: time.Second})

	assert.Equal(t, 100*time.Millisecond, w.backoff(1))
	assert.Equal(t, 200*time.Millisecond, w.backoff(2))
	assert.Equal(t, 800*time.Millisecond, w.backoff(4))
	assert.Equal(t, time.Second, w.backoff(5))
	assert.Equal(t, time.Second, w.backoff(60))
}

func TestConfig_Normalized(t *testing.T) {
	got := Config{RetryDelay: -time.Second}.normalized()
	def := DefaultConfig()

	assert.Equal(t, def.PollInterval, got.PollInterval)
	assert.Equal(t, def.BatchSize, got.BatchSize)
	assert.Equal(t, def.MaxAttempts, got.MaxAttempts)
	assert.Equal(t, def.MaxRetryDelay, got.MaxRetryDelay)
	assert.Zero(t, got.RetryDelay)
}

func TestWorker_Run_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	repo := &stubOutboxRepo{}
	worker := NewWorker(repo, &stubPublisher{}, Config{PollInterval: 5 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		worker.Run(ctx)
	}()

	time.Sleep(15 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop on context cancel")
	}
	assert.GreaterOrEqual(t, repo.pulls(), 2)
}

func TestWorker_Run_DisabledWithoutPublisher(t *testing.T) {
	repo := &stubOutboxRepo{}
	NewWorker(repo, nil, Config{}).Run(context.Background())
	assert.Zero(t, repo.pulls())
}

type stubOutboxRepo struct {
	mu          sync.Mutex
	pending     []domain.OutboxMessage
	pullErr     error
	markSentErr error
	pullCount   int
	sentIDs     []string
	failedIDs   []string
}

func (s *stubOutboxRepo) PullPending(_ context.Context, limit int) ([]domain.OutboxMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pullCount++
	if s.pullErr != nil {
		return nil, s.pullErr
	}
	n := min(limit, len(s.pending))
	return append([]domain.OutboxMessage(nil), s.pending[:n]...), nil
}

func (s *stubOutboxRepo) Stats(context.Context) (domain.OutboxStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.OutboxStats{PendingCount: len(s.pending)}, nil
}

func (s *stubOutboxRepo) MarkSent(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.markSentErr != nil {
		return s.markSentErr
	}
	s.sentIDs = append(s.sentIDs, id)
	return nil
}

func (s *stubOutboxRepo) MarkFailed(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failedIDs = append(s.failedIDs, id)
	return nil
}

func (s *stubOutboxRepo) pulls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pullCount
}

type stubPublisher struct {
	mu       sync.Mutex
	failFor  map[string]error
	sequence []error
	count    int
	messages []domain.OutboxMessage
}

func (s *stubPublisher) Publish(msg domain.OutboxMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.count++
	if err := s.failFor[msg.ID]; err != nil {
		return err
	}
	if len(s.sequence) > 0 {
		err := s.sequence[0]
		s.sequence = s.sequence[1:]
		if err != nil {
			return err
		}
	}
	s.messages = append(s.messages, msg)
	return nil
}

func (s *stubPublisher) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

func (s *stubPublisher) published() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.messages))
	for _, m := range s.messages {
		ids = append(ids, m.ID)
	}
	return ids
}

var (
	_ domain.OutboxRepository = (*stubOutboxRepo)(nil)
	_ domain.OutboxPublisher  = (*stubPublisher)(nil)
)
