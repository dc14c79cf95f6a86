package domain

import (
	"context"
	"time"
)

// ProductClient описывает обращения к внешнему сервису товаров.
type ProductClient interface {
	// FindByID возвращает снимок товара, ErrProductNotFound или ErrProductUnavailable.
	FindByID(ctx context.Context, productID string) (Product, error)
	// OrderRequest атомарно проверяет и списывает остатки по всем строкам.
	// Отказ сервиса возвращается как Fulfillment{OK: false}, ошибка означает сбой вызова.
	OrderRequest(ctx context.Context, lines []ProductLine) (Fulfillment, error)
}

// OutboxPublisher публикует события из transactional outbox.
type OutboxPublisher interface {
	// Publish передаёт событие наружу; должен быть идемпотентным.
	Publish(event OutboxMessage) error
}

// OutboxRepository выдаёт накопленные события воркеру публикации.
type OutboxRepository interface {
	PullPending(ctx context.Context, limit int) ([]OutboxMessage, error)
	Stats(ctx context.Context) (OutboxStats, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string) error
}

// OutboxMessage хранит данные для публикуемого события.
type OutboxMessage struct {
	ID            string
	AggregateType string
	AggregateID   string
	EventType     string
	Payload       []byte
	Attempts      int
	CreatedAt     time.Time
}

// OutboxStats описывает текущее состояние backlog transactional outbox.
type OutboxStats struct {
	PendingCount    int
	OldestPendingAt time.Time
}
