package domain

import (
	"context"
	"time"
)

// OrderTx — операции хранилища заказов, выполняемые в рамках одной транзакции.
type OrderTx interface {
	// FindByID возвращает заказ с позициями без данных о товарах или ErrOrderNotFound.
	FindByID(ctx context.Context, id string) (Order, error)
	// Create вставляет заказ со сгенерированным ID и статусом Confirmed.
	Create(ctx context.Context, order Order) (Order, error)
	// SaveItems сохраняет позиции одной пачкой.
	SaveItems(ctx context.Context, items []OrderItem) ([]OrderItem, error)
	// UpdateStatus меняет только статус и возвращает новое значение updated_at.
	UpdateStatus(ctx context.Context, id string, status OrderStatus) (time.Time, error)
	// SoftDelete помечает заказ удалённым.
	SoftDelete(ctx context.Context, id string) (deletedAt, updatedAt time.Time, err error)
	// SoftDeleteItems помечает удалёнными позиции по одной; отсутствие строки даёт ErrItemDeleteFailed.
	SoftDeleteItems(ctx context.Context, items []OrderItem) ([]OrderItem, error)
	// Enqueue кладёт событие в outbox той же транзакции.
	Enqueue(ctx context.Context, msg OutboxMessage) (OutboxMessage, error)
}

// OrderStore описывает требования к хранилищу заказов.
type OrderStore interface {
	OrderTx
	// Query возвращает идентификаторы заказов, подходящих под фильтр,
	// в порядке created_at DESC, id DESC.
	Query(ctx context.Context, filter OrderFilter) ([]string, error)
	// WithinTx выполняет fn в транзакции; ошибка fn откатывает все изменения.
	WithinTx(ctx context.Context, fn func(tx OrderTx) error) error
}
