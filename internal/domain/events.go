package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderAggregateType — aggregate_type событий заказа в outbox.
const OrderAggregateType = "order"

// OrderEventType — тип события жизненного цикла заказа.
type OrderEventType string

const (
	OrderEventCreated       OrderEventType = "order.created"
	OrderEventStatusChanged OrderEventType = "order.status_changed"
	OrderEventDeleted       OrderEventType = "order.deleted"
)

// OrderEventItem — позиция заказа в событии.
type OrderEventItem struct {
	ProductID string          `json:"product_id"`
	Quantity  int32           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// OrderEvent — полезная нагрузка события заказа.
type OrderEvent struct {
	EventType      OrderEventType   `json:"event_type"`
	OrderID        string           `json:"order_id"`
	Status         OrderStatus      `json:"status"`
	PreviousStatus OrderStatus      `json:"previous_status,omitempty"`
	Total          decimal.Decimal  `json:"total"`
	Items          []OrderEventItem `json:"items,omitempty"`
	OccurredAt     time.Time        `json:"occurred_at"`
}

// NewOrderEvent собирает событие из состояния заказа.
func NewOrderEvent(eventType OrderEventType, order Order, occurredAt time.Time) OrderEvent {
	event := OrderEvent{
		EventType:  eventType,
		OrderID:    order.ID,
		Status:     order.Status,
		Total:      order.Total(),
		OccurredAt: occurredAt.UTC(),
	}
	for _, item := range order.Items {
		event.Items = append(event.Items, OrderEventItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return event
}

// OutboxMessage сериализует событие для transactional outbox.
func (e OrderEvent) OutboxMessage() (OutboxMessage, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return OutboxMessage{}, fmt.Errorf("marshal %s event: %w", e.EventType, err)
	}
	return OutboxMessage{
		AggregateType: OrderAggregateType,
		AggregateID:   e.OrderID,
		EventType:     string(e.EventType),
		Payload:       payload,
	}, nil
}
