package kafka

import (
	"encoding/json"
	"time"
)

// Топики событий заказов.
const (
	TopicOrderEvents     = "orders.order.events"
	TopicDeadLetterQueue = TopicOrderEvents + dlqSuffix

	dlqSuffix = ".dlq"
)

// Заголовки записей.
const (
	HeaderEventType     = "x-event-type"
	HeaderAggregateType = "x-aggregate-type"
	HeaderOutboxID      = "x-outbox-id"
	HeaderOriginalTopic = "x-original-topic"
	HeaderErrorMessage  = "x-error-message"
	HeaderFailedAt      = "x-failed-at"
)

// Envelope — формат сообщения о событии заказа в топике.
type Envelope struct {
	ID            string          `json:"id"`
	AggregateType string          `json:"aggregate_type"`
	AggregateID   string          `json:"aggregate_id"`
	EventType     string          `json:"event_type"`
	Payload       json.RawMessage `json:"payload"`
	PublishedAt   time.Time       `json:"published_at"`
}
