package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/orders/internal/domain"
)

// OutboxTopicPublisher публикует события заказов из outbox в топик.
// Ключ записи — id заказа, поэтому события одного заказа не переставляются.
type OutboxTopicPublisher struct {
	producer *Producer
	topic    string
	// originalTopic задан только у DLQ-паблишера.
	originalTopic string
	now           func() time.Time
}

// NewOutboxPublisher создаёт паблишер событий заказа.
func NewOutboxPublisher(producer *Producer, topic string) *OutboxTopicPublisher {
	if topic == "" {
		topic = TopicOrderEvents
	}
	return &OutboxTopicPublisher{producer: producer, topic: topic, now: utcNow}
}

// NewDLQPublisher создаёт паблишер для событий, которые не удалось доставить в originalTopic.
func NewDLQPublisher(producer *Producer, originalTopic string) *OutboxTopicPublisher {
	if originalTopic == "" {
		originalTopic = TopicOrderEvents
	}
	return &OutboxTopicPublisher{
		producer:      producer,
		topic:         originalTopic + dlqSuffix,
		originalTopic: originalTopic,
		now:           utcNow,
	}
}

func utcNow() time.Time { return time.Now().UTC() }

// Topic возвращает целевой топик.
func (p *OutboxTopicPublisher) Topic() string {
	return p.topic
}

func (p *OutboxTopicPublisher) Publish(event domain.OutboxMessage) error {
	if p == nil || p.producer == nil {
		return fmt.Errorf("%w: kafka publisher is not initialized", domain.ErrOutboxPublish)
	}

	key := event.AggregateID
	if key == "" {
		key = event.ID
	}
	envelope := Envelope{
		ID:            event.ID,
		AggregateType: event.AggregateType,
		AggregateID:   event.AggregateID,
		EventType:     event.EventType,
		Payload:       json.RawMessage(event.Payload),
		PublishedAt:   p.now(),
	}

	headers := map[string]string{
		HeaderEventType:     event.EventType,
		HeaderAggregateType: event.AggregateType,
		HeaderOutboxID:      event.ID,
	}
	if p.originalTopic != "" {
		headers[HeaderOriginalTopic] = p.originalTopic
		headers[HeaderFailedAt] = envelope.PublishedAt.Format(time.RFC3339Nano)
		if reason := publishError(event.Payload); reason != "" {
			headers[HeaderErrorMessage] = reason
		}
	}

	err := p.producer.Send(Message{Topic: p.topic, Key: key, Value: envelope, Headers: headers})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrOutboxPublish, err)
	}
	return nil
}

// publishError достаёт причину из тела dead letter, если она там есть.
func publishError(payload []byte) string {
	var body struct {
		Error string `json:"publish_error"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return ""
	}
	return body.Error
}

var _ domain.OutboxPublisher = (*OutboxTopicPublisher)(nil)
