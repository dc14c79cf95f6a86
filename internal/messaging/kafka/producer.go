package kafka

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"
)

// DefaultClientID — client.id producer'а сервиса заказов.
const DefaultClientID = "orders-service"

// ProducerConfig — параметры подключения к Kafka.
type ProducerConfig struct {
	Brokers  []string
	ClientID string
	// MaxRetries — повторы внутри sarama до возврата ошибки в outbox.
	MaxRetries int
}

// Message — запись для отправки в топик.
type Message struct {
	Topic   string
	Key     string
	Value   any
	Headers map[string]string
}

// Producer публикует события заказов в Kafka.
type Producer struct {
	sync   sarama.SyncProducer
	logger *log.Entry
}

// saramaConfig собирает конфигурацию идемпотентного producer'а. Ключ сообщения хешируется
// в партицию, поэтому события одного заказа попадают в одну партицию по порядку.
func saramaConfig(cfg ProducerConfig) *sarama.Config {
	config := sarama.NewConfig()
	config.ClientID = cfg.ClientID
	if config.ClientID == "" {
		config.ClientID = DefaultClientID
	}
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	if cfg.MaxRetries > 0 {
		config.Producer.Retry.Max = cfg.MaxRetries
	}
	config.Producer.Return.Successes = true
	config.Producer.Partitioner = sarama.NewHashPartitioner
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1
	return config
}

// NewProducer подключается к брокерам.
func NewProducer(cfg ProducerConfig, logger *log.Entry) (*Producer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka brokers are not configured")
	}

	sync, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	return wrapProducer(sync, logger), nil
}

func wrapProducer(sync sarama.SyncProducer, logger *log.Entry) *Producer {
	if logger == nil {
		logger = log.WithField("component", "kafka-producer")
	}
	return &Producer{sync: sync, logger: logger}
}

// Send сериализует Value в JSON и синхронно отправляет запись.
func (p *Producer) Send(m Message) error {
	value, err := json.Marshal(m.Value)
	if err != nil {
		return fmt.Errorf("marshal %s message: %w", m.Topic, err)
	}

	msg := &sarama.ProducerMessage{
		Topic:     m.Topic,
		Key:       sarama.StringEncoder(m.Key),
		Value:     sarama.ByteEncoder(value),
		Timestamp: time.Now(),
		Headers:   make([]sarama.RecordHeader, 0, len(m.Headers)),
	}
	for name, v := range m.Headers {
		msg.Headers = append(msg.Headers, sarama.RecordHeader{Key: []byte(name), Value: []byte(v)})
	}

	entry := p.logger.WithFields(log.Fields{"topic": m.Topic, "key": m.Key})
	partition, offset, err := p.sync.SendMessage(msg)
	if err != nil {
		entry.WithError(err).Error("kafka send failed")
		return fmt.Errorf("send to %s: %w", m.Topic, err)
	}
	entry.WithFields(log.Fields{"partition": partition, "offset": offset}).Debug("kafka message sent")
	return nil
}

// Close закрывает producer.
func (p *Producer) Close() error {
	if err := p.sync.Close(); err != nil {
		return fmt.Errorf("close kafka producer: %w", err)
	}
	return nil
}
