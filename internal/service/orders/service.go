// Package orders реализует операции над агрегатом заказа: чтение с
// обогащением данными о товарах, создание со списанием остатков, смену
// статуса и мягкое удаление.
package orders

import (
	"time"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	"github.com/vladislavdragonenkov/orders/internal/metrics"
)

// Имена операций для логов и метрик.
const (
	OpGetOrder          = "get_order"
	OpFindOrders        = "find_orders"
	OpCreateOrder       = "create_order"
	OpUpdateOrderStatus = "update_order_status"
	OpDeleteOrder       = "delete_order"
)

// Service оркестрирует хранилище заказов и клиент сервиса товаров.
type Service struct {
	store    domain.OrderStore
	products domain.ProductClient
	logger   *log.Entry
	metrics  *metrics.OrderMetrics
	validate *validator.Validate
	now      func() time.Time

	// filterConcurrency ограничивает число заказов, обогащаемых параллельно; <=0 без ограничения.
	filterConcurrency int
}

// Option настраивает Service.
type Option func(*Service)

// WithLogger задаёт логгер сервиса.
func WithLogger(logger *log.Entry) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics включает сбор метрик.
func WithMetrics(m *metrics.OrderMetrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithFilterConcurrency ограничивает параллелизм второго прохода поиска.
func WithFilterConcurrency(limit int) Option {
	return func(s *Service) {
		s.filterConcurrency = limit
	}
}

// NewService создаёт сервис заказов.
func NewService(store domain.OrderStore, products domain.ProductClient, opts ...Option) *Service {
	s := &Service{
		store:    store,
		products: products,
		logger:   log.WithField("component", "order-aggregate"),
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
