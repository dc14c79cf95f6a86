package metrics

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics — метрики сервиса заказов.
type OrderMetrics struct {
	operations        *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec

	// Поглощённые ошибки обогащения позиций данными о товаре.
	enrichmentFailures prometheus.Counter
	// Отказы сервиса товаров на orderRequest.
	fulfillmentRejections prometheus.Counter
	// Списания остатков, после которых локальная транзакция не закоммитилась.
	uncompensatedRequests prometheus.Counter

	inFlight prometheus.Gauge
}

// NewOrderMetrics регистрирует метрики в DefaultRegisterer.
func NewOrderMetrics() *OrderMetrics {
	return NewOrderMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewOrderMetricsWithRegisterer регистрирует метрики в заданном реестре.
// Повторная регистрация возвращает уже существующие коллекторы.
func NewOrderMetricsWithRegisterer(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &OrderMetrics{
		operations: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "orders_operations_total",
			Help: "Total number of order operations by response code",
		}, []string{"operation", "code"})),
		operationDuration: register(registerer, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "orders_operation_duration_seconds",
			Help:    "Duration of order operations in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}, []string{"operation"})),
		enrichmentFailures: register(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orders_enrichment_failures_total",
			Help: "Total number of product lookups that failed during order enrichment",
		})),
		fulfillmentRejections: register(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orders_fulfillment_rejections_total",
			Help: "Total number of order requests rejected by the product service",
		})),
		uncompensatedRequests: register(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orders_uncompensated_order_requests_total",
			Help: "Total number of fulfilled order requests whose local transaction rolled back",
		})),
		inFlight: register(registerer, prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orders_operations_in_flight",
			Help: "Number of order operations currently being processed",
		})),
	}
}

func register[C prometheus.Collector](registerer prometheus.Registerer, collector C) C {
	if err := registerer.Register(collector); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			existing, ok := already.ExistingCollector.(C)
			if !ok {
				panic(fmt.Sprintf("collector already registered with unexpected type %T", already.ExistingCollector))
			}
			return existing
		}
		panic(fmt.Sprintf("register collector: %v", err))
	}
	return collector
}

// Observe начинает учёт операции; возвращённая функция фиксирует код ответа и длительность.
func (m *OrderMetrics) Observe(operation string) func(code int) {
	if m == nil {
		return func(int) {}
	}
	started := time.Now()
	m.inFlight.Inc()
	return func(code int) {
		m.inFlight.Dec()
		m.operations.WithLabelValues(operation, strconv.Itoa(code)).Inc()
		m.operationDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
	}
}

// RecordEnrichmentFailure учитывает неудачный запрос товара при обогащении.
func (m *OrderMetrics) RecordEnrichmentFailure() {
	if m == nil {
		return
	}
	m.enrichmentFailures.Inc()
}

// RecordFulfillmentRejected учитывает отказ сервиса товаров.
func (m *OrderMetrics) RecordFulfillmentRejected() {
	if m == nil {
		return
	}
	m.fulfillmentRejections.Inc()
}

// RecordUncompensatedRequest учитывает списание без компенсации.
func (m *OrderMetrics) RecordUncompensatedRequest() {
	if m == nil {
		return
	}
	m.uncompensatedRequests.Inc()
}
