package orders

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vladislavdragonenkov/orders/internal/domain"
)

// GetOrderByID возвращает заказ с позициями, обогащёнными данными о товарах.
// Ошибка получения товара не прерывает запрос: у позиции остаётся Product == nil.
func (s *Service) GetOrderByID(ctx context.Context, id string) (order domain.Order, err error) {
	done := s.metrics.Observe(OpGetOrder)
	defer func() { done(statusOf(err)) }()

	return s.loadEnriched(ctx, id)
}

// GetOrderByFilter ищет заказы по фильтру и обогащает каждый найденный заказ параллельно.
// Порядок результата совпадает с порядком хранилища (created_at DESC, id DESC).
func (s *Service) GetOrderByFilter(ctx context.Context, filter domain.OrderFilter) (result []domain.Order, err error) {
	done := s.metrics.Observe(OpFindOrders)
	defer func() { done(statusOf(err)) }()

	if filter.Status != "" {
		status, err := domain.ParseOrderStatus(string(filter.Status))
		if err != nil {
			return nil, err
		}
		filter.Status = status
	}
	if filter.MinTotal != nil && filter.MaxTotal != nil && filter.MinTotal.GreaterThan(*filter.MaxTotal) {
		return []domain.Order{}, nil
	}

	ids, err := s.store.Query(ctx, filter)
	if err != nil {
		s.logger.WithError(err).WithField("operation", OpFindOrders).Error("order query failed")
		return nil, err
	}

	loaded := make([]*domain.Order, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	if s.filterConcurrency > 0 {
		g.SetLimit(s.filterConcurrency)
	}
	for i, id := range ids {
		g.Go(func() error {
			order, err := s.loadEnriched(gctx, id)
			switch {
			case err == nil:
				loaded[i] = &order
				return nil
			case domain.IsNotFound(err):
				// Заказ удалён между запросом ID и загрузкой.
				return nil
			default:
				return err
			}
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result = make([]domain.Order, 0, len(ids))
	for _, order := range loaded {
		if order != nil {
			result = append(result, *order)
		}
	}
	return result, nil
}

func (s *Service) loadEnriched(ctx context.Context, id string) (domain.Order, error) {
	order, err := s.store.FindByID(ctx, id)
	if err != nil {
		if !domain.IsNotFound(err) {
			s.logger.WithError(err).WithField("order_id", id).Error("failed to load order")
		}
		return domain.Order{}, err
	}

	s.enrich(ctx, order.Items)
	return order, nil
}

// enrich параллельно запрашивает товар для каждой позиции и дожидается всех ответов.
func (s *Service) enrich(ctx context.Context, items []domain.OrderItem) {
	var wg sync.WaitGroup
	for i := range items {
		wg.Add(1)
		go func(item *domain.OrderItem) {
			defer wg.Done()

			product, err := s.products.FindByID(ctx, item.ProductID)
			if err != nil {
				item.Product = nil
				s.metrics.RecordEnrichmentFailure()
				s.logger.WithError(err).WithFields(log.Fields{
					"order_id":   item.OrderID,
					"product_id": item.ProductID,
				}).Warn("product lookup failed, item left without product")
				return
			}
			item.Product = &product
		}(&items[i])
	}
	wg.Wait()
}
