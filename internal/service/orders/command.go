package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orders/internal/domain"
)

// NewOrder — входные данные для создания заказа.
type NewOrder struct {
	PhoneNumber  string         `validate:"required,max=32"`
	Email        string         `validate:"required,email"`
	CustomerName string         `validate:"required,max=255"`
	Address      string         `validate:"required"`
	Items        []NewOrderItem `validate:"min=1,dive"`
}

// NewOrderItem — товар и количество в создаваемом заказе.
type NewOrderItem struct {
	ProductID string `validate:"required"`
	Quantity  int32  `validate:"gt=0"`
}

// CreateOrder создаёт заказ, списывает остатки в сервисе товаров и сохраняет позиции
// по ценам из полученных снимков. Всё, кроме списания, выполняется в одной транзакции.
func (s *Service) CreateOrder(ctx context.Context, req NewOrder) (created domain.Order, err error) {
	done := s.metrics.Observe(OpCreateOrder)
	defer func() { done(statusOf(err)) }()

	if duplicates := duplicateProductIDs(req.Items); len(duplicates) > 0 {
		return domain.Order{}, fmt.Errorf("%w: %s", domain.ErrDuplicateProductID, strings.Join(duplicates, ", "))
	}
	if err := s.validate.StructCtx(ctx, req); err != nil {
		return domain.Order{}, fmt.Errorf("%w: %s", domain.ErrInvalidRequest, describeValidation(err))
	}

	lines := make([]domain.ProductLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, domain.ProductLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	fulfilled := false
	err = s.store.WithinTx(ctx, func(tx domain.OrderTx) error {
		order, err := tx.Create(ctx, domain.Order{
			PhoneNumber:  req.PhoneNumber,
			Email:        req.Email,
			CustomerName: req.CustomerName,
			Address:      req.Address,
		})
		if err != nil {
			return err
		}

		fulfillment, err := s.products.OrderRequest(ctx, lines)
		if err != nil {
			return err
		}
		if !fulfillment.OK {
			s.metrics.RecordFulfillmentRejected()
			return fmt.Errorf("%w: %s", domain.ErrFulfillmentRejected, fulfillment.Message)
		}
		fulfilled = true

		snapshots := make(map[string]domain.Product, len(fulfillment.Products))
		for _, product := range fulfillment.Products {
			snapshots[product.ID] = product
		}

		items := make([]domain.OrderItem, 0, len(lines))
		for _, line := range lines {
			snapshot, ok := snapshots[line.ProductID]
			if !ok {
				return fmt.Errorf("%w: no snapshot for product %s", domain.ErrFulfillmentRejected, line.ProductID)
			}
			items = append(items, domain.OrderItem{
				OrderID:   order.ID,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				Price:     snapshot.Price,
			})
		}

		saved, err := tx.SaveItems(ctx, items)
		if err != nil {
			return err
		}
		for i := range saved {
			snapshot := snapshots[saved[i].ProductID]
			saved[i].Product = &snapshot
		}
		order.Items = saved

		if err := s.enqueue(ctx, tx, domain.NewOrderEvent(domain.OrderEventCreated, order, order.CreatedAt)); err != nil {
			return err
		}
		created = order
		return nil
	})
	if err != nil {
		if fulfilled {
			s.metrics.RecordUncompensatedRequest()
			s.logger.WithError(err).WithField("product_ids", productIDs(lines)).
				Error("stock was decremented but order was not persisted")
		}
		return domain.Order{}, err
	}

	s.logger.WithFields(log.Fields{
		"order_id": created.ID,
		"items":    len(created.Items),
	}).Info("order created")
	return created, nil
}

// UpdateOrderStatus переводит заказ в новый статус. Возвращается заказ с позициями,
// прочитанными до изменения, и updated_at из хранилища.
func (s *Service) UpdateOrderStatus(ctx context.Context, id, rawStatus string) (updated domain.Order, err error) {
	done := s.metrics.Observe(OpUpdateOrderStatus)
	defer func() { done(statusOf(err)) }()

	order, err := s.loadEnriched(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}

	next, err := domain.ParseOrderStatus(rawStatus)
	if err != nil {
		return domain.Order{}, err
	}
	if next == order.Status {
		return domain.Order{}, domain.ErrDuplicateStatus
	}
	if !order.Status.CanTransitionTo(next) {
		return domain.Order{}, fmt.Errorf("%w: %s -> %s", domain.ErrStatusTransition, order.Status, next)
	}

	previous := order.Status
	err = s.store.WithinTx(ctx, func(tx domain.OrderTx) error {
		updatedAt, err := tx.UpdateStatus(ctx, order.ID, next)
		if err != nil {
			return err
		}
		order.Status = next
		order.UpdatedAt = updatedAt

		event := domain.NewOrderEvent(domain.OrderEventStatusChanged, order, updatedAt)
		event.PreviousStatus = previous
		return s.enqueue(ctx, tx, event)
	})
	if err != nil {
		return domain.Order{}, err
	}

	s.logger.WithFields(log.Fields{
		"order_id": order.ID,
		"from":     previous,
		"to":       next,
		"terminal": next.Terminal(),
	}).Info("order status updated")
	return order, nil
}

// DeleteOrder мягко удаляет заказ и каждую его позицию в одной транзакции.
// Сбой удаления любой позиции откатывает всё и возвращает ErrItemDeleteFailed.
func (s *Service) DeleteOrder(ctx context.Context, id string) (deleted domain.Order, err error) {
	done := s.metrics.Observe(OpDeleteOrder)
	defer func() { done(statusOf(err)) }()

	order, err := s.store.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}

	err = s.store.WithinTx(ctx, func(tx domain.OrderTx) error {
		deletedAt, updatedAt, err := tx.SoftDelete(ctx, order.ID)
		if err != nil {
			return err
		}
		order.DeletedAt = &deletedAt
		order.UpdatedAt = updatedAt

		items, err := tx.SoftDeleteItems(ctx, order.Items)
		if err != nil {
			if errors.Is(err, domain.ErrItemDeleteFailed) {
				return err
			}
			return fmt.Errorf("%w: %v", domain.ErrItemDeleteFailed, err)
		}
		order.Items = items

		return s.enqueue(ctx, tx, domain.NewOrderEvent(domain.OrderEventDeleted, order, deletedAt))
	})
	if err != nil {
		if errors.Is(err, domain.ErrItemDeleteFailed) {
			s.logger.WithError(err).WithFields(log.Fields{
				"order_id":    id,
				"product_ids": order.ProductIDs(),
			}).Warn("order delete rolled back")
		}
		return domain.Order{}, err
	}

	s.enrich(ctx, order.Items)
	s.logger.WithField("order_id", order.ID).Info("order deleted")
	return order, nil
}

func (s *Service) enqueue(ctx context.Context, tx domain.OrderTx, event domain.OrderEvent) error {
	msg, err := event.OutboxMessage()
	if err != nil {
		return err
	}
	if _, err := tx.Enqueue(ctx, msg); err != nil {
		return fmt.Errorf("enqueue %s: %w", event.EventType, err)
	}
	return nil
}

// duplicateProductIDs возвращает повторяющиеся productId в порядке первого повтора.
func duplicateProductIDs(items []NewOrderItem) []string {
	seen := make(map[string]int, len(items))
	var duplicates []string
	for _, item := range items {
		seen[item.ProductID]++
		if seen[item.ProductID] == 2 {
			duplicates = append(duplicates, item.ProductID)
		}
	}
	return duplicates
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed on %s", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

func productIDs(lines []domain.ProductLine) []string {
	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}
	return ids
}
