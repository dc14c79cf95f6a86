// Package grpcsvc реализует gRPC-адаптер ordersv1.OrderService поверх сервиса заказов.
package grpcsvc

import (
	"context"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	"github.com/vladislavdragonenkov/orders/internal/service/orders"
	ordersv1 "github.com/vladislavdragonenkov/orders/proto/orders/v1"
)

// OrderAggregate — операции сервиса заказов, которые публикует адаптер.
type OrderAggregate interface {
	GetOrderByID(ctx context.Context, id string) (domain.Order, error)
	GetOrderByFilter(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	CreateOrder(ctx context.Context, req orders.NewOrder) (domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id, status string) (domain.Order, error)
	DeleteOrder(ctx context.Context, id string) (domain.Order, error)
}

// OrderService реализует ordersv1.OrderServiceServer.
// Бизнес-ошибки возвращаются в поле code ответа, transport-ошибка только для пустого запроса.
type OrderService struct {
	ordersv1.UnimplementedOrderServiceServer

	orders OrderAggregate
	logger *log.Entry
}

// NewOrderService создаёт gRPC-адаптер.
func NewOrderService(aggregate OrderAggregate, logger *log.Entry) *OrderService {
	if logger == nil {
		logger = log.New().WithField("component", "order-service")
	}
	return &OrderService{orders: aggregate, logger: logger}
}

var errRequestRequired = status.Error(codes.InvalidArgument, "request is required")

// FindOrderById возвращает заказ с обогащёнными позициями.
func (s *OrderService) FindOrderById(ctx context.Context, req *ordersv1.OrderIdRequest) (*ordersv1.OrderResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}
	order, err := s.orders.GetOrderByID(ctx, req.GetId())
	return s.orderResponse("FindOrderById", order, err), nil
}

// FindOrderWithFilter ищет заказы по фильтру.
func (s *OrderService) FindOrderWithFilter(ctx context.Context, req *ordersv1.OrderFilterRequest) (*ordersv1.OrdersResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}
	filter, err := FilterFromWire(req)
	var found []domain.Order
	if err == nil {
		found, err = s.orders.GetOrderByFilter(ctx, filter)
	}
	code, message := orders.Code(err)
	if err != nil {
		s.logFailure("FindOrderWithFilter", code, err)
		return &ordersv1.OrdersResponse{Code: int32(code), Message: message}, nil
	}

	result := make([]*ordersv1.Order, 0, len(found))
	for _, order := range found {
		result = append(result, OrderToWire(order))
	}
	return &ordersv1.OrdersResponse{Code: int32(code), Message: message, Orders: result}, nil
}

// CreateOrder создаёт заказ и списывает остатки в сервисе товаров.
func (s *OrderService) CreateOrder(ctx context.Context, req *ordersv1.CreateOrderRequest) (*ordersv1.OrderResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}
	order, err := s.orders.CreateOrder(ctx, NewOrderFromWire(req))
	return s.orderResponse("CreateOrder", order, err), nil
}

// UpdateOrderStatus меняет статус заказа.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, req *ordersv1.UpdateOrderStatusRequest) (*ordersv1.OrderResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}
	order, err := s.orders.UpdateOrderStatus(ctx, req.GetOrderId(), req.GetStatus())
	return s.orderResponse("UpdateOrderStatus", order, err), nil
}

// DeleteOrder мягко удаляет заказ вместе с позициями.
func (s *OrderService) DeleteOrder(ctx context.Context, req *ordersv1.OrderIdRequest) (*ordersv1.OrderResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}
	order, err := s.orders.DeleteOrder(ctx, req.GetId())
	return s.orderResponse("DeleteOrder", order, err), nil
}

func (s *OrderService) orderResponse(method string, order domain.Order, err error) *ordersv1.OrderResponse {
	code, message := orders.Code(err)
	if err != nil {
		s.logFailure(method, code, err)
		return &ordersv1.OrderResponse{Code: int32(code), Message: message}
	}
	return &ordersv1.OrderResponse{Code: int32(code), Message: message, Order: OrderToWire(order)}
}

func (s *OrderService) logFailure(method string, code int, err error) {
	entry := s.logger.WithError(err).WithFields(log.Fields{"method": method, "code": code})
	if code >= 500 {
		entry.Error("order operation failed")
		return
	}
	entry.Debug("order operation rejected")
}
