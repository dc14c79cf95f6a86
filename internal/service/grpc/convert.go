package grpcsvc

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	"github.com/vladislavdragonenkov/orders/internal/service/orders"
	ordersv1 "github.com/vladislavdragonenkov/orders/proto/orders/v1"
)

// FilterFromWire переводит запрос поиска в доменный фильтр.
// Некорректные границы суммы возвращают ErrInvalidRequest.
func FilterFromWire(req *ordersv1.OrderFilterRequest) (domain.OrderFilter, error) {
	filter := domain.OrderFilter{
		PhoneNumber:  strings.TrimSpace(req.GetPhoneNumber()),
		Email:        strings.TrimSpace(req.GetEmail()),
		CustomerName: strings.TrimSpace(req.GetCustomerName()),
		Address:      strings.TrimSpace(req.GetAddress()),
		Status:       domain.OrderStatus(strings.TrimSpace(req.GetStatus())),
		FromDate:     timeFromWire(req.GetFromDate()),
		ToDate:       timeFromWire(req.GetToDate()),
	}

	var err error
	if filter.MinTotal, err = decimalFromWire("min_total", req.GetMinTotal()); err != nil {
		return domain.OrderFilter{}, err
	}
	if filter.MaxTotal, err = decimalFromWire("max_total", req.GetMaxTotal()); err != nil {
		return domain.OrderFilter{}, err
	}
	return filter, nil
}

func decimalFromWire(field, raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not a decimal: %q", domain.ErrInvalidRequest, field, raw)
	}
	return &value, nil
}

func timeFromWire(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.AsTime()
	return &t
}

func timeToWire(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

// NewOrderFromWire переводит запрос создания во входные данные сервиса.
func NewOrderFromWire(req *ordersv1.CreateOrderRequest) orders.NewOrder {
	items := make([]orders.NewOrderItem, 0, len(req.GetOrderProducts()))
	for _, p := range req.GetOrderProducts() {
		items = append(items, orders.NewOrderItem{ProductID: p.GetProductId(), Quantity: p.GetQuantity()})
	}
	return orders.NewOrder{
		PhoneNumber:  req.GetPhoneNumber(),
		Email:        req.GetEmail(),
		CustomerName: req.GetCustomerName(),
		Address:      req.GetAddress(),
		Items:        items,
	}
}

// OrderToWire переводит заказ в сообщение ответа.
func OrderToWire(order domain.Order) *ordersv1.Order {
	items := make([]*ordersv1.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		wire := &ordersv1.OrderItem{
			OrderId:   item.OrderID,
			ProductId: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price.String(),
			CreatedAt: timestamppb.New(item.CreatedAt),
			UpdatedAt: timestamppb.New(item.UpdatedAt),
			DeletedAt: timeToWire(item.DeletedAt),
		}
		if item.Product != nil {
			wire.Product = &ordersv1.Product{
				Id:          item.Product.ID,
				Name:        item.Product.Name,
				Category:    item.Product.Category,
				Make:        item.Product.Make,
				Description: item.Product.Description,
				Price:       item.Product.Price.String(),
				Quantity:    item.Product.Quantity,
			}
		}
		items = append(items, wire)
	}

	return &ordersv1.Order{
		Id:           order.ID,
		PhoneNumber:  order.PhoneNumber,
		Email:        order.Email,
		CustomerName: order.CustomerName,
		Address:      order.Address,
		Status:       string(order.Status),
		Total:        order.Total().String(),
		OrderItems:   items,
		CreatedAt:    timestamppb.New(order.CreatedAt),
		UpdatedAt:    timestamppb.New(order.UpdatedAt),
		DeletedAt:    timeToWire(order.DeletedAt),
	}
}
