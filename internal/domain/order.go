package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// OrderStatus описывает жизненный цикл заказа.
type OrderStatus string

const (
	// OrderStatusConfirmed — начальный статус нового заказа.
	OrderStatusConfirmed OrderStatus = "Confirmed"
	// OrderStatusShipped — заказ передан в доставку.
	OrderStatusShipped OrderStatus = "Shipped"
	// OrderStatusDelivered — заказ доставлен, статус терминальный.
	OrderStatusDelivered OrderStatus = "Delivered"
	// OrderStatusCanceled — заказ отменён, статус терминальный.
	OrderStatusCanceled OrderStatus = "Canceled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusConfirmed: {OrderStatusShipped, OrderStatusCanceled},
	OrderStatusShipped:   {OrderStatusDelivered, OrderStatusCanceled},
}

// OrderStatuses возвращает все допустимые статусы.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered, OrderStatusCanceled}
}

// ParseOrderStatus сопоставляет строку со статусом без учёта регистра.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	value := strings.TrimSpace(raw)
	for _, status := range OrderStatuses() {
		if strings.EqualFold(value, string(status)) {
			return status, nil
		}
	}
	return "", ErrStatusNotFound
}

// Valid проверяет, что статус относится к поддерживаемым значениям.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered, OrderStatusCanceled:
		return true
	default:
		return false
	}
}

// Terminal сообщает, что из статуса нет переходов.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCanceled
}

// CanTransitionTo проверяет наличие перехода s -> next в графе статусов.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderItem представляет одну позицию заказа.
type OrderItem struct {
	OrderID   string
	ProductID string
	// Quantity — количество единиц товара, строго больше нуля.
	Quantity int32
	// Price — цена за единицу на момент создания заказа, после создания не меняется.
	Price decimal.Decimal
	// Product заполняется при чтении из сервиса товаров и не сохраняется.
	// nil означает, что данные о товаре получить не удалось.
	Product *Product
	Timestamps
}

// LineTotal возвращает quantity * price.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt32(i.Quantity))
}

// Order агрегирует заказ и его позиции.
type Order struct {
	ID           string
	PhoneNumber  string
	Email        string
	CustomerName string
	Address      string
	Status       OrderStatus
	Items        []OrderItem
	Timestamps
}

// Total возвращает сумму quantity * price по всем позициям.
func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// ProductIDs возвращает идентификаторы товаров в порядке позиций.
func (o Order) ProductIDs() []string {
	ids := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		ids = append(ids, item.ProductID)
	}
	return ids
}
