package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderFilter — набор необязательных условий поиска заказов, объединяемых через AND.
// Пустые строки и nil означают отсутствие условия.
type OrderFilter struct {
	// PhoneNumber и Status сравниваются точно.
	PhoneNumber string
	Status      OrderStatus
	// Email, CustomerName и Address ищутся как подстрока без учёта регистра.
	Email        string
	CustomerName string
	Address      string
	// MinTotal и MaxTotal ограничивают сумму заказа включительно.
	MinTotal *decimal.Decimal
	MaxTotal *decimal.Decimal
	// FromDate и ToDate ограничивают created_at включительно.
	FromDate *time.Time
	ToDate   *time.Time
}

// HasTotalRange сообщает, задано ли условие по сумме заказа.
func (f OrderFilter) HasTotalRange() bool {
	return f.MinTotal != nil || f.MaxTotal != nil
}

// MatchesTotal проверяет попадание суммы в диапазон фильтра.
func (f OrderFilter) MatchesTotal(total decimal.Decimal) bool {
	if f.MinTotal != nil && total.LessThan(*f.MinTotal) {
		return false
	}
	if f.MaxTotal != nil && total.GreaterThan(*f.MaxTotal) {
		return false
	}
	return true
}
