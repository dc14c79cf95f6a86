package domain

import "github.com/shopspring/decimal"

// Product — снимок товара из внешнего сервиса товаров.
type Product struct {
	ID          string
	Name        string
	Category    string
	Make        string
	Description string
	Price       decimal.Decimal
	Quantity    int32
}

// ProductLine — строка запроса на списание остатков.
type ProductLine struct {
	ProductID string
	Quantity  int32
}

// Fulfillment — ответ сервиса товаров на orderRequest.
type Fulfillment struct {
	// OK — все строки запроса исполнены, остатки списаны.
	OK bool
	// Products содержит по одному снимку на строку запроса при OK.
	Products []Product
	// Message — причина отказа при !OK.
	Message string
}
