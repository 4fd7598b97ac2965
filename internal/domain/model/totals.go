package model

import "github.com/shopspring/decimal"

// Totals aggregates the monetary summary of a cart.
type Totals struct {
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal
}
