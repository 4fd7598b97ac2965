package pricing

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/burgerbot/internal/domain/model"
)

// deliveryFeeRate is the fixed surcharge applied to every delivery.
var deliveryFeeRate = decimal.RequireFromString("0.1")

// ComputeTotals sums the cart and applies the 10% delivery fee. All amounts
// are rounded to centavos.
func ComputeTotals(items []model.CartLine) model.Totals {
	subtotal := decimal.Zero
	for _, line := range items {
		subtotal = subtotal.Add(line.Price)
	}
	subtotal = subtotal.Round(2)
	fee := subtotal.Mul(deliveryFeeRate).Round(2)
	return model.Totals{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       subtotal.Add(fee),
	}
}

// FormatBRL renders an amount the Brazilian way, e.g. "R$ 29,99".
func FormatBRL(amount decimal.Decimal) string {
	return "R$ " + strings.ReplaceAll(amount.StringFixed(2), ".", ",")
}
