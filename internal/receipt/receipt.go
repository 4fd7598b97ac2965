package receipt

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/polkiloo/burgerbot/internal/domain/model"
	"github.com/polkiloo/burgerbot/internal/pricing"
)

const width = 40

// Render produces the fixed-width text receipt for a finalized order. The
// order is expected to be validated already: non-empty cart, address and
// payment method set.
func Render(sess *model.Session, totals model.Totals, storeName string, now time.Time) string {
	var b strings.Builder

	rule := strings.Repeat("=", width)
	thin := strings.Repeat("-", width)

	b.WriteString(rule + "\n")
	b.WriteString(center(strings.ToUpper(StripGlyphs(storeName))) + "\n")
	b.WriteString(center(now.Format("02/01/2006 15:04")) + "\n")
	if sess.OrderRef != "" {
		b.WriteString("Pedido: " + sess.OrderRef + "\n")
	}
	b.WriteString(fmt.Sprintf("Cliente: %s (%s)\n", StripGlyphs(sess.CustomerName), sess.CustomerID))
	b.WriteString(thin + "\n")

	for _, item := range sess.Items {
		b.WriteString(priceLine(StripGlyphs(item.Name), pricing.FormatBRL(item.Price)))
	}
	if sess.Note != "" {
		b.WriteString("Obs: " + StripGlyphs(sess.Note) + "\n")
	}

	b.WriteString(thin + "\n")
	b.WriteString(priceLine("Subtotal:", pricing.FormatBRL(totals.Subtotal)))
	b.WriteString(priceLine("Taxa de entrega (10%):", pricing.FormatBRL(totals.DeliveryFee)))
	b.WriteString(priceLine("Total:", pricing.FormatBRL(totals.Total)))
	b.WriteString(thin + "\n")

	b.WriteString("Entrega: " + StripGlyphs(sess.Address) + "\n")
	b.WriteString("Pagamento: " + paymentLabel(sess.Payment) + "\n")
	if sess.Payment == model.PaymentCash && sess.Change != nil {
		switch sess.Change.Kind {
		case model.ChangeNone:
			b.WriteString("Troco: não precisa\n")
		case model.ChangeAmount:
			b.WriteString("Troco para: " + pricing.FormatBRL(sess.Change.Amount) + "\n")
		}
	}
	b.WriteString(rule)

	return b.String()
}

func paymentLabel(method model.PaymentMethod) string {
	switch method {
	case model.PaymentCash:
		return "Dinheiro"
	case model.PaymentPix:
		return "PIX"
	case model.PaymentCard:
		return "Cartão"
	default:
		return string(method)
	}
}

func priceLine(label, price string) string {
	pad := width - len([]rune(label)) - len([]rune(price))
	if pad < 1 {
		pad = 1
	}
	return label + strings.Repeat(" ", pad) + price + "\n"
}

func center(s string) string {
	runes := len([]rune(s))
	if runes >= width {
		return s
	}
	return strings.Repeat(" ", (width-runes)/2) + s
}

// StripGlyphs removes emoji and other decorative symbols so receipt columns
// stay aligned. Accented Latin text passes through untouched.
func StripGlyphs(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < 0x2000 || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
