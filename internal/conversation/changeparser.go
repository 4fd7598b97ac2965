package conversation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/burgerbot/internal/domain/model"
)

// ParseChange interprets the answer to "troco para quanto?". "não" (accent
// optional) means no change is needed; otherwise the text is reduced to its
// digits and separators and parsed as a non-negative amount. Anything
// unparseable is invalid, never coerced to zero.
func ParseChange(text string) model.ChangeRequest {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "não" || t == "nao" {
		return model.ChangeRequest{Kind: model.ChangeNone}
	}

	var b strings.Builder
	for _, r := range t {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' {
			b.WriteRune(r)
		}
	}
	raw := b.String()
	if raw == "" {
		return model.ChangeRequest{Kind: model.ChangeInvalid}
	}

	// Brazilian input uses comma as the decimal separator and dot for
	// thousands.
	if strings.Contains(raw, ",") {
		raw = strings.ReplaceAll(raw, ".", "")
		raw = strings.Replace(raw, ",", ".", 1)
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil || amount.IsNegative() {
		return model.ChangeRequest{Kind: model.ChangeInvalid}
	}
	return model.ChangeRequest{Kind: model.ChangeAmount, Amount: amount.Round(2)}
}
