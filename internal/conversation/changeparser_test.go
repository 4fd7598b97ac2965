package conversation

import (
	"testing"

	"github.com/polkiloo/burgerbot/internal/domain/model"
)

func TestParseChange(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		kind   model.ChangeKind
		amount string
	}{
		{"nao with accent", "não", model.ChangeNone, ""},
		{"nao without accent", "nao", model.ChangeNone, ""},
		{"nao uppercase", "NÃO", model.ChangeNone, ""},
		{"nao padded", "  nao  ", model.ChangeNone, ""},
		{"plain integer", "50", model.ChangeAmount, "50"},
		{"currency prefix", "R$ 50,00", model.ChangeAmount, "50"},
		{"comma decimal", "12,5", model.ChangeAmount, "12.5"},
		{"dot decimal", "12.50", model.ChangeAmount, "12.5"},
		{"thousands and cents", "1.250,00", model.ChangeAmount, "1250"},
		{"embedded text", "troco para 100 reais", model.ChangeAmount, "100"},
		{"letters only", "abc", model.ChangeInvalid, ""},
		{"empty", "", model.ChangeInvalid, ""},
		{"separators only", ",.", model.ChangeInvalid, ""},
		{"double comma", "1,2,3", model.ChangeInvalid, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseChange(tc.input)
			if got.Kind != tc.kind {
				t.Fatalf("expected kind %s, got %s", tc.kind, got.Kind)
			}
			if tc.kind == model.ChangeAmount && got.Amount.String() != tc.amount {
				t.Fatalf("expected amount %s, got %s", tc.amount, got.Amount)
			}
		})
	}
}
