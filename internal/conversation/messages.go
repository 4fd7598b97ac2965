package conversation

import (
	"fmt"
	"strings"

	"github.com/polkiloo/burgerbot/internal/domain/model"
	"github.com/polkiloo/burgerbot/internal/pricing"
)

const (
	msgEmptyCartWarning = "⚠️ Seu carrinho está vazio! Adicione itens antes de continuar."
	msgCartNowEmpty     = "🛒 Seu carrinho está vazio."
	msgItemNotFound     = "😕 Item não encontrado. Digite o número de um item do cardápio."
	msgUnrecognized     = "Não entendi. 🤔"
	msgMenuUnavailable  = "😕 Desculpe, o cardápio está indisponível no momento. Tente novamente mais tarde."
	msgSendFailure      = "😕 Desculpe, tivemos um problema para responder. Pode tentar de novo?"

	msgHandoffStarted = "👨‍🍳 Conectando você com um de nossos atendentes... Aguarde, por favor."
	msgHandoffEnded   = "✅ Atendimento humano encerrado. Voltando ao atendimento automático!"

	msgAskNoteText = "📝 Pode escrever a observação do pedido:"
	msgNoteSaved   = "Observação anotada! ✅"
	msgAskAddress  = "📍 Agora me informe o endereço completo para entrega (rua, número, bairro):"

	msgAddressTooShort = "😕 Endereço incompleto. Informe rua, número e bairro, por favor."

	msgAskChange     = "💵 Troco para quanto? (responda \"não\" se não precisar de troco)"
	msgChangeInvalid = "Não entendi o valor. 😅 Informe um número (ex: 50) ou \"não\" para sem troco."

	msgOrderCancelled = "❌ Pedido cancelado com sucesso. Quando quiser, é só chamar de novo!"
	msgOrderKept      = "Pedido mantido! 👍"

	msgOrderConfirmed = "✅ PEDIDO CONFIRMADO!\nSeu pedido foi recebido e já está sendo preparado!\n⏱ Tempo estimado de entrega: 40-50 minutos."

	msgOrderPreparing  = "👨‍🍳 Seu pedido está em preparo! (15 minutos)"
	msgOrderDispatched = "🛵 Seu pedido saiu para entrega! Chegará em 10-15 minutos."
)

func msgWelcome(name, storeName string) string {
	if name == "" || name == model.DefaultCustomerName {
		return fmt.Sprintf("Olá! 👋 Bem-vindo à %s!\nEstou aqui para ajudar você a fazer seu pedido de forma rápida e fácil.", storeName)
	}
	return fmt.Sprintf("Olá, %s! 👋 Bem-vindo à %s!\nEstou aqui para ajudar você a fazer seu pedido de forma rápida e fácil.", name, storeName)
}

func msgItemAdded(name string) string {
	return fmt.Sprintf("✅ %s adicionado ao carrinho!", name)
}

func msgItemRemoved(name string) string {
	return fmt.Sprintf("🗑️ %s removido do carrinho!", name)
}

func msgRemoveOutOfRange(n int) string {
	return fmt.Sprintf("Número inválido. Digite um número entre 1 e %d, ou 0 para voltar.", n)
}

func (e *Engine) menuPromptReply() Reply {
	return Reply{
		Text: strings.Join([]string{
			"O que deseja fazer?",
			"",
			"1 - Fazer pedido",
			"2 - Finalizar pedido",
			"3 - Cancelar pedido",
			"4 - Falar com atendente",
			"5 - Receber o cardápio (PDF)",
			"6 - Editar carrinho",
			"",
			"Digite o número da opção.",
		}, "\n"),
		Options: []model.Option{
			{Label: "🍔 Fazer pedido", Value: "1"},
			{Label: "✅ Finalizar pedido", Value: "2"},
			{Label: "❌ Cancelar pedido", Value: "3"},
			{Label: "👨‍🍳 Falar com atendente", Value: "4"},
			{Label: "📄 Ver cardápio", Value: "5"},
			{Label: "🛒 Editar carrinho", Value: "6"},
		},
	}
}

var categoryHeaders = map[model.Category]string{
	model.CategoryBurgers: "🍔 LANCHES",
	model.CategoryDrinks:  "🥤 BEBIDAS",
	model.CategoryCombos:  "🔥 COMBOS",
}

func (e *Engine) catalogReply() Reply {
	var b strings.Builder
	var options []model.Option

	for _, category := range e.catalog.Categories() {
		b.WriteString(categoryHeaders[category] + "\n")
		for _, item := range e.catalog.Items(category) {
			b.WriteString(fmt.Sprintf("%d - %s - %s\n", item.ID, item.Name, pricing.FormatBRL(item.Price)))
			if item.Description != "" {
				b.WriteString("    " + item.Description + "\n")
			}
			options = append(options, model.Option{Label: item.Name, Value: fmt.Sprintf("%d", item.ID)})
		}
		b.WriteString("\n")
	}
	b.WriteString("Digite o número do item para adicionar ao carrinho.")

	return Reply{Text: b.String(), Options: options}
}

func cartSummary(items []model.CartLine) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🛒 Seu carrinho (%d itens):\n", len(items)))
	for i, line := range items {
		b.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, line.Name, pricing.FormatBRL(line.Price)))
	}
	totals := pricing.ComputeTotals(items)
	b.WriteString(fmt.Sprintf("Subtotal: %s\n", pricing.FormatBRL(totals.Subtotal)))
	b.WriteString(fmt.Sprintf("Taxa de entrega: %s\n", pricing.FormatBRL(totals.DeliveryFee)))
	b.WriteString(fmt.Sprintf("Total: %s", pricing.FormatBRL(totals.Total)))
	return b.String()
}

func editCartReply(items []model.CartLine) Reply {
	var b strings.Builder
	b.WriteString("🛒 Itens do carrinho:\n")
	options := []model.Option{{Label: "↩️ Voltar", Value: "0"}}
	for i, line := range items {
		b.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, line.Name, pricing.FormatBRL(line.Price)))
		options = append(options, model.Option{Label: fmt.Sprintf("✕ %s", line.Name), Value: fmt.Sprintf("%d", i+1)})
	}
	b.WriteString("\nDigite o número do item para remover, ou 0 para voltar.")
	return Reply{Text: b.String(), Options: options}
}

func askNoteReply() Reply {
	return Reply{
		Text: "Deseja adicionar alguma observação ao pedido?\n1 - Sim\n2 - Não",
		Options: []model.Option{
			{Label: "📝 Sim", Value: "1"},
			{Label: "Não", Value: "2"},
		},
	}
}

func choosePaymentReply(totals model.Totals) Reply {
	return Reply{
		Text: strings.Join([]string{
			"Endereço anotado! ✅",
			"",
			fmt.Sprintf("Subtotal: %s", pricing.FormatBRL(totals.Subtotal)),
			fmt.Sprintf("Taxa de entrega: %s", pricing.FormatBRL(totals.DeliveryFee)),
			fmt.Sprintf("Total do pedido: %s", pricing.FormatBRL(totals.Total)),
			"",
			"💳 Como deseja pagar?",
			"1 - Dinheiro",
			"2 - PIX",
			"3 - Cartão",
			"4 - Cancelar pedido",
		}, "\n"),
		Options: []model.Option{
			{Label: "💵 Dinheiro", Value: "1"},
			{Label: "⚡ PIX", Value: "2"},
			{Label: "💳 Cartão", Value: "3"},
			{Label: "❌ Cancelar", Value: "4"},
		},
	}
}

func confirmCancelReply() Reply {
	return Reply{
		Text: "Tem certeza que deseja cancelar o pedido?\n1 - Sim, cancelar\n2 - Não, manter pedido",
		Options: []model.Option{
			{Label: "Sim, cancelar", Value: "1"},
			{Label: "Não, manter", Value: "2"},
		},
	}
}
