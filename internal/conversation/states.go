package conversation

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/polkiloo/burgerbot/internal/domain/model"
	"github.com/polkiloo/burgerbot/internal/pricing"
	"github.com/polkiloo/burgerbot/internal/receipt"
)

func (e *Engine) handleStart(sess *model.Session) outcome {
	// A customer coming back after a finished order starts over; the
	// previous order must not leak into the new conversation.
	if sess.State == model.StatePostOrder {
		sess.ResetOrder()
	}
	sess.State = model.StateMenu
	return outcome{replies: []Reply{
		{Text: msgWelcome(sess.CustomerName, e.cfg.StoreName)},
		e.menuPromptReply(),
	}}
}

func (e *Engine) handleMenu(sess *model.Session, input string, now time.Time) outcome {
	lower := strings.ToLower(input)

	switch {
	case input == "1":
		sess.State = model.StateSelecting
		return outcome{replies: []Reply{e.catalogReply()}}

	case input == "2":
		if sess.CartEmpty() {
			return outcome{replies: []Reply{{Text: msgEmptyCartWarning}}}
		}
		sess.State = model.StateAskNote
		return outcome{replies: []Reply{askNoteReply()}}

	case input == "3":
		sess.State = model.StateConfirmCancel
		return outcome{replies: []Reply{confirmCancelReply()}}

	case input == "4":
		sess.HumanHandoffUntil = now.Add(e.cfg.HandoffWindow)
		return outcome{replies: []Reply{{Text: msgHandoffStarted}}}

	case input == "5", strings.Contains(lower, "cardapio"), strings.Contains(lower, "cardápio"):
		doc, err := e.assets.MenuDocument()
		if err != nil {
			return outcome{replies: []Reply{{Text: msgMenuUnavailable}}}
		}
		return outcome{replies: []Reply{{Text: doc.Caption, Document: &doc}}}

	case input == "6":
		if sess.CartEmpty() {
			return outcome{replies: []Reply{{Text: msgEmptyCartWarning}}}
		}
		sess.State = model.StateEditingCart
		return outcome{replies: []Reply{editCartReply(sess.Items)}}

	default:
		return outcome{replies: []Reply{{Text: msgUnrecognized}, e.menuPromptReply()}}
	}
}

func (e *Engine) handleSelecting(sess *model.Session, input string) outcome {
	id, err := strconv.Atoi(input)
	if err != nil {
		return outcome{replies: []Reply{{Text: msgItemNotFound}, e.catalogReply()}}
	}
	item, err := e.catalog.FindByID(id)
	if err != nil {
		return outcome{replies: []Reply{{Text: msgItemNotFound}, e.catalogReply()}}
	}

	sess.Items = append(sess.Items, item.Line())
	sess.State = model.StateMenu
	return outcome{replies: []Reply{
		{Text: msgItemAdded(item.Name) + "\n\n" + cartSummary(sess.Items)},
		e.menuPromptReply(),
	}}
}

func (e *Engine) handleEditingCart(sess *model.Session, input string) outcome {
	if input == "0" {
		sess.State = model.StateMenu
		return outcome{replies: []Reply{e.menuPromptReply()}}
	}

	pos, err := strconv.Atoi(input)
	if err != nil || pos < 1 || pos > len(sess.Items) {
		return outcome{replies: []Reply{{Text: msgRemoveOutOfRange(len(sess.Items))}}}
	}

	removed := sess.Items[pos-1]
	sess.Items = append(sess.Items[:pos-1], sess.Items[pos:]...)

	if sess.CartEmpty() {
		sess.State = model.StateMenu
		return outcome{replies: []Reply{
			{Text: msgItemRemoved(removed.Name) + "\n\n" + msgCartNowEmpty},
			e.menuPromptReply(),
		}}
	}
	return outcome{replies: []Reply{
		{Text: msgItemRemoved(removed.Name)},
		editCartReply(sess.Items),
	}}
}

func (e *Engine) handleAskNote(sess *model.Session, input string) outcome {
	switch input {
	case "1":
		sess.State = model.StateAwaitNoteText
		return outcome{replies: []Reply{{Text: msgAskNoteText}}}
	case "2":
		sess.Note = ""
		sess.State = model.StateAwaitAddress
		return outcome{replies: []Reply{{Text: msgAskAddress}}}
	default:
		return outcome{replies: []Reply{askNoteReply()}}
	}
}

func (e *Engine) handleAwaitNoteText(sess *model.Session, input string) outcome {
	sess.Note = input
	sess.State = model.StateAwaitAddress
	return outcome{replies: []Reply{{Text: msgNoteSaved + "\n\n" + msgAskAddress}}}
}

func (e *Engine) handleAwaitAddress(sess *model.Session, input string) outcome {
	if len([]rune(input)) < e.cfg.MinAddressLen {
		return outcome{replies: []Reply{{Text: msgAddressTooShort}}}
	}

	sess.Address = input
	sess.State = model.StateChoosePayment
	totals := pricing.ComputeTotals(sess.Items)
	return outcome{replies: []Reply{choosePaymentReply(totals)}}
}

func (e *Engine) handleChoosePayment(sess *model.Session, input string, now time.Time) outcome {
	switch input {
	case "1":
		sess.Payment = model.PaymentCash
		sess.State = model.StateAwaitChangeAmount
		return outcome{replies: []Reply{{Text: msgAskChange}}}
	case "2":
		sess.Payment = model.PaymentPix
		return e.finalize(sess, now)
	case "3":
		sess.Payment = model.PaymentCard
		return e.finalize(sess, now)
	case "4":
		sess.State = model.StateConfirmCancel
		return outcome{replies: []Reply{confirmCancelReply()}}
	default:
		return outcome{replies: []Reply{choosePaymentReply(pricing.ComputeTotals(sess.Items))}}
	}
}

func (e *Engine) handleAwaitChangeAmount(sess *model.Session, input string, now time.Time) outcome {
	change := ParseChange(input)
	if change.Kind == model.ChangeInvalid {
		return outcome{replies: []Reply{{Text: msgChangeInvalid}}}
	}
	sess.Change = &change
	return e.finalize(sess, now)
}

func (e *Engine) handleConfirmCancel(sess *model.Session, input string) outcome {
	switch input {
	case "1":
		return outcome{
			replies:       []Reply{{Text: msgOrderCancelled}},
			deleteSession: true,
		}
	case "2":
		sess.State = model.StateMenu
		return outcome{replies: []Reply{{Text: msgOrderKept}, e.menuPromptReply()}}
	default:
		return outcome{replies: []Reply{confirmCancelReply()}}
	}
}

// finalize closes the order: a finalized order always has items, an address
// and a payment method. Anything else is a contract violation and drops the
// event.
func (e *Engine) finalize(sess *model.Session, now time.Time) outcome {
	if sess.CartEmpty() || sess.Address == "" || sess.Payment == "" {
		e.logger.Error("finalize with incomplete order",
			slog.String("customer_id", sess.CustomerID))
		return outcome{}
	}

	sess.OrderRef = strings.ToUpper(uuid.NewString()[:8])
	sess.CompletedAt = now
	sess.State = model.StatePostOrder

	totals := pricing.ComputeTotals(sess.Items)
	return outcome{
		replies: []Reply{
			{Text: msgOrderConfirmed},
			{Text: receipt.Render(sess, totals, e.cfg.StoreName, now)},
		},
		completed: true,
	}
}
