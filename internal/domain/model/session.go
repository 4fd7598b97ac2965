package model

import "time"

// ConversationState identifies the current step of the ordering dialogue.
type ConversationState string

const (
	StateStart             ConversationState = "start"
	StateMenu              ConversationState = "menu"
	StateSelecting         ConversationState = "selecting"
	StateEditingCart       ConversationState = "editing_cart"
	StateAskNote           ConversationState = "ask_note"
	StateAwaitNoteText     ConversationState = "await_note_text"
	StateAwaitAddress      ConversationState = "await_address"
	StateChoosePayment     ConversationState = "choose_payment"
	StateAwaitChangeAmount ConversationState = "await_change_amount"
	StateConfirmCancel     ConversationState = "confirm_cancel"
	StatePostOrder         ConversationState = "post_order"
)

// PaymentMethod enumerates accepted payment options.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "dinheiro"
	PaymentPix  PaymentMethod = "pix"
	PaymentCard PaymentMethod = "cartao"
)

// DefaultCustomerName is used until the transport supplies a display name.
const DefaultCustomerName = "Cliente"

// Session is the mutable per-customer order state. It is mutated exclusively
// by the conversation engine while the session store serializes access per
// customer.
type Session struct {
	CustomerID   string            `json:"customer_id"`
	CustomerName string            `json:"customer_name"`
	Items        []CartLine        `json:"items"`
	State        ConversationState `json:"state"`
	Address      string            `json:"address,omitempty"`
	Payment      PaymentMethod     `json:"payment,omitempty"`
	Change       *ChangeRequest    `json:"change,omitempty"`
	Note         string            `json:"note,omitempty"`
	OrderRef     string            `json:"order_ref,omitempty"`

	HumanHandoffUntil time.Time `json:"human_handoff_until,omitempty"`
	CompletedAt       time.Time `json:"completed_at,omitempty"`
	LastActivityAt    time.Time `json:"last_activity_at"`
	CreatedAt         time.Time `json:"created_at"`
}

// NewSession creates a fresh session in the initial state.
func NewSession(customerID string, now time.Time) *Session {
	return &Session{
		CustomerID:     customerID,
		CustomerName:   DefaultCustomerName,
		State:          StateStart,
		LastActivityAt: now,
		CreatedAt:      now,
	}
}

// Clone returns an independent copy of the session, including its cart.
func (s *Session) Clone() *Session {
	cp := *s
	if s.Items != nil {
		cp.Items = append([]CartLine(nil), s.Items...)
	}
	if s.Change != nil {
		ch := *s.Change
		cp.Change = &ch
	}
	return &cp
}

// RestoreFrom copies every field of snapshot back into the session.
func (s *Session) RestoreFrom(snapshot *Session) {
	*s = *snapshot.Clone()
}

// ResetOrder clears the finished order so the next contact starts a fresh
// one. Customer identity and activity timestamps are kept.
func (s *Session) ResetOrder() {
	s.Items = nil
	s.Address = ""
	s.Payment = ""
	s.Change = nil
	s.Note = ""
	s.OrderRef = ""
	s.CompletedAt = time.Time{}
}

// CartEmpty reports whether the cart holds no lines.
func (s *Session) CartEmpty() bool { return len(s.Items) == 0 }

// HandoffActive reports whether a human handoff window covers now.
func (s *Session) HandoffActive(now time.Time) bool {
	return !s.HumanHandoffUntil.IsZero() && now.Before(s.HumanHandoffUntil)
}

// Completed reports whether the order was finalized.
func (s *Session) Completed() bool { return !s.CompletedAt.IsZero() }

// InboundEvent is one message delivered by a transport for a customer.
type InboundEvent struct {
	CustomerID  string
	Text        string
	DisplayName string
}

// Document references a binary asset delivered through the messaging
// collaborator, typically the menu PDF.
type Document struct {
	Path    string
	Caption string
}

// Option is a quick-reply choice rendered by the web chat widget.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
