package model

import "github.com/shopspring/decimal"

// ChangeKind classifies a parsed cash change request.
type ChangeKind string

const (
	ChangeNone    ChangeKind = "none"
	ChangeAmount  ChangeKind = "amount"
	ChangeInvalid ChangeKind = "invalid"
)

// ChangeRequest is the parsed "troco para" answer. The amount is stored as
// given and is never validated against the order total.
type ChangeRequest struct {
	Kind   ChangeKind      `json:"kind"`
	Amount decimal.Decimal `json:"amount"`
}
