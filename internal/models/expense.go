package models

import "github.com/shopspring/decimal"

// ExpenseKind distinguishes genuine splits from settlement payments.
type ExpenseKind string

const (
	// KindExpense is an amount paid by one member and split among participants.
	KindExpense ExpenseKind = "expense"

	// KindSettlement is a payment from one member to another, recorded as a
	// degenerate expense with shares {payer: 0, payee: -amount}.
	KindSettlement ExpenseKind = "settlement"
)

// Expense represents an amount paid by one user on behalf of others.
type Expense struct {
	// ID is the store-assigned identifier.
	ID int64

	// Description is a human-readable label (e.g., "Dinner", "Taxi").
	Description string

	// Amount is the positive total paid, with two decimal places.
	Amount decimal.Decimal

	// PayerID is the user who paid.
	PayerID int64

	// GroupID is the owning group. The column is nullable for older rows,
	// but the ledger always sets it.
	GroupID int64

	// Kind tells whether this is a genuine split or a settlement.
	Kind ExpenseKind

	// Shares are the participants' portions, in insertion order.
	Shares []ExpenseShare

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}

// IsSettlement reports whether the expense records a settlement payment.
func (e *Expense) IsSettlement() bool {
	return e.Kind == KindSettlement
}

// ExpenseShare is one participant's portion of an expense.
//
// For a genuine split the amount is positive: what the participant owes the
// payer (the payer's own share nets against what they paid). For a settlement
// the payee's share is -amount and the payer's is zero.
type ExpenseShare struct {
	// ID is the store-assigned identifier.
	ID int64

	// ExpenseID is the parent expense.
	ExpenseID int64

	// UserID is the participant.
	UserID int64

	// Amount is the signed share.
	Amount decimal.Decimal
}
