package models

import "github.com/shopspring/decimal"

// Balance is a directed debt between two members of a group.
//
// The store keeps a single signed edge per pair of users; reads normalise it
// so that Amount is always positive and DebtorID is the side that owes.
type Balance struct {
	// GroupID is the group the debt was incurred in.
	GroupID int64

	// DebtorID is the user who owes.
	DebtorID int64

	// CreditorID is the user who is owed.
	CreditorID int64

	// Amount is the positive amount owed.
	Amount decimal.Decimal
}
