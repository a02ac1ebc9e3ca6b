// Package ledger turns expenses and settlements into balances between the
// members of a group.
//
// The expense and share records are the source of truth. The store's balance
// table is a projection kept in step with them: both recorders update it in
// the same transaction as the records they write, and RebuildBalances
// recomputes it from the shares.
//
// Amounts are decimal.Decimal with two decimal places at the edges and int64
// cents inside, so splits and balance updates are exact.
package ledger

import (
	"github.com/mmynk/hisaab/internal/storage"
)

// Ledger bundles the membership guard, the recorders and the aggregator over
// one store, together with the group and expense queries the request surface
// needs.
type Ledger struct {
	*Membership
	*ExpenseRecorder
	*SettlementRecorder
	*Aggregator

	store storage.Store
}

// New creates a Ledger backed by store.
func New(store storage.Store) *Ledger {
	return &Ledger{
		Membership:         NewMembership(store),
		ExpenseRecorder:    NewExpenseRecorder(store),
		SettlementRecorder: NewSettlementRecorder(store),
		Aggregator:         NewAggregator(store),
		store:              store,
	}
}
