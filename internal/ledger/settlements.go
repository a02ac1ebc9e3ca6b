package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/hisaab/internal/models"
	"github.com/mmynk/hisaab/internal/money"
	"github.com/mmynk/hisaab/internal/storage"
)

// SettlementRecorder records payments between two members of a group.
type SettlementRecorder struct {
	store storage.Store
}

// NewSettlementRecorder creates a SettlementRecorder.
func NewSettlementRecorder(store storage.Store) *SettlementRecorder {
	return &SettlementRecorder{store: store}
}

// RecordSettlement records that payer paid payee amount within a group.
//
// The payment is stored as an expense of kind settlement with exactly two
// shares, {payer: 0, payee: -amount}, and the payee -> payer balance grows by
// amount in the same transaction. That reduces what the payer owes the payee,
// or leaves the payee owing the payer when the payment overshoots.
func (r *SettlementRecorder) RecordSettlement(ctx context.Context, in SettlementInput) (*models.Expense, error) {
	v, err := ValidateSettlement(in)
	if err != nil {
		return nil, err
	}

	description := v.Note
	if description == "" {
		description = fmt.Sprintf("Settlement: User %d paid User %d", v.PayerID, v.PayeeID)
	}
	amount := money.FromCents(v.AmountCents)

	var expenseID int64
	err = r.store.InTx(ctx, func(tx storage.Tx) error {
		m := NewMembership(tx)
		if err := m.requireParticipant(ctx, v.GroupID, v.PayerID); err != nil {
			return err
		}
		if err := m.requireParticipant(ctx, v.GroupID, v.PayeeID); err != nil {
			return err
		}

		expense := &models.Expense{
			Description: description,
			Amount:      amount,
			PayerID:     v.PayerID,
			GroupID:     v.GroupID,
			Kind:        models.KindSettlement,
		}
		if err := tx.CreateExpense(ctx, expense); err != nil {
			return err
		}

		shares := []models.ExpenseShare{
			{UserID: v.PayerID, Amount: money.FromCents(0)},
			{UserID: v.PayeeID, Amount: amount.Neg()},
		}
		if err := tx.CreateShares(ctx, expense.ID, shares); err != nil {
			return err
		}

		if err := tx.AddToBalance(ctx, v.GroupID, v.PayeeID, v.PayerID, amount); err != nil {
			return err
		}

		expenseID = expense.ID
		return nil
	})
	if err != nil {
		return nil, fromStore("record settlement", err)
	}

	slog.Debug("Settlement recorded", "expense_id", expenseID, "group_id", v.GroupID, "payer_id", v.PayerID, "payee_id", v.PayeeID)

	expense, err := r.store.GetExpense(ctx, expenseID)
	if err != nil {
		return nil, fromStore("get expense", err)
	}
	return expense, nil
}
