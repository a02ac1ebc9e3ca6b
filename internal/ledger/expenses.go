package ledger

import (
	"context"
	"log/slog"

	"github.com/mmynk/hisaab/internal/calculator"
	"github.com/mmynk/hisaab/internal/models"
	"github.com/mmynk/hisaab/internal/money"
	"github.com/mmynk/hisaab/internal/storage"
)

// ExpenseRecorder records expenses split equally among group members.
type ExpenseRecorder struct {
	store storage.Store
}

// NewExpenseRecorder creates an ExpenseRecorder.
func NewExpenseRecorder(store storage.Store) *ExpenseRecorder {
	return &ExpenseRecorder{store: store}
}

// RecordExpense validates in, then in one transaction writes the expense, one
// share per participant and the balance of every non-payer participant
// towards the payer. Nothing is written if any step fails.
//
// The amount is split in cents; the remainder goes one cent each to the first
// participants in the order given.
func (r *ExpenseRecorder) RecordExpense(ctx context.Context, in ExpenseInput) (*models.Expense, error) {
	v, err := ValidateExpense(in)
	if err != nil {
		return nil, err
	}

	var expenseID int64
	err = r.store.InTx(ctx, func(tx storage.Tx) error {
		m := NewMembership(tx)
		if err := m.requireParticipant(ctx, v.GroupID, v.PayerID); err != nil {
			return err
		}
		for _, id := range v.ParticipantIDs {
			if err := m.requireParticipant(ctx, v.GroupID, id); err != nil {
				return err
			}
		}

		portions, err := calculator.SplitEqually(v.AmountCents, v.ParticipantIDs)
		if err != nil {
			return invalid("amount", "%v", err)
		}

		expense := &models.Expense{
			Description: v.Description,
			Amount:      money.FromCents(v.AmountCents),
			PayerID:     v.PayerID,
			GroupID:     v.GroupID,
			Kind:        models.KindExpense,
		}
		if err := tx.CreateExpense(ctx, expense); err != nil {
			return err
		}

		shares := make([]models.ExpenseShare, len(portions))
		for i, p := range portions {
			shares[i] = models.ExpenseShare{UserID: p.UserID, Amount: money.FromCents(p.Cents)}
		}
		if err := tx.CreateShares(ctx, expense.ID, shares); err != nil {
			return err
		}

		for _, p := range portions {
			if p.UserID == v.PayerID {
				continue
			}
			if err := tx.AddToBalance(ctx, v.GroupID, p.UserID, v.PayerID, money.FromCents(p.Cents)); err != nil {
				return err
			}
		}

		expenseID = expense.ID
		return nil
	})
	if err != nil {
		return nil, fromStore("record expense", err)
	}

	slog.Debug("Expense recorded", "expense_id", expenseID, "group_id", v.GroupID, "payer_id", v.PayerID, "participants", len(v.ParticipantIDs))

	expense, err := r.store.GetExpense(ctx, expenseID)
	if err != nil {
		return nil, fromStore("get expense", err)
	}
	return expense, nil
}
