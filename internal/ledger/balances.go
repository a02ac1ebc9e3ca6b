package ledger

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/mmynk/hisaab/internal/calculator"
	"github.com/mmynk/hisaab/internal/models"
	"github.com/mmynk/hisaab/internal/money"
	"github.com/mmynk/hisaab/internal/storage"
)

// GroupNet is a user's net position within one group.
// Positive means the others owe the user.
type GroupNet struct {
	GroupID   int64
	GroupName string
	Net       decimal.Decimal
}

// UserOverview is a user's net position in every group they belong to.
type UserOverview struct {
	UserID int64
	Groups []GroupNet
	Total  decimal.Decimal
}

// Payment is a proposed transfer from one member to another.
type Payment struct {
	FromID int64
	ToID   int64
	Amount decimal.Decimal
}

// Aggregator derives balances from stored rows. Its reads have no side
// effects: two calls with no writes in between return identical results.
type Aggregator struct {
	store storage.Store
}

// NewAggregator creates an Aggregator.
func NewAggregator(store storage.Store) *Aggregator {
	return &Aggregator{store: store}
}

// UserGroupBalance returns the user's net position in a group computed from
// the group's expenses and settlements.
func (a *Aggregator) UserGroupBalance(ctx context.Context, userID, groupID int64) (decimal.Decimal, error) {
	if _, err := a.store.GetGroup(ctx, groupID); err != nil {
		return decimal.Zero, fromStore("get group", err)
	}
	net, err := groupNets(ctx, a.store, groupID)
	if err != nil {
		return decimal.Zero, err
	}
	return money.FromCents(net[userID]), nil
}

// UserBalances returns the user's net in each of their groups, ordered by
// group ID, and the total across groups.
func (a *Aggregator) UserBalances(ctx context.Context, userID int64) (*UserOverview, error) {
	groups, err := a.store.ListGroupsForUser(ctx, userID)
	if err != nil {
		return nil, fromStore("list groups", err)
	}

	overview := &UserOverview{UserID: userID, Groups: make([]GroupNet, 0, len(groups))}
	var total int64
	for _, g := range groups {
		net, err := groupNets(ctx, a.store, g.ID)
		if err != nil {
			return nil, err
		}
		total += net[userID]
		overview.Groups = append(overview.Groups, GroupNet{
			GroupID:   g.ID,
			GroupName: g.Name,
			Net:       money.FromCents(net[userID]),
		})
	}
	overview.Total = money.FromCents(total)
	return overview, nil
}

// GroupBalances returns who owes whom in a group, one entry per pair with a
// non-zero debt, ordered by (debtor, creditor).
func (a *Aggregator) GroupBalances(ctx context.Context, groupID int64) ([]*models.Balance, error) {
	if _, err := a.store.GetGroup(ctx, groupID); err != nil {
		return nil, fromStore("get group", err)
	}
	balances, err := a.store.ListBalancesByGroup(ctx, groupID)
	if err != nil {
		return nil, fromStore("list balances", err)
	}
	return balances, nil
}

// SuggestSettlements proposes payments that would clear every member's net
// position in the group.
func (a *Aggregator) SuggestSettlements(ctx context.Context, groupID int64) ([]Payment, error) {
	if _, err := a.store.GetGroup(ctx, groupID); err != nil {
		return nil, fromStore("get group", err)
	}
	net, err := groupNets(ctx, a.store, groupID)
	if err != nil {
		return nil, err
	}

	edges := calculator.SimplifyDebts(net)
	payments := make([]Payment, len(edges))
	for i, e := range edges {
		payments[i] = Payment{FromID: e.From, ToID: e.To, Amount: money.FromCents(e.Cents)}
	}
	return payments, nil
}

// RebuildBalances recomputes the group's pairwise balances from its expense
// shares and replaces the stored rows, then returns the result.
func (a *Aggregator) RebuildBalances(ctx context.Context, groupID int64) ([]*models.Balance, error) {
	err := a.store.InTx(ctx, func(tx storage.Tx) error {
		if _, err := tx.GetGroup(ctx, groupID); err != nil {
			return err
		}
		expenses, err := tx.ListExpensesByGroup(ctx, groupID)
		if err != nil {
			return err
		}
		forBalance, err := toCalculator(expenses)
		if err != nil {
			return err
		}

		if err := tx.ResetBalances(ctx, groupID); err != nil {
			return err
		}
		for _, e := range calculator.PairwiseDebts(forBalance) {
			if err := tx.AddToBalance(ctx, groupID, e.From, e.To, money.FromCents(e.Cents)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fromStore("rebuild balances", err)
	}

	slog.Info("Balances rebuilt", "group_id", groupID)
	return a.GroupBalances(ctx, groupID)
}

// groupNets computes every member's net position in cents.
func groupNets(ctx context.Context, r storage.Reader, groupID int64) (map[int64]int64, error) {
	expenses, err := r.ListExpensesByGroup(ctx, groupID)
	if err != nil {
		return nil, fromStore("list expenses", err)
	}
	forBalance, err := toCalculator(expenses)
	if err != nil {
		return nil, err
	}
	return calculator.NetBalances(forBalance), nil
}

func toCalculator(expenses []*models.Expense) ([]calculator.ExpenseForBalance, error) {
	out := make([]calculator.ExpenseForBalance, len(expenses))
	for i, e := range expenses {
		cents, err := money.ToCents(e.Amount)
		if err != nil {
			return nil, fromStore("read expense", err)
		}
		shares := make([]calculator.Portion, len(e.Shares))
		for j, s := range e.Shares {
			shareCents, err := money.ToCents(s.Amount)
			if err != nil {
				return nil, fromStore("read expense share", err)
			}
			shares[j] = calculator.Portion{UserID: s.UserID, Cents: shareCents}
		}
		out[i] = calculator.ExpenseForBalance{
			PayerID:     e.PayerID,
			AmountCents: cents,
			Settlement:  e.IsSettlement(),
			Shares:      shares,
		}
	}
	return out, nil
}
