package service

import (
	"time"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/mmynk/hisaab/internal/ledger"
	"github.com/mmynk/hisaab/internal/models"
	"github.com/mmynk/hisaab/internal/money"
	"github.com/mmynk/hisaab/pkg/api"
)

func unixToTimestamp(sec int64) *timestamppb.Timestamp {
	if sec == 0 {
		return nil
	}
	return timestamppb.New(time.Unix(sec, 0))
}

func toAPIUser(u *models.User) *api.User {
	return &api.User{
		Id:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: unixToTimestamp(u.CreatedAt),
	}
}

func toAPIGroup(g *models.Group) *api.Group {
	return &api.Group{
		Id:        g.ID,
		Name:      g.Name,
		CreatedBy: g.CreatedBy,
		MemberIds: g.MemberIDs,
		CreatedAt: unixToTimestamp(g.CreatedAt),
	}
}

func toAPIExpense(e *models.Expense) *api.Expense {
	shares := make([]*api.ExpenseShare, len(e.Shares))
	for i, s := range e.Shares {
		shares[i] = &api.ExpenseShare{UserId: s.UserID, Amount: money.Format(s.Amount)}
	}
	return &api.Expense{
		Id:          e.ID,
		Description: e.Description,
		Amount:      money.Format(e.Amount),
		PayerId:     e.PayerID,
		GroupId:     e.GroupID,
		Kind:        string(e.Kind),
		Shares:      shares,
		CreatedAt:   unixToTimestamp(e.CreatedAt),
	}
}

func toAPIDebts(balances []*models.Balance) []*api.Debt {
	debts := make([]*api.Debt, len(balances))
	for i, b := range balances {
		debts[i] = &api.Debt{DebtorId: b.DebtorID, CreditorId: b.CreditorID, Amount: money.Format(b.Amount)}
	}
	return debts
}

func toAPIPayments(payments []ledger.Payment) []*api.Payment {
	out := make([]*api.Payment, len(payments))
	for i, p := range payments {
		out[i] = &api.Payment{FromId: p.FromID, ToId: p.ToID, Amount: money.Format(p.Amount)}
	}
	return out
}

// parseAmount reads a wire amount such as "12.50".
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := money.Parse(s)
	if err != nil {
		return decimal.Decimal{}, connect.NewError(connect.CodeInvalidArgument, err)
	}
	return d, nil
}
