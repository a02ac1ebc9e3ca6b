package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/hisaab/internal/ledger"
	"github.com/mmynk/hisaab/pkg/api"
	"github.com/mmynk/hisaab/pkg/api/apiconnect"
)

// ExpenseService implements the Connect ExpenseService
type ExpenseService struct {
	apiconnect.UnimplementedExpenseServiceHandler
	ledger *ledger.Ledger
}

// NewExpenseService creates a new ExpenseService over the given ledger.
func NewExpenseService(l *ledger.Ledger) *ExpenseService {
	return &ExpenseService{ledger: l}
}

// AddExpense records an expense split equally among the participants.
// The caller must belong to the group; the payer defaults to the caller.
func (s *ExpenseService) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("AddExpense request received",
		"group_id", req.Msg.GroupId,
		"amount", req.Msg.Amount,
		"participants", len(req.Msg.ParticipantIds),
	)

	if err := s.ledger.RequireMember(ctx, req.Msg.GroupId, userID); err != nil {
		return nil, toConnectError(err)
	}

	amount, err := parseAmount(req.Msg.Amount)
	if err != nil {
		return nil, err
	}
	payerID := req.Msg.PayerId
	if payerID == 0 {
		payerID = userID
	}

	expense, err := s.ledger.RecordExpense(ctx, ledger.ExpenseInput{
		Description:    req.Msg.Description,
		Amount:         amount,
		PayerID:        payerID,
		GroupID:        req.Msg.GroupId,
		ParticipantIDs: req.Msg.ParticipantIds,
	})
	if err != nil {
		logFailure(ctx, "AddExpense failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Expense recorded", "expense_id", expense.ID)
	return connect.NewResponse(&api.AddExpenseResponse{Expense: toAPIExpense(expense)}), nil
}

// ListExpenses lists one group's expenses, or all of the caller's.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	expenses, err := s.ledger.ListExpenses(ctx, userID, req.Msg.GroupId)
	if err != nil {
		logFailure(ctx, "ListExpenses failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*api.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = toAPIExpense(e)
	}
	return connect.NewResponse(&api.ListExpensesResponse{Expenses: out}), nil
}

// GetExpense retrieves one expense with its shares.
func (s *ExpenseService) GetExpense(ctx context.Context, req *connect.Request[api.GetExpenseRequest]) (*connect.Response[api.GetExpenseResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	expense, err := s.ledger.GetExpense(ctx, userID, req.Msg.ExpenseId)
	if err != nil {
		logFailure(ctx, "GetExpense failed", "expense_id", req.Msg.ExpenseId, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.GetExpenseResponse{Expense: toAPIExpense(expense)}), nil
}

// RecordSettlement records a payment between two members of a group.
// The caller must belong to the group; the payer defaults to the caller.
func (s *ExpenseService) RecordSettlement(ctx context.Context, req *connect.Request[api.RecordSettlementRequest]) (*connect.Response[api.RecordSettlementResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("RecordSettlement request received",
		"group_id", req.Msg.GroupId,
		"payee_id", req.Msg.PayeeId,
		"amount", req.Msg.Amount,
	)

	if err := s.ledger.RequireMember(ctx, req.Msg.GroupId, userID); err != nil {
		return nil, toConnectError(err)
	}

	amount, err := parseAmount(req.Msg.Amount)
	if err != nil {
		return nil, err
	}
	payerID := req.Msg.PayerId
	if payerID == 0 {
		payerID = userID
	}

	expense, err := s.ledger.RecordSettlement(ctx, ledger.SettlementInput{
		GroupID: req.Msg.GroupId,
		PayerID: payerID,
		PayeeID: req.Msg.PayeeId,
		Amount:  amount,
		Note:    req.Msg.Note,
	})
	if err != nil {
		logFailure(ctx, "RecordSettlement failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Settlement recorded", "expense_id", expense.ID)
	return connect.NewResponse(&api.RecordSettlementResponse{Expense: toAPIExpense(expense)}), nil
}
