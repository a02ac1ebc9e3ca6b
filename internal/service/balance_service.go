package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/hisaab/internal/ledger"
	"github.com/mmynk/hisaab/internal/money"
	"github.com/mmynk/hisaab/pkg/api"
	"github.com/mmynk/hisaab/pkg/api/apiconnect"
)

// BalanceService implements the Connect BalanceService
type BalanceService struct {
	apiconnect.UnimplementedBalanceServiceHandler
	ledger *ledger.Ledger
}

// NewBalanceService creates a new BalanceService over the given ledger.
func NewBalanceService(l *ledger.Ledger) *BalanceService {
	return &BalanceService{ledger: l}
}

// GetUserBalances returns the caller's net position in each of their groups.
func (s *BalanceService) GetUserBalances(ctx context.Context, req *connect.Request[api.GetUserBalancesRequest]) (*connect.Response[api.GetUserBalancesResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	overview, err := s.ledger.UserBalances(ctx, userID)
	if err != nil {
		logFailure(ctx, "GetUserBalances failed", "user_id", userID, "error", err)
		return nil, toConnectError(err)
	}

	groups := make([]*api.GroupBalance, len(overview.Groups))
	for i, g := range overview.Groups {
		groups[i] = &api.GroupBalance{GroupId: g.GroupID, GroupName: g.GroupName, Net: money.Format(g.Net)}
	}

	slog.Info("Balance calculation complete", "user_id", userID, "groups", len(groups))
	return connect.NewResponse(&api.GetUserBalancesResponse{
		UserId: userID,
		Groups: groups,
		Total:  money.Format(overview.Total),
	}), nil
}

// GetGroupBalances returns who owes whom in a group, plus the caller's net.
func (s *BalanceService) GetGroupBalances(ctx context.Context, req *connect.Request[api.GetGroupBalancesRequest]) (*connect.Response[api.GetGroupBalancesResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	groupID := req.Msg.GroupId

	if err := s.ledger.RequireMember(ctx, groupID, userID); err != nil {
		return nil, toConnectError(err)
	}

	balances, err := s.ledger.GroupBalances(ctx, groupID)
	if err != nil {
		logFailure(ctx, "GetGroupBalances failed", "group_id", groupID, "error", err)
		return nil, toConnectError(err)
	}
	net, err := s.ledger.UserGroupBalance(ctx, userID, groupID)
	if err != nil {
		logFailure(ctx, "GetGroupBalances failed", "group_id", groupID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.GetGroupBalancesResponse{
		GroupId:  groupID,
		Balances: toAPIDebts(balances),
		Net:      money.Format(net),
	}), nil
}

// SuggestSettlements proposes payments that would clear the group.
func (s *BalanceService) SuggestSettlements(ctx context.Context, req *connect.Request[api.SuggestSettlementsRequest]) (*connect.Response[api.SuggestSettlementsResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.ledger.RequireMember(ctx, req.Msg.GroupId, userID); err != nil {
		return nil, toConnectError(err)
	}

	payments, err := s.ledger.SuggestSettlements(ctx, req.Msg.GroupId)
	if err != nil {
		logFailure(ctx, "SuggestSettlements failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.SuggestSettlementsResponse{Payments: toAPIPayments(payments)}), nil
}

// RebuildBalances recomputes the group's balances from its expenses.
func (s *BalanceService) RebuildBalances(ctx context.Context, req *connect.Request[api.RebuildBalancesRequest]) (*connect.Response[api.RebuildBalancesResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.ledger.RequireMember(ctx, req.Msg.GroupId, userID); err != nil {
		return nil, toConnectError(err)
	}

	balances, err := s.ledger.RebuildBalances(ctx, req.Msg.GroupId)
	if err != nil {
		logFailure(ctx, "RebuildBalances failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.RebuildBalancesResponse{Balances: toAPIDebts(balances)}), nil
}
