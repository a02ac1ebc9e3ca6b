package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/hisaab/internal/models"
)

// CreateGroup creates a group owned by creatorID. The creator always joins;
// memberIDs are added too, ignoring duplicates and the creator. Every member
// must be an existing user.
func (l *Ledger) CreateGroup(ctx context.Context, creatorID int64, name string, memberIDs []int64) (*models.Group, error) {
	name, err := ValidateGroupName(name)
	if err != nil {
		return nil, err
	}

	members := []int64{creatorID}
	seen := map[int64]bool{creatorID: true}
	for _, id := range memberIDs {
		if !seen[id] {
			seen[id] = true
			members = append(members, id)
		}
	}
	for _, id := range members {
		if _, err := l.store.GetUser(ctx, id); err != nil {
			return nil, fromStore("get user", err)
		}
	}

	group := &models.Group{Name: name, CreatedBy: creatorID, MemberIDs: members}
	if err := l.store.CreateGroup(ctx, group); err != nil {
		return nil, fromStore("create group", err)
	}

	slog.Info("Group created", "group_id", group.ID, "created_by", creatorID, "members", len(members))
	return l.getGroup(ctx, group.ID)
}

// AddMember adds userID to a group the caller belongs to.
// Adding an existing member changes nothing.
func (l *Ledger) AddMember(ctx context.Context, callerID, groupID, userID int64) (*models.Group, error) {
	if err := l.RequireMember(ctx, groupID, callerID); err != nil {
		return nil, err
	}
	if _, err := l.store.GetUser(ctx, userID); err != nil {
		return nil, fromStore("get user", err)
	}
	if err := l.store.AddMember(ctx, groupID, userID); err != nil {
		return nil, fromStore("add member", err)
	}
	return l.getGroup(ctx, groupID)
}

// ListGroups returns the groups the caller belongs to.
func (l *Ledger) ListGroups(ctx context.Context, callerID int64) ([]*models.Group, error) {
	groups, err := l.store.ListGroupsForUser(ctx, callerID)
	if err != nil {
		return nil, fromStore("list groups", err)
	}
	return groups, nil
}

// GetGroup returns a group the caller belongs to.
func (l *Ledger) GetGroup(ctx context.Context, callerID, groupID int64) (*models.Group, error) {
	if err := l.RequireMember(ctx, groupID, callerID); err != nil {
		return nil, err
	}
	return l.getGroup(ctx, groupID)
}

// ListExpenses returns a group's expenses, or with groupID 0 the expenses of
// every group the caller belongs to. Newest first.
func (l *Ledger) ListExpenses(ctx context.Context, callerID, groupID int64) ([]*models.Expense, error) {
	if groupID == 0 {
		expenses, err := l.store.ListExpensesForUser(ctx, callerID)
		if err != nil {
			return nil, fromStore("list expenses", err)
		}
		return expenses, nil
	}

	if err := l.RequireMember(ctx, groupID, callerID); err != nil {
		return nil, err
	}
	expenses, err := l.store.ListExpensesByGroup(ctx, groupID)
	if err != nil {
		return nil, fromStore("list expenses", err)
	}
	return expenses, nil
}

// GetExpense returns an expense from a group the caller belongs to.
// Every write path sets a group, so a row without one is reported as not
// found rather than exposed.
func (l *Ledger) GetExpense(ctx context.Context, callerID, expenseID int64) (*models.Expense, error) {
	expense, err := l.store.GetExpense(ctx, expenseID)
	if err != nil {
		return nil, fromStore("get expense", err)
	}
	if expense.GroupID == 0 {
		return nil, fmt.Errorf("%w: expense %d", ErrNotFound, expenseID)
	}
	if err := l.RequireMember(ctx, expense.GroupID, callerID); err != nil {
		return nil, err
	}
	return expense, nil
}

func (l *Ledger) getGroup(ctx context.Context, groupID int64) (*models.Group, error) {
	group, err := l.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, fromStore("get group", err)
	}
	return group, nil
}
