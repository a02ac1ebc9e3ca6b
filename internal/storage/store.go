// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/mmynk/hisaab/internal/models"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when an insert violates a uniqueness constraint
// (e.g., a username that is already taken).
var ErrConflict = errors.New("already exists")

// Reader is the read side of the ledger store. It is implemented both by the
// store itself and by an open transaction, so guards and reads can run in
// either.
type Reader interface {
	// GetUser retrieves a user by ID. Returns ErrNotFound if absent.
	GetUser(ctx context.Context, userID int64) (*models.User, error)

	// GetGroup retrieves a group with its member IDs. Returns ErrNotFound if absent.
	GetGroup(ctx context.Context, groupID int64) (*models.Group, error)

	// IsMember reports whether userID belongs to groupID.
	// It does not check that the group exists.
	IsMember(ctx context.Context, groupID, userID int64) (bool, error)

	// ListMemberIDs returns the group's member IDs ordered by ID.
	ListMemberIDs(ctx context.Context, groupID int64) ([]int64, error)

	// GetExpense retrieves an expense with its shares in insertion order.
	// Returns ErrNotFound if absent.
	GetExpense(ctx context.Context, expenseID int64) (*models.Expense, error)

	// ListExpensesByGroup returns the group's expenses with shares, newest first.
	ListExpensesByGroup(ctx context.Context, groupID int64) ([]*models.Expense, error)

	// ListBalancesByGroup returns the group's non-zero pairwise balances,
	// normalised to a positive amount and ordered by (debtor, creditor).
	ListBalancesByGroup(ctx context.Context, groupID int64) ([]*models.Balance, error)
}

// Tx is a unit of work. Everything written through a Tx becomes visible
// atomically when the surrounding InTx call returns nil.
type Tx interface {
	Reader

	// CreateExpense inserts the expense row and assigns expense.ID and
	// expense.CreatedAt. Shares are not written.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// CreateShares inserts the shares of an existing expense in order and
	// assigns their IDs.
	CreateShares(ctx context.Context, expenseID int64, shares []models.ExpenseShare) error

	// AddToBalance adds amount to what debtorID owes creditorID in groupID.
	// It is a single atomic upsert; a negative amount reduces the debt.
	AddToBalance(ctx context.Context, groupID, debtorID, creditorID int64, amount decimal.Decimal) error

	// ResetBalances removes every balance row of the group.
	ResetBalances(ctx context.Context, groupID int64) error
}

// Store defines the interface for ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the ledger or service layers.
type Store interface {
	Reader

	// InTx runs fn inside a write transaction. The transaction commits when fn
	// returns nil and rolls back otherwise.
	InTx(ctx context.Context, fn func(tx Tx) error) error

	// CreateUser persists a new user and assigns user.ID.
	// Returns ErrConflict if the username or email is taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername retrieves a user by username. Returns ErrNotFound if absent.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByEmail retrieves a user by email. Returns ErrNotFound if absent.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// CreateGroup persists a group and its initial memberships atomically.
	// group.MemberIDs must already include the creator.
	CreateGroup(ctx context.Context, group *models.Group) error

	// AddMember adds userID to groupID. Adding an existing member is a no-op.
	AddMember(ctx context.Context, groupID, userID int64) error

	// ListGroupsForUser returns the groups userID belongs to, ordered by ID.
	ListGroupsForUser(ctx context.Context, userID int64) ([]*models.Group, error)

	// ListExpensesForUser returns expenses of every group userID belongs to,
	// newest first.
	ListExpensesForUser(ctx context.Context, userID int64) ([]*models.Expense, error)

	// Close releases any resources held by the store.
	Close() error
}
