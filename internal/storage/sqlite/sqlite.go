// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	sqlitedrv "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)
	sqlitelib "modernc.org/sqlite/lib"

	"github.com/mmynk/hisaab/internal/models"
	"github.com/mmynk/hisaab/internal/money"
	"github.com/mmynk/hisaab/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// requiredPragmas enable foreign keys, let concurrent writers wait for the
// lock instead of failing, and turn on WAL. Together with _txlock=immediate,
// which makes every transaction BEGIN IMMEDIATE, writers are serialised from
// their first statement.
var requiredPragmas = []string{"foreign_keys(1)", "busy_timeout(5000)", "journal_mode(WAL)"}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	reader
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
// Any query parameters on dbPath are kept, except that the required pragmas
// and transaction lock mode always win.
func New(dbPath string) (*SQLiteStore, error) {
	file, _, _ := strings.Cut(strings.TrimPrefix(dbPath, "file:"), "?")
	if dir := filepath.Dir(file); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	dsn, err := buildDSN(dbPath)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(dsn); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &SQLiteStore{reader: reader{q: db}, db: db}, nil
}

// buildDSN merges the required connection parameters into dbPath.
func buildDSN(dbPath string) (string, error) {
	file, query, _ := strings.Cut(dbPath, "?")
	params, err := url.ParseQuery(query)
	if err != nil {
		return "", fmt.Errorf("invalid database parameters: %w", err)
	}

	required := make(map[string]bool, len(requiredPragmas))
	for _, p := range requiredPragmas {
		required[pragmaName(p)] = true
	}
	var pragmas []string
	for _, p := range params["_pragma"] {
		if !required[pragmaName(p)] {
			pragmas = append(pragmas, p)
		}
	}
	params["_pragma"] = append(pragmas, requiredPragmas...)
	params.Set("_txlock", "immediate")

	return file + "?" + params.Encode(), nil
}

// pragmaName returns the lower-cased name of a "name(value)" or "name=value"
// pragma.
func pragmaName(p string) string {
	name, _, _ := strings.Cut(p, "(")
	name, _, _ = strings.Cut(name, "=")
	return strings.ToLower(strings.TrimSpace(name))
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// InTx runs fn in a single BEGIN IMMEDIATE transaction.
func (s *SQLiteStore) InTx(ctx context.Context, fn func(tx storage.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&sqliteTx{reader: reader{q: tx}}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// CreateGroup inserts the group and its memberships in one transaction.
func (s *SQLiteStore) CreateGroup(ctx context.Context, group *models.Group) error {
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO groups (name, created_by, created_at) VALUES (?, ?, ?)",
		group.Name, group.CreatedBy, group.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert group: %w", err)
	}
	groupID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get group id: %w", err)
	}

	for _, userID := range group.MemberIDs {
		if err := insertMember(ctx, tx, groupID, userID, group.CreatedAt); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	group.ID = groupID
	sort.Slice(group.MemberIDs, func(i, j int) bool { return group.MemberIDs[i] < group.MemberIDs[j] })
	return nil
}

// AddMember adds a user to a group. Existing memberships are left untouched.
func (s *SQLiteStore) AddMember(ctx context.Context, groupID, userID int64) error {
	return insertMember(ctx, s.db, groupID, userID, time.Now().Unix())
}

func insertMember(ctx context.Context, q querier, groupID, userID, joinedAt int64) error {
	_, err := q.ExecContext(ctx,
		`INSERT INTO group_members (group_id, user_id, joined_at) VALUES (?, ?, ?)
		 ON CONFLICT (group_id, user_id) DO NOTHING`,
		groupID, userID, joinedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert group member: %w", err)
	}
	return nil
}

// ListGroupsForUser returns every group the user is a member of.
func (s *SQLiteStore) ListGroupsForUser(ctx context.Context, userID int64) ([]*models.Group, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT g.id, g.name, g.created_by, g.created_at
		 FROM groups g JOIN group_members m ON m.group_id = g.id
		 WHERE m.user_id = ?
		 ORDER BY g.id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	var groups []*models.Group
	for rows.Next() {
		g := &models.Group{}
		if err := rows.Scan(&g.ID, &g.Name, &g.CreatedBy, &g.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}
	rows.Close()

	for _, g := range groups {
		if g.MemberIDs, err = s.ListMemberIDs(ctx, g.ID); err != nil {
			return nil, err
		}
	}
	return groups, nil
}

// ListExpensesForUser returns the expenses of all of the user's groups.
func (s *SQLiteStore) ListExpensesForUser(ctx context.Context, userID int64) ([]*models.Expense, error) {
	return s.listExpenses(ctx,
		`SELECT e.id, e.description, e.amount_cents, e.payer_id, e.group_id, e.kind, e.created_at
		 FROM expenses e JOIN group_members m ON m.group_id = e.group_id
		 WHERE m.user_id = ?
		 ORDER BY e.id DESC`,
		userID,
	)
}

// reader implements storage.Reader on top of a querier.
type reader struct {
	q querier
}

// GetUser retrieves a user by ID.
func (r reader) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	return r.getUser(ctx, "id", userID)
}

// GetGroup retrieves a group by ID, including its member IDs.
func (r reader) GetGroup(ctx context.Context, groupID int64) (*models.Group, error) {
	g := &models.Group{}
	err := r.q.QueryRowContext(ctx,
		"SELECT id, name, created_by, created_at FROM groups WHERE id = ?",
		groupID,
	).Scan(&g.ID, &g.Name, &g.CreatedBy, &g.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("group %d: %w", groupID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	if g.MemberIDs, err = r.ListMemberIDs(ctx, groupID); err != nil {
		return nil, err
	}
	return g, nil
}

// IsMember reports whether a membership row exists.
func (r reader) IsMember(ctx context.Context, groupID, userID int64) (bool, error) {
	var exists int
	err := r.q.QueryRowContext(ctx,
		"SELECT 1 FROM group_members WHERE group_id = ? AND user_id = ?",
		groupID, userID,
	).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check membership: %w", err)
	}
	return true, nil
}

// ListMemberIDs returns the group's member IDs in ascending order.
func (r reader) ListMemberIDs(ctx context.Context, groupID int64) ([]int64, error) {
	rows, err := r.q.QueryContext(ctx,
		"SELECT user_id FROM group_members WHERE group_id = ? ORDER BY user_id",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list group members: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan group member: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate group members: %w", err)
	}
	return ids, nil
}

// GetExpense retrieves an expense by ID with its shares.
func (r reader) GetExpense(ctx context.Context, expenseID int64) (*models.Expense, error) {
	expenses, err := r.listExpenses(ctx,
		`SELECT id, description, amount_cents, payer_id, group_id, kind, created_at
		 FROM expenses WHERE id = ?`,
		expenseID,
	)
	if err != nil {
		return nil, err
	}
	if len(expenses) == 0 {
		return nil, fmt.Errorf("expense %d: %w", expenseID, storage.ErrNotFound)
	}
	return expenses[0], nil
}

// ListExpensesByGroup returns the group's expenses, newest first.
func (r reader) ListExpensesByGroup(ctx context.Context, groupID int64) ([]*models.Expense, error) {
	return r.listExpenses(ctx,
		`SELECT id, description, amount_cents, payer_id, group_id, kind, created_at
		 FROM expenses WHERE group_id = ?
		 ORDER BY id DESC`,
		groupID,
	)
}

// ListBalancesByGroup returns the group's balance edges as directed debts.
func (r reader) ListBalancesByGroup(ctx context.Context, groupID int64) ([]*models.Balance, error) {
	rows, err := r.q.QueryContext(ctx,
		"SELECT user_a, user_b, amount_cents FROM balances WHERE group_id = ? AND amount_cents != 0",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list balances: %w", err)
	}
	defer rows.Close()

	var balances []*models.Balance
	for rows.Next() {
		var userA, userB, cents int64
		if err := rows.Scan(&userA, &userB, &cents); err != nil {
			return nil, fmt.Errorf("failed to scan balance: %w", err)
		}

		b := &models.Balance{GroupID: groupID, DebtorID: userA, CreditorID: userB}
		if cents < 0 {
			b.DebtorID, b.CreditorID = userB, userA
			cents = -cents
		}
		b.Amount = money.FromCents(cents)
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate balances: %w", err)
	}

	sort.Slice(balances, func(i, j int) bool {
		if balances[i].DebtorID != balances[j].DebtorID {
			return balances[i].DebtorID < balances[j].DebtorID
		}
		return balances[i].CreditorID < balances[j].CreditorID
	})
	return balances, nil
}

// listExpenses runs an expense query and attaches each expense's shares.
// Rows are fully read before shares are fetched, since a transaction holds a
// single connection.
func (r reader) listExpenses(ctx context.Context, query string, args ...any) ([]*models.Expense, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}

	var expenses []*models.Expense
	byID := make(map[int64]*models.Expense)
	for rows.Next() {
		e := &models.Expense{}
		var cents int64
		var groupID sql.NullInt64
		var kind string
		if err := rows.Scan(&e.ID, &e.Description, &cents, &e.PayerID, &groupID, &kind, &e.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		e.Amount = money.FromCents(cents)
		e.GroupID = groupID.Int64
		e.Kind = models.ExpenseKind(kind)
		expenses = append(expenses, e)
		byID[e.ID] = e
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	rows.Close()

	if len(expenses) == 0 {
		return expenses, nil
	}

	ids := make([]any, len(expenses))
	for i, e := range expenses {
		ids[i] = e.ID
	}
	shareRows, err := r.q.QueryContext(ctx,
		`SELECT id, expense_id, user_id, amount_cents FROM expense_shares
		 WHERE expense_id IN (`+placeholders(len(ids))+`)
		 ORDER BY id`,
		ids...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense shares: %w", err)
	}
	defer shareRows.Close()

	for shareRows.Next() {
		var s models.ExpenseShare
		var cents int64
		if err := shareRows.Scan(&s.ID, &s.ExpenseID, &s.UserID, &cents); err != nil {
			return nil, fmt.Errorf("failed to scan expense share: %w", err)
		}
		s.Amount = money.FromCents(cents)
		e := byID[s.ExpenseID]
		e.Shares = append(e.Shares, s)
	}
	if err := shareRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense shares: %w", err)
	}

	return expenses, nil
}

// sqliteTx implements storage.Tx on an open *sql.Tx.
type sqliteTx struct {
	reader
}

// CreateExpense inserts the expense row.
func (t *sqliteTx) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}
	if expense.Kind == "" {
		expense.Kind = models.KindExpense
	}

	cents, err := money.ToCents(expense.Amount)
	if err != nil {
		return err
	}

	var groupID sql.NullInt64
	if expense.GroupID != 0 {
		groupID = sql.NullInt64{Int64: expense.GroupID, Valid: true}
	}

	res, err := t.q.ExecContext(ctx,
		`INSERT INTO expenses (description, amount_cents, payer_id, group_id, kind, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		expense.Description, cents, expense.PayerID, groupID, string(expense.Kind), expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}
	if expense.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("failed to get expense id: %w", err)
	}
	return nil
}

// CreateShares inserts the shares of an expense in the given order.
func (t *sqliteTx) CreateShares(ctx context.Context, expenseID int64, shares []models.ExpenseShare) error {
	for i := range shares {
		share := &shares[i]
		cents, err := money.ToCents(share.Amount)
		if err != nil {
			return err
		}

		res, err := t.q.ExecContext(ctx,
			"INSERT INTO expense_shares (expense_id, user_id, amount_cents) VALUES (?, ?, ?)",
			expenseID, share.UserID, cents,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense share: %w", err)
		}
		if share.ID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("failed to get expense share id: %w", err)
		}
		share.ExpenseID = expenseID
	}
	return nil
}

// AddToBalance folds amount into the pair's signed edge with one upsert.
func (t *sqliteTx) AddToBalance(ctx context.Context, groupID, debtorID, creditorID int64, amount decimal.Decimal) error {
	if debtorID == creditorID {
		return fmt.Errorf("balance edge needs two distinct users, got %d twice", debtorID)
	}

	cents, err := money.ToCents(amount)
	if err != nil {
		return err
	}
	if cents == 0 {
		return nil
	}

	userA, userB := debtorID, creditorID
	if userA > userB {
		userA, userB = userB, userA
		cents = -cents
	}

	_, err = t.q.ExecContext(ctx,
		`INSERT INTO balances (group_id, user_a, user_b, amount_cents) VALUES (?, ?, ?, ?)
		 ON CONFLICT (group_id, user_a, user_b)
		 DO UPDATE SET amount_cents = amount_cents + excluded.amount_cents`,
		groupID, userA, userB, cents,
	)
	if err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}
	return nil
}

// ResetBalances deletes every balance edge of the group.
func (t *sqliteTx) ResetBalances(ctx context.Context, groupID int64) error {
	if _, err := t.q.ExecContext(ctx, "DELETE FROM balances WHERE group_id = ?", groupID); err != nil {
		return fmt.Errorf("failed to reset balances: %w", err)
	}
	return nil
}

// placeholders returns "?, ?, ..." with n placeholders for IN clauses.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return "?" + strings.Repeat(", ?", n-1)
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	var sqliteErr *sqlitedrv.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlitelib.SQLITE_CONSTRAINT_UNIQUE ||
			sqliteErr.Code() == sqlitelib.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}
