package sqlite

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/hisaab/internal/models"
	"github.com/mmynk/hisaab/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func createUsers(t *testing.T, store *SQLiteStore, names ...string) []int64 {
	t.Helper()
	ids := make([]int64, len(names))
	for i, name := range names {
		user := models.NewUser(name, name+"@example.com", "hash")
		if err := store.CreateUser(context.Background(), user); err != nil {
			t.Fatalf("CreateUser(%s) failed: %v", name, err)
		}
		ids[i] = user.ID
	}
	return ids
}

func createGroup(t *testing.T, store *SQLiteStore, creator int64, members ...int64) int64 {
	t.Helper()
	group := &models.Group{Name: "Trip", CreatedBy: creator, MemberIDs: append([]int64{creator}, members...)}
	if err := store.CreateGroup(context.Background(), group); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	return group.ID
}

func TestUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateUser assigns ID", func(t *testing.T) {
		user := models.NewUser("alice", "alice@example.com", "hash")
		if err := store.CreateUser(ctx, user); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}
		if user.ID == 0 {
			t.Error("Expected user ID to be assigned")
		}

		got, err := store.GetUserByUsername(ctx, "alice")
		if err != nil {
			t.Fatalf("GetUserByUsername failed: %v", err)
		}
		if got.ID != user.ID || got.Email != "alice@example.com" {
			t.Errorf("GetUserByUsername = %+v, want ID %d", got, user.ID)
		}

		byEmail, err := store.GetUserByEmail(ctx, "alice@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if byEmail.Username != "alice" {
			t.Errorf("GetUserByEmail username = %q, want alice", byEmail.Username)
		}
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		user := models.NewUser("alice", "other@example.com", "hash")
		err := store.CreateUser(ctx, user)
		if !errors.Is(err, storage.ErrConflict) {
			t.Errorf("CreateUser error = %v, want ErrConflict", err)
		}
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		user := models.NewUser("alice2", "alice@example.com", "hash")
		err := store.CreateUser(ctx, user)
		if !errors.Is(err, storage.ErrConflict) {
			t.Errorf("CreateUser error = %v, want ErrConflict", err)
		}
	})

	t.Run("missing user is not found", func(t *testing.T) {
		_, err := store.GetUser(ctx, 9999)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("GetUser error = %v, want ErrNotFound", err)
		}
	})
}

func TestGroups(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	ids := createUsers(t, store, "alice", "bob", "carol")
	alice, bob, carol := ids[0], ids[1], ids[2]

	groupID := createGroup(t, store, bob, alice, bob)

	t.Run("GetGroup includes members once", func(t *testing.T) {
		g, err := store.GetGroup(ctx, groupID)
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		if g.Name != "Trip" || g.CreatedBy != bob {
			t.Errorf("GetGroup = %+v", g)
		}
		want := []int64{alice, bob}
		if fmt.Sprint(g.MemberIDs) != fmt.Sprint(want) {
			t.Errorf("MemberIDs = %v, want %v", g.MemberIDs, want)
		}
	})

	t.Run("AddMember is idempotent", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			if err := store.AddMember(ctx, groupID, carol); err != nil {
				t.Fatalf("AddMember failed: %v", err)
			}
		}
		ok, err := store.IsMember(ctx, groupID, carol)
		if err != nil || !ok {
			t.Errorf("IsMember(carol) = %v, %v; want true", ok, err)
		}
		members, _ := store.ListMemberIDs(ctx, groupID)
		if len(members) != 3 {
			t.Errorf("got %d members, want 3", len(members))
		}
	})

	t.Run("ListGroupsForUser", func(t *testing.T) {
		other := createGroup(t, store, carol)
		groups, err := store.ListGroupsForUser(ctx, carol)
		if err != nil {
			t.Fatalf("ListGroupsForUser failed: %v", err)
		}
		if len(groups) != 2 || groups[0].ID != groupID || groups[1].ID != other {
			t.Errorf("ListGroupsForUser = %v", groups)
		}

		groups, _ = store.ListGroupsForUser(ctx, alice)
		if len(groups) != 1 {
			t.Errorf("alice has %d groups, want 1", len(groups))
		}
	})

	t.Run("missing group is not found", func(t *testing.T) {
		_, err := store.GetGroup(ctx, 9999)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("GetGroup error = %v, want ErrNotFound", err)
		}
	})
}

func TestExpensesAndBalances(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	ids := createUsers(t, store, "alice", "bob")
	alice, bob := ids[0], ids[1]
	groupID := createGroup(t, store, alice, bob)

	var expenseID int64
	err := store.InTx(ctx, func(tx storage.Tx) error {
		e := &models.Expense{
			Description: "Dinner",
			Amount:      decimal.RequireFromString("10.01"),
			PayerID:     alice,
			GroupID:     groupID,
		}
		if err := tx.CreateExpense(ctx, e); err != nil {
			return err
		}
		shares := []models.ExpenseShare{
			{UserID: alice, Amount: decimal.RequireFromString("5.01")},
			{UserID: bob, Amount: decimal.RequireFromString("5.00")},
		}
		if err := tx.CreateShares(ctx, e.ID, shares); err != nil {
			return err
		}
		expenseID = e.ID
		return tx.AddToBalance(ctx, groupID, bob, alice, decimal.RequireFromString("5.00"))
	})
	if err != nil {
		t.Fatalf("InTx failed: %v", err)
	}

	t.Run("GetExpense returns shares in order", func(t *testing.T) {
		e, err := store.GetExpense(ctx, expenseID)
		if err != nil {
			t.Fatalf("GetExpense failed: %v", err)
		}
		if e.Kind != models.KindExpense || e.GroupID != groupID {
			t.Errorf("GetExpense = %+v", e)
		}
		if !e.Amount.Equal(decimal.RequireFromString("10.01")) {
			t.Errorf("Amount = %s, want 10.01", e.Amount)
		}
		if len(e.Shares) != 2 || e.Shares[0].UserID != alice || e.Shares[1].UserID != bob {
			t.Fatalf("Shares = %+v", e.Shares)
		}
		if !e.Shares[0].Amount.Equal(decimal.RequireFromString("5.01")) {
			t.Errorf("first share = %s, want 5.01", e.Shares[0].Amount)
		}
	})

	t.Run("opposite additions net on a single edge", func(t *testing.T) {
		err := store.InTx(ctx, func(tx storage.Tx) error {
			return tx.AddToBalance(ctx, groupID, alice, bob, decimal.RequireFromString("8.00"))
		})
		if err != nil {
			t.Fatalf("AddToBalance failed: %v", err)
		}

		balances, err := store.ListBalancesByGroup(ctx, groupID)
		if err != nil {
			t.Fatalf("ListBalancesByGroup failed: %v", err)
		}
		if len(balances) != 1 {
			t.Fatalf("got %d balances, want 1", len(balances))
		}
		b := balances[0]
		if b.DebtorID != alice || b.CreditorID != bob || !b.Amount.Equal(decimal.RequireFromString("3.00")) {
			t.Errorf("balance = %+v, want alice owes bob 3.00", b)
		}
	})

	t.Run("failed transaction writes nothing", func(t *testing.T) {
		boom := errors.New("boom")
		err := store.InTx(ctx, func(tx storage.Tx) error {
			e := &models.Expense{Description: "Taxi", Amount: decimal.NewFromInt(20), PayerID: bob, GroupID: groupID}
			if err := tx.CreateExpense(ctx, e); err != nil {
				return err
			}
			if err := tx.AddToBalance(ctx, groupID, alice, bob, decimal.NewFromInt(10)); err != nil {
				return err
			}
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("InTx error = %v, want boom", err)
		}

		expenses, _ := store.ListExpensesByGroup(ctx, groupID)
		if len(expenses) != 1 {
			t.Errorf("got %d expenses, want 1", len(expenses))
		}
		balances, _ := store.ListBalancesByGroup(ctx, groupID)
		if len(balances) != 1 || !balances[0].Amount.Equal(decimal.RequireFromString("3.00")) {
			t.Errorf("balances changed after rollback: %+v", balances)
		}
	})

	t.Run("ResetBalances clears the group", func(t *testing.T) {
		err := store.InTx(ctx, func(tx storage.Tx) error {
			return tx.ResetBalances(ctx, groupID)
		})
		if err != nil {
			t.Fatalf("ResetBalances failed: %v", err)
		}
		balances, _ := store.ListBalancesByGroup(ctx, groupID)
		if len(balances) != 0 {
			t.Errorf("got %d balances after reset, want 0", len(balances))
		}
	})

	t.Run("ListExpensesForUser", func(t *testing.T) {
		expenses, err := store.ListExpensesForUser(ctx, bob)
		if err != nil {
			t.Fatalf("ListExpensesForUser failed: %v", err)
		}
		if len(expenses) != 1 || expenses[0].ID != expenseID {
			t.Errorf("ListExpensesForUser = %v", expenses)
		}
	})

	t.Run("sub-cent amounts are rejected", func(t *testing.T) {
		err := store.InTx(ctx, func(tx storage.Tx) error {
			return tx.AddToBalance(ctx, groupID, alice, bob, decimal.RequireFromString("0.001"))
		})
		if err == nil {
			t.Error("expected error for sub-cent amount")
		}
	})
}

func TestConcurrentBalanceUpdates(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	ids := createUsers(t, store, "alice", "bob")
	alice, bob := ids[0], ids[1]
	groupID := createGroup(t, store, alice, bob)

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- store.InTx(ctx, func(tx storage.Tx) error {
				return tx.AddToBalance(ctx, groupID, bob, alice, decimal.RequireFromString("1.25"))
			})
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent AddToBalance failed: %v", err)
		}
	}

	balances, err := store.ListBalancesByGroup(ctx, groupID)
	if err != nil {
		t.Fatalf("ListBalancesByGroup failed: %v", err)
	}
	if len(balances) != 1 || !balances[0].Amount.Equal(decimal.RequireFromString("10.00")) {
		t.Errorf("balances = %+v, want bob owes alice 10.00", balances)
	}
}

func TestBuildDSN(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		wantFile    string
		wantPragmas []string
	}{
		{
			name:        "bare path",
			in:          "data/hisaab.db",
			wantFile:    "data/hisaab.db",
			wantPragmas: requiredPragmas,
		},
		{
			name:        "extra pragma kept",
			in:          "file:hisaab.db?_pragma=cache_size(-2000)",
			wantFile:    "file:hisaab.db",
			wantPragmas: append([]string{"cache_size(-2000)"}, requiredPragmas...),
		},
		{
			name:        "conflicting values replaced",
			in:          "hisaab.db?_pragma=foreign_keys(0)&_pragma=BUSY_TIMEOUT(1)&_txlock=deferred",
			wantFile:    "hisaab.db",
			wantPragmas: requiredPragmas,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn, err := buildDSN(tt.in)
			if err != nil {
				t.Fatalf("buildDSN failed: %v", err)
			}
			file, query, _ := strings.Cut(dsn, "?")
			if file != tt.wantFile {
				t.Errorf("file = %q, want %q", file, tt.wantFile)
			}
			params, err := url.ParseQuery(query)
			if err != nil {
				t.Fatalf("ParseQuery(%q) failed: %v", query, err)
			}
			if got := params.Get("_txlock"); got != "immediate" {
				t.Errorf("_txlock = %q, want immediate", got)
			}
			if got := params["_pragma"]; !reflect.DeepEqual(got, tt.wantPragmas) {
				t.Errorf("_pragma = %v, want %v", got, tt.wantPragmas)
			}
		})
	}
}

func TestNewWithQueryKeepsPragmas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "query.db") + "?_pragma=foreign_keys(0)&_pragma=cache_size(-2000)"
	store, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer store.Close()

	pragmas := map[string]int{"foreign_keys": 1, "busy_timeout": 5000, "cache_size": -2000}
	for name, want := range pragmas {
		var got int
		if err := store.db.QueryRow("PRAGMA " + name).Scan(&got); err != nil {
			t.Fatalf("PRAGMA %s failed: %v", name, err)
		}
		if got != want {
			t.Errorf("PRAGMA %s = %d, want %d", name, got, want)
		}
	}
}
