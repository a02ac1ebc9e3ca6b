package ledger

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/hisaab/internal/models"
	"github.com/mmynk/hisaab/internal/storage"
	"github.com/mmynk/hisaab/internal/storage/sqlite"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fixture struct {
	store   *sqlite.SQLiteStore
	ledger  *Ledger
	groupID int64
	a, b, c int64
}

// newFixture creates users a, b and c and a group containing all three.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	f := &fixture{store: store, ledger: New(store)}
	f.a = f.user(t, "alice")
	f.b = f.user(t, "bob")
	f.c = f.user(t, "carol")

	g, err := f.ledger.CreateGroup(context.Background(), f.a, "Flat", []int64{f.b, f.c})
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	f.groupID = g.ID
	return f
}

func (f *fixture) user(t *testing.T, name string) int64 {
	t.Helper()
	u := models.NewUser(name, name+"@example.com", "hash")
	if err := f.store.CreateUser(context.Background(), u); err != nil {
		t.Fatalf("CreateUser(%s) failed: %v", name, err)
	}
	return u.ID
}

func (f *fixture) nets(t *testing.T) map[int64]string {
	t.Helper()
	out := make(map[int64]string)
	for _, id := range []int64{f.a, f.b, f.c} {
		net, err := f.ledger.UserGroupBalance(context.Background(), id, f.groupID)
		if err != nil {
			t.Fatalf("UserGroupBalance(%d) failed: %v", id, err)
		}
		out[id] = net.StringFixed(2)
	}
	return out
}

func (f *fixture) edges(t *testing.T) []string {
	t.Helper()
	balances, err := f.ledger.GroupBalances(context.Background(), f.groupID)
	if err != nil {
		t.Fatalf("GroupBalances failed: %v", err)
	}
	var out []string
	for _, b := range balances {
		out = append(out, fmt.Sprintf("%d->%d:%s", b.DebtorID, b.CreditorID, b.Amount.StringFixed(2)))
	}
	return out
}

func TestRecordExpense(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	expense, err := f.ledger.RecordExpense(ctx, ExpenseInput{
		Description:    "  Groceries ",
		Amount:         dec("300"),
		PayerID:        f.a,
		GroupID:        f.groupID,
		ParticipantIDs: []int64{f.a, f.b, f.c},
	})
	if err != nil {
		t.Fatalf("RecordExpense failed: %v", err)
	}

	if expense.Description != "Groceries" || expense.Kind != models.KindExpense {
		t.Errorf("expense = %+v", expense)
	}
	if len(expense.Shares) != 3 {
		t.Fatalf("got %d shares, want 3", len(expense.Shares))
	}
	for i, s := range expense.Shares {
		if !s.Amount.Equal(dec("100")) {
			t.Errorf("share %d = %s, want 100", i, s.Amount)
		}
	}

	wantEdges := []string{
		fmt.Sprintf("%d->%d:100.00", f.b, f.a),
		fmt.Sprintf("%d->%d:100.00", f.c, f.a),
	}
	if got := f.edges(t); !reflect.DeepEqual(got, wantEdges) {
		t.Errorf("edges = %v, want %v", got, wantEdges)
	}

	wantNets := map[int64]string{f.a: "200.00", f.b: "-100.00", f.c: "-100.00"}
	if got := f.nets(t); !reflect.DeepEqual(got, wantNets) {
		t.Errorf("nets = %v, want %v", got, wantNets)
	}
}

func TestRecordExpenseUnevenSplit(t *testing.T) {
	f := newFixture(t)

	expense, err := f.ledger.RecordExpense(context.Background(), ExpenseInput{
		Description:    "Taxi",
		Amount:         dec("100.00"),
		PayerID:        f.b,
		GroupID:        f.groupID,
		ParticipantIDs: []int64{f.c, f.a, f.b},
	})
	if err != nil {
		t.Fatalf("RecordExpense failed: %v", err)
	}

	want := []string{"33.34", "33.33", "33.33"}
	sum := decimal.Zero
	for i, s := range expense.Shares {
		if s.Amount.StringFixed(2) != want[i] {
			t.Errorf("share %d = %s, want %s", i, s.Amount, want[i])
		}
		sum = sum.Add(s.Amount)
	}
	if !sum.Equal(expense.Amount) {
		t.Errorf("shares sum to %s, want %s", sum, expense.Amount)
	}
	if expense.Shares[0].UserID != f.c {
		t.Errorf("first share belongs to %d, want %d", expense.Shares[0].UserID, f.c)
	}
}

func TestRecordExpenseRejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	outsider := f.user(t, "dave")

	// Something recorded first so "nothing written" is checked against a
	// non-empty state.
	if _, err := f.ledger.RecordExpense(ctx, ExpenseInput{
		Description: "Rent", Amount: dec("30"), PayerID: f.a, GroupID: f.groupID,
		ParticipantIDs: []int64{f.a, f.b, f.c},
	}); err != nil {
		t.Fatalf("RecordExpense failed: %v", err)
	}
	edgesBefore := f.edges(t)

	tests := []struct {
		name    string
		in      ExpenseInput
		wantErr error
	}{
		{
			name:    "zero amount",
			in:      ExpenseInput{Description: "x", Amount: dec("0"), PayerID: f.a, GroupID: f.groupID, ParticipantIDs: []int64{f.a}},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "negative amount",
			in:      ExpenseInput{Description: "x", Amount: dec("-5"), PayerID: f.a, GroupID: f.groupID, ParticipantIDs: []int64{f.a}},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "sub-cent amount",
			in:      ExpenseInput{Description: "x", Amount: dec("1.005"), PayerID: f.a, GroupID: f.groupID, ParticipantIDs: []int64{f.a}},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "huge exponent",
			in:      ExpenseInput{Description: "x", Amount: dec("1e10000000"), PayerID: f.a, GroupID: f.groupID, ParticipantIDs: []int64{f.a}},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "tiny exponent",
			in:      ExpenseInput{Description: "x", Amount: dec("1e-10000000"), PayerID: f.a, GroupID: f.groupID, ParticipantIDs: []int64{f.a}},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "no participants",
			in:      ExpenseInput{Description: "x", Amount: dec("5"), PayerID: f.a, GroupID: f.groupID},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "duplicate participants",
			in:      ExpenseInput{Description: "x", Amount: dec("5"), PayerID: f.a, GroupID: f.groupID, ParticipantIDs: []int64{f.a, f.b, f.a}},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "empty description",
			in:      ExpenseInput{Description: "   ", Amount: dec("5"), PayerID: f.a, GroupID: f.groupID, ParticipantIDs: []int64{f.a}},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "missing group",
			in:      ExpenseInput{Description: "x", Amount: dec("5"), PayerID: f.a, GroupID: 9999, ParticipantIDs: []int64{f.a}},
			wantErr: ErrNotFound,
		},
		{
			name:    "payer not a member",
			in:      ExpenseInput{Description: "x", Amount: dec("5"), PayerID: outsider, GroupID: f.groupID, ParticipantIDs: []int64{f.a}},
			wantErr: ErrInvalidParticipant,
		},
		{
			name:    "participant not a member",
			in:      ExpenseInput{Description: "x", Amount: dec("5"), PayerID: f.a, GroupID: f.groupID, ParticipantIDs: []int64{f.b, outsider}},
			wantErr: ErrInvalidParticipant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.ledger.RecordExpense(ctx, tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("RecordExpense error = %v, want %v", err, tt.wantErr)
			}

			expenses, err := f.store.ListExpensesByGroup(ctx, f.groupID)
			if err != nil {
				t.Fatalf("ListExpensesByGroup failed: %v", err)
			}
			if len(expenses) != 1 {
				t.Errorf("got %d expenses, want 1", len(expenses))
			}
			if got := f.edges(t); !reflect.DeepEqual(got, edgesBefore) {
				t.Errorf("edges changed: %v, want %v", got, edgesBefore)
			}
		})
	}

	t.Run("participant error names the first offender", func(t *testing.T) {
		other := f.user(t, "erin")
		_, err := f.ledger.RecordExpense(ctx, ExpenseInput{
			Description: "x", Amount: dec("5"), PayerID: f.a, GroupID: f.groupID,
			ParticipantIDs: []int64{f.a, other, outsider},
		})
		var pe *ParticipantError
		if !errors.As(err, &pe) {
			t.Fatalf("error = %v, want *ParticipantError", err)
		}
		if pe.UserID != other || pe.GroupID != f.groupID {
			t.Errorf("ParticipantError = %+v, want user %d", pe, other)
		}
	})
}

func TestRecordSettlement(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.ledger.RecordExpense(ctx, ExpenseInput{
		Description: "Dinner", Amount: dec("300"), PayerID: f.a, GroupID: f.groupID,
		ParticipantIDs: []int64{f.a, f.b, f.c},
	}); err != nil {
		t.Fatalf("RecordExpense failed: %v", err)
	}

	settlement, err := f.ledger.RecordSettlement(ctx, SettlementInput{
		GroupID: f.groupID, PayerID: f.b, PayeeID: f.a, Amount: dec("100"),
	})
	if err != nil {
		t.Fatalf("RecordSettlement failed: %v", err)
	}

	if !settlement.IsSettlement() {
		t.Errorf("kind = %s, want settlement", settlement.Kind)
	}
	if want := fmt.Sprintf("Settlement: User %d paid User %d", f.b, f.a); settlement.Description != want {
		t.Errorf("description = %q, want %q", settlement.Description, want)
	}
	if len(settlement.Shares) != 2 {
		t.Fatalf("got %d shares, want 2", len(settlement.Shares))
	}
	if s := settlement.Shares[0]; s.UserID != f.b || !s.Amount.IsZero() {
		t.Errorf("payer share = %+v, want zero for %d", s, f.b)
	}
	if s := settlement.Shares[1]; s.UserID != f.a || !s.Amount.Equal(dec("-100")) {
		t.Errorf("payee share = %+v, want -100 for %d", s, f.a)
	}

	wantEdges := []string{fmt.Sprintf("%d->%d:100.00", f.c, f.a)}
	if got := f.edges(t); !reflect.DeepEqual(got, wantEdges) {
		t.Errorf("edges = %v, want %v", got, wantEdges)
	}
	wantNets := map[int64]string{f.a: "100.00", f.b: "0.00", f.c: "-100.00"}
	if got := f.nets(t); !reflect.DeepEqual(got, wantNets) {
		t.Errorf("nets = %v, want %v", got, wantNets)
	}

	t.Run("overpayment flips the edge", func(t *testing.T) {
		if _, err := f.ledger.RecordSettlement(ctx, SettlementInput{
			GroupID: f.groupID, PayerID: f.c, PayeeID: f.a, Amount: dec("150"), Note: "bank transfer",
		}); err != nil {
			t.Fatalf("RecordSettlement failed: %v", err)
		}
		wantEdges := []string{fmt.Sprintf("%d->%d:50.00", f.a, f.c)}
		if got := f.edges(t); !reflect.DeepEqual(got, wantEdges) {
			t.Errorf("edges = %v, want %v", got, wantEdges)
		}
	})

	t.Run("rejections", func(t *testing.T) {
		outsider := f.user(t, "dave")
		before, err := f.store.ListExpensesByGroup(ctx, f.groupID)
		if err != nil {
			t.Fatalf("ListExpensesByGroup failed: %v", err)
		}
		edgesBefore := f.edges(t)

		tests := []struct {
			name    string
			in      SettlementInput
			wantErr error
		}{
			{"self payment", SettlementInput{GroupID: f.groupID, PayerID: f.a, PayeeID: f.a, Amount: dec("1")}, ErrInvalidRequest},
			{"zero amount", SettlementInput{GroupID: f.groupID, PayerID: f.a, PayeeID: f.b, Amount: dec("0")}, ErrInvalidRequest},
			{"negative amount", SettlementInput{GroupID: f.groupID, PayerID: f.a, PayeeID: f.b, Amount: dec("-5")}, ErrInvalidRequest},
			{"sub-cent amount", SettlementInput{GroupID: f.groupID, PayerID: f.a, PayeeID: f.b, Amount: dec("0.001")}, ErrInvalidRequest},
			{"huge exponent", SettlementInput{GroupID: f.groupID, PayerID: f.a, PayeeID: f.b, Amount: dec("1e10000000")}, ErrInvalidRequest},
			{"missing group", SettlementInput{GroupID: 9999, PayerID: f.a, PayeeID: f.b, Amount: dec("1")}, ErrNotFound},
			{"payee outside group", SettlementInput{GroupID: f.groupID, PayerID: f.a, PayeeID: outsider, Amount: dec("1")}, ErrInvalidParticipant},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if _, err := f.ledger.RecordSettlement(ctx, tt.in); !errors.Is(err, tt.wantErr) {
					t.Fatalf("RecordSettlement error = %v, want %v", err, tt.wantErr)
				}

				expenses, err := f.store.ListExpensesByGroup(ctx, f.groupID)
				if err != nil {
					t.Fatalf("ListExpensesByGroup failed: %v", err)
				}
				if len(expenses) != len(before) {
					t.Errorf("got %d expenses, want %d", len(expenses), len(before))
				}
				if got := f.edges(t); !reflect.DeepEqual(got, edgesBefore) {
					t.Errorf("edges changed: %v, want %v", got, edgesBefore)
				}
			})
		}
	})
}

func TestSettlementClearsMutualDebt(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.ledger.RecordExpense(ctx, ExpenseInput{
		Description: "Lunch", Amount: dec("20"), PayerID: f.b, GroupID: f.groupID,
		ParticipantIDs: []int64{f.a, f.b},
	}); err != nil {
		t.Fatalf("RecordExpense failed: %v", err)
	}
	if _, err := f.ledger.RecordSettlement(ctx, SettlementInput{
		GroupID: f.groupID, PayerID: f.a, PayeeID: f.b, Amount: dec("10"),
	}); err != nil {
		t.Fatalf("RecordSettlement failed: %v", err)
	}

	if got := f.edges(t); len(got) != 0 {
		t.Errorf("edges = %v, want none", got)
	}
	nets := f.nets(t)
	if nets[f.a] != "0.00" || nets[f.b] != "0.00" {
		t.Errorf("nets = %v, want zero for both", nets)
	}
}

func TestMembership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	outsider := f.user(t, "dave")

	ok, err := f.ledger.IsMember(ctx, f.groupID, f.b)
	if err != nil || !ok {
		t.Errorf("IsMember(member) = %v, %v; want true, nil", ok, err)
	}
	ok, err = f.ledger.IsMember(ctx, f.groupID, outsider)
	if err != nil || ok {
		t.Errorf("IsMember(outsider) = %v, %v; want false, nil", ok, err)
	}
	if _, err := f.ledger.IsMember(ctx, 9999, f.a); !errors.Is(err, ErrNotFound) {
		t.Errorf("IsMember(missing group) error = %v, want ErrNotFound", err)
	}

	if err := f.ledger.RequireMember(ctx, f.groupID, outsider); !errors.Is(err, ErrForbidden) {
		t.Errorf("RequireMember(outsider) = %v, want ErrForbidden", err)
	}
	if err := f.ledger.RequireMember(ctx, 9999, f.a); !errors.Is(err, ErrNotFound) {
		t.Errorf("RequireMember(missing group) = %v, want ErrNotFound", err)
	}
}

func TestReadsAreIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.ledger.RecordExpense(ctx, ExpenseInput{
		Description: "Tickets", Amount: dec("45.50"), PayerID: f.c, GroupID: f.groupID,
		ParticipantIDs: []int64{f.a, f.b, f.c},
	}); err != nil {
		t.Fatalf("RecordExpense failed: %v", err)
	}

	first, second := f.edges(t), f.edges(t)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("GroupBalances changed between reads: %v vs %v", first, second)
	}

	o1, err := f.ledger.UserBalances(ctx, f.a)
	if err != nil {
		t.Fatalf("UserBalances failed: %v", err)
	}
	o2, _ := f.ledger.UserBalances(ctx, f.a)
	if !reflect.DeepEqual(o1, o2) {
		t.Errorf("UserBalances changed between reads: %+v vs %+v", o1, o2)
	}
}

func TestUserBalances(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	other, err := f.ledger.CreateGroup(ctx, f.a, "Trip", []int64{f.b})
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	if _, err := f.ledger.RecordExpense(ctx, ExpenseInput{
		Description: "Rent", Amount: dec("90"), PayerID: f.a, GroupID: f.groupID,
		ParticipantIDs: []int64{f.a, f.b, f.c},
	}); err != nil {
		t.Fatalf("RecordExpense failed: %v", err)
	}
	if _, err := f.ledger.RecordExpense(ctx, ExpenseInput{
		Description: "Fuel", Amount: dec("100"), PayerID: f.b, GroupID: other.ID,
		ParticipantIDs: []int64{f.a, f.b},
	}); err != nil {
		t.Fatalf("RecordExpense failed: %v", err)
	}

	overview, err := f.ledger.UserBalances(ctx, f.a)
	if err != nil {
		t.Fatalf("UserBalances failed: %v", err)
	}
	if len(overview.Groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(overview.Groups))
	}
	if g := overview.Groups[0]; g.GroupID != f.groupID || g.Net.StringFixed(2) != "60.00" {
		t.Errorf("first group = %+v, want net 60.00", g)
	}
	if g := overview.Groups[1]; g.GroupID != other.ID || g.Net.StringFixed(2) != "-50.00" {
		t.Errorf("second group = %+v, want net -50.00", g)
	}
	if overview.Total.StringFixed(2) != "10.00" {
		t.Errorf("total = %s, want 10.00", overview.Total)
	}
}

func TestSuggestSettlements(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// a pays 90 for all three, b pays 30 for b and c.
	for _, in := range []ExpenseInput{
		{Description: "Hotel", Amount: dec("90"), PayerID: f.a, GroupID: f.groupID, ParticipantIDs: []int64{f.a, f.b, f.c}},
		{Description: "Snacks", Amount: dec("30"), PayerID: f.b, GroupID: f.groupID, ParticipantIDs: []int64{f.b, f.c}},
	} {
		if _, err := f.ledger.RecordExpense(ctx, in); err != nil {
			t.Fatalf("RecordExpense failed: %v", err)
		}
	}

	// Nets: a +60, b -30+15 = -15, c -30-15 = -45.
	payments, err := f.ledger.SuggestSettlements(ctx, f.groupID)
	if err != nil {
		t.Fatalf("SuggestSettlements failed: %v", err)
	}
	want := []Payment{
		{FromID: f.c, ToID: f.a, Amount: dec("45")},
		{FromID: f.b, ToID: f.a, Amount: dec("15")},
	}
	if len(payments) != len(want) {
		t.Fatalf("payments = %+v, want %+v", payments, want)
	}
	for i := range want {
		if payments[i].FromID != want[i].FromID || payments[i].ToID != want[i].ToID || !payments[i].Amount.Equal(want[i].Amount) {
			t.Errorf("payment %d = %+v, want %+v", i, payments[i], want[i])
		}
	}

	if _, err := f.ledger.SuggestSettlements(ctx, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("SuggestSettlements(missing) error = %v, want ErrNotFound", err)
	}
}

func TestRebuildMatchesProjection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	steps := []func() error{
		func() error {
			_, err := f.ledger.RecordExpense(ctx, ExpenseInput{Description: "a", Amount: dec("100"), PayerID: f.a, GroupID: f.groupID, ParticipantIDs: []int64{f.a, f.b, f.c}})
			return err
		},
		func() error {
			_, err := f.ledger.RecordExpense(ctx, ExpenseInput{Description: "b", Amount: dec("47.11"), PayerID: f.b, GroupID: f.groupID, ParticipantIDs: []int64{f.c, f.a}})
			return err
		},
		func() error {
			_, err := f.ledger.RecordSettlement(ctx, SettlementInput{GroupID: f.groupID, PayerID: f.c, PayeeID: f.a, Amount: dec("12.34")})
			return err
		},
		func() error {
			_, err := f.ledger.RecordSettlement(ctx, SettlementInput{GroupID: f.groupID, PayerID: f.a, PayeeID: f.b, Amount: dec("80")})
			return err
		},
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d failed: %v", i, err)
		}
	}

	projected := f.edges(t)
	if _, err := f.ledger.RebuildBalances(ctx, f.groupID); err != nil {
		t.Fatalf("RebuildBalances failed: %v", err)
	}
	rebuilt := f.edges(t)
	if !reflect.DeepEqual(projected, rebuilt) {
		t.Errorf("projection %v differs from rebuild %v", projected, rebuilt)
	}
}

// failingStore fails AddToBalance inside every transaction after the expense
// and its shares have been written.
type failingStore struct {
	storage.Store
}

func (s failingStore) InTx(ctx context.Context, fn func(tx storage.Tx) error) error {
	return s.Store.InTx(ctx, func(tx storage.Tx) error {
		return fn(failingTx{tx})
	})
}

type failingTx struct {
	storage.Tx
}

func (failingTx) AddToBalance(context.Context, int64, int64, int64, decimal.Decimal) error {
	return errors.New("disk full")
}

func TestRecordExpenseIsAtomic(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	l := New(failingStore{f.store})

	_, err := l.RecordExpense(ctx, ExpenseInput{
		Description: "Broken", Amount: dec("30"), PayerID: f.a, GroupID: f.groupID,
		ParticipantIDs: []int64{f.a, f.b, f.c},
	})
	if !errors.Is(err, ErrStorage) {
		t.Fatalf("RecordExpense error = %v, want ErrStorage", err)
	}
	var se *StorageError
	if !errors.As(err, &se) || se.Op != "record expense" {
		t.Errorf("error = %#v, want *StorageError for record expense", err)
	}

	expenses, err := f.store.ListExpensesByGroup(ctx, f.groupID)
	if err != nil {
		t.Fatalf("ListExpensesByGroup failed: %v", err)
	}
	if len(expenses) != 0 {
		t.Errorf("got %d expenses after failed write, want 0", len(expenses))
	}
	if got := f.edges(t); len(got) != 0 {
		t.Errorf("edges = %v after failed write, want none", got)
	}

	_, err = l.RecordSettlement(ctx, SettlementInput{GroupID: f.groupID, PayerID: f.a, PayeeID: f.b, Amount: dec("5")})
	if !errors.Is(err, ErrStorage) {
		t.Errorf("RecordSettlement error = %v, want ErrStorage", err)
	}

	expenses, err = f.store.ListExpensesByGroup(ctx, f.groupID)
	if err != nil {
		t.Fatalf("ListExpensesByGroup failed: %v", err)
	}
	if len(expenses) != 0 {
		t.Errorf("got %d expenses after failed settlement, want 0", len(expenses))
	}
	if got := f.edges(t); len(got) != 0 {
		t.Errorf("edges = %v after failed settlement, want none", got)
	}
}

func TestConcurrentExpensesOnSameEdge(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	const n = 8
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.ledger.RecordExpense(ctx, ExpenseInput{
				Description: "Coffee", Amount: dec("10"), PayerID: f.a, GroupID: f.groupID,
				ParticipantIDs: []int64{f.a, f.b},
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("RecordExpense failed: %v", err)
		}
	}

	want := []string{fmt.Sprintf("%d->%d:40.00", f.b, f.a)}
	if got := f.edges(t); !reflect.DeepEqual(got, want) {
		t.Errorf("edges = %v, want %v", got, want)
	}
}

func TestGroupsAndExpenseAccess(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	outsider := f.user(t, "dave")

	t.Run("CreateGroup rejects unknown members", func(t *testing.T) {
		if _, err := f.ledger.CreateGroup(ctx, f.a, "Ghosts", []int64{9999}); !errors.Is(err, ErrNotFound) {
			t.Errorf("CreateGroup error = %v, want ErrNotFound", err)
		}
	})

	t.Run("CreateGroup rejects empty name", func(t *testing.T) {
		if _, err := f.ledger.CreateGroup(ctx, f.a, "  ", nil); !errors.Is(err, ErrInvalidRequest) {
			t.Errorf("CreateGroup error = %v, want ErrInvalidRequest", err)
		}
	})

	t.Run("CreateGroup ignores duplicates and the creator", func(t *testing.T) {
		g, err := f.ledger.CreateGroup(ctx, f.b, "Pair", []int64{f.b, f.c, f.c})
		if err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}
		if want := []int64{f.b, f.c}; !reflect.DeepEqual(g.MemberIDs, want) {
			t.Errorf("MemberIDs = %v, want %v", g.MemberIDs, want)
		}
	})

	t.Run("AddMember requires membership", func(t *testing.T) {
		if _, err := f.ledger.AddMember(ctx, outsider, f.groupID, outsider); !errors.Is(err, ErrForbidden) {
			t.Errorf("AddMember error = %v, want ErrForbidden", err)
		}
		g, err := f.ledger.AddMember(ctx, f.a, f.groupID, outsider)
		if err != nil {
			t.Fatalf("AddMember failed: %v", err)
		}
		if !g.HasMember(outsider) {
			t.Errorf("group %v does not contain %d", g.MemberIDs, outsider)
		}
		if _, err := f.ledger.AddMember(ctx, f.a, f.groupID, outsider); err != nil {
			t.Errorf("re-adding member failed: %v", err)
		}
	})

	t.Run("GetExpense checks group membership", func(t *testing.T) {
		expense, err := f.ledger.RecordExpense(ctx, ExpenseInput{
			Description: "Gift", Amount: dec("12"), PayerID: f.a, GroupID: f.groupID,
			ParticipantIDs: []int64{f.a, f.b},
		})
		if err != nil {
			t.Fatalf("RecordExpense failed: %v", err)
		}
		stranger := f.user(t, "erin")

		if _, err := f.ledger.GetExpense(ctx, f.c, expense.ID); err != nil {
			t.Errorf("GetExpense(member) failed: %v", err)
		}
		if _, err := f.ledger.GetExpense(ctx, stranger, expense.ID); !errors.Is(err, ErrForbidden) {
			t.Errorf("GetExpense(stranger) error = %v, want ErrForbidden", err)
		}
		if _, err := f.ledger.GetExpense(ctx, f.a, 9999); !errors.Is(err, ErrNotFound) {
			t.Errorf("GetExpense(missing) error = %v, want ErrNotFound", err)
		}
	})

	t.Run("GetExpense hides rows without a group", func(t *testing.T) {
		orphan := &models.Expense{
			Description: "Orphan", Amount: dec("9"), PayerID: f.a,
			Shares: []models.ExpenseShare{{UserID: f.a, Amount: dec("9")}},
		}
		err := f.store.InTx(ctx, func(tx storage.Tx) error {
			if err := tx.CreateExpense(ctx, orphan); err != nil {
				return err
			}
			return tx.CreateShares(ctx, orphan.ID, orphan.Shares)
		})
		if err != nil {
			t.Fatalf("inserting ungrouped expense failed: %v", err)
		}

		for _, caller := range []int64{f.a, f.b} {
			if _, err := f.ledger.GetExpense(ctx, caller, orphan.ID); !errors.Is(err, ErrNotFound) {
				t.Errorf("GetExpense(%d, ungrouped) error = %v, want ErrNotFound", caller, err)
			}
		}
	})

	t.Run("ListExpenses", func(t *testing.T) {
		all, err := f.ledger.ListExpenses(ctx, f.a, 0)
		if err != nil {
			t.Fatalf("ListExpenses failed: %v", err)
		}
		byGroup, err := f.ledger.ListExpenses(ctx, f.a, f.groupID)
		if err != nil {
			t.Fatalf("ListExpenses(group) failed: %v", err)
		}
		if len(all) != 1 || len(byGroup) != 1 {
			t.Errorf("got %d and %d expenses, want 1 and 1", len(all), len(byGroup))
		}
		if _, err := f.ledger.ListExpenses(ctx, f.user(t, "frank"), f.groupID); !errors.Is(err, ErrForbidden) {
			t.Errorf("ListExpenses(stranger) error = %v, want ErrForbidden", err)
		}
	})
}
