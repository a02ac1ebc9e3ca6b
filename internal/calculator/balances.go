package calculator

import "sort"

// ExpenseForBalance carries the minimal information of a recorded expense
// needed for balance calculations.
type ExpenseForBalance struct {
	PayerID     int64
	AmountCents int64
	Settlement  bool
	Shares      []Portion
}

// DebtEdge represents a debt from one person to another.
type DebtEdge struct {
	From  int64 // Person who owes
	To    int64 // Person who is owed
	Cents int64
}

// NetBalances computes every user's net position across expenses.
// Positive = others owe the user, negative = the user owes others.
//
// Algorithm:
//   - payer contributes +amount
//   - genuine split: every share holder contributes -share
//   - settlement: every share holder contributes +share (payee share is -amount)
//
// The nets of any set of expenses sum to zero.
func NetBalances(expenses []ExpenseForBalance) map[int64]int64 {
	net := make(map[int64]int64)
	for _, e := range expenses {
		net[e.PayerID] += e.AmountCents
		for _, s := range e.Shares {
			if e.Settlement {
				net[s.UserID] += s.Cents
			} else {
				net[s.UserID] -= s.Cents
			}
		}
	}
	return net
}

// PairwiseDebts folds expenses into one netted edge per pair of users.
//
// A genuine split adds share to participant -> payer for every participant
// other than the payer. A settlement adds -share to payee -> payer, which
// reduces what the payer owes the payee. Pairs that net to zero are omitted.
// The result is ordered by (From, To).
func PairwiseDebts(expenses []ExpenseForBalance) []DebtEdge {
	ledger := make(PairLedger)
	for _, e := range expenses {
		for _, s := range e.Shares {
			if s.UserID == e.PayerID {
				continue
			}
			cents := s.Cents
			if e.Settlement {
				cents = -cents
			}
			ledger.Add(s.UserID, e.PayerID, cents)
		}
	}
	return ledger.Edges()
}

// Pair is an unordered pair of users with A < B.
type Pair struct {
	A, B int64
}

// PairLedger keeps a single signed amount per pair.
// A positive amount means A owes B; negative means B owes A.
type PairLedger map[Pair]int64

// OrientEdge maps a directed debt onto its canonical pair and signed amount.
func OrientEdge(debtor, creditor, cents int64) (Pair, int64) {
	if debtor < creditor {
		return Pair{A: debtor, B: creditor}, cents
	}
	return Pair{A: creditor, B: debtor}, -cents
}

// Add records that debtor owes creditor cents more.
func (l PairLedger) Add(debtor, creditor, cents int64) {
	pair, signed := OrientEdge(debtor, creditor, cents)
	l[pair] += signed
}

// Edges returns the non-zero pairs as directed debts ordered by (From, To).
func (l PairLedger) Edges() []DebtEdge {
	edges := make([]DebtEdge, 0, len(l))
	for pair, cents := range l {
		switch {
		case cents > 0:
			edges = append(edges, DebtEdge{From: pair.A, To: pair.B, Cents: cents})
		case cents < 0:
			edges = append(edges, DebtEdge{From: pair.B, To: pair.A, Cents: -cents})
		}
	}
	sortEdges(edges)
	return edges
}

// SimplifyDebts proposes payments that clear every net balance.
//
// Greedy algorithm: repeatedly match the largest debtor with the largest
// creditor and settle the smaller of the two amounts. Ties break on the lower
// user ID so the result is deterministic.
func SimplifyDebts(net map[int64]int64) []DebtEdge {
	type position struct {
		userID int64
		cents  int64
	}

	var creditors, debtors []position
	for userID, cents := range net {
		if cents > 0 {
			creditors = append(creditors, position{userID, cents})
		} else if cents < 0 {
			debtors = append(debtors, position{userID, -cents})
		}
	}
	byLargest := func(p []position) func(i, j int) bool {
		return func(i, j int) bool {
			if p[i].cents != p[j].cents {
				return p[i].cents > p[j].cents
			}
			return p[i].userID < p[j].userID
		}
	}
	sort.Slice(creditors, byLargest(creditors))
	sort.Slice(debtors, byLargest(debtors))

	var edges []DebtEdge
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := min(debtors[i].cents, creditors[j].cents)
		edges = append(edges, DebtEdge{
			From:  debtors[i].userID,
			To:    creditors[j].userID,
			Cents: amount,
		})

		debtors[i].cents -= amount
		creditors[j].cents -= amount

		if debtors[i].cents == 0 {
			i++
		}
		if creditors[j].cents == 0 {
			j++
		}
	}
	return edges
}

func sortEdges(edges []DebtEdge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
}
