// Package models defines the core domain models for hisaab.
//
// # Models
//
//   - User: a registered account, identified by an int64 id
//   - Group: a set of users who share expenses
//   - Expense: an amount paid by one member, split among participants
//   - ExpenseShare: one participant's signed portion of an expense
//   - Balance: the net debt between two members of a group
//
// # Conventions
//
// 1. **Exact money**: amounts are decimal.Decimal with two decimal places;
// the store persists integer cents.
// 2. **Ids, not pointers**: relationships are expressed with int64 ids.
// 3. **Immutable records**: expenses and shares are never edited. Settlements
// are expenses of KindSettlement.
package models
