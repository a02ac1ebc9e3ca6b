package ledger

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/mmynk/hisaab/internal/money"
)

const (
	maxDescriptionLen = 255
	maxGroupNameLen   = 128
)

// ExpenseInput is a request to record an expense split equally among
// participants.
type ExpenseInput struct {
	Description    string
	Amount         decimal.Decimal
	PayerID        int64
	GroupID        int64
	ParticipantIDs []int64
}

// ValidExpense is an ExpenseInput that passed validation.
type ValidExpense struct {
	Description    string
	AmountCents    int64
	PayerID        int64
	GroupID        int64
	ParticipantIDs []int64
}

// ValidateExpense checks everything about an expense that does not need the
// store.
func ValidateExpense(in ExpenseInput) (ValidExpense, error) {
	cents, err := validateAmount(in.Amount)
	if err != nil {
		return ValidExpense{}, err
	}

	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return ValidExpense{}, invalid("description", "must not be empty")
	}
	if utf8.RuneCountInString(desc) > maxDescriptionLen {
		return ValidExpense{}, invalid("description", "must be at most %d characters", maxDescriptionLen)
	}

	if len(in.ParticipantIDs) == 0 {
		return ValidExpense{}, invalid("participant_ids", "must not be empty")
	}
	seen := make(map[int64]bool, len(in.ParticipantIDs))
	for _, id := range in.ParticipantIDs {
		if seen[id] {
			return ValidExpense{}, invalid("participant_ids", "user %d listed more than once", id)
		}
		seen[id] = true
	}

	return ValidExpense{
		Description:    desc,
		AmountCents:    cents,
		PayerID:        in.PayerID,
		GroupID:        in.GroupID,
		ParticipantIDs: append([]int64(nil), in.ParticipantIDs...),
	}, nil
}

// SettlementInput is a request to record that payer paid payee.
type SettlementInput struct {
	GroupID int64
	PayerID int64
	PayeeID int64
	Amount  decimal.Decimal
	Note    string
}

// ValidSettlement is a SettlementInput that passed validation.
type ValidSettlement struct {
	GroupID     int64
	PayerID     int64
	PayeeID     int64
	AmountCents int64
	Note        string
}

// ValidateSettlement checks everything about a settlement that does not need
// the store.
func ValidateSettlement(in SettlementInput) (ValidSettlement, error) {
	cents, err := validateAmount(in.Amount)
	if err != nil {
		return ValidSettlement{}, err
	}
	if in.PayerID == in.PayeeID {
		return ValidSettlement{}, invalid("payee_id", "payer and payee must differ")
	}

	note := strings.TrimSpace(in.Note)
	if utf8.RuneCountInString(note) > maxDescriptionLen {
		return ValidSettlement{}, invalid("note", "must be at most %d characters", maxDescriptionLen)
	}

	return ValidSettlement{
		GroupID:     in.GroupID,
		PayerID:     in.PayerID,
		PayeeID:     in.PayeeID,
		AmountCents: cents,
		Note:        note,
	}, nil
}

// ValidateGroupName trims name and checks its length.
func ValidateGroupName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", invalid("name", "must not be empty")
	}
	if utf8.RuneCountInString(name) > maxGroupNameLen {
		return "", invalid("name", "must be at most %d characters", maxGroupNameLen)
	}
	return name, nil
}

func validateAmount(amount decimal.Decimal) (int64, error) {
	cents, err := money.ToCents(amount)
	if err != nil {
		return 0, invalid("amount", "%v", err)
	}
	if cents <= 0 {
		return 0, invalid("amount", "must be positive, got %s", money.Format(amount))
	}
	return cents, nil
}
