package ledger

import (
	"errors"
	"fmt"

	"github.com/mmynk/hisaab/internal/money"
	"github.com/mmynk/hisaab/internal/storage"
)

// Sentinel errors, one per failure category. Callers branch with errors.Is.
var (
	ErrNotFound           = errors.New("ledger: not found")
	ErrInvalidParticipant = errors.New("ledger: invalid participant")
	ErrInvalidRequest     = errors.New("ledger: invalid request")
	ErrForbidden          = errors.New("ledger: forbidden")
	ErrStorage            = errors.New("ledger: storage failure")
)

// ValidationError is an input that failed validation before any write.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("ledger: invalid %s: %s", e.Field, e.Message)
}

// Is makes ValidationError match ErrInvalidRequest.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidRequest
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ParticipantError names a payer or participant who is not a member of the
// expense's group.
type ParticipantError struct {
	UserID  int64
	GroupID int64
}

func (e *ParticipantError) Error() string {
	return fmt.Sprintf("ledger: user %d is not a member of group %d", e.UserID, e.GroupID)
}

// Is makes ParticipantError match ErrInvalidParticipant.
func (e *ParticipantError) Is(target error) bool {
	return target == ErrInvalidParticipant
}

// StorageError wraps a failure of the underlying store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("ledger: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is makes StorageError match ErrStorage.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// IsLedgerError reports whether err already belongs to one of the ledger's
// error categories.
func IsLedgerError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInvalidParticipant) ||
		errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrStorage)
}

// fromStore classifies an error coming out of the store.
// Ledger errors raised inside a transaction pass through unchanged.
func fromStore(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case IsLedgerError(err):
		return err
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("%s: %w: %v", op, ErrNotFound, err)
	case errors.Is(err, money.ErrTooPrecise), errors.Is(err, money.ErrOutOfRange):
		return fmt.Errorf("%s: %w: %v", op, ErrInvalidRequest, err)
	default:
		return &StorageError{Op: op, Err: err}
	}
}
