package ledger

import (
	"context"
	"fmt"

	"github.com/mmynk/hisaab/internal/storage"
)

// Membership answers whether a user belongs to a group.
// It has no side effects and works against the store or an open transaction.
type Membership struct {
	reader storage.Reader
}

// NewMembership creates a Membership backed by r.
func NewMembership(r storage.Reader) *Membership {
	return &Membership{reader: r}
}

// IsMember reports whether userID belongs to groupID.
// Returns ErrNotFound if the group does not exist.
func (m *Membership) IsMember(ctx context.Context, groupID, userID int64) (bool, error) {
	ok, err := m.reader.IsMember(ctx, groupID, userID)
	if err != nil {
		return false, fromStore("check membership", err)
	}
	if ok {
		return true, nil
	}

	// A membership row implies the group exists; its absence does not.
	if _, err := m.reader.GetGroup(ctx, groupID); err != nil {
		return false, fromStore("get group", err)
	}
	return false, nil
}

// RequireMember returns ErrNotFound if the group does not exist and
// ErrForbidden if userID is not one of its members.
func (m *Membership) RequireMember(ctx context.Context, groupID, userID int64) error {
	ok, err := m.IsMember(ctx, groupID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: user %d is not a member of group %d", ErrForbidden, userID, groupID)
	}
	return nil
}

// requireParticipant is like RequireMember but reports a non-member as an
// invalid participant of the expense being recorded.
func (m *Membership) requireParticipant(ctx context.Context, groupID, userID int64) error {
	ok, err := m.IsMember(ctx, groupID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return &ParticipantError{UserID: userID, GroupID: groupID}
	}
	return nil
}
