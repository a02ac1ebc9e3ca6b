package models

// Group is a set of users who share expenses.
// Membership only grows: members are added at creation or explicitly later.
type Group struct {
	// ID is the store-assigned identifier.
	ID int64

	// Name is the display name of the group (e.g., "Roommates", "Goa Trip").
	Name string

	// CreatedBy is the user ID of the creator, who is always a member.
	CreatedBy int64

	// MemberIDs lists the user IDs of all members, ordered by ID.
	MemberIDs []int64

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// HasMember reports whether userID is in the group's member list.
func (g *Group) HasMember(userID int64) bool {
	for _, id := range g.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}
