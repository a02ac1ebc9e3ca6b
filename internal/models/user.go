package models

import "time"

// User represents a registered user account.
type User struct {
	// ID is the store-assigned identifier.
	ID int64

	// Username is the unique login handle.
	Username string

	// Email is the user's unique contact address.
	Email string

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64
}

// NewUser creates a new User with the creation timestamp set.
// The ID is assigned by the store on insert.
func NewUser(username, email, passwordHash string) *User {
	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}
}
