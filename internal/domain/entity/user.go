package entity

import "time"

// User is the core identity in the system, representing a registered account.
// Accounts are created at sign-up and are never mutated or deleted afterwards.
type User struct {
	ID           ID        // Typed account identifier, generated at sign-up.
	EmailAddress string    // Login identifier; unique across all accounts.
	Firstname    string    // The user's given name.
	Lastname     string    // The user's family name.
	PasswordHash string    // Salted bcrypt digest of the sign-up password.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
