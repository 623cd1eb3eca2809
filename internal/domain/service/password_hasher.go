// Package service defines the interfaces for domain services consumed by the
// application layer.
package service

// PasswordHasher defines the interface for one-way password hashing.
// This abstracts the hashing primitive from the use cases.
type PasswordHasher interface {
	// Hash generates a salted digest from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored digest.
	Check(password, hash string) bool
}
