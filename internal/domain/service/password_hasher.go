// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// It keeps the hashing algorithm (bcrypt in practice) out of the domain layer.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether a plaintext password matches a stored hash.
	Check(password, hash string) bool
}
