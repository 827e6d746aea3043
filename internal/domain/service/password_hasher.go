// Package service defines interfaces for domain services implemented in infra.
package service

// MaxPasswordBytes is the longest secret a PasswordHasher accepts. bcrypt rejects more than 72 bytes.
const MaxPasswordBytes = 72

// PasswordHasher hashes and verifies secrets for users and staff alike.
type PasswordHasher interface {
	// Hash returns a salted one-way hash. Repeated calls with the same input differ.
	Hash(password string) (string, error)

	// Check reports whether password matches hash. Malformed hashes never match.
	Check(password, hash string) bool
}
