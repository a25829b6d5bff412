// Package service defines the ports the usecases depend on: hashing, tokens,
// notifications, locks and registration numbers. Implementations live in infra.
package service

// PasswordHasher hashes and verifies employee passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. A malformed hash never matches.
	Check(password, hash string) bool
}
