// Package crypto implements the password hashing used by the authentication
// flow: argon2id with a per-hash random salt and a self-describing encoded
// form, so stored hashes survive parameter changes.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_crypto.go -package=mock

// PasswordHasher hashes plaintext secrets for storage and verifies
// candidates against stored hashes.
//
// Implementations must embed a random salt in every hash (two hashes of the
// same secret differ) and must compare in constant time. A malformed stored
// hash makes Verify return false; it never panics and the caller never sees
// an error.
type PasswordHasher interface {
	// Hash derives a storable, self-describing hash from the plaintext secret.
	Hash(secret string) (string, error)

	// Verify reports whether secret matches the encoded hash.
	Verify(secret, encoded string) bool
}
