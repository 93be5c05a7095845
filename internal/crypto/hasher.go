// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	argonVariant = "argon2id"
	argonVersion = "v=19"
)

var errInvalidHashFormat = errors.New("argon2: invalid encoded hash format")

// argonHasher is the private implementation of [PasswordHasher].
type argonHasher struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target.
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
	saltLen uint32
}

// NewPasswordHasher constructs a [PasswordHasher] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
//   - salt length: 16 bytes
func NewPasswordHasher() PasswordHasher {
	return &argonHasher{
		time:    1,
		memory:  64 * 1024, // 64 MiB
		threads: 4,
		keyLen:  32, // 256 bits
		saltLen: 16,
	}
}

// Hash implements [PasswordHasher]. It reads a random salt from the OS
// CSPRNG, derives the argon2id key, and encodes parameters, salt, and hash
// into one portable string:
//
//	argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<salt-b64>$<hash-b64>
//
// Returns an error only if the random read fails.
func (h *argonHasher) Hash(secret string) (string, error) {
	salt := make([]byte, h.saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("argon2: generate salt: %w", err)
	}

	sum := argon2.IDKey([]byte(secret), salt, h.time, h.memory, h.threads, h.keyLen)

	encoded := strings.Join([]string{
		argonVariant,
		argonVersion,
		fmt.Sprintf("m=%d,t=%d,p=%d", h.memory, h.time, h.threads),
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(sum),
	}, "$")

	return encoded, nil
}

// Verify implements [PasswordHasher]. It re-derives the key with the
// parameters embedded in encoded and compares with
// [subtle.ConstantTimeCompare], so the comparison cost does not depend on
// where a mismatch occurs. Any decoding failure yields false.
func (h *argonHasher) Verify(secret, encoded string) bool {
	if secret == "" || encoded == "" {
		return false
	}

	params, salt, expected, err := decodeHash(encoded)
	if err != nil {
		return false
	}

	computed := argon2.IDKey([]byte(secret), salt, params.time, params.memory, params.threads, uint32(len(expected)))
	return subtle.ConstantTimeCompare(computed, expected) == 1
}

type hashParams struct {
	time    uint32
	memory  uint32
	threads uint8
}

// decodeHash splits an encoded hash produced by [argonHasher.Hash] back into
// its parameters, salt, and key material.
func decodeHash(encoded string) (hashParams, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 5 || parts[0] != argonVariant || parts[1] != argonVersion {
		return hashParams{}, nil, nil, errInvalidHashFormat
	}

	var p hashParams
	if _, err := fmt.Sscanf(parts[2], "m=%d,t=%d,p=%d", &p.memory, &p.time, &p.threads); err != nil {
		return hashParams{}, nil, nil, errInvalidHashFormat
	}
	if p.memory == 0 || p.time == 0 || p.threads == 0 {
		return hashParams{}, nil, nil, errInvalidHashFormat
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil {
		return hashParams{}, nil, nil, fmt.Errorf("argon2: decode salt: %w", err)
	}

	sum, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return hashParams{}, nil, nil, fmt.Errorf("argon2: decode hash: %w", err)
	}
	if len(sum) == 0 {
		return hashParams{}, nil, nil, errInvalidHashFormat
	}

	return p, salt, sum, nil
}
