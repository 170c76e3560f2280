// Package keyderive turns a user passphrase into a cipher key, an
// alternative key-entry path alongside raw key bytes and
// agreement.DeriveKey's Diffie-Hellman-derived keys.
// Reference: absfs-encryptfs's PasswordKeyProvider (key_provider.go),
// narrowed to its PBKDF2-HMAC-SHA256 path — this toolkit has no Argon2id
// dependency to wire a second provider to.
package keyderive

import (
	"crypto/rand"
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"

	"github.com/didactic-crypto/classiccrypto/pkg/ccerr"
)

// DefaultIterations matches absfs-encryptfs's PBKDF2 default.
const DefaultIterations = 100000

// DefaultSaltSize is the recommended random salt length in bytes.
const DefaultSaltSize = 32

// PassphraseToKey derives a keySize-byte key from passphrase and salt
// via PBKDF2-HMAC-SHA256. Callers choose iterations directly rather
// than through a Params struct with zero-value defaults, since a caller
// silently getting DefaultIterations by omission is an easy way to
// under-harden a key without noticing.
func PassphraseToKey(passphrase, salt []byte, iterations, keySize int) ([]byte, error) {
	if len(passphrase) == 0 {
		return nil, ccerr.New(ccerr.StateError, "passphrase must not be empty")
	}
	if len(salt) == 0 {
		return nil, ccerr.New(ccerr.StateError, "salt must not be empty")
	}
	if iterations <= 0 {
		return nil, ccerr.New(ccerr.StateError, "iterations must be positive")
	}
	if keySize <= 0 {
		return nil, ccerr.New(ccerr.InvalidKeySize, "keySize must be positive")
	}

	return pbkdf2.Key(passphrase, salt, iterations, keySize, sha256.New), nil
}

// GenerateSalt returns n random bytes suitable for use as a PBKDF2 salt.
func GenerateSalt(n int) ([]byte, error) {
	salt := make([]byte, n)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}
