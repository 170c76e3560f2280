package agreement

import (
	"crypto/sha256"
	"math/big"

	"github.com/didactic-crypto/classiccrypto/pkg/ccerr"
)

// DeriveKey hashes s's minimal two's-complement byte encoding with
// SHA-256 and returns the first length bytes. length must be at most
// sha256.Size; a larger request fails with KeySizeTooLarge rather than
// silently truncating or padding with zeros.
// Reference: teacher's SM2KeyExchange.kdf, which also hashes a shared
// value down to a caller-requested key length; simplified here to a
// single SHA-256 pass since the derived key never exceeds one digest.
func DeriveKey(s *big.Int, length int) ([]byte, error) {
	if length > sha256.Size {
		return nil, ccerr.New(ccerr.KeySizeTooLarge, "requested key length %d exceeds SHA-256's %d-byte output", length, sha256.Size)
	}
	if length <= 0 {
		return nil, ccerr.New(ccerr.KeySizeTooLarge, "requested key length %d must be positive", length)
	}

	digest := sha256.Sum256(twosComplementBytes(s))
	return append([]byte(nil), digest[:length]...), nil
}

// twosComplementBytes returns the minimal two's-complement big-endian
// encoding of a non-negative s: big.Int.Bytes() already gives the
// minimal unsigned magnitude, so the only adjustment needed is a
// leading zero byte when the magnitude's top bit would otherwise read
// as a sign bit.
func twosComplementBytes(s *big.Int) []byte {
	b := s.Bytes()
	if len(b) > 0 && b[0]&0x80 != 0 {
		padded := make([]byte, len(b)+1)
		copy(padded[1:], b)
		return padded
	}
	return b
}
