package paddings

import (
	"crypto/rand"

	"github.com/didactic-crypto/classiccrypto/crypto"
	"github.com/didactic-crypto/classiccrypto/pkg/ccerr"
)

// ISO10126Padding pads with random bytes followed by a final length byte.
// Because it injects randomness, ciphertext is non-deterministic for a
// fixed key/IV/plaintext (§8) — Init lets a test pin the filler bytes
// instead of drawing from crypto/rand.
// Reference: org.bouncycastle.crypto.paddings.ISO10126d2Padding
type ISO10126Padding struct {
	fixed []byte // when non-nil, used instead of crypto/rand (tests only)
}

// NewISO10126Padding creates a new ISO10126 padding instance.
func NewISO10126Padding() *ISO10126Padding {
	return &ISO10126Padding{}
}

// Init pins the filler bytes used by AddPadding for reproducible tests.
// Passing nil reverts to crypto/rand.Reader.
func (p *ISO10126Padding) Init(random []byte) {
	p.fixed = random
}

// GetPaddingName returns "ISO10126-2".
func (p *ISO10126Padding) GetPaddingName() string {
	return "ISO10126-2"
}

// AddPadding fills in[inOff:len(in)-1] with random bytes and the final
// byte with the padding length, and returns the count added.
func (p *ISO10126Padding) AddPadding(in []byte, inOff int) int {
	added := len(in) - inOff

	if added > 1 {
		if p.fixed != nil {
			copy(in[inOff:len(in)-1], p.fixed)
		} else {
			rand.Read(in[inOff : len(in)-1])
		}
	}

	in[len(in)-1] = byte(added)
	return added
}

// PadCount reads the final byte as the padding length; the filler bytes
// before it are not validated.
func (p *ISO10126Padding) PadCount(in []byte) (int, error) {
	if len(in) == 0 {
		return 0, ccerr.New(ccerr.LengthError, "ISO10126: empty block")
	}
	count := int(in[len(in)-1])
	if count < 1 || count > len(in) {
		return 0, ccerr.New(ccerr.LengthError, "ISO10126: invalid padding length %d", count)
	}
	return count, nil
}

var _ crypto.BlockCipherPadding = (*ISO10126Padding)(nil)
