// Package paddings implements the block-cipher padding schemes of §4.3:
// Zeros, PKCS7, ANSIX923 and ISO10126.
package paddings

import (
	"github.com/didactic-crypto/classiccrypto/crypto"
	"github.com/didactic-crypto/classiccrypto/pkg/ccerr"
)

// PKCS7Padding pads with padLen bytes each holding the value padLen.
// Reference: RFC 5652, org.bouncycastle.crypto.paddings.PKCS7Padding
type PKCS7Padding struct{}

// NewPKCS7Padding creates a new PKCS7 padding instance.
func NewPKCS7Padding() *PKCS7Padding {
	return &PKCS7Padding{}
}

// Init is a no-op; PKCS7 needs no random source.
func (p *PKCS7Padding) Init(random []byte) {}

// GetPaddingName returns "PKCS7".
func (p *PKCS7Padding) GetPaddingName() string {
	return "PKCS7"
}

// AddPadding fills in[inOff:] with padLen bytes of value padLen, where
// padLen = len(in) - inOff, and returns padLen.
func (p *PKCS7Padding) AddPadding(in []byte, inOff int) int {
	padLen := len(in) - inOff
	for i := inOff; i < len(in); i++ {
		in[i] = byte(padLen)
	}
	return padLen
}

// PadCount reads the last byte as the padding length and verifies every
// padding byte matches it. Per spec §4.3/§7 a mismatch is a soft failure:
// the caller is expected to fall back to the raw block, not treat it as fatal.
func (p *PKCS7Padding) PadCount(in []byte) (int, error) {
	blockLen := len(in)
	if blockLen == 0 {
		return 0, ccerr.New(ccerr.LengthError, "PKCS7: empty block")
	}

	padLen := int(in[blockLen-1])
	if padLen < 1 || padLen > blockLen {
		return 0, ccerr.New(ccerr.LengthError, "PKCS7: invalid padding length %d", padLen)
	}

	for i := blockLen - padLen; i < blockLen; i++ {
		if in[i] != byte(padLen) {
			return 0, ccerr.New(ccerr.LengthError, "PKCS7: corrupt padding byte at %d", i)
		}
	}

	return padLen, nil
}

var _ crypto.BlockCipherPadding = (*PKCS7Padding)(nil)
