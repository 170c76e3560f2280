package paddings

import (
	"github.com/didactic-crypto/classiccrypto/crypto"
	"github.com/didactic-crypto/classiccrypto/pkg/ccerr"
)

// ANSIX923Padding pads with padLen-1 zero bytes followed by a final
// byte holding padLen.
// Reference: ANSI X9.23, org.bouncycastle.crypto.paddings.X923Padding
type ANSIX923Padding struct{}

// NewANSIX923Padding creates a new ANSI X9.23 padding instance.
func NewANSIX923Padding() *ANSIX923Padding {
	return &ANSIX923Padding{}
}

// Init is a no-op; ANSIX923 needs no random source.
func (p *ANSIX923Padding) Init(random []byte) {}

// GetPaddingName returns "ANSIX923".
func (p *ANSIX923Padding) GetPaddingName() string {
	return "ANSIX923"
}

// AddPadding fills in[inOff:len(in)-1] with zero bytes and the final
// byte with the padding length, and returns the count added.
func (p *ANSIX923Padding) AddPadding(in []byte, inOff int) int {
	added := len(in) - inOff
	for i := inOff; i < len(in)-1; i++ {
		in[i] = 0
	}
	in[len(in)-1] = byte(added)
	return added
}

// PadCount reads the final byte as the padding length and verifies the
// zero-run before it.
func (p *ANSIX923Padding) PadCount(in []byte) (int, error) {
	blockLen := len(in)
	if blockLen == 0 {
		return 0, ccerr.New(ccerr.LengthError, "ANSIX923: empty block")
	}

	padLen := int(in[blockLen-1])
	if padLen < 1 || padLen > blockLen {
		return 0, ccerr.New(ccerr.LengthError, "ANSIX923: invalid padding length %d", padLen)
	}

	for i := blockLen - padLen; i < blockLen-1; i++ {
		if in[i] != 0 {
			return 0, ccerr.New(ccerr.LengthError, "ANSIX923: corrupt zero run at %d", i)
		}
	}

	return padLen, nil
}

var _ crypto.BlockCipherPadding = (*ANSIX923Padding)(nil)
