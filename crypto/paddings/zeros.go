package paddings

import "github.com/didactic-crypto/classiccrypto/crypto"

// ZerosPadding pads with zero bytes. Unlike the other three schemes,
// CipherContext adds no Zeros padding when the input is already a
// multiple of the block size, and removal strips all trailing zero bytes — lossy for binary
// data that legitimately ends in 0x00 (§9 design notes).
// Reference: org.bouncycastle.crypto.paddings.ZeroBytePadding
type ZerosPadding struct{}

// NewZerosPadding creates a new Zeros padding instance.
func NewZerosPadding() *ZerosPadding {
	return &ZerosPadding{}
}

// Init is a no-op; Zeros needs no random source.
func (p *ZerosPadding) Init(random []byte) {}

// GetPaddingName returns "Zeros".
func (p *ZerosPadding) GetPaddingName() string {
	return "Zeros"
}

// AddPadding fills in[inOff:] with zero bytes and returns the count added.
func (p *ZerosPadding) AddPadding(in []byte, inOff int) int {
	added := len(in) - inOff
	for i := inOff; i < len(in); i++ {
		in[i] = 0
	}
	return added
}

// PadCount strips trailing zero bytes. It never errors: an all-zero
// block simply reports the full block length as padding.
func (p *ZerosPadding) PadCount(in []byte) (int, error) {
	count := len(in)
	for count > 0 && in[count-1] == 0 {
		count--
	}
	return len(in) - count, nil
}

var _ crypto.BlockCipherPadding = (*ZerosPadding)(nil)
