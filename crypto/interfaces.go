// Package crypto provides the core cryptographic interfaces shared by
// every block cipher, stream cipher, mode of operation and padding
// scheme in classiccrypto. It mirrors the shape of Bouncy Castle's
// crypto package, the same way the teacher this module is built from
// mirrors it for SM2/SM3/SM4.
package crypto

// CipherParameters is a marker interface for cipher parameters.
// Reference: org.bouncycastle.crypto.CipherParameters
type CipherParameters interface {
	IsCipherParameters() bool
}

// BlockCipher defines the interface for keyed block-cipher engines.
// Implementations must be safe to call ProcessBlock concurrently from
// multiple goroutines once Init has returned: DES64, TripleDES64 and
// LOKI97_128 only read their round-key schedule and direction flag in
// ProcessBlock, never write them.
// Reference: org.bouncycastle.crypto.BlockCipher
type BlockCipher interface {
	// Init sets the key schedule and fixes the processing direction for
	// this instance's lifetime. DES64, TripleDES64 and LOKI97_128 all
	// store forEncryption at Init time and ProcessBlock only ever runs
	// that direction, so a single instance only ever runs the direction
	// it was Init'd with; callers needing both directions off one key
	// keep two instances.
	Init(forEncryption bool, params CipherParameters) error

	// GetAlgorithmName returns the algorithm name.
	GetAlgorithmName() string

	// GetBlockSize returns the block size for this cipher, in bytes.
	GetBlockSize() int

	// ProcessBlock encrypts or decrypts a single block.
	ProcessBlock(in []byte, inOff int, out []byte, outOff int) int

	// Reset clears any mode-owned feedback state; the key schedule survives.
	Reset()
}

// StreamCipher defines the interface for stateful keystream generators.
// Reference: org.bouncycastle.crypto.StreamCipher
type StreamCipher interface {
	// Init sets the key and resets the keystream state.
	Init(params CipherParameters) error

	// GetAlgorithmName returns the algorithm name.
	GetAlgorithmName() string

	// ProcessBytes XORs in with the next len(in) keystream bytes, writing to out.
	ProcessBytes(in []byte, out []byte) int

	// Reset clears the keystream state; the instance must be re-keyed
	// with Init before further use.
	Reset()
}

// BlockCipherMode defines a mode of operation layered over a BlockCipher.
type BlockCipherMode interface {
	BlockCipher
	// GetUnderlyingCipher returns the wrapped block cipher.
	GetUnderlyingCipher() BlockCipher
}

// BlockCipherPadding defines the interface for padding schemes.
// Reference: org.bouncycastle.crypto.paddings.BlockCipherPadding
type BlockCipherPadding interface {
	// Init lets the padding receive a random source; ISO10126 uses it.
	Init(random []byte)

	// GetPaddingName returns the name of the padding.
	GetPaddingName() string

	// AddPadding fills in[inOff:] with padding bytes and returns the count added.
	AddPadding(in []byte, inOff int) int

	// PadCount returns the number of padding bytes at the end of a full block.
	// Per spec, a mismatch is a soft failure: callers fall back to the raw
	// block rather than treat it as fatal.
	PadCount(in []byte) (int, error)
}
