package ciphercontext

import (
	"github.com/didactic-crypto/classiccrypto/crypto"
	"github.com/didactic-crypto/classiccrypto/crypto/modes"
	"github.com/didactic-crypto/classiccrypto/crypto/params"
	"github.com/didactic-crypto/classiccrypto/pkg/ccerr"
)

// newSerialCipher builds a fresh stateful mode wrapper around the
// context's shared keyed cipher, reinitialized to the context's IV.
// Passing the key parameter (rather than nil) on every call keeps the
// wrapper's own state machine (e.g. CBCBlockCipher's encrypting-flag
// bookkeeping) from tripping on a freshly zero-valued instance; it
// costs one redundant, idempotent key-schedule recomputation.
func (c *CipherContext) newSerialCipher(forEncryption bool) (crypto.BlockCipher, error) {
	ivParams := params.NewParametersWithIV(c.keyParam, c.iv)

	var wrapper crypto.BlockCipher
	switch c.mode {
	case CBC:
		wrapper = modes.NewCBCBlockCipher(c.cipherFor(forEncryption))
	case PCBC:
		wrapper = modes.NewPCBCBlockCipher(c.cipherFor(forEncryption))
	case CFB:
		// CFB always drives the block primitive in the encrypt
		// direction, even when the context is decrypting.
		wrapper = modes.NewCFBBlockCipher(c.encCipher, c.blockSize*8)
	case OFB:
		// Same as CFB: OFB's feedback register is always produced by
		// encrypting, never by decrypting.
		wrapper = modes.NewOFBBlockCipher(c.encCipher, c.blockSize*8)
	default:
		return nil, ccerr.New(ccerr.UnsupportedMode, "%v is not a serial mode", c.mode)
	}

	if err := wrapper.Init(forEncryption, ivParams); err != nil {
		return nil, err
	}
	return wrapper, nil
}

// processSerialBlocks runs every block of data through a single
// serial mode wrapper in block order. PCBC/CFB/OFB additionally hold
// serialMu for the duration, per the concurrency model's requirement
// that those three modes never drive the cipher primitive from more
// than one goroutine at a time.
func (c *CipherContext) processSerialBlocks(data []byte, forEncryption bool) ([]byte, error) {
	if c.mode.serializedPrimitive() {
		c.serialMu.Lock()
		defer c.serialMu.Unlock()
	}

	wrapper, err := c.newSerialCipher(forEncryption)
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(data))

	// CFB/OFB are byte-stream modes: a final chunk shorter than a full
	// block is valid and must not be silently dropped, so it is run
	// through the wrapper's richer ProcessBytes rather than ProcessBlock.
	if pb, ok := wrapper.(interface {
		ProcessBytes(in []byte, inOff int, length int, out []byte, outOff int) int
	}); ok && (c.mode == CFB || c.mode == OFB) {
		pb.ProcessBytes(data, 0, len(data), out, 0)
		return out, nil
	}

	for off := 0; off+c.blockSize <= len(data); off += c.blockSize {
		wrapper.ProcessBlock(data, off, out, off)
	}
	return out, nil
}
