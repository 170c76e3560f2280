package ciphercontext

import "github.com/didactic-crypto/classiccrypto/pkg/ccerr"

// EncryptBuffer pads in to a block boundary (block modes only — CFB,
// OFB and CTR never pad, matching stream-mode semantics) and runs the
// padded buffer through the configured mode.
func (c *CipherContext) EncryptBuffer(in []byte) ([]byte, error) {
	data := in
	if c.padsForBlockMode() {
		data = c.applyPadding(in)
	}
	return c.processBlocks(data, true)
}

// DecryptBuffer runs in through the configured mode and strips
// padding for block modes. A padding mismatch is a soft failure: the
// raw decrypted bytes are returned unstripped rather than an error.
func (c *CipherContext) DecryptBuffer(in []byte) ([]byte, error) {
	if c.padsForBlockMode() && len(in)%c.blockSize != 0 {
		return nil, ccerr.New(ccerr.LengthError, "ciphertext length %d is not a multiple of the block size %d", len(in), c.blockSize)
	}

	out, err := c.processBlocks(in, false)
	if err != nil {
		return nil, err
	}

	if c.padsForBlockMode() {
		return c.stripPadding(out), nil
	}
	return out, nil
}

// padsForBlockMode reports whether this mode pads plaintext before
// encryption: CFB, OFB and CTR turn the cipher into a byte-oriented
// stream and never pad; every other mode is a true block mode.
func (c *CipherContext) padsForBlockMode() bool {
	switch c.mode {
	case CFB, OFB, CTR:
		return false
	default:
		return true
	}
}

func (c *CipherContext) applyPadding(in []byte) []byte {
	padder := c.padding.newInstance()

	padLen := c.blockSize - (len(in) % c.blockSize)
	if padLen == c.blockSize && c.padding == Zeros {
		padLen = 0
	}

	padded := make([]byte, len(in)+padLen)
	copy(padded, in)
	if padLen > 0 {
		padder.Init(nil)
		padder.AddPadding(padded[len(padded)-c.blockSize:], c.blockSize-padLen)
	}
	return padded
}

func (c *CipherContext) stripPadding(data []byte) []byte {
	if len(data) < c.blockSize {
		return data
	}
	padder := c.padding.newInstance()
	lastBlock := data[len(data)-c.blockSize:]

	padCount, err := padder.PadCount(lastBlock)
	if err != nil {
		return data
	}
	if padCount < 0 || padCount > c.blockSize {
		return data
	}
	return data[:len(data)-padCount]
}

// processBlocks dispatches data through the mode-appropriate driver:
// parallel fan-out against the raw keyed cipher for ECB/CBC-decrypt/
// CTR/RandomDelta, or a single serial mode wrapper for CBC-encrypt/
// PCBC/CFB/OFB.
func (c *CipherContext) processBlocks(data []byte, forEncryption bool) ([]byte, error) {
	if c.padsForBlockMode() && len(data)%c.blockSize != 0 {
		return nil, ccerr.New(ccerr.LengthError, "data length %d is not a multiple of the block size %d", len(data), c.blockSize)
	}

	if c.mode.parallelFanOut(forEncryption) {
		switch c.mode {
		case ECB:
			return c.processECB(data, forEncryption), nil
		case CBC:
			return c.processCBCDecrypt(data), nil
		case CTR:
			return c.processCTR(data), nil
		case RandomDelta:
			return c.processRandomDelta(data, forEncryption), nil
		}
	}

	return c.processSerialBlocks(data, forEncryption)
}
