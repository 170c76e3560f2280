package ciphercontext

import (
	"io"

	"github.com/didactic-crypto/classiccrypto/crypto"
	"github.com/didactic-crypto/classiccrypto/pkg/ccerr"
)

// streamChunkSize is the buffer size EncryptStream/DecryptStream read
// and process at a time.
const streamChunkSize = 64 * 1024

// processBytes is satisfied by the modes.* wrappers (CFB/OFB) whose
// ProcessBlock handles exactly one block; a stream's final chunk is
// rarely block-aligned, so streaming needs the richer multi-byte form.
type processBytes interface {
	ProcessBytes(in []byte, inOff int, length int, out []byte, outOff int) int
}

// EncryptStream reads r to completion in streamChunkSize chunks and
// writes the encrypted result to w. Block modes pad only the final
// chunk; CFB, OFB and CTR never pad. Feedback state is reset at the
// start of the call, as for EncryptBuffer.
func (c *CipherContext) EncryptStream(r io.Reader, w io.Writer) error {
	return c.runStream(r, w, true)
}

// DecryptStream is EncryptStream's inverse.
func (c *CipherContext) DecryptStream(r io.Reader, w io.Writer) error {
	return c.runStream(r, w, false)
}

func (c *CipherContext) runStream(r io.Reader, w io.Writer, forEncryption bool) error {
	st, err := c.newStreamState(forEncryption)
	if err != nil {
		return err
	}
	defer st.close()

	buf := make([]byte, streamChunkSize)
	next := make([]byte, streamChunkSize)
	n, readErr := io.ReadFull(r, buf)
	for {
		if readErr != nil && readErr != io.ErrUnexpectedEOF && readErr != io.EOF {
			return readErr
		}
		// A full chunk is final only if nothing follows it, so read one
		// chunk ahead before deciding whether to pad/unpad this one.
		final := n < streamChunkSize
		nextN := 0
		if !final {
			nextN, readErr = io.ReadFull(r, next)
			if readErr != nil && readErr != io.ErrUnexpectedEOF && readErr != io.EOF {
				return readErr
			}
			final = nextN == 0
		}

		out, procErr := st.process(buf[:n], final)
		if procErr != nil {
			return procErr
		}
		if len(out) > 0 {
			if _, writeErr := w.Write(out); writeErr != nil {
				return writeErr
			}
		}

		if final {
			return nil
		}
		buf, next, n = next, buf, nextN
	}
}

// streamState carries the running feedback state a CipherContext needs
// across successive chunks of one EncryptStream/DecryptStream call:
// either a previous-block/counter cursor for the parallel-fan-out
// modes, or one persistent modes.* wrapper for the inherently serial
// ones (CBC-encrypt, PCBC, CFB, OFB).
type streamState struct {
	c             *CipherContext
	forEncryption bool
	locked        bool

	prevBlock  []byte
	blockIndex uint64

	wrapper crypto.BlockCipher
}

func (c *CipherContext) newStreamState(forEncryption bool) (*streamState, error) {
	st := &streamState{c: c, forEncryption: forEncryption}

	needsWrapper := c.mode.serializedPrimitive() || (c.mode == CBC && forEncryption)
	if needsWrapper {
		if c.mode.serializedPrimitive() {
			c.serialMu.Lock()
			st.locked = true
		}
		wrapper, err := c.newSerialCipher(forEncryption)
		if err != nil {
			if st.locked {
				c.serialMu.Unlock()
			}
			return nil, err
		}
		st.wrapper = wrapper
		return st, nil
	}

	if c.mode == CBC {
		st.prevBlock = append([]byte(nil), c.iv...)
	}
	return st, nil
}

func (st *streamState) close() {
	if st.locked {
		st.c.serialMu.Unlock()
	}
}

// process runs one chunk through the mode this state was built for,
// applying/stripping padding only when final is true.
func (st *streamState) process(chunk []byte, final bool) ([]byte, error) {
	c := st.c

	switch c.mode {
	case CFB, OFB:
		pb, ok := st.wrapper.(processBytes)
		if !ok {
			return nil, ccerr.New(ccerr.StateError, "%s wrapper does not support byte-stream processing", c.mode)
		}
		out := make([]byte, len(chunk))
		pb.ProcessBytes(chunk, 0, len(chunk), out, 0)
		return out, nil

	case CTR:
		out := c.processCTRChunk(chunk, st.blockIndex)
		st.blockIndex += ceilBlocks(len(chunk), c.blockSize)
		return out, nil

	case RandomDelta:
		data := chunk
		if st.forEncryption && final {
			data = c.applyPadding(chunk)
		}
		out := c.processRandomDeltaChunk(data, st.forEncryption, st.blockIndex)
		st.blockIndex += ceilBlocks(len(data), c.blockSize)
		if !st.forEncryption && final {
			out = c.stripPadding(out)
		}
		return out, nil

	case ECB:
		data := chunk
		if st.forEncryption && final {
			data = c.applyPadding(chunk)
		}
		out := c.processECB(data, st.forEncryption)
		if !st.forEncryption && final {
			out = c.stripPadding(out)
		}
		return out, nil

	case CBC:
		if !st.forEncryption {
			out := c.processCBCDecryptChunk(chunk, st.prevBlock)
			if len(chunk) > 0 {
				st.prevBlock = append([]byte(nil), chunk[len(chunk)-c.blockSize:]...)
			}
			if final {
				out = c.stripPadding(out)
			}
			return out, nil
		}
		return st.processSerialBlockChunk(chunk, final)

	case PCBC:
		return st.processSerialBlockChunk(chunk, final)

	default:
		return nil, ccerr.New(ccerr.UnsupportedMode, "unsupported mode %v for streaming", c.mode)
	}
}

// processSerialBlockChunk drives CBC-encrypt and PCBC (both directions)
// through the one persistent wrapper instance held for this stream.
func (st *streamState) processSerialBlockChunk(chunk []byte, final bool) ([]byte, error) {
	c := st.c
	data := chunk
	if st.forEncryption && final {
		data = c.applyPadding(chunk)
	}

	out := make([]byte, len(data))
	for off := 0; off+c.blockSize <= len(data); off += c.blockSize {
		st.wrapper.ProcessBlock(data, off, out, off)
	}

	if !st.forEncryption && final {
		out = c.stripPadding(out)
	}
	return out, nil
}

// ceilBlocks returns the number of blocks (rounding up) n bytes span.
func ceilBlocks(n, blockSize int) uint64 {
	return uint64((n + blockSize - 1) / blockSize)
}
