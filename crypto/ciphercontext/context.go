package ciphercontext

import (
	"sync"

	"github.com/google/uuid"

	"github.com/didactic-crypto/classiccrypto/crypto"
	"github.com/didactic-crypto/classiccrypto/crypto/engines"
	"github.com/didactic-crypto/classiccrypto/crypto/params"
	"github.com/didactic-crypto/classiccrypto/internal/secmem"
	"github.com/didactic-crypto/classiccrypto/pkg/ccerr"
)

// CipherContext wraps one keyed BlockCipher, a Mode, and a Padding,
// exposing buffer-to-buffer and stream-to-stream encryption. It owns
// its cipher and IV copy exclusively; feedback state is reinitialized
// at the start of every top-level Encrypt*/Decrypt* call, so calls on
// the same context must never overlap.
// Reference: spec.md §4.4, generalized from the teacher's per-mode
// BlockCipherMode wrappers in crypto/modes.
type CipherContext struct {
	algorithm Algorithm
	mode      Mode
	padding   Padding
	blockSize int

	keyParam *params.KeyParameter
	iv       []byte // owned copy; nil for ECB

	// The engines gate ProcessBlock's direction on the forEncryption
	// flag passed to Init, so one context keeps two fixed-direction
	// instances off the same key rather than re-Init'ing one instance
	// mid-call (which would race against concurrent ProcessBlock calls
	// from a parallel fan-out).
	encCipher crypto.BlockCipher
	decCipher crypto.BlockCipher

	// serialMu guards PCBC/CFB/OFB processing: these modes drive the
	// shared cipher through a stateful feedback register that is not
	// safe for concurrent ProcessBlock calls.
	serialMu sync.Mutex

	// lockedKey holds a page-locked copy of the raw key bytes so the
	// key material is not paged to swap for the context's lifetime.
	lockedKey *secmem.Locked

	// SessionID is an opaque correlation tag for logs, with no
	// cryptographic meaning and no wire-level role.
	SessionID uuid.UUID
}

// New constructs a CipherContext for the given algorithm, key, mode
// and padding. iv must be nil/empty for ECB and exactly the cipher's
// block size for every other mode; anything else is InvalidIV.
func New(algorithm Algorithm, key []byte, mode Mode, padding Padding, iv []byte) (*CipherContext, error) {
	encCipher, err := newEngine(algorithm)
	if err != nil {
		return nil, err
	}
	decCipher, err := newEngine(algorithm)
	if err != nil {
		return nil, err
	}

	keyParam := params.NewKeyParameter(key)
	if err := encCipher.Init(true, keyParam); err != nil {
		return nil, err
	}
	if err := decCipher.Init(false, keyParam); err != nil {
		return nil, err
	}

	blockSize := encCipher.GetBlockSize()

	if mode == ECB {
		if len(iv) != 0 {
			return nil, ccerr.New(ccerr.InvalidIV, "ECB mode does not accept an IV")
		}
	} else {
		if len(iv) != blockSize {
			return nil, ccerr.New(ccerr.InvalidIV, "%s mode requires an IV of exactly %d bytes, got %d", mode, blockSize, len(iv))
		}
	}

	ivCopy := make([]byte, len(iv))
	copy(ivCopy, iv)

	return &CipherContext{
		algorithm: algorithm,
		mode:      mode,
		padding:   padding,
		blockSize: blockSize,
		keyParam:  keyParam,
		iv:        ivCopy,
		encCipher: encCipher,
		decCipher: decCipher,
		lockedKey: secmem.Lock(key),
		SessionID: uuid.New(),
	}, nil
}

// Close zeroes and unlocks the context's page-locked copy of the raw
// key bytes. The context must not be used afterward.
func (c *CipherContext) Close() {
	c.lockedKey.Release()
}

// cipherFor returns the fixed-direction keyed cipher instance matching
// forEncryption.
func (c *CipherContext) cipherFor(forEncryption bool) crypto.BlockCipher {
	if forEncryption {
		return c.encCipher
	}
	return c.decCipher
}

// newEngine constructs an unkeyed BlockCipher for the given algorithm.
func newEngine(algorithm Algorithm) (crypto.BlockCipher, error) {
	switch algorithm {
	case DES:
		return engines.NewDESEngine(), nil
	case TripleDES:
		return engines.NewTripleDESEngine(), nil
	case LOKI97:
		return engines.NewLOKI97Engine(), nil
	default:
		return nil, ccerr.New(ccerr.UnsupportedMode, "unknown algorithm %v", algorithm)
	}
}

// GetBlockSize returns the underlying cipher's block size in bytes.
func (c *CipherContext) GetBlockSize() int {
	return c.blockSize
}

// GetAlgorithmName returns a name combining the algorithm, mode and padding.
func (c *CipherContext) GetAlgorithmName() string {
	return c.algorithm.String() + "/" + c.mode.String() + "/" + c.padding.String()
}
