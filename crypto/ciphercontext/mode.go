// Package ciphercontext implements the cipher-context engine: it wires
// a keyed BlockCipher, a Mode of operation, and a Padding scheme
// together behind a single buffer-to-buffer / stream-to-stream API.
// Reference: teacher's crypto/modes + crypto/paddings packages,
// composed the way org.bouncycastle.crypto.BufferedBlockCipher callers
// compose a cipher+mode+padding triple, generalized to the mode roster
// and parallelism rules this toolkit specifies.
package ciphercontext

// Mode selects the block-cipher mode of operation a CipherContext drives.
type Mode int

const (
	ECB Mode = iota
	CBC
	PCBC
	CFB
	OFB
	CTR
	RandomDelta
)

func (m Mode) String() string {
	switch m {
	case ECB:
		return "ECB"
	case CBC:
		return "CBC"
	case PCBC:
		return "PCBC"
	case CFB:
		return "CFB"
	case OFB:
		return "OFB"
	case CTR:
		return "CTR"
	case RandomDelta:
		return "RandomDelta"
	default:
		return "Unknown"
	}
}

// requiresIV reports whether this mode needs a non-empty IV at construction.
func (m Mode) requiresIV() bool {
	return m != ECB
}

// parallelFanOut reports whether this mode's per-block transform may run
// concurrently against the raw keyed cipher, bypassing the stateful
// modes.* wrapper types entirely. Per the concurrency model: ECB,
// CBC-decrypt, CTR and RandomDelta fan out; CBC-encrypt, PCBC, CFB and
// OFB are inherently serial and go through a single modes.* instance.
func (m Mode) parallelFanOut(encrypting bool) bool {
	switch m {
	case ECB, CTR, RandomDelta:
		return true
	case CBC:
		return !encrypting
	default:
		return false
	}
}

// serializedPrimitive reports whether this mode must guard the
// underlying cipher primitive with a mutex because the teacher's
// BlockCipherMode wrapper it delegates to is not safe for concurrent
// ProcessBlock calls on a shared feedback register.
func (m Mode) serializedPrimitive() bool {
	switch m {
	case PCBC, CFB, OFB:
		return true
	default:
		return false
	}
}

// Algorithm selects the block-cipher backend a CipherContext keys.
type Algorithm int

const (
	DES Algorithm = iota
	TripleDES
	LOKI97
)

func (a Algorithm) String() string {
	switch a {
	case DES:
		return "DES64"
	case TripleDES:
		return "TripleDES64"
	case LOKI97:
		return "LOKI97_128"
	default:
		return "Unknown"
	}
}
