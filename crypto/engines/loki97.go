package engines

import (
	"github.com/didactic-crypto/classiccrypto/crypto"
	"github.com/didactic-crypto/classiccrypto/crypto/params"
	"github.com/didactic-crypto/classiccrypto/pkg/ccerr"
)

const (
	loki97NumRounds  = 16
	loki97NumSubkeys = 48
	loki97Delta      = 0x9E3779B97F4A7C15
	loki97DefaultPoly = 0x1B
)

// LOKI97Engine is a didactic 128-bit Feistel cipher, teaching-variant of
// LOKI97: two 64-bit halves, 16 rounds, three 64-bit subkeys per round.
// It is not standards-conformant LOKI97 — the S-box derivation, bit
// permutation and key schedule are pinned exactly as specified so the
// round-trip and avalanche properties hold, not to match the published
// cipher bit-for-bit.
type LOKI97Engine struct {
	subKeys       [loki97NumSubkeys]uint64
	s1, s2        [256]byte
	forEncryption bool
	initialized   bool
}

// NewLOKI97Engine creates an unkeyed engine using the default
// irreducible polynomial (0x1B, i.e. x^8+x^4+x^3+x+1).
func NewLOKI97Engine() *LOKI97Engine {
	e := &LOKI97Engine{}
	e.deriveSBoxes(loki97DefaultPoly)
	return e
}

// Init derives the 48 round subkeys from a 16/24/32-byte key.
func (e *LOKI97Engine) Init(forEncryption bool, p crypto.CipherParameters) error {
	keyParam, ok := p.(*params.KeyParameter)
	if !ok {
		return ccerr.New(ccerr.StateError, "LOKI97 init parameters must be a KeyParameter")
	}

	key := keyParam.GetKey()
	switch len(key) {
	case 16, 24, 32:
	default:
		return ccerr.New(ccerr.InvalidKeySize, "LOKI97 requires a 16, 24 or 32-byte key, got %d", len(key))
	}

	for i := 0; i < loki97NumSubkeys; i++ {
		var word [8]byte
		for b := 0; b < 8; b++ {
			word[b] = key[(i*8+b)%len(key)]
		}
		kVal := bytesToUint64(word[:])
		e.subKeys[i] = e.feistelF(kVal^(loki97Delta*uint64(i+1)), kVal)
	}

	e.forEncryption = forEncryption
	e.initialized = true
	return nil
}

// GetAlgorithmName returns "LOKI97_128".
func (e *LOKI97Engine) GetAlgorithmName() string {
	return "LOKI97_128"
}

// GetBlockSize returns 16.
func (e *LOKI97Engine) GetBlockSize() int {
	return 16
}

// Reset is a no-op: LOKI97 carries no feedback state, and the round-key
// schedule set by Init survives until the next Init.
func (e *LOKI97Engine) Reset() {}

// ProcessBlock runs the 16-round Feistel network (or its inverse) over
// one 16-byte block.
func (e *LOKI97Engine) ProcessBlock(in []byte, inOff int, out []byte, outOff int) int {
	if !e.initialized {
		panic(ccerr.New(ccerr.StateError, "LOKI97: ProcessBlock called before Init"))
	}
	if len(in)-inOff < 16 || len(out)-outOff < 16 {
		panic(ccerr.New(ccerr.InvalidBlockSize, "LOKI97: block buffer too short"))
	}

	if e.forEncryption {
		l := bytesToUint64(in[inOff : inOff+8])
		r := bytesToUint64(in[inOff+8 : inOff+16])

		for round := 0; round < loki97NumRounds; round++ {
			k1 := e.subKeys[round*3]
			k2 := e.subKeys[round*3+1]
			k3 := e.subKeys[round*3+2]

			sum := r + k1
			fOut := e.feistelF(sum, k2)
			newR := l ^ fOut
			newL := r + k3
			l, r = newL, newR
		}

		// Encrypt swaps on output: ciphertext is (r, l), not (l, r).
		uint64ToBytes(r, out[outOff:outOff+8])
		uint64ToBytes(l, out[outOff+8:outOff+16])
	} else {
		// Undo the encrypt side's output swap before reversing rounds:
		// the ciphertext holds (r, l), so l/r here is the real (l, r).
		l := bytesToUint64(in[inOff+8 : inOff+16])
		r := bytesToUint64(in[inOff : inOff+8])

		for round := loki97NumRounds - 1; round >= 0; round-- {
			k1 := e.subKeys[round*3]
			k2 := e.subKeys[round*3+1]
			k3 := e.subKeys[round*3+2]

			prevR := l - k3
			prevL := r ^ e.feistelF(prevR+k1, k2)
			l, r = prevL, prevR
		}

		// No swap here: the plaintext was never swapped on input.
		uint64ToBytes(l, out[outOff:outOff+8])
		uint64ToBytes(r, out[outOff+8:outOff+16])
	}

	return 16
}

var _ crypto.BlockCipher = (*LOKI97Engine)(nil)

// feistelF implements F(A,B): XOR, byte-wise S-box substitution through
// the alternating [S1,S2,S1,S2,S2,S1,S2,S1] pattern, then the fixed
// 64-bit bit permutation P.
func (e *LOKI97Engine) feistelF(a, b uint64) uint64 {
	state := a ^ b

	var subBytes [8]byte
	for i := 0; i < 8; i++ {
		shift := uint(56 - i*8)
		x := byte(state >> shift)
		if loki97SBoxPattern[i] == 1 {
			subBytes[i] = e.s1[x]
		} else {
			subBytes[i] = e.s2[x]
		}
	}

	var subOut uint64
	for i := 0; i < 8; i++ {
		subOut = (subOut << 8) | uint64(subBytes[i])
	}

	return permuteLoki97Bits(subOut)
}

// permuteLoki97Bits applies loki97PTable: bit i (0-indexed, MSB-first)
// of in moves to bit position loki97PTable[i] (also MSB-first) of the
// result. This is a 0-indexed convention, unlike DES's 1-indexed tables
// consumed by permuteBits.
func permuteLoki97Bits(in uint64) uint64 {
	var out uint64
	for i := 0; i < 64; i++ {
		bit := (in >> uint(63-i)) & 1
		target := loki97PTable[i]
		out |= bit << uint(63-target)
	}
	return out
}

// loki97SBoxPattern selects S1 (1) or S2 (2) for each of the 8 bytes,
// MSB-first: [S1,S2,S1,S2,S2,S1,S2,S1].
var loki97SBoxPattern = [8]int{1, 2, 1, 2, 2, 1, 2, 1}

// loki97PTable is the fixed 64-bit bit permutation P (0-indexed, MSB-first).
var loki97PTable = []int{
	56, 48, 40, 32, 24, 16, 8, 0,
	57, 49, 41, 33, 25, 17, 9, 1,
	58, 50, 42, 34, 26, 18, 10, 2,
	59, 51, 43, 35, 27, 19, 11, 3,
	60, 52, 44, 36, 28, 20, 12, 4,
	61, 53, 45, 37, 29, 21, 13, 5,
	62, 54, 46, 38, 30, 22, 14, 6,
	63, 55, 47, 39, 31, 23, 15, 7,
}

// deriveSBoxes builds S1[x] = x^3 and S2[x] = x^-1 (S2[0]=0) in
// GF(2^8) modulo the irreducible polynomial 0x100|poly, using
// shift-and-XOR multiplication and square-and-multiply inversion.
func (e *LOKI97Engine) deriveSBoxes(poly byte) {
	modulus := uint16(0x100) | uint16(poly)

	gfMul := func(a, b byte) byte {
		var result uint16
		av := uint16(a)
		bv := uint16(b)
		for i := 0; i < 8; i++ {
			if bv&1 != 0 {
				result ^= av
			}
			bv >>= 1
			hiBitSet := av&0x80 != 0
			av <<= 1
			if hiBitSet {
				av ^= modulus
			}
			av &= 0xFF
		}
		return byte(result & 0xFF)
	}

	for x := 0; x < 256; x++ {
		v := byte(x)
		x2 := gfMul(v, v)
		x3 := gfMul(x2, v)
		e.s1[x] = x3
	}

	e.s2[0] = 0
	for x := 1; x < 256; x++ {
		v := byte(x)
		// x^254 = x^(-1) in GF(2^8)* via square-and-multiply.
		result := byte(1)
		base := v
		exp := 254
		for exp > 0 {
			if exp&1 != 0 {
				result = gfMul(result, base)
			}
			base = gfMul(base, base)
			exp >>= 1
		}
		e.s2[x] = result
	}
}
