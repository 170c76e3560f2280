package engines

import (
	"github.com/didactic-crypto/classiccrypto/crypto"
	"github.com/didactic-crypto/classiccrypto/crypto/params"
	"github.com/didactic-crypto/classiccrypto/pkg/ccerr"
)

// RC4Engine implements the RC4 stream cipher: a 256-byte permutation
// state plus two cursors, keyed by KSA and advanced by PRGA one byte
// per processed input byte. State persists across ProcessBytes calls
// so splitting input into chunks yields the same output as one call.
type RC4Engine struct {
	s           [256]byte
	i, j        byte
	initialized bool
}

// NewRC4Engine creates an unkeyed RC4 engine.
func NewRC4Engine() *RC4Engine {
	return &RC4Engine{}
}

// Init runs the key-scheduling algorithm over a 1..256 byte key.
func (r *RC4Engine) Init(p crypto.CipherParameters) error {
	keyParam, ok := p.(*params.KeyParameter)
	if !ok {
		return ccerr.New(ccerr.StateError, "RC4 init parameters must be a KeyParameter")
	}

	key := keyParam.GetKey()
	if len(key) == 0 || len(key) > 256 {
		return ccerr.New(ccerr.InvalidKeySize, "RC4 requires a key of 1..256 bytes, got %d", len(key))
	}

	for k := 0; k < 256; k++ {
		r.s[k] = byte(k)
	}

	var j byte
	for k := 0; k < 256; k++ {
		j = j + r.s[k] + key[k%len(key)]
		r.s[k], r.s[j] = r.s[j], r.s[k]
	}

	r.i, r.j = 0, 0
	r.initialized = true
	return nil
}

// GetAlgorithmName returns "RC4".
func (r *RC4Engine) GetAlgorithmName() string {
	return "RC4"
}

// ProcessBytes XORs len(in) bytes of PRGA keystream into in, writing to
// out, and returns the number of bytes processed.
func (r *RC4Engine) ProcessBytes(in []byte, out []byte) int {
	if !r.initialized {
		panic(ccerr.New(ccerr.StateError, "RC4: ProcessBytes called before Init"))
	}

	for k := 0; k < len(in); k++ {
		r.i++
		r.j += r.s[r.i]
		r.s[r.i], r.s[r.j] = r.s[r.j], r.s[r.i]
		keystream := r.s[byte(r.s[r.i]+r.s[r.j])]
		out[k] = in[k] ^ keystream
	}
	return len(in)
}

// Reset clears the permutation state; the engine must be re-keyed before use.
func (r *RC4Engine) Reset() {
	r.s = [256]byte{}
	r.i, r.j = 0, 0
	r.initialized = false
}

var _ crypto.StreamCipher = (*RC4Engine)(nil)
