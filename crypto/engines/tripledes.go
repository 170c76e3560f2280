package engines

import (
	"github.com/didactic-crypto/classiccrypto/crypto"
	"github.com/didactic-crypto/classiccrypto/crypto/params"
	"github.com/didactic-crypto/classiccrypto/pkg/ccerr"
)

// TripleDESEngine composes three DESEngine instances keyed from a 24-byte
// key split as K1‖K2‖K3, applying the EDE construction:
// encrypt = E_K3 ∘ D_K2 ∘ E_K1, decrypt = D_K1 ∘ E_K2 ∘ D_K3.
type TripleDESEngine struct {
	e1, d2, e3    *DESEngine // encrypt chain: E_K1, D_K2, E_K3
	d1, e2, d3    *DESEngine // decrypt chain: D_K3, E_K2, D_K1
	forEncryption bool
	initialized   bool
}

// NewTripleDESEngine creates an unkeyed TripleDES engine.
func NewTripleDESEngine() *TripleDESEngine {
	return &TripleDESEngine{}
}

// Init splits the 24-byte key into three 8-byte DES keys and keys both
// the encrypt and decrypt chains so ProcessBlock can run either
// direction without re-deriving subkeys.
func (t *TripleDESEngine) Init(forEncryption bool, p crypto.CipherParameters) error {
	keyParam, ok := p.(*params.KeyParameter)
	if !ok {
		return ccerr.New(ccerr.StateError, "TripleDES init parameters must be a KeyParameter")
	}

	key := keyParam.GetKey()
	if len(key) != 24 {
		return ccerr.New(ccerr.InvalidKeySize, "TripleDES requires a 24-byte key, got %d", len(key))
	}

	k1 := params.NewKeyParameter(key[0:8])
	k2 := params.NewKeyParameter(key[8:16])
	k3 := params.NewKeyParameter(key[16:24])

	t.e1, t.d2, t.e3 = NewDESEngine(), NewDESEngine(), NewDESEngine()
	if err := t.e1.Init(true, k1); err != nil {
		return err
	}
	if err := t.d2.Init(false, k2); err != nil {
		return err
	}
	if err := t.e3.Init(true, k3); err != nil {
		return err
	}

	t.d1, t.e2, t.d3 = NewDESEngine(), NewDESEngine(), NewDESEngine()
	if err := t.d1.Init(false, k1); err != nil {
		return err
	}
	if err := t.e2.Init(true, k2); err != nil {
		return err
	}
	if err := t.d3.Init(false, k3); err != nil {
		return err
	}

	t.forEncryption = forEncryption
	t.initialized = true
	return nil
}

// GetAlgorithmName returns "TripleDES64".
func (t *TripleDESEngine) GetAlgorithmName() string {
	return "TripleDES64"
}

// GetBlockSize returns 8.
func (t *TripleDESEngine) GetBlockSize() int {
	return 8
}

// Reset is a no-op: TripleDES carries no feedback state, and the six
// keyed sub-engines set up by Init survive until the next Init.
func (t *TripleDESEngine) Reset() {}

// ProcessBlock runs the EDE chain in the direction fixed by Init.
func (t *TripleDESEngine) ProcessBlock(in []byte, inOff int, out []byte, outOff int) int {
	if !t.initialized {
		panic(ccerr.New(ccerr.StateError, "TripleDES: ProcessBlock called before Init"))
	}

	var buf1, buf2 [8]byte
	if t.forEncryption {
		t.e1.ProcessBlock(in, inOff, buf1[:], 0)
		t.d2.ProcessBlock(buf1[:], 0, buf2[:], 0)
		t.e3.ProcessBlock(buf2[:], 0, out, outOff)
	} else {
		t.d3.ProcessBlock(in, inOff, buf1[:], 0)
		t.e2.ProcessBlock(buf1[:], 0, buf2[:], 0)
		t.d1.ProcessBlock(buf2[:], 0, out, outOff)
	}
	return 8
}

var _ crypto.BlockCipher = (*TripleDESEngine)(nil)
