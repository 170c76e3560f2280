package modes

import (
	"github.com/didactic-crypto/classiccrypto/crypto"
	"github.com/didactic-crypto/classiccrypto/crypto/params"
	"github.com/didactic-crypto/classiccrypto/pkg/ccerr"
)

// PCBCBlockCipher implements Propagating Cipher Block Chaining mode.
// Unlike CBC, both the previous plaintext and previous ciphertext feed
// forward: C_k = E(P_k ⊕ P_{k-1} ⊕ C_{k-1}), with P_{-1} = C_{-1} = iv.
// Decryption mirrors it: P_k = D(C_k) ⊕ P_{k-1} ⊕ C_{k-1}. Both
// directions are inherently serial.
type PCBCBlockCipher struct {
	cipher     crypto.BlockCipher
	blockSize  int
	IV         []byte
	prevPlain  []byte
	prevCipher []byte
	encrypting bool
}

// NewPCBCBlockCipher creates a new PCBC mode cipher.
func NewPCBCBlockCipher(cipher crypto.BlockCipher) *PCBCBlockCipher {
	blockSize := cipher.GetBlockSize()
	return &PCBCBlockCipher{
		cipher:     cipher,
		blockSize:  blockSize,
		IV:         make([]byte, blockSize),
		prevPlain:  make([]byte, blockSize),
		prevCipher: make([]byte, blockSize),
	}
}

// GetUnderlyingCipher returns the underlying block cipher.
func (p *PCBCBlockCipher) GetUnderlyingCipher() crypto.BlockCipher {
	return p.cipher
}

// Init initializes the cipher and, possibly, the IV.
func (p *PCBCBlockCipher) Init(forEncryption bool, parameters crypto.CipherParameters) error {
	p.encrypting = forEncryption

	var actualParams crypto.CipherParameters

	if ivParams, ok := parameters.(*params.ParametersWithIV); ok {
		iv := ivParams.GetIV()
		if len(iv) != p.blockSize {
			return ccerr.New(ccerr.InvalidIV, "PCBC: IV length %d does not match block size %d", len(iv), p.blockSize)
		}
		copy(p.IV, iv)
		actualParams = ivParams.GetParameters()
	} else {
		for i := range p.IV {
			p.IV[i] = 0
		}
		actualParams = parameters
	}

	p.Reset()

	if actualParams != nil {
		return p.cipher.Init(forEncryption, actualParams)
	}
	return nil
}

// GetAlgorithmName returns the algorithm name and mode.
func (p *PCBCBlockCipher) GetAlgorithmName() string {
	return p.cipher.GetAlgorithmName() + "/PCBC"
}

// GetBlockSize returns the block size of the underlying cipher.
func (p *PCBCBlockCipher) GetBlockSize() int {
	return p.blockSize
}

// Reset restores P_{-1} and C_{-1} to the IV.
func (p *PCBCBlockCipher) Reset() {
	copy(p.prevPlain, p.IV)
	copy(p.prevCipher, p.IV)
	p.cipher.Reset()
}

// ProcessBlock processes one block, dispatching on direction.
func (p *PCBCBlockCipher) ProcessBlock(in []byte, inOff int, out []byte, outOff int) int {
	if p.encrypting {
		return p.encryptBlock(in, inOff, out, outOff)
	}
	return p.decryptBlock(in, inOff, out, outOff)
}

func (p *PCBCBlockCipher) encryptBlock(in []byte, inOff int, out []byte, outOff int) int {
	if inOff+p.blockSize > len(in) {
		panic("input buffer too short")
	}

	feed := make([]byte, p.blockSize)
	for i := 0; i < p.blockSize; i++ {
		feed[i] = in[inOff+i] ^ p.prevPlain[i] ^ p.prevCipher[i]
	}

	length := p.cipher.ProcessBlock(feed, 0, out, outOff)

	copy(p.prevPlain, in[inOff:inOff+p.blockSize])
	copy(p.prevCipher, out[outOff:outOff+p.blockSize])

	return length
}

func (p *PCBCBlockCipher) decryptBlock(in []byte, inOff int, out []byte, outOff int) int {
	if inOff+p.blockSize > len(in) {
		panic("input buffer too short")
	}

	cipherBlock := make([]byte, p.blockSize)
	copy(cipherBlock, in[inOff:inOff+p.blockSize])

	length := p.cipher.ProcessBlock(in, inOff, out, outOff)

	for i := 0; i < p.blockSize; i++ {
		out[outOff+i] ^= p.prevPlain[i] ^ p.prevCipher[i]
	}

	copy(p.prevPlain, out[outOff:outOff+p.blockSize])
	copy(p.prevCipher, cipherBlock)

	return length
}

var _ crypto.BlockCipher = (*PCBCBlockCipher)(nil)
