package ciphercontext

import (
	"github.com/didactic-crypto/classiccrypto/crypto"
	"github.com/didactic-crypto/classiccrypto/crypto/paddings"
)

// Padding selects the block-padding scheme a CipherContext applies
// before the mode driver for EncryptBuffer/EncryptStream, and strips
// after it for DecryptBuffer/DecryptStream.
type Padding int

const (
	Zeros Padding = iota
	PKCS7
	ANSIX923
	ISO10126
)

func (p Padding) String() string {
	switch p {
	case Zeros:
		return "Zeros"
	case PKCS7:
		return "PKCS7"
	case ANSIX923:
		return "ANSIX923"
	case ISO10126:
		return "ISO10126"
	default:
		return "Unknown"
	}
}

func (p Padding) newInstance() crypto.BlockCipherPadding {
	switch p {
	case Zeros:
		return paddings.NewZerosPadding()
	case PKCS7:
		return paddings.NewPKCS7Padding()
	case ANSIX923:
		return paddings.NewANSIX923Padding()
	case ISO10126:
		return paddings.NewISO10126Padding()
	default:
		return nil
	}
}
