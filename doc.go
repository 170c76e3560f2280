// Package classiccrypto is a pure Go implementation of a handful of
// classical symmetric ciphers and a prime-field Diffie-Hellman key
// agreement, composed behind one cipher-context engine.
//
// It implements DES64, TripleDES64 (EDE) and LOKI97_128 block ciphers,
// the RC4 stream cipher, four padding schemes, and seven block-cipher
// modes of operation (ECB, CBC, PCBC, CFB, OFB, CTR, RandomDelta).
//
// # Installation
//
//	go get github.com/didactic-crypto/classiccrypto
//
// # CipherContext example (LOKI97-CBC, PKCS7 padding)
//
//	import "github.com/didactic-crypto/classiccrypto/crypto/ciphercontext"
//
//	ctx, err := ciphercontext.New(ciphercontext.LOKI97, key, ciphercontext.CBC, ciphercontext.PKCS7, iv)
//	ciphertext, err := ctx.EncryptBuffer(plaintext)
//
// # Diffie-Hellman example
//
//	import "github.com/didactic-crypto/classiccrypto/crypto/agreement"
//
//	alice, _ := agreement.NewInitiator()
//	bob, _ := agreement.NewResponder(agreement.Group5Prime, agreement.Group5Generator)
//	secret, _ := alice.SharedSecret(bob.PublicValue())
//	key, _ := agreement.DeriveKey(secret, 32)
package classiccrypto
