// Package collab holds thin collaborator adapters built on top of
// CipherContext: buffer and file convenience wrappers that own no
// cryptographic state of their own. Reference: teacher's examples/
// programs, which call a configured cipher directly rather than
// re-exposing its internals — these adapters generalize that calling
// convention to buffer- and file-shaped callers.
package collab

import "github.com/didactic-crypto/classiccrypto/crypto/ciphercontext"

// BufferCodec wraps CipherContext.EncryptBuffer/DecryptBuffer. It is a
// direct passthrough; its only purpose is giving the buffer-to-buffer
// path a name alongside FileCodec's richer one.
type BufferCodec struct {
	ctx *ciphercontext.CipherContext
}

// NewBufferCodec wraps an already-constructed context.
func NewBufferCodec(ctx *ciphercontext.CipherContext) *BufferCodec {
	return &BufferCodec{ctx: ctx}
}

// Encrypt encrypts plaintext and returns the ciphertext.
func (b *BufferCodec) Encrypt(plaintext []byte) ([]byte, error) {
	return b.ctx.EncryptBuffer(plaintext)
}

// Decrypt decrypts ciphertext and returns the plaintext.
func (b *BufferCodec) Decrypt(ciphertext []byte) ([]byte, error) {
	return b.ctx.DecryptBuffer(ciphertext)
}
