package agreement

import (
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"

	"github.com/didactic-crypto/classiccrypto/internal/secmem"
	"github.com/didactic-crypto/classiccrypto/pkg/ccerr"
)

// exponentBits is the width new_initiator/new_responder draw a private
// exponent from: 256 random bits, top bit cleared.
const exponentBits = 256

// DhParticipant holds one side of a classical Diffie-Hellman exchange:
// the group (p, g), a private exponent x, and the corresponding public
// value y = g^x mod p.
// Reference: teacher's SM2KeyExchangePrivateParameters (static/ephemeral
// key pair generation) and SM2KeyExchange.CalculateKey (shared-value
// derivation), generalized from an EC point exchange to prime-field
// modular exponentiation.
type DhParticipant struct {
	p *big.Int
	g *big.Int
	x *big.Int // private exponent, never exposed
	y *big.Int // public value g^x mod p

	// lockedX holds a page-locked copy of x's byte encoding so the
	// private exponent is not paged to swap for the participant's
	// lifetime. x itself remains the arithmetic source of truth.
	lockedX *secmem.Locked

	// SessionID is an opaque correlation tag for logs, with no
	// cryptographic meaning.
	SessionID uuid.UUID
}

// NewInitiator creates a participant using the fixed RFC 3526 Group 5
// prime and generator.
func NewInitiator() (*DhParticipant, error) {
	return newParticipant(Group5Prime, Group5Generator)
}

// NewResponder creates a participant using a caller-supplied group.
// The caller is responsible for using a known-good safe prime; this
// package does not re-verify primality.
func NewResponder(p, g *big.Int) (*DhParticipant, error) {
	if p == nil || g == nil {
		return nil, ccerr.New(ccerr.StateError, "NewResponder requires non-nil p and g")
	}
	return newParticipant(p, g)
}

func newParticipant(p, g *big.Int) (*DhParticipant, error) {
	x, err := randomExponent()
	if err != nil {
		return nil, err
	}

	y := new(big.Int).Exp(g, x, p)
	if !validPublicValue(y, p) {
		return nil, ccerr.New(ccerr.StateError, "generated public value outside (1, p-1)")
	}

	return &DhParticipant{
		p:         p,
		g:         g,
		x:         x,
		y:         y,
		lockedX:   secmem.Lock(x.Bytes()),
		SessionID: uuid.New(),
	}, nil
}

// Close zeroes and unlocks the participant's page-locked copy of its
// private exponent's byte encoding. The participant must not be used
// afterward.
func (d *DhParticipant) Close() {
	d.lockedX.Release()
}

// randomExponent draws a 256-bit private exponent with the top bit
// cleared and a non-zero guarantee, retrying on the (astronomically
// unlikely) all-zero draw.
func randomExponent() (*big.Int, error) {
	buf := make([]byte, exponentBits/8)
	for {
		if _, err := rand.Read(buf); err != nil {
			return nil, err
		}
		buf[0] &^= 0x80

		x := new(big.Int).SetBytes(buf)
		if x.Sign() != 0 {
			return x, nil
		}
	}
}

// validPublicValue enforces 1 < y < p-1.
func validPublicValue(y, p *big.Int) bool {
	if y.Cmp(big.NewInt(1)) <= 0 {
		return false
	}
	pMinusOne := new(big.Int).Sub(p, big.NewInt(1))
	return y.Cmp(pMinusOne) < 0
}

// PublicValue returns y = g^x mod p, safe to send to the peer.
func (d *DhParticipant) PublicValue() *big.Int {
	return new(big.Int).Set(d.y)
}

// Prime returns the group's modulus p.
func (d *DhParticipant) Prime() *big.Int {
	return new(big.Int).Set(d.p)
}

// Generator returns the group's generator g.
func (d *DhParticipant) Generator() *big.Int {
	return new(big.Int).Set(d.g)
}

// SharedSecret computes s = peerY^x mod p. peerY must satisfy
// 1 < peerY < p-1; a value outside that range means the peer is either
// malicious or broken, and is rejected rather than used.
func (d *DhParticipant) SharedSecret(peerY *big.Int) (*big.Int, error) {
	if peerY == nil || !validPublicValue(peerY, d.p) {
		return nil, ccerr.New(ccerr.StateError, "peer public value is not in (1, p-1)")
	}
	return new(big.Int).Exp(peerY, d.x, d.p), nil
}
