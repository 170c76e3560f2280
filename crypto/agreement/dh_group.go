// Package agreement implements classical Diffie-Hellman key agreement.
// Reference: teacher's crypto/agreement SM2 key exchange package
// (sm2_key_exchange.go, sm2_key_exchange_private_parameters.go,
// sm2_key_exchange_public_parameters.go), generalized from an
// elliptic-curve exchange to the prime-field exchange this toolkit
// specifies; both share the same Init/shared-secret/KDF shape.
package agreement

import "math/big"

// group5Hex is the RFC 3526 Group 5 1536-bit MODP safe prime.
const group5Hex = "" +
	"FFFFFFFFFFFFFFFFC90FDAA22168C234C4C6628B80DC1CD" +
	"129024E088A67CC74020BBEA63B139B22514A08798E3404" +
	"DDEF9519B3CD3A431B302B0A6DF25F14374FE1356D6D51C" +
	"245E485B576625E7EC6F44C42E9A637ED6B0BFF5CB6F406" +
	"B7EDEE386BFB5A899FA5AE9F24117C4B1FE649286651ECE" +
	"45B3DC2007CB8A163BF0598DA48361C55D39A69163FA8FD" +
	"24CF5F83655D23DCA3AD961C62F356208552BB9ED529077" +
	"096966D670C354E4ABC9804F1746C08CA237327" +
	"FFFFFFFFFFFFFFFF"

// Group5Prime and Group5Generator are RFC 3526 Group 5's p and g,
// the fixed group NewInitiator uses (NewResponder takes its group from
// the caller).
var (
	Group5Prime     = mustParseHexBig(group5Hex)
	Group5Generator = big.NewInt(2)
)

func mustParseHexBig(hex string) *big.Int {
	n, ok := new(big.Int).SetString(hex, 16)
	if !ok {
		panic("agreement: malformed RFC 3526 Group 5 prime constant")
	}
	return n
}
