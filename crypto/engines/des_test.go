package engines

import (
	"bytes"
	"testing"

	"github.com/didactic-crypto/classiccrypto/crypto/params"
)

func TestDESInvalidKeySize(t *testing.T) {
	e := NewDESEngine()
	err := e.Init(true, params.NewKeyParameter(make([]byte, 7)))
	if err == nil {
		t.Fatal("expected InvalidKeySize error for a 7-byte key")
	}
}

func TestDESRoundTrip(t *testing.T) {
	key := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF}
	plaintext := []byte("testdata")

	enc := NewDESEngine()
	if err := enc.Init(true, params.NewKeyParameter(key)); err != nil {
		t.Fatalf("init encrypt: %v", err)
	}
	ciphertext := make([]byte, 8)
	enc.ProcessBlock(plaintext, 0, ciphertext, 0)

	if bytes.Equal(plaintext, ciphertext) {
		t.Fatal("ciphertext should differ from plaintext")
	}

	dec := NewDESEngine()
	if err := dec.Init(false, params.NewKeyParameter(key)); err != nil {
		t.Fatalf("init decrypt: %v", err)
	}
	recovered := make([]byte, 8)
	dec.ProcessBlock(ciphertext, 0, recovered, 0)

	if !bytes.Equal(plaintext, recovered) {
		t.Errorf("round trip mismatch: got %x, want %x", recovered, plaintext)
	}
}

func TestDESGetBlockSize(t *testing.T) {
	e := NewDESEngine()
	if e.GetBlockSize() != 8 {
		t.Errorf("expected block size 8, got %d", e.GetBlockSize())
	}
}

func TestDESAlgorithmName(t *testing.T) {
	e := NewDESEngine()
	if e.GetAlgorithmName() != "DES64" {
		t.Errorf("expected DES64, got %s", e.GetAlgorithmName())
	}
}
