package modes

import (
	"encoding/hex"
	"testing"

	"github.com/didactic-crypto/classiccrypto/crypto/engines"
	"github.com/didactic-crypto/classiccrypto/crypto/paddings"
	"github.com/didactic-crypto/classiccrypto/crypto/params"
)

func TestPCBCGetAlgorithmName(t *testing.T) {
	engine := engines.NewLOKI97Engine()
	pcbc := NewPCBCBlockCipher(engine)

	expectedName := "LOKI97_128/PCBC"
	if pcbc.GetAlgorithmName() != expectedName {
		t.Errorf("Expected algorithm name '%s', got '%s'", expectedName, pcbc.GetAlgorithmName())
	}
}

func TestPCBCGetBlockSize(t *testing.T) {
	engine := engines.NewLOKI97Engine()
	pcbc := NewPCBCBlockCipher(engine)

	if pcbc.GetBlockSize() != 16 {
		t.Errorf("Expected block size 16, got %d", pcbc.GetBlockSize())
	}
}

func TestPCBCEncryptDecryptSingleBlock(t *testing.T) {
	key, _ := hex.DecodeString("0123456789abcdeffedcba9876543210")
	iv, _ := hex.DecodeString("00000000000000000000000000000000")
	plaintext, _ := hex.DecodeString("0123456789abcdeffedcba9876543210")

	engine := engines.NewLOKI97Engine()
	pcbc := NewPCBCBlockCipher(engine)
	keyParam := params.NewKeyParameter(key)
	ivParam := params.NewParametersWithIV(keyParam, iv)
	pcbc.Init(true, ivParam)

	ciphertext := make([]byte, 16)
	pcbc.ProcessBlock(plaintext, 0, ciphertext, 0)

	engine2 := engines.NewLOKI97Engine()
	pcbc2 := NewPCBCBlockCipher(engine2)
	pcbc2.Init(false, ivParam)

	decrypted := make([]byte, 16)
	pcbc2.ProcessBlock(ciphertext, 0, decrypted, 0)

	if hex.EncodeToString(plaintext) != hex.EncodeToString(decrypted) {
		t.Errorf("Decryption failed\nExpected: %s\nGot:      %s",
			hex.EncodeToString(plaintext), hex.EncodeToString(decrypted))
	}
}

func TestPCBCMultipleBlocks(t *testing.T) {
	key, _ := hex.DecodeString("0123456789abcdeffedcba9876543210")
	iv, _ := hex.DecodeString("00112233445566778899aabbccddeeff")

	plaintext := make([]byte, 48)
	for i := range plaintext {
		plaintext[i] = byte(i)
	}

	engine := engines.NewLOKI97Engine()
	pcbc := NewPCBCBlockCipher(engine)
	keyParam := params.NewKeyParameter(key)
	ivParam := params.NewParametersWithIV(keyParam, iv)
	pcbc.Init(true, ivParam)

	ciphertext := make([]byte, 48)
	for i := 0; i < 3; i++ {
		pcbc.ProcessBlock(plaintext, i*16, ciphertext, i*16)
	}

	engine2 := engines.NewLOKI97Engine()
	pcbc2 := NewPCBCBlockCipher(engine2)
	pcbc2.Init(false, ivParam)

	decrypted := make([]byte, 48)
	for i := 0; i < 3; i++ {
		pcbc2.ProcessBlock(ciphertext, i*16, decrypted, i*16)
	}

	if hex.EncodeToString(plaintext) != hex.EncodeToString(decrypted) {
		t.Errorf("Multi-block decryption failed")
	}
}

func TestPCBCWithPadding(t *testing.T) {
	key, _ := hex.DecodeString("0123456789abcdeffedcba9876543210")
	iv, _ := hex.DecodeString("00112233445566778899aabbccddeeff")
	plaintext := []byte("Hello, LOKI97 with PCBC and PKCS7 padding!")

	engine := engines.NewLOKI97Engine()
	pcbc := NewPCBCBlockCipher(engine)
	padding := paddings.NewPKCS7Padding()
	cipher := NewPaddedBufferedBlockCipher(pcbc, padding)

	keyParam := params.NewKeyParameter(key)
	ivParam := params.NewParametersWithIV(keyParam, iv)
	cipher.Init(true, ivParam)

	outSize := cipher.GetOutputSize(len(plaintext))
	ciphertext := make([]byte, outSize)

	outLen, _ := cipher.ProcessBytes(plaintext, 0, len(plaintext), ciphertext, 0)
	outLen2, _ := cipher.DoFinal(ciphertext, outLen)
	totalOut := outLen + outLen2
	ciphertext = ciphertext[:totalOut]

	engine2 := engines.NewLOKI97Engine()
	pcbc2 := NewPCBCBlockCipher(engine2)
	cipher2 := NewPaddedBufferedBlockCipher(pcbc2, padding)
	cipher2.Init(false, ivParam)

	decrypted := make([]byte, len(ciphertext))
	outLen, _ = cipher2.ProcessBytes(ciphertext, 0, len(ciphertext), decrypted, 0)
	outLen2, _ = cipher2.DoFinal(decrypted, outLen)
	totalOut = outLen + outLen2
	decrypted = decrypted[:totalOut]

	if string(plaintext) != string(decrypted) {
		t.Errorf("PCBC with padding failed\nExpected: %s\nGot:      %s",
			string(plaintext), string(decrypted))
	}
}

func TestPCBCPropagation(t *testing.T) {
	// A single-byte corruption in ciphertext block k should garble every
	// decrypted block from k onward, not just block k (the defining
	// difference from CBC).
	key, _ := hex.DecodeString("0123456789abcdeffedcba9876543210")
	iv, _ := hex.DecodeString("00112233445566778899aabbccddeeff")

	plaintext := make([]byte, 48)
	for i := range plaintext {
		plaintext[i] = byte(i)
	}

	engine := engines.NewLOKI97Engine()
	pcbc := NewPCBCBlockCipher(engine)
	keyParam := params.NewKeyParameter(key)
	ivParam := params.NewParametersWithIV(keyParam, iv)
	pcbc.Init(true, ivParam)

	ciphertext := make([]byte, 48)
	for i := 0; i < 3; i++ {
		pcbc.ProcessBlock(plaintext, i*16, ciphertext, i*16)
	}

	corrupted := make([]byte, 48)
	copy(corrupted, ciphertext)
	corrupted[0] ^= 0x01

	engine2 := engines.NewLOKI97Engine()
	pcbc2 := NewPCBCBlockCipher(engine2)
	pcbc2.Init(false, ivParam)

	decrypted := make([]byte, 48)
	for i := 0; i < 3; i++ {
		pcbc2.ProcessBlock(corrupted, i*16, decrypted, i*16)
	}

	if hex.EncodeToString(decrypted[32:48]) == hex.EncodeToString(plaintext[32:48]) {
		t.Errorf("PCBC propagation failed: corruption in block 0 did not affect the final block")
	}
}

func TestPCBCReset(t *testing.T) {
	key, _ := hex.DecodeString("0123456789abcdeffedcba9876543210")
	iv, _ := hex.DecodeString("00112233445566778899aabbccddeeff")
	plaintext, _ := hex.DecodeString("0123456789abcdeffedcba9876543210")

	engine := engines.NewLOKI97Engine()
	pcbc := NewPCBCBlockCipher(engine)
	keyParam := params.NewKeyParameter(key)
	ivParam := params.NewParametersWithIV(keyParam, iv)
	pcbc.Init(true, ivParam)

	ciphertext1 := make([]byte, 16)
	pcbc.ProcessBlock(plaintext, 0, ciphertext1, 0)

	pcbc.Reset()
	ciphertext2 := make([]byte, 16)
	pcbc.ProcessBlock(plaintext, 0, ciphertext2, 0)

	if hex.EncodeToString(ciphertext1) != hex.EncodeToString(ciphertext2) {
		t.Errorf("Reset failed: different ciphertexts produced")
	}
}
