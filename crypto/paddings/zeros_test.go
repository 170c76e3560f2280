package paddings

import "testing"

func TestZerosGetPaddingName(t *testing.T) {
	padding := NewZerosPadding()
	if padding.GetPaddingName() != "Zeros" {
		t.Errorf("Expected padding name 'Zeros', got '%s'", padding.GetPaddingName())
	}
}

func TestZerosAddPadding(t *testing.T) {
	padding := NewZerosPadding()

	testCases := []struct {
		name      string
		blockSize int
		dataLen   int
	}{
		{"Full block", 16, 0},
		{"1 byte", 16, 15},
		{"Half block", 16, 8},
		{"8-byte block partial", 8, 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			block := make([]byte, tc.blockSize)
			for i := 0; i < tc.dataLen; i++ {
				block[i] = 0xFF
			}

			added := padding.AddPadding(block, tc.dataLen)
			if added != tc.blockSize-tc.dataLen {
				t.Errorf("Expected %d bytes added, got %d", tc.blockSize-tc.dataLen, added)
			}

			for i := tc.dataLen; i < tc.blockSize; i++ {
				if block[i] != 0 {
					t.Errorf("Padding byte at %d should be zero, got %d", i, block[i])
				}
			}
		})
	}
}

func TestZerosPadCountStripsTrailingZeros(t *testing.T) {
	padding := NewZerosPadding()

	block := []byte{0x01, 0x02, 0x00, 0x00, 0x00}
	count, err := padding.PadCount(block)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 trailing zero bytes, got %d", count)
	}
}

func TestZerosPadCountLossyOnTrailingZeroData(t *testing.T) {
	// Plaintext that legitimately ends in 0x00 is indistinguishable from
	// padding — this is the documented lossiness, not a bug.
	padding := NewZerosPadding()
	block := []byte{0x01, 0x00, 0x00, 0x00}
	count, err := padding.PadCount(block)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("expected the trailing zeros to be stripped regardless of origin, got count=%d", count)
	}
}

func TestZerosRoundTrip(t *testing.T) {
	padding := NewZerosPadding()
	blockSize := 16

	for _, dataLen := range []int{0, 1, 7, 8, 15} {
		block := make([]byte, blockSize)
		for i := 0; i < dataLen; i++ {
			block[i] = byte(i + 1) // avoid trailing zero bytes in the data itself
		}

		added := padding.AddPadding(block, dataLen)
		count, err := padding.PadCount(block)
		if err != nil {
			t.Fatalf("PadCount error: %v", err)
		}
		if dataLen == blockSize {
			continue
		}
		if count != added {
			t.Errorf("dataLen=%d: expected pad count %d, got %d", dataLen, added, count)
		}
	}
}
