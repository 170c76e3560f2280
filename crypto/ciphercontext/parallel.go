package ciphercontext

import (
	"encoding/binary"
	"runtime"
	"sync"

	"github.com/didactic-crypto/classiccrypto/crypto/modes"
)

// forEachBlockParallel fans work out over numBlocks block indices,
// bounded to runtime.NumCPU() goroutines in flight, and blocks until
// every block has run. fn must only touch disjoint slices of its own
// output — per-block offsets make ordering independent of goroutine
// scheduling, satisfying the "bytes in ascending offset order" rule.
func forEachBlockParallel(numBlocks int, fn func(blockIndex int)) {
	if numBlocks == 0 {
		return
	}

	workers := runtime.NumCPU()
	if workers > numBlocks {
		workers = numBlocks
	}
	if workers < 1 {
		workers = 1
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for k := 0; k < numBlocks; k++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(k int) {
			defer wg.Done()
			defer func() { <-sem }()
			fn(k)
		}(k)
	}
	wg.Wait()
}

// processECB encrypts or decrypts every block independently against
// the keyed cipher — safe to fan out since ECB carries no feedback
// state at all.
func (c *CipherContext) processECB(data []byte, forEncryption bool) []byte {
	cipher := c.cipherFor(forEncryption)
	numBlocks := len(data) / c.blockSize
	out := make([]byte, len(data))

	forEachBlockParallel(numBlocks, func(k int) {
		off := k * c.blockSize
		cipher.ProcessBlock(data, off, out, off)
	})

	return out
}

// processCBCDecrypt computes P_k = D(C_k) xor C_{k-1} for every block
// in parallel: every C_{k-1} is already known from the input buffer,
// so no block's decryption depends on another block's output.
func (c *CipherContext) processCBCDecrypt(data []byte) []byte {
	return c.processCBCDecryptChunk(data, c.iv)
}

// processCBCDecryptChunk is processCBCDecrypt generalized for stream
// callers that must thread the previous chunk's final ciphertext
// block in as prevBlock, rather than always starting from the IV.
func (c *CipherContext) processCBCDecryptChunk(data []byte, prevBlock []byte) []byte {
	numBlocks := len(data) / c.blockSize
	out := make([]byte, len(data))

	forEachBlockParallel(numBlocks, func(k int) {
		off := k * c.blockSize
		c.decCipher.ProcessBlock(data, off, out, off)

		var prev []byte
		if k == 0 {
			prev = prevBlock
		} else {
			prev = data[off-c.blockSize : off]
		}
		for i := 0; i < c.blockSize; i++ {
			out[off+i] ^= prev[i]
		}
	})

	return out
}

// ctrCounterBlock derives T_k: iv with block index k added (wrapping,
// big-endian) into its trailing 8 bytes only — the leading bytes of
// the IV are a fixed nonce prefix, per the CTR counter convention.
// Every cipher's block size is at least 8 bytes, so the trailing
// counter field always fits.
func (c *CipherContext) ctrCounterBlock(blockIndex uint64) []byte {
	counter := make([]byte, c.blockSize)
	copy(counter, c.iv)

	tailOff := c.blockSize - 8
	tail := binary.BigEndian.Uint64(counter[tailOff:]) + blockIndex
	binary.BigEndian.PutUint64(counter[tailOff:], tail)

	return counter
}

// processCTR XORs every plaintext/ciphertext block with E(T_k); CTR
// is its own inverse, so encryption and decryption share this path.
func (c *CipherContext) processCTR(data []byte) []byte {
	return c.processCTRChunk(data, 0)
}

// processCTRChunk is processCTR generalized for stream callers, which
// must pass the absolute block index their chunk starts at so the
// counter keeps incrementing across chunk boundaries. CTR never pads,
// so data may end in a partial final block, keystream-truncated to fit.
func (c *CipherContext) processCTRChunk(data []byte, startBlockIndex uint64) []byte {
	numFullBlocks := len(data) / c.blockSize
	remainder := len(data) % c.blockSize
	out := make([]byte, len(data))

	forEachBlockParallel(numFullBlocks, func(k int) {
		off := k * c.blockSize
		counter := c.ctrCounterBlock(startBlockIndex + uint64(k))
		keystream := make([]byte, c.blockSize)
		c.encCipher.ProcessBlock(counter, 0, keystream, 0)

		for i := 0; i < c.blockSize; i++ {
			out[off+i] = data[off+i] ^ keystream[i]
		}
	})

	if remainder > 0 {
		off := numFullBlocks * c.blockSize
		counter := c.ctrCounterBlock(startBlockIndex + uint64(numFullBlocks))
		keystream := make([]byte, c.blockSize)
		c.encCipher.ProcessBlock(counter, 0, keystream, 0)
		for i := 0; i < remainder; i++ {
			out[off+i] = data[off+i] ^ keystream[i]
		}
	}

	return out
}

// processRandomDelta XORs each block with Δ_k before/after the cipher
// depending on direction. Encrypt: C_k = E(P_k xor Δ_k); decrypt:
// P_k = D(C_k) xor Δ_k. Both directions are data-parallel over k.
func (c *CipherContext) processRandomDelta(data []byte, forEncryption bool) []byte {
	return c.processRandomDeltaChunk(data, forEncryption, 0)
}

// processRandomDeltaChunk is processRandomDelta generalized for
// stream callers, threading the absolute starting block index through
// so Δ_k stays correct across chunk boundaries.
func (c *CipherContext) processRandomDeltaChunk(data []byte, forEncryption bool, startBlockIndex uint64) []byte {
	cipher := c.cipherFor(forEncryption)
	numBlocks := len(data) / c.blockSize
	out := make([]byte, len(data))

	forEachBlockParallel(numBlocks, func(k int) {
		off := k * c.blockSize
		delta := modes.RandomDeltaMask(c.iv, startBlockIndex+uint64(k), c.blockSize)

		if forEncryption {
			masked := make([]byte, c.blockSize)
			for i := 0; i < c.blockSize; i++ {
				masked[i] = data[off+i] ^ delta[i]
			}
			cipher.ProcessBlock(masked, 0, out, off)
		} else {
			cipher.ProcessBlock(data, off, out, off)
			for i := 0; i < c.blockSize; i++ {
				out[off+i] ^= delta[i]
			}
		}
	})

	return out
}
