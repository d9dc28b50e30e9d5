// Copyright (c) 2025, The NORX Authors.
// See LICENSE for licensing information.

// Package fixtures expands a single uint64 seed into as many reproducible
// header/payload/trailer/nonce/key byte strings as a test needs, with no
// global PRNG state and no flakiness between runs.
//
// Grounded on SnellerInc-sneller/splitter.go and SnellerInc-sneller/tenant.go,
// both of which turn a buffer into a deterministic shard/partition choice
// via siphash.Hash128(k0, k1, buf); here the same keyed-PRF idea runs in a
// counter-mode loop to produce arbitrary-length output instead of a single
// partitioning decision.
package fixtures

import (
	"encoding/binary"

	"github.com/dchest/siphash"
)

// Generator deterministically derives byte strings from a seed. Two
// Generators constructed from the same seed produce identical output in
// the same call sequence.
type Generator struct {
	k0, k1  uint64
	counter uint64
}

// New builds a Generator from seed. The two siphash keys are derived from
// seed with a fixed, arbitrary constant so k0 != k1 even for seed == 0.
func New(seed uint64) *Generator {
	return &Generator{k0: seed, k1: seed ^ 0x9e3779b97f4a7c15}
}

// Bytes returns n deterministic pseudo-random bytes and advances the
// generator's internal counter.
func (g *Generator) Bytes(n int) []byte {
	out := make([]byte, 0, n+16)
	for len(out) < n {
		var counterBuf [8]byte
		binary.LittleEndian.PutUint64(counterBuf[:], g.counter)
		g.counter++

		lo, hi := siphash.Hash128(g.k0, g.k1, counterBuf[:])
		var block [16]byte
		binary.LittleEndian.PutUint64(block[0:8], lo)
		binary.LittleEndian.PutUint64(block[8:16], hi)
		out = append(out, block[:]...)
	}
	return out[:n]
}

// Vector produces one full set of AEAD inputs sized for the given word
// width: header/message/trailer of the requested lengths, plus a correctly
// sized nonce and key.
func (g *Generator) Vector(wordBits, headerLen, messageLen, trailerLen int) (header, message, trailer, nonce, key []byte) {
	wordBytes := wordBits / 8
	header = g.Bytes(headerLen)
	message = g.Bytes(messageLen)
	trailer = g.Bytes(trailerLen)
	nonce = g.Bytes(4 * wordBytes)
	key = g.Bytes(4 * wordBytes)
	return
}
