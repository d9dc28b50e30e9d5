// Copyright (c) 2025, The NORX Authors.
// See LICENSE for licensing information.

package norx

// constantTimeEqual reports whether a and b are equal, in time independent
// of where the first differing byte falls. Mirrors AsconDecrypt's tag
// comparison loop in internal/literals/ascon.go and PyNORX.py.aead_decrypt's
// identical OR-accumulation — both hand-roll this rather than reach for
// crypto/subtle, which no file in the retrieval pack imports.
func constantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}
