// Copyright (c) 2025, The NORX Authors.
// See LICENSE for licensing information.

package norx

// Domain-separation tags, XORed into S[15] before the F permutation that
// precedes the phase they mark (spec §3).
const (
	tagHeader  = 0x01
	tagPayload = 0x02
	tagTrailer = 0x04
	tagFinal   = 0x08
	tagBranch  = 0x10
	tagMerge   = 0x20
)

// initState builds the initial 16-word state from a nonce and key, mixes in
// the session parameters, runs the first permutation, then re-injects the
// key into the capacity — the v3.0 addition over the original NORX v2.0
// design. Mirrors PyNORX.py's init exactly.
func (s *session[T]) initState(nonce, key []byte) [16]T {
	b := s.wordBytes
	var st [16]T

	st[0] = loadLE[T](nonce[0:], b)
	st[1] = loadLE[T](nonce[b:], b)
	st[2] = loadLE[T](nonce[2*b:], b)
	st[3] = loadLE[T](nonce[3*b:], b)

	k0 := loadLE[T](key[0:], b)
	k1 := loadLE[T](key[b:], b)
	k2 := loadLE[T](key[2*b:], b)
	k3 := loadLE[T](key[3*b:], b)
	st[4], st[5], st[6], st[7] = k0, k1, k2, k3

	copy(st[8:16], s.p.init[:])

	st[12] ^= T(s.p.width)
	st[13] ^= T(s.roundsN)
	st[14] ^= T(s.lanesN)
	st[15] ^= T(s.tagBitsN)

	f(&st, s.roundsN, &s.p)

	st[12] ^= k0
	st[13] ^= k1
	st[14] ^= k2
	st[15] ^= k3

	return st
}

// absorb duplexes x into the state, domain-separated by tag: full
// rate-sized blocks are absorbed directly, and the final (possibly empty)
// partial block is padded first. An empty x still absorbs one padded empty
// block — the 10*1 padding is unconditional (spec §4.5).
func (s *session[T]) absorb(st *[16]T, x []byte, tag T) {
	n := len(x)
	rb := s.rateBytes
	i := 0
	for n >= rb {
		s.absorbBlock(st, x[rb*i:rb*(i+1)], tag)
		n -= rb
		i++
	}
	s.absorbBlock(st, pad10x1(x[rb*i:rb*i+n], rb), tag)
}

func (s *session[T]) absorbBlock(st *[16]T, block []byte, tag T) {
	b := s.wordBytes
	st[15] ^= tag
	f(st, s.roundsN, &s.p)
	for i := 0; i < s.rateWords; i++ {
		st[i] ^= loadLE[T](block[b*i:], b)
	}
}

// encBlock encrypts one full rate-sized plaintext block on st, emitting
// ciphertext in place of the absorbed words.
func (s *session[T]) encBlock(st *[16]T, x []byte) []byte {
	b := s.wordBytes
	c := make([]byte, 0, s.rateBytes)
	st[15] ^= tagPayload
	f(st, s.roundsN, &s.p)
	for i := 0; i < s.rateWords; i++ {
		st[i] ^= loadLE[T](x[b*i:], b)
		c = append(c, storeLE(st[i], b)...)
	}
	return c
}

// encLast pads the final (possibly empty) plaintext block, runs encBlock on
// the padded block, and truncates the result back down to len(x) bytes.
func (s *session[T]) encLast(st *[16]T, x []byte) []byte {
	padded := pad10x1(x, s.rateBytes)
	c := s.encBlock(st, padded)
	return c[:len(x)]
}

// decBlock decrypts one full rate-sized ciphertext block on st.
func (s *session[T]) decBlock(st *[16]T, x []byte) []byte {
	b := s.wordBytes
	m := make([]byte, 0, s.rateBytes)
	st[15] ^= tagPayload
	f(st, s.roundsN, &s.p)
	for i := 0; i < s.rateWords; i++ {
		c := loadLE[T](x[b*i:], b)
		m = append(m, storeLE(st[i]^c, b)...)
		st[i] = c
	}
	return m
}

// decLast decrypts the final (possibly empty, possibly partial) ciphertext
// block. It reconstructs the padded keystream the encryptor would have
// produced, overlays the actual ciphertext bytes plus the padding marker
// bytes on top, then recovers plaintext and updates the rate words exactly
// as encLast's counterpart would have left them — mirroring
// PyNORX.py's __dec_last__.
func (s *session[T]) decLast(st *[16]T, x []byte) []byte {
	b := s.wordBytes
	st[15] ^= tagPayload
	f(st, s.roundsN, &s.p)

	buffer := make([]byte, 0, s.rateBytes)
	for i := 0; i < s.rateWords; i++ {
		buffer = append(buffer, storeLE(st[i], b)...)
	}
	copy(buffer, x)
	buffer[len(x)] ^= 0x01
	buffer[s.rateBytes-1] ^= 0x80

	m := make([]byte, 0, s.rateBytes)
	for i := 0; i < s.rateWords; i++ {
		c := loadLE[T](buffer[b*i:], b)
		m = append(m, storeLE(st[i]^c, b)...)
		st[i] = c
	}
	return m[:len(x)]
}

// generateTag runs the v3.0 finalization (FINAL-tagged permutation, key
// re-injection, second permutation, second key re-injection), extracts the
// requested tag length from the capacity words, and zeroizes st before
// returning — the state must not be reused after this call.
func (s *session[T]) generateTag(st *[16]T, key []byte) []byte {
	b := s.wordBytes
	k0 := loadLE[T](key[0:], b)
	k1 := loadLE[T](key[b:], b)
	k2 := loadLE[T](key[2*b:], b)
	k3 := loadLE[T](key[3*b:], b)

	st[15] ^= tagFinal
	f(st, s.roundsN, &s.p)

	st[12] ^= k0
	st[13] ^= k1
	st[14] ^= k2
	st[15] ^= k3

	f(st, s.roundsN, &s.p)

	st[12] ^= k0
	st[13] ^= k1
	st[14] ^= k2
	st[15] ^= k3

	out := make([]byte, 0, s.rateWords*b)
	for i := 0; i < 4; i++ {
		out = append(out, storeLE(st[s.rateWords+i], b)...)
	}

	zeroize(st)
	return out[:s.tagBytesN]
}

func zeroize[T word](st *[16]T) {
	for i := range st {
		st[i] = 0
	}
}
