// Copyright (c) 2025, The NORX Authors.
// See LICENSE for licensing information.

package norx

// g is NORX's quarter-round over state indices (a,b,c,d). Mirrors
// PyNORX.py's __g_funct__ exactly; unlike ASCON's 5-word S-box substitution
// (internal/literals/ascon.go's asconState.permute), NORX's nonlinear layer
// is the H function applied pairwise inside this quarter-round.
func g[T word](s *[16]T, a, b, c, d int, p *params[T]) {
	rc := p.rc
	w := p.width
	s[a] = h(s[a], s[b])
	s[d] = rotr(s[a]^s[d], rc[0], w)
	s[c] = h(s[c], s[d])
	s[b] = rotr(s[b]^s[c], rc[1], w)
	s[a] = h(s[a], s[b])
	s[d] = rotr(s[a]^s[d], rc[2], w)
	s[c] = h(s[c], s[d])
	s[b] = rotr(s[b]^s[c], rc[3], w)
}

// f applies the full NORX permutation: rounds iterations of four column
// G-rounds followed by four diagonal G-rounds. No branching on state data —
// execution time depends only on rounds and the (compile-time) word width.
func f[T word](s *[16]T, rounds int, p *params[T]) {
	for i := 0; i < rounds; i++ {
		g(s, 0, 4, 8, 12, p)
		g(s, 1, 5, 9, 13, p)
		g(s, 2, 6, 10, 14, p)
		g(s, 3, 7, 11, 15, p)

		g(s, 0, 5, 10, 15, p)
		g(s, 1, 6, 11, 12, p)
		g(s, 2, 7, 8, 13, p)
		g(s, 3, 4, 9, 14, p)
	}
}
