// Copyright (c) 2025, The NORX Authors.
// See LICENSE for licensing information.

package norx

import "golang.org/x/sync/errgroup"

// branch derives p independent lane states from the post-header state st,
// per spec §4.7: tag with BRANCH and permute once, copy st into every lane,
// then XOR the (untouched, widened) lane index into every rate word of
// lanes 1..p-1 (lane 0's XOR-with-0 is a no-op, but conceptually still
// "lane 0"). st is zeroized afterward — spec requires the caller not reuse
// it until merge reconstructs it.
func (s *session[T]) branch(st *[16]T) [][16]T {
	st[15] ^= tagBranch
	f(st, s.roundsN, &s.p)

	lanes := make([][16]T, s.lanesN)
	for i := range lanes {
		lanes[i] = *st
	}
	for i := 1; i < s.lanesN; i++ {
		idx := T(i)
		for j := 0; j < s.rateWords; j++ {
			lanes[i][j] ^= idx
		}
	}
	zeroize(st)
	return lanes
}

// mergeLanes folds p branched-and-processed lanes back into a single
// state: each lane is MERGE-tagged and permuted, its 16 words are
// XOR-accumulated into a fresh state in index order 0..p-1, and the lane is
// then destroyed (every word set to all-ones) before being dropped — spec
// §4.7, §5's ordering guarantee.
func (s *session[T]) mergeLanes(lanes [][16]T) [16]T {
	var st [16]T
	allOnes := ^T(0)
	for i := range lanes {
		l := &lanes[i]
		l[15] ^= tagMerge
		f(l, s.roundsN, &s.p)
		for j := 0; j < 16; j++ {
			st[j] ^= l[j]
			l[j] = allOnes
		}
	}
	return st
}

// encryptParallel implements the P>1 encryption path: branch, dispatch
// payload blocks round-robin across lanes (sequentially or, with
// WithConcurrentLanes, one goroutine per lane), then merge.
func (s *session[T]) encryptParallel(st *[16]T, message []byte, opID string) []byte {
	lanes := s.branch(st)
	s.logf(opID, "branch: %d lanes", len(lanes))

	var ciphertext []byte
	if s.concurrent {
		ciphertext = s.encryptLanesConcurrent(lanes, message)
	} else {
		ciphertext = s.encryptLanesSequential(lanes, message)
	}

	merged := s.mergeLanes(lanes)
	*st = merged
	s.logf(opID, "merge: lanes folded back into state")
	return ciphertext
}

func (s *session[T]) decryptParallel(st *[16]T, ciphertext []byte, opID string) []byte {
	lanes := s.branch(st)
	s.logf(opID, "branch: %d lanes", len(lanes))

	var plaintext []byte
	if s.concurrent {
		plaintext = s.decryptLanesConcurrent(lanes, ciphertext)
	} else {
		plaintext = s.decryptLanesSequential(lanes, ciphertext)
	}

	merged := s.mergeLanes(lanes)
	*st = merged
	s.logf(opID, "merge: lanes folded back into state")
	return plaintext
}

func (s *session[T]) encryptLanesSequential(lanes [][16]T, message []byte) []byte {
	rb := s.rateBytes
	n := len(message)
	out := make([]byte, 0, n)
	lanePtr := 0
	i := 0
	for n >= rb {
		out = append(out, s.encBlock(&lanes[lanePtr], message[rb*i:rb*(i+1)])...)
		n -= rb
		i++
		lanePtr = (lanePtr + 1) % s.lanesN
	}
	out = append(out, s.encLast(&lanes[lanePtr], message[rb*i:rb*i+n])...)
	return out
}

func (s *session[T]) decryptLanesSequential(lanes [][16]T, ciphertext []byte) []byte {
	rb := s.rateBytes
	n := len(ciphertext)
	out := make([]byte, 0, n)
	lanePtr := 0
	i := 0
	for n >= rb {
		out = append(out, s.decBlock(&lanes[lanePtr], ciphertext[rb*i:rb*(i+1)])...)
		n -= rb
		i++
		lanePtr = (lanePtr + 1) % s.lanesN
	}
	out = append(out, s.decLast(&lanes[lanePtr], ciphertext[rb*i:rb*i+n])...)
	return out
}

// encryptLanesConcurrent processes each lane's statically-known block
// subsequence on its own goroutine via errgroup. Every lane only reads its
// own entries of lanes[] and writes its own disjoint region of the output
// slice (indexed by absolute block offset), so there is no aliasing between
// goroutines — satisfying spec §5(a)-(c) while producing output identical
// to encryptLanesSequential.
func (s *session[T]) encryptLanesConcurrent(lanes [][16]T, message []byte) []byte {
	rb := s.rateBytes
	n := len(message)
	fullBlocks := n / rb
	finalLen := n % rb
	out := make([]byte, n)

	var eg errgroup.Group
	for lane := 0; lane < s.lanesN; lane++ {
		lane := lane
		eg.Go(func() error {
			for blk := lane; blk < fullBlocks; blk += s.lanesN {
				c := s.encBlock(&lanes[lane], message[rb*blk:rb*(blk+1)])
				copy(out[rb*blk:rb*(blk+1)], c)
			}
			if fullBlocks%s.lanesN == lane {
				c := s.encLast(&lanes[lane], message[rb*fullBlocks:rb*fullBlocks+finalLen])
				copy(out[rb*fullBlocks:], c)
			}
			return nil
		})
	}
	_ = eg.Wait()
	return out
}

func (s *session[T]) decryptLanesConcurrent(lanes [][16]T, ciphertext []byte) []byte {
	rb := s.rateBytes
	n := len(ciphertext)
	fullBlocks := n / rb
	finalLen := n % rb
	out := make([]byte, n)

	var eg errgroup.Group
	for lane := 0; lane < s.lanesN; lane++ {
		lane := lane
		eg.Go(func() error {
			for blk := lane; blk < fullBlocks; blk += s.lanesN {
				m := s.decBlock(&lanes[lane], ciphertext[rb*blk:rb*(blk+1)])
				copy(out[rb*blk:rb*(blk+1)], m)
			}
			if fullBlocks%s.lanesN == lane {
				m := s.decLast(&lanes[lane], ciphertext[rb*fullBlocks:rb*fullBlocks+finalLen])
				copy(out[rb*fullBlocks:], m)
			}
			return nil
		})
	}
	_ = eg.Wait()
	return out
}
