// Copyright (c) 2025, The NORX Authors.
// See LICENSE for licensing information.

package norx

import (
	"log"

	"github.com/google/uuid"
)

// engine is the interface the two concrete word-width instantiations of
// session[T] satisfy, letting the public Session type stay non-generic.
// This follows the REDESIGN note in spec.md §9 preferring "two concrete
// types sharing a trait/interface" over runtime branching on word width.
type engine interface {
	wordBits() int
	rounds() int
	lanes() int
	tagBits() int
	nonceSize() int
	keySize() int
	tagSize() int
	aeadEncrypt(header, message, trailer, nonce, key []byte) ([]byte, error)
	aeadDecrypt(header, ciphertextAndTag, trailer, nonce, key []byte) (bool, []byte, error)
}

// session is the generic engine implementation, instantiated once for
// uint32 and once for uint64 by New. It captures immutable session
// parameters plus precomputed derived values (spec §9's "Shared parameter
// block vs session object" note) so AEAD calls allocate only their 16-word
// (or p*16-word) working state per call.
type session[T word] struct {
	p       params[T]
	roundsN int
	lanesN  int
	tagBitsN int

	wordBytes  int
	rateWords  int
	rateBytes  int
	tagBytesN  int
	nonceBytes int
	keyBytes   int

	concurrent bool
	logger     *log.Logger
}

// Option configures a Session at construction time.
type Option func(*sessionOptions)

type sessionOptions struct {
	concurrent bool
	logger     *log.Logger
}

// WithConcurrentLanes enables one-goroutine-per-lane dispatch for P>1
// payload processing (spec §5's permitted runtime-parallel reading of
// "parallel" mode). Output is bit-identical to the sequential path; only
// the scheduling changes.
func WithConcurrentLanes() Option {
	return func(o *sessionOptions) { o.concurrent = true }
}

// WithLogger attaches a logger for lifecycle/diagnostic messages. No secret
// material is ever logged. A nil logger disables logging.
func WithLogger(l *log.Logger) Option {
	return func(o *sessionOptions) { o.logger = l }
}

// Session is the public NORX AEAD handle returned by New.
type Session struct {
	eng engine
}

// New validates (w, r, p, t) per spec §3 and §7 and returns a ready-to-use
// Session. Constructor-time errors fail fast before any key-dependent
// computation, per §7.
func New(wordBits, rounds, lanes, tagBits int, opts ...Option) (*Session, error) {
	const op = "norx.New"

	if wordBits != 32 && wordBits != 64 {
		return nil, invalidParam(op, "word width must be 32 or 64")
	}
	if rounds < 1 || rounds > 63 {
		return nil, invalidParam(op, "rounds must be in [1, 63]")
	}
	if lanes == 0 {
		return nil, &Error{Kind: UnsupportedParallelism, Op: op, Msg: "infinite parallelism (lanes=0) is not supported"}
	}
	if lanes < 0 || lanes > 255 {
		return nil, invalidParam(op, "lanes must be in [1, 255]")
	}
	if tagBits < 0 || tagBits > 4*wordBits {
		return nil, invalidParam(op, "tag bits out of range for word width")
	}
	if tagBits%8 != 0 {
		return nil, invalidParam(op, "tag bits must be a multiple of 8")
	}

	var cfg sessionOptions
	for _, o := range opts {
		o(&cfg)
	}

	var eng engine
	switch wordBits {
	case 32:
		p := params32()
		eng = newSession(p, rounds, lanes, tagBits, cfg)
	case 64:
		p := params64()
		eng = newSession(p, rounds, lanes, tagBits, cfg)
	}

	return &Session{eng: eng}, nil
}

func newSession[T word](p params[T], rounds, lanes, tagBits int, cfg sessionOptions) *session[T] {
	wordBytes := int(p.width) / 8
	rateWords := 12
	s := &session[T]{
		p:          p,
		roundsN:    rounds,
		lanesN:     lanes,
		tagBitsN:   tagBits,
		wordBytes:  wordBytes,
		rateWords:  rateWords,
		rateBytes:  rateWords * wordBytes,
		tagBytesN:  tagBits / 8,
		nonceBytes: 4 * wordBytes,
		keyBytes:   4 * wordBytes,
		concurrent: cfg.concurrent,
		logger:     cfg.logger,
	}
	return s
}

func (s *session[T]) wordBits() int  { return int(s.p.width) }
func (s *session[T]) rounds() int    { return s.roundsN }
func (s *session[T]) lanes() int     { return s.lanesN }
func (s *session[T]) tagBits() int   { return s.tagBitsN }
func (s *session[T]) nonceSize() int { return s.nonceBytes }
func (s *session[T]) keySize() int   { return s.keyBytes }
func (s *session[T]) tagSize() int   { return s.tagBytesN }

func (s *session[T]) aeadEncrypt(header, message, trailer, nonce, key []byte) ([]byte, error) {
	const op = "norx.AEADEncrypt"
	if len(key) != s.keyBytes {
		return nil, invalidParam(op, "invalid key length")
	}
	if len(nonce) != s.nonceBytes {
		return nil, invalidParam(op, "invalid nonce length")
	}

	opID := uuid.New().String()
	s.logf(opID, "encrypt: header=%dB message=%dB trailer=%dB lanes=%d", len(header), len(message), len(trailer), s.lanesN)

	st := s.initState(nonce, key)
	s.absorb(&st, header, tagHeader)

	var ciphertext []byte
	if s.lanesN == 1 {
		ciphertext = s.encryptSequential(&st, message)
	} else {
		ciphertext = s.encryptParallel(&st, message, opID)
	}

	s.absorb(&st, trailer, tagTrailer)
	tag := s.generateTag(&st, key)

	s.logf(opID, "encrypt done: ciphertext=%dB tag=%dB", len(ciphertext), len(tag))

	out := make([]byte, 0, len(ciphertext)+len(tag))
	out = append(out, ciphertext...)
	out = append(out, tag...)
	return out, nil
}

func (s *session[T]) encryptSequential(st *[16]T, message []byte) []byte {
	rb := s.rateBytes
	n := len(message)
	out := make([]byte, 0, n)
	i := 0
	for n >= rb {
		out = append(out, s.encBlock(st, message[rb*i:rb*(i+1)])...)
		n -= rb
		i++
	}
	out = append(out, s.encLast(st, message[rb*i:rb*i+n])...)
	return out
}

func (s *session[T]) aeadDecrypt(header, ciphertextAndTag, trailer, nonce, key []byte) (bool, []byte, error) {
	const op = "norx.AEADDecrypt"
	if len(key) != s.keyBytes {
		return false, nil, invalidParam(op, "invalid key length")
	}
	if len(nonce) != s.nonceBytes {
		return false, nil, invalidParam(op, "invalid nonce length")
	}
	if len(ciphertextAndTag) < s.tagBytesN {
		return false, nil, invalidParam(op, "ciphertext shorter than tag length")
	}

	opID := uuid.New().String()
	d := len(ciphertextAndTag) - s.tagBytesN
	ciphertext, presentedTag := ciphertextAndTag[:d], ciphertextAndTag[d:]

	s.logf(opID, "decrypt: header=%dB ciphertext=%dB trailer=%dB lanes=%d", len(header), len(ciphertext), len(trailer), s.lanesN)

	st := s.initState(nonce, key)
	s.absorb(&st, header, tagHeader)

	var plaintext []byte
	if s.lanesN == 1 {
		plaintext = s.decryptSequential(&st, ciphertext)
	} else {
		plaintext = s.decryptParallel(&st, ciphertext, opID)
	}

	s.absorb(&st, trailer, tagTrailer)
	expectedTag := s.generateTag(&st, key)

	if !constantTimeEqual(presentedTag, expectedTag) {
		s.logf(opID, "decrypt: authentication failed")
		zeroizeBytes(plaintext)
		return false, nil, nil
	}

	s.logf(opID, "decrypt: authentication ok, plaintext=%dB", len(plaintext))
	if len(plaintext) == 0 {
		return true, nil, nil
	}
	return true, plaintext, nil
}

func (s *session[T]) decryptSequential(st *[16]T, ciphertext []byte) []byte {
	rb := s.rateBytes
	n := len(ciphertext)
	out := make([]byte, 0, n)
	i := 0
	for n >= rb {
		out = append(out, s.decBlock(st, ciphertext[rb*i:rb*(i+1)])...)
		n -= rb
		i++
	}
	out = append(out, s.decLast(st, ciphertext[rb*i:rb*i+n])...)
	return out
}

func zeroizeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Public Session methods delegate to the underlying engine.

func (s *Session) WordBits() int  { return s.eng.wordBits() }
func (s *Session) Rounds() int    { return s.eng.rounds() }
func (s *Session) Lanes() int     { return s.eng.lanes() }
func (s *Session) TagBits() int   { return s.eng.tagBits() }
func (s *Session) NonceSize() int { return s.eng.nonceSize() }
func (s *Session) KeySize() int   { return s.eng.keySize() }
func (s *Session) TagSize() int   { return s.eng.tagSize() }

// AEADEncrypt encrypts and authenticates message under (header, trailer,
// nonce, key), returning ciphertext ∥ tag (spec §4.8).
func (s *Session) AEADEncrypt(header, message, trailer, nonce, key []byte) ([]byte, error) {
	return s.eng.aeadEncrypt(header, message, trailer, nonce, key)
}

// AEADDecrypt verifies and decrypts ciphertextAndTag under (header,
// trailer, nonce, key). On authentication failure it returns (false, nil,
// nil); plaintext is never returned alongside a failed verification (spec
// §7, §8 property 2).
func (s *Session) AEADDecrypt(header, ciphertextAndTag, trailer, nonce, key []byte) (bool, []byte, error) {
	return s.eng.aeadDecrypt(header, ciphertextAndTag, trailer, nonce, key)
}
