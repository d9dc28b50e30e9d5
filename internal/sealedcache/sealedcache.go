// Copyright (c) 2025, The NORX Authors.
// See LICENSE for licensing information.

// Package sealedcache seals arbitrary gob-serializable values behind a NORX
// Session, keeping the wire format (nonce ∥ ciphertext ∥ tag) and
// derive-key/encrypt/verify-then-decode shape of the teacher's own
// cache_ascon.go, adapted from its hardcoded ASCON calls and garble-specific
// sharedCacheType onto a caller-supplied *norx.Session and generic payload.
package sealedcache

import (
	"bytes"
	"crypto/rand"
	"encoding/gob"
	"fmt"

	"github.com/SparkDustJoe/norx"
)

const keyInfo = "norx-sealedcache-v1"

// Cache seals and opens values under a single NORX session's parameters.
type Cache struct {
	sess *norx.Session
}

// New wraps an existing, already-configured Session.
func New(sess *norx.Session) *Cache {
	return &Cache{sess: sess}
}

func (c *Cache) deriveKey(seed []byte) ([]byte, error) {
	key, err := norx.DeriveKey(c.sess.WordBits(), seed, nil, []byte(keyInfo))
	if err != nil {
		return nil, fmt.Errorf("sealedcache: derive key: %w", err)
	}
	return key, nil
}

// Seal gob-encodes data, encrypts it under a fresh random nonce and a key
// derived from seed, and returns nonce ∥ ciphertext ∥ tag.
func (c *Cache) Seal(data any, seed []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(data); err != nil {
		return nil, fmt.Errorf("sealedcache: encode: %w", err)
	}

	key, err := c.deriveKey(seed)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, c.sess.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("sealedcache: nonce: %w", err)
	}

	ciphertext, err := c.sess.AEADEncrypt(nil, buf.Bytes(), nil, nonce, key)
	if err != nil {
		return nil, fmt.Errorf("sealedcache: encrypt: %w", err)
	}

	out := make([]byte, 0, len(nonce)+len(ciphertext))
	out = append(out, nonce...)
	out = append(out, ciphertext...)
	return out, nil
}

// Open verifies and decodes a blob produced by Seal into v (which must be a
// pointer, as with gob.Decode). It reports an error if the blob is
// malformed or fails authentication (wrong seed, or tampered contents).
func (c *Cache) Open(sealed, seed []byte, v any) error {
	n := c.sess.NonceSize()
	if len(sealed) < n {
		return fmt.Errorf("sealedcache: sealed blob too short (%d bytes)", len(sealed))
	}
	nonce, rest := sealed[:n], sealed[n:]

	key, err := c.deriveKey(seed)
	if err != nil {
		return err
	}

	ok, plaintext, err := c.sess.AEADDecrypt(nil, rest, nil, nonce, key)
	if err != nil {
		return fmt.Errorf("sealedcache: decrypt: %w", err)
	}
	if !ok {
		return fmt.Errorf("sealedcache: authentication failed (tampered or wrong seed)")
	}

	return gob.NewDecoder(bytes.NewReader(plaintext)).Decode(v)
}
