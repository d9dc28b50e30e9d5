// Copyright (c) 2025, The NORX Authors.
// See LICENSE for licensing information.

// Package cipheradapter wraps a *norx.Session behind the standard
// crypto/cipher.AEAD interface, following internal/runtime_crypto.AEAD's
// constructor-validates/method-executes wrapper shape (there built around
// golang.org/x/crypto/chacha20poly1305; here the same small struct wraps a
// NORX session instead) so NORX sessions can be handed to any caller that
// already codes against cipher.AEAD.
package cipheradapter

import (
	"crypto/cipher"
	"fmt"

	"github.com/SparkDustJoe/norx"
)

// AEAD adapts a *norx.Session to crypto/cipher.AEAD. Associated data is
// NORX's header; the adapter carries no trailer (cipher.AEAD has no third
// slot for one).
type AEAD struct {
	sess *norx.Session
	key  []byte
}

var _ cipher.AEAD = (*AEAD)(nil)

// New builds an AEAD bound to sess and key. key must already be sized for
// sess (4*wordBits/8 bytes); use norx.DeriveKey to stretch an
// arbitrary-length secret first if needed.
func New(sess *norx.Session, key []byte) (*AEAD, error) {
	if len(key) != sess.KeySize() {
		return nil, fmt.Errorf("cipheradapter: key must be %d bytes, got %d", sess.KeySize(), len(key))
	}
	return &AEAD{sess: sess, key: key}, nil
}

// NonceSize reports the nonce length the underlying session requires.
func (a *AEAD) NonceSize() int {
	return a.sess.NonceSize()
}

// Overhead reports the tag length appended to every sealed ciphertext.
func (a *AEAD) Overhead() int {
	return a.sess.TagSize()
}

// Seal encrypts and authenticates plaintext under nonce and additionalData,
// appending the result to dst per the cipher.AEAD contract.
func (a *AEAD) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	ct, err := a.sess.AEADEncrypt(additionalData, plaintext, nil, nonce, a.key)
	if err != nil {
		panic("cipheradapter: seal: " + err.Error())
	}
	return append(dst, ct...)
}

// Open verifies and decrypts ciphertext produced by Seal, appending the
// recovered plaintext to dst. It reports an error instead of panicking when
// authentication fails, per the cipher.AEAD contract.
func (a *AEAD) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	ok, plaintext, err := a.sess.AEADDecrypt(additionalData, ciphertext, nil, nonce, a.key)
	if err != nil {
		return nil, fmt.Errorf("cipheradapter: open: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("cipheradapter: authentication failed")
	}
	return append(dst, plaintext...), nil
}
