// Copyright (c) 2025, The NORX Authors.
// See LICENSE for licensing information.

package norx

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// DeriveKey stretches an arbitrary-length secret into exactly the
// 4*wordBits/8-byte key a Session of the given word width requires.
//
// NORX itself performs no key stretching — the core AEAD accepts exactly a
// 4w-bit key, as-is (spec §3, §4.4) — this helper exists purely for callers
// who start from a passphrase or a differently-sized secret. It never
// touches Session state and has no effect on AEAD semantics; the teacher's
// own golang.org/x/crypto dependency (previously only exercised for
// chacha20poly1305 in internal/runtime_crypto/aead.go) backs it via the
// hkdf subpackage.
func DeriveKey(wordBits int, secret, salt, info []byte) ([]byte, error) {
	const op = "norx.DeriveKey"
	if wordBits != 32 && wordBits != 64 {
		return nil, invalidParam(op, "word width must be 32 or 64")
	}
	keyBytes := 4 * (wordBits / 8)

	r := hkdf.New(sha256.New, secret, salt, info)
	key := make([]byte, keyBytes)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, &Error{Kind: InvalidParameter, Op: op, Msg: "hkdf expansion failed", Err: err}
	}
	return key, nil
}
