// Copyright (c) 2025, The NORX Authors.
// See LICENSE for licensing information.

package norx

import (
	"bytes"
	"testing"
)

func TestDeriveKeySizesAndDeterminism(t *testing.T) {
	secret := []byte("a passphrase of arbitrary length")
	salt := []byte("salt")
	info := []byte("norx session key")

	k32, err := DeriveKey(32, secret, salt, info)
	if err != nil {
		t.Fatal(err)
	}
	if len(k32) != 16 {
		t.Fatalf("32-bit key length = %d, want 16", len(k32))
	}

	k64, err := DeriveKey(64, secret, salt, info)
	if err != nil {
		t.Fatal(err)
	}
	if len(k64) != 32 {
		t.Fatalf("64-bit key length = %d, want 32", len(k64))
	}

	again, err := DeriveKey(64, secret, salt, info)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(k64, again) {
		t.Fatal("DeriveKey is not deterministic for identical inputs")
	}

	other, err := DeriveKey(64, secret, []byte("different salt"), info)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(k64, other) {
		t.Fatal("different salts produced identical derived keys")
	}
}

func TestDeriveKeyRejectsBadWordWidth(t *testing.T) {
	if _, err := DeriveKey(48, []byte("s"), nil, nil); err == nil {
		t.Fatal("expected error for invalid word width")
	}
}

func TestDerivedKeyWorksWithSession(t *testing.T) {
	sess, err := New(64, 4, 1, 256)
	if err != nil {
		t.Fatal(err)
	}
	key, err := DeriveKey(64, []byte("short secret"), nil, []byte("ctx"))
	if err != nil {
		t.Fatal(err)
	}
	nonce := fill(sess.NonceSize(), 1)
	message := fill(20, 2)

	ct, err := sess.AEADEncrypt(nil, message, nil, nonce, key)
	if err != nil {
		t.Fatal(err)
	}
	ok, pt, err := sess.AEADDecrypt(nil, ct, nil, nonce, key)
	if err != nil || !ok || string(pt) != string(message) {
		t.Fatalf("round trip with derived key failed: ok=%v err=%v", ok, err)
	}
}
