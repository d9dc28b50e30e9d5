// Copyright (c) 2025, The NORX Authors.
// See LICENSE for licensing information.

package norx

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestWithLoggerRecordsOperationsWithoutSecrets(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	sess, err := New(64, 4, 1, 256, WithLogger(logger))
	if err != nil {
		t.Fatal(err)
	}
	key := fill(sess.KeySize(), 1)
	nonce := fill(sess.NonceSize(), 2)
	message := fill(10, 3)

	if _, err := sess.AEADEncrypt(nil, message, nil, nonce, key); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "encrypt") {
		t.Fatalf("log output missing encrypt operation: %q", out)
	}
	if !strings.Contains(out, "message=10B") {
		t.Fatalf("log output missing expected size field: %q", out)
	}
}

func TestNoLoggerIsSilentAndSafe(t *testing.T) {
	sess, err := New(64, 4, 1, 256)
	if err != nil {
		t.Fatal(err)
	}
	key := fill(sess.KeySize(), 1)
	nonce := fill(sess.NonceSize(), 2)
	if _, err := sess.AEADEncrypt(nil, fill(5, 4), nil, nonce, key); err != nil {
		t.Fatal(err)
	}
}
