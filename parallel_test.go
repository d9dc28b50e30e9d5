// Copyright (c) 2025, The NORX Authors.
// See LICENSE for licensing information.

package norx

import (
	"bytes"
	"testing"
)

// TestConcurrentLanesMatchSequential checks that WithConcurrentLanes changes
// only scheduling, never output (spec §5's bit-identical requirement).
func TestConcurrentLanesMatchSequential(t *testing.T) {
	seq, err := New(64, 4, 4, 256)
	if err != nil {
		t.Fatal(err)
	}
	conc, err := New(64, 4, 4, 256, WithConcurrentLanes())
	if err != nil {
		t.Fatal(err)
	}

	key := fill(seq.KeySize(), 0x42)
	nonce := fill(seq.NonceSize(), 0x24)
	header := fill(13, 0x01)
	trailer := fill(17, 0x02)
	message := fill(seq.rateBytesForTest()*7+5, 0x03)

	seqCT, err := seq.AEADEncrypt(header, message, trailer, nonce, key)
	if err != nil {
		t.Fatal(err)
	}
	concCT, err := conc.AEADEncrypt(header, message, trailer, nonce, key)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(seqCT, concCT) {
		t.Fatal("sequential and concurrent encryption produced different ciphertext")
	}

	okSeq, ptSeq, err := seq.AEADDecrypt(header, seqCT, trailer, nonce, key)
	if err != nil || !okSeq {
		t.Fatalf("sequential decrypt failed: ok=%v err=%v", okSeq, err)
	}
	okConc, ptConc, err := conc.AEADDecrypt(header, concCT, trailer, nonce, key)
	if err != nil || !okConc {
		t.Fatalf("concurrent decrypt failed: ok=%v err=%v", okConc, err)
	}
	if !bytes.Equal(ptSeq, ptConc) || !bytes.Equal(ptSeq, message) {
		t.Fatal("decrypted plaintexts differ between sequential and concurrent lanes")
	}
}

func TestLaneCountOneMatchesSingleLanePath(t *testing.T) {
	single, err := New(64, 4, 1, 256)
	if err != nil {
		t.Fatal(err)
	}
	multi, err := New(64, 4, 1, 256, WithConcurrentLanes())
	if err != nil {
		t.Fatal(err)
	}

	key := fill(single.KeySize(), 0x77)
	nonce := fill(single.NonceSize(), 0x88)
	message := fill(100, 0x99)

	a, err := single.AEADEncrypt(nil, message, nil, nonce, key)
	if err != nil {
		t.Fatal(err)
	}
	b, err := multi.AEADEncrypt(nil, message, nil, nonce, key)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Fatal("p=1 concurrent option changed output")
	}
}
