// Copyright (c) 2025, The NORX Authors.
// See LICENSE for licensing information.

package sealedcache

import (
	"testing"

	"github.com/SparkDustJoe/norx"
)

type record struct {
	Name  string
	Count int
}

func newTestSession(t *testing.T) *norx.Session {
	t.Helper()
	sess, err := norx.New(64, 4, 1, 256)
	if err != nil {
		t.Fatal(err)
	}
	return sess
}

func TestSealOpenRoundTrip(t *testing.T) {
	c := New(newTestSession(t))
	seed := []byte("cache seed material")

	want := record{Name: "widgets", Count: 7}
	sealed, err := c.Seal(want, seed)
	if err != nil {
		t.Fatal(err)
	}

	var got record
	if err := c.Open(sealed, seed, &got); err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("Open() = %+v, want %+v", got, want)
	}
}

func TestOpenRejectsWrongSeed(t *testing.T) {
	c := New(newTestSession(t))
	sealed, err := c.Seal(record{Name: "a", Count: 1}, []byte("seed one"))
	if err != nil {
		t.Fatal(err)
	}

	var got record
	if err := c.Open(sealed, []byte("seed two"), &got); err == nil {
		t.Fatal("expected authentication error with wrong seed")
	}
}

func TestOpenRejectsTamperedBlob(t *testing.T) {
	c := New(newTestSession(t))
	seed := []byte("seed")
	sealed, err := c.Seal(record{Name: "a", Count: 1}, seed)
	if err != nil {
		t.Fatal(err)
	}
	sealed[len(sealed)-1] ^= 0x01

	var got record
	if err := c.Open(sealed, seed, &got); err == nil {
		t.Fatal("expected error on tampered blob")
	}
}

func TestOpenRejectsTooShortBlob(t *testing.T) {
	c := New(newTestSession(t))
	var got record
	if err := c.Open([]byte{1, 2, 3}, []byte("seed"), &got); err == nil {
		t.Fatal("expected error on too-short blob")
	}
}
