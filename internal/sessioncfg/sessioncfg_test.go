// Copyright (c) 2025, The NORX Authors.
// See LICENSE for licensing information.

package sessioncfg

import "testing"

func TestDefault(t *testing.T) {
	d := Default()
	if d != (Settings{WordBits: 64, Rounds: 4, Lanes: 1, TagBits: 256}) {
		t.Fatalf("Default() = %+v", d)
	}
}

func TestFromEnvOverlaysOnlySetFields(t *testing.T) {
	t.Setenv("NORX_WORD_BITS", "32")
	t.Setenv("NORX_ROUNDS", "")
	t.Setenv("NORX_TAG_BITS", "128")

	s, err := FromEnv()
	if err != nil {
		t.Fatal(err)
	}
	want := Settings{WordBits: 32, Rounds: 4, Lanes: 1, TagBits: 128}
	if s != want {
		t.Fatalf("FromEnv() = %+v, want %+v", s, want)
	}
}

func TestFromEnvRejectsNonInteger(t *testing.T) {
	t.Setenv("NORX_ROUNDS", "not-a-number")
	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error for non-integer env value")
	}
}
