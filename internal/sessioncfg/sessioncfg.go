// Copyright (c) 2025, The NORX Authors.
// See LICENSE for licensing information.

// Package sessioncfg loads NORX session parameters from the environment,
// following SnellerInc-sneller/elasticproxy/helpers/envfile.go's Settings
// struct + explicit field-list parsing idiom (adapted from that file's
// .env-file parsing to plain os.Getenv lookups — this package performs no
// file I/O, which spec.md §1 names out of scope). No other package in this
// module imports it; the core norx package always takes explicit
// parameters per its documented constructor.
package sessioncfg

import (
	"fmt"
	"os"
	"strconv"
)

// Settings holds the four NORX session parameters (spec §3).
type Settings struct {
	WordBits int
	Rounds   int
	Lanes    int
	TagBits  int
}

// Default returns the reference parameterization used throughout spec.md
// §8's end-to-end scenarios: w=64, r=4, p=1, t=256.
func Default() Settings {
	return Settings{WordBits: 64, Rounds: 4, Lanes: 1, TagBits: 256}
}

// FromEnv overlays NORX_WORD_BITS, NORX_ROUNDS, NORX_LANES and
// NORX_TAG_BITS (when set) onto Default, matching envfile.go's pattern of
// iterating a {key, destination} field list rather than hand-writing one
// lookup per field.
func FromEnv() (Settings, error) {
	s := Default()

	fields := []struct {
		key string
		dst *int
	}{
		{"NORX_WORD_BITS", &s.WordBits},
		{"NORX_ROUNDS", &s.Rounds},
		{"NORX_LANES", &s.Lanes},
		{"NORX_TAG_BITS", &s.TagBits},
	}

	for _, field := range fields {
		raw, ok := os.LookupEnv(field.key)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return Settings{}, fmt.Errorf("sessioncfg: %s=%q: %w", field.key, raw, err)
		}
		*field.dst = v
	}

	return s, nil
}
