// Copyright (c) 2025, The NORX Authors.
// See LICENSE for licensing information.

package norx

// params holds the width-specific constants from spec §6.1: the four
// rotation amounts used by every G quarter-round, and the eight
// initialization words U0..U7 that seed the capacity half of a fresh state.
// Bit-exact against PyNORX.py's __ROT_CONST__ / __INIT_CONST__ tables.
type params[T word] struct {
	width uint
	rc    [4]uint
	init  [8]T
}

func params32() params[uint32] {
	return params[uint32]{
		width: 32,
		rc:    [4]uint{8, 11, 16, 31},
		init: [8]uint32{
			0xA3D8D930, 0x3FA8B72C, 0xED84EB49, 0xEDCA4787,
			0x335463EB, 0xF994220B, 0xBE0BF5C9, 0xD7C49104,
		},
	}
}

func params64() params[uint64] {
	return params[uint64]{
		width: 64,
		rc:    [4]uint{8, 19, 40, 63},
		init: [8]uint64{
			0xB15E641748DE5E6B, 0xAA95E955E10F8410, 0x28D1034441A9DD40, 0x7F31BBF964E93BF5,
			0xB5E9E22493DFFB96, 0xB980C852479FAFBD, 0xDA24516BF55EAFD4, 0x86026AE8536F1501,
		},
	}
}
