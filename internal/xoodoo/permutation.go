// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xoodoo

import "math/bits"

// MaxRounds is the round count of the unreduced Xoodoo permutation.
const MaxRounds = 12

// Permute runs the last rounds rounds of Xoodoo on s. rounds must be in
// [1, MaxRounds]. Ported directly from the register-based reference
// permutation: twelve named locals instead of array indexing, matching how
// the original keeps every lane live across the whole round rather than
// re-reading the state array.
func Permute(s *State, rounds int) {
	if rounds < 1 || rounds > MaxRounds {
		panic("xoodoo: rounds out of range")
	}
	st := s.Lanes()

	st00, st01, st02, st03 := st[0], st[1], st[2], st[3]
	st04, st05, st06, st07 := st[4], st[5], st[6], st[7]
	st08, st09, st10, st11 := st[8], st[9], st[10], st[11]

	for _, roundKey := range roundKeys[MaxRounds-rounds:] {
		p0 := st00 ^ st04 ^ st08
		p1 := st01 ^ st05 ^ st09
		p2 := st02 ^ st06 ^ st10
		p3 := st03 ^ st07 ^ st11

		e0 := bits.RotateLeft32(p3, 5) ^ bits.RotateLeft32(p3, 14)
		e1 := bits.RotateLeft32(p0, 5) ^ bits.RotateLeft32(p0, 14)
		e2 := bits.RotateLeft32(p1, 5) ^ bits.RotateLeft32(p1, 14)
		e3 := bits.RotateLeft32(p2, 5) ^ bits.RotateLeft32(p2, 14)

		tmp0 := e0 ^ st00 ^ roundKey
		tmp1 := e1 ^ st01
		tmp2 := e2 ^ st02
		tmp3 := e3 ^ st03
		tmp4 := e3 ^ st07
		tmp5 := e0 ^ st04
		tmp6 := e1 ^ st05
		tmp7 := e2 ^ st06
		tmp8 := bits.RotateLeft32(e0^st08, 11)
		tmp9 := bits.RotateLeft32(e1^st09, 11)
		tmp10 := bits.RotateLeft32(e2^st10, 11)
		tmp11 := bits.RotateLeft32(e3^st11, 11)

		st00 = (^tmp4 & tmp8) ^ tmp0
		st01 = (^tmp5 & tmp9) ^ tmp1
		st02 = (^tmp6 & tmp10) ^ tmp2
		st03 = (^tmp7 & tmp11) ^ tmp3

		st04 = bits.RotateLeft32((^tmp8&tmp0)^tmp4, 1)
		st05 = bits.RotateLeft32((^tmp9&tmp1)^tmp5, 1)
		st06 = bits.RotateLeft32((^tmp10&tmp2)^tmp6, 1)
		st07 = bits.RotateLeft32((^tmp11&tmp3)^tmp7, 1)

		st08 = bits.RotateLeft32((^tmp2&tmp6)^tmp10, 8)
		st09 = bits.RotateLeft32((^tmp3&tmp7)^tmp11, 8)
		st10 = bits.RotateLeft32((^tmp0&tmp4)^tmp8, 8)
		st11 = bits.RotateLeft32((^tmp1&tmp5)^tmp9, 8)
	}

	st[0], st[1], st[2], st[3] = st00, st01, st02, st03
	st[4], st[5], st[6], st[7] = st04, st05, st06, st07
	st[8], st[9], st[10], st[11] = st08, st09, st10, st11
}

var roundKeys = [MaxRounds]uint32{
	0x00000058, 0x00000038, 0x000003C0, 0x000000D0, 0x00000120, 0x00000014,
	0x00000060, 0x0000002C, 0x00000380, 0x000000F0, 0x000001A0, 0x00000012,
}
