// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package keccakp

import "math/bits"

// MaxRounds is the round count of the unreduced Keccak-f[1600] permutation.
const MaxRounds = 24

// Permute runs the last rounds rounds of Keccak-p[1600] on s. rounds must be
// in [1, MaxRounds].
func Permute(s *State, rounds int) {
	if rounds < 1 || rounds > MaxRounds {
		panic("keccakp: rounds out of range")
	}
	a := s.Lanes()
	for _, rc := range roundConstants[MaxRounds-rounds:] {
		round(a, rc)
	}
}

func round(a *[25]uint64, rc uint64) {
	var c, d [5]uint64
	for x := 0; x < 5; x++ {
		c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
	}
	for x := 0; x < 5; x++ {
		d[x] = c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			a[x+5*y] ^= d[x]
		}
	}

	var b [25]uint64
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			nx, ny := y, (2*x+3*y)%5
			b[nx+5*ny] = bits.RotateLeft64(a[x+5*y], rotationOffsets[x][y])
		}
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			a[x+5*y] = b[x+5*y] ^ (^b[(x+1)%5+5*y] & b[(x+2)%5+5*y])
		}
	}

	a[0] ^= rc
}

var rotationOffsets = [5][5]int{
	{0, 36, 3, 41, 18},
	{1, 44, 10, 45, 2},
	{62, 6, 43, 15, 61},
	{28, 55, 25, 21, 56},
	{27, 20, 39, 8, 14},
}

var roundConstants = [MaxRounds]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088, 0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800A, 0x800000008000000A,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}
