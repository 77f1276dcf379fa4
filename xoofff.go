// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package farfalle

import (
	"math/bits"

	"code.hybscloud.com/farfalle/internal/xoodoo"
)

// xoofffRounds is the round count Xoofff uses for all four permutation
// slots.
const xoofffRounds = 6

// Xoofff is Farfalle instantiated with Xoodoo[6].
type Xoofff = Deck[*xoodoo.State]

type xoofffConfig struct{}

func (xoofffConfig) NewState() *xoodoo.State { return new(xoodoo.State) }
func (xoofffConfig) Size() int               { return xoodoo.Size }

func (xoofffConfig) PermB(s *xoodoo.State) { xoodoo.Permute(s, xoofffRounds) }
func (xoofffConfig) PermC(s *xoodoo.State) { xoodoo.Permute(s, xoofffRounds) }
func (xoofffConfig) PermD(s *xoodoo.State) { xoodoo.Permute(s, xoofffRounds) }
func (xoofffConfig) PermE(s *xoodoo.State) { xoodoo.Permute(s, xoofffRounds) }

// shiftPlanes moves the y=1 and y=2 planes of the 12-lane state down to
// y=0 and y=1 and returns the old y=0 plane with its lanes rotated
// (new[3]=old[0], new[0]=old[1], new[1]=old[2], new[2]=old[3]); the caller
// stores the returned plane as the new y=2 plane.
// This non-obvious 3→0 shuffle is called out explicitly in the design
// notes; it must be read element by element, not inferred from symmetry.
func shiftPlanes(a *[12]uint32) [4]uint32 {
	var b [4]uint32
	b[3] = a[0]
	b[0] = a[1]
	b[1] = a[2]
	b[2] = a[3]
	for i := 0; i < 8; i++ {
		a[i] = a[i+4]
	}
	return b
}

// RollC evolves the y=0 lane 0 with a 13-bit shift/3-bit-rotate mix, then
// shifts planes down, feeding the shuffled old y=0 plane in as the new
// y=2 plane.
func (xoofffConfig) RollC(s *xoodoo.State) {
	a := s.Lanes()
	a[0] ^= (a[0] << 13) ^ bits.RotateLeft32(a[4], 3)
	b := shiftPlanes(a)
	a[8], a[9], a[10], a[11] = b[0], b[1], b[2], b[3]
}

// RollE evolves the y=0 lane 0 via a 5/13-bit rotation mix plus a fixed
// constant, then shifts planes down the same way as RollC.
func (xoofffConfig) RollE(s *xoodoo.State) {
	a := s.Lanes()
	a[0] = (a[4] & a[8]) ^ bits.RotateLeft32(a[0], 5) ^ bits.RotateLeft32(a[4], 13) ^ 0x00000007
	b := shiftPlanes(a)
	a[8], a[9], a[10], a[11] = b[0], b[1], b[2], b[3]
}

// NewXoofff initialises a Xoofff accumulator from key. key plus a
// one-byte pad must fit in a single 48-byte Xoodoo block (so key must be
// at most 47 bytes).
func NewXoofff(key []byte) *Xoofff {
	return InitCustom[*xoodoo.State](key, xoofffConfig{})
}
