// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package farfalle

import (
	"math/bits"

	"code.hybscloud.com/farfalle/internal/keccakp"
)

// kravatteRounds is the round count Kravatte (Achouffe) uses for all four
// permutation slots.
const kravatteRounds = 6

// Kravatte is Farfalle instantiated with Keccak-p[1600,6].
type Kravatte = Deck[*keccakp.State]

type kravatteConfig struct{}

func (kravatteConfig) NewState() *keccakp.State { return new(keccakp.State) }
func (kravatteConfig) Size() int                { return keccakp.Size }

func (kravatteConfig) PermB(s *keccakp.State) { keccakp.Permute(s, kravatteRounds) }
func (kravatteConfig) PermC(s *keccakp.State) { keccakp.Permute(s, kravatteRounds) }
func (kravatteConfig) PermD(s *keccakp.State) { keccakp.Permute(s, kravatteRounds) }
func (kravatteConfig) PermE(s *keccakp.State) { keccakp.Permute(s, kravatteRounds) }

// RollC evolves the y=4 plane (lanes 20..25): a 7-bit left rotation and a
// right-shift-by-3 feed a fresh lane, and the plane shifts down by one.
func (kravatteConfig) RollC(s *keccakp.State) {
	plane := s.Lanes()[20:25]
	x0, x1 := plane[0], plane[1]
	x5 := bits.RotateLeft64(x0, 7) ^ x1 ^ (x1 >> 3)
	for i := 0; i < 4; i++ {
		plane[i] = plane[i+1]
	}
	plane[4] = x5
}

// RollE evolves the y=3,4 planes (lanes 15..25), ten lanes shifting down by
// one with a new lane fed in from a 7/18-bit rotation mix.
func (kravatteConfig) RollE(s *keccakp.State) {
	plane := s.Lanes()[15:25]
	x0, x1, x2 := plane[0], plane[1], plane[2]
	x10 := bits.RotateLeft64(x0, 7) ^ bits.RotateLeft64(x1, 18) ^ (x2 & (x1 >> 1))
	for i := 0; i < 9; i++ {
		plane[i] = plane[i+1]
	}
	plane[9] = x10
}

// NewKravatte initialises a Kravatte accumulator from key. key plus a
// one-byte pad must fit in a single 200-byte Keccak-p[1600] block (so key
// must be at most 199 bytes).
func NewKravatte(key []byte) *Kravatte {
	return InitCustom[*keccakp.State](key, kravatteConfig{})
}
