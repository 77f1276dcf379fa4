// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package xoodoo implements the Xoodoo[R] permutation family used by the
// Xoofff instantiation of Farfalle.
package xoodoo

import (
	"code.hybscloud.com/farfalle/internal/crio"
	"code.hybscloud.com/farfalle/internal/wordio"
)

// Size is the byte width of a Xoodoo state.
const Size = 48

const laneCount = 12

// State is a Xoodoo state: 12 32-bit lanes, read and written as
// little-endian bytes.
type State struct {
	lanes [laneCount]uint32
}

// Lanes returns a pointer to the raw lane array for the permutation step.
func (s *State) Lanes() *[laneCount]uint32 { return &s.lanes }

// Clone returns an independent copy of s.
func (s *State) Clone() *State {
	clone := *s
	return &clone
}

// XorWith xors other's lanes into s.
func (s *State) XorWith(other *State) {
	for i := range s.lanes {
		s.lanes[i] ^= other.lanes[i]
	}
}

// Reader returns a reader over s's little-endian byte representation.
func (s *State) Reader() crio.Reader {
	return wordio.NewReader(s.lanes[:])
}

// CopyWriter returns a writer that overwrites s's bytes.
func (s *State) CopyWriter() crio.Writer {
	return wordio.NewCopyWriter(s.lanes[:])
}

// XorWriter returns a writer that xors bytes into s.
func (s *State) XorWriter() crio.Writer {
	return wordio.NewXorWriter(s.lanes[:])
}
