// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package farfalle

import "code.hybscloud.com/farfalle/internal/crio"

// State is the self-referential constraint every permutation state type
// satisfies: S's own methods return and accept S. keccakp.State and
// xoodoo.State already implement this shape (Clone/XorWith with pointer
// receivers), so plugging a permutation into Farfalle requires no adapter
// type, only an implementation of Config[S].
type State[S any] interface {
	Clone() S
	XorWith(other S)
	Reader() crio.Reader
	CopyWriter() crio.Writer
	XorWriter() crio.Writer
}

// Config bundles a permutation state type with the four permutation slots
// and two rolling functions a Farfalle instantiation needs (spec §4.7,
// §9 "Parameterised state/permutation coupling"). This is the Go
// generics-over-associated-types rendition the spec's design notes call
// for: S is fixed once per Config implementation, so every method here
// dispatches statically.
type Config[S State[S]] interface {
	// NewState returns a fresh zero-valued state.
	NewState() S
	// Size is the byte width of S (the permutation block size).
	Size() int
	PermB(s S)
	PermC(s S)
	PermD(s S)
	PermE(s S)
	RollC(s S)
	RollE(s S)
}

// padByte terminates the key and every absorbed message before the final
// block is processed.
const padByte byte = 1
