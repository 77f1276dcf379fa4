// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package farfalle

// Deck is a Farfalle accumulator: an expanded key, a running compression
// state, and the permutation/rolling-function bundle driving both (spec
// §3 "Farfalle accumulator"). The zero value is not usable; construct one
// with InitCustom or one of the Kravatte/Xoofff constructors.
type Deck[S State[S]] struct {
	key    S
	state  S
	config Config[S]
}

// InitCustom builds a Deck from an arbitrary key and Config. key plus the
// one-byte pad must fit in a single permutation block.
//
// Panics if key does not fit.
func InitCustom[S State[S]](key []byte, config Config[S]) *Deck[S] {
	size := config.Size()
	if len(key) >= size {
		panic("farfalle: key too long for a single permutation block")
	}
	keyState := config.NewState()
	w := keyState.CopyWriter()
	if err := w.WriteBytes(key); err != nil {
		panic(err)
	}
	if err := w.WriteBytes([]byte{padByte}); err != nil {
		panic(err)
	}
	w.Finish()
	config.PermB(keyState)

	return &Deck[S]{
		key:    keyState,
		state:  config.NewState(),
		config: config,
	}
}

// processBlock xors block with the expansion key, rolls the key, applies
// permutation C to block, then accumulates it into state. block is
// consumed: callers must not reuse its contents afterwards.
func (d *Deck[S]) processBlock(block S) {
	block.XorWith(d.key)
	d.config.RollC(d.key)
	d.config.PermC(block)
	d.state.XorWith(block)
}

// InputWriter returns a writer that absorbs bytes into d. Only one
// InputWriter may be in use for a given Deck at a time (spec §5
// "Ordering").
func (d *Deck[S]) InputWriter() *InputWriter[S] {
	return &InputWriter[S]{
		deck:  d,
		block: d.config.NewState(),
	}
}

// OutputReader returns a detached squeeze reader snapshotting d's current
// state. Creating a reader never mutates d, so arbitrarily many readers
// may coexist and interleave with further absorption.
func (d *Deck[S]) OutputReader() *OutputReader[S] {
	state := d.state.Clone()
	d.config.PermD(state)
	return &OutputReader[S]{
		config: d.config,
		key:    d.key.Clone(),
		state:  state,
	}
}
