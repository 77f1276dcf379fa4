// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package farfalle

import "code.hybscloud.com/farfalle/internal/crio"

// InputWriter accumulates bytes into a scratch block and feeds full blocks
// through the Deck's compression step (spec §4.3). It borrows the Deck
// mutably for its lifetime; call Finish exactly once when done.
type InputWriter[S State[S]] struct {
	deck   *Deck[S]
	block  S
	filled int
}

func (w *InputWriter[S]) processBlock() {
	w.deck.processBlock(w.block)
	w.filled = 0
}

// Capacity always reports crio.MaxCapacity: input writers accept an
// unbounded amount of data.
func (w *InputWriter[S]) Capacity() int {
	return crio.MaxCapacity
}

// Skip is a documented no-op (spec §9 "Open question"): it neither fails
// nor absorbs n zero bytes.
func (w *InputWriter[S]) Skip(n int) error {
	return nil
}

// WriteBytes absorbs data, processing every full block it completes along
// the way. The final partial block, if any, is buffered until the next
// call or Finish.
func (w *InputWriter[S]) WriteBytes(data []byte) error {
	size := w.deck.config.Size()

	if w.filled != 0 {
		addPartial := min(len(data), size-w.filled)
		oldFilled := w.filled
		w.filled += addPartial

		bw := w.block.CopyWriter()
		if err := bw.Skip(oldFilled); err != nil {
			return err
		}
		if err := bw.WriteBytes(data[:addPartial]); err != nil {
			return err
		}
		bw.Finish()

		data = data[addPartial:]
		if w.filled == size {
			w.processBlock()
		}
	}

	for len(data) >= size {
		bw := w.block.CopyWriter()
		if err := bw.WriteBytes(data[:size]); err != nil {
			return err
		}
		bw.Finish()
		data = data[size:]
		w.processBlock()
	}

	if len(data) > 0 {
		w.filled = len(data)
		bw := w.block.CopyWriter()
		if err := bw.WriteBytes(data); err != nil {
			return err
		}
		bw.Finish()
	}

	return nil
}

// Finish pads the final block with a single 0x01 byte, processes it, and
// rolls the expansion key once more to domain-separate this input stream
// from whatever is absorbed next. The pad write may itself complete and
// process a block (when the buffered tail was exactly one byte short);
// Finish then unconditionally processes the block buffer again, so a
// message whose length is one byte short of a block boundary is followed
// by one extra block made of the buffer's stale, already-permuted
// contents. This mirrors the reference construction exactly,
// including that the block buffer's bytes past the filled offset are never
// cleared between calls — they retain whatever a previous full-block
// process left there.
func (w *InputWriter[S]) Finish() {
	if err := w.WriteBytes([]byte{padByte}); err != nil {
		panic(err)
	}
	w.processBlock()
	w.deck.config.RollC(w.deck.key)
}
