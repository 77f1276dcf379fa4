// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package farfalle

import "code.hybscloud.com/farfalle/internal/crio"

// OutputReader squeezes pseudorandom bytes out of a Farfalle accumulator
// snapshot (spec §4.4). It owns its own clone of the expansion key and
// state, so it never observes, and never causes, further mutation of the
// Deck it was created from.
type OutputReader[S State[S]] struct {
	config       Config[S]
	key          S
	state        S
	outputBuffer S
	buffered     int
}

func (r *OutputReader[S]) nextOutBlock() {
	r.outputBuffer = r.state.Clone()
	r.config.RollE(r.state)
	r.config.PermE(r.outputBuffer)
	r.outputBuffer.XorWith(r.key)
}

// Capacity always reports crio.MaxCapacity: output readers can produce an
// unbounded amount of pseudorandom output.
func (r *OutputReader[S]) Capacity() int {
	return crio.MaxCapacity
}

// Skip discards the next n bytes of output, evolving state block by block
// exactly as WriteTo would (spec §9, resolving the reader-skip-after-
// buffering open question).
func (r *OutputReader[S]) Skip(n int) error {
	size := r.config.Size()

	if r.buffered != 0 {
		outSize := min(r.buffered, n)
		n -= outSize
		r.buffered -= outSize
	}

	remainder := n % size
	nBlocks := (n - remainder) / size
	for i := 0; i < nBlocks; i++ {
		r.nextOutBlock()
	}
	if remainder != 0 {
		r.nextOutBlock()
		r.buffered = size - remainder
	}
	return nil
}

// WriteTo writes the next n bytes of output into w.
func (r *OutputReader[S]) WriteTo(w crio.Writer, n int) error {
	if err := crio.CheckWriteSize(n, w.Capacity()); err != nil {
		return err
	}
	size := r.config.Size()

	if r.buffered != 0 {
		outSize := min(r.buffered, n)
		reader := r.outputBuffer.Reader()
		if err := reader.Skip(size - r.buffered); err != nil {
			return err
		}
		if err := reader.WriteTo(w, outSize); err != nil {
			return err
		}
		n -= outSize
		r.buffered -= outSize
	}

	remainder := n % size
	nBlocks := (n - remainder) / size
	for i := 0; i < nBlocks; i++ {
		r.nextOutBlock()
		if err := r.outputBuffer.Reader().WriteTo(w, size); err != nil {
			return err
		}
	}
	if remainder != 0 {
		r.nextOutBlock()
		if err := r.outputBuffer.Reader().WriteTo(w, remainder); err != nil {
			return err
		}
		r.buffered = size - remainder
	}
	return nil
}

// WriteToBuf writes the next len(buf) bytes of output into buf.
func (r *OutputReader[S]) WriteToBuf(buf []byte) error {
	return crio.WriteToBuf(r, buf)
}
