// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package wordio implements the little-endian word-slice writers and
// readers that back every permutation state's byte view. It is generic over
// the lane width (uint32 for Xoodoo, uint64 for Keccak-p) so the copy/xor
// writer and reader logic is written once instead of per permutation, the
// way the Rust original generates it once per lane width via a macro.
package wordio

import (
	"encoding/binary"

	"code.hybscloud.com/farfalle/internal/crio"
)

// Word is the set of lane types a permutation state can be built from.
type Word interface {
	~uint32 | ~uint64
}

func sizeOf[W Word]() int {
	var w W
	switch any(w).(type) {
	case uint32:
		return 4
	case uint64:
		return 8
	default:
		panic("wordio: unsupported word type")
	}
}

func decodeLE[W Word](b []byte) W {
	switch sizeOf[W]() {
	case 4:
		return W(binary.LittleEndian.Uint32(b))
	default:
		return W(binary.LittleEndian.Uint64(b))
	}
}

func encodeLE[W Word](w W, b []byte) {
	switch sizeOf[W]() {
	case 4:
		binary.LittleEndian.PutUint32(b, uint32(w))
	default:
		binary.LittleEndian.PutUint64(b, uint64(w))
	}
}

// Writer writes little-endian bytes into a slice of words, either
// overwriting them (copy mode) or xor-ing them in (xor mode).
type Writer[W Word] struct {
	words  []W
	filled int
	xor    bool
}

// NewCopyWriter returns a Writer that overwrites words with the bytes
// written to it.
func NewCopyWriter[W Word](words []W) *Writer[W] {
	return &Writer[W]{words: words}
}

// NewXorWriter returns a Writer that xors the bytes written to it into
// words.
func NewXorWriter[W Word](words []W) *Writer[W] {
	return &Writer[W]{words: words, xor: true}
}

// Capacity implements crio.Writer.
func (w *Writer[W]) Capacity() int {
	return len(w.words)*sizeOf[W]() - w.filled
}

func (w *Writer[W]) writePartial(data []byte, offset int) {
	size := sizeOf[W]()
	var scratch [8]byte
	buf := scratch[:size]
	if w.xor {
		for i := range buf {
			buf[i] = 0
		}
	} else {
		encodeLE(w.words[0], buf)
	}
	copy(buf[offset:offset+len(data)], data)
	if w.xor {
		w.words[0] ^= decodeLE[W](buf)
	} else {
		w.words[0] = decodeLE[W](buf)
	}
}

// Skip implements crio.Writer. Bytes skipped retain whatever value the
// underlying words already held (or, for an xor writer, are left
// un-xored), matching the original's "skip never touches memory"
// contract.
func (w *Writer[W]) Skip(n int) error {
	if err := crio.CheckWriteSize(n, w.Capacity()); err != nil {
		return err
	}
	size := sizeOf[W]()
	if w.filled != 0 {
		amt := min(n, size-w.filled)
		w.filled += amt
		n -= amt
		if w.filled == size {
			w.words = w.words[1:]
			w.filled = 0
		}
	}
	full := n / size
	w.words = w.words[full:]
	n -= full * size
	if n > 0 {
		w.filled = n
	}
	return nil
}

// WriteBytes implements crio.Writer.
func (w *Writer[W]) WriteBytes(data []byte) error {
	if err := crio.CheckWriteSize(len(data), w.Capacity()); err != nil {
		return err
	}
	size := sizeOf[W]()
	if w.filled != 0 {
		add := min(len(data), size-w.filled)
		w.writePartial(data[:add], w.filled)
		w.filled += add
		data = data[add:]
		if w.filled == size {
			w.words = w.words[1:]
			w.filled = 0
		}
	}
	for len(data) >= size {
		w.writePartial(data[:size], 0)
		data = data[size:]
		w.words = w.words[1:]
	}
	if len(data) > 0 {
		w.writePartial(data, 0)
		w.filled = len(data)
	}
	return nil
}

// Finish implements crio.Writer. Every write already commits directly into
// the backing word slice, so there is no deferred state to flush.
func (w *Writer[W]) Finish() {}

// Reader reads little-endian bytes out of a slice of words.
type Reader[W Word] struct {
	words  []W
	filled int
}

// NewReader returns a Reader over words.
func NewReader[W Word](words []W) *Reader[W] {
	return &Reader[W]{words: words}
}

// Capacity implements crio.Reader.
func (r *Reader[W]) Capacity() int {
	return len(r.words)*sizeOf[W]() - r.filled
}

// Skip implements crio.Reader.
func (r *Reader[W]) Skip(n int) error {
	if err := crio.CheckWriteSize(n, r.Capacity()); err != nil {
		return err
	}
	size := sizeOf[W]()
	if r.filled != 0 {
		amt := min(n, size-r.filled)
		r.filled += amt
		n -= amt
		if r.filled == size {
			r.words = r.words[1:]
			r.filled = 0
		}
	}
	full := n / size
	r.words = r.words[full:]
	n -= full * size
	if n > 0 {
		r.filled = n
	}
	return nil
}

// WriteTo implements crio.Reader.
func (r *Reader[W]) WriteTo(w crio.Writer, n int) error {
	if err := crio.CheckWriteSize(n, r.Capacity()); err != nil {
		return err
	}
	size := sizeOf[W]()
	var scratch [8]byte
	buf := scratch[:size]
	if r.filled != 0 {
		avail := size - r.filled
		take := min(n, avail)
		encodeLE(r.words[0], buf)
		if err := w.WriteBytes(buf[r.filled : r.filled+take]); err != nil {
			return err
		}
		r.filled += take
		n -= take
		if r.filled == size {
			r.words = r.words[1:]
			r.filled = 0
		}
		if n == 0 {
			return nil
		}
	}
	full := n / size
	for i := 0; i < full; i++ {
		encodeLE(r.words[i], buf)
		if err := w.WriteBytes(buf); err != nil {
			return err
		}
	}
	r.words = r.words[full:]
	n -= full * size
	if n > 0 {
		encodeLE(r.words[0], buf)
		if err := w.WriteBytes(buf[:n]); err != nil {
			return err
		}
		r.filled = n
	}
	return nil
}

// WriteToBuf writes the next len(buf) bytes of r into buf.
func (r *Reader[W]) WriteToBuf(buf []byte) error {
	return crio.WriteToBuf(r, buf)
}
