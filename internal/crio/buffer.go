// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package crio

// BufMut is a write-only cursor over a byte slice. Unlike the Rust original
// it needs no MaybeUninit dance: Go slices are always zero-initialized, so
// reading bytes that haven't been explicitly written yet is safe, it just
// observes zero (or whatever was previously written into the same backing
// array).
type BufMut struct {
	buf []byte
}

// NewBufMut wraps buf for writing.
func NewBufMut(buf []byte) BufMut {
	return BufMut{buf: buf}
}

// Len returns the number of bytes still addressable by this cursor.
func (b BufMut) Len() int {
	return len(b.buf)
}

// Copy overwrites the first len(data) bytes of the cursor with data. Panics
// if data is longer than the cursor.
func (b BufMut) Copy(data []byte) {
	if len(data) > len(b.buf) {
		panic("crio: copy larger than buffer")
	}
	copy(b.buf, data)
}

// Restrict returns the sub-cursor [from:from+n), panicking if it doesn't
// fit.
func (b BufMut) Restrict(from, n int) BufMut {
	if from < 0 || n < 0 || from+n > len(b.buf) {
		panic("crio: restrict out of range")
	}
	return BufMut{buf: b.buf[from : from+n]}
}

// Capacity implements Writer.
func (b *BufMut) Capacity() int { return len(b.buf) }

// Skip implements Writer.
func (b *BufMut) Skip(n int) error {
	if err := CheckWriteSize(n, b.Capacity()); err != nil {
		return err
	}
	b.buf = b.buf[n:]
	return nil
}

// WriteBytes implements Writer.
func (b *BufMut) WriteBytes(data []byte) error {
	if err := CheckWriteSize(len(data), b.Capacity()); err != nil {
		return err
	}
	copy(b.buf, data)
	b.buf = b.buf[len(data):]
	return nil
}

// Finish implements Writer. BufMut needs no commit step.
func (b *BufMut) Finish() {}
