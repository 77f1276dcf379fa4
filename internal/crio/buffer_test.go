// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package crio

import "testing"

func TestBufMutWriterWrite(t *testing.T) {
	buf := make([]byte, 4)
	w := NewBufMut(buf)
	if err := w.WriteBytes([]byte{1, 2, 3}); err != nil {
		t.Fatalf("WriteBytes: %v", err)
	}
	w.Finish()
	if got, want := buf[:3], []byte{1, 2, 3}; string(got) != string(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestBufMutWriterWriteOutOfBounds(t *testing.T) {
	buf := make([]byte, 2)
	w := NewBufMut(buf)
	err := w.WriteBytes([]byte{1, 2, 3})
	if err == nil {
		t.Fatal("expected WriteTooLargeError")
	}
	var wtl *WriteTooLargeError
	if !asWriteTooLarge(err, &wtl) {
		t.Fatalf("expected *WriteTooLargeError, got %T", err)
	}
	if wtl.Requested != 3 || wtl.Capacity != 2 {
		t.Fatalf("got %+v", wtl)
	}
}

func TestBufMutWriterWriteWrite(t *testing.T) {
	buf := make([]byte, 4)
	w := NewBufMut(buf)
	if err := w.WriteBytes([]byte{1, 2}); err != nil {
		t.Fatalf("WriteBytes: %v", err)
	}
	if err := w.WriteBytes([]byte{3, 4}); err != nil {
		t.Fatalf("WriteBytes: %v", err)
	}
	w.Finish()
	if got, want := buf, []byte{1, 2, 3, 4}; string(got) != string(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestBufMutWriterSkip(t *testing.T) {
	buf := make([]byte, 4)
	w := NewBufMut(buf)
	if err := w.Skip(2); err != nil {
		t.Fatalf("Skip: %v", err)
	}
	if err := w.WriteBytes([]byte{3, 4}); err != nil {
		t.Fatalf("WriteBytes: %v", err)
	}
	w.Finish()
	if got, want := buf[2:], []byte{3, 4}; string(got) != string(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestBufMutWriterSkipOutOfBounds(t *testing.T) {
	buf := make([]byte, 2)
	w := NewBufMut(buf)
	if err := w.Skip(3); err == nil {
		t.Fatal("expected WriteTooLargeError")
	}
}

func TestBufMutWriterSkipCapacity(t *testing.T) {
	buf := make([]byte, 4)
	w := NewBufMut(buf)
	if err := w.Skip(1); err != nil {
		t.Fatalf("Skip: %v", err)
	}
	if got, want := w.Capacity(), 3; got != want {
		t.Fatalf("got %d want %d", got, want)
	}
}

func TestBufMutWriterSkipWrite(t *testing.T) {
	buf := make([]byte, 4)
	w := NewBufMut(buf)
	if err := w.Skip(1); err != nil {
		t.Fatalf("Skip: %v", err)
	}
	if err := w.WriteBytes([]byte{9, 9}); err != nil {
		t.Fatalf("WriteBytes: %v", err)
	}
	w.Finish()
	if got, want := buf[1:3], []byte{9, 9}; string(got) != string(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func asWriteTooLarge(err error, target **WriteTooLargeError) bool {
	wtl, ok := err.(*WriteTooLargeError)
	if ok {
		*target = wtl
	}
	return ok
}
