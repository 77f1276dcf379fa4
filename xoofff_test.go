// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package farfalle

import (
	"bytes"
	"testing"
)

// Xoofff has no bit-exact reference vector available in this module (the
// reference implementation cross-checks against an external Rust crate we
// don't have a Go port of); these tests instead cover the properties
// spec.md §8 demands of every instantiation: determinism, split
// independence, domain separation and multi-read consistency.

func TestXoofffDeterministic(t *testing.T) {
	key := []byte("xoofff test key")
	msg := []byte("hello world")

	run := func() []byte {
		x := NewXoofff(key)
		w := x.InputWriter()
		if err := w.WriteBytes(msg); err != nil {
			t.Fatalf("WriteBytes: %v", err)
		}
		w.Finish()
		out := make([]byte, 32)
		if err := x.OutputReader().WriteToBuf(out); err != nil {
			t.Fatalf("WriteToBuf: %v", err)
		}
		return out
	}

	a, b := run(), run()
	if !bytes.Equal(a, b) {
		t.Fatalf("identical runs diverged: %x != %x", a, b)
	}
}

func TestXoofffSplitInputEquivalence(t *testing.T) {
	key := []byte("xoofff test key")

	full := NewXoofff(key)
	{
		w := full.InputWriter()
		if err := w.WriteBytes([]byte("hello world")); err != nil {
			t.Fatalf("WriteBytes: %v", err)
		}
		w.Finish()
	}

	split := NewXoofff(key)
	{
		w := split.InputWriter()
		if err := w.WriteBytes([]byte("hello ")); err != nil {
			t.Fatalf("WriteBytes: %v", err)
		}
		if err := w.WriteBytes([]byte("world")); err != nil {
			t.Fatalf("WriteBytes: %v", err)
		}
		w.Finish()
	}

	gotFull := make([]byte, 64)
	gotSplit := make([]byte, 64)
	if err := full.OutputReader().WriteToBuf(gotFull); err != nil {
		t.Fatalf("WriteToBuf: %v", err)
	}
	if err := split.OutputReader().WriteToBuf(gotSplit); err != nil {
		t.Fatalf("WriteToBuf: %v", err)
	}
	if !bytes.Equal(gotFull, gotSplit) {
		t.Fatalf("split-input accumulators diverged: %x != %x", gotFull, gotSplit)
	}
}

func TestXoofffDomainSeparation(t *testing.T) {
	key := []byte("xoofff test key")

	asOne := NewXoofff(key)
	{
		w := asOne.InputWriter()
		if err := w.WriteBytes([]byte("hello world")); err != nil {
			t.Fatalf("WriteBytes: %v", err)
		}
		w.Finish()
	}

	asTwo := NewXoofff(key)
	{
		w := asTwo.InputWriter()
		if err := w.WriteBytes([]byte("hello")); err != nil {
			t.Fatalf("WriteBytes: %v", err)
		}
		w.Finish()
	}
	{
		w := asTwo.InputWriter()
		if err := w.WriteBytes([]byte("world")); err != nil {
			t.Fatalf("WriteBytes: %v", err)
		}
		w.Finish()
	}

	gotOne := make([]byte, 32)
	gotTwo := make([]byte, 32)
	if err := asOne.OutputReader().WriteToBuf(gotOne); err != nil {
		t.Fatalf("WriteToBuf: %v", err)
	}
	if err := asTwo.OutputReader().WriteToBuf(gotTwo); err != nil {
		t.Fatalf("WriteToBuf: %v", err)
	}
	if bytes.Equal(gotOne, gotTwo) {
		t.Fatal("two separately-finished input streams must not equal one combined stream")
	}
}

func TestXoofffMultiOutputConsistentWithOneShot(t *testing.T) {
	key := []byte("xoofff test key")
	msg := []byte("hello world")

	oneShot := NewXoofff(key)
	{
		w := oneShot.InputWriter()
		if err := w.WriteBytes(msg); err != nil {
			t.Fatalf("WriteBytes: %v", err)
		}
		w.Finish()
	}
	want := make([]byte, 128)
	if err := oneShot.OutputReader().WriteToBuf(want); err != nil {
		t.Fatalf("WriteToBuf: %v", err)
	}

	chunked := NewXoofff(key)
	{
		w := chunked.InputWriter()
		if err := w.WriteBytes(msg); err != nil {
			t.Fatalf("WriteBytes: %v", err)
		}
		w.Finish()
	}
	reader := chunked.OutputReader()
	got := make([]byte, 128)
	for i := 0; i < len(got); i += 32 {
		if err := reader.WriteToBuf(got[i : i+32]); err != nil {
			t.Fatalf("WriteToBuf: %v", err)
		}
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("chunked reads diverged from one-shot read: %x != %x", got, want)
	}
}

func TestXoofffKeyTooLongPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewXoofff(make([]byte, 48))
}
