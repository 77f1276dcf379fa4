// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package farfalle implements the Farfalle deck-function construction and
// its two named instantiations, Kravatte (over Keccak-p[1600,6]) and Xoofff
// (over Xoodoo[6]).
//
// A deck function is a doubly-extendable keyed function: it absorbs an
// arbitrary amount of keyed input through an InputWriter, then produces an
// arbitrary amount of pseudorandom output through any number of independent
// OutputReaders, each a snapshot that leaves the underlying accumulator
// untouched.
//
//	kra := farfalle.NewKravatte([]byte("a secret key"))
//	w := kra.InputWriter()
//	w.WriteBytes([]byte("hello "))
//	w.WriteBytes([]byte("world"))
//	w.Finish()
//
//	out := make([]byte, 64)
//	kra.OutputReader().WriteToBuf(out)
package farfalle
