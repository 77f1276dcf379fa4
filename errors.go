// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package farfalle

// WriteTooLargeError (re-exported from internal/crio as the WriteTooLargeError
// alias in io.go) is the only runtime error this package raises. A key too
// long for a single block and a round count out of range are programmer
// errors and panic immediately rather than being wrapped in an error value.
// Using an InputWriter after Finish is not detected: it does not panic, and
// further writes keep absorbing into the same Deck.
