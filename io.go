// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package farfalle

import "code.hybscloud.com/farfalle/internal/crio"

// Writer, Reader, CryptoReader, BufMut and WriteTooLargeError are the
// public byte I/O contract (spec §4.1, §6). They are defined in
// internal/crio and re-exported here so permutation and Farfalle layers
// share one set of types without exposing the internal package.
type (
	Writer             = crio.Writer
	Reader             = crio.Reader
	CryptoReader       = crio.CryptoReader
	BufMut             = crio.BufMut
	WriteTooLargeError = crio.WriteTooLargeError
)

// NewBufMut wraps buf as a write-only cursor.
func NewBufMut(buf []byte) BufMut {
	return crio.NewBufMut(buf)
}
