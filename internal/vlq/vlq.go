// Package vlq implements decoding of [Variable-length quantities] as used by
// the arcs of BER-encoded object identifiers. A VLQ is a base-128
// representation of an unsigned integer, most significant group first, where
// the eighth bit of every byte but the last marks continuation.
//
// [Variable-length quantities]: https://en.wikipedia.org/wiki/Variable-length_quantity
package vlq

import (
	"errors"
	"io"
	"math/bits"
	"unsafe"
)

var errOverflow = errors.New("vlq too large for target type")

// Read parses an unsigned VLQ from r. The maximum allowed value is limited by
// the size of T.
//
// Read will only read bytes belonging to the encoded VLQ. If r returns io.EOF
// on the first read, the returned error will be io.EOF as well. If r ends
// before the last byte of the VLQ, io.ErrUnexpectedEOF is returned.
//
// Leading zero groups (encoded as 0x80 bytes) are ignored and do not count
// towards the size limit.
func Read[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](r io.ByteReader) (ret T, err error) {
	b, err := r.ReadByte()
	if err != nil {
		// io.EOF stays io.EOF
		return 0, err
	}

	ret = T(b & 0x7f)
	numBits := bits.Len8(b & 0x7f)

	for b&0x80 != 0 {
		if b, err = r.ReadByte(); err != nil {
			break
		}
		ret <<= 7
		ret |= T(b & 0x7f)

		if numBits == 0 {
			numBits = bits.Len8(b & 0x7f)
		} else {
			numBits += 7
		}
		if numBits > int(unsafe.Sizeof(ret)*8) {
			return 0, errOverflow
		}
	}
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return ret, err
}
