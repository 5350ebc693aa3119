package tlv

import (
	"errors"
	"strconv"
)

var (
	// ErrShortHeader indicates that fewer than two bytes were available for the
	// identifier and length octets.
	ErrShortHeader = errors.New("truncated header")
	// ErrTruncatedLength indicates that the long form length announced more
	// length octets than available.
	ErrTruncatedLength = errors.New("truncated length")
	// ErrLengthTooLarge indicates that the length does not fit into an int.
	ErrLengthTooLarge = errors.New("length too large")
	// ErrTruncatedValue indicates that fewer value bytes were available than
	// announced by the length.
	ErrTruncatedValue = errors.New("truncated data value")
)

// SyntaxError represents an error in the TLV encoding. The error value contains
// the location of the error within the input as well as the [Header] of the
// TLV that could not be parsed.
type SyntaxError struct {
	requireKeyedLiterals
	nonComparable

	Err error // underlying error

	// ByteOffset is the location of the malformed TLV relative to the start of
	// the value that contains it. [Parse] always reports offset 0.
	ByteOffset int64

	// Header is the partially parsed header of the malformed TLV. Only the
	// fields parsed before the error was detected are set.
	Header Header
}

func (e *SyntaxError) Unwrap() error { return e.Err }
func (e *SyntaxError) Error() string {
	b := []byte("tlv: syntax error")
	if e.Header != (Header{}) {
		b = append(b, " in "...)
		b = append(b, e.Header.String()...)
	}
	if e.ByteOffset > 0 {
		b = strconv.AppendInt(append(b, " for TLV beginning at offset "...), e.ByteOffset, 10)
	}
	if e.Err != nil {
		b = append(b, ": "...)
		b = append(b, e.Err.Error()...)
	}
	return string(b)
}
