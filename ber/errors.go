// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"errors"
	"strconv"
	"strings"

	"codello.dev/asn1decoder"
)

// Errors without parameters. Use errors.Is to test for them.
var (
	// ErrOverflow indicates that an integer does not fit the requested width.
	ErrOverflow = errors.New("ber: integer overflow")
	// ErrInvalidStringEncoding indicates that the content octets of a string
	// are not valid in the character set selected by its tag.
	ErrInvalidStringEncoding = errors.New("ber: invalid string encoding")
	// ErrEndOfData indicates that a container has no more members to decode.
	ErrEndOfData = errors.New("ber: end of data reached")
)

// A FormatError indicates that the input is not a valid TLV encoding. Err is
// usually a [*codello.dev/asn1decoder/tlv.SyntaxError].
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	if e.Err == nil {
		return "ber: format error"
	}
	return "ber: format error: " + e.Err.Error()
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// A TypeMismatchError indicates that a data value was tagged differently than
// expected.
type TypeMismatchError struct {
	Expected asn1.Identifier
	Actual   asn1.Identifier
}

func (e *TypeMismatchError) Error() string {
	var s strings.Builder
	s.WriteString("ber: type mismatch: expected ")
	s.WriteString(e.Expected.String())
	s.WriteString(", got ")
	s.WriteString(e.Actual.String())
	return s.String()
}

// A ValueNotFoundError indicates that an EXPLICIT tag did not contain a nested
// data value.
type ValueNotFoundError struct {
	ID asn1.Identifier // identifier of the empty wrapper
}

func (e *ValueNotFoundError) Error() string {
	return "ber: no value found in explicit " + e.ID.String()
}

// A DateFormatError indicates that the content of a time value does not match
// any accepted format.
type DateFormatError struct {
	Text string
}

func (e *DateFormatError) Error() string {
	return "ber: invalid date format " + strconv.Quote(e.Text)
}

// An InvalidEnumError indicates that a decoded integer is not a known
// enumerator of the target type. It is not returned by this package itself but
// is provided for implementations of [BerDecoder].
type InvalidEnumError struct {
	Value int64
}

func (e *InvalidEnumError) Error() string {
	return "ber: invalid enumerated value " + strconv.FormatInt(e.Value, 10)
}

// A TypeNotFoundError indicates that no remaining member of a [Set] could be
// decoded with the requested encoding.
type TypeNotFoundError struct {
	Encoding asn1.Encoding
}

func (e *TypeNotFoundError) Error() string {
	return "ber: no set member matches " + e.Encoding.String()
}
