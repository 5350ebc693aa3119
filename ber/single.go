// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"time"

	"codello.dev/asn1decoder"
	"codello.dev/asn1decoder/tlv"
)

// SingleValue is a view of a single data value. Every method first resolves
// the encoding of the container followed by the requested encoding and then
// decodes the resulting data value.
//
// A SingleValue does not change when a method fails.
type SingleValue struct {
	d     *Decoder
	node  tlv.Node
	enc   asn1.Encoding // encoding of the container, prepended to requests
	depth int
}

// resolve applies the container encoding followed by enc to the data value.
func (v *SingleValue) resolve(enc asn1.Encoding) (tlv.Node, error) {
	return v.d.resolve(v.node, v.enc.Append(enc))
}

// ID returns the identifier of the data value before any encoding is applied.
func (v *SingleValue) ID() asn1.Identifier {
	return v.node.ID
}

// Bool decodes a BOOLEAN. Any non-zero first content octet is true. Empty
// content is false.
func (v *SingleValue) Bool(enc asn1.Encoding) (bool, error) {
	n, err := v.resolve(enc)
	if err != nil {
		return false, err
	}
	return decodeBool(n), nil
}

// Int64 decodes an INTEGER in two's complement form. Empty content decodes
// to 0. A single leading zero octet is ignored. Values that need more than 8
// octets result in [ErrOverflow].
func (v *SingleValue) Int64(enc asn1.Encoding) (int64, error) {
	n, err := v.resolve(enc)
	if err != nil {
		return 0, err
	}
	return decodeInt64(n)
}

// Int works like [SingleValue.Int64] and additionally fails with
// [ErrOverflow] if the value does not fit into an int.
func (v *SingleValue) Int(enc asn1.Encoding) (int, error) {
	return narrow[int](v.Int64(enc))
}

// Int32 works like [SingleValue.Int64] and additionally fails with
// [ErrOverflow] if the value does not fit into an int32.
func (v *SingleValue) Int32(enc asn1.Encoding) (int32, error) {
	return narrow[int32](v.Int64(enc))
}

// Int16 works like [SingleValue.Int64] and additionally fails with
// [ErrOverflow] if the value does not fit into an int16.
func (v *SingleValue) Int16(enc asn1.Encoding) (int16, error) {
	return narrow[int16](v.Int64(enc))
}

// Int8 works like [SingleValue.Int64] and additionally fails with
// [ErrOverflow] if the value does not fit into an int8.
func (v *SingleValue) Int8(enc asn1.Encoding) (int8, error) {
	return narrow[int8](v.Int64(enc))
}

// Bytes returns the content octets of the data value. If the resolved value
// is a UNIVERSAL INTEGER, a single leading zero octet is dropped. The result
// borrows from the input.
func (v *SingleValue) Bytes(enc asn1.Encoding) ([]byte, error) {
	n, err := v.resolve(enc)
	if err != nil {
		return nil, err
	}
	return decodeBytes(n), nil
}

// Text decodes a character string using the character set implied by the
// resolved identifier. An OBJECT IDENTIFIER is rendered in dot notation.
// T61String and the other character strings without a dedicated decoder are
// accepted if they hold valid UTF-8.
func (v *SingleValue) Text(enc asn1.Encoding) (string, error) {
	n, err := v.resolve(enc)
	if err != nil {
		return "", err
	}
	return decodeText(n)
}

// Time decodes a UTCTime or GeneralizedTime.
func (v *SingleValue) Time(enc asn1.Encoding) (time.Time, error) {
	n, err := v.resolve(enc)
	if err != nil {
		return time.Time{}, err
	}
	return decodeTime(n)
}

// Decode decodes a composite value by calling its BerDecode method. The
// [Element] passed to val refers to the unresolved data value and carries the
// container encoding followed by enc. val must be a non-nil pointer. It is
// only modified if decoding succeeds.
func (v *SingleValue) Decode(val BerDecoder, enc asn1.Encoding) error {
	return decodeInto(val, v.d, v.node, v.enc.Append(enc), v.depth+1)
}

// Any decodes the data value without knowing its type in advance. The
// container encoding is resolved first. See [Value] for the mapping of
// identifiers to kinds.
func (v *SingleValue) Any() (Value, error) {
	n, err := v.resolve(asn1.None)
	if err != nil {
		return Value{}, err
	}
	return v.d.decodeAny(n, v.depth)
}

// Sequence resolves enc and returns the nested data values as a [Sequence].
func (v *SingleValue) Sequence(enc asn1.Encoding) (*Sequence, error) {
	n, err := v.resolve(enc)
	if err != nil {
		return nil, err
	}
	if err = v.d.checkDepth(v.depth + 1); err != nil {
		return nil, err
	}
	return &Sequence{elements: newElements(v.d, n, v.depth+1)}, nil
}

// Set resolves enc and returns the nested data values as a [Set].
func (v *SingleValue) Set(enc asn1.Encoding) (*Set, error) {
	n, err := v.resolve(enc)
	if err != nil {
		return nil, err
	}
	if err = v.d.checkDepth(v.depth + 1); err != nil {
		return nil, err
	}
	return &Set{elements: newElements(v.d, n, v.depth+1)}, nil
}

// Value resolves enc and returns the result as a new SingleValue. The
// identifier of the result becomes its container encoding. Requests made on
// the result therefore do not check the tag of their own outermost link.
func (v *SingleValue) Value(enc asn1.Encoding) (*SingleValue, error) {
	n, err := v.resolve(enc)
	if err != nil {
		return nil, err
	}
	return &SingleValue{d: v.d, node: n, enc: asn1.Implicit(n.ID), depth: v.depth}, nil
}
