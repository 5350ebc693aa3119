// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ber implements decoding of ASN.1 values encoded with the Basic
// Encoding Rules (BER). The Basic Encoding Rules are defined in
// [Rec. ITU-T X.690].
// See also “[A Layman's Guide to a Subset of ASN.1, BER, and DER]”.
//
// Decoding is driven by the caller. Every decode operation takes an
// [asn1.Encoding] describing the expected tagging of the value. Primitive
// values are decoded by the package level functions such as [DecodeInt] or
// [DecodeText]. Composite types implement [BerDecoder] and pull their members
// from the [Element] passed to them:
//
//	type Record struct {
//		ID   int64
//		Name string
//	}
//
//	func (r *Record) BerDecode(e *ber.Element) error {
//		seq, err := e.Sequence(asn1.Sequence)
//		if err != nil {
//			return err
//		}
//		if r.ID, err = seq.Int64(asn1.Integer); err != nil {
//			return err
//		}
//		r.Name, err = seq.Text(asn1.UTF8String)
//		return err
//	}
//
// Values of a SEQUENCE are consumed in order through a [Sequence]. Values of a
// SET are matched by trying the remaining members in order through a [Set].
//
// The following limitations apply:
//
//   - Only single octet identifiers are supported (tag numbers up to 30).
//   - The indefinite-length form is not supported.
//   - Strings using the constructed encoding are not concatenated.
//   - Integers are limited to 64 bits, except for [Value] which renders larger
//     integers as decimal text.
//   - DER canonicality is not validated.
//
// Decoded byte slices borrow from the input. The input must not be modified
// while decoded values are in use.
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
// [A Layman's Guide to a Subset of ASN.1, BER, and DER]: http://luca.ntop.org/Teaching/Appunti/asn1.html
package ber

import (
	"reflect"

	"codello.dev/asn1decoder"
	"codello.dev/asn1decoder/tlv"
)

// BerDecoder is the interface implemented by types that can decode themselves
// from a BER-encoded data value. Implementations request exactly one container
// from e and populate themselves from it.
//
// Errors returned by the container must be passed on unchanged. A type that
// detects an invalid value on its own should return an [*InvalidEnumError] or
// a [*FormatError].
type BerDecoder interface {
	BerDecode(e *Element) error
}

// Element is the handle passed to [BerDecoder.BerDecode]. It refers to the
// data value being decoded together with the tagging accumulated by the
// caller. An Element is only valid during the call of BerDecode.
type Element struct {
	v SingleValue
}

// Sequence resolves enc and returns the members of the value as an ordered
// [Sequence].
func (e *Element) Sequence(enc asn1.Encoding) (*Sequence, error) {
	return e.v.Sequence(enc)
}

// Set resolves enc and returns the members of the value as an unordered
// [Set].
func (e *Element) Set(enc asn1.Encoding) (*Set, error) {
	return e.v.Set(enc)
}

// Value resolves enc and returns the resulting data value as a
// [SingleValue].
func (e *Element) Value(enc asn1.Encoding) (*SingleValue, error) {
	return e.v.Value(enc)
}

// InvalidDecodeError indicates that an invalid value was passed to a decoding
// function. It reports a programming error rather than malformed input.
type InvalidDecodeError struct {
	Value reflect.Value
}

func (e *InvalidDecodeError) Error() string {
	if !e.Value.IsValid() {
		return "ber: cannot decode into nil value"
	}
	if e.Value.Kind() == reflect.Pointer && e.Value.IsNil() {
		return "ber: cannot decode into nil pointer of type " + e.Value.Type().String()
	}
	return "ber: cannot decode into non-pointer type " + e.Value.Type().String()
}

// decodeInto runs the BerDecode method of a fresh value of the type pointed to
// by val and stores the result in val only if decoding succeeds.
func decodeInto(val BerDecoder, d *Decoder, n tlv.Node, enc asn1.Encoding, depth int) error {
	rv := reflect.ValueOf(val)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &InvalidDecodeError{Value: rv}
	}
	if err := d.checkDepth(depth); err != nil {
		return err
	}
	fresh := reflect.New(rv.Elem().Type())
	e := &Element{SingleValue{d: d, node: n, enc: enc, depth: depth}}
	if err := fresh.Interface().(BerDecoder).BerDecode(e); err != nil {
		return err
	}
	rv.Elem().Set(fresh.Elem())
	return nil
}
