// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"errors"
	"testing"

	"codello.dev/asn1decoder"
)

func TestDecodeText(t *testing.T) {
	testDecode(t, DecodeText, map[string]testCase[string]{
		"UTF8String":        {"héllo", []byte{0x0C, 0x06, 'h', 0xC3, 0xA9, 'l', 'l', 'o'}, asn1.UTF8String, nil},
		"PrintableString":   {"Test 1", []byte{0x13, 0x06, 'T', 'e', 's', 't', ' ', '1'}, asn1.PrintableString, nil},
		"NumericString":     {"123", []byte{0x12, 0x03, '1', '2', '3'}, asn1.NumericString, nil},
		"IA5String":         {"a@b", []byte{0x16, 0x03, 'a', '@', 'b'}, asn1.IA5String, nil},
		"VisibleString":     {"Hi", []byte{0x1A, 0x02, 'H', 'i'}, asn1.VisibleString, nil},
		"T61String":         {"Hi", []byte{0x14, 0x02, 'H', 'i'}, asn1.T61String, nil},
		"GeneralString":     {"Hi", []byte{0x1B, 0x02, 'H', 'i'}, asn1.GeneralString, nil},
		"BMPString":         {"Hi", []byte{0x1E, 0x04, 0x00, 'H', 0x00, 'i'}, asn1.BMPString, nil},
		"BMPStringUmlaut":   {"ä", []byte{0x1E, 0x02, 0x00, 0xE4}, asn1.BMPString, nil},
		"BMPSurrogatePair":  {"😀", []byte{0x1E, 0x04, 0xD8, 0x3D, 0xDE, 0x00}, asn1.BMPString, nil},
		"Empty":             {"", []byte{0x0C, 0x00}, asn1.UTF8String, nil},
		"ImplicitIA5":       {"Hi", []byte{0x80, 0x02, 'H', 'i'}, asn1.Implicit(asn1.ContextSpecific(0)).Append(asn1.IA5String), nil},
		"NoEncoding":        {"Hi", []byte{0x0C, 0x02, 'H', 'i'}, asn1.None, nil},
		"InvalidUTF8":       {"", []byte{0x0C, 0x02, 0xC3, 0x28}, asn1.UTF8String, ErrInvalidStringEncoding},
		"InvalidIA5":        {"", []byte{0x16, 0x01, 0x80}, asn1.IA5String, ErrInvalidStringEncoding},
		"InvalidVisible":    {"", []byte{0x1A, 0x02, 0xC3, 0xA4}, asn1.VisibleString, ErrInvalidStringEncoding},
		"InvalidT61":        {"", []byte{0x14, 0x01, 0xFF}, asn1.T61String, ErrInvalidStringEncoding},
		"BMPOddLength":      {"", []byte{0x1E, 0x03, 0x00, 'H', 0x00}, asn1.BMPString, ErrInvalidStringEncoding},
		"BMPLoneHigh":       {"", []byte{0x1E, 0x02, 0xD8, 0x3D}, asn1.BMPString, ErrInvalidStringEncoding},
		"BMPHighThenLetter": {"", []byte{0x1E, 0x04, 0xD8, 0x3D, 0x00, 'A'}, asn1.BMPString, ErrInvalidStringEncoding},
		"BMPLoneLow":        {"", []byte{0x1E, 0x04, 0xDE, 0x00, 0xD8, 0x3D}, asn1.BMPString, ErrInvalidStringEncoding},
		"Integer":           {"", []byte{0x02, 0x01, 0x01}, asn1.Integer, &TypeMismatchError{}},
		"ContextSpecific":   {"", []byte{0x80, 0x02, 'H', 'i'}, asn1.Implicit(asn1.ContextSpecific(0)), &TypeMismatchError{}},
		"Mismatch":          {"", []byte{0x0C, 0x02, 'H', 'i'}, asn1.IA5String, &TypeMismatchError{}},
	})
}

func TestDecodeText_ObjectIdentifier(t *testing.T) {
	testDecode(t, DecodeText, map[string]testCase[string]{
		"RSA":           {"1.2.840.113549", []byte{0x06, 0x06, 0x2A, 0x86, 0x48, 0x86, 0xF7, 0x0D}, asn1.ObjectIdentifier, nil},
		"CommonName":    {"2.5.4.3", []byte{0x06, 0x03, 0x55, 0x04, 0x03}, asn1.ObjectIdentifier, nil},
		"FirstOnly":     {"1.2", []byte{0x06, 0x01, 0x2A}, asn1.ObjectIdentifier, nil},
		"Empty":         {"", []byte{0x06, 0x00}, asn1.ObjectIdentifier, nil},
		"TruncatedArc":  {"1.2.840", []byte{0x06, 0x04, 0x2A, 0x86, 0x48, 0x86}, asn1.ObjectIdentifier, nil},
		"LargeArc":      {"1.2.18446744073709551615", []byte{0x06, 0x0B, 0x2A, 0x81, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x7F}, asn1.ObjectIdentifier, nil},
		"ArcOverflow":   {"", []byte{0x06, 0x0B, 0x2A, 0x82, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x00}, asn1.ObjectIdentifier, ErrInvalidStringEncoding},
		"WrongEncoding": {"", []byte{0x06, 0x01, 0x2A}, asn1.RelativeOID, &TypeMismatchError{}},
	})
}

func TestDecodeText_MismatchExpected(t *testing.T) {
	_, err := DecodeText([]byte{0x04, 0x01, 'a'}, asn1.None)
	var target *TypeMismatchError
	if !errors.As(err, &target) {
		t.Fatalf("DecodeText() error = %v, want *TypeMismatchError", err)
	}
	if target.Expected != asn1.Universal(asn1.TagUTF8String) {
		t.Errorf("TypeMismatchError.Expected = %v, want %v", target.Expected, asn1.Universal(asn1.TagUTF8String))
	}
	if target.Actual != asn1.Universal(asn1.TagOctetString) {
		t.Errorf("TypeMismatchError.Actual = %v, want %v", target.Actual, asn1.Universal(asn1.TagOctetString))
	}
}

func TestDecodeOID(t *testing.T) {
	got, err := decodeOID([]byte{0x2A, 0x86, 0x48, 0x86, 0xF7, 0x0D, 0x01, 0x01, 0x0B})
	if err != nil {
		t.Fatalf("decodeOID() error = %v", err)
	}
	want := asn1.OID{1, 2, 840, 113549, 1, 1, 11}
	if !got.Equal(want) {
		t.Errorf("decodeOID() = %v, want %v", got, want)
	}
}
