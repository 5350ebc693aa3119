// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asn1 defines the vocabulary shared by the decoding packages of this
// module: identifier octets, tag numbers assigned in [Rec. ITU-T X.680], and
// the [Encoding] type that describes how a value is tagged on the wire.
// Decoding of BER-encoded data is implemented by the [codello.dev/asn1decoder/ber]
// package on top of the syntactic layer in [codello.dev/asn1decoder/tlv].
//
// # Identifiers
//
// Every encoded value begins with a single identifier octet. The octet holds
// the class in bits 8 and 7, the constructed flag in bit 6 and the tag number
// in bits 5 to 1. The [Identifier] type is that octet. High tag numbers (31 and
// above) are not supported.
//
// # Encodings
//
// An [Encoding] describes the tagging of an expected value. It is a chain of
// IMPLICIT and EXPLICIT links terminated by the empty encoding [None]. Take the
// following definition:
//
//	DEFINITIONS
//	IMPLICIT TAGS
//	BEGIN
//
//	Outer ::= [APPLICATION 1] EXPLICIT [3] IMPLICIT INTEGER
//	END
//
// It can be expressed as
//
//	asn1.Explicit(asn1.Application(1).Constructed()).Append(asn1.Implicit(asn1.ContextSpecific(3)))
//
// or, equivalently, via [ParseEncoding]:
//
//	asn1.MustParseEncoding("application,tag:1,explicit/tag:3")
//
// [Rec. ITU-T X.680]: https://www.itu.int/rec/T-REC-X.680
package asn1

import (
	"strconv"
	"strings"
)

// Class holds the class part of an ASN.1 tag. The class acts as a namespace for
// the tag number. A Class value is an unsigned 2-bit integer. Class values
// whose value exceeds 2 bits are invalid.
//
//go:generate stringer -type=Class -trimprefix=Class
type Class uint8

// IsValid reports whether c is a valid Class value.
func (c Class) IsValid() bool {
	return c <= 3
}

// Predefined [Class] constants. These are all the possible values that can be
// encoded in the [Class] type.
const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

// Identifier is a single BER identifier octet. Two identifiers are equal if
// their octets are equal.
type Identifier uint8

const (
	classMask       = 0xc0
	constructedFlag = 0x20
	numberMask      = 0x1f
)

// NewIdentifier builds an identifier from its parts. The tag number is
// truncated to 5 bits.
func NewIdentifier(c Class, number uint8, constructed bool) Identifier {
	id := Identifier(c&0b11)<<6 | Identifier(number&numberMask)
	if constructed {
		id |= constructedFlag
	}
	return id
}

// Universal returns the primitive [ClassUniversal] identifier for tag number n.
func Universal(n uint8) Identifier { return NewIdentifier(ClassUniversal, n, false) }

// Application returns the primitive [ClassApplication] identifier for tag
// number n.
func Application(n uint8) Identifier { return NewIdentifier(ClassApplication, n, false) }

// ContextSpecific returns the primitive [ClassContextSpecific] identifier for
// tag number n.
func ContextSpecific(n uint8) Identifier { return NewIdentifier(ClassContextSpecific, n, false) }

// Private returns the primitive [ClassPrivate] identifier for tag number n.
func Private(n uint8) Identifier { return NewIdentifier(ClassPrivate, n, false) }

// Class returns the class bits of id.
func (id Identifier) Class() Class {
	return Class(id&classMask) >> 6
}

// Number returns the tag number of id.
func (id Identifier) Number() uint8 {
	return uint8(id & numberMask)
}

// IsConstructed reports whether id has the constructed flag set.
func (id Identifier) IsConstructed() bool {
	return id&constructedFlag != 0
}

// IsPrimitive reports whether id has the constructed flag cleared.
func (id Identifier) IsPrimitive() bool {
	return id&constructedFlag == 0
}

// Constructed returns id with the constructed flag set.
func (id Identifier) Constructed() Identifier {
	return id | constructedFlag
}

// SameTag reports whether id and other share class and tag number. The
// constructed flag is not compared.
func (id Identifier) SameTag(other Identifier) bool {
	return (id^other)&^constructedFlag == 0
}

// String returns a string representation id in a format similar to the one
// used in ASN.1 notation. The tag number is enclosed by square brackets and
// prefixed with the class used. To avoid ambiguity the UNIVERSAL word is used
// for universal tags, although this is not valid ASN.1 syntax.
func (id Identifier) String() string {
	n := strconv.FormatUint(uint64(id.Number()), 10)
	if id.Class() == ClassContextSpecific {
		return "[" + n + "]"
	}
	return "[" + strings.ToUpper(id.Class().String()) + " " + n + "]"
}

// TagReserved is a reserved tag number in the [ClassUniversal] namespace to be
// used by encoding rules. This assignment is defined in Rec. ITU-T X.680,
// Section 8, Table 1.
const TagReserved = 0

// These are the ASN.1 tag numbers defined in the [ClassUniversal] namespace
// that fit into a single identifier octet. These assignments are defined in
// Rec. ITU-T X.680, Section 8, Table 1.
const (
	TagEndOfContent     uint8 = TagReserved
	TagBoolean          uint8 = 1
	TagInteger          uint8 = 2
	TagBitString        uint8 = 3
	TagOctetString      uint8 = 4
	TagNull             uint8 = 5
	TagOID              uint8 = 6
	TagObjectDescriptor uint8 = 7
	TagExternal         uint8 = 8
	TagReal             uint8 = 9
	TagEnumerated       uint8 = 10
	TagEmbeddedPDV      uint8 = 11
	TagUTF8String       uint8 = 12
	TagRelativeOID      uint8 = 13
	TagTime             uint8 = 14
	TagSequence         uint8 = 16
	TagSet              uint8 = 17
	TagNumericString    uint8 = 18
	TagPrintableString  uint8 = 19
	TagTeletexString    uint8 = 20
	TagT61String              = TagTeletexString
	TagVideotexString   uint8 = 21
	TagIA5String        uint8 = 22
	TagUTCTime          uint8 = 23
	TagGeneralizedTime  uint8 = 24
	TagGraphicString    uint8 = 25
	TagVisibleString    uint8 = 26
	TagISO646String           = TagVisibleString
	TagGeneralString    uint8 = 27
	TagUniversalString  uint8 = 28
	TagCharacterString  uint8 = 29
	TagBMPString        uint8 = 30
)
