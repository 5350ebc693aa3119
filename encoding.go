// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1

import (
	"errors"
	"fmt"
	"strings"

	"codello.dev/asn1decoder/internal"
)

// Mode is the kind of a single link in an [Encoding] chain.
//
//go:generate stringer -type=Mode -trimprefix=Mode
type Mode uint8

const (
	ModeNone Mode = iota
	ModeImplicit
	ModeExplicit
)

// Encoding describes how an expected value is tagged. An Encoding is either
// [None] or a link with a [Mode], an [Identifier] and the encoding of the inner
// value. Encoding values are immutable and can be shared freely.
//
// The zero value is [None].
type Encoding struct {
	l *link
}

type link struct {
	mode Mode
	id   Identifier
	next Encoding
}

// None is the empty encoding. It matches any value without checking its tag.
var None = Encoding{}

// Implicit returns an encoding that replaces the tag of the inner value with
// id.
func Implicit(id Identifier) Encoding {
	return Encoding{&link{mode: ModeImplicit, id: id}}
}

// Explicit returns an encoding that wraps the inner value in a constructed
// value tagged with id.
func Explicit(id Identifier) Encoding {
	return Encoding{&link{mode: ModeExplicit, id: id}}
}

// Universal encodings of the types defined in Rec. ITU-T X.680. SEQUENCE and
// SET use constructed identifiers, all others are primitive.
var (
	EndOfContent     = Implicit(Universal(TagEndOfContent))
	Boolean          = Implicit(Universal(TagBoolean))
	Integer          = Implicit(Universal(TagInteger))
	BitString        = Implicit(Universal(TagBitString))
	OctetString      = Implicit(Universal(TagOctetString))
	Null             = Implicit(Universal(TagNull))
	ObjectIdentifier = Implicit(Universal(TagOID))
	ObjectDescriptor = Implicit(Universal(TagObjectDescriptor))
	External         = Implicit(Universal(TagExternal))
	Real             = Implicit(Universal(TagReal))
	Enumerated       = Implicit(Universal(TagEnumerated))
	EmbeddedPDV      = Implicit(Universal(TagEmbeddedPDV))
	UTF8String       = Implicit(Universal(TagUTF8String))
	RelativeOID      = Implicit(Universal(TagRelativeOID))
	Sequence         = Implicit(Universal(TagSequence).Constructed())
	Set              = Implicit(Universal(TagSet).Constructed())
	NumericString    = Implicit(Universal(TagNumericString))
	PrintableString  = Implicit(Universal(TagPrintableString))
	T61String        = Implicit(Universal(TagT61String))
	VideotexString   = Implicit(Universal(TagVideotexString))
	IA5String        = Implicit(Universal(TagIA5String))
	UTCTime          = Implicit(Universal(TagUTCTime))
	GeneralizedTime  = Implicit(Universal(TagGeneralizedTime))
	GraphicString    = Implicit(Universal(TagGraphicString))
	VisibleString    = Implicit(Universal(TagVisibleString))
	GeneralString    = Implicit(Universal(TagGeneralString))
	UniversalString  = Implicit(Universal(TagUniversalString))
	CharacterString  = Implicit(Universal(TagCharacterString))
	BMPString        = Implicit(Universal(TagBMPString))
)

// IsNone reports whether e is the empty encoding.
func (e Encoding) IsNone() bool {
	return e.l == nil
}

// Mode returns the mode of the outermost link of e.
func (e Encoding) Mode() Mode {
	if e.l == nil {
		return ModeNone
	}
	return e.l.mode
}

// ID returns the identifier of the outermost link of e. For [None] the result
// is 0.
func (e Encoding) ID() Identifier {
	if e.l == nil {
		return 0
	}
	return e.l.id
}

// Next returns the encoding of the inner value. For the last link and for
// [None] the result is [None].
func (e Encoding) Next() Encoding {
	if e.l == nil {
		return None
	}
	return e.l.next
}

// Append returns a new encoding in which other is attached after the deepest
// link of e. Appending to [None] yields other and appending [None] yields e.
func (e Encoding) Append(other Encoding) Encoding {
	if other.l == nil {
		return e
	}
	if e.l == nil {
		return other
	}
	return Encoding{&link{mode: e.l.mode, id: e.l.id, next: e.l.next.Append(other)}}
}

// Len returns the number of links in e.
func (e Encoding) Len() int {
	n := 0
	for l := e.l; l != nil; l = l.next.l {
		n++
	}
	return n
}

// Equal reports whether e and other describe the same chain of links.
func (e Encoding) Equal(other Encoding) bool {
	a, b := e.l, other.l
	for a != nil && b != nil {
		if a.mode != b.mode || a.id != b.id {
			return false
		}
		a, b = a.next.l, b.next.l
	}
	return a == nil && b == nil
}

// String returns the links of e in ASN.1 notation, outermost first.
func (e Encoding) String() string {
	if e.l == nil {
		return "NONE"
	}
	var s strings.Builder
	for l := e.l; l != nil; l = l.next.l {
		if s.Len() > 0 {
			s.WriteByte(' ')
		}
		s.WriteString(l.id.String())
		s.WriteByte(' ')
		s.WriteString(strings.ToUpper(l.mode.String()))
	}
	return s.String()
}

// ParseEncoding parses a textual encoding description. Links are separated by
// a slash and listed outermost first. Each link uses the following options,
// separated by commas:
//
//	tag:x       the tag number; implies CONTEXT SPECIFIC
//	application use an APPLICATION tag
//	private     use a PRIVATE tag
//	universal   use a UNIVERSAL tag
//	explicit    mark the link as EXPLICIT (the default is IMPLICIT)
//	constructed set the constructed flag of the identifier
//
// Explicit links always use a constructed identifier. The empty string yields
// [None].
func ParseEncoding(s string) (Encoding, error) {
	enc := None
	if strings.TrimSpace(s) == "" {
		return enc, nil
	}
	for i, str := range strings.Split(s, "/") {
		params, err := internal.ParseFieldParameters(strings.TrimSpace(str))
		if err == nil && !params.HasTag {
			err = errors.New("missing tag number")
		}
		if err != nil {
			return None, fmt.Errorf("asn1: invalid encoding link %d %q: %w", i, str, err)
		}
		id := NewIdentifier(Class(params.Class), params.Number, params.Constructed || params.Explicit)
		if params.Explicit {
			enc = enc.Append(Explicit(id))
		} else {
			enc = enc.Append(Implicit(id))
		}
	}
	return enc, nil
}

// MustParseEncoding is like [ParseEncoding] but panics if s cannot be parsed.
func MustParseEncoding(s string) Encoding {
	enc, err := ParseEncoding(s)
	if err != nil {
		panic(err)
	}
	return enc
}
