// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"bytes"
	"encoding/hex"
	"strconv"
	"strings"

	"codello.dev/asn1decoder"
	"codello.dev/asn1decoder/tlv"
)

// Kind identifies which field of a [Value] is set.
type Kind uint8

//go:generate stringer -type=Kind -trimprefix=Kind

// These are the kinds of values produced by untyped decoding.
const (
	KindBytes Kind = iota
	KindText
	KindInteger
	KindSequence
)

// Value is the result of decoding a data value without knowing its type in
// advance. Only the field selected by Kind is meaningful.
//
// The identifier of the data value determines its kind:
//
//   - BIT STRING and OCTET STRING decode to [KindBytes].
//   - Character strings and OBJECT IDENTIFIER decode to [KindText]. BMPString
//     is read as UTF-16, IA5String and VisibleString as ASCII. All other
//     character strings, including T61String, must hold valid UTF-8.
//   - INTEGER decodes to [KindInteger] if it has at most 8 content octets.
//     Longer integers decode to [KindText] in decimal notation.
//   - Any other constructed value decodes to [KindSequence] holding its
//     members.
//   - Any other primitive value decodes to [KindBytes].
//
// Only primitive encodings of the universal types above are recognized. A
// constructed OCTET STRING for example is decoded as [KindSequence].
type Value struct {
	Kind     Kind
	Bytes    []byte
	Text     string
	Integer  int64
	Sequence []Value
}

// Equal reports whether v and other are of the same kind and hold the same
// content.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindBytes:
		return bytes.Equal(v.Bytes, other.Bytes)
	case KindText:
		return v.Text == other.Text
	case KindInteger:
		return v.Integer == other.Integer
	case KindSequence:
		if len(v.Sequence) != len(other.Sequence) {
			return false
		}
		for i := range v.Sequence {
			if !v.Sequence[i].Equal(other.Sequence[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// String returns a compact representation of v. Bytes are rendered in
// hexadecimal, text is quoted and sequences are enclosed in braces.
func (v Value) String() string {
	switch v.Kind {
	case KindBytes:
		return "0x" + hex.EncodeToString(v.Bytes)
	case KindText:
		return strconv.Quote(v.Text)
	case KindInteger:
		return strconv.FormatInt(v.Integer, 10)
	case KindSequence:
		var s strings.Builder
		s.WriteByte('{')
		for i, e := range v.Sequence {
			if i > 0 {
				s.WriteString(", ")
			}
			s.WriteString(e.String())
		}
		s.WriteByte('}')
		return s.String()
	}
	return "<" + v.Kind.String() + ">"
}

// decodeAny decodes n into a Value. depth is the nesting level of n.
func (d *Decoder) decodeAny(n tlv.Node, depth int) (Value, error) {
	if err := d.checkDepth(depth); err != nil {
		return Value{}, err
	}
	switch {
	case n.ID == asn1.Universal(asn1.TagBitString), n.ID == asn1.Universal(asn1.TagOctetString):
		return Value{Kind: KindBytes, Bytes: n.Value}, nil
	case n.ID.IsPrimitive() && textual(n.ID):
		s, err := decodeText(n)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindText, Text: s}, nil
	case n.ID == asn1.Universal(asn1.TagInteger):
		if len(n.Value) > 8 {
			return Value{Kind: KindText, Text: bigIntText(n.Value)}, nil
		}
		i, err := decodeInt64(n)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindInteger, Integer: i}, nil
	case n.ID.IsConstructed():
		seq := make([]Value, 0)
		for child := range n.Children() {
			v, err := d.decodeAny(child, depth+1)
			if err != nil {
				return Value{}, err
			}
			seq = append(seq, v)
		}
		return Value{Kind: KindSequence, Sequence: seq}, nil
	default:
		return Value{Kind: KindBytes, Bytes: n.Value}, nil
	}
}
