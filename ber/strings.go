// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"codello.dev/asn1decoder"
	"codello.dev/asn1decoder/internal/vlq"
	"codello.dev/asn1decoder/tlv"
)

// textual reports whether a value tagged with id is decoded as text by
// decodeText.
func textual(id asn1.Identifier) bool {
	if id.Class() != asn1.ClassUniversal {
		return false
	}
	switch id.Number() {
	case asn1.TagUTF8String, asn1.TagGeneralString, asn1.TagGraphicString,
		asn1.TagNumericString, asn1.TagVideotexString, asn1.TagCharacterString,
		asn1.TagPrintableString, asn1.TagUniversalString, asn1.TagT61String,
		asn1.TagIA5String, asn1.TagVisibleString, asn1.TagBMPString, asn1.TagOID:
		return true
	}
	return false
}

// decodeText decodes the content octets of n using the character set implied
// by its identifier.
func decodeText(n tlv.Node) (string, error) {
	if !textual(n.ID) {
		return "", &TypeMismatchError{Expected: asn1.Universal(asn1.TagUTF8String), Actual: n.ID}
	}
	switch n.ID.Number() {
	case asn1.TagBMPString:
		return decodeBMPString(n.Value)
	case asn1.TagIA5String, asn1.TagVisibleString:
		return decodeASCII(n.Value)
	case asn1.TagOID:
		oid, err := decodeOID(n.Value)
		if err != nil {
			return "", err
		}
		return oid.String(), nil
	default:
		if !utf8.Valid(n.Value) {
			return "", ErrInvalidStringEncoding
		}
		return string(n.Value), nil
	}
}

//region [UNIVERSAL 22] IA5String and [UNIVERSAL 26] VisibleString

func decodeASCII(bs []byte) (string, error) {
	for _, b := range bs {
		if b >= utf8.RuneSelf {
			return "", ErrInvalidStringEncoding
		}
	}
	return string(bs), nil
}

//endregion

//region [UNIVERSAL 30] BMPString

// decodeBMPString decodes big-endian UTF-16. Surrogate pairs are combined.
// An unpaired surrogate is an error.
func decodeBMPString(bs []byte) (string, error) {
	if len(bs)%2 != 0 {
		return "", ErrInvalidStringEncoding
	}
	var sb strings.Builder
	sb.Grow(len(bs))
	for i := 0; i < len(bs); i += 2 {
		r := rune(bs[i])<<8 | rune(bs[i+1])
		if utf16.IsSurrogate(r) {
			if i+3 >= len(bs) {
				return "", ErrInvalidStringEncoding
			}
			r = utf16.DecodeRune(r, rune(bs[i+2])<<8|rune(bs[i+3]))
			if r == utf8.RuneError {
				return "", ErrInvalidStringEncoding
			}
			i += 2
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}

//endregion

//region [UNIVERSAL 6] OBJECT IDENTIFIER

// decodeOID decodes the content octets of an OBJECT IDENTIFIER. The first
// octet holds the first two arcs. Every following arc is a base-128 integer.
// An arc that is not terminated at the end of bs is discarded.
func decodeOID(bs []byte) (asn1.OID, error) {
	if len(bs) == 0 {
		return nil, nil
	}
	oid := asn1.OID{uint64(bs[0] / 40), uint64(bs[0] % 40)}
	r := bytes.NewReader(bs[1:])
	for r.Len() > 0 {
		arc, err := vlq.Read[uint64](r)
		if errors.Is(err, io.ErrUnexpectedEOF) {
			break
		} else if err != nil {
			return nil, ErrInvalidStringEncoding
		}
		oid = append(oid, arc)
	}
	return oid, nil
}

//endregion
