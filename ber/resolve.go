// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"codello.dev/asn1decoder"
	"codello.dev/asn1decoder/tlv"
)

// resolve walks enc against n and returns the innermost data value described
// by enc. Only the class and tag number of identifiers are compared.
//
// An IMPLICIT link checks the tag of n only at the head of the chain or
// directly below an EXPLICIT link. The identifier of the last IMPLICIT link
// replaces the identifier of the result. An EXPLICIT link checks the tag of n
// at the same positions, descends into the first nested value and re-arms the
// check for it.
func (d *Decoder) resolve(n tlv.Node, enc asn1.Encoding) (tlv.Node, error) {
	check := true
	for {
		switch enc.Mode() {
		case asn1.ModeNone:
			return n, nil
		case asn1.ModeImplicit:
			if check && !n.ID.SameTag(enc.ID()) {
				return tlv.Node{}, d.mismatch(enc.ID(), n.ID)
			}
			n = n.Retag(enc.ID())
			check = false
		case asn1.ModeExplicit:
			if check && !n.ID.SameTag(enc.ID()) {
				return tlv.Node{}, d.mismatch(enc.ID(), n.ID)
			}
			child, ok := n.First()
			if !ok {
				d.log.Trace().Stringer("id", enc.ID()).Msg("explicit tag without nested value")
				return tlv.Node{}, &ValueNotFoundError{ID: enc.ID()}
			}
			n = child
			check = true
		}
		enc = enc.Next()
	}
}

func (d *Decoder) mismatch(expected, actual asn1.Identifier) error {
	d.log.Trace().Stringer("expected", expected).Stringer("actual", actual).Msg("tag mismatch")
	return &TypeMismatchError{Expected: expected, Actual: actual}
}
