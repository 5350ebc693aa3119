// Package tlv implements parsing of the tag-length-value (TLV) format used by
// the Basic Encoding Rules (BER) and related encoding rules as specified in
// [Rec. ITU-T X.690].
// See also “[A Layman's Guide to a Subset of ASN.1, BER, and DER]”.
//
// This package deals with the syntactic layer of TLV-encoding while the
// [codello.dev/asn1decoder/ber] package deals with the semantic layer of BER.
//
// # Headers and Values
//
// In BER each value is encoded using a tag-length-value format. The identifier
// and length (we call them a header) are represented by the [Header] type. A
// parsed value is represented by the [Node] type. Nodes do not copy their
// contents: the value of a [Node] is a subslice of the parsed input. Callers
// must not modify the input while nodes parsed from it are in use.
//
// Only single-octet identifiers and the definite-length form are supported.
// A length octet of 0x80 announces zero length octets and is read as length 0.
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
// [A Layman's Guide to a Subset of ASN.1, BER, and DER]: http://luca.ntop.org/Teaching/Appunti/asn1.html
package tlv

import (
	"iter"
	"math"
	"strconv"

	"codello.dev/asn1decoder"
)

// Header represents a TLV header.
type Header struct {
	ID     asn1.Identifier
	Length int
}

// String returns a string representation of h.
func (h Header) String() string {
	s := h.ID.String()
	if h.ID.IsConstructed() {
		s += "/c"
	} else {
		s += "/p"
	}
	s += ":" + strconv.Itoa(h.Length)
	return s
}

// ParseHeader parses the identifier and length octets at the start of b. It
// returns the header and the number of bytes it occupies. ParseHeader does not
// check that b contains the announced number of value bytes.
func ParseHeader(b []byte) (h Header, n int, err error) {
	if len(b) < 2 {
		return h, 0, ErrShortHeader
	}
	h.ID = asn1.Identifier(b[0])
	l := b[1]
	if l&0x80 == 0 {
		// The length is encoded in the bottom 7 bits.
		h.Length = int(l)
		return h, 2, nil
	}
	// Bottom 7 bits give the number of length bytes to follow.
	numBytes := int(l & 0x7f)
	if len(b)-2 < numBytes {
		return h, 2, ErrTruncatedLength
	}
	for _, c := range b[2 : 2+numBytes] {
		if h.Length > math.MaxInt>>8 {
			// We can't shift h.Length up without overflowing.
			return h, 2 + numBytes, ErrLengthTooLarge
		}
		h.Length = h.Length<<8 | int(c)
	}
	return h, 2 + numBytes, nil
}

// Node is a parsed TLV. Value holds the content octets and is a subslice of the
// parsed input.
type Node struct {
	ID    asn1.Identifier
	Value []byte
}

// Parse parses a single TLV from the start of b. Any bytes following the TLV
// are returned as rest. If b does not start with a complete TLV, a
// [*SyntaxError] is returned.
func Parse(b []byte) (n Node, rest []byte, err error) {
	h, hl, err := ParseHeader(b)
	if err == nil && len(b)-hl < h.Length {
		err = ErrTruncatedValue
	}
	if err != nil {
		return Node{}, b, &SyntaxError{Err: err, Header: h}
	}
	return Node{ID: h.ID, Value: b[hl : hl+h.Length]}, b[hl+h.Length:], nil
}

// Header returns the header of n as it would be encoded in definite-length
// form.
func (n Node) Header() Header {
	return Header{ID: n.ID, Length: len(n.Value)}
}

// Retag returns a node with the same value as n but identified by id.
func (n Node) Retag(id asn1.Identifier) Node {
	return Node{ID: id, Value: n.Value}
}

// Children returns a sequence of the TLVs contained in the value of n. The
// sequence ends at the end of the value or at the first bytes that do not form
// a complete TLV. Use [Node.Valid] to detect the latter.
//
// Every call of the returned function starts over at the beginning of the
// value.
func (n Node) Children() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		rest := n.Value
		for len(rest) > 0 {
			child, r, err := Parse(rest)
			if err != nil || !yield(child) {
				return
			}
			rest = r
		}
	}
}

// First returns the first child of n. If the value of n does not start with a
// complete TLV, ok is false.
func (n Node) First() (child Node, ok bool) {
	for child = range n.Children() {
		return child, true
	}
	return Node{}, false
}

// requireKeyedLiterals can be embedded in a struct to require keyed literals.
type requireKeyedLiterals struct{}

// nonComparable can be embedded in a struct to prevent comparability.
type nonComparable [0]func()
