// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"testing"

	"codello.dev/asn1decoder"
)

// anyDecoder adapts DecodeAny to testDecode.
func anyDecoder(b []byte, _ asn1.Encoding) (Value, error) {
	return DecodeAny(b)
}

func TestDecodeAny(t *testing.T) {
	seq := func(vs ...Value) Value { return Value{Kind: KindSequence, Sequence: vs} }
	text := func(s string) Value { return Value{Kind: KindText, Text: s} }
	integer := func(i int64) Value { return Value{Kind: KindInteger, Integer: i} }
	raw := func(b ...byte) Value { return Value{Kind: KindBytes, Bytes: b} }

	testDecode(t, anyDecoder, map[string]testCase[Value]{
		"OctetString":      {raw(0x01, 0x02), []byte{0x04, 0x02, 0x01, 0x02}, asn1.None, nil},
		"BitString":        {raw(0x00, 0xF0), []byte{0x03, 0x02, 0x00, 0xF0}, asn1.None, nil},
		"UTF8String":       {text("A"), []byte{0x0C, 0x01, 'A'}, asn1.None, nil},
		"IA5String":        {text("a"), []byte{0x16, 0x01, 'a'}, asn1.None, nil},
		"BMPString":        {text("Hi"), []byte{0x1E, 0x04, 0x00, 'H', 0x00, 'i'}, asn1.None, nil},
		"T61String":        {text("t"), []byte{0x14, 0x01, 't'}, asn1.None, nil},
		"ObjectIdentifier": {text("1.2.840"), []byte{0x06, 0x03, 0x2A, 0x86, 0x48}, asn1.None, nil},
		"Integer":          {integer(5), []byte{0x02, 0x01, 0x05}, asn1.None, nil},
		"NegativeInteger":  {integer(-2), []byte{0x02, 0x01, 0xFE}, asn1.None, nil},
		"EightByteInteger": {integer(-1), []byte{0x02, 0x08, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, asn1.None, nil},
		"BigInteger":       {text("18446744073709551616"), []byte{0x02, 0x09, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, asn1.None, nil},
		"BigNegative":      {text("-18446744073709551616"), []byte{0x02, 0x09, 0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, asn1.None, nil},
		"Boolean":          {raw(0xFF), []byte{0x01, 0x01, 0xFF}, asn1.None, nil},
		"Null":             {raw(), []byte{0x05, 0x00}, asn1.None, nil},
		"UTCTime":          {raw('2', '0', 'Z'), []byte{0x17, 0x03, '2', '0', 'Z'}, asn1.None, nil},
		"ContextPrimitive": {raw(0x07), []byte{0x80, 0x01, 0x07}, asn1.None, nil},
		"Sequence":         {seq(integer(1), text("A")), []byte{0x30, 0x06, 0x02, 0x01, 0x01, 0x0C, 0x01, 'A'}, asn1.None, nil},
		"EmptySequence":    {seq(), []byte{0x30, 0x00}, asn1.None, nil},
		"Set":              {seq(integer(1)), []byte{0x31, 0x03, 0x02, 0x01, 0x01}, asn1.None, nil},
		"NestedSequence":   {seq(seq(raw(0x01)), integer(2)), []byte{0x30, 0x08, 0x30, 0x03, 0x04, 0x01, 0x01, 0x02, 0x01, 0x02}, asn1.None, nil},
		"ContextExplicit":  {seq(integer(5)), []byte{0xA0, 0x03, 0x02, 0x01, 0x05}, asn1.None, nil},
		"ConstructedOctet": {seq(raw('a'), raw('b')), []byte{0x24, 0x06, 0x04, 0x01, 'a', 0x04, 0x01, 'b'}, asn1.None, nil},
		"BrokenChild":      {seq(integer(1)), []byte{0x30, 0x05, 0x02, 0x01, 0x01, 0x02, 0x05}, asn1.None, nil},
		"InvalidText":      {Value{}, []byte{0x0C, 0x01, 0xFF}, asn1.None, ErrInvalidStringEncoding},
		"InvalidNested":    {Value{}, []byte{0x30, 0x03, 0x16, 0x01, 0x80}, asn1.None, ErrInvalidStringEncoding},
		"Malformed":        {Value{}, []byte{0x30, 0x05, 0x02}, asn1.None, &FormatError{}},
	})
}

func TestSingleValue_AnyUsesContainerEncoding(t *testing.T) {
	// [0] EXPLICIT INTEGER resolved through Value keeps the inner identifier
	v := rootValue(t, []byte{0xA0, 0x03, 0x02, 0x01, 0x05})
	inner, err := v.Value(asn1.Explicit(asn1.ContextSpecific(0)))
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	got, err := inner.Any()
	if err != nil {
		t.Fatalf("Any() error = %v", err)
	}
	if want := (Value{Kind: KindInteger, Integer: 5}); !got.Equal(want) {
		t.Errorf("Any() = %v, want %v", got, want)
	}
}

func TestValue_String(t *testing.T) {
	tests := map[string]struct {
		v    Value
		want string
	}{
		"Bytes":    {Value{Kind: KindBytes, Bytes: []byte{0x0A, 0xFF}}, "0x0aff"},
		"Text":     {Value{Kind: KindText, Text: "a\"b"}, `"a\"b"`},
		"Integer":  {Value{Kind: KindInteger, Integer: -3}, "-3"},
		"Sequence": {Value{Kind: KindSequence, Sequence: []Value{{Kind: KindInteger, Integer: 1}, {Kind: KindText, Text: "A"}}}, `{1, "A"}`},
		"Empty":    {Value{Kind: KindSequence}, "{}"},
		"Unknown":  {Value{Kind: Kind(9)}, "<Kind(9)>"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tc.v.String(); got != tc.want {
				t.Errorf("Value.String() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestValue_Equal(t *testing.T) {
	a := Value{Kind: KindSequence, Sequence: []Value{{Kind: KindBytes, Bytes: []byte{}}}}
	b := Value{Kind: KindSequence, Sequence: []Value{{Kind: KindBytes}}}
	if !a.Equal(b) {
		t.Errorf("Value.Equal() = false for empty and nil bytes")
	}
	if a.Equal(Value{Kind: KindSequence}) {
		t.Errorf("Value.Equal() = true for sequences of different length")
	}
	if (Value{Kind: KindText, Text: "1"}).Equal(Value{Kind: KindInteger, Integer: 1}) {
		t.Errorf("Value.Equal() = true for different kinds")
	}
}

func TestKind_String(t *testing.T) {
	tests := map[Kind]string{
		KindBytes:    "Bytes",
		KindText:     "Text",
		KindInteger:  "Integer",
		KindSequence: "Sequence",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %s, want %s", k, got, want)
		}
	}
}
