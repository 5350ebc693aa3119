// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber_test

import (
	"fmt"

	"codello.dev/asn1decoder"
	"codello.dev/asn1decoder/ber"
)

// Person ::= SEQUENCE {
//     id   INTEGER,
//     name UTF8String,
//     tags [0] EXPLICIT SEQUENCE OF IA5String
// }
type Person struct {
	ID   int64
	Name string
	Tags []string
}

func (p *Person) BerDecode(e *ber.Element) error {
	seq, err := e.Sequence(asn1.Sequence)
	if err != nil {
		return err
	}
	if p.ID, err = seq.Int64(asn1.Integer); err != nil {
		return err
	}
	if p.Name, err = seq.Text(asn1.UTF8String); err != nil {
		return err
	}
	tags, err := seq.Sequence(asn1.Explicit(asn1.ContextSpecific(0)).Append(asn1.Sequence))
	if err != nil {
		return err
	}
	p.Tags, err = ber.All(tags, (*ber.SingleValue).Text, asn1.IA5String)
	return err
}

func ExampleUnmarshal() {
	data := []byte{0x30, 0x14,
		0x02, 0x01, 0x2A,
		0x0C, 0x05, 'A', 'l', 'i', 'c', 'e',
		0xA0, 0x08, 0x30, 0x06, 0x16, 0x01, 'a', 0x16, 0x01, 'b'}
	var p Person
	if err := ber.Unmarshal(data, &p); err != nil {
		panic(err)
	}
	fmt.Println(p.ID, p.Name, p.Tags)
	// Output: 42 Alice [a b]
}

// Options ::= SET {
//     label [1] IMPLICIT IA5String,
//     count INTEGER
// }
type Options struct {
	Label string
	Count int64
}

func (o *Options) BerDecode(e *ber.Element) error {
	set, err := e.Set(asn1.Set)
	if err != nil {
		return err
	}
	if o.Count, err = set.Int64(asn1.Integer); err != nil {
		return err
	}
	o.Label, err = set.Text(asn1.Implicit(asn1.ContextSpecific(1)).Append(asn1.IA5String))
	return err
}

func ExampleSet() {
	// the label is encoded before the count
	data := []byte{0x31, 0x06, 0x81, 0x01, 'x', 0x02, 0x01, 0x07}
	var o Options
	if err := ber.Unmarshal(data, &o); err != nil {
		panic(err)
	}
	fmt.Println(o.Label, o.Count)
	// Output: x 7
}

func ExampleDecodeInt64() {
	enc := asn1.MustParseEncoding("tag:0,explicit/universal,tag:2")
	i, err := ber.DecodeInt64([]byte{0xA0, 0x03, 0x02, 0x01, 0x05}, enc)
	if err != nil {
		panic(err)
	}
	fmt.Println(enc)
	fmt.Println(i)
	// Output:
	// [0] EXPLICIT [UNIVERSAL 2] IMPLICIT
	// 5
}

func ExampleDecodeAny() {
	v, err := ber.DecodeAny([]byte{0x30, 0x06, 0x02, 0x01, 0x01, 0x0C, 0x01, 'A'})
	if err != nil {
		panic(err)
	}
	fmt.Println(v.Kind, v)
	// Output: Sequence {1, "A"}
}
