// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"slices"
	"time"

	"codello.dev/asn1decoder"
	"codello.dev/asn1decoder/tlv"
)

// Container is implemented by [*Sequence] and [*Set]. It is used by the
// generic helpers [All] and [DecodeAll].
type Container interface {
	// IsAtEnd reports whether all members have been consumed.
	IsAtEnd() bool
	// Len returns the number of members that have not been consumed.
	Len() int

	// next runs f on the member selected for enc and consumes that member if f
	// succeeds.
	next(enc asn1.Encoding, f func(*SingleValue) error) error
}

// elements holds the members shared by Sequence and Set.
type elements struct {
	d     *Decoder
	nodes []tlv.Node
	depth int
}

func newElements(d *Decoder, n tlv.Node, depth int) elements {
	var nodes []tlv.Node
	for child := range n.Children() {
		nodes = append(nodes, child)
	}
	return elements{d: d, nodes: nodes, depth: depth}
}

func (e *elements) single(n tlv.Node) *SingleValue {
	return &SingleValue{d: e.d, node: n, depth: e.depth}
}

// take decodes the member selected by c using f.
func take[T any](c Container, enc asn1.Encoding, f func(*SingleValue, asn1.Encoding) (T, error)) (T, error) {
	var ret T
	err := c.next(enc, func(v *SingleValue) (err error) {
		ret, err = f(v, enc)
		return err
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return ret, nil
}

func anyOf(v *SingleValue, _ asn1.Encoding) (Value, error) {
	return v.Any()
}

// All decodes the remaining members of c with f until c is at its end. It
// models a homogeneous SEQUENCE OF or SET OF:
//
//	ids, err := ber.All(seq, (*ber.SingleValue).Int64, asn1.Integer)
//
// The first error aborts decoding and is returned unchanged.
func All[T any](c Container, f func(*SingleValue, asn1.Encoding) (T, error), enc asn1.Encoding) ([]T, error) {
	ret := make([]T, 0, c.Len())
	for !c.IsAtEnd() {
		v, err := take(c, enc, f)
		if err != nil {
			return nil, err
		}
		ret = append(ret, v)
	}
	return ret, nil
}

// DecodeAll decodes the remaining members of c into values of a composite
// type T until c is at its end.
func DecodeAll[T any, P interface {
	*T
	BerDecoder
}](c Container, enc asn1.Encoding) ([]T, error) {
	return All(c, func(v *SingleValue, enc asn1.Encoding) (T, error) {
		var t T
		err := v.Decode(P(&t), enc)
		return t, err
	}, enc)
}

//region type Sequence

// Sequence is an ordered view of the members of a constructed data value. Each
// successful decode consumes the current member. Decoding past the last member
// fails with [ErrEndOfData].
//
// A Sequence must not be used concurrently.
type Sequence struct {
	elements
	i int
}

// IsAtEnd reports whether all members have been consumed.
func (s *Sequence) IsAtEnd() bool { return s.i >= len(s.nodes) }

// Len returns the number of members that have not been consumed.
func (s *Sequence) Len() int { return len(s.nodes) - s.i }

func (s *Sequence) next(_ asn1.Encoding, f func(*SingleValue) error) error {
	if s.IsAtEnd() {
		s.d.log.Trace().Int("members", len(s.nodes)).Msg("sequence exhausted")
		return ErrEndOfData
	}
	if err := f(s.single(s.nodes[s.i])); err != nil {
		return err
	}
	s.i++
	return nil
}

// Bool decodes the current member. See [SingleValue.Bool].
func (s *Sequence) Bool(enc asn1.Encoding) (bool, error) { return take(s, enc, (*SingleValue).Bool) }

// Int decodes the current member. See [SingleValue.Int].
func (s *Sequence) Int(enc asn1.Encoding) (int, error) { return take(s, enc, (*SingleValue).Int) }

// Int8 decodes the current member. See [SingleValue.Int8].
func (s *Sequence) Int8(enc asn1.Encoding) (int8, error) { return take(s, enc, (*SingleValue).Int8) }

// Int16 decodes the current member. See [SingleValue.Int16].
func (s *Sequence) Int16(enc asn1.Encoding) (int16, error) { return take(s, enc, (*SingleValue).Int16) }

// Int32 decodes the current member. See [SingleValue.Int32].
func (s *Sequence) Int32(enc asn1.Encoding) (int32, error) { return take(s, enc, (*SingleValue).Int32) }

// Int64 decodes the current member. See [SingleValue.Int64].
func (s *Sequence) Int64(enc asn1.Encoding) (int64, error) { return take(s, enc, (*SingleValue).Int64) }

// Bytes decodes the current member. See [SingleValue.Bytes].
func (s *Sequence) Bytes(enc asn1.Encoding) ([]byte, error) {
	return take(s, enc, (*SingleValue).Bytes)
}

// Text decodes the current member. See [SingleValue.Text].
func (s *Sequence) Text(enc asn1.Encoding) (string, error) { return take(s, enc, (*SingleValue).Text) }

// Time decodes the current member. See [SingleValue.Time].
func (s *Sequence) Time(enc asn1.Encoding) (time.Time, error) {
	return take(s, enc, (*SingleValue).Time)
}

// Decode decodes the current member into val. See [SingleValue.Decode].
func (s *Sequence) Decode(val BerDecoder, enc asn1.Encoding) error {
	return s.next(enc, func(v *SingleValue) error { return v.Decode(val, enc) })
}

// Any decodes the current member. See [SingleValue.Any].
func (s *Sequence) Any() (Value, error) { return take(s, asn1.None, anyOf) }

// Values decodes all remaining members with [Sequence.Any].
func (s *Sequence) Values() ([]Value, error) { return All(s, anyOf, asn1.None) }

// Sequence returns the members of the current member. See
// [SingleValue.Sequence].
func (s *Sequence) Sequence(enc asn1.Encoding) (*Sequence, error) {
	return take(s, enc, (*SingleValue).Sequence)
}

// Set returns the members of the current member. See [SingleValue.Set].
func (s *Sequence) Set(enc asn1.Encoding) (*Set, error) { return take(s, enc, (*SingleValue).Set) }

// Value returns the current member as a [SingleValue]. See
// [SingleValue.Value].
func (s *Sequence) Value(enc asn1.Encoding) (*SingleValue, error) {
	return take(s, enc, (*SingleValue).Value)
}

//endregion

//region type Set

// Set is an unordered view of the members of a constructed data value. Each
// decode tries the remaining members in their encoded order and consumes the
// first one that decodes successfully. If no member matches, a
// [*TypeNotFoundError] is returned and the Set is unchanged.
//
// A Set must not be used concurrently.
type Set struct {
	elements
}

// IsAtEnd reports whether all members have been consumed.
func (s *Set) IsAtEnd() bool { return len(s.nodes) == 0 }

// Len returns the number of members that have not been consumed.
func (s *Set) Len() int { return len(s.nodes) }

func (s *Set) next(enc asn1.Encoding, f func(*SingleValue) error) error {
	for i, n := range s.nodes {
		err := f(s.single(n))
		if err == nil {
			s.nodes = slices.Delete(s.nodes, i, i+1)
			return nil
		}
		s.d.log.Trace().Int("candidate", i).Stringer("id", n.ID).Stringer("encoding", enc).Err(err).Msg("set member rejected")
	}
	return &TypeNotFoundError{Encoding: enc}
}

// Bool decodes the first matching member. See [SingleValue.Bool].
func (s *Set) Bool(enc asn1.Encoding) (bool, error) { return take(s, enc, (*SingleValue).Bool) }

// Int decodes the first matching member. See [SingleValue.Int].
func (s *Set) Int(enc asn1.Encoding) (int, error) { return take(s, enc, (*SingleValue).Int) }

// Int8 decodes the first matching member. See [SingleValue.Int8].
func (s *Set) Int8(enc asn1.Encoding) (int8, error) { return take(s, enc, (*SingleValue).Int8) }

// Int16 decodes the first matching member. See [SingleValue.Int16].
func (s *Set) Int16(enc asn1.Encoding) (int16, error) { return take(s, enc, (*SingleValue).Int16) }

// Int32 decodes the first matching member. See [SingleValue.Int32].
func (s *Set) Int32(enc asn1.Encoding) (int32, error) { return take(s, enc, (*SingleValue).Int32) }

// Int64 decodes the first matching member. See [SingleValue.Int64].
func (s *Set) Int64(enc asn1.Encoding) (int64, error) { return take(s, enc, (*SingleValue).Int64) }

// Bytes decodes the first matching member. See [SingleValue.Bytes].
func (s *Set) Bytes(enc asn1.Encoding) ([]byte, error) { return take(s, enc, (*SingleValue).Bytes) }

// Text decodes the first matching member. See [SingleValue.Text].
func (s *Set) Text(enc asn1.Encoding) (string, error) { return take(s, enc, (*SingleValue).Text) }

// Time decodes the first matching member. See [SingleValue.Time].
func (s *Set) Time(enc asn1.Encoding) (time.Time, error) { return take(s, enc, (*SingleValue).Time) }

// Decode decodes the first matching member into val. val is only modified by
// the successful attempt. See [SingleValue.Decode].
func (s *Set) Decode(val BerDecoder, enc asn1.Encoding) error {
	return s.next(enc, func(v *SingleValue) error { return v.Decode(val, enc) })
}

// Any decodes and consumes the first remaining member. If no members remain,
// [ErrEndOfData] is returned.
func (s *Set) Any() (Value, error) {
	if s.IsAtEnd() {
		return Value{}, ErrEndOfData
	}
	v, err := s.single(s.nodes[0]).Any()
	if err != nil {
		return Value{}, err
	}
	s.nodes = s.nodes[1:]
	return v, nil
}

// Values decodes all remaining members with [Set.Any].
func (s *Set) Values() ([]Value, error) {
	ret := make([]Value, 0, s.Len())
	for !s.IsAtEnd() {
		v, err := s.Any()
		if err != nil {
			return nil, err
		}
		ret = append(ret, v)
	}
	return ret, nil
}

// Sequence returns the members of the first matching member. See
// [SingleValue.Sequence].
func (s *Set) Sequence(enc asn1.Encoding) (*Sequence, error) {
	return take(s, enc, (*SingleValue).Sequence)
}

// Set returns the members of the first matching member. See [SingleValue.Set].
func (s *Set) Set(enc asn1.Encoding) (*Set, error) { return take(s, enc, (*SingleValue).Set) }

// Value returns the first matching member as a [SingleValue]. See
// [SingleValue.Value].
func (s *Set) Value(enc asn1.Encoding) (*SingleValue, error) {
	return take(s, enc, (*SingleValue).Value)
}

//endregion
