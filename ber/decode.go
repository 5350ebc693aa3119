// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"codello.dev/asn1decoder"
	"codello.dev/asn1decoder/tlv"
)

// A Decoder decodes BER-encoded data values held in memory. A Decoder does not
// change after it has been created and may be used by multiple goroutines.
// The containers it hands out may not.
//
// The package level functions use a Decoder with [DefaultConfig] that does
// not log.
type Decoder struct {
	cfg Config
	log zerolog.Logger
}

var defaultDecoder = &Decoder{cfg: DefaultConfig(), log: zerolog.Nop()}

// NewDecoder creates a Decoder using cfg. Diagnostic events are written to log
// at trace level. If cfg.LogLevel is set, it replaces the level of log.
func NewDecoder(cfg Config, log zerolog.Logger) (*Decoder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.LogLevel != "" {
		lvl, _ := zerolog.ParseLevel(cfg.LogLevel)
		log = log.Level(lvl)
	}
	return &Decoder{
		cfg: cfg,
		log: log.With().Str("component", "ber").Logger(),
	}, nil
}

// Config returns the configuration of d.
func (d *Decoder) Config() Config {
	return d.cfg
}

// checkDepth fails if depth exceeds the configured nesting limit.
func (d *Decoder) checkDepth(depth int) error {
	if d.cfg.MaxDepth > 0 && depth > d.cfg.MaxDepth {
		d.log.Trace().Int("depth", depth).Int("limit", d.cfg.MaxDepth).Msg("nesting limit exceeded")
		return &FormatError{Err: fmt.Errorf("depth %d: %w", depth, tlv.ErrTooDeep)}
	}
	return nil
}

// root parses the first data value in b. Any bytes following it are ignored.
func (d *Decoder) root(b []byte) (*SingleValue, error) {
	n, _, err := tlv.Parse(b)
	if err != nil {
		d.log.Trace().Err(err).Int("len", len(b)).Msg("malformed input")
		return nil, &FormatError{Err: err}
	}
	return &SingleValue{d: d, node: n}, nil
}

// decodeRoot applies f to the first data value in b.
func decodeRoot[T any](d *Decoder, b []byte, enc asn1.Encoding, f func(*SingleValue, asn1.Encoding) (T, error)) (T, error) {
	v, err := d.root(b)
	if err != nil {
		var zero T
		return zero, err
	}
	return f(v, enc)
}

// DecodeBool decodes a BOOLEAN from b. See [SingleValue.Bool].
func (d *Decoder) DecodeBool(b []byte, enc asn1.Encoding) (bool, error) {
	return decodeRoot(d, b, enc, (*SingleValue).Bool)
}

// DecodeInt decodes an INTEGER from b. See [SingleValue.Int].
func (d *Decoder) DecodeInt(b []byte, enc asn1.Encoding) (int, error) {
	return decodeRoot(d, b, enc, (*SingleValue).Int)
}

// DecodeInt8 decodes an INTEGER from b. See [SingleValue.Int8].
func (d *Decoder) DecodeInt8(b []byte, enc asn1.Encoding) (int8, error) {
	return decodeRoot(d, b, enc, (*SingleValue).Int8)
}

// DecodeInt16 decodes an INTEGER from b. See [SingleValue.Int16].
func (d *Decoder) DecodeInt16(b []byte, enc asn1.Encoding) (int16, error) {
	return decodeRoot(d, b, enc, (*SingleValue).Int16)
}

// DecodeInt32 decodes an INTEGER from b. See [SingleValue.Int32].
func (d *Decoder) DecodeInt32(b []byte, enc asn1.Encoding) (int32, error) {
	return decodeRoot(d, b, enc, (*SingleValue).Int32)
}

// DecodeInt64 decodes an INTEGER from b. See [SingleValue.Int64].
func (d *Decoder) DecodeInt64(b []byte, enc asn1.Encoding) (int64, error) {
	return decodeRoot(d, b, enc, (*SingleValue).Int64)
}

// DecodeBytes returns the content octets of the data value in b. See
// [SingleValue.Bytes].
func (d *Decoder) DecodeBytes(b []byte, enc asn1.Encoding) ([]byte, error) {
	return decodeRoot(d, b, enc, (*SingleValue).Bytes)
}

// DecodeText decodes a character string from b. See [SingleValue.Text].
func (d *Decoder) DecodeText(b []byte, enc asn1.Encoding) (string, error) {
	return decodeRoot(d, b, enc, (*SingleValue).Text)
}

// DecodeTime decodes a UTCTime or GeneralizedTime from b. See
// [SingleValue.Time].
func (d *Decoder) DecodeTime(b []byte, enc asn1.Encoding) (time.Time, error) {
	return decodeRoot(d, b, enc, (*SingleValue).Time)
}

// DecodeAny decodes the data value in b without knowing its type in advance.
// See [Value].
func (d *Decoder) DecodeAny(b []byte) (Value, error) {
	v, err := d.root(b)
	if err != nil {
		return Value{}, err
	}
	return v.Any()
}

// Unmarshal decodes the data value in b into val by calling its BerDecode
// method. val must be a non-nil pointer. It is only modified if decoding
// succeeds.
func (d *Decoder) Unmarshal(b []byte, val BerDecoder) error {
	v, err := d.root(b)
	if err != nil {
		return err
	}
	return decodeInto(val, d, v.node, asn1.None, 0)
}

// Validate checks that b starts with a well-formed data value whose
// constructed values consist of complete TLVs and are not nested deeper than
// the configured limit. Content octets of primitive values are not inspected.
func (d *Decoder) Validate(b []byte) error {
	v, err := d.root(b)
	if err != nil {
		return err
	}
	if err = v.node.ValidDepth(d.cfg.MaxDepth); err != nil {
		d.log.Trace().Err(err).Msg("invalid structure")
		return &FormatError{Err: err}
	}
	return nil
}

//region package level functions

// DecodeBool decodes a BOOLEAN from b. See [SingleValue.Bool].
func DecodeBool(b []byte, enc asn1.Encoding) (bool, error) {
	return defaultDecoder.DecodeBool(b, enc)
}

// DecodeInt decodes an INTEGER from b. See [SingleValue.Int].
func DecodeInt(b []byte, enc asn1.Encoding) (int, error) {
	return defaultDecoder.DecodeInt(b, enc)
}

// DecodeInt8 decodes an INTEGER from b. See [SingleValue.Int8].
func DecodeInt8(b []byte, enc asn1.Encoding) (int8, error) {
	return defaultDecoder.DecodeInt8(b, enc)
}

// DecodeInt16 decodes an INTEGER from b. See [SingleValue.Int16].
func DecodeInt16(b []byte, enc asn1.Encoding) (int16, error) {
	return defaultDecoder.DecodeInt16(b, enc)
}

// DecodeInt32 decodes an INTEGER from b. See [SingleValue.Int32].
func DecodeInt32(b []byte, enc asn1.Encoding) (int32, error) {
	return defaultDecoder.DecodeInt32(b, enc)
}

// DecodeInt64 decodes an INTEGER from b. See [SingleValue.Int64].
func DecodeInt64(b []byte, enc asn1.Encoding) (int64, error) {
	return defaultDecoder.DecodeInt64(b, enc)
}

// DecodeBytes returns the content octets of the data value in b. The result
// borrows from b. See [SingleValue.Bytes].
func DecodeBytes(b []byte, enc asn1.Encoding) ([]byte, error) {
	return defaultDecoder.DecodeBytes(b, enc)
}

// DecodeText decodes a character string from b. See [SingleValue.Text].
func DecodeText(b []byte, enc asn1.Encoding) (string, error) {
	return defaultDecoder.DecodeText(b, enc)
}

// DecodeTime decodes a UTCTime or GeneralizedTime from b. See
// [SingleValue.Time].
func DecodeTime(b []byte, enc asn1.Encoding) (time.Time, error) {
	return defaultDecoder.DecodeTime(b, enc)
}

// DecodeAny decodes the data value in b without knowing its type in advance.
func DecodeAny(b []byte) (Value, error) {
	return defaultDecoder.DecodeAny(b)
}

// Unmarshal decodes the data value in b into val. See [Decoder.Unmarshal].
func Unmarshal(b []byte, val BerDecoder) error {
	return defaultDecoder.Unmarshal(b, val)
}

// Validate checks the structure of the data value in b. See
// [Decoder.Validate].
func Validate(b []byte) error {
	return defaultDecoder.Validate(b)
}

//endregion
