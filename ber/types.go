// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"math/big"
	"time"

	"codello.dev/asn1decoder"
	"codello.dev/asn1decoder/tlv"
)

// isUniversal reports whether id is the UNIVERSAL tag with the given number,
// regardless of its constructed bit.
func isUniversal(id asn1.Identifier, number uint8) bool {
	return id.SameTag(asn1.Universal(number))
}

//region [UNIVERSAL 1] BOOLEAN

func decodeBool(n tlv.Node) bool {
	return len(n.Value) > 0 && n.Value[0] != 0x00
}

//endregion

//region [UNIVERSAL 2] INTEGER

// decodeInt64 interprets the content octets of n as a two's complement
// integer.
func decodeInt64(n tlv.Node) (int64, error) {
	bs := n.Value
	stripped := false
	if len(bs) > 0 && bs[0] == 0x00 {
		bs = bs[1:]
		stripped = true
	}
	if len(bs) == 0 {
		return 0, nil
	}
	if len(bs) > 8 {
		return 0, ErrOverflow
	}
	negative := bs[0]&0x80 != 0
	if stripped && negative && len(bs) == 8 {
		// the positive value needs 65 bits
		return 0, ErrOverflow
	}
	var ret int64
	if negative && !stripped {
		ret = -1
	}
	for _, b := range bs {
		ret = ret<<8 | int64(b)
	}
	return ret, nil
}

// narrow converts the result of an int64 decode to T. If i does not fit into T
// ErrOverflow is returned.
func narrow[T ~int | ~int8 | ~int16 | ~int32](i int64, err error) (T, error) {
	if err != nil {
		return 0, err
	}
	if int64(T(i)) != i {
		return 0, ErrOverflow
	}
	return T(i), nil
}

var bigOne = big.NewInt(1)

// bigIntText renders arbitrarily long two's complement content octets in
// decimal.
func bigIntText(bs []byte) string {
	i := new(big.Int)
	if len(bs) > 0 && bs[0]&0x80 == 0x80 {
		// negative integer, calculate 2s complement
		inv := make([]byte, len(bs))
		for j, b := range bs {
			inv[j] = ^b
		}
		i.SetBytes(inv)
		i.Add(i, bigOne)
		i.Neg(i)
	} else {
		i.SetBytes(bs)
	}
	return i.String()
}

//endregion

//region [UNIVERSAL 3] BIT STRING and [UNIVERSAL 4] OCTET STRING

// decodeBytes returns the content octets of n. The sign octet of an INTEGER
// is dropped.
func decodeBytes(n tlv.Node) []byte {
	bs := n.Value
	if isUniversal(n.ID, asn1.TagInteger) && len(bs) > 0 && bs[0] == 0x00 {
		bs = bs[1:]
	}
	return bs
}

//endregion

//region [UNIVERSAL 23] UTCTime and [UNIVERSAL 24] GeneralizedTime

// decodeTime parses the content of a UTCTime or GeneralizedTime.
//
// UTCTime is accepted as YYMMDDhhmmss or YYMMDDhhmm, GeneralizedTime as
// YYYYMMDDhhmmss. Both must be followed by either "Z" or an offset of the form
// +hhmm or -hhmm.
func decodeTime(n tlv.Node) (time.Time, error) {
	s := string(n.Value)
	switch {
	case isUniversal(n.ID, asn1.TagUTCTime):
		if t, ok := parseTime(s, 2, true); ok {
			return t, nil
		}
		if t, ok := parseTime(s, 2, false); ok {
			return t, nil
		}
	case isUniversal(n.ID, asn1.TagGeneralizedTime):
		if t, ok := parseTime(s, 4, true); ok {
			return t, nil
		}
	default:
		return time.Time{}, &TypeMismatchError{Expected: asn1.Universal(asn1.TagUTCTime), Actual: n.ID}
	}
	return time.Time{}, &DateFormatError{Text: s}
}

// parseTime parses a calendar date with a year of yearDigits digits followed by
// the time of day and a time zone. If seconds is false the seconds are omitted.
func parseTime(s string, yearDigits int, seconds bool) (time.Time, bool) {
	if len(s) < yearDigits+8 {
		return time.Time{}, false
	}
	year := atoiN[int](s, yearDigits)
	s = s[yearDigits:]
	month := atoiN[time.Month](s, 2)
	day := atoiN[int](s[2:], 2)
	hour := atoiN[int](s[4:], 2)
	minute := atoiN[int](s[6:], 2)
	s = s[8:]
	second := 0
	if seconds {
		second = atoiN[int](s, 2)
		if second < 0 {
			return time.Time{}, false
		}
		s = s[2:]
	}
	if year < 0 || month < 0 || day < 0 || hour < 0 || minute < 0 {
		return time.Time{}, false
	}
	loc := parseLocation(s)
	if loc == nil {
		return time.Time{}, false
	}

	if yearDigits == 2 {
		// UTCTime only encodes times prior to 2050. See https://tools.ietf.org/html/rfc5280#section-4.1.2.5.1
		if year <= 49 {
			year += 2000
		} else {
			year += 1900
		}
	}
	ret := time.Date(year, month, day, hour, minute, second, 0, loc)
	if ret.Year() != year || ret.Month() != month || ret.Day() != day || ret.Hour() != hour || ret.Minute() != minute || ret.Second() != second {
		return time.Time{}, false
	}
	return ret, true
}

func parseLocation(s string) *time.Location {
	if len(s) == 1 && s[0] == 'Z' {
		return time.UTC
	}
	if len(s) != 5 {
		return nil
	}
	if s[0] != '+' && s[0] != '-' {
		return nil
	}
	mul := 44 - int(s[0])
	locHour := atoiN[int](s[1:], 2)
	locMinute := atoiN[int](s[3:], 2)
	if locHour < 0 || locMinute < 0 || locMinute > 59 {
		return nil
	}
	return time.FixedZone("", mul*(locHour*3600+locMinute*60))
}

// atoiN parses the first n decimal digits of s. If s is too short or contains
// a non-digit, -1 is returned.
func atoiN[T ~int | ~int64](s string, n int) (i T) {
	if len(s) < n {
		return -1
	}
	for j := 0; j < n; j++ {
		if s[j] < '0' || '9' < s[j] {
			return -1
		}
		i = i*10 + T(s[j]-'0')
	}
	return i
}

//endregion
