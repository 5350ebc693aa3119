// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asn1

import (
	"slices"
	"strconv"
	"strings"
)

//region [UNIVERSAL 6] OBJECT IDENTIFIER

// OID represents an ASN.1 OBJECT IDENTIFIER as a sequence of arcs.
// The first two arcs are stored separately although BER packs them into a
// single octet.
type OID []uint64

// Equal reports whether oid and other represent the same identifier.
func (oid OID) Equal(other OID) bool {
	return slices.Equal(oid, other)
}

// String returns the dot-separated notation of oid.
func (oid OID) String() string {
	var s strings.Builder
	s.Grow(32)

	buf := make([]byte, 0, 20)
	for i, v := range oid {
		if i > 0 {
			s.WriteByte('.')
		}
		s.Write(strconv.AppendUint(buf, v, 10))
	}

	return s.String()
}

//endregion
