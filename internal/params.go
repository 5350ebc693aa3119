// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package internal holds helpers shared by the packages of this module.
package internal

import (
	"errors"
	"strconv"
	"strings"
)

// Class numbers as stored in FieldParameters.Class.
const (
	classUniversal       = 0
	classApplication     = 1
	classContextSpecific = 2
	classPrivate         = 3
)

// maxNumber is the largest tag number that fits into a single identifier octet.
const maxNumber = 30

// FieldParameters is the parsed representation of a single encoding link.
type FieldParameters struct {
	HasTag      bool  // true iff a tag number was given
	Class       uint8 // class of the tag, 0 to 3
	Number      uint8 // tag number
	Explicit    bool  // true iff an EXPLICIT tag is in use
	Constructed bool  // true iff the constructed flag is requested
}

// ParseFieldParameters parses a comma-separated list of link options. Unlike
// struct tags of encoding packages, unknown options are reported as an error.
func ParseFieldParameters(str string) (ret FieldParameters, err error) {
	hasClass := false
	for part := range strings.SplitSeq(str, ",") {
		part = strings.TrimSpace(part)
		switch {
		case part == "":
			continue
		case part == "explicit":
			ret.Explicit = true
		case part == "constructed":
			ret.Constructed = true
		case strings.HasPrefix(part, "tag:"):
			i, perr := strconv.ParseUint(part[4:], 10, 8)
			if perr != nil || i > maxNumber {
				return ret, errors.New("invalid tag number " + strconv.Quote(part[4:]))
			}
			if !hasClass {
				ret.Class = classContextSpecific
			}
			ret.Number = uint8(i)
			ret.HasTag = true
		case part == "application":
			ret.Class = classApplication
			hasClass = true
		case part == "private":
			ret.Class = classPrivate
			hasClass = true
		case part == "universal":
			ret.Class = classUniversal
			hasClass = true
		default:
			return ret, errors.New("unknown option " + strconv.Quote(part))
		}
	}
	return ret, nil
}
