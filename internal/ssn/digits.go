// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ssn

import (
	"fmt"
	"regexp"
)

// Segment layout of a Social Security Number: three fixed-width segments over
// nine digits, with optional dashes after the area and group segments.
const (
	groupOffset  = 3 // digit offset where the group segment begins
	serialOffset = 5 // digit offset where the serial segment begins

	totalDigits = 9
)

var (
	dashedPattern = regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`)
	plainPattern  = regexp.MustCompile(`^\d{9}$`)
)

// Digits is a parsed digit sequence of length 0-9 together with a record of
// which legal separator slots have been used. The zero value is an empty,
// trivially valid sequence.
type Digits struct {
	buf string

	// Separator bookkeeping: at most one dash may appear after the area
	// segment (digit offset 3) and one after the group segment (offset 5).
	dashAfterArea  bool
	dashAfterGroup bool
}

// String returns the raw digit characters without separators.
func (d Digits) String() string { return d.buf }

// Len returns the number of digits accumulated so far.
func (d Digits) Len() int { return len(d.buf) }

// Area returns the area segment digits accumulated so far (up to 3).
func (d Digits) Area() string {
	if len(d.buf) > groupOffset {
		return d.buf[:groupOffset]
	}
	return d.buf
}

// Group returns the group segment digits accumulated so far (up to 2).
func (d Digits) Group() string {
	if len(d.buf) <= groupOffset {
		return ""
	}
	if len(d.buf) > serialOffset {
		return d.buf[groupOffset:serialOffset]
	}
	return d.buf[groupOffset:]
}

// Serial returns the serial segment digits accumulated so far (up to 4).
func (d Digits) Serial() string {
	if len(d.buf) <= serialOffset {
		return ""
	}
	return d.buf[serialOffset:]
}

// Complete reports whether all nine digits are present.
func (d Digits) Complete() bool { return len(d.buf) == totalDigits }

// FormatError describes input that cannot be part of a well-formed SSN in the
// requested parse mode. It is a legitimate outcome, not a failure: callers
// translate it into an INVALID_FORMAT validation result.
type FormatError struct {
	Message string
}

func (e *FormatError) Error() string { return e.Message }

func formatErrorf(format string, args ...any) *FormatError {
	return &FormatError{Message: fmt.Sprintf(format, args...)}
}

// ParseStrict parses a complete SSN. The input must match DDD-DD-DDDD, or be
// exactly nine digits when requireDashes is false. No partial input is
// accepted.
func ParseStrict(raw string, requireDashes bool) (Digits, *FormatError) {
	if dashedPattern.MatchString(raw) {
		return Digits{
			buf:            raw[:3] + raw[4:6] + raw[7:],
			dashAfterArea:  true,
			dashAfterGroup: true,
		}, nil
	}
	if !requireDashes && plainPattern.MatchString(raw) {
		return Digits{buf: raw}, nil
	}
	if requireDashes {
		return Digits{}, formatErrorf("value must match DDD-DD-DDDD")
	}
	return Digits{}, formatErrorf("value must match DDD-DD-DDDD or be exactly 9 digits")
}

// ParsePartial parses an in-progress SSN left to right, accepting any prefix
// that could still grow into a well-formed value. A dash is legal only
// directly after a complete area segment (3 digits) or group segment
// (5 digits), once each. When requireDashes is set, digits typed past a
// separator slot without the dash in place are rejected: "1234" is not a
// prefix of the dashed format, "123-4" is.
//
// Empty input parses to an empty Digits. More than nine digits is an error
// here; unbounded overflow is handled by Normalize, not the parser.
func ParsePartial(raw string, requireDashes bool) (Digits, *FormatError) {
	var d Digits
	for i, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			if d.Len() == totalDigits {
				return Digits{}, formatErrorf("more than %d digits", totalDigits)
			}
			if requireDashes {
				if d.Len() == groupOffset && !d.dashAfterArea {
					return Digits{}, formatErrorf("missing dash after area segment")
				}
				if d.Len() == serialOffset && !d.dashAfterGroup {
					return Digits{}, formatErrorf("missing dash after group segment")
				}
			}
			d.buf += string(r)
		case r == '-':
			switch {
			case d.Len() == groupOffset && !d.dashAfterArea:
				d.dashAfterArea = true
			case d.Len() == serialOffset && !d.dashAfterGroup:
				d.dashAfterGroup = true
			default:
				return Digits{}, formatErrorf("misplaced dash at position %d", i+1)
			}
		default:
			return Digits{}, formatErrorf("character %q is not a digit or dash", r)
		}
	}
	return d, nil
}
