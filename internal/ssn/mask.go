// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ssn

import "strings"

// MaskOptions configures display masking. The zero value masks every digit
// with '*' and formats the result into the dashed layout.
type MaskOptions struct {
	// RevealLast4 keeps digits belonging to the serial segment literal, up to
	// the last four. Digits outside the serial segment are never revealed.
	RevealLast4 bool

	// MaskChar substitutes for masked digits. Only its first character is
	// used; empty falls back to '*'.
	MaskChar string

	// DigitsOnly returns the masked digit string without dashes.
	DigitsOnly bool

	// EnforceLength caps extraction at nine digits before masking.
	EnforceLength bool

	// KeepLayout preserves the original character layout instead of
	// reformatting while fewer than nine digits are present: digits are
	// replaced in place and every other character is left alone. Unlike the
	// normalizer's strict layout, digits are still always masked.
	KeepLayout bool
}

// Mask replaces the digits of raw with a mask character while preserving
// separators. It is a total function and never reveals a digit unless
// RevealLast4 asks for it and the digit falls within the serial segment.
func Mask(raw string, opts MaskOptions) string {
	digits := ExtractDigits(raw)
	if opts.EnforceLength && len(digits) > totalDigits {
		digits = digits[:totalDigits]
	}

	mask := '*'
	if opts.MaskChar != "" {
		mask = []rune(opts.MaskChar)[0]
	}

	reveal := 0
	if opts.RevealLast4 {
		if typed := len(digits) - serialOffset; typed > 0 {
			reveal = typed
		}
		if reveal > totalDigits-serialOffset {
			reveal = totalDigits - serialOffset
		}
	}

	masked := strings.Repeat(string(mask), len(digits)-reveal) + digits[len(digits)-reveal:]

	if opts.DigitsOnly {
		return masked
	}
	if opts.KeepLayout && len(digits) < totalDigits {
		return substituteDigits(raw, masked)
	}
	return FormatDigits(masked)
}

// substituteDigits replaces the i-th digit character of raw with the i-th
// character of replacement, leaving all other characters untouched.
func substituteDigits(raw, replacement string) string {
	repl := []rune(replacement)
	var b strings.Builder
	b.Grow(len(raw))
	i := 0
	for _, r := range raw {
		if r >= '0' && r <= '9' && i < len(repl) {
			b.WriteRune(repl[i])
			i++
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
