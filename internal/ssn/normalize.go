// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ssn

import "strings"

// NormalizeOptions configures display normalization. The zero value formats
// any digits found in the input into the dashed layout as they are typed.
type NormalizeOptions struct {
	// StrictLayout suppresses reformatting until a full nine digits are
	// present, so in-progress input is echoed back unchanged instead of
	// jumping around under the caret.
	StrictLayout bool

	// DigitsOnly returns the extracted digit string without dashes.
	DigitsOnly bool

	// EnforceLength caps extraction at nine digits; without it extra digits
	// are kept and appended verbatim after the formatted prefix.
	EnforceLength bool
}

// ExtractDigits returns every decimal digit of raw in order, discarding all
// other characters. It is the lenient, non-failing companion to the parser.
func ExtractDigits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatDigits inserts dashes into a digit string: three characters, a dash,
// two characters, a dash, and the rest unseparated. It performs no extraction
// or validation; non-digit characters pass through positionally, which
// callers must not rely on for validation.
func FormatDigits(digits string) string {
	r := []rune(digits)
	switch {
	case len(r) <= groupOffset:
		return digits
	case len(r) <= serialOffset:
		return string(r[:groupOffset]) + "-" + string(r[groupOffset:])
	default:
		return string(r[:groupOffset]) + "-" + string(r[groupOffset:serialOffset]) + "-" + string(r[serialOffset:])
	}
}

// Normalize produces the UI-facing display form of raw. It is a total
// function: it never rejects, worst case returning the input unchanged.
func Normalize(raw string, opts NormalizeOptions) string {
	digits := ExtractDigits(raw)
	if opts.EnforceLength && len(digits) > totalDigits {
		digits = digits[:totalDigits]
	}
	if opts.DigitsOnly {
		return digits
	}
	if opts.StrictLayout {
		if len(digits) < totalDigits {
			return raw
		}
		return FormatDigits(digits[:totalDigits])
	}
	return FormatDigits(digits)
}
