// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package ssn validates, normalizes, masks and generates United States
// Social Security Numbers represented as strings. All operations are pure
// functions over their inputs and safe for concurrent use; malformed input
// is a fully specified outcome, never a panic.
package ssn

// ReasonCode classifies why a value failed validation.
type ReasonCode string

const (
	ReasonInvalidFormat ReasonCode = "INVALID_FORMAT"
	ReasonInvalidArea   ReasonCode = "INVALID_AREA"
	ReasonInvalidGroup  ReasonCode = "INVALID_GROUP"
	ReasonInvalidSerial ReasonCode = "INVALID_SERIAL"
	ReasonDenylisted    ReasonCode = "DENYLISTED"
)

// Outcome is the structured result of a validation call. Exactly one of the
// two shapes occurs: OK with the normalized dashed form, or not-OK with a
// reason code and human-readable message.
type Outcome struct {
	OK         bool       `json:"ok" yaml:"ok"`
	Normalized string     `json:"normalized,omitempty" yaml:"normalized,omitempty"`
	Reason     ReasonCode `json:"reason,omitempty" yaml:"reason,omitempty"`
	Message    string     `json:"message,omitempty" yaml:"message,omitempty"`
}

func invalidOutcome(reason ReasonCode, message string) Outcome {
	return Outcome{Reason: reason, Message: message}
}

// ValidateOptions configures a validation call. The zero value is strict
// validation of a complete SSN, dashes optional, under RulesBoth.
type ValidateOptions struct {
	// Partial switches to typing mode: the input is an in-progress value and
	// the question becomes "could this still become valid". At nine digits
	// partial and strict validation agree exactly.
	Partial bool

	// Rules selects the area rule set, see RuleMode.
	Rules RuleMode

	// RequireDashes rejects input not following the dashed layout. In strict
	// mode the value must match DDD-DD-DDDD; in partial mode every prefix
	// must be a prefix of that layout.
	RequireDashes bool
}

// Validate checks raw against the SSN format and numeric rules and returns a
// structured outcome. It never panics on any string input.
func Validate(raw string, opts ValidateOptions) Outcome {
	var (
		d    Digits
		ferr *FormatError
	)
	if opts.Partial {
		d, ferr = ParsePartial(raw, opts.RequireDashes)
	} else {
		d, ferr = ParseStrict(raw, opts.RequireDashes)
	}
	if ferr != nil {
		return invalidOutcome(ReasonInvalidFormat, ferr.Message)
	}
	return evaluate(d, opts.Rules)
}

// IsValid is a convenience wrapper around Validate that discards the
// structured result.
func IsValid(raw string, opts ValidateOptions) bool {
	return Validate(raw, opts).OK
}
