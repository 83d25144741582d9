// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package schema adapts the core SSN validator to a field-rule idiom for use
// in form validation pipelines: a "typing" rule that accepts partially valid
// input on every keystroke, and a "submit" rule that requires full strict
// validity and yields the canonical dashed form.
package schema

import (
	"errors"
	"fmt"

	"ssnkit/internal/ssn"
)

// FieldError describes why a field failed validation.
type FieldError struct {
	Field   string
	Code    string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Field, e.Message, e.Code)
}

// Rule pairs a check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error FieldError
}

// Typing returns a rule that accepts any value which could still grow into a
// valid SSN. Empty input passes.
func Typing(field, value string) Rule {
	return rule(field, value, ssn.ValidateOptions{Partial: true})
}

// Submit returns a rule that requires a complete, strictly valid SSN.
func Submit(field, value string) Rule {
	return rule(field, value, ssn.ValidateOptions{})
}

func rule(field, value string, opts ssn.ValidateOptions) Rule {
	out := ssn.Validate(value, opts)
	return Rule{
		Check: func() bool { return out.OK },
		Error: FieldError{
			Field:   field,
			Code:    string(out.Reason),
			Message: out.Message,
		},
	}
}

// Apply evaluates the rules and returns the joined errors of every failing
// rule, or nil when all pass.
func Apply(rules ...Rule) error {
	var errs []error
	for _, r := range rules {
		if !r.Check() {
			errs = append(errs, r.Error)
		}
	}
	return errors.Join(errs...)
}

// Canonical normalizes value for submission: it strict-validates the digits
// extracted from value and returns the canonical dashed form, or the
// validation outcome's error.
func Canonical(field, value string) (string, error) {
	digits := ssn.Normalize(value, ssn.NormalizeOptions{DigitsOnly: true, EnforceLength: true})
	out := ssn.Validate(digits, ssn.ValidateOptions{})
	if !out.OK {
		return "", FieldError{Field: field, Code: string(out.Reason), Message: out.Message}
	}
	return out.Normalized, nil
}
