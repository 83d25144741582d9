// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package report

// Record is the result of applying one operation to one input value. Every
// CLI operation produces records, and formatters render them.
type Record struct {
	// Input is the value the operation ran on, as safe for display: the CLI
	// masks it by default so raw SSNs do not leak into logs or CI output.
	Input string `json:"input,omitempty" yaml:"input,omitempty"`

	// Op names the operation: validate, normalize, mask or generate.
	Op string `json:"op" yaml:"op"`

	// OK reports whether the operation succeeded. Normalize and mask are
	// total, so their records always have OK set.
	OK bool `json:"ok" yaml:"ok"`

	// Output is the operation's result: the normalized form for a valid
	// validation, the formatted or masked string, or a generated value.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// Reason is the machine-readable failure code, empty when OK.
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`

	// Message is the human-readable failure detail, empty when OK.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Summary aggregates counts over a batch of records.
type Summary struct {
	Total   int `json:"total" yaml:"total"`
	Valid   int `json:"valid" yaml:"valid"`
	Invalid int `json:"invalid" yaml:"invalid"`
}

// Summarize computes the summary for a batch of records.
func Summarize(records []Record) Summary {
	s := Summary{Total: len(records)}
	for _, r := range records {
		if r.OK {
			s.Valid++
		} else {
			s.Invalid++
		}
	}
	return s
}
