// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"fmt"

	"ssnkit/internal/formatters"
	"ssnkit/internal/report"
)

// Formatter implements JSON output formatting
type Formatter struct{}

// NewFormatter creates a new JSON formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Machine-readable JSON output"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

// document is the top-level JSON shape
type document struct {
	Results []report.Record `json:"results"`
	Summary report.Summary  `json:"summary"`
}

func (f *Formatter) Format(records []report.Record, options formatters.FormatterOptions) (string, error) {
	doc := document{
		Results: records,
		Summary: report.Summarize(records),
	}
	if doc.Results == nil {
		doc.Results = []report.Record{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error marshaling results to JSON: %w", err)
	}
	return string(data), nil
}

func init() {
	formatters.Register(NewFormatter())
}
