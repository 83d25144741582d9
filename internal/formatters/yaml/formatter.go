// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"fmt"
	"strings"

	"ssnkit/internal/formatters"
	"ssnkit/internal/report"

	"gopkg.in/yaml.v3"
)

// Formatter implements YAML output formatting
type Formatter struct{}

// NewFormatter creates a new YAML formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "yaml"
}

func (f *Formatter) Description() string {
	return "Machine-readable YAML output"
}

func (f *Formatter) FileExtension() string {
	return ".yaml"
}

// document is the top-level YAML shape
type document struct {
	Results []report.Record `yaml:"results"`
	Summary report.Summary  `yaml:"summary"`
}

func (f *Formatter) Format(records []report.Record, options formatters.FormatterOptions) (string, error) {
	doc := document{
		Results: records,
		Summary: report.Summarize(records),
	}
	if doc.Results == nil {
		doc.Results = []report.Record{}
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("error marshaling results to YAML: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func init() {
	formatters.Register(NewFormatter())
}
