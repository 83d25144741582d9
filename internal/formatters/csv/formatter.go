// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"ssnkit/internal/formatters"
	"ssnkit/internal/report"
)

// Formatter implements CSV output formatting
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "Comma-separated values, one record per row"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

func (f *Formatter) Format(records []report.Record, options formatters.FormatterOptions) (string, error) {
	var builder strings.Builder
	w := csv.NewWriter(&builder)

	if err := w.Write([]string{"input", "op", "ok", "output", "reason", "message"}); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}
	for _, r := range records {
		row := []string{r.Input, r.Op, strconv.FormatBool(r.OK), r.Output, r.Reason, r.Message}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("error writing CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("error flushing CSV output: %w", err)
	}
	return strings.TrimRight(builder.String(), "\n"), nil
}

func init() {
	formatters.Register(NewFormatter())
}
