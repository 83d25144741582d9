// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"ssnkit/internal/formatters"
	"ssnkit/internal/report"

	"github.com/fatih/color"
)

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"red":    color.New(color.FgRed),
			"cyan":   color.New(color.FgCyan),
			"yellow": color.New(color.FgYellow),
			"white":  color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(records []report.Record, options formatters.FormatterOptions) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}
	if len(records) == 0 {
		return "No values processed.", nil
	}
	if options.Quiet {
		return f.formatQuiet(records), nil
	}
	return f.formatFull(records), nil
}

// formatQuiet emits one line per record, suitable for scripts and hooks
func (f *Formatter) formatQuiet(records []report.Record) string {
	var builder strings.Builder
	for _, r := range records {
		if r.OK {
			builder.WriteString(f.colors["green"].Sprintf("ok"))
			if r.Output != "" {
				builder.WriteString(" " + r.Output)
			}
		} else {
			builder.WriteString(f.colors["red"].Sprintf("invalid"))
			builder.WriteString(" " + r.Reason)
		}
		builder.WriteString("\n")
	}
	return strings.TrimRight(builder.String(), "\n")
}

func (f *Formatter) formatFull(records []report.Record) string {
	var builder strings.Builder

	for i, r := range records {
		if i > 0 {
			builder.WriteString("\n")
		}
		f.writeRecord(&builder, r)
	}

	summary := report.Summarize(records)
	builder.WriteString("\n")
	builder.WriteString(f.colors["white"].Sprintf("Summary:"))
	builder.WriteString(fmt.Sprintf(" %d processed, ", summary.Total))
	builder.WriteString(f.colors["green"].Sprintf("%d ok", summary.Valid))
	builder.WriteString(", ")
	if summary.Invalid > 0 {
		builder.WriteString(f.colors["red"].Sprintf("%d invalid", summary.Invalid))
	} else {
		builder.WriteString("0 invalid")
	}

	return builder.String()
}

func (f *Formatter) writeRecord(builder *strings.Builder, r report.Record) {
	builder.WriteString(f.colors["cyan"].Sprintf("[%s]", r.Op))
	if r.Input != "" {
		builder.WriteString(" " + r.Input)
	}
	builder.WriteString("\n")

	if r.OK {
		builder.WriteString("  " + f.colors["green"].Sprintf("OK"))
		if r.Output != "" {
			builder.WriteString("  " + r.Output)
		}
		builder.WriteString("\n")
		return
	}

	builder.WriteString("  " + f.colors["red"].Sprintf("INVALID") + "  " + f.colors["yellow"].Sprintf("%s", r.Reason))
	if r.Message != "" {
		builder.WriteString("  " + r.Message)
	}
	builder.WriteString("\n")
}

func init() {
	formatters.Register(NewFormatter())
}
