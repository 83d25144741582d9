// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"strings"
	"testing"

	"ssnkit/internal/formatters"
	"ssnkit/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	records := []report.Record{
		{Input: "***-**-****", Op: "validate", OK: true, Output: "***-**-****"},
		{Input: "***", Op: "validate", OK: false, Reason: "INVALID_AREA", Message: "area number 666 is never issued"},
	}

	out, err := NewFormatter().Format(records, formatters.FormatterOptions{NoColor: true})
	require.NoError(t, err)

	assert.Contains(t, out, "[validate]")
	assert.Contains(t, out, "OK")
	assert.Contains(t, out, "INVALID_AREA")
	assert.Contains(t, out, "2 processed")
	assert.Contains(t, out, "1 invalid")
}

func TestFormatQuiet(t *testing.T) {
	records := []report.Record{
		{Op: "validate", OK: true, Output: "***-**-****"},
		{Op: "validate", OK: false, Reason: "INVALID_GROUP"},
	}

	out, err := NewFormatter().Format(records, formatters.FormatterOptions{NoColor: true, Quiet: true})
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "ok"))
	assert.True(t, strings.HasPrefix(lines[1], "invalid INVALID_GROUP"))
}

func TestFormatEmpty(t *testing.T) {
	out, err := NewFormatter().Format(nil, formatters.FormatterOptions{NoColor: true})
	require.NoError(t, err)
	assert.Equal(t, "No values processed.", out)
}

func TestRegistered(t *testing.T) {
	f, ok := formatters.Get("text")
	require.True(t, ok)
	assert.Equal(t, ".txt", f.FileExtension())
}
