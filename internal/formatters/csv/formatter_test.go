// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"encoding/csv"
	"strings"
	"testing"

	"ssnkit/internal/formatters"
	"ssnkit/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	records := []report.Record{
		{Op: "generate", OK: true, Output: "078-05-1120"},
		{Input: "***", Op: "validate", OK: false, Reason: "INVALID_FORMAT", Message: "value, with comma"},
	}

	out, err := NewFormatter().Format(records, formatters.FormatterOptions{})
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"input", "op", "ok", "output", "reason", "message"}, rows[0])
	assert.Equal(t, "078-05-1120", rows[1][3])
	assert.Equal(t, "value, with comma", rows[2][5])
}

func TestRegistered(t *testing.T) {
	f, ok := formatters.Get("csv")
	require.True(t, ok)
	assert.Equal(t, ".csv", f.FileExtension())
}
