// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"testing"

	"ssnkit/internal/formatters"
	"ssnkit/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	records := []report.Record{
		{Input: "***-**-6789", Op: "validate", OK: true, Output: "***-**-6789"},
		{Input: "***", Op: "validate", OK: false, Reason: "INVALID_AREA", Message: "area number 666 is never issued"},
	}

	out, err := NewFormatter().Format(records, formatters.FormatterOptions{})
	require.NoError(t, err)

	var doc struct {
		Results []report.Record `json:"results"`
		Summary report.Summary  `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Len(t, doc.Results, 2)
	assert.Equal(t, report.Summary{Total: 2, Valid: 1, Invalid: 1}, doc.Summary)
	assert.Equal(t, "INVALID_AREA", doc.Results[1].Reason)
}

func TestFormatEmpty(t *testing.T) {
	out, err := NewFormatter().Format(nil, formatters.FormatterOptions{})
	require.NoError(t, err)
	assert.Contains(t, out, `"results": []`)
}

func TestRegistered(t *testing.T) {
	f, ok := formatters.Get("json")
	require.True(t, ok)
	assert.Equal(t, ".json", f.FileExtension())
}
