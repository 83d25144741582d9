// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ssn

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		opts MaskOptions
		want string
	}{
		{name: "full mask", raw: "123-45-6789", want: "***-**-****"},
		{name: "reveal last four", raw: "123-45-6789", opts: MaskOptions{RevealLast4: true}, want: "***-**-6789"},
		{name: "plain digits reveal", raw: "123456789", opts: MaskOptions{RevealLast4: true}, want: "***-**-6789"},
		{name: "custom mask char", raw: "123-45-6789", opts: MaskOptions{MaskChar: "#"}, want: "###-##-####"},
		{name: "multi char mask uses first", raw: "123-45-6789", opts: MaskOptions{MaskChar: "xy"}, want: "xxx-xx-xxxx"},
		{name: "empty mask char falls back", raw: "123-45-6789", opts: MaskOptions{MaskChar: ""}, want: "***-**-****"},
		{name: "digits only", raw: "123-45-6789", opts: MaskOptions{DigitsOnly: true, RevealLast4: true}, want: "*****6789"},
		{name: "partial input", raw: "1234", want: "***-*"},
		{name: "partial reveal before serial", raw: "12345", opts: MaskOptions{RevealLast4: true}, want: "***-**"},
		{name: "partial reveal one serial digit", raw: "123456", opts: MaskOptions{RevealLast4: true}, want: "***-**-6"},
		{name: "partial reveal three serial digits", raw: "12345678", opts: MaskOptions{RevealLast4: true}, want: "***-**-678"},
		{name: "keep layout partial", raw: "123 45", opts: MaskOptions{KeepLayout: true}, want: "*** **"},
		{name: "keep layout complete reformats", raw: "123456789", opts: MaskOptions{KeepLayout: true}, want: "***-**-****"},
		{name: "overflow capped", raw: "12345678999", opts: MaskOptions{EnforceLength: true, RevealLast4: true}, want: "***-**-6789"},
		{name: "empty input", raw: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Mask(tt.raw, tt.opts))
		})
	}
}

// Without RevealLast4 no digit of the input survives into the output,
// regardless of input shape or options.
func TestMaskNeverLeaks(t *testing.T) {
	inputs := []string{
		"", "1", "12", "123", "1234", "123-45-6789", "123456789",
		"12345678999", "1a2b3c4d5e6f7g8h9i", " 999 99 9999 ",
	}
	optVariants := []MaskOptions{
		{},
		{DigitsOnly: true},
		{KeepLayout: true},
		{EnforceLength: true},
		{MaskChar: "#", KeepLayout: true},
	}
	for _, raw := range inputs {
		for _, opts := range optVariants {
			masked := Mask(raw, opts)
			assert.False(t, strings.ContainsAny(masked, "0123456789"),
				"input %q opts %+v leaked digits: %q", raw, opts, masked)
		}
	}
}

// Revealed digits only ever come from the serial segment.
func TestMaskRevealBoundary(t *testing.T) {
	for length := 0; length <= totalDigits; length++ {
		raw := strings.Repeat("7", length)
		masked := Mask(raw, MaskOptions{RevealLast4: true, DigitsOnly: true})

		wantRevealed := length - serialOffset
		if wantRevealed < 0 {
			wantRevealed = 0
		}
		revealed := strings.Count(masked, "7")
		assert.Equal(t, wantRevealed, revealed, "length %d: %q", length, masked)
	}
}
