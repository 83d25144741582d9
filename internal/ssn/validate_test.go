// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ssn

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStrict(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		opts       ValidateOptions
		wantOK     bool
		wantReason ReasonCode
	}{
		{name: "valid dashed", raw: "123-45-6789", wantOK: true},
		{name: "valid plain", raw: "123456789", wantOK: true},
		{name: "incomplete", raw: "123-45", wantReason: ReasonInvalidFormat},
		{name: "area 000", raw: "000-45-6789", wantReason: ReasonInvalidArea},
		{name: "area 666", raw: "666-45-6789", wantReason: ReasonInvalidArea},
		{name: "area 900", raw: "900-45-6789", wantReason: ReasonInvalidArea},
		{name: "area 999", raw: "999-45-6789", wantReason: ReasonInvalidArea},
		{name: "group 00", raw: "123-00-6789", wantReason: ReasonInvalidGroup},
		{name: "serial 0000", raw: "123-45-0000", wantReason: ReasonInvalidSerial},
		{name: "woolworth card", raw: "078-05-1120", wantReason: ReasonDenylisted},
		{name: "advertised 219", raw: "219-09-9999", wantReason: ReasonDenylisted},
		{name: "advertised 457", raw: "457-55-5462", wantReason: ReasonDenylisted},
		{name: "denylisted without dashes", raw: "078051120", wantReason: ReasonDenylisted},
		{
			name:       "pre2011 gap range",
			raw:        "734-12-3456",
			opts:       ValidateOptions{Rules: RulesPre2011},
			wantReason: ReasonInvalidArea,
		},
		{
			name:       "pre2011 ceiling",
			raw:        "773-12-3456",
			opts:       ValidateOptions{Rules: RulesPre2011},
			wantReason: ReasonInvalidArea,
		},
		{name: "post2011 allows 773", raw: "773-12-3456", opts: ValidateOptions{Rules: RulesPost2011}, wantOK: true},
		{name: "both allows 773", raw: "773-12-3456", opts: ValidateOptions{Rules: RulesBoth}, wantOK: true},
		{name: "pre2011 allows 733", raw: "733-12-3456", opts: ValidateOptions{Rules: RulesPre2011}, wantOK: true},
		{name: "pre2011 allows 750", raw: "750-12-3456", opts: ValidateOptions{Rules: RulesPre2011}, wantOK: true},
		{name: "pre2011 allows 772", raw: "772-12-3456", opts: ValidateOptions{Rules: RulesPre2011}, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := Validate(tt.raw, tt.opts)
			if tt.wantOK {
				require.True(t, outcome.OK, "message: %s", outcome.Message)
				assert.Equal(t, FormatDigits(ExtractDigits(tt.raw)), outcome.Normalized)
				assert.Empty(t, outcome.Reason)
				return
			}
			require.False(t, outcome.OK)
			assert.Equal(t, tt.wantReason, outcome.Reason)
			assert.NotEmpty(t, outcome.Message)
		})
	}
}

func TestValidatePartial(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		opts       ValidateOptions
		wantOK     bool
		wantReason ReasonCode
	}{
		{name: "empty still valid", raw: "", wantOK: true},
		{name: "single 9 rejected early", raw: "9", wantReason: ReasonInvalidArea},
		{name: "900 rejected", raw: "900", wantReason: ReasonInvalidArea},
		{name: "single 1 valid", raw: "1", wantOK: true},
		{name: "66 still valid", raw: "66", wantOK: true},
		{name: "666 rejected once complete", raw: "666", wantReason: ReasonInvalidArea},
		{name: "000 rejected once complete", raw: "000", wantReason: ReasonInvalidArea},
		{name: "group 0 in progress valid", raw: "123-0", wantOK: true},
		{name: "group 00 rejected once complete", raw: "123-00", wantReason: ReasonInvalidGroup},
		{name: "serial 000 in progress valid", raw: "123-45-000", wantOK: true},
		{name: "serial 0000 rejected once complete", raw: "123-45-0000", wantReason: ReasonInvalidSerial},
		{name: "denylist only at full length", raw: "078-05-112", wantOK: true},
		{name: "denylist at full length", raw: "078-05-1120", wantReason: ReasonDenylisted},
		{name: "bad character", raw: "12x", wantReason: ReasonInvalidFormat},
		{name: "misplaced dash", raw: "12-3", wantReason: ReasonInvalidFormat},
		{
			name:   "pre2011 area incomplete not judged",
			raw:    "77",
			opts:   ValidateOptions{Rules: RulesPre2011},
			wantOK: true,
		},
		{
			name:       "pre2011 area complete judged",
			raw:        "773",
			opts:       ValidateOptions{Rules: RulesPre2011},
			wantReason: ReasonInvalidArea,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Partial = true
			outcome := Validate(tt.raw, tt.opts)
			if tt.wantOK {
				require.True(t, outcome.OK, "message: %s", outcome.Message)
				return
			}
			require.False(t, outcome.OK)
			assert.Equal(t, tt.wantReason, outcome.Reason)
		})
	}
}

// Partial validation of a complete value must agree exactly with strict
// validation: same verdict, same reason code.
func TestPartialStrictConvergence(t *testing.T) {
	boundary := []string{
		"000000000", "666123456", "899999999", "900000000", "999999999",
		"123006789", "123450000", "078051120", "219099999", "457555462",
		"733121234", "734121234", "749121234", "750121234",
		"772121234", "773121234", "899121234",
		"001010001", "123456789",
	}

	rng := rand.New(rand.NewSource(42))
	samples := append([]string{}, boundary...)
	for i := 0; i < 500; i++ {
		samples = append(samples, fmt.Sprintf("%09d", rng.Intn(1000000000)))
	}

	modes := []RuleMode{RulesBoth, RulesPre2011, RulesPost2011}
	for _, mode := range modes {
		for _, digits := range samples {
			raw := FormatDigits(digits)
			strict := Validate(raw, ValidateOptions{Rules: mode})
			partial := Validate(raw, ValidateOptions{Rules: mode, Partial: true})

			require.Equal(t, strict.OK, partial.OK,
				"mode %s, value %s: strict=%v partial=%v", mode, raw, strict, partial)
			assert.Equal(t, strict.Reason, partial.Reason, "mode %s, value %s", mode, raw)
			if strict.OK {
				assert.Equal(t, strict.Normalized, partial.Normalized)
			}
		}
	}
}

// Once a completed segment fails, no suffix can repair it.
func TestMonotonicNarrowing(t *testing.T) {
	cases := []struct {
		prefix string
		reason ReasonCode
	}{
		{prefix: "9", reason: ReasonInvalidArea},
		{prefix: "666", reason: ReasonInvalidArea},
		{prefix: "000", reason: ReasonInvalidArea},
		{prefix: "12300", reason: ReasonInvalidGroup},
	}
	suffixes := []string{"", "1", "12", "123", "1234", "12341"}

	for _, c := range cases {
		base := Validate(c.prefix, ValidateOptions{Partial: true})
		require.False(t, base.OK)
		require.Equal(t, c.reason, base.Reason)

		for _, suffix := range suffixes {
			grown := c.prefix + suffix
			if len(grown) > totalDigits {
				continue
			}
			outcome := Validate(grown, ValidateOptions{Partial: true})
			assert.False(t, outcome.OK, "value %s", grown)
			assert.Equal(t, c.reason, outcome.Reason, "value %s", grown)
		}
	}
}

// Rule ordering is observable: area fires before group, group before serial,
// and the denylist is checked last.
func TestRuleOrdering(t *testing.T) {
	for _, partial := range []bool{false, true} {
		opts := ValidateOptions{Partial: partial}

		outcome := Validate("666-00-0000", opts)
		assert.Equal(t, ReasonInvalidArea, outcome.Reason, "partial=%v", partial)

		outcome = Validate("123-00-0000", opts)
		assert.Equal(t, ReasonInvalidGroup, outcome.Reason, "partial=%v", partial)

		outcome = Validate("123-45-0000", opts)
		assert.Equal(t, ReasonInvalidSerial, outcome.Reason, "partial=%v", partial)
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("123-45-6789", ValidateOptions{}))
	assert.False(t, IsValid("666-45-6789", ValidateOptions{}))
	assert.True(t, IsValid("123-4", ValidateOptions{Partial: true}))
	assert.False(t, IsValid("123-4", ValidateOptions{}))
}

func TestParseRuleMode(t *testing.T) {
	for _, mode := range []RuleMode{RulesBoth, RulesPre2011, RulesPost2011} {
		parsed, err := ParseRuleMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, parsed)
	}

	parsed, err := ParseRuleMode("")
	require.NoError(t, err)
	assert.Equal(t, RulesBoth, parsed)

	_, err = ParseRuleMode("2011")
	assert.Error(t, err)
}
