// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ssn

import (
	"fmt"
	"strconv"
)

// RuleMode selects which area-number rule set applies. The Social Security
// Administration stopped reserving the 734-749 and 773+ area ranges when it
// moved to randomized assignment in June 2011, so values in those ranges are
// invalid under the pre-2011 rules but fine under the post-2011 ones.
//
// RulesBoth accepts anything the post-2011 rules accept. Offering a separate
// "either rule set passes" semantics would collapse to the same outcomes, so
// RulesBoth and RulesPost2011 are behaviorally identical and RulesBoth is the
// zero value.
type RuleMode int

const (
	RulesBoth RuleMode = iota
	RulesPre2011
	RulesPost2011
)

// String returns the configuration name of the rule mode.
func (m RuleMode) String() string {
	switch m {
	case RulesPre2011:
		return "pre2011"
	case RulesPost2011:
		return "post2011"
	default:
		return "both"
	}
}

// ParseRuleMode converts a configuration string into a RuleMode.
func ParseRuleMode(s string) (RuleMode, error) {
	switch s {
	case "pre2011":
		return RulesPre2011, nil
	case "post2011":
		return RulesPost2011, nil
	case "both", "":
		return RulesBoth, nil
	}
	return RulesBoth, fmt.Errorf("unknown rule mode %q (want pre2011, post2011 or both)", s)
}

// Area ranges retired by the pre-2011 assignment scheme.
const (
	pre2011GapLow  = 734
	pre2011GapHigh = 749
	pre2011Ceiling = 773
)

// publicSamples are the three SSNs that were publicly advertised as examples
// (the Woolworth wallet card number and two promotional values). They pass
// every numeric rule but are permanently denylisted, and they are the only
// values the generator's public mode will produce.
var publicSamples = [...]string{
	"078-05-1120",
	"219-09-9999",
	"457-55-5462",
}

var denylist = map[string]struct{}{
	publicSamples[0]: {},
	publicSamples[1]: {},
	publicSamples[2]: {},
}

// IsDenylisted reports whether the canonical dashed form of a complete SSN is
// one of the publicly advertised placeholder values.
func IsDenylisted(canonical string) bool {
	_, ok := denylist[canonical]
	return ok
}

// PublicSamples returns the fixed placeholder values in canonical dashed form.
func PublicSamples() []string {
	out := make([]string, len(publicSamples))
	copy(out, publicSamples[:])
	return out
}

// evaluate applies the layered numeric rules to a digit sequence of any
// length. Each rule fires only once its segment is complete; the single
// exception is the '9' look-ahead, which rejects as soon as the first digit
// is known because every completed area >= 900 is invalid regardless of the
// remaining digits.
//
// Rule ordering is part of the contract: area before group, group before
// serial, denylist last. Callers may depend on receiving INVALID_AREA rather
// than INVALID_GROUP when both would apply.
func evaluate(d Digits, mode RuleMode) Outcome {
	s := d.String()

	if len(s) >= 1 && s[0] == '9' {
		return invalidOutcome(ReasonInvalidArea, "area numbers 900-999 are never issued")
	}
	if len(s) >= groupOffset {
		area, _ := strconv.Atoi(s[:groupOffset])
		switch {
		case area == 0:
			return invalidOutcome(ReasonInvalidArea, "area number 000 is never issued")
		case area == 666:
			return invalidOutcome(ReasonInvalidArea, "area number 666 is never issued")
		case area >= 900:
			return invalidOutcome(ReasonInvalidArea, "area numbers 900-999 are never issued")
		}
		if mode == RulesPre2011 {
			if area >= pre2011GapLow && area <= pre2011GapHigh {
				return invalidOutcome(ReasonInvalidArea,
					fmt.Sprintf("area numbers %d-%d were not assigned before 2011", pre2011GapLow, pre2011GapHigh))
			}
			if area >= pre2011Ceiling {
				return invalidOutcome(ReasonInvalidArea,
					fmt.Sprintf("area numbers %d and above were not assigned before 2011", pre2011Ceiling))
			}
		}
	}
	if len(s) >= serialOffset && s[groupOffset:serialOffset] == "00" {
		return invalidOutcome(ReasonInvalidGroup, "group number 00 is never issued")
	}
	if len(s) == totalDigits {
		if s[serialOffset:] == "0000" {
			return invalidOutcome(ReasonInvalidSerial, "serial number 0000 is never issued")
		}
		if IsDenylisted(FormatDigits(s)) {
			return invalidOutcome(ReasonDenylisted, "value is a publicly advertised sample SSN")
		}
	}

	return Outcome{OK: true, Normalized: FormatDigits(s)}
}
