// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ssn

import "ssnkit/internal/help"

// Topics returns the help providers for the four core operations.
func Topics() []help.Provider {
	return []help.Provider{
		validateTopic{},
		normalizeTopic{},
		maskTopic{},
		generateTopic{},
	}
}

type validateTopic struct{}

// GetTopicInfo returns standardized information about validation
func (validateTopic) GetTopicInfo() help.TopicInfo {
	return help.TopicInfo{
		Name:             "validate",
		ShortDescription: "Check a value against SSA format and numeric rules",
		DetailedDescription: `Validation checks a value against the official Social Security Administration rules: the area number must not be 000 or 666 and must be below 900, the group number must not be 00, and the serial number must not be 0000. Three publicly advertised sample SSNs are denylisted even though they pass every numeric rule.

In strict mode the value must be a complete SSN. In typing mode (--partial) the question becomes "could this still become valid": rules fire only once their segment is complete, except that a leading 9 is rejected immediately because no area number starting with 9 is ever issued. A nine-digit value gets the same answer in both modes.

Rules are checked in a fixed order: area, then group, then serial, then the denylist.`,
		Rules: []string{
			"Area numbers 000, 666 and 900-999 are never issued",
			"Pre-2011 rules additionally exclude areas 734-749 and 773-899",
			"Group number 00 is never issued",
			"Serial number 0000 is never issued",
			"078-05-1120, 219-09-9999 and 457-55-5462 are denylisted sample values",
		},
		Options: []help.OptionDoc{
			{Flag: "--partial", Description: "Accept in-progress values that could still become valid"},
			{Flag: "--rules", Value: "<mode>", Description: "Area rule set: pre2011, post2011, both"},
			{Flag: "--require-dashes", Description: "Reject values not following the DDD-DD-DDDD layout"},
		},
		Examples: []string{
			"ssnkit --validate 123-45-6789",
			"ssnkit --validate 773-12-3456 --rules pre2011",
			"ssnkit --validate 123-4 --partial",
			"cat values.txt | ssnkit --stdin --validate \"\" --format json",
		},
	}
}

type normalizeTopic struct{}

// GetTopicInfo returns standardized information about normalization
func (normalizeTopic) GetTopicInfo() help.TopicInfo {
	return help.TopicInfo{
		Name:             "normalize",
		ShortDescription: "Format a value into the dashed display form",
		DetailedDescription: `Normalization extracts every digit from the input in order, discards everything else, and inserts dashes into the DDD-DD-DDDD layout as digits accumulate: "1234" becomes "123-4". It never rejects input.

Digits beyond the ninth are appended verbatim unless --enforce-length caps extraction at nine. With --strict-layout the input is returned unchanged until a full nine digits are present, which keeps in-progress form fields from jumping around while the user types.`,
		Options: []help.OptionDoc{
			{Flag: "--digits-only", Description: "Return the digit string without dashes"},
			{Flag: "--enforce-length", Description: "Cap extraction at nine digits"},
			{Flag: "--strict-layout", Description: "Do not reformat until nine digits are present"},
		},
		Examples: []string{
			"ssnkit --normalize 1234",
			"ssnkit --normalize \"123 45 6789\"",
			"ssnkit --normalize 12345678999 --enforce-length",
		},
	}
}

type maskTopic struct{}

// GetTopicInfo returns standardized information about masking
func (maskTopic) GetTopicInfo() help.TopicInfo {
	return help.TopicInfo{
		Name:             "mask",
		ShortDescription: "Replace digits with a mask character for display",
		DetailedDescription: `Masking replaces digit characters with a mask character while keeping separators intact. With --reveal-last4 the digits that fall within the serial segment stay literal, up to the last four; digits in the area or group segments are never revealed.

Masking is total: any string input produces a masked string, and without --reveal-last4 no digit from the input survives into the output.`,
		Options: []help.OptionDoc{
			{Flag: "--reveal-last4", Description: "Keep serial-segment digits visible, up to four"},
			{Flag: "--mask-char", Value: "<char>", Description: "Mask character (default: *)"},
			{Flag: "--digits-only", Description: "Return the masked digit string without dashes"},
		},
		Examples: []string{
			"ssnkit --mask 123-45-6789 --reveal-last4",
			"ssnkit --mask 123456789 --mask-char '#'",
		},
	}
}

type generateTopic struct{}

// GetTopicInfo returns standardized information about generation
func (generateTopic) GetTopicInfo() help.TopicInfo {
	return help.TopicInfo{
		Name:             "generate",
		ShortDescription: "Produce random or fixed SSN-shaped values",
		DetailedDescription: `Generation produces SSN-shaped strings. The default public mode returns one of the three publicly advertised sample values, which the validator denylists; it is the only mode safe for documentation and demo output that others might see.

The pre2011, post2011 and any modes rejection-sample values that pass the corresponding validation rules and are never denylisted. Randomness comes from the system RNG, falling back to a non-cryptographic generator if the system RNG is unavailable.`,
		Options: []help.OptionDoc{
			{Flag: "--mode", Value: "<mode>", Description: "public, pre2011, post2011 or any"},
			{Flag: "--count", Value: "<n>", Description: "Number of values to generate"},
			{Flag: "--public", Value: "<value>", Description: "Force a specific public placeholder"},
			{Flag: "--digits-only", Description: "Omit the dashes"},
		},
		Examples: []string{
			"ssnkit --generate",
			"ssnkit --generate --mode post2011 --count 10",
			"ssnkit --generate --mode pre2011 --digits-only --format csv",
		},
	}
}
