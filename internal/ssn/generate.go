// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ssn

import (
	crand "crypto/rand"
	"fmt"
	"math/big"
	mrand "math/rand"
)

// GenerateMode selects what kind of SSN-shaped value to produce. The zero
// value is GeneratePublic, the only mode safe for examples and output that
// others might see.
type GenerateMode int

const (
	// GeneratePublic returns one of the three fixed, publicly advertised
	// placeholder values, which the validator permanently denylists.
	GeneratePublic GenerateMode = iota

	// GeneratePre2011 samples a value valid under the pre-2011 area rules.
	GeneratePre2011

	// GeneratePost2011 samples a value valid under the post-2011 area rules.
	GeneratePost2011

	// GenerateAny flips a coin between the two sampled modes.
	GenerateAny
)

// String returns the configuration name of the generate mode.
func (m GenerateMode) String() string {
	switch m {
	case GeneratePre2011:
		return "pre2011"
	case GeneratePost2011:
		return "post2011"
	case GenerateAny:
		return "any"
	default:
		return "public"
	}
}

// ParseGenerateMode converts a configuration string into a GenerateMode.
func ParseGenerateMode(s string) (GenerateMode, error) {
	switch s {
	case "public", "":
		return GeneratePublic, nil
	case "pre2011":
		return GeneratePre2011, nil
	case "post2011":
		return GeneratePost2011, nil
	case "any":
		return GenerateAny, nil
	}
	return GeneratePublic, fmt.Errorf("unknown generate mode %q (want public, pre2011, post2011 or any)", s)
}

// Source supplies randomness for generation. *math/rand.Rand satisfies it,
// which is how tests get deterministic output.
type Source interface {
	Intn(n int) int
}

// cryptoSource draws from the system RNG. If crypto/rand fails it degrades
// to math/rand instead of failing generation; the fallback is observable
// behavior and is deliberately not hidden behind an error.
type cryptoSource struct{}

func (cryptoSource) Intn(n int) int {
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return mrand.Intn(n)
	}
	return int(v.Int64())
}

// maxSampleAttempts bounds rejection sampling. The exclusion ranges are so
// narrow that more than a couple of iterations means the sampler is
// misconfigured, and that is reported as an error rather than silently
// returning a denylisted value.
const maxSampleAttempts = 1000

// GenerateOptions configures generation. The zero value produces a random
// public placeholder in dashed form using the system RNG.
type GenerateOptions struct {
	Mode GenerateMode

	// DigitsOnly omits the dashes from the result.
	DigitsOnly bool

	// Fixed forces a specific placeholder in public mode. It may be given
	// dashed or as nine digits but must be one of the three known samples.
	Fixed string

	// Rand overrides the randomness source; nil means the system RNG.
	Rand Source
}

// Generate produces an SSN-shaped string per the options. Sampled modes
// always satisfy the corresponding validation rules and never return a
// denylisted value.
func Generate(opts GenerateOptions) (string, error) {
	src := opts.Rand
	if src == nil {
		src = cryptoSource{}
	}

	mode := opts.Mode
	if mode == GeneratePublic {
		return generatePublic(src, opts.Fixed, opts.DigitsOnly)
	}
	if mode == GenerateAny {
		if src.Intn(2) == 0 {
			mode = GeneratePre2011
		} else {
			mode = GeneratePost2011
		}
	}

	for attempt := 0; attempt < maxSampleAttempts; attempt++ {
		area := 1 + src.Intn(899)
		if area == 666 {
			continue
		}
		if mode == GeneratePre2011 && (area >= pre2011GapLow && area <= pre2011GapHigh || area >= pre2011Ceiling) {
			continue
		}
		group := 1 + src.Intn(99)
		serial := 1 + src.Intn(9999)

		v := fmt.Sprintf("%03d-%02d-%04d", area, group, serial)
		if IsDenylisted(v) {
			continue
		}
		if opts.DigitsOnly {
			v = ExtractDigits(v)
		}
		return v, nil
	}
	return "", fmt.Errorf("rejection sampling did not converge after %d attempts", maxSampleAttempts)
}

func generatePublic(src Source, fixed string, digitsOnly bool) (string, error) {
	v := publicSamples[src.Intn(len(publicSamples))]
	if fixed != "" {
		canonical := FormatDigits(ExtractDigits(fixed))
		if !IsDenylisted(canonical) {
			return "", fmt.Errorf("%q is not one of the known public sample SSNs", fixed)
		}
		v = canonical
	}
	if digitsOnly {
		v = ExtractDigits(v)
	}
	return v, nil
}
