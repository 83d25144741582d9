// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"ssnkit/internal/config"
	"ssnkit/internal/formatters"
	_ "ssnkit/internal/formatters/csv"
	_ "ssnkit/internal/formatters/json"
	_ "ssnkit/internal/formatters/text"
	_ "ssnkit/internal/formatters/yaml"
	"ssnkit/internal/help"
	"ssnkit/internal/report"
	"ssnkit/internal/ssn"
	"ssnkit/internal/version"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Exit codes: 0 all values valid, 1 at least one invalid value, 2 usage or
// configuration error.
const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

// cliFlags holds command line flag values
type cliFlags struct {
	validateValue  string
	normalizeValue string
	maskValue      string
	generate       bool
	stdin          bool
	interactive    bool

	partial       bool
	rules         string
	requireDashes bool
	digitsOnly    bool
	enforceLength bool
	strictLayout  bool
	revealLast4   bool
	maskChar      string
	mode          string
	public        string
	count         int

	format       string
	configFile   string
	profile      string
	listProfiles bool
	noColor      bool
	quiet        bool
	showInput    bool
	showVersion  bool
	showHelp     bool
	explain      string
}

func parseFlags() (*cliFlags, map[string]bool) {
	f := &cliFlags{}

	flag.StringVar(&f.validateValue, "validate", "", "Validate a value against the SSN rules")
	flag.StringVar(&f.normalizeValue, "normalize", "", "Format a value into the dashed display form")
	flag.StringVar(&f.maskValue, "mask", "", "Mask the digits of a value for display")
	flag.BoolVar(&f.generate, "generate", false, "Generate SSN-shaped values")
	flag.BoolVar(&f.stdin, "stdin", false, "Read values from standard input, one per line")
	flag.BoolVar(&f.interactive, "interactive", false, "Prompt for a value without echoing it")

	flag.BoolVar(&f.partial, "partial", false, "Typing mode: accept in-progress values")
	flag.StringVar(&f.rules, "rules", "", "Area rule set: pre2011, post2011, both")
	flag.BoolVar(&f.requireDashes, "require-dashes", false, "Reject values not following DDD-DD-DDDD")
	flag.BoolVar(&f.digitsOnly, "digits-only", false, "Output digits without dashes")
	flag.BoolVar(&f.enforceLength, "enforce-length", false, "Cap extraction at nine digits")
	flag.BoolVar(&f.strictLayout, "strict-layout", false, "Do not reformat until nine digits are present")
	flag.BoolVar(&f.revealLast4, "reveal-last4", false, "Keep the last four digits visible when masking")
	flag.StringVar(&f.maskChar, "mask-char", "", "Character substituted for masked digits")
	flag.StringVar(&f.mode, "mode", "", "Generate mode: public, pre2011, post2011, any")
	flag.StringVar(&f.public, "public", "", "Force a specific public placeholder when generating")
	flag.IntVar(&f.count, "count", 1, "Number of values to generate")

	flag.StringVar(&f.format, "format", "", "Output format: text, json, csv, yaml")
	flag.StringVar(&f.configFile, "config", "", "Path to configuration file (YAML)")
	flag.StringVar(&f.profile, "profile", "", "Profile name to use from config file")
	flag.BoolVar(&f.listProfiles, "list-profiles", false, "List available profiles")
	flag.BoolVar(&f.noColor, "no-color", false, "Disable colored output")
	flag.BoolVar(&f.quiet, "quiet", false, "Single-line results only")
	flag.BoolVar(&f.showInput, "show-input", false, "Echo raw input values in output (masked by default)")
	flag.BoolVar(&f.showVersion, "version", false, "Show version information")
	flag.BoolVar(&f.showHelp, "help", false, "Show help information")
	flag.StringVar(&f.explain, "explain", "", "Detailed help for one operation")
	flag.Parse()

	set := make(map[string]bool)
	flag.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	return f, set
}

// resolveSettings layers configuration: built-in defaults, config file
// defaults, the selected profile, then explicitly set flags.
func resolveSettings(f *cliFlags, set map[string]bool, cfg *config.Config) (config.Settings, error) {
	settings := cfg.Defaults

	if f.profile != "" {
		profile := cfg.GetProfile(f.profile)
		if profile == nil {
			return settings, fmt.Errorf("profile %q not found (available: %v)", f.profile, cfg.ListProfiles())
		}
		settings = profile.Settings
	}

	if set["format"] {
		settings.Format = f.format
	}
	if set["rules"] {
		settings.Rules = f.rules
	}
	if set["partial"] {
		settings.Partial = f.partial
	}
	if set["require-dashes"] {
		settings.RequireDashes = f.requireDashes
	}
	if set["digits-only"] {
		settings.DigitsOnly = f.digitsOnly
	}
	if set["enforce-length"] {
		settings.EnforceLength = f.enforceLength
	}
	if set["strict-layout"] {
		settings.StrictLayout = f.strictLayout
	}
	if set["reveal-last4"] {
		settings.RevealLast4 = f.revealLast4
	}
	if set["mask-char"] {
		settings.MaskChar = f.maskChar
	}
	if set["mode"] {
		settings.Mode = f.mode
	}
	if set["no-color"] {
		settings.NoColor = f.noColor
	}
	if set["quiet"] {
		settings.Quiet = f.quiet
	}
	if set["show-input"] {
		settings.ShowInput = f.showInput
	}
	return settings, nil
}

// selectOperation picks the single requested operation from the flags.
func selectOperation(f *cliFlags, set map[string]bool) (string, error) {
	var ops []string
	if set["validate"] {
		ops = append(ops, "validate")
	}
	if set["normalize"] {
		ops = append(ops, "normalize")
	}
	if set["mask"] {
		ops = append(ops, "mask")
	}
	if f.generate {
		ops = append(ops, "generate")
	}
	if len(ops) == 0 {
		return "", fmt.Errorf("no operation requested (use --validate, --normalize, --mask or --generate)")
	}
	if len(ops) > 1 {
		return "", fmt.Errorf("exactly one operation may be requested, got %v", ops)
	}
	return ops[0], nil
}

// collectInputs gathers the values to operate on: the flag value itself,
// lines from stdin, or an interactive no-echo prompt. SSNs typed at the
// prompt never hit the terminal scrollback or shell history.
func collectInputs(f *cliFlags, op string) ([]string, error) {
	var inputs []string

	flagValue := map[string]string{
		"validate":  f.validateValue,
		"normalize": f.normalizeValue,
		"mask":      f.maskValue,
	}[op]
	if flagValue != "" {
		inputs = append(inputs, flagValue)
	}

	if f.stdin {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}
			inputs = append(inputs, line)
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("error reading standard input: %w", err)
		}
	}

	if f.interactive {
		fmt.Fprint(os.Stderr, "Enter value: ")
		value, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return nil, fmt.Errorf("error reading interactive input: %w", err)
		}
		inputs = append(inputs, string(value))
	}

	if len(inputs) == 0 {
		return nil, fmt.Errorf("no input values for --%s (pass a value, --stdin or --interactive)", op)
	}
	return inputs, nil
}

// displayInput prepares a raw input value for inclusion in output records.
// Raw values are masked unless the user explicitly asked to see them.
func displayInput(raw string, settings config.Settings) string {
	if settings.ShowInput {
		return raw
	}
	return ssn.Mask(raw, ssn.MaskOptions{KeepLayout: true, MaskChar: settings.MaskChar})
}

func runValidate(inputs []string, settings config.Settings) ([]report.Record, error) {
	rules, err := ssn.ParseRuleMode(settings.Rules)
	if err != nil {
		return nil, err
	}
	opts := ssn.ValidateOptions{
		Partial:       settings.Partial,
		Rules:         rules,
		RequireDashes: settings.RequireDashes,
	}

	records := make([]report.Record, 0, len(inputs))
	for _, input := range inputs {
		outcome := ssn.Validate(input, opts)
		record := report.Record{
			Input:   displayInput(input, settings),
			Op:      "validate",
			OK:      outcome.OK,
			Output:  outcome.Normalized,
			Reason:  string(outcome.Reason),
			Message: outcome.Message,
		}
		records = append(records, record)
	}
	return records, nil
}

func runNormalize(inputs []string, settings config.Settings) []report.Record {
	opts := ssn.NormalizeOptions{
		StrictLayout:  settings.StrictLayout,
		DigitsOnly:    settings.DigitsOnly,
		EnforceLength: settings.EnforceLength,
	}

	records := make([]report.Record, 0, len(inputs))
	for _, input := range inputs {
		records = append(records, report.Record{
			Input:  displayInput(input, settings),
			Op:     "normalize",
			OK:     true,
			Output: ssn.Normalize(input, opts),
		})
	}
	return records
}

func runMask(inputs []string, settings config.Settings) []report.Record {
	opts := ssn.MaskOptions{
		RevealLast4:   settings.RevealLast4,
		MaskChar:      settings.MaskChar,
		DigitsOnly:    settings.DigitsOnly,
		EnforceLength: settings.EnforceLength,
		KeepLayout:    settings.StrictLayout,
	}

	records := make([]report.Record, 0, len(inputs))
	for _, input := range inputs {
		records = append(records, report.Record{
			Input:  displayInput(input, settings),
			Op:     "mask",
			OK:     true,
			Output: ssn.Mask(input, opts),
		})
	}
	return records
}

func runGenerate(f *cliFlags, settings config.Settings) ([]report.Record, error) {
	mode, err := ssn.ParseGenerateMode(settings.Mode)
	if err != nil {
		return nil, err
	}
	opts := ssn.GenerateOptions{
		Mode:       mode,
		DigitsOnly: settings.DigitsOnly,
		Fixed:      f.public,
	}

	count := f.count
	if count < 1 {
		count = 1
	}
	records := make([]report.Record, 0, count)
	for i := 0; i < count; i++ {
		value, err := ssn.Generate(opts)
		if err != nil {
			return nil, err
		}
		records = append(records, report.Record{
			Op:     "generate",
			OK:     true,
			Output: value,
		})
	}
	return records, nil
}

func run() int {
	f, set := parseFlags()

	if f.showVersion {
		fmt.Println(version.Info())
		return exitOK
	}

	cfg := config.LoadConfigOrDefault(f.configFile)

	if f.listProfiles {
		fmt.Println("Available profiles:")
		for _, name := range cfg.ListProfiles() {
			profile := cfg.GetProfile(name)
			fmt.Printf("  %s - %s\n", name, profile.Description)
		}
		return exitOK
	}

	settings, err := resolveSettings(f, set, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitUsage
	}

	// Color is for humans: drop it when asked to, or when stdout is a pipe.
	if settings.NoColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}

	helpSystem := help.NewSystem(settings.NoColor)
	for _, topic := range ssn.Topics() {
		helpSystem.RegisterProvider(topic)
	}
	if f.explain != "" {
		if !helpSystem.ShowTopicHelp(f.explain) {
			fmt.Fprintf(os.Stderr, "Error: unknown help topic %q\n", f.explain)
			return exitUsage
		}
		return exitOK
	}
	if f.showHelp || len(os.Args) == 1 {
		helpSystem.ShowGeneralHelp()
		return exitOK
	}

	op, err := selectOperation(f, set)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitUsage
	}

	var records []report.Record
	switch op {
	case "generate":
		records, err = runGenerate(f, settings)
	default:
		var inputs []string
		inputs, err = collectInputs(f, op)
		if err == nil {
			switch op {
			case "validate":
				records, err = runValidate(inputs, settings)
			case "normalize":
				records = runNormalize(inputs, settings)
			case "mask":
				records = runMask(inputs, settings)
			}
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitUsage
	}

	output, err := formatters.Export(settings.Format, records, formatters.FormatterOptions{
		NoColor: settings.NoColor,
		Quiet:   settings.Quiet,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitUsage
	}
	if output != "" {
		fmt.Println(output)
	}

	for _, record := range records {
		if !record.OK {
			return exitInvalid
		}
	}
	return exitOK
}

func main() {
	os.Exit(run())
}
