// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

// TopicInfo contains standardized help content for one operation
type TopicInfo struct {
	Name                string      // Name of the operation (e.g., "validate")
	ShortDescription    string      // Short description for the topics list
	DetailedDescription string      // Detailed description of what the operation does
	Rules               []string    // Rules or behaviors the operation applies
	Options             []OptionDoc // Command line options relevant to the operation
	Examples            []string    // Usage examples
}

// OptionDoc documents one command line option
type OptionDoc struct {
	Flag        string // Flag name including dashes (e.g., "--rules")
	Value       string // Value placeholder, empty for booleans
	Description string // What the option does
}

// Provider defines the interface for help content providers
type Provider interface {
	GetTopicInfo() TopicInfo
}

// System manages help content for the application
type System struct {
	providers map[string]Provider
	noColor   bool
	colors    map[string]*color.Color
}

// NewSystem creates a new help system
func NewSystem(noColor bool) *System {
	if noColor {
		color.NoColor = true
	}

	return &System{
		providers: make(map[string]Provider),
		noColor:   noColor,
		colors: map[string]*color.Color{
			"title":    color.New(color.FgWhite, color.Bold),
			"subtitle": color.New(color.FgCyan, color.Bold),
			"header":   color.New(color.FgBlue, color.Bold),
			"item":     color.New(color.FgCyan),
			"emphasis": color.New(color.FgWhite, color.Bold),
			"example":  color.New(color.FgMagenta),
		},
	}
}

// RegisterProvider adds a help provider to the system
func (h *System) RegisterProvider(provider Provider) {
	info := provider.GetTopicInfo()
	h.providers[strings.ToLower(info.Name)] = provider
}

// ShowGeneralHelp displays general usage information
func (h *System) ShowGeneralHelp() {
	h.colors["title"].Println("ssnkit - Social Security Number Toolkit")
	fmt.Println("=======================================")
	fmt.Println()
	h.colors["header"].Println("USAGE:")
	fmt.Println("  ssnkit --validate <value> [options]")
	fmt.Println("  ssnkit --normalize <value> [options]")
	fmt.Println("  ssnkit --mask <value> [options]")
	fmt.Println("  ssnkit --generate [--count <n>] [options]")
	fmt.Println("  ssnkit --stdin --validate \"\"   # one value per input line")
	fmt.Println()

	h.colors["header"].Println("OPTIONS:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  --validate\t<value>\tValidate a value against the SSN rules")
	fmt.Fprintln(w, "  --normalize\t<value>\tFormat a value into the dashed display form")
	fmt.Fprintln(w, "  --mask\t<value>\tMask the digits of a value for display")
	fmt.Fprintln(w, "  --generate\t\tGenerate SSN-shaped values")
	fmt.Fprintln(w, "  --stdin\t\tRead values from standard input, one per line")
	fmt.Fprintln(w, "  --interactive\t\tPrompt for a value without echoing it to the terminal")
	fmt.Fprintln(w, "  --partial\t\tTyping mode: accept in-progress values that could still become valid")
	fmt.Fprintln(w, "  --rules\t<mode>\tArea rule set: pre2011, post2011, both (default: both)")
	fmt.Fprintln(w, "  --require-dashes\t\tReject values not following the DDD-DD-DDDD layout")
	fmt.Fprintln(w, "  --digits-only\t\tOutput digits without dashes")
	fmt.Fprintln(w, "  --enforce-length\t\tCap extraction at nine digits when normalizing or masking")
	fmt.Fprintln(w, "  --strict-layout\t\tDo not reformat until a full nine digits are present")
	fmt.Fprintln(w, "  --reveal-last4\t\tKeep the last four digits visible when masking")
	fmt.Fprintln(w, "  --mask-char\t<char>\tCharacter substituted for masked digits (default: *)")
	fmt.Fprintln(w, "  --count\t<n>\tNumber of values to generate (default: 1)")
	fmt.Fprintln(w, "  --mode\t<mode>\tGenerate mode: public, pre2011, post2011, any (default: public)")
	fmt.Fprintln(w, "  --public\t<value>\tForce a specific public placeholder when generating")
	fmt.Fprintln(w, "  --format\t<format>\tOutput format: text, json, csv, yaml (default: text)")
	fmt.Fprintln(w, "  --show-input\t\tEcho raw input values in output (masked by default)")
	fmt.Fprintln(w, "  --config\t<path>\tPath to configuration file (YAML)")
	fmt.Fprintln(w, "  --profile\t<name>\tProfile name to use from config file")
	fmt.Fprintln(w, "  --list-profiles\t\tList available profiles in config file")
	fmt.Fprintln(w, "  --no-color\t\tDisable colored output")
	fmt.Fprintln(w, "  --quiet\t\tSingle-line results only")
	fmt.Fprintln(w, "  --explain\t<topic>\tDetailed help for one operation")
	fmt.Fprintln(w, "  --version\t\tShow version information")
	w.Flush()
	fmt.Println()

	h.colors["header"].Println("TOPICS:")
	h.listTopics()
	fmt.Println()
	fmt.Println("Use --explain <topic> for details on a single operation.")
}

// ShowTopicHelp displays detailed help for a named topic. It returns false
// when no provider is registered under that name.
func (h *System) ShowTopicHelp(name string) bool {
	provider, ok := h.providers[strings.ToLower(name)]
	if !ok {
		return false
	}
	info := provider.GetTopicInfo()

	h.colors["title"].Printf("%s\n", strings.ToUpper(info.Name))
	fmt.Println(strings.Repeat("=", len(info.Name)))
	fmt.Println()
	fmt.Println(info.DetailedDescription)
	fmt.Println()

	if len(info.Rules) > 0 {
		h.colors["header"].Println("RULES:")
		for _, rule := range info.Rules {
			h.colors["item"].Printf("  - %s\n", rule)
		}
		fmt.Println()
	}

	if len(info.Options) > 0 {
		h.colors["header"].Println("OPTIONS:")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, opt := range info.Options {
			fmt.Fprintf(w, "  %s\t%s\t%s\n", opt.Flag, opt.Value, opt.Description)
		}
		w.Flush()
		fmt.Println()
	}

	if len(info.Examples) > 0 {
		h.colors["header"].Println("EXAMPLES:")
		for _, example := range info.Examples {
			h.colors["example"].Printf("  %s\n", example)
		}
		fmt.Println()
	}
	return true
}

// listTopics prints the registered topics sorted by name
func (h *System) listTopics() {
	names := make([]string, 0, len(h.providers))
	for name := range h.providers {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range names {
		info := h.providers[name].GetTopicInfo()
		fmt.Fprintf(w, "  %s\t%s\n", name, info.ShortDescription)
	}
	w.Flush()
}
