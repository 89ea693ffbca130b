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

// CheckInfo contains standardized information about a validation check.
type CheckInfo struct {
	Name                string      // Stable check name (e.g., "error_keywords")
	ShortDescription    string      // Short description for the checks list
	DetailedDescription string      // Detailed description of what the check does
	Triggers            []string    // Conditions that trigger the check
	Scoring             []ScoreBand // Score/severity bands the check can emit
	Keywords            []string    // Keywords or patterns the check matches
	Examples            []string    // Usage examples
}

// ScoreBand describes one outcome band of a check.
type ScoreBand struct {
	Condition string  // When this band applies
	Score     float64 // Emitted score in [0,1]
	Severity  string  // Emitted severity
}

// Provider is implemented by validators that publish help content.
type Provider interface {
	GetCheckInfo() CheckInfo
}

// System manages help content for the application.
type System struct {
	providers map[string]Provider
	colors    map[string]*color.Color
}

// NewSystem creates a new help system.
func NewSystem(noColor bool) *System {
	if noColor {
		color.NoColor = true
	}

	return &System{
		providers: make(map[string]Provider),
		colors: map[string]*color.Color{
			"title":    color.New(color.FgWhite, color.Bold),
			"subtitle": color.New(color.FgCyan, color.Bold),
			"header":   color.New(color.FgBlue, color.Bold),
			"item":     color.New(color.FgCyan),
			"warning":  color.New(color.FgYellow),
			"example":  color.New(color.FgMagenta),
		},
	}
}

// RegisterProvider adds a help provider to the system.
func (h *System) RegisterProvider(provider Provider) {
	info := provider.GetCheckInfo()
	h.providers[strings.ToLower(info.Name)] = provider
}

// ShowGeneralHelp displays general usage information.
func (h *System) ShowGeneralHelp() {
	h.colors["title"].Println("Parrot Check - AI Chat Response Validator")
	fmt.Println("=========================================")
	fmt.Println()
	h.colors["header"].Println("USAGE:")
	fmt.Println("  parrot-check --question <text> --response <text> [options]")
	fmt.Println("  parrot-check --file <pairs.json> [options]   # batch mode")
	fmt.Println("  parrot-check --web [--port <port>]           # dashboard mode")
	fmt.Println()

	h.colors["header"].Println("OPTIONS:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"--question", "Question text to validate"},
		{"--response", "Response text to validate"},
		{"--platform", "Source platform label stored with the record"},
		{"--file", "Path to a JSON file holding an array of {question,response} pairs"},
		{"--config", "Path to configuration file (YAML)"},
		{"--profile", "Profile name to use from the config file"},
		{"--list-profiles", "List available profiles in the config file"},
		{"--format", "Output format: text, json, csv, yaml (default: text)"},
		{"--confidence", "Confidence levels to display: high, medium, low, or 'high,medium'"},
		{"--checks", "Specific checks to run, e.g. 'error_keywords,factual_accuracy'"},
		{"--no-lookup", "Skip the external reference lookup (factual check degrades)"},
		{"--records-file", "Path to the validation record log (YAML)"},
		{"--output", "Path to output file (default: stdout)"},
		{"--verbose", "Display detailed information for each validator"},
		{"--debug", "Enable debug logging of the validation pipeline"},
		{"--no-color", "Disable colored output"},
		{"--web", "Start the dashboard web server instead of CLI validation"},
		{"--port", "Port for the web server (default: 8080)"},
		{"--help", "Show help information; use --help <check> for check details"},
		{"--version", "Show version information"},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "  %s\t%s\n", r[0], r[1])
	}
	w.Flush()
	fmt.Println()

	h.ShowChecksList()
}

// ShowChecksList displays a one-line summary of every registered check.
func (h *System) ShowChecksList() {
	h.colors["header"].Println("CHECKS:")

	names := make([]string, 0, len(h.providers))
	for name := range h.providers {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range names {
		info := h.providers[name].GetCheckInfo()
		fmt.Fprintf(w, "  %s\t%s\n", info.Name, info.ShortDescription)
	}
	w.Flush()
	fmt.Println()
	fmt.Println("Use --help <check> for details about a specific check.")
}

// ShowCheckHelp displays detailed help for one check.
func (h *System) ShowCheckHelp(name string) {
	provider, ok := h.providers[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		h.colors["warning"].Printf("Unknown check: %s\n\n", name)
		h.ShowChecksList()
		return
	}

	info := provider.GetCheckInfo()
	h.colors["title"].Printf("%s\n", info.Name)
	fmt.Println(strings.Repeat("=", len(info.Name)))
	fmt.Println()
	fmt.Println(info.DetailedDescription)
	fmt.Println()

	if len(info.Triggers) > 0 {
		h.colors["header"].Println("TRIGGERS:")
		for _, t := range info.Triggers {
			h.colors["item"].Printf("  - %s\n", t)
		}
		fmt.Println()
	}

	if len(info.Scoring) > 0 {
		h.colors["header"].Println("SCORING:")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, band := range info.Scoring {
			fmt.Fprintf(w, "  %.2f\t[%s]\t%s\n", band.Score, band.Severity, band.Condition)
		}
		w.Flush()
		fmt.Println()
	}

	if len(info.Keywords) > 0 {
		h.colors["header"].Println("KEYWORDS:")
		fmt.Printf("  %s\n\n", strings.Join(info.Keywords, ", "))
	}

	if len(info.Examples) > 0 {
		h.colors["header"].Println("EXAMPLES:")
		for _, ex := range info.Examples {
			h.colors["example"].Printf("  %s\n", ex)
		}
		fmt.Println()
	}
}
