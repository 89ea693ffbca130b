// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"parrot-check/internal/detector"
	"parrot-check/internal/formatters"
	"parrot-check/internal/formatters/shared"
)

// Formatter implements human-readable terminal output
type Formatter struct{}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output for terminals"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(entries []formatters.Entry, options formatters.FormatterOptions) (string, error) {
	filtered := shared.FilterByConfidence(entries, options)

	valid := color.New(color.FgGreen, color.Bold)
	invalid := color.New(color.FgRed, color.Bold)
	warnColor := color.New(color.FgYellow)
	critColor := color.New(color.FgRed)
	dim := color.New(color.Faint)
	if options.NoColor {
		color.NoColor = true
	}

	var sb strings.Builder

	if len(filtered) == 0 {
		sb.WriteString("No validation results to display.\n")
		return sb.String(), nil
	}

	for i, entry := range filtered {
		if i > 0 {
			sb.WriteString("\n")
		}

		verdict := valid.Sprint("VALID")
		if !entry.Report.IsValid {
			verdict = invalid.Sprint("INVALID")
		}
		level := detector.ConfidenceLevel(entry.Report.Confidence)
		fmt.Fprintf(&sb, "%s  confidence %.2f (%s)\n", verdict, entry.Report.Confidence, level)

		fmt.Fprintf(&sb, "  Question: %s\n", truncate(entry.Question, 100))
		fmt.Fprintf(&sb, "  Response: %s\n", truncate(entry.Response, 100))
		if entry.Platform != "" {
			fmt.Fprintf(&sb, "  Platform: %s\n", entry.Platform)
		}
		if entry.Report.Entity.EntityType != "" {
			fmt.Fprintf(&sb, "  Entity:   %s (query: %s)\n", entry.Report.Entity.EntityType, entry.Report.Entity.Query)
		}

		if entry.Report.ExternalVerificationRequired {
			fmt.Fprintf(&sb, "  %s\n", warnColor.Sprint("External verification required"))
		}

		for _, issue := range entry.Report.Issues {
			line := issue
			switch {
			case strings.HasPrefix(issue, "[critical]"):
				line = critColor.Sprint(issue)
			case strings.HasPrefix(issue, "[warn]"):
				line = warnColor.Sprint(issue)
			}
			fmt.Fprintf(&sb, "  - %s\n", line)
		}

		if options.Verbose {
			sb.WriteString("  Validators:\n")
			for _, result := range entry.Report.Validators {
				status := "pass"
				if !result.Pass {
					status = "FAIL"
				}
				fmt.Fprintf(&sb, "    %-36s %s  %.2f  %s\n", result.Name, status, result.Score, result.Details)
			}
			for _, s := range entry.Report.Suggestions {
				fmt.Fprintf(&sb, "  %s\n", dim.Sprintf("suggestion: %s", s))
			}
		}

		fmt.Fprintf(&sb, "  Notes: %s\n", entry.Report.Notes)
	}

	if len(filtered) > 1 {
		summary := shared.Convert(filtered, options).Summary
		fmt.Fprintf(&sb, "\nTotal: %d  valid: %d  invalid: %d  needing verification: %d\n",
			summary.Total, summary.Valid, summary.Invalid, summary.NeedingVerification)
	}

	return sb.String(), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
