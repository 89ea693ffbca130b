// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"encoding/json"
	"fmt"
	"strings"

	"parrot-check/internal/detector"
	"parrot-check/internal/formatters"
	"parrot-check/internal/formatters/shared"
)

// Formatter implements CSV output formatting
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "Comma-separated values for spreadsheet import"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

func (f *Formatter) Format(entries []formatters.Entry, options formatters.FormatterOptions) (string, error) {
	filtered := shared.FilterByConfidence(entries, options)

	headers := []string{"Timestamp", "Platform", "Question", "Response", "Valid", "Confidence", "Confidence Level", "Entity Type", "External Verification", "Issues"}
	if options.Verbose {
		headers = append(headers, "Validators")
	}

	csvRows := []string{strings.Join(headers, ",")}
	for _, entry := range filtered {
		csvRows = append(csvRows, f.createCSVRow(entry, options))
	}

	return strings.Join(csvRows, "\n"), nil
}

// createCSVRow creates a CSV row for one scored entry
func (f *Formatter) createCSVRow(entry formatters.Entry, options formatters.FormatterOptions) string {
	timestamp := ""
	if !entry.Timestamp.IsZero() {
		timestamp = entry.Timestamp.UTC().Format("2006-01-02T15:04:05Z")
	}

	row := []string{
		f.escapeCSVField(timestamp),
		f.escapeCSVField(entry.Platform),
		f.escapeCSVField(entry.Question),
		f.escapeCSVField(entry.Response),
		fmt.Sprintf("%t", entry.Report.IsValid),
		fmt.Sprintf("%.2f", entry.Report.Confidence),
		f.escapeCSVField(detector.ConfidenceLevel(entry.Report.Confidence)),
		f.escapeCSVField(string(entry.Report.Entity.EntityType)),
		fmt.Sprintf("%t", entry.Report.ExternalVerificationRequired),
		f.escapeCSVField(strings.Join(entry.Report.Issues, "; ")),
	}

	if options.Verbose {
		validatorsJSON, err := json.Marshal(entry.Report.Validators)
		if err != nil {
			row = append(row, f.escapeCSVField("Error serializing validators"))
		} else {
			row = append(row, f.escapeCSVField(string(validatorsJSON)))
		}
	}

	return strings.Join(row, ",")
}

// escapeCSVField properly escapes a field for CSV format and prevents CSV injection
func (f *Formatter) escapeCSVField(field string) string {
	field = f.sanitizeFormulaInjection(field)

	if strings.Contains(field, ",") || strings.Contains(field, "\"") || strings.Contains(field, "\n") || strings.Contains(field, "\r") {
		escaped := strings.ReplaceAll(field, "\"", "\"\"")
		return fmt.Sprintf("\"%s\"", escaped)
	}
	return field
}

// sanitizeFormulaInjection prevents CSV injection attacks by sanitizing formula characters
func (f *Formatter) sanitizeFormulaInjection(field string) string {
	if len(field) == 0 {
		return field
	}

	// Question/response text is attacker-controlled; neutralize leading
	// formula characters before a spreadsheet can execute them.
	firstChar := field[0]
	if firstChar == '=' || firstChar == '+' || firstChar == '-' || firstChar == '@' {
		return "'" + field
	}

	return field
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
