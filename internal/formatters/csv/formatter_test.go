// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"strings"
	"testing"

	"parrot-check/internal/detector"
	"parrot-check/internal/formatters"
)

func TestFormatProducesHeaderAndRows(t *testing.T) {
	f := NewFormatter()
	entries := []formatters.Entry{
		{
			Question: "capital of France?",
			Response: "Paris",
			Platform: "manual",
			Report: detector.Report{
				IsValid:    true,
				Confidence: 0.82,
				Issues:     []string{},
				Notes:      "Validation completed.",
			},
		},
	}

	out, err := f.Format(entries, formatters.FormatterOptions{})
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Timestamp,Platform,Question") {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[1], "0.82") || !strings.Contains(lines[1], "HIGH") {
		t.Errorf("unexpected row: %s", lines[1])
	}
}

func TestEscapeCSVFieldQuotesSpecialCharacters(t *testing.T) {
	f := NewFormatter()

	if got := f.escapeCSVField(`say "hi", ok`); got != `"say ""hi"", ok"` {
		t.Errorf("unexpected escaping: %s", got)
	}
	if got := f.escapeCSVField("plain"); got != "plain" {
		t.Errorf("plain field should pass through, got %s", got)
	}
}

func TestFormulaInjectionIsNeutralized(t *testing.T) {
	f := NewFormatter()

	for _, prefix := range []string{"=", "+", "-", "@"} {
		field := prefix + "HYPERLINK(evil)"
		got := f.escapeCSVField(field)
		if !strings.HasPrefix(got, "'") {
			t.Errorf("field %q should be prefixed with a quote, got %q", field, got)
		}
	}
}

func TestConfidenceFilter(t *testing.T) {
	f := NewFormatter()
	entries := []formatters.Entry{
		{Question: "q1", Response: "r1", Report: detector.Report{Confidence: 0.9}},
		{Question: "q2", Response: "r2", Report: detector.Report{Confidence: 0.3}},
	}

	out, err := f.Format(entries, formatters.FormatterOptions{
		ConfidenceLevel: map[string]bool{"HIGH": true},
	})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "q2") {
		t.Error("low-confidence entry should have been filtered out")
	}
	if !strings.Contains(out, "q1") {
		t.Error("high-confidence entry should be present")
	}
}
