// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package errorkeywords

import (
	"testing"

	"parrot-check/internal/detector"
)

func TestTriggeredOnErrorLanguage(t *testing.T) {
	v := NewValidator()

	responses := []string{
		"Sorry, I cannot provide that.",
		"An ERROR occurred while processing",
		"I am unable to help with this",
		"the request FAILED",
	}

	for _, response := range responses {
		result, ok := v.Validate("any question", response, detector.EntityInfo{})
		if !ok {
			t.Fatalf("%q: expected an emitted result", response)
		}
		if result.Pass {
			t.Errorf("%q: expected failure", response)
		}
		if result.Score != 0.1 {
			t.Errorf("%q: expected score 0.1, got %v", response, result.Score)
		}
		if result.Severity != detector.SeverityCritical {
			t.Errorf("%q: expected critical severity, got %s", response, result.Severity)
		}
	}
}

func TestCleanResponsePasses(t *testing.T) {
	v := NewValidator()

	result, _ := v.Validate("any question", "Paris is the capital of France.", detector.EntityInfo{})
	if !result.Pass {
		t.Error("expected pass for clean response")
	}
	if result.Score != 0.85 {
		t.Errorf("expected score 0.85, got %v", result.Score)
	}
}

func TestEmptyResponseIsNeutralPass(t *testing.T) {
	v := NewValidator()

	result, ok := v.Validate("any question", "", detector.EntityInfo{})
	if !ok {
		t.Fatal("empty response must still emit a result")
	}
	if !result.Pass || result.Score != 0.85 {
		t.Errorf("expected neutral pass, got pass=%t score=%v", result.Pass, result.Score)
	}
}
