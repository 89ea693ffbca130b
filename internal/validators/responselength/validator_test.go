// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package responselength

import (
	"testing"

	"parrot-check/internal/detector"
)

func TestShortResponseFails(t *testing.T) {
	v := NewValidator()

	result, ok := v.Validate("question", "Paris", detector.EntityInfo{})
	if !ok {
		t.Fatal("expected an emitted result")
	}
	if result.Pass {
		t.Error("expected short response to fail")
	}
	if result.Score != 0.3 {
		t.Errorf("expected score 0.3, got %v", result.Score)
	}
	if result.Severity != detector.SeverityWarn {
		t.Errorf("expected warn severity, got %s", result.Severity)
	}
}

func TestAdequateResponsePasses(t *testing.T) {
	v := NewValidator()

	result, _ := v.Validate("question", "Paris is the capital of France.", detector.EntityInfo{})
	if !result.Pass || result.Score != 0.92 {
		t.Errorf("expected pass with 0.92, got pass=%t score=%v", result.Pass, result.Score)
	}
}

func TestBoundary(t *testing.T) {
	v := NewValidator()

	// Nine characters fails, ten passes
	if result, _ := v.Validate("q", "123456789", detector.EntityInfo{}); result.Pass {
		t.Error("9 characters should fail")
	}
	if result, _ := v.Validate("q", "1234567890", detector.EntityInfo{}); !result.Pass {
		t.Error("10 characters should pass")
	}
}

func TestEmptyResponseIsNeutralPass(t *testing.T) {
	v := NewValidator()

	result, ok := v.Validate("question", "", detector.EntityInfo{})
	if !ok {
		t.Fatal("empty response must still emit a result")
	}
	if !result.Pass || result.Score != 0.92 {
		t.Errorf("expected neutral pass, got pass=%t score=%v", result.Pass, result.Score)
	}
}
