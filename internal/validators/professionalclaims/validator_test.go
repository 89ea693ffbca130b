// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package professionalclaims

import (
	"testing"

	"parrot-check/internal/detector"
)

func TestClaimAboutPersonFails(t *testing.T) {
	v := NewValidator()
	entity := detector.EntityInfo{
		Query:                "albert einstein",
		EntityType:           detector.EntityPerson,
		RequiresVerification: true,
	}

	result, ok := v.Validate("who is Albert Einstein?",
		"Albert Einstein was a theoretical physicist at Princeton University", entity)
	if !ok {
		t.Fatal("expected an emitted result")
	}
	if result.Pass {
		t.Error("claim about a person must fail")
	}
	if result.Score != 0.35 {
		t.Errorf("expected score 0.35, got %v", result.Score)
	}
	if result.Severity != detector.SeverityWarn {
		t.Errorf("expected warn severity, got %s", result.Severity)
	}
	if result.Metadata["keyword"] != "physicist" {
		t.Errorf("expected first matched keyword physicist, got %v", result.Metadata["keyword"])
	}
}

func TestClaimWithoutPersonPasses(t *testing.T) {
	v := NewValidator()
	entity := detector.EntityInfo{
		Query:      detector.GeneralQuery,
		EntityType: detector.EntityGeneral,
	}

	result, _ := v.Validate("what do engineers do?", "An engineer designs and builds systems", entity)
	if !result.Pass {
		t.Error("claim not tied to a person should pass")
	}
	if result.Score != 0.82 {
		t.Errorf("expected score 0.82, got %v", result.Score)
	}
}

func TestNoClaimPasses(t *testing.T) {
	v := NewValidator()

	result, _ := v.Validate("capital of France?", "Paris is a lovely city", detector.EntityInfo{
		EntityType: detector.EntityCapital,
	})
	if !result.Pass || result.Score != 0.92 {
		t.Errorf("expected pass with 0.92, got pass=%t score=%v", result.Pass, result.Score)
	}
	if result.Metadata != nil {
		t.Error("no claim should carry no metadata")
	}
}

func TestEmptyQuestionIsOmitted(t *testing.T) {
	v := NewValidator()

	if _, ok := v.Validate("  ", "a doctor said so", detector.EntityInfo{}); ok {
		t.Error("blank question must omit the result")
	}
}
