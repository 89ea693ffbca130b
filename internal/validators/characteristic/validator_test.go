// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package characteristic

import (
	"testing"

	"parrot-check/internal/detector"
)

func TestConfirmationRequestFails(t *testing.T) {
	v := NewValidator()
	entity := detector.EntityInfo{
		Query:                "personal characteristic height",
		EntityType:           detector.EntityPersonalCharacteristic,
		IsPersonalValidation: true,
	}

	result, ok := v.Validate("my height is 6 feet, correct?", "yes, that is correct", entity)
	if !ok {
		t.Fatal("expected an emitted result")
	}
	if result.Pass {
		t.Error("confirmation request about a private detail must fail")
	}
	if result.Score != 0.3 {
		t.Errorf("expected score 0.3, got %v", result.Score)
	}
	if result.Severity != detector.SeverityWarn {
		t.Errorf("expected warn severity, got %s", result.Severity)
	}
}

func TestMentionWithoutConfirmationPasses(t *testing.T) {
	v := NewValidator()
	entity := detector.EntityInfo{
		Query:      "personal characteristic age",
		EntityType: detector.EntityPersonalCharacteristic,
	}

	result, _ := v.Validate("meri age badh rahi hai", "That happens to everyone", entity)
	if !result.Pass {
		t.Error("mention without a confirmation request should pass")
	}
	if result.Score != 0.7 {
		t.Errorf("expected score 0.7, got %v", result.Score)
	}
}

func TestUnrelatedQuestionPasses(t *testing.T) {
	v := NewValidator()

	result, _ := v.Validate("capital of Japan?", "Tokyo", detector.EntityInfo{
		EntityType: detector.EntityCapital,
	})
	if !result.Pass || result.Score != 0.9 {
		t.Errorf("expected pass with 0.9, got pass=%t score=%v", result.Pass, result.Score)
	}
}

func TestEmptyQuestionIsOmitted(t *testing.T) {
	v := NewValidator()

	if _, ok := v.Validate("", "yes", detector.EntityInfo{}); ok {
		t.Error("empty question must omit the result")
	}
}
