// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package factual

import (
	"context"
	"errors"
	"testing"

	"parrot-check/internal/detector"
)

func personEntity(query string) detector.EntityInfo {
	return detector.EntityInfo{
		Query:                query,
		EntityType:           detector.EntityPerson,
		MatchWeight:          0.8,
		RequiresVerification: true,
	}
}

func staticLookup(snippet string) detector.Lookup {
	return detector.LookupFunc(func(ctx context.Context, query string) (string, error) {
		return snippet, nil
	})
}

func TestOmittedOnMissingInput(t *testing.T) {
	v := NewValidator()

	if _, ok := v.Validate(context.Background(), "", "Paris", personEntity("france"), nil); ok {
		t.Error("expected omission with empty question")
	}
	if _, ok := v.Validate(context.Background(), "capital of France?", "", personEntity("france"), nil); ok {
		t.Error("expected omission with empty response")
	}
}

func TestHighSimilarityScoresTopBand(t *testing.T) {
	v := NewValidator()
	entity := detector.EntityInfo{
		Query:      "capital of france",
		EntityType: detector.EntityCapital,
	}

	result, ok := v.Validate(context.Background(), "capital of France?", "Paris",
		entity, staticLookup("Paris is the capital of France."))
	if !ok {
		t.Fatal("expected an emitted result")
	}
	if result.Score != 0.9 {
		t.Errorf("expected top band 0.9 for a contained answer, got %v", result.Score)
	}
	if !result.Pass {
		t.Error("expected pass at top band")
	}
}

func TestLowSimilarityScoresBottomBand(t *testing.T) {
	v := NewValidator()

	result, ok := v.Validate(context.Background(), "capital of France?", "Bananas grow in tropical climates",
		detector.EntityInfo{Query: "capital of france", EntityType: detector.EntityCapital},
		staticLookup("Paris is the capital of France."))
	if !ok {
		t.Fatal("expected an emitted result")
	}
	if result.Score != 0.1 {
		t.Errorf("expected bottom band 0.1, got %v", result.Score)
	}
	if result.Severity != detector.SeverityWarn {
		t.Errorf("expected warn severity, got %s", result.Severity)
	}
}

func TestGeneralQuestionGetsBenefitOfDoubt(t *testing.T) {
	v := NewValidator()
	entity := detector.EntityInfo{
		Query:      detector.GeneralQuery,
		EntityType: detector.EntityGeneral,
	}

	lookupCalled := false
	lookup := detector.LookupFunc(func(ctx context.Context, query string) (string, error) {
		lookupCalled = true
		return "", nil
	})

	result, _ := v.Validate(context.Background(), "how are you?", "I am fine, thanks for asking", entity, lookup)
	if result.Score != 0.8 {
		t.Errorf("expected 0.8 for conversational content, got %v", result.Score)
	}
	if lookupCalled {
		t.Error("General questions must not trigger a lookup")
	}
}

func TestRefusalScoresBottomWithoutLookup(t *testing.T) {
	v := NewValidator()

	lookupCalled := false
	lookup := detector.LookupFunc(func(ctx context.Context, query string) (string, error) {
		lookupCalled = true
		return "", nil
	})

	result, _ := v.Validate(context.Background(), "capital of France?", "I cannot answer that",
		detector.EntityInfo{Query: "capital of france", EntityType: detector.EntityCapital}, lookup)
	if result.Score != 0.1 {
		t.Errorf("expected 0.1 for a refusal, got %v", result.Score)
	}
	if result.Pass {
		t.Error("refusal must not pass the factual check")
	}
	if lookupCalled {
		t.Error("refusals must not spend a lookup")
	}
}

func TestSentinelScoresInconclusive(t *testing.T) {
	v := NewValidator()
	entity := personEntity("albert einstein")

	for _, sentinel := range []string{detector.LookupNotFound, detector.LookupFailed} {
		result, _ := v.Validate(context.Background(), "who is Albert Einstein?", "A famous scientist from Germany",
			entity, staticLookup(sentinel))
		if result.Score != 0.6 {
			t.Errorf("sentinel %q: expected 0.6, got %v", sentinel, result.Score)
		}
		if !result.Pass {
			t.Errorf("sentinel %q: inconclusive lookup should pass", sentinel)
		}
	}
}

func TestLookupErrorDegradesToFallback(t *testing.T) {
	v := NewValidator()
	entity := personEntity("albert einstein")

	lookup := detector.LookupFunc(func(ctx context.Context, query string) (string, error) {
		return "", errors.New("connection refused")
	})

	result, ok := v.Validate(context.Background(), "who is Albert Einstein?", "A famous scientist from Germany", entity, lookup)
	if !ok {
		t.Fatal("fallback must still emit a result")
	}
	if result.Score != 0.5 {
		t.Errorf("expected fallback 0.5, got %v", result.Score)
	}
	if result.Severity != detector.SeverityWarn {
		t.Errorf("expected warn severity, got %s", result.Severity)
	}
	if !result.Pass {
		t.Error("fallback result must not fail the report")
	}
}

func TestNilLookupDegradesToFallback(t *testing.T) {
	v := NewValidator()

	result, _ := v.Validate(context.Background(), "who is Albert Einstein?", "A famous scientist from Germany",
		personEntity("albert einstein"), nil)
	if result.Score != 0.5 {
		t.Errorf("expected fallback 0.5 with nil lookup, got %v", result.Score)
	}
}

func TestPersonalValidationStance(t *testing.T) {
	v := NewValidator()
	entity := detector.EntityInfo{
		Query:                "personal relationship friend",
		EntityType:           detector.EntityPersonalRelationship,
		IsPersonalValidation: true,
	}

	tests := []struct {
		name     string
		response string
		score    float64
	}{
		{"decisive affirmative", "haan, bilkul", 0.3},
		{"decisive negative", "galat hai", 0.3},
		{"ambiguous both", "yes and no, galat but sahi", 0.2},
		{"ambiguous neither", "that depends on many things", 0.2},
	}

	lookupCalled := false
	lookup := detector.LookupFunc(func(ctx context.Context, query string) (string, error) {
		lookupCalled = true
		return "", nil
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _ := v.Validate(context.Background(), "meri friend ki age 25 hai, sahi?", tt.response, entity, lookup)
			if result.Score != tt.score {
				t.Errorf("expected %v, got %v", tt.score, result.Score)
			}
			if result.Pass {
				t.Error("unverifiable personal claims never pass the factual check")
			}
		})
	}
	if lookupCalled {
		t.Error("personal-validation path must never call the lookup")
	}
}
