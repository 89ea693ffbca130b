// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package entity

import (
	"testing"

	"parrot-check/internal/detector"
)

func TestExtractPersonalRelationshipValidation(t *testing.T) {
	e := NewExtractor()

	info := e.Extract("meri friend ki age 25 hai, is this right?")
	if info.EntityType != detector.EntityPersonalRelationship {
		t.Errorf("expected PersonalRelationship, got %s", info.EntityType)
	}
	if !info.IsPersonalValidation {
		t.Error("expected IsPersonalValidation true with affirmation word present")
	}
	if !info.RequiresVerification {
		t.Error("expected RequiresVerification for relationship questions")
	}
}

func TestExtractRelationshipWithoutAffirmation(t *testing.T) {
	e := NewExtractor()

	info := e.Extract("meri friend ki age 25 hai")
	if info.EntityType != detector.EntityPersonalRelationship {
		t.Errorf("expected PersonalRelationship, got %s", info.EntityType)
	}
	if info.IsPersonalValidation {
		t.Error("IsPersonalValidation requires an affirmation-seeking word")
	}
}

func TestExtractPersonalCharacteristic(t *testing.T) {
	e := NewExtractor()

	info := e.Extract("my height is 6 feet, correct?")
	if info.EntityType != detector.EntityPersonalCharacteristic {
		t.Errorf("expected PersonalCharacteristic, got %s", info.EntityType)
	}
	if !info.IsPersonalValidation {
		t.Error("expected IsPersonalValidation true")
	}
}

func TestRelationshipOutranksCharacteristic(t *testing.T) {
	e := NewExtractor()

	// Contains both a relation (friend) and a characteristic (age); the
	// relationship rule is earlier in the table and must win.
	info := e.Extract("my friend ki age kya hai, sahi?")
	if info.EntityType != detector.EntityPersonalRelationship {
		t.Errorf("expected PersonalRelationship priority, got %s", info.EntityType)
	}
}

func TestExtractPerson(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		question string
		query    string
	}{
		{"who is Albert Einstein?", "albert einstein"},
		{"Who was Marie Curie?", "marie curie"},
		{"einstein kaun hai", "einstein"},
	}

	for _, tt := range tests {
		info := e.Extract(tt.question)
		if info.EntityType != detector.EntityPerson {
			t.Errorf("%q: expected Person, got %s", tt.question, info.EntityType)
		}
		if info.Query != tt.query {
			t.Errorf("%q: expected query %q, got %q", tt.question, tt.query, info.Query)
		}
	}
}

func TestExtractCapital(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		question string
		query    string
	}{
		{"capital of France?", "capital of france"},
		{"what is the capital city of Japan", "capital of japan"},
		{"france ki rajdhani kya hai", "capital of france"},
	}

	for _, tt := range tests {
		info := e.Extract(tt.question)
		if info.EntityType != detector.EntityCapital {
			t.Errorf("%q: expected Capital, got %s", tt.question, info.EntityType)
		}
		if info.Query != tt.query {
			t.Errorf("%q: expected query %q, got %q", tt.question, tt.query, info.Query)
		}
	}
}

func TestUnknownCountryDegradesToCountry(t *testing.T) {
	e := NewExtractor()

	info := e.Extract("capital of wakanda?")
	if info.EntityType != detector.EntityCountry {
		t.Errorf("unknown country should classify as Country, got %s", info.EntityType)
	}
}

func TestBareCountryMention(t *testing.T) {
	e := NewExtractor()

	info := e.Extract("tell me about japan")
	if info.EntityType != detector.EntityCountry {
		t.Errorf("expected Country, got %s", info.EntityType)
	}
	if info.Query != "japan" {
		t.Errorf("expected query japan, got %q", info.Query)
	}
}

func TestMultiWordCountryMatchesWhole(t *testing.T) {
	e := NewExtractor()

	info := e.Extract("I want to visit south korea")
	if info.EntityType != detector.EntityCountry {
		t.Fatalf("expected Country, got %s", info.EntityType)
	}
	if info.Query != "south korea" {
		t.Errorf("two-word country must match as a whole, got query %q", info.Query)
	}

	info = e.Extract("what is the capital of south korea?")
	if info.EntityType != detector.EntityCapital {
		t.Errorf("expected Capital for a known two-word country, got %s", info.EntityType)
	}
	if info.Query != "capital of south korea" {
		t.Errorf("expected query %q, got %q", "capital of south korea", info.Query)
	}
}

func TestExtractGeneral(t *testing.T) {
	e := NewExtractor()

	for _, question := range []string{"", "   ", "how are you today?", "write me a poem"} {
		info := e.Extract(question)
		if info.EntityType != detector.EntityGeneral {
			t.Errorf("%q: expected General, got %s", question, info.EntityType)
		}
		if info.Query != detector.GeneralQuery {
			t.Errorf("%q: expected sentinel query, got %q", question, info.Query)
		}
		if info.IsPersonalValidation {
			t.Errorf("%q: General must not be a personal validation", question)
		}
	}
}

func TestCapitalOf(t *testing.T) {
	if capital, ok := CapitalOf("France"); !ok || capital != "Paris" {
		t.Errorf("expected Paris, got %q (ok=%t)", capital, ok)
	}
	if _, ok := CapitalOf("wakanda"); ok {
		t.Error("unknown country should not resolve")
	}
}
