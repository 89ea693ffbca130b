// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package records

import (
	"fmt"
	"path/filepath"
	"testing"

	"parrot-check/internal/detector"
)

func samplePair(n int) detector.Pair {
	return detector.Pair{
		Question: fmt.Sprintf("question %d", n),
		Response: fmt.Sprintf("response %d", n),
		Platform: "test",
	}
}

func sampleReport(confidence float64) detector.Report {
	return detector.Report{
		IsValid:    confidence >= 0.5,
		Confidence: confidence,
		Notes:      "Validation completed.",
	}
}

func TestAddAndFind(t *testing.T) {
	store := NewStore("", 10)

	pair := samplePair(1)
	record, added := store.Add(pair, sampleReport(0.8))
	if !added {
		t.Fatal("expected first Add to create a record")
	}
	if record.ID != "REC-00000001" {
		t.Errorf("unexpected record ID: %s", record.ID)
	}

	found, ok := store.Find(pair)
	if !ok {
		t.Fatal("expected to find stored pair")
	}
	if found.Hash != PairHash(pair) {
		t.Error("stored hash does not match PairHash")
	}
}

func TestAddDeduplicates(t *testing.T) {
	store := NewStore("", 10)
	pair := samplePair(1)

	store.Add(pair, sampleReport(0.8))
	record, added := store.Add(pair, sampleReport(0.6))
	if added {
		t.Error("expected duplicate pair to not create a new record")
	}
	if record.SeenCount != 2 {
		t.Errorf("expected seen count 2, got %d", record.SeenCount)
	}
	if record.Report.Confidence != 0.6 {
		t.Error("expected duplicate Add to refresh the report")
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 record, got %d", store.Len())
	}
}

func TestPlatformDistinguishesPairs(t *testing.T) {
	store := NewStore("", 10)

	a := detector.Pair{Question: "q", Response: "r", Platform: "chatgpt"}
	b := detector.Pair{Question: "q", Response: "r", Platform: "gemini"}

	store.Add(a, sampleReport(0.8))
	_, added := store.Add(b, sampleReport(0.8))
	if !added {
		t.Error("same exchange on a different platform should be a distinct record")
	}
}

func TestBoundedEviction(t *testing.T) {
	store := NewStore("", 3)

	for i := 0; i < 5; i++ {
		store.Add(samplePair(i), sampleReport(0.8))
	}

	if store.Len() != 3 {
		t.Fatalf("expected store capped at 3 records, got %d", store.Len())
	}
	if _, ok := store.Find(samplePair(0)); ok {
		t.Error("oldest record should have been evicted")
	}
	if _, ok := store.Find(samplePair(4)); !ok {
		t.Error("newest record should be present")
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.yaml")

	store := NewStore(path, 10)
	store.Add(samplePair(1), sampleReport(0.8))
	store.Add(samplePair(2), sampleReport(0.3))
	if err := store.Save(); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	reloaded := NewStore(path, 10)
	if reloaded.Len() != 2 {
		t.Fatalf("expected 2 records after reload, got %d", reloaded.Len())
	}
	if _, ok := reloaded.Find(samplePair(1)); !ok {
		t.Error("expected reloaded store to find stored pair")
	}

	// New IDs continue past reloaded ones
	record, _ := reloaded.Add(samplePair(3), sampleReport(0.9))
	if record.ID != "REC-00000003" {
		t.Errorf("expected ID continuation, got %s", record.ID)
	}
}

func TestRemoveAndClear(t *testing.T) {
	store := NewStore("", 10)
	record, _ := store.Add(samplePair(1), sampleReport(0.8))
	store.Add(samplePair(2), sampleReport(0.8))

	if !store.Remove(record.ID) {
		t.Error("expected Remove to succeed for known ID")
	}
	if store.Remove("REC-99999999") {
		t.Error("expected Remove to fail for unknown ID")
	}

	store.Clear()
	if store.Len() != 0 {
		t.Errorf("expected empty store after Clear, got %d", store.Len())
	}
}
