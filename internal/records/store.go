// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package records persists validation results and deduplicates repeated
// pairs. Deduplication lives here, outside the scoring core: the aggregator
// stays pure while the store decides whether a pair was already scored.
package records

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"parrot-check/internal/detector"
)

// DefaultMaxEntries bounds the store when the caller does not.
const DefaultMaxEntries = 500

// Record is one stored validation run.
type Record struct {
	ID         string          `yaml:"id" json:"id"`
	Hash       string          `yaml:"hash" json:"hash"`
	Pair       detector.Pair   `yaml:"pair" json:"pair"`
	Report     detector.Report `yaml:"report" json:"report"`
	CreatedAt  time.Time       `yaml:"created_at" json:"created_at"`
	LastSeenAt time.Time       `yaml:"last_seen_at" json:"last_seen_at"`
	SeenCount  int             `yaml:"seen_count" json:"seen_count"`
}

// storeFile is the on-disk layout.
type storeFile struct {
	Version string   `yaml:"version"`
	Records []Record `yaml:"records"`
}

// Store holds validation records in memory with a bounded history and
// optional YAML persistence. Safe for concurrent use.
type Store struct {
	mu         sync.Mutex
	path       string
	maxEntries int
	records    []Record
	index      map[string]int // hash -> position in records
	nextID     int
}

// NewStore creates a record store backed by the given file. An empty path
// keeps the store memory-only. A missing or unreadable file starts empty;
// persistence failures surface on Save, not here.
func NewStore(path string, maxEntries int) *Store {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	s := &Store{
		path:       path,
		maxEntries: maxEntries,
		index:      make(map[string]int),
	}
	s.load()
	return s
}

// PairHash derives the deduplication key for a pair. Platform participates
// so the same exchange captured from two platforms stays distinct.
func PairHash(pair detector.Pair) string {
	composite := pair.Question + "|" + pair.Response + "|" + pair.Platform
	hash := sha256.Sum256([]byte(composite))
	return fmt.Sprintf("%x", hash)
}

// Find returns the stored record for a pair, if any.
func (s *Store) Find(pair detector.Pair) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[PairHash(pair)]
	if !ok {
		return Record{}, false
	}
	return s.records[pos], true
}

// Add stores a validation run. A pair already present is not duplicated:
// its record is refreshed (last-seen time, seen count, latest report) and
// returned with added=false. New records evict the oldest entry once the
// store is full.
func (s *Store) Add(pair detector.Pair, report detector.Report) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	hash := PairHash(pair)

	if pos, ok := s.index[hash]; ok {
		s.records[pos].LastSeenAt = now
		s.records[pos].SeenCount++
		s.records[pos].Report = report
		return s.records[pos], false
	}

	s.nextID++
	record := Record{
		ID:         fmt.Sprintf("REC-%08d", s.nextID),
		Hash:       hash,
		Pair:       pair,
		Report:     report,
		CreatedAt:  now,
		LastSeenAt: now,
		SeenCount:  1,
	}

	s.records = append(s.records, record)
	if len(s.records) > s.maxEntries {
		evicted := s.records[0]
		s.records = s.records[1:]
		delete(s.index, evicted.Hash)
	}
	s.rebuildIndex()

	return record, true
}

// All returns a copy of the stored records, newest first.
func (s *Store) All() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Record, len(s.records))
	copy(out, s.records)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Remove deletes a record by ID. Returns false when the ID is unknown.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.records {
		if r.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			s.rebuildIndex()
			return true
		}
	}
	return false
}

// Clear removes every record.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	s.index = make(map[string]int)
}

// Save writes the store to its backing file. A memory-only store saves
// nothing and returns nil.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return nil
	}

	data, err := yaml.Marshal(storeFile{
		Version: "1.0",
		Records: s.records,
	})
	if err != nil {
		return fmt.Errorf("marshaling records: %w", err)
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating records directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing records file: %w", err)
	}
	return nil
}

func (s *Store) load() {
	if s.path == "" {
		return
	}

	data, err := os.ReadFile(filepath.Clean(s.path))
	if err != nil {
		return
	}

	var file storeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return
	}

	s.records = file.Records
	if len(s.records) > s.maxEntries {
		s.records = s.records[len(s.records)-s.maxEntries:]
	}
	s.rebuildIndex()

	for _, r := range s.records {
		var num int
		if _, err := fmt.Sscanf(r.ID, "REC-%08d", &num); err == nil && num > s.nextID {
			s.nextID = num
		}
	}
}

func (s *Store) rebuildIndex() {
	s.index = make(map[string]int, len(s.records))
	for i, r := range s.records {
		s.index[r.Hash] = i
	}
}
