// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package entity

import (
	"regexp"
	"sort"
	"strings"

	"parrot-check/internal/detector"
)

// rule is one entry in the ordered classification table. The first rule whose
// pattern matches the lowercased question wins; later rules are never tried,
// so order encodes priority (relationship phrasing before generic "who is",
// "who is" before capital/country lookups).
type rule struct {
	name                 string
	pattern              *regexp.Regexp
	entityType           detector.EntityType
	weight               float64
	requiresVerification bool
	strictValidation     bool
	// buildQuery derives the reference search query from the submatches.
	buildQuery func(m []string) string
}

// Extractor classifies questions into entity types using the compiled rule
// table. Safe for concurrent use; all state is immutable after construction.
type Extractor struct {
	rules          []rule
	affirmation    *regexp.Regexp
	countryMention *regexp.Regexp
}

// NewExtractor compiles the classification rule table.
func NewExtractor() *Extractor {
	relations := wordAlternation(relationshipWords)
	traits := wordAlternation(characteristicWords)
	countries := wordAlternation(keysOf(capitals))

	e := &Extractor{
		affirmation:    regexp.MustCompile(`\b(` + wordAlternation(affirmationWords) + `)\b`),
		countryMention: regexp.MustCompile(`\b(` + countries + `)\b`),
	}

	e.rules = []rule{
		{
			name:                 "personal_relationship",
			pattern:              regexp.MustCompile(`\b(?:my|meri|mera|mere)\s+(` + relations + `)\b`),
			entityType:           detector.EntityPersonalRelationship,
			weight:               0.9,
			requiresVerification: true,
			strictValidation:     true,
			buildQuery: func(m []string) string {
				return "personal relationship " + m[1]
			},
		},
		{
			name:                 "personal_characteristic",
			pattern:              regexp.MustCompile(`\b(?:my|meri|mera|mere)\s+(` + traits + `)\b`),
			entityType:           detector.EntityPersonalCharacteristic,
			weight:               0.85,
			requiresVerification: true,
			strictValidation:     true,
			buildQuery: func(m []string) string {
				return "personal characteristic " + m[1]
			},
		},
		{
			name:                 "person_who_is",
			pattern:              regexp.MustCompile(`\bwho\s+(?:is|was)\s+([a-z][a-z .'\-]{2,60})`),
			entityType:           detector.EntityPerson,
			weight:               0.8,
			requiresVerification: true,
			buildQuery: func(m []string) string {
				return cleanName(m[1])
			},
		},
		{
			name:                 "person_kaun_hai",
			pattern:              regexp.MustCompile(`\b([a-z][a-z .'\-]{2,60}?)\s+kaun\s+(?:hai|tha|thi)\b`),
			entityType:           detector.EntityPerson,
			weight:               0.8,
			requiresVerification: true,
			buildQuery: func(m []string) string {
				return cleanName(m[1])
			},
		},
		{
			name:                 "capital_of",
			pattern:              regexp.MustCompile(`\bcapital\s+(?:city\s+)?of\s+(?:the\s+)?([a-z][a-z ]{2,40})`),
			entityType:           detector.EntityCapital,
			weight:               0.9,
			requiresVerification: true,
			buildQuery: func(m []string) string {
				return "capital of " + cleanName(m[1])
			},
		},
		{
			name:                 "capital_rajdhani",
			pattern:              regexp.MustCompile(`\b([a-z][a-z ]{2,40}?)\s+(?:ki|ka)\s+rajdhani\b`),
			entityType:           detector.EntityCapital,
			weight:               0.9,
			requiresVerification: true,
			buildQuery: func(m []string) string {
				return "capital of " + cleanName(m[1])
			},
		},
		{
			name:                 "country_mention",
			pattern:              regexp.MustCompile(`\b(?:which|what)\s+country\b|\bcountry\s+(?:is|of|me|mein)\b`),
			entityType:           detector.EntityCountry,
			weight:               0.7,
			requiresVerification: true,
			buildQuery: func(m []string) string {
				return "country information"
			},
		},
	}

	return e
}

// Extract classifies a question. It never panics; an empty or unmatched
// question yields the General entity with the sentinel query.
func (e *Extractor) Extract(question string) detector.EntityInfo {
	q := strings.ToLower(strings.TrimSpace(question))
	if q == "" {
		return generalInfo()
	}

	for _, r := range e.rules {
		m := r.pattern.FindStringSubmatch(q)
		if m == nil {
			continue
		}

		info := detector.EntityInfo{
			Query:                r.buildQuery(m),
			EntityType:           r.entityType,
			MatchWeight:          r.weight,
			RequiresVerification: r.requiresVerification,
			StrictValidation:     r.strictValidation,
		}

		// Capital rules only hold for countries in the capitals table; a
		// capital question about an unknown country degrades to Country.
		if info.EntityType == detector.EntityCapital {
			if _, known := capitals[cleanName(m[1])]; !known {
				info.EntityType = detector.EntityCountry
				info.MatchWeight = 0.7
			}
		}

		// A relationship/characteristic question only counts as a personal
		// validation when it also asks for confirmation ("right?", "sahi hai?").
		if info.EntityType == detector.EntityPersonalRelationship ||
			info.EntityType == detector.EntityPersonalCharacteristic {
			info.IsPersonalValidation = e.affirmation.MatchString(q)
		}

		return info
	}

	// A bare country name without question phrasing still classifies as
	// Country, at lower priority than every phrased rule above.
	if m := e.countryMention.FindStringSubmatch(q); m != nil {
		return detector.EntityInfo{
			Query:                cleanName(m[1]),
			EntityType:           detector.EntityCountry,
			MatchWeight:          0.7,
			RequiresVerification: true,
		}
	}

	return generalInfo()
}

// CapitalOf returns the capital for a lowercase country name, if known.
func CapitalOf(country string) (string, bool) {
	capital, ok := capitals[strings.ToLower(strings.TrimSpace(country))]
	return capital, ok
}

func generalInfo() detector.EntityInfo {
	return detector.EntityInfo{
		Query:       detector.GeneralQuery,
		EntityType:  detector.EntityGeneral,
		MatchWeight: 0.3,
	}
}

// cleanName trims captured text down to a usable search term.
func cleanName(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, ".?!,;:'\"-")
	return strings.TrimSpace(s)
}

// wordAlternation joins words into a regex alternation, longest first so
// multi-word entries ("south korea") win over their prefixes.
func wordAlternation(words []string) string {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.Slice(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})
	escaped := make([]string, 0, len(sorted))
	for _, w := range sorted {
		escaped = append(escaped, regexp.QuoteMeta(w))
	}
	return strings.Join(escaped, "|")
}

func keysOf(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
