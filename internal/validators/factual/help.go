// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package factual

import "parrot-check/internal/help"

// GetCheckInfo returns standardized information about the factual-accuracy check.
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "factual_accuracy",
		ShortDescription: "Compares the response against one fetched reference snippet",
		DetailedDescription: `The factual-accuracy check derives a search query from the question's entity
classification, fetches a single reference snippet from the configured
encyclopedia source, and scores the lexical similarity between the response
and the snippet. This is a bounded heuristic, not fact verification: it
measures textual agreement with one source and maps it to coarse bands so
downstream severity labels stay stable.

Confirmation requests about private information skip the lookup entirely and
score on whether the response took a decisive stance. Lookup failures degrade
to a neutral 0.5 with warn severity and raise the external-verification flag;
they never abort the report.`,
		Triggers: []string{
			"Any question with a verifiable entity (Person, Capital, Country)",
		},
		Scoring: []help.ScoreBand{
			{Condition: "Response refuses or reports a failure", Score: 0.1, Severity: "warn"},
			{Condition: "Similarity > 0.85", Score: 0.9, Severity: "info"},
			{Condition: "Similarity > 0.65", Score: 0.7, Severity: "info"},
			{Condition: "Similarity > 0.45", Score: 0.5, Severity: "info"},
			{Condition: "Similarity > 0.25", Score: 0.3, Severity: "warn"},
			{Condition: "Similarity <= 0.25", Score: 0.1, Severity: "warn"},
			{Condition: "Lookup inconclusive (sentinel)", Score: 0.6, Severity: "info"},
			{Condition: "Lookup failed", Score: 0.5, Severity: "warn"},
			{Condition: "No entity matched (conversational)", Score: 0.8, Severity: "info"},
			{Condition: "Unverifiable personal claim, decisive stance", Score: 0.3, Severity: "warn"},
			{Condition: "Unverifiable personal claim, ambiguous", Score: 0.2, Severity: "warn"},
		},
		Examples: []string{
			`parrot-check --question "capital of France?" --response "Paris"`,
		},
	}
}
