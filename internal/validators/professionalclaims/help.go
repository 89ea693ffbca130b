// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package professionalclaims

import "parrot-check/internal/help"

// GetCheckInfo returns standardized information about the professional-claims check.
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "professional_claims",
		ShortDescription: "Flags professional titles and affiliations claimed about a person",
		DetailedDescription: `The professional-claims check looks for profession and institution keywords
in the response. When the question asks about a specific person, such claims
("was a theoretical physicist", "founded the institute") are exactly the
statements most worth verifying against a reference source, so the check
fails and requests manual verification. Claims in non-person contexts are
noted but pass.`,
		Triggers: []string{
			"Response contains a profession/institution keyword",
			"Entity type of the question is Person (fails) or anything else (informational)",
		},
		Scoring: []help.ScoreBand{
			{Condition: "Claim about a Person entity", Score: 0.35, Severity: "warn"},
			{Condition: "Claim in a non-person context", Score: 0.82, Severity: "info"},
			{Condition: "No professional claims", Score: 0.92, Severity: "info"},
		},
		Keywords: v.keywords,
		Examples: []string{
			`parrot-check --question "who is Albert Einstein?" --response "Albert Einstein was a theoretical physicist."`,
		},
	}
}
