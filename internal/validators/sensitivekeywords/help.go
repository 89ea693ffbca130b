// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package sensitivekeywords

import "parrot-check/internal/help"

// GetCheckInfo returns standardized information about the sensitive-keyword check.
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "sensitive_keywords",
		ShortDescription: "Flags questions that solicit passwords, card numbers, or other sensitive data",
		DetailedDescription: `The sensitive-keyword check scans the question for requests touching
credentials, payment data, or personal records. Any exchange on these topics
is flagged for human review regardless of how the assistant responded, and
the external-verification flag is raised on the overall report.`,
		Triggers: []string{
			"Question contains any sensitive keyword (case-insensitive substring match)",
		},
		Scoring: []help.ScoreBand{
			{Condition: "Sensitive keyword present", Score: 0.2, Severity: "critical"},
			{Condition: "No sensitive keywords", Score: 0.9, Severity: "info"},
		},
		Keywords: v.keywords,
		Examples: []string{
			`parrot-check --question "What is the admin password?" --response "I cannot share that" --checks sensitive_keywords`,
		},
	}
}
