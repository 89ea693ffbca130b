// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package errorkeywords

import "parrot-check/internal/help"

// GetCheckInfo returns standardized information about the error-keyword check.
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "error_keywords",
		ShortDescription: "Flags responses containing refusal or failure language",
		DetailedDescription: `The error-keyword check scans the response for words that indicate the
assistant failed to answer: apologies, refusals, and error reports. A response
that says "sorry, I cannot..." carries no usable content regardless of how
well it scores elsewhere, so a hit is critical and drags the overall
confidence down hard.`,
		Triggers: []string{
			"Response contains any error keyword (case-insensitive substring match)",
		},
		Scoring: []help.ScoreBand{
			{Condition: "Error keyword present", Score: 0.1, Severity: "critical"},
			{Condition: "No error keywords", Score: 0.85, Severity: "info"},
		},
		Keywords: v.keywords,
		Examples: []string{
			`parrot-check --question "What is 2+2?" --response "Sorry, I cannot help" --checks error_keywords`,
		},
	}
}
