// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package responselength

import "parrot-check/internal/help"

// GetCheckInfo returns standardized information about the response-length check.
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "response_length",
		ShortDescription: "Flags responses too short to carry a real answer",
		DetailedDescription: `The response-length check measures the raw character length of the response.
Answers under ten characters ("Yes.", "42") rarely contain enough substance
to be verified by the other checks, so they are marked for review rather than
failed outright.`,
		Triggers: []string{
			"Response shorter than 10 characters",
		},
		Scoring: []help.ScoreBand{
			{Condition: "Response under 10 characters", Score: 0.3, Severity: "warn"},
			{Condition: "Adequate length", Score: 0.92, Severity: "info"},
		},
		Examples: []string{
			`parrot-check --question "Explain photosynthesis" --response "ok" --checks response_length`,
		},
	}
}
