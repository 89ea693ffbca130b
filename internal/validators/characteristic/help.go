// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package characteristic

import "parrot-check/internal/help"

// GetCheckInfo returns standardized information about the personal-characteristic check.
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "personal_characteristic_validation",
		ShortDescription: "Flags confirmation requests about private personal attributes",
		DetailedDescription: `This check fires when the question is about the user's own attributes (age,
umar, height, naam, ...). A confirmation-seeking question of this kind
("meri age 25 hai, theek?") cannot be checked against any reference source;
the check fails with warn severity and the pair is flagged for review.`,
		Triggers: []string{
			"Entity type is PersonalCharacteristic",
			"Question contains an affirmation-seeking word (right/correct/true/sahi/theek)",
		},
		Scoring: []help.ScoreBand{
			{Condition: "Confirmation-seeking characteristic question", Score: 0.3, Severity: "warn"},
			{Condition: "Characteristic mentioned, no confirmation sought", Score: 0.7, Severity: "info"},
			{Condition: "Not applicable", Score: 0.9, Severity: "info"},
		},
		Examples: []string{
			`parrot-check --question "meri age 25 hai, theek hai na?" --response "Yes, that is right"`,
		},
	}
}
