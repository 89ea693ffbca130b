// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"strings"

	"parrot-check/internal/detector"
	"parrot-check/internal/validators/characteristic"
	"parrot-check/internal/validators/errorkeywords"
	"parrot-check/internal/validators/professionalclaims"
	"parrot-check/internal/validators/relationship"
	"parrot-check/internal/validators/responselength"
	"parrot-check/internal/validators/sensitivekeywords"
)

// AllChecks lists every check name in evaluation order. The order is part of
// the report contract: validators and issues are always emitted in this order.
var AllChecks = []string{
	detector.CheckErrorKeywords,
	detector.CheckResponseLength,
	detector.CheckSensitive,
	detector.CheckProfessional,
	detector.CheckRelationship,
	detector.CheckCharacteristic,
	detector.CheckFactual,
}

// BuildRuleValidators constructs the six rule validators filtered by the
// enabled-checks map, preserving evaluation order. The factual-accuracy
// validator is not built here; it has a different signature (context plus
// injected lookup) and is owned by the Aggregator directly.
func BuildRuleValidators(enabledChecks map[string]bool) []detector.Validator {
	var result []detector.Validator

	if enabledChecks[detector.CheckErrorKeywords] {
		result = append(result, errorkeywords.NewValidator())
	}
	if enabledChecks[detector.CheckResponseLength] {
		result = append(result, responselength.NewValidator())
	}
	if enabledChecks[detector.CheckSensitive] {
		result = append(result, sensitivekeywords.NewValidator())
	}
	if enabledChecks[detector.CheckProfessional] {
		result = append(result, professionalclaims.NewValidator())
	}
	if enabledChecks[detector.CheckRelationship] {
		result = append(result, relationship.NewValidator())
	}
	if enabledChecks[detector.CheckCharacteristic] {
		result = append(result, characteristic.NewValidator())
	}

	return result
}

// ParseChecksToRun converts a list of check name specifications into an
// enabled-checks map. An empty list, or the special value "ALL", enables
// every check. Names are case-insensitive; unknown names are ignored.
func ParseChecksToRun(checks []string) map[string]bool {
	enabled := make(map[string]bool)

	if len(checks) == 0 {
		for _, name := range AllChecks {
			enabled[name] = true
		}
		return enabled
	}

	known := make(map[string]bool, len(AllChecks))
	for _, name := range AllChecks {
		known[name] = true
	}

	for _, raw := range checks {
		for _, part := range strings.Split(raw, ",") {
			name := strings.ToLower(strings.TrimSpace(part))
			if name == "" {
				continue
			}
			if name == "all" {
				for _, n := range AllChecks {
					enabled[n] = true
				}
				continue
			}
			if known[name] {
				enabled[name] = true
			}
		}
	}

	return enabled
}

// ParseConfidenceLevels converts a comma-separated confidence filter
// ("high", "high,medium", "all") into a level set for report filtering.
func ParseConfidenceLevels(levels string) map[string]bool {
	result := make(map[string]bool)

	if strings.TrimSpace(levels) == "" {
		levels = "all"
	}

	for _, part := range strings.Split(levels, ",") {
		level := strings.ToUpper(strings.TrimSpace(part))
		switch level {
		case "ALL":
			result["HIGH"] = true
			result["MEDIUM"] = true
			result["LOW"] = true
		case "HIGH", "MEDIUM", "LOW":
			result[level] = true
		}
	}

	return result
}
