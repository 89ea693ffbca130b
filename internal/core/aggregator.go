// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package core combines the individual validators into one weighted verdict.
// The Aggregator is the single public entry point shared by the CLI and the
// web server; it never returns an error, only a degraded report.
package core

import (
	"context"
	"fmt"
	"strings"

	"parrot-check/internal/detector"
	"parrot-check/internal/entity"
	"parrot-check/internal/observability"
	"parrot-check/internal/validators/factual"
)

// defaultWeights is the canonical aggregation weight table keyed by check
// name. Factual accuracy dominates deliberately; the rule checks mostly
// shade the verdict rather than decide it.
var defaultWeights = map[string]float64{
	detector.CheckErrorKeywords:  0.2,
	detector.CheckResponseLength: 0.1,
	detector.CheckSensitive:      0.1,
	detector.CheckProfessional:   0.15,
	detector.CheckRelationship:   0.2,
	detector.CheckCharacteristic: 0.15,
	detector.CheckFactual:        0.45,
}

// fallbackWeight applies to any check name missing from the weight table.
const fallbackWeight = 0.1

// Factual scores below this threshold raise the external-verification flag.
const factualReviewThreshold = 0.75

// AggregatorOptions configures report construction.
type AggregatorOptions struct {
	// Checks filters which validators run. Nil or empty enables all.
	Checks map[string]bool
	// Weights overrides individual entries of the default weight table.
	Weights map[string]float64
	// Lookup is the reference source the factual check queries. Nil disables
	// lookups; the factual check then degrades per its fallback rules.
	Lookup   detector.Lookup
	Observer *observability.StandardObserver
}

// Aggregator runs the validator pipeline over question/response pairs.
type Aggregator struct {
	extractor *entity.Extractor
	rules     []detector.Validator
	factual   *factual.Validator
	runFinal  bool
	lookup    detector.Lookup
	weights   map[string]float64
	observer  *observability.StandardObserver
}

// NewAggregator builds an aggregator with the given options.
func NewAggregator(opts AggregatorOptions) *Aggregator {
	enabled := opts.Checks
	if len(enabled) == 0 {
		enabled = ParseChecksToRun(nil)
	}

	weights := make(map[string]float64, len(defaultWeights))
	for name, w := range defaultWeights {
		weights[name] = w
	}
	for name, w := range opts.Weights {
		if w >= 0 {
			weights[name] = w
		}
	}

	a := &Aggregator{
		extractor: entity.NewExtractor(),
		rules:     BuildRuleValidators(enabled),
		runFinal:  enabled[detector.CheckFactual],
		lookup:    opts.Lookup,
		weights:   weights,
		observer:  opts.Observer,
	}
	if a.runFinal {
		a.factual = factual.NewValidator()
		if opts.Observer != nil {
			a.factual.SetObserver(opts.Observer)
		}
	}
	if opts.Observer != nil {
		for _, v := range a.rules {
			if obs, ok := v.(interface {
				SetObserver(*observability.StandardObserver)
			}); ok {
				obs.SetObserver(opts.Observer)
			}
		}
	}
	return a
}

// Validate scores one question/response pair. It classifies the question
// once, runs every enabled validator, and folds their scores into a weighted
// confidence. The method never fails: missing inputs shrink the validator
// list and lookup trouble is absorbed inside the factual check.
func (a *Aggregator) Validate(ctx context.Context, question, response string) detector.Report {
	var finish func(bool, map[string]any)
	if a.observer != nil {
		finish = a.observer.StartTiming("aggregator", "validate")
	}

	if strings.TrimSpace(question) == "" && strings.TrimSpace(response) == "" {
		report := detector.Report{
			Issues: []string{"[warn] Nothing to validate; both question and response are empty"},
			Entity: detector.EntityInfo{Query: detector.GeneralQuery, EntityType: detector.EntityGeneral},
		}
		report.Notes = report.Issues[0]
		if finish != nil {
			finish(false, map[string]any{"confidence": 0.0, "validators": 0})
		}
		return report
	}

	info := a.extractor.Extract(question)

	var results []detector.Result
	for _, v := range a.rules {
		if result, ok := v.Validate(question, response, info); ok {
			results = append(results, result)
		}
	}
	if a.runFinal {
		if result, ok := a.factual.Validate(ctx, question, response, info, a.lookup); ok {
			results = append(results, result)
		}
	}

	report := a.buildReport(results, info)

	if finish != nil {
		finish(report.IsValid, map[string]any{
			"confidence": report.Confidence,
			"validators": len(results),
		})
	}
	return report
}

// ValidatePair is a convenience wrapper for captured exchanges.
func (a *Aggregator) ValidatePair(ctx context.Context, pair detector.Pair) detector.Report {
	return a.Validate(ctx, pair.Question, pair.Response)
}

func (a *Aggregator) buildReport(results []detector.Result, info detector.EntityInfo) detector.Report {
	report := detector.Report{
		Validators: results,
		Entity:     info,
		Issues:     []string{},
	}

	var weightedSum, totalWeight float64
	for _, r := range results {
		w, ok := a.weights[r.Name]
		if !ok {
			w = fallbackWeight
		}
		weightedSum += r.Score * w
		totalWeight += w
	}
	if totalWeight > 0 {
		report.Confidence = weightedSum / totalWeight
	}
	if report.Confidence < 0 {
		report.Confidence = 0
	} else if report.Confidence > 1 {
		report.Confidence = 1
	}
	report.IsValid = totalWeight > 0 && report.Confidence >= 0.5

	// Issues in evaluation order, then entity advisories.
	for _, r := range results {
		if r.Severity != detector.SeverityInfo {
			report.Issues = append(report.Issues, fmt.Sprintf("[%s] %s", r.Severity, r.Details))
		}
		if !r.Pass {
			if s := suggestionFor(r.Name); s != "" {
				report.Suggestions = append(report.Suggestions, s)
			}
		}
	}
	report.Issues = append(report.Issues, advisories(info)...)

	report.ExternalVerificationRequired = a.needsExternalVerification(results, info)
	if report.ExternalVerificationRequired {
		report.Suggestions = append(report.Suggestions, "Have a human reviewer verify this response before relying on it")
	}

	if len(report.Issues) > 0 {
		report.Notes = strings.Join(report.Issues, " | ")
	} else {
		report.Notes = "Validation completed."
	}
	return report
}

func (a *Aggregator) needsExternalVerification(results []detector.Result, info detector.EntityInfo) bool {
	if info.EntityType == detector.EntityPerson {
		return true
	}
	if info.IsPersonalValidation {
		return true
	}
	for _, r := range results {
		switch r.Name {
		case detector.CheckErrorKeywords, detector.CheckSensitive:
			if !r.Pass {
				return true
			}
		case detector.CheckFactual:
			if r.Score < factualReviewThreshold {
				return true
			}
		}
	}
	return false
}

// advisories returns the entity-level review messages that accompany, but do
// not originate from, validator findings.
func advisories(info detector.EntityInfo) []string {
	var msgs []string
	if info.EntityType == detector.EntityPerson {
		msgs = append(msgs, "Person entity: manual verification required")
	}
	if info.IsPersonalValidation {
		switch info.EntityType {
		case detector.EntityPersonalRelationship:
			msgs = append(msgs, "Personal relationship requires manual verification")
		case detector.EntityPersonalCharacteristic:
			msgs = append(msgs, "Personal characteristic requires manual verification")
		}
	}
	return msgs
}

func suggestionFor(name string) string {
	switch name {
	case detector.CheckErrorKeywords:
		return "Rephrase the question; the assistant refused or reported an error"
	case detector.CheckResponseLength:
		return "Ask for a more complete answer; the response is too short to evaluate"
	case detector.CheckSensitive:
		return "Avoid sharing or requesting sensitive information in questions"
	case detector.CheckProfessional:
		return "Verify professional claims about this person against an authoritative source"
	case detector.CheckRelationship:
		return "Claims about personal relationships cannot be verified automatically"
	case detector.CheckCharacteristic:
		return "Claims about personal characteristics cannot be verified automatically"
	case detector.CheckFactual:
		return "Cross-check the response against an independent reference"
	default:
		return ""
	}
}
