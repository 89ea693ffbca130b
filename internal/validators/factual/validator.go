// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package factual

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"parrot-check/internal/detector"
	"parrot-check/internal/observability"
	"parrot-check/internal/similarity"
)

// Similarity-to-score bands. Deliberately coarse so severity labeling stays
// stable across small similarity jitter.
var bands = []struct {
	threshold float64
	score     float64
}{
	{0.85, 0.9},
	{0.65, 0.7},
	{0.45, 0.5},
	{0.25, 0.3},
}

// Stance keyword sets for unverifiable personal-validation questions,
// English and Romanized Hindi.
var (
	affirmativeWords = regexp.MustCompile(`\b(yes|right|correct|true|sahi|theek|haan|bilkul)\b`)
	negativeWords    = regexp.MustCompile(`\b(no|wrong|incorrect|false|galat|nahi|nope)\b`)
)

// refusalKeywords mirror the error-keyword check. A response that refuses or
// reports a failure has no factual content worth corroborating, so it scores
// the bottom band without spending a lookup.
var refusalKeywords = []string{"error", "fail", "cannot", "unable", "sorry"}

// Validator scores factual consistency of a response against one fetched
// reference snippet. It performs at most one lookup call per run and never
// retries; retry policy belongs to the lookup client.
type Validator struct {
	observer *observability.StandardObserver
}

// NewValidator creates the factual-accuracy validator.
func NewValidator() *Validator {
	return &Validator{}
}

// SetObserver sets the observability component.
func (v *Validator) SetObserver(observer *observability.StandardObserver) {
	v.observer = observer
}

// Name returns the stable check name.
func (v *Validator) Name() string {
	return detector.CheckFactual
}

// Validate scores the response. Both question and response are required;
// with either missing the result is omitted. A lookup error is absorbed into
// a warn-severity fallback result so that factual-accuracy failure is never
// fatal to the overall report.
func (v *Validator) Validate(ctx context.Context, question, response string, entity detector.EntityInfo, lookup detector.Lookup) (detector.Result, bool) {
	if strings.TrimSpace(question) == "" || strings.TrimSpace(response) == "" {
		return detector.Result{}, false
	}

	var finish func(bool, map[string]any)
	if v.observer != nil {
		finish = v.observer.StartTiming("factual_validator", "validate")
	}

	result := v.score(ctx, response, entity, lookup)

	if finish != nil {
		finish(result.Pass, map[string]any{"score": result.Score})
	}
	return result, true
}

func (v *Validator) score(ctx context.Context, response string, entity detector.EntityInfo, lookup detector.Lookup) detector.Result {
	// Unverifiable claims about private information never hit the lookup:
	// the best we can do is judge whether the response took a clear stance.
	if entity.IsPersonalValidation &&
		(entity.EntityType == detector.EntityPersonalRelationship ||
			entity.EntityType == detector.EntityPersonalCharacteristic) {
		return v.scoreStance(response)
	}

	lower := strings.ToLower(response)
	for _, kw := range refusalKeywords {
		if strings.Contains(lower, kw) {
			return detector.Result{
				Name:     detector.CheckFactual,
				Pass:     false,
				Score:    0.1,
				Details:  "Response refuses or reports a failure; no factual content to verify",
				Severity: detector.SeverityWarn,
				Metadata: map[string]any{"refusal_keyword": kw},
			}
		}
	}

	if entity.Query == detector.GeneralQuery {
		return detector.Result{
			Name:     detector.CheckFactual,
			Pass:     true,
			Score:    0.8,
			Details:  "Conversational content; no entity to verify",
			Severity: detector.SeverityInfo,
		}
	}

	if lookup == nil {
		return v.fallback("no reference lookup configured")
	}

	snippet, err := lookup.Lookup(ctx, entity.Query)
	if err != nil {
		return v.fallback(err.Error())
	}

	if snippet == detector.LookupNotFound || snippet == detector.LookupFailed {
		return detector.Result{
			Name:     detector.CheckFactual,
			Pass:     true,
			Score:    0.6,
			Details:  fmt.Sprintf("Reference lookup inconclusive for %q", entity.Query),
			Severity: detector.SeverityInfo,
			Metadata: map[string]any{"lookup_result": snippet},
		}
	}

	sim := similarity.Calculate(response, snippet)
	// Short direct answers ("Paris") barely overlap a full reference sentence
	// under symmetric scoring, so a fully-corroborated answer is lifted to
	// coverage level instead.
	if coverage := similarity.AnswerCoverage(response, snippet); coverage > sim {
		sim = coverage
	}
	score := 0.1
	for _, band := range bands {
		if sim > band.threshold {
			score = band.score
			break
		}
	}

	result := detector.Result{
		Name:     detector.CheckFactual,
		Pass:     score >= 0.5,
		Score:    score,
		Details:  fmt.Sprintf("Response similarity to reference is %.2f", sim),
		Severity: detector.SeverityInfo,
		Metadata: map[string]any{
			"similarity": sim,
			"query":      entity.Query,
			"snippet":    truncate(snippet, 200),
		},
	}
	if score < 0.5 {
		result.Severity = detector.SeverityWarn
		result.Details = fmt.Sprintf("Response diverges from reference (similarity %.2f)", sim)
	}
	return result
}

// scoreStance classifies whether the response decisively affirmed or denied
// an unverifiable personal claim. Decisive either way scores 0.3; ambiguous
// (both stances or neither) scores 0.2.
func (v *Validator) scoreStance(response string) detector.Result {
	lower := strings.ToLower(response)
	affirmed := affirmativeWords.MatchString(lower)
	denied := negativeWords.MatchString(lower)

	score := 0.2
	details := "Response is ambiguous about an unverifiable personal claim"
	if affirmed != denied {
		score = 0.3
		details = "Response takes a decisive stance on an unverifiable personal claim"
	}

	return detector.Result{
		Name:     detector.CheckFactual,
		Pass:     false,
		Score:    score,
		Details:  details,
		Severity: detector.SeverityWarn,
		Metadata: map[string]any{
			"affirmed": affirmed,
			"denied":   denied,
		},
	}
}

// fallback converts a lookup failure into a degraded result: score 0.5,
// warn, never fatal.
func (v *Validator) fallback(reason string) detector.Result {
	return detector.Result{
		Name:     detector.CheckFactual,
		Pass:     true,
		Score:    0.5,
		Details:  fmt.Sprintf("Reference lookup unavailable: %s", reason),
		Severity: detector.SeverityWarn,
		Metadata: map[string]any{"lookup_error": reason},
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
