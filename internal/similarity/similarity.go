// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package similarity scores how close two free-text strings are, blending
// character 3-gram overlap (robust to typos and morphology) with token-level
// overlap (rewards shared vocabulary). Scores are normalized to [0,1].
package similarity

import (
	"strings"
)

const (
	gramSize      = 3
	ngramWeight   = 0.7
	overlapWeight = 0.3

	// Token-overlap match weights.
	exactWeight     = 1.0
	substringWeight = 0.8
	nearMissWeight  = 0.6

	// Minimum Levenshtein-derived word similarity for a near-miss match.
	nearMissThreshold = 0.7
)

// stopwords are common English function words dropped before token matching.
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"the", "and", "for", "are", "but", "not", "you", "all", "can", "had",
		"her", "was", "one", "our", "out", "day", "get", "has", "him", "his",
		"how", "man", "new", "now", "old", "see", "two", "way", "who", "did",
		"its", "let", "put", "say", "she", "too", "use", "that", "with",
		"have", "this", "will", "your", "from", "they", "know", "want",
		"been", "good", "much", "some", "time", "very", "when", "come",
		"here", "just", "like", "long", "make", "many", "more", "only",
		"over", "such", "take", "than", "them", "well", "were", "what",
		"which", "their", "there", "would", "about", "could", "other",
	} {
		stopwords[w] = struct{}{}
	}
}

// Calculate returns the blended similarity of two strings in [0,1].
// It returns 0 when either input produces no usable tokens.
func Calculate(a, b string) float64 {
	tokensA := Tokenize(a)
	tokensB := Tokenize(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	// N-grams come from the raw lowercased strings, not the filtered tokens,
	// so punctuation-adjacent and stopword characters still contribute
	// surface evidence.
	ngram := ngramSimilarity(strings.ToLower(a), strings.ToLower(b))
	overlap := tokenOverlap(tokensA, tokensB)

	score := ngramWeight*ngram + overlapWeight*overlap
	return clamp01(score)
}

// AnswerCoverage reports how much of a short answer text is corroborated by
// a longer reference text, in [0,1]. Unlike Calculate it normalizes by the
// answer's own token count, so a one-word answer fully contained in a
// sentence-long reference still scores 1.0. Returns 0 when either side
// tokenizes to nothing.
func AnswerCoverage(answer, reference string) float64 {
	ansTokens := Tokenize(answer)
	refTokens := Tokenize(reference)
	if len(ansTokens) == 0 || len(refTokens) == 0 {
		return 0
	}

	refSet := make(map[string]struct{}, len(refTokens))
	for _, t := range refTokens {
		refSet[t] = struct{}{}
	}

	var weighted float64
	for _, t := range ansTokens {
		if _, ok := refSet[t]; ok {
			weighted += exactWeight
			continue
		}
		if hasSubstringMatch(t, refTokens) {
			weighted += substringWeight
			continue
		}
		if hasNearMiss(t, refTokens) {
			weighted += nearMissWeight
		}
	}
	return clamp01(weighted / float64(len(ansTokens)))
}

// Tokenize lowercases, strips non-alphanumerics, drops short tokens and
// stopwords, and applies light suffix stemming.
func Tokenize(s string) []string {
	var sb strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		} else {
			sb.WriteByte(' ')
		}
	}

	var tokens []string
	for _, tok := range strings.Fields(sb.String()) {
		if len(tok) <= 2 {
			continue
		}
		tok = stem(tok)
		if len(tok) <= 2 {
			continue
		}
		if _, stop := stopwords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// stem strips a handful of common English suffixes. Deliberately light: the
// goal is matching "cities"/"city" and "walked"/"walking", not linguistics.
func stem(tok string) string {
	switch {
	case strings.HasSuffix(tok, "ies"):
		return tok[:len(tok)-3] + "y"
	case strings.HasSuffix(tok, "ss"):
		return tok
	case strings.HasSuffix(tok, "es"):
		return tok[:len(tok)-2]
	case strings.HasSuffix(tok, "ing") && len(tok) > 5:
		return tok[:len(tok)-3]
	case strings.HasSuffix(tok, "ed") && len(tok) > 4:
		return tok[:len(tok)-2]
	case strings.HasSuffix(tok, "s"):
		return tok[:len(tok)-1]
	}
	return tok
}

// ngramSimilarity computes multiset Jaccard similarity over character
// 3-grams: sum(min counts) / sum(max counts) across the union of grams.
func ngramSimilarity(a, b string) float64 {
	gramsA := countGrams(a)
	gramsB := countGrams(b)
	if len(gramsA) == 0 || len(gramsB) == 0 {
		return 0
	}

	union := make(map[string]struct{}, len(gramsA)+len(gramsB))
	for g := range gramsA {
		union[g] = struct{}{}
	}
	for g := range gramsB {
		union[g] = struct{}{}
	}

	var minSum, maxSum int
	for g := range union {
		ca, cb := gramsA[g], gramsB[g]
		if ca < cb {
			minSum += ca
			maxSum += cb
		} else {
			minSum += cb
			maxSum += ca
		}
	}
	if maxSum == 0 {
		return 0
	}
	return float64(minSum) / float64(maxSum)
}

func countGrams(s string) map[string]int {
	grams := make(map[string]int)
	runes := []rune(s)
	if len(runes) < gramSize {
		return grams
	}
	for i := 0; i+gramSize <= len(runes); i++ {
		grams[string(runes[i:i+gramSize])]++
	}
	return grams
}

// tokenOverlap scores word-level agreement: exact matches weigh 1.0,
// substring containment 0.8, near misses by edit distance 0.6, normalized by
// the longer token list.
func tokenOverlap(tokensA, tokensB []string) float64 {
	maxLen := len(tokensA)
	if len(tokensB) > maxLen {
		maxLen = len(tokensB)
	}
	if maxLen == 0 {
		return 0
	}

	setB := make(map[string]struct{}, len(tokensB))
	for _, t := range tokensB {
		setB[t] = struct{}{}
	}

	var weighted float64
	for _, ta := range tokensA {
		if _, ok := setB[ta]; ok {
			weighted += exactWeight
			continue
		}
		if hasSubstringMatch(ta, tokensB) {
			weighted += substringWeight
			continue
		}
		if hasNearMiss(ta, tokensB) {
			weighted += nearMissWeight
		}
	}

	return clamp01(weighted / float64(maxLen))
}

func hasSubstringMatch(tok string, others []string) bool {
	for _, other := range others {
		if tok == other {
			continue
		}
		if strings.Contains(other, tok) || strings.Contains(tok, other) {
			return true
		}
	}
	return false
}

func hasNearMiss(tok string, others []string) bool {
	for _, other := range others {
		if WordSimilarity(tok, other) > nearMissThreshold {
			return true
		}
	}
	return false
}

// WordSimilarity is 1 - normalized Levenshtein distance between two words.
func WordSimilarity(a, b string) float64 {
	if a == b {
		return 1
	}
	la, lb := len(a), len(b)
	longer := la
	if lb > longer {
		longer = lb
	}
	if longer == 0 {
		return 1
	}
	return 1 - float64(levenshtein(a, b))/float64(longer)
}

// levenshtein computes edit distance with a two-row dynamic program.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
