package extract

import (
	"strings"
	"unicode"
)

// Scoring heuristics are pure functions over explicit inputs returning a
// bounded float, so each can be tuned and tested in isolation.

// ConceptConfidence scores a concept from the orthography of its first
// observed surface form. The base is 0.5; leading capitals, multi-word or
// hyphenated shapes, and internal capitalisation or underscores each add a
// fixed boost. The result is capped at 1.0.
func ConceptConfidence(raw string) float64 {
	confidence := 0.5

	if hasLeadingCapital(raw) {
		confidence += 0.2
	}
	if strings.ContainsAny(raw, " -") {
		confidence += 0.1
	}
	if hasInternalCapital(raw) || strings.Contains(raw, "_") {
		confidence += 0.15
	}

	return clamp01(confidence)
}

// RelationshipConfidence scores a single relationship observation.
// gap is the character distance between the two concept mentions and span
// the sentence length; closer mentions score higher. explicitVerb marks a
// matched copula or relational verb phrase.
func RelationshipConfidence(gap, span int, explicitVerb bool) float64 {
	if span <= 0 {
		return 0
	}
	if gap < 0 {
		gap = 0
	}
	if gap > span {
		gap = span
	}

	proximity := 1.0 - float64(gap)/float64(span)
	confidence := 0.3 + 0.4*proximity
	if explicitVerb {
		confidence += 0.2
	}

	return clamp01(confidence)
}

// ConsolidatedStrength accumulates strength over repeated observations of
// the same triple: base plus step per additional occurrence, capped at 1.0.
func ConsolidatedStrength(base, step float64, occurrences int) float64 {
	if occurrences < 1 {
		return 0
	}
	return clamp01(base + step*float64(occurrences-1))
}

// Coherence estimates how thematically unified a set of concepts is from
// the pairwise overlap of their document contexts. A single member is
// trivially coherent.
func Coherence(contexts [][]string) float64 {
	if len(contexts) <= 1 {
		return 1.0
	}

	sets := make([]map[string]struct{}, len(contexts))
	for i, ctx := range contexts {
		sets[i] = make(map[string]struct{}, len(ctx))
		for _, c := range ctx {
			sets[i][c] = struct{}{}
		}
	}

	var total float64
	var pairs int
	for i := 0; i < len(sets); i++ {
		for j := i + 1; j < len(sets); j++ {
			total += jaccard(sets[i], sets[j])
			pairs++
		}
	}
	if pairs == 0 {
		return 1.0
	}
	return clamp01(total / float64(pairs))
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	var shared int
	for k := range a {
		if _, ok := b[k]; ok {
			shared++
		}
	}
	union := len(a) + len(b) - shared
	if union == 0 {
		return 0
	}
	return float64(shared) / float64(union)
}

func hasLeadingCapital(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

func hasInternalCapital(s string) bool {
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
