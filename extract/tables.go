package extract

import "regexp"

// Tables bundles the fixed pattern and keyword tables used by the
// extractors. They are plain data injected at construction so alternate
// taxonomies can be substituted in tests.
type Tables struct {
	// StopWords are discarded during tokenisation.
	StopWords []string

	// KindIndicators maps each kind to indicator substrings; a term
	// containing one is classified as that kind.
	KindIndicators map[Kind][]string

	// SuffixRules assign a kind by term suffix when no indicator matches.
	SuffixRules []SuffixRule

	// RelationPatterns is the ordered list of lexical patterns tested
	// against the text between two co-occurring concepts. Order matters:
	// more specific verb phrases come before generic copulas.
	RelationPatterns []RelationPattern

	// BidirectionalTypes are relation types mirrored automatically.
	BidirectionalTypes []string

	// DomainKeywords maps thematic domain names to their keyword lists.
	DomainKeywords map[string][]string
}

// SuffixRule assigns a kind to terms ending with Suffix.
type SuffixRule struct {
	Suffix string
	Kind   Kind
}

// RelationPattern is a verb-phrase pattern identifying one relation type.
type RelationPattern struct {
	// Type is the relation tag assigned on match.
	Type string

	// Pattern matches the text between the two concept mentions.
	Pattern *regexp.Regexp
}

// DefaultTables returns the stock extraction tables.
func DefaultTables() Tables {
	return Tables{
		StopWords: []string{
			"the", "and", "for", "are", "but", "not", "you", "all", "can",
			"had", "her", "was", "one", "our", "out", "day", "get", "has",
			"him", "his", "how", "man", "new", "now", "old", "see", "two",
			"way", "who", "did", "its", "let", "she", "too", "use", "that",
			"this", "with", "have", "from", "they", "been", "were", "said",
			"each", "which", "their", "will", "other", "about", "many",
			"then", "them", "these", "some", "what", "when", "where",
			"also", "more", "very", "such", "into", "than", "only", "most",
			"over", "just", "like", "should", "would", "could", "there",
			"because", "while", "after", "before", "between", "under",
			"does", "being", "both", "during", "through", "same",
		},
		KindIndicators: map[Kind][]string{
			KindProcess: {
				"process", "workflow", "procedure", "method", "analysis",
				"operation", "cycle", "routine", "task",
			},
			KindQuality: {
				"quality", "property", "attribute", "characteristic",
				"trait", "feature", "degree", "level",
			},
			KindEntity: {
				"system", "component", "object", "device", "person",
				"organization", "document", "tool", "resource",
			},
		},
		SuffixRules: []SuffixRule{
			{Suffix: "ing", Kind: KindProcess},
			{Suffix: "tion", Kind: KindProcess},
			{Suffix: "ment", Kind: KindProcess},
			{Suffix: "ness", Kind: KindQuality},
			{Suffix: "ity", Kind: KindQuality},
			{Suffix: "able", Kind: KindQuality},
		},
		RelationPatterns: []RelationPattern{
			{Type: "part-of", Pattern: regexp.MustCompile(`\b(?:is\s+)?(?:a\s+)?part of\b|\bbelongs? to\b|\bmember of\b|\bcomponent of\b`)},
			{Type: "depends-on", Pattern: regexp.MustCompile(`\bdepends? (?:on|upon)\b|\brequires?\b|\brelies? on\b|\bneeds?\b`)},
			{Type: "similar-to", Pattern: regexp.MustCompile(`\bsimilar to\b|\bresembles?\b|\bakin to\b|\bcomparable to\b`)},
			{Type: "different-from", Pattern: regexp.MustCompile(`\bdiffers? from\b|\bdifferent from\b|\bunlike\b|\bopposite of\b`)},
			{Type: "causes", Pattern: regexp.MustCompile(`\bcauses?\b|\bleads? to\b|\bresults? in\b|\btriggers?\b|\bproduces?\b`)},
			{Type: "enables", Pattern: regexp.MustCompile(`\benables?\b|\ballows?\b|\bfacilitates?\b|\bempowers?\b`)},
			{Type: "has-a", Pattern: regexp.MustCompile(`\bha(?:s|ve|d)\b|\bpossess(?:es)?\b|\bcontains?\b|\bincludes?\b`)},
			{Type: "is-a", Pattern: regexp.MustCompile(`\b(?:is|are|was|were)\b(?:\s+(?:a|an|the))?`)},
		},
		BidirectionalTypes: []string{"similar-to", "different-from", "related-to"},
		DomainKeywords: map[string][]string{
			"technology": {
				"software", "hardware", "system", "network", "data",
				"algorithm", "computer", "code", "digital", "server",
			},
			"science": {
				"research", "experiment", "theory", "hypothesis", "biology",
				"chemistry", "physics", "species", "mammal", "organism",
			},
			"business": {
				"market", "customer", "product", "revenue", "strategy",
				"company", "sales", "finance", "investment",
			},
			"health": {
				"health", "disease", "treatment", "patient", "medicine",
				"therapy", "diagnosis", "symptom",
			},
			"education": {
				"learning", "teaching", "student", "course", "knowledge",
				"curriculum", "training", "skill",
			},
		},
	}
}
