package extract

import (
	"sort"
	"strings"

	"github.com/c360studio/ontograph/corpus"
)

// RelationshipExtractor scans sentences for lexical patterns connecting two
// known concepts and yields consolidated, strength-scored relationships.
type RelationshipExtractor struct {
	cfg       Config
	tables    Tables
	tokenizer *Tokenizer
	bidi      map[string]bool
}

// NewRelationshipExtractor creates a relationship extractor.
func NewRelationshipExtractor(cfg Config, tables Tables) *RelationshipExtractor {
	bidi := make(map[string]bool, len(tables.BidirectionalTypes))
	for _, t := range tables.BidirectionalTypes {
		bidi[t] = true
	}
	return &RelationshipExtractor{
		cfg:       cfg,
		tables:    tables,
		tokenizer: NewTokenizer(cfg, tables.StopWords),
		bidi:      bidi,
	}
}

// mention is a concept occurrence within one sentence.
type mention struct {
	name string
	pos  int
	end  int
}

// observation is a single raw sighting of a (source, type, target) triple.
type observation struct {
	source, target, relType string
	confidence              float64
	snippet                 string
}

// Extract produces consolidated relationship candidates from the corpus and
// the concept table. Repeated observations of the same ordered triple
// accumulate strength; triples below the configured floor are dropped.
func (e *RelationshipExtractor) Extract(c corpus.Corpus, concepts []Concept) []Relationship {
	names := make([]string, 0, len(concepts))
	for _, concept := range concepts {
		names = append(names, concept.Name)
	}

	type consolidated struct {
		relType  string
		base     float64
		strength float64
		evidence []string
	}
	triples := make(map[string]*consolidated)
	var order []string

	for _, doc := range c.Documents {
		if doc.Empty() {
			continue
		}
		for _, sentence := range e.tokenizer.Sentences(doc.Text) {
			for _, obs := range e.observeSentence(sentence, names) {
				key := obs.source + "\x00" + obs.relType + "\x00" + obs.target
				entry, ok := triples[key]
				if !ok {
					entry = &consolidated{relType: obs.relType, base: obs.confidence}
					triples[key] = entry
					order = append(order, key)
				}
				entry.evidence = append(entry.evidence, obs.snippet)
				entry.strength = ConsolidatedStrength(
					entry.base, e.cfg.ConsolidationStep, len(entry.evidence))
			}
		}
	}

	sort.Strings(order)

	relationships := make([]Relationship, 0, len(order))
	for _, key := range order {
		entry := triples[key]
		if entry.strength <= e.cfg.MinStrength {
			continue
		}
		parts := strings.SplitN(key, "\x00", 3)
		relationships = append(relationships, Relationship{
			Source:        parts[0],
			Target:        parts[2],
			Type:          entry.relType,
			Strength:      entry.strength,
			Evidence:      entry.evidence,
			Bidirectional: e.bidi[entry.relType],
		})
	}
	return relationships
}

// observeSentence finds concept co-occurrences in one sentence and
// classifies each ordered pair.
func (e *RelationshipExtractor) observeSentence(sentence string, names []string) []observation {
	lower := strings.ToLower(sentence)

	var mentions []mention
	for _, name := range names {
		if pos := strings.Index(lower, name); pos >= 0 {
			mentions = append(mentions, mention{name: name, pos: pos, end: pos + len(name)})
		}
	}
	if len(mentions) < 2 {
		return nil
	}

	sort.Slice(mentions, func(i, j int) bool {
		if mentions[i].pos != mentions[j].pos {
			return mentions[i].pos < mentions[j].pos
		}
		// Same start position: the longer mention wins the earlier slot so
		// "software system" sorts before "software".
		return mentions[i].end > mentions[j].end
	})

	snippet := strings.TrimSpace(sentence)
	var out []observation
	for i := 0; i < len(mentions); i++ {
		for j := i + 1; j < len(mentions); j++ {
			src, dst := mentions[i], mentions[j]
			if src.name == dst.name || overlaps(src, dst) {
				continue
			}

			between := lower[min(src.end, len(lower)):max(dst.pos, 0)]
			relType, explicit := e.classify(between)
			confidence := RelationshipConfidence(dst.pos-src.end, len(lower), explicit)

			out = append(out, observation{
				source:     src.name,
				target:     dst.name,
				relType:    relType,
				confidence: confidence,
				snippet:    snippet,
			})
		}
	}
	return out
}

// classify tests the ordered pattern list against the text between two
// mentions, defaulting to the generic association type.
func (e *RelationshipExtractor) classify(between string) (string, bool) {
	for _, p := range e.tables.RelationPatterns {
		if p.Pattern.MatchString(between) {
			return p.Type, true
		}
	}
	return "related-to", false
}

func overlaps(a, b mention) bool {
	return a.pos < b.end && b.pos < a.end
}
