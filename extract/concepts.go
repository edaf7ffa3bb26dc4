package extract

import (
	"sort"
	"strings"

	"github.com/c360studio/ontograph/corpus"
)

// ConceptExtractor builds the concept table from a corpus snapshot.
type ConceptExtractor struct {
	cfg       Config
	tables    Tables
	tokenizer *Tokenizer
}

// NewConceptExtractor creates a concept extractor.
func NewConceptExtractor(cfg Config, tables Tables) *ConceptExtractor {
	return &ConceptExtractor{
		cfg:       cfg,
		tables:    tables,
		tokenizer: NewTokenizer(cfg, tables.StopWords),
	}
}

// conceptAccum accumulates observations of one candidate during a run.
type conceptAccum struct {
	raw      string
	words    int
	freq     int
	contexts map[string]struct{}
}

// Extract produces the deduplicated concept table for the corpus. Documents
// without text are skipped. The result is sorted by name and fully
// determined by the input, so re-running on the same snapshot yields the
// same table.
func (e *ConceptExtractor) Extract(c corpus.Corpus) []Concept {
	accum := make(map[string]*conceptAccum)

	observe := func(key, raw string, words int, doc string) {
		a, ok := accum[key]
		if !ok {
			a = &conceptAccum{raw: raw, words: words, contexts: make(map[string]struct{})}
			accum[key] = a
		}
		a.freq++
		a.contexts[doc] = struct{}{}
	}

	for _, doc := range c.Documents {
		if doc.Empty() {
			continue
		}
		for _, cand := range e.tokenizer.Candidates(doc.Text) {
			observe(cand.Key, cand.Raw, cand.Words, doc.Name)
		}
		// Tags are concept candidates verbatim.
		for _, tag := range doc.Tags {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			key := strings.ToLower(tag)
			observe(key, tag, len(strings.Fields(tag)), doc.Name)
		}
	}

	concepts := make([]Concept, 0, len(accum))
	for key, a := range accum {
		floor := e.cfg.MinTermFrequency
		if a.words > 1 {
			floor = e.cfg.MinPhraseFrequency
		}
		if a.freq < floor {
			continue
		}

		contexts := make([]string, 0, len(a.contexts))
		for ctx := range a.contexts {
			contexts = append(contexts, ctx)
		}
		sort.Strings(contexts)

		concepts = append(concepts, Concept{
			Name:       key,
			Kind:       e.inferKind(key, a.raw),
			Frequency:  a.freq,
			Confidence: ConceptConfidence(a.raw),
			Contexts:   contexts,
		})
	}

	sort.Slice(concepts, func(i, j int) bool { return concepts[i].Name < concepts[j].Name })
	return concepts
}

// inferKind classifies a concept: indicator vocabulary first, then suffix
// heuristics, then a leading capital on the surface form, else abstract.
func (e *ConceptExtractor) inferKind(name, raw string) Kind {
	for _, kind := range []Kind{KindProcess, KindQuality, KindEntity} {
		for _, indicator := range e.tables.KindIndicators[kind] {
			if strings.Contains(name, indicator) {
				return kind
			}
		}
	}

	for _, rule := range e.tables.SuffixRules {
		if strings.HasSuffix(name, rule.Suffix) {
			return rule.Kind
		}
	}

	if hasLeadingCapital(raw) {
		return KindEntity
	}
	return KindAbstract
}
