package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontograph/corpus"
	"github.com/c360studio/ontograph/extract"
)

func namedConcepts(names ...string) []extract.Concept {
	out := make([]extract.Concept, len(names))
	for i, n := range names {
		out[i] = extract.Concept{Name: n}
	}
	return out
}

func singleDoc(text string) corpus.Corpus {
	return corpus.Corpus{Documents: []corpus.Document{{Name: "doc", Text: text}}}
}

func findRel(rels []extract.Relationship, source, relType, target string) *extract.Relationship {
	for i := range rels {
		r := rels[i]
		if r.Source == source && r.Type == relType && r.Target == target {
			return &rels[i]
		}
	}
	return nil
}

func TestRelationshipExtractor_IsA(t *testing.T) {
	e := extract.NewRelationshipExtractor(extract.DefaultConfig(), extract.DefaultTables())

	rels := e.Extract(singleDoc("Dogs are mammals."), namedConcepts("dog", "mammal"))

	rel := findRel(rels, "dog", "is-a", "mammal")
	require.NotNil(t, rel, "copula between mentions yields is-a, got %v", rels)
	assert.False(t, rel.Bidirectional)
	assert.Greater(t, rel.Strength, 0.5, "explicit verb match boosts confidence")
	require.Len(t, rel.Evidence, 1)
	assert.Equal(t, "Dogs are mammals", rel.Evidence[0])
}

func TestRelationshipExtractor_HasA(t *testing.T) {
	e := extract.NewRelationshipExtractor(extract.DefaultConfig(), extract.DefaultTables())

	rels := e.Extract(singleDoc("Dogs have soft fur."), namedConcepts("dog", "fur"))

	assert.NotNil(t, findRel(rels, "dog", "has-a", "fur"), "got %v", rels)
}

func TestRelationshipExtractor_PartOfBeatsIsA(t *testing.T) {
	e := extract.NewRelationshipExtractor(extract.DefaultConfig(), extract.DefaultTables())

	rels := e.Extract(singleDoc("The wheel is part of the car."), namedConcepts("wheel", "car"))

	assert.NotNil(t, findRel(rels, "wheel", "part-of", "car"),
		"specific patterns are tested before the generic copula, got %v", rels)
	assert.Nil(t, findRel(rels, "wheel", "is-a", "car"))
}

func TestRelationshipExtractor_SymmetricTypesAreBidirectional(t *testing.T) {
	e := extract.NewRelationshipExtractor(extract.DefaultConfig(), extract.DefaultTables())

	rels := e.Extract(singleDoc("Dogs seem similar to cats."), namedConcepts("dog", "cat"))

	rel := findRel(rels, "dog", "similar-to", "cat")
	require.NotNil(t, rel, "got %v", rels)
	assert.True(t, rel.Bidirectional)
}

func TestRelationshipExtractor_FallbackIsRelatedTo(t *testing.T) {
	e := extract.NewRelationshipExtractor(extract.DefaultConfig(), extract.DefaultTables())

	rels := e.Extract(singleDoc("The dog sat near the cat."), namedConcepts("dog", "cat"))

	rel := findRel(rels, "dog", "related-to", "cat")
	require.NotNil(t, rel, "got %v", rels)
	assert.True(t, rel.Bidirectional)
}

func TestRelationshipExtractor_ConsolidatesRepeatedObservations(t *testing.T) {
	e := extract.NewRelationshipExtractor(extract.DefaultConfig(), extract.DefaultTables())

	c := corpus.Corpus{Documents: []corpus.Document{
		{Name: "doc-a", Text: "Dogs are mammals."},
		{Name: "doc-b", Text: "Dogs are mammals."},
	}}

	rels := e.Extract(c, namedConcepts("dog", "mammal"))

	rel := findRel(rels, "dog", "is-a", "mammal")
	require.NotNil(t, rel)
	assert.Len(t, rel.Evidence, 2)

	single := e.Extract(singleDoc("Dogs are mammals."), namedConcepts("dog", "mammal"))
	assert.Greater(t, rel.Strength, single[0].Strength, "repetition accumulates strength")
}

func TestRelationshipExtractor_StrengthFloor(t *testing.T) {
	cfg := extract.DefaultConfig()
	cfg.MinStrength = 0.95
	e := extract.NewRelationshipExtractor(cfg, extract.DefaultTables())

	rels := e.Extract(singleDoc("Dogs are mammals."), namedConcepts("dog", "mammal"))
	assert.Empty(t, rels, "consolidated strength below the floor is dropped")
}

func TestRelationshipExtractor_NeedsTwoMentions(t *testing.T) {
	e := extract.NewRelationshipExtractor(extract.DefaultConfig(), extract.DefaultTables())

	rels := e.Extract(singleDoc("Dogs are wonderful."), namedConcepts("dog", "mammal"))
	assert.Empty(t, rels)
}

func TestRelationshipExtractor_OverlappingMentionsSkipped(t *testing.T) {
	e := extract.NewRelationshipExtractor(extract.DefaultConfig(), extract.DefaultTables())

	rels := e.Extract(
		singleDoc("Software systems are complex machines."),
		namedConcepts("software", "software system", "machine"),
	)

	assert.Nil(t, findRel(rels, "software", "related-to", "software system"),
		"overlapping mentions never pair, got %v", rels)
	assert.NotNil(t, findRel(rels, "software system", "is-a", "machine"))
}
