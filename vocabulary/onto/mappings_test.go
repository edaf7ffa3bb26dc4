package onto_test

import (
	"testing"

	"github.com/c360studio/semstreams/vocabulary"
	"github.com/c360studio/semstreams/vocabulary/bfo"

	"github.com/c360studio/ontograph/vocabulary/onto"
)

func TestBFOClassMap(t *testing.T) {
	tests := []struct {
		kind    onto.Kind
		wantBFO string
	}{
		{onto.KindEntity, bfo.IndependentContinuant},
		{onto.KindProcess, bfo.Process},
		{onto.KindQuality, bfo.Quality},
		{onto.KindAbstract, bfo.GenericallyDependentContinuant},
	}

	for _, tc := range tests {
		t.Run(string(tc.kind), func(t *testing.T) {
			got, ok := onto.BFOClassMap[tc.kind]
			if !ok {
				t.Fatalf("kind %q not in BFOClassMap", tc.kind)
			}
			if got != tc.wantBFO {
				t.Errorf("got %q, want %q", got, tc.wantBFO)
			}
		})
	}
}

func TestPROVClassMap(t *testing.T) {
	tests := []struct {
		kind     onto.Kind
		wantPROV string
	}{
		{onto.KindEntity, vocabulary.ProvEntity},
		{onto.KindProcess, vocabulary.ProvActivity},
		{onto.KindQuality, vocabulary.ProvEntity},
		{onto.KindAbstract, vocabulary.ProvEntity},
	}

	for _, tc := range tests {
		t.Run(string(tc.kind), func(t *testing.T) {
			got, ok := onto.PROVClassMap[tc.kind]
			if !ok {
				t.Fatalf("kind %q not in PROVClassMap", tc.kind)
			}
			if got != tc.wantPROV {
				t.Errorf("got %q, want %q", got, tc.wantPROV)
			}
		})
	}
}

func TestKindsComplete(t *testing.T) {
	kinds := []onto.Kind{
		onto.KindEntity,
		onto.KindProcess,
		onto.KindQuality,
		onto.KindAbstract,
	}

	for _, k := range kinds {
		t.Run(string(k), func(t *testing.T) {
			if _, ok := onto.BFOClassMap[k]; !ok {
				t.Errorf("kind %q missing from BFOClassMap", k)
			}
			if _, ok := onto.PROVClassMap[k]; !ok {
				t.Errorf("kind %q missing from PROVClassMap", k)
			}
			if _, ok := onto.OntoClassMap[k]; !ok {
				t.Errorf("kind %q missing from OntoClassMap", k)
			}
		})
	}
}

func TestGetTypesForKind_MinimalProfile(t *testing.T) {
	types := onto.GetTypesForKind(onto.KindEntity, "minimal")

	if len(types) != 1 {
		t.Fatalf("expected exactly the PROV type, got %v", types)
	}
	if types[0] != vocabulary.ProvEntity {
		t.Errorf("got %q, want %q", types[0], vocabulary.ProvEntity)
	}
}

func TestGetTypesForKind_SKOSProfile(t *testing.T) {
	types := onto.GetTypesForKind(onto.KindProcess, "skos")

	hasProvActivity := false
	hasNativeProcess := false
	for _, typ := range types {
		if typ == vocabulary.ProvActivity {
			hasProvActivity = true
		}
		if typ == onto.ClassProcessKind {
			hasNativeProcess = true
		}
	}
	if !hasProvActivity {
		t.Error("skos profile should include prov:Activity")
	}
	if !hasNativeProcess {
		t.Error("skos profile should include onto:Process")
	}
}

func TestGetTypesForKind_BFOProfile(t *testing.T) {
	types := onto.GetTypesForKind(onto.KindQuality, "bfo")

	if len(types) != 3 {
		t.Fatalf("expected PROV + native + BFO types, got %v", types)
	}

	hasBFOQuality := false
	for _, typ := range types {
		if typ == bfo.Quality {
			hasBFOQuality = true
		}
	}
	if !hasBFOQuality {
		t.Error("bfo profile should include bfo:Quality")
	}
}

func TestDomainConstantsAreDistinct(t *testing.T) {
	if onto.ClassDomain != "onto.class.domain" {
		t.Errorf("ClassDomain predicate = %q, want onto.class.domain", onto.ClassDomain)
	}
	if onto.ClassDomainType != onto.Namespace+"Domain" {
		t.Errorf("ClassDomainType IRI = %q, want %q", onto.ClassDomainType, onto.Namespace+"Domain")
	}
	if onto.ClassDomain == onto.ClassDomainType {
		t.Error("domain membership predicate and domain class IRI must differ")
	}
}

func TestGetPredicateIRI(t *testing.T) {
	tests := []struct {
		predicate string
		wantIRI   string
	}{
		{onto.ClassLabel, vocabulary.SkosPrefLabel},
		{onto.ClassBroader, vocabulary.SkosBroader},
		{onto.DomainName, vocabulary.DcTitle},
		{onto.ClassConfidence, onto.PropConfidence},
		// Unmapped predicate falls back to the native namespace.
		{"some.unknown.predicate", onto.Namespace + "some.unknown.predicate"},
	}

	for _, tc := range tests {
		t.Run(tc.predicate, func(t *testing.T) {
			got := onto.GetPredicateIRI(tc.predicate)
			if got != tc.wantIRI {
				t.Errorf("got %q, want %q", got, tc.wantIRI)
			}
		})
	}
}

func TestGetRelationIRI(t *testing.T) {
	tests := []struct {
		relType string
		wantIRI string
	}{
		{"is-a", onto.PropSubClassOf},
		{"part-of", bfo.PartOf},
		{"has-a", bfo.HasPart},
		{"similar-to", vocabulary.SkosRelated},
		{"causes", onto.Namespace + "causes"},
		// Unmapped type falls back to the native namespace.
		{"orbits", onto.Namespace + "orbits"},
	}

	for _, tc := range tests {
		t.Run(tc.relType, func(t *testing.T) {
			got := onto.GetRelationIRI(tc.relType)
			if got != tc.wantIRI {
				t.Errorf("got %q, want %q", got, tc.wantIRI)
			}
		})
	}
}
