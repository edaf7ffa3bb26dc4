// Package export serializes ontology snapshots to RDF with profile-driven
// alignment to standard upper ontologies.
package export

import (
	"github.com/c360studio/semstreams/message"
	"github.com/c360studio/semstreams/vocabulary"
	"github.com/c360studio/semstreams/vocabulary/bfo"

	"github.com/c360studio/ontograph/vocabulary/onto"
)

// Profile determines which ontology type assertions are included in the
// export.
type Profile string

const (
	// ProfileMinimal includes only PROV-O, Dublin Core, and SKOS predicates.
	ProfileMinimal Profile = "minimal"

	// ProfileSKOS adds native concept type assertions and SKOS hierarchy
	// links to the minimal profile.
	ProfileSKOS Profile = "skos"

	// ProfileBFO adds BFO type assertions to the skos profile.
	ProfileBFO Profile = "bfo"
)

// ProfileConfig contains configuration for an export profile.
type ProfileConfig struct {
	// Name is the profile identifier.
	Name Profile

	// Description describes the profile.
	Description string

	// IncludePROV indicates whether to include PROV-O type assertions.
	IncludePROV bool

	// IncludeOnto indicates whether to include native concept types.
	IncludeOnto bool

	// IncludeBFO indicates whether to include BFO type assertions.
	IncludeBFO bool

	// TranslatePredicates indicates whether to translate dotted predicates
	// to standard IRIs.
	TranslatePredicates bool
}

// Profiles contains the configuration for all available export profiles.
var Profiles = map[Profile]ProfileConfig{
	ProfileMinimal: {
		Name:                ProfileMinimal,
		Description:         "PROV-O, Dublin Core, and SKOS predicates only",
		IncludePROV:         true,
		IncludeOnto:         false,
		IncludeBFO:          false,
		TranslatePredicates: true,
	},
	ProfileSKOS: {
		Name:                ProfileSKOS,
		Description:         "Native concept types plus minimal profile",
		IncludePROV:         true,
		IncludeOnto:         true,
		IncludeBFO:          false,
		TranslatePredicates: true,
	},
	ProfileBFO: {
		Name:                ProfileBFO,
		Description:         "Full BFO/PROV-O alignment",
		IncludePROV:         true,
		IncludeOnto:         true,
		IncludeBFO:          true,
		TranslatePredicates: true,
	},
}

// GetProfileConfig returns the configuration for a profile, defaulting to
// minimal for unknown names.
func GetProfileConfig(profile Profile) ProfileConfig {
	if config, ok := Profiles[profile]; ok {
		return config
	}
	return Profiles[ProfileMinimal]
}

// TypeAsserter generates type assertions for classes based on profile.
type TypeAsserter struct {
	profile ProfileConfig
}

// NewTypeAsserter creates a new type asserter for the given profile.
func NewTypeAsserter(profile Profile) *TypeAsserter {
	return &TypeAsserter{
		profile: GetProfileConfig(profile),
	}
}

// GetTypeIRIs returns all type IRIs for a concept kind based on the profile.
func (t *TypeAsserter) GetTypeIRIs(kind onto.Kind) []string {
	types := make([]string, 0, 3)

	if t.profile.IncludePROV {
		if provClass, ok := onto.PROVClassMap[kind]; ok {
			types = append(types, provClass)
		}
	}

	if t.profile.IncludeOnto {
		if ontoClass, ok := onto.OntoClassMap[kind]; ok {
			types = append(types, ontoClass)
		}
	}

	if t.profile.IncludeBFO {
		if bfoClass, ok := onto.BFOClassMap[kind]; ok {
			types = append(types, bfoClass)
		}
	}

	return types
}

// TypeTriples returns rdf:type triples as []message.Triple for a class
// based on its kind and the given profile.
func TypeTriples(classID string, kind onto.Kind, profile Profile) []message.Triple {
	asserter := NewTypeAsserter(profile)
	typeIRIs := asserter.GetTypeIRIs(kind)
	triples := make([]message.Triple, 0, len(typeIRIs))
	for _, typeIRI := range typeIRIs {
		triples = append(triples, message.Triple{
			Subject:    classID,
			Predicate:  "rdf.syntax.type",
			Object:     typeIRI,
			Source:     "ontograph.rdf-export",
			Confidence: 1.0,
		})
	}
	return triples
}

// TypeHierarchy represents the upper-ontology alignment for a concept kind.
type TypeHierarchy struct {
	// OntoClass is the native concept class.
	OntoClass string

	// PROVClass is the PROV-O class.
	PROVClass string

	// BFOClass is the BFO class.
	BFOClass string
}

// GetTypeHierarchy returns the full type hierarchy for a concept kind.
func GetTypeHierarchy(kind onto.Kind) TypeHierarchy {
	return TypeHierarchy{
		OntoClass: onto.OntoClassMap[kind],
		PROVClass: onto.PROVClassMap[kind],
		BFOClass:  onto.BFOClassMap[kind],
	}
}

// BFOClassDescriptions provides human-readable descriptions for BFO classes.
var BFOClassDescriptions = map[string]string{
	bfo.Entity:                         "The root class of all BFO entities",
	bfo.IndependentContinuant:          "Entities that can exist on their own",
	bfo.GenericallyDependentContinuant: "Information patterns that can be copied",
	bfo.Process:                        "Events that unfold over time",
	bfo.Quality:                        "Measurable properties",
}

// PROVClassDescriptions provides human-readable descriptions for PROV-O
// classes.
var PROVClassDescriptions = map[string]string{
	vocabulary.ProvEntity:   "Thing with fixed aspects",
	vocabulary.ProvActivity: "Something that occurs over time",
}
