package onto

import (
	"github.com/c360studio/semstreams/vocabulary"
	"github.com/c360studio/semstreams/vocabulary/bfo"
)

// Kind mirrors the concept kind taxonomy for mapping purposes.
type Kind string

// Kind constants identify the four concept kinds.
const (
	// KindEntity is a concrete, independent thing.
	KindEntity Kind = "entity"
	// KindProcess is an action or occurrence.
	KindProcess Kind = "process"
	// KindQuality is an attribute or characteristic.
	KindQuality Kind = "quality"
	// KindAbstract is an idea or generically dependent notion.
	KindAbstract Kind = "abstract"
)

// BFOClassMap maps concept kinds to BFO class IRIs.
// Use this for bfo profile RDF export.
var BFOClassMap = map[Kind]string{
	KindEntity:   bfo.IndependentContinuant,
	KindProcess:  bfo.Process,
	KindQuality:  bfo.Quality,
	KindAbstract: bfo.GenericallyDependentContinuant,
}

// PROVClassMap maps concept kinds to PROV-O class IRIs.
// Use this for minimal and skos profile RDF exports.
var PROVClassMap = map[Kind]string{
	KindEntity:   vocabulary.ProvEntity,
	KindProcess:  vocabulary.ProvActivity,
	KindQuality:  vocabulary.ProvEntity,
	KindAbstract: vocabulary.ProvEntity,
}

// OntoClassMap maps concept kinds to native class IRIs.
var OntoClassMap = map[Kind]string{
	KindEntity:   ClassEntityKind,
	KindProcess:  ClassProcessKind,
	KindQuality:  ClassQualityKind,
	KindAbstract: ClassAbstractKind,
}

// RelationTypeIRIMap maps relationship types to standard IRIs. Types with
// no standard equivalent fall back to the native namespace.
var RelationTypeIRIMap = map[string]string{
	"is-a":           PropSubClassOf,
	"part-of":        bfo.PartOf,
	"has-a":          bfo.HasPart,
	"related-to":     vocabulary.SkosRelated,
	"similar-to":     vocabulary.SkosRelated,
	"different-from": "http://www.w3.org/2002/07/owl#differentFrom",
	"causes":         Namespace + "causes",
	"enables":        Namespace + "enables",
	"depends-on":     Namespace + "dependsOn",
}

// PredicateIRIMap maps internal dotted predicates to standard IRIs.
// Use this at export boundaries to translate dotted predicates.
var PredicateIRIMap = map[string]string{
	ClassLabel:       vocabulary.SkosPrefLabel,
	ClassDescription: "http://www.w3.org/2004/02/skos/core#definition",
	ClassBroader:     vocabulary.SkosBroader,
	ClassNarrower:    vocabulary.SkosNarrower,
	ClassInstance:    vocabulary.SkosAltLabel,
	ClassDomain:      PropInDomain,
	ClassCreatedAt:   "http://purl.org/dc/terms/created",
	ClassModifiedAt:  "http://purl.org/dc/terms/modified",
	ClassConfidence:  PropConfidence,
	ClassProvenance:  PropProvenance,

	PredicateClassKind: PropKind,
	PredicateRelType:   Namespace + "relationType",

	RelSource:   PropRelates,
	RelTarget:   PropRelatesTo,
	RelStrength: PropStrength,
	RelEvidence: vocabulary.DcSource,

	DomainName:      vocabulary.DcTitle,
	DomainScope:     "http://www.w3.org/2004/02/skos/core#scopeNote",
	DomainCoverage:  PropCoverage,
	DomainCoherence: PropCoherence,
	DomainMember:    vocabulary.SkosRelated,
}

// GetTypesForKind returns the type IRIs for a concept kind under a profile.
//
//   - "minimal": PROV-O type only
//   - "skos": PROV-O + native concept type
//   - "bfo": PROV-O + native + BFO type
func GetTypesForKind(kind Kind, profile string) []string {
	types := make([]string, 0, 3)

	if provClass, ok := PROVClassMap[kind]; ok {
		types = append(types, provClass)
	}

	if profile == "skos" || profile == "bfo" {
		if ontoClass, ok := OntoClassMap[kind]; ok {
			types = append(types, ontoClass)
		}
	}

	if profile == "bfo" {
		if bfoClass, ok := BFOClassMap[kind]; ok {
			types = append(types, bfoClass)
		}
	}

	return types
}

// GetPredicateIRI returns the standard IRI for a dotted predicate, falling
// back to the native namespace for unmapped predicates.
func GetPredicateIRI(predicate string) string {
	if iri, ok := PredicateIRIMap[predicate]; ok {
		return iri
	}
	return Namespace + predicate
}

// GetRelationIRI returns the IRI for a relationship type, falling back to
// the native namespace.
func GetRelationIRI(relType string) string {
	if iri, ok := RelationTypeIRIMap[relType]; ok {
		return iri
	}
	return Namespace + relType
}
