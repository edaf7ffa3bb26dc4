package onto

// Namespace is the base IRI prefix for constructed-ontology terms.
const Namespace = "https://ontograph.dev/ontology/core/"

// EntityNamespace is the base IRI for exported class and relationship
// instances.
const EntityNamespace = "https://ontograph.dev/entity/"

// Class IRIs define the types of elements in a constructed ontology.
const (
	// ClassConcept represents any extracted or authored concept class.
	// Extends: prov:Entity
	ClassConcept = Namespace + "Concept"

	// ClassEntityKind represents a concrete, independent thing.
	// Extends: bfo:IndependentContinuant
	ClassEntityKind = Namespace + "Entity"

	// ClassProcessKind represents an action or occurrence.
	// Extends: bfo:Process
	ClassProcessKind = Namespace + "Process"

	// ClassQualityKind represents an attribute or characteristic.
	// Extends: bfo:Quality
	ClassQualityKind = Namespace + "Quality"

	// ClassAbstractKind represents an idea or generically dependent notion.
	// Extends: bfo:GenericallyDependentContinuant
	ClassAbstractKind = Namespace + "Abstract"

	// ClassDomainType represents a thematic cluster of concepts.
	ClassDomainType = Namespace + "Domain"

	// ClassRelationship represents a reified typed relationship.
	ClassRelationship = Namespace + "Relationship"
)

// Object property IRIs define relationships between ontology elements.
const (
	// PropSubClassOf links a class to a superclass.
	PropSubClassOf = "http://www.w3.org/2000/01/rdf-schema#subClassOf"

	// PropInDomain links a class to its thematic domain.
	PropInDomain = Namespace + "inDomain"

	// PropRelates links a relationship to its source class.
	PropRelates = Namespace + "relatesFrom"

	// PropRelatesTo links a relationship to its target class.
	PropRelatesTo = Namespace + "relatesTo"
)

// Data property IRIs define literal-valued attributes.
const (
	// PropKind is the concept kind classification.
	PropKind = Namespace + "kind"

	// PropConfidence is the extraction confidence score.
	PropConfidence = Namespace + "confidence"

	// PropStrength is the relationship strength score.
	PropStrength = Namespace + "strength"

	// PropProvenance records how an element entered the ontology.
	PropProvenance = Namespace + "provenance"

	// PropCoverage is the domain coverage score.
	PropCoverage = Namespace + "coverage"

	// PropCoherence is the domain coherence score.
	PropCoherence = Namespace + "coherence"
)
