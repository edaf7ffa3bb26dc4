package onto

import "github.com/c360studio/semstreams/vocabulary"

// Class predicates define attributes for ontology classes.
const (
	// ClassLabel is the human-readable class name.
	ClassLabel = "onto.class.label"

	// ClassDescription is the class description text.
	ClassDescription = "onto.class.description"

	// PredicateClassKind is the concept kind predicate.
	// Values: entity, process, quality, abstract
	PredicateClassKind = "onto.class.kind"

	// ClassConfidence is the extraction confidence score.
	ClassConfidence = "onto.class.confidence"

	// ClassProvenance records how the class entered the ontology.
	// Values: manual, inferred, extracted
	ClassProvenance = "onto.class.provenance"

	// ClassBroader links to a superclass.
	ClassBroader = "onto.class.broader"

	// ClassNarrower links to a subclass.
	ClassNarrower = "onto.class.narrower"

	// ClassInstance is an observed instance context for the class.
	ClassInstance = "onto.class.instance"

	// ClassDomain links a class to its thematic domain.
	ClassDomain = "onto.class.domain"

	// ClassCreatedAt is the RFC3339 creation timestamp.
	ClassCreatedAt = "onto.class.created_at"

	// ClassModifiedAt is the RFC3339 last modification timestamp.
	ClassModifiedAt = "onto.class.modified_at"
)

// Relationship predicates define attributes for typed relationships.
const (
	// PredicateRelType is the relationship type predicate.
	// Values: is-a, part-of, has-a, related-to, similar-to, different-from,
	// causes, enables, depends-on
	PredicateRelType = "onto.rel.type"

	// RelSource links to the source class.
	RelSource = "onto.rel.source"

	// RelTarget links to the target class.
	RelTarget = "onto.rel.target"

	// RelStrength is the consolidated strength score.
	RelStrength = "onto.rel.strength"

	// RelBidirectional indicates the relationship holds both ways.
	RelBidirectional = "onto.rel.bidirectional"

	// RelEvidence is a supporting sentence.
	RelEvidence = "onto.rel.evidence"
)

// Domain predicates define attributes for thematic domains.
const (
	// DomainName is the domain name.
	DomainName = "onto.domain.name"

	// DomainScope describes what the domain covers.
	DomainScope = "onto.domain.scope"

	// DomainCoverage is the fraction of concepts the domain captures.
	DomainCoverage = "onto.domain.coverage"

	// DomainCoherence is the mean pairwise context overlap of members.
	DomainCoherence = "onto.domain.coherence"

	// DomainMember links a domain to a member class.
	DomainMember = "onto.domain.member"
)

func registerClassPredicates() {
	vocabulary.Register(ClassLabel,
		vocabulary.WithDescription("Human-readable class name"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(vocabulary.SkosPrefLabel))

	vocabulary.Register(ClassDescription,
		vocabulary.WithDescription("Class description text"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI("http://www.w3.org/2004/02/skos/core#definition"))

	vocabulary.Register(PredicateClassKind,
		vocabulary.WithDescription("Concept kind classification"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropKind))

	vocabulary.Register(ClassConfidence,
		vocabulary.WithDescription("Extraction confidence score"),
		vocabulary.WithDataType("float"),
		vocabulary.WithIRI(PropConfidence))

	vocabulary.Register(ClassProvenance,
		vocabulary.WithDescription("How the class entered the ontology"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropProvenance))

	vocabulary.Register(ClassBroader,
		vocabulary.WithDescription("Superclass link"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(vocabulary.SkosBroader))

	vocabulary.Register(ClassNarrower,
		vocabulary.WithDescription("Subclass link"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(vocabulary.SkosNarrower))

	vocabulary.Register(ClassInstance,
		vocabulary.WithDescription("Observed instance context"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(vocabulary.SkosAltLabel))

	vocabulary.Register(ClassDomain,
		vocabulary.WithDescription("Thematic domain membership"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropInDomain))

	vocabulary.Register(ClassCreatedAt,
		vocabulary.WithDescription("Creation timestamp (RFC3339)"),
		vocabulary.WithDataType("datetime"),
		vocabulary.WithIRI("http://purl.org/dc/terms/created"))

	vocabulary.Register(ClassModifiedAt,
		vocabulary.WithDescription("Last modification timestamp (RFC3339)"),
		vocabulary.WithDataType("datetime"),
		vocabulary.WithIRI("http://purl.org/dc/terms/modified"))
}

func registerRelationshipPredicates() {
	vocabulary.Register(PredicateRelType,
		vocabulary.WithDescription("Relationship type"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"relationType"))

	vocabulary.Register(RelSource,
		vocabulary.WithDescription("Source class"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropRelates))

	vocabulary.Register(RelTarget,
		vocabulary.WithDescription("Target class"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropRelatesTo))

	vocabulary.Register(RelStrength,
		vocabulary.WithDescription("Consolidated strength score"),
		vocabulary.WithDataType("float"),
		vocabulary.WithIRI(PropStrength))

	vocabulary.Register(RelBidirectional,
		vocabulary.WithDescription("Relationship holds in both directions"),
		vocabulary.WithDataType("bool"))

	vocabulary.Register(RelEvidence,
		vocabulary.WithDescription("Supporting sentence"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(vocabulary.DcSource))
}

func registerDomainPredicates() {
	vocabulary.Register(DomainName,
		vocabulary.WithDescription("Domain name"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(vocabulary.DcTitle))

	vocabulary.Register(DomainScope,
		vocabulary.WithDescription("What the domain covers"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI("http://www.w3.org/2004/02/skos/core#scopeNote"))

	vocabulary.Register(DomainCoverage,
		vocabulary.WithDescription("Fraction of concepts captured"),
		vocabulary.WithDataType("float"),
		vocabulary.WithIRI(PropCoverage))

	vocabulary.Register(DomainCoherence,
		vocabulary.WithDescription("Mean pairwise member overlap"),
		vocabulary.WithDataType("float"),
		vocabulary.WithIRI(PropCoherence))

	vocabulary.Register(DomainMember,
		vocabulary.WithDescription("Member class"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(vocabulary.SkosRelated))
}

func init() {
	registerClassPredicates()
	registerRelationshipPredicates()
	registerDomainPredicates()
}
