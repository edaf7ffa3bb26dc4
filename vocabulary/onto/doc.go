// Package onto provides the domain vocabulary for constructed ontologies.
//
// Predicates use three-level dotted notation (onto.class.*, onto.rel.*,
// onto.domain.*) and are registered in init() via vocabulary.Register with
// IRI mappings for RDF export. Internal identifiers stay in dotted form;
// translation to standard IRIs happens only at export boundaries.
//
// # Ontology Alignment
//
// Concept kinds map to standard upper-ontology classes:
//
//	Kind     → BFO Class                        → PROV Class
//	entity   → IndependentContinuant            → Entity
//	process  → Process                          → Activity
//	quality  → Quality                          → Entity
//	abstract → GenericallyDependentContinuant   → Entity
//
// Hierarchy edges export as skos:broader / skos:narrower, labels as
// skos:prefLabel, and mereology as BFO part-of / has-part.
package onto
