package export

import (
	"fmt"
	"strings"

	"github.com/c360studio/semstreams/vocabulary"

	"github.com/c360studio/ontograph/vocabulary/onto"
)

// toOWLFunctional serializes the snapshot to OWL 2 functional-style syntax.
// Classes become Declaration axioms with annotation assertions, superclass
// edges become SubClassOf axioms, and non-taxonomic relationships become
// annotation assertions using the relation type IRI.
func (e *RDFExporter) toOWLFunctional() (string, error) {
	if e.snap == nil {
		return "", fmt.Errorf("owl-functional export requires a snapshot")
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Prefix(onto:=<%s>)\n", onto.Namespace))
	sb.WriteString(fmt.Sprintf("Prefix(entity:=<%s>)\n", onto.EntityNamespace))
	sb.WriteString("Prefix(skos:=<http://www.w3.org/2004/02/skos/core#>)\n")
	sb.WriteString("Prefix(owl:=<http://www.w3.org/2002/07/owl#>)\n")
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Ontology(<%s>\n", onto.Namespace))

	for _, id := range sortedKeys(e.snap.Classes) {
		c := e.snap.Classes[id]
		iri := entityIDToIRI(id)

		sb.WriteString(fmt.Sprintf("Declaration(Class(<%s>))\n", iri))
		sb.WriteString(fmt.Sprintf("AnnotationAssertion(<%s> <%s> \"%s\")\n",
			vocabulary.SkosPrefLabel, iri, escapeString(c.Name)))
		if c.Description != "" {
			sb.WriteString(fmt.Sprintf("AnnotationAssertion(<%s> <%s> \"%s\")\n",
				"http://www.w3.org/2004/02/skos/core#definition", iri, escapeString(c.Description)))
		}
		for _, super := range c.SuperClasses {
			sb.WriteString(fmt.Sprintf("SubClassOf(<%s> <%s>)\n", iri, entityIDToIRI(super)))
		}
	}

	relTypes := make(map[string]struct{})
	for _, id := range sortedKeys(e.snap.Relationships) {
		rel := e.snap.Relationships[id]
		if rel.Type == "is-a" {
			// Already covered by SubClassOf axioms.
			continue
		}
		relIRI := onto.GetRelationIRI(rel.Type)
		if _, seen := relTypes[relIRI]; !seen {
			relTypes[relIRI] = struct{}{}
			sb.WriteString(fmt.Sprintf("Declaration(AnnotationProperty(<%s>))\n", relIRI))
		}
		sb.WriteString(fmt.Sprintf("AnnotationAssertion(<%s> <%s> <%s>)\n",
			relIRI, entityIDToIRI(rel.Source), entityIDToIRI(rel.Target)))
	}

	for _, id := range sortedKeys(e.snap.Properties) {
		p := e.snap.Properties[id]
		iri := entityIDToIRI(id)
		sb.WriteString(fmt.Sprintf("Declaration(ObjectProperty(<%s>))\n", iri))
		sb.WriteString(fmt.Sprintf("AnnotationAssertion(<%s> <%s> \"%s\")\n",
			"http://www.w3.org/2000/01/rdf-schema#label", iri, escapeString(p.Name)))
	}

	sb.WriteString(")\n")
	return sb.String(), nil
}
